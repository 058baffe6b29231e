package lang

import (
	"fmt"
	"strconv"

	"github.com/npillmayer/dendron"
	"github.com/npillmayer/dendron/tree"
)

// --- Grammar ---------------------------------------------------------------

// Program    ::=  Statement*
// Statement  ::=  ':=' ident Expr
// Statement  ::=  '@' Expr
// Expr       ::=  BinOp Expr Expr       // + - * /
// Expr       ::=  UnOp Expr             // _ #
// Expr       ::=  number                // -?[0-9]+
// Expr       ::=  ident
//

// Statement leader tokens.
const (
	AssignLeader = ":="
	PrintLeader  = "@"
)

// IsLeader is a predicate: does tok start a statement?
func IsLeader(tok string) bool {
	return tok == AssignLeader || tok == PrintLeader
}

// Parse parses a whole program, given as a sequence of tokens, into a sequence of
// statements.
//
// The token sequence is split into statements at every leader token; statements
// are then parsed one by one. Parsing stops at the first statement in error,
// returning a dendron.IllegalToken error which names the statement. An empty
// token sequence is a valid (empty) program.
//
func Parse(tokens []string) ([]tree.Statement, error) {
	segments := segment(tokens)
	tracer().Debugf("program has %d statements", len(segments))
	stmts := make([]tree.Statement, 0, len(segments))
	for i, seg := range segments {
		stmt, err := parseStatement(&tokenStream{tokens: seg})
		if err != nil {
			tracer().Errorf("statement #%d: %v", i+1, err)
			return nil, fmt.Errorf("statement #%d: %w", i+1, err)
		}
		tracer().Debugf("statement #%d: %s", i+1, tree.Infix(stmt))
		stmts = append(stmts, stmt)
	}
	return stmts, nil
}

// segment splits tokens into statements. A statement extends from a leader token
// up to the next leader token or to the end of input. Tokens in front of the
// first leader form a statement of their own, which will fail to parse.
func segment(tokens []string) [][]string {
	var segments [][]string
	start := 0
	for i, tok := range tokens {
		if IsLeader(tok) && i > start {
			segments = append(segments, tokens[start:i:i])
			start = i
		}
	}
	if start < len(tokens) {
		segments = append(segments, tokens[start:])
	}
	return segments
}

// tokenStream is a read-only token buffer with a read position.
type tokenStream struct {
	tokens []string
	pos    int
}

func (ts *tokenStream) next() (string, bool) {
	if ts.pos >= len(ts.tokens) {
		return "", false
	}
	tok := ts.tokens[ts.pos]
	ts.pos++
	return tok, true
}

func (ts *tokenStream) rest() []string {
	return ts.tokens[ts.pos:]
}

func parseStatement(ts *tokenStream) (tree.Statement, error) {
	leader, _ := ts.next()
	var stmt tree.Statement
	switch leader {
	case AssignLeader:
		name, ok := ts.next()
		if !ok {
			return nil, dendron.Errorf(dendron.IllegalToken, "variable name missing after %s", AssignLeader)
		}
		if !isIdentifier(name) {
			return nil, dendron.Errorf(dendron.IllegalToken, "cannot assign to %q", name)
		}
		expr, err := parseExpr(ts, "")
		if err != nil {
			return nil, err
		}
		stmt = tree.NewAssignment(name, expr)
	case PrintLeader:
		expr, err := parseExpr(ts, "")
		if err != nil {
			return nil, err
		}
		stmt = tree.NewPrint(expr)
	default:
		return nil, dendron.Errorf(dendron.IllegalToken, "statement starts with %q instead of %s or %s",
			leader, AssignLeader, PrintLeader)
	}
	if rest := ts.rest(); len(rest) > 0 {
		return nil, dendron.Errorf(dendron.IllegalToken, "unexpected %q after expression", rest[0])
	}
	return stmt, nil
}

// parseExpr parses an expression in prefix notation. context names the operator
// waiting for this expression, for error messages.
func parseExpr(ts *tokenStream, context string) (tree.Expression, error) {
	tok, ok := ts.next()
	if !ok {
		if context == "" {
			return nil, dendron.Errorf(dendron.IllegalToken, "unexpected end of statement, expression expected")
		}
		return nil, dendron.Errorf(dendron.IllegalToken, "unexpected end of statement, operand of %s missing", context)
	}
	if op, isOp := tree.OperatorFor(tok); isOp {
		switch op.Arity() {
		case 2:
			left, err := parseExpr(ts, tok)
			if err != nil {
				return nil, err
			}
			right, err := parseExpr(ts, tok)
			if err != nil {
				return nil, err
			}
			return tree.NewBinaryOp(op, left, right), nil
		case 1:
			operand, err := parseExpr(ts, tok)
			if err != nil {
				return nil, err
			}
			return tree.NewUnaryOp(op, operand), nil
		}
	}
	if IsIntLiteral(tok) {
		v, err := strconv.ParseInt(tok, 10, 32)
		if err != nil {
			return nil, dendron.Errorf(dendron.IllegalToken, "integer literal %s out of range", tok)
		}
		return tree.NewConstant(int32(v)), nil
	}
	if !isIdentifier(tok) {
		return nil, dendron.Errorf(dendron.IllegalToken, "%q is not a valid operand", tok)
	}
	return tree.NewVariableRef(tok), nil
}

// IsIntLiteral is a predicate: is tok an optional minus sign followed by one or
// more decimal digits? A lone "-" is the subtraction operator.
func IsIntLiteral(tok string) bool {
	digits := tok
	if len(tok) > 0 && tok[0] == '-' {
		digits = tok[1:]
	}
	if len(digits) == 0 {
		return false
	}
	for _, c := range digits {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

func isIdentifier(tok string) bool {
	if tok == "" || IsLeader(tok) || IsIntLiteral(tok) {
		return false
	}
	_, isOp := tree.OperatorFor(tok)
	return !isOp
}
