package tree

import (
	"strconv"
	"strings"
)

// Infix renders a statement in infix notation, e.g.
//
//    x := ( 3 + ( 4 * 5 ) )
//    Print #x
//
func Infix(stmt Statement) string {
	var b strings.Builder
	switch s := stmt.(type) {
	case *Assignment:
		b.WriteString(s.Name)
		b.WriteString(" := ")
		writeInfix(&b, s.Expr)
	case *Print:
		b.WriteString("Print ")
		writeInfix(&b, s.Expr)
	default:
		b.WriteString("<?>")
	}
	return b.String()
}

// InfixExpr renders an expression in infix notation. Every binary operation is
// parenthesized, unary operators are prepended to their operand.
func InfixExpr(expr Expression) string {
	var b strings.Builder
	writeInfix(&b, expr)
	return b.String()
}

func writeInfix(b *strings.Builder, expr Expression) {
	switch e := expr.(type) {
	case *Constant:
		b.WriteString(strconv.FormatInt(int64(e.Value), 10))
	case *VariableRef:
		b.WriteString(e.Name)
	case *BinaryOp:
		b.WriteString("( ")
		writeInfix(b, e.Left)
		b.WriteString(" " + e.Op.Symbol() + " ")
		writeInfix(b, e.Right)
		b.WriteString(" )")
	case *UnaryOp:
		b.WriteString(e.Op.Symbol())
		writeInfix(b, e.Operand)
	default:
		b.WriteString("<?>")
	}
}
