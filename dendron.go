package dendron

import (
	"errors"
	"fmt"
)

// --- A general purpose interface for tokens --------------------------------

// TokType is a category type for a Token. Token categories are defined by
// the lexer in package lang.
type TokType int

// Tokens represent input tokens, as produced by a scanner.
//
// An example would be a token for an integer literal:
//
//    TokType = NUM         // identifier for this kind of tokens
//    Lexeme  = "-42"       // lexeme how it appeared in the input stream
//    Span    = 67…70       // occured from position 67 in the input stream
//
// The parser only ever looks at lexemes; token types and spans are kept for
// error messages.
type Token interface {
	TokType() TokType
	Lexeme() string
	Span() Span
}

// --- Spans ------------------------------------------------------------

// Span is a small type for capturing a length of input token run. A span denotes
// a start position and the position just behind the end.
type Span [2]uint64 // (x…y)

// From returns the start value of a span.
func (s Span) From() uint64 {
	return s[0]
}

// To returns the end value of a span.
func (s Span) To() uint64 {
	return s[1]
}

// Len returns the length of (x…y)
func (s Span) Len() uint64 {
	return s[1] - s[0]
}

func (s Span) IsNull() bool {
	return s == Span{}
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}

// --- Errors ----------------------------------------------------------------

// ErrorKind categorizes failures of parsing and of program execution.
type ErrorKind int8

// Error categories. IllegalToken is raised by the parser (and the lexer), all the
// others during interpretation or execution of compiled code.
const (
	NoError           ErrorKind = iota
	IllegalToken                // unknown statement leader, missing operand, …
	UndefinedVariable           // variable read before assignment
	DivideByZero                // integer division with divisor 0
	IllegalOperator             // operator or opcode outside the known set
	IllegalValue                // square root of a negative number
	StackUnderflow              // machine code popped from an empty stack
)

var errorKindNames = [...]string{
	NoError:           "no error",
	IllegalToken:      "illegal token",
	UndefinedVariable: "undefined variable",
	DivideByZero:      "divide by zero",
	IllegalOperator:   "illegal operator",
	IllegalValue:      "illegal value",
	StackUnderflow:    "stack underflow",
}

func (k ErrorKind) String() string {
	if int(k) < 0 || int(k) >= len(errorKindNames) {
		return fmt.Sprintf("error kind %d", int8(k))
	}
	return errorKindNames[k]
}

// Error is the error type for Dendron programs. Detail is meant for humans and
// should contain enough context (operator, operands, variable name) to diagnose
// a failure.
type Error struct {
	Kind   ErrorKind
	Detail string
}

func (e Error) Error() string {
	if e.Detail == "" {
		return e.Kind.String()
	}
	return e.Kind.String() + ": " + e.Detail
}

// Errorf creates an Error of a given kind with a formatted detail message.
func Errorf(kind ErrorKind, format string, args ...interface{}) error {
	return Error{Kind: kind, Detail: fmt.Sprintf(format, args...)}
}

// KindOf returns the kind of a Dendron error, looking through wrapped errors.
// Returns NoError for nil and for errors of other types.
func KindOf(err error) ErrorKind {
	var derr Error
	if errors.As(err, &derr) {
		return derr.Kind
	}
	return NoError
}
