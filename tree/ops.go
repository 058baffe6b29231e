package tree

import "fmt"

// Op is an operator of Dendron expressions. Operators are resolved from their
// token symbols once, during parsing.
type Op int8

// Binary operators are Add, Subtract, Multiply and Divide; unary operators are
// Negate and SquareRoot.
const (
	NoOp Op = iota
	Add
	Subtract
	Multiply
	Divide
	Negate
	SquareRoot
)

var opSymbols = [...]string{
	NoOp:       "?",
	Add:        "+",
	Subtract:   "-",
	Multiply:   "*",
	Divide:     "/",
	Negate:     "_",
	SquareRoot: "#",
}

// OperatorFor returns the operator for a token symbol, if there is one.
func OperatorFor(symbol string) (Op, bool) {
	switch symbol {
	case "+":
		return Add, true
	case "-":
		return Subtract, true
	case "*":
		return Multiply, true
	case "/":
		return Divide, true
	case "_":
		return Negate, true
	case "#":
		return SquareRoot, true
	}
	return NoOp, false
}

// Symbol returns the token symbol of an operator.
func (op Op) Symbol() string {
	if op < 0 || int(op) >= len(opSymbols) {
		return fmt.Sprintf("?%d", int8(op))
	}
	return opSymbols[op]
}

func (op Op) String() string {
	return op.Symbol()
}

// Arity returns the number of operands of an operator, or 0 for an invalid
// operator.
func (op Op) Arity() int {
	switch op {
	case Add, Subtract, Multiply, Divide:
		return 2
	case Negate, SquareRoot:
		return 1
	}
	return 0
}
