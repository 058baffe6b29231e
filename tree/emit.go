package tree

import (
	"github.com/npillmayer/dendron/machine"
)

// Emit generates machine code for a statement.
func Emit(stmt Statement) machine.Code {
	switch s := stmt.(type) {
	case *Assignment:
		return append(EmitExpr(s.Expr), machine.StoreVar(s.Name))
	case *Print:
		return append(EmitExpr(s.Expr), machine.Op(machine.Print))
	}
	tracer().Errorf("cannot emit code for statement type %T", stmt)
	return machine.Code{machine.Op(machine.NoOp)}
}

// EmitExpr generates machine code for an expression. The code leaves exactly one
// value on the stack.
func EmitExpr(expr Expression) machine.Code {
	var code machine.Code
	return emitExpr(code, expr)
}

func emitExpr(code machine.Code, expr Expression) machine.Code {
	switch e := expr.(type) {
	case *Constant:
		return append(code, machine.Push(e.Value))
	case *VariableRef:
		return append(code, machine.LoadVar(e.Name))
	case *BinaryOp:
		code = emitExpr(code, e.Left)
		code = emitExpr(code, e.Right)
		return append(code, machine.Op(opcodeFor(e.Op, 2)))
	case *UnaryOp:
		code = emitExpr(code, e.Operand)
		return append(code, machine.Op(opcodeFor(e.Op, 1)))
	}
	tracer().Errorf("cannot emit code for expression type %T", expr)
	return append(code, machine.Op(machine.NoOp))
}

// opcodeFor maps an operator to its opcode. Operators which are invalid or used
// with the wrong number of operands map to NoOp, which the machine refuses to
// execute with an IllegalOperator error, just like the interpreter does.
func opcodeFor(op Op, arity int) machine.Opcode {
	if op.Arity() != arity {
		tracer().Errorf("operator %s used with %d operand(s)", op, arity)
		return machine.NoOp
	}
	switch op {
	case Add:
		return machine.Add
	case Subtract:
		return machine.Subtract
	case Multiply:
		return machine.Multiply
	case Divide:
		return machine.Divide
	case Negate:
		return machine.Negate
	case SquareRoot:
		return machine.SquareRoot
	}
	tracer().Errorf("no opcode for operator %s", op)
	return machine.NoOp
}
