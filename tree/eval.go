package tree

import (
	"fmt"

	"github.com/npillmayer/dendron"
	"github.com/npillmayer/dendron/runtime"
)

// Execute interprets a statement against a runtime environment.
// A failing statement does not change the variable table and does not print.
func Execute(stmt Statement, rt *runtime.Runtime) error {
	switch s := stmt.(type) {
	case *Assignment:
		v, err := Evaluate(s.Expr, rt)
		if err != nil {
			return err
		}
		rt.Store(s.Name, v)
		return nil
	case *Print:
		v, err := Evaluate(s.Expr, rt)
		if err != nil {
			return err
		}
		return rt.Print(v)
	}
	return dendron.Errorf(dendron.IllegalOperator, "unknown statement type %T", stmt)
}

// Evaluate computes the value of an expression. Operands are evaluated left to
// right; an error in the left operand is returned before the right operand is
// looked at.
func Evaluate(expr Expression, rt *runtime.Runtime) (int32, error) {
	switch e := expr.(type) {
	case *Constant:
		return e.Value, nil
	case *VariableRef:
		return rt.Load(e.Name)
	case *BinaryOp:
		a, err := Evaluate(e.Left, rt)
		if err != nil {
			return 0, err
		}
		b, err := Evaluate(e.Right, rt)
		if err != nil {
			return 0, err
		}
		return applyBinary(e.Op, a, b)
	case *UnaryOp:
		a, err := Evaluate(e.Operand, rt)
		if err != nil {
			return 0, err
		}
		return applyUnary(e.Op, a)
	}
	return 0, dendron.Errorf(dendron.IllegalOperator, "unknown expression type %T", expr)
}

func applyBinary(op Op, a, b int32) (int32, error) {
	tracer().Debugf("%d %s %d", a, op, b)
	switch op {
	case Add:
		return runtime.Add(a, b), nil
	case Subtract:
		return runtime.Subtract(a, b), nil
	case Multiply:
		return runtime.Multiply(a, b), nil
	case Divide:
		return runtime.Divide(a, b)
	}
	return 0, illegalOperator(op, 2)
}

func applyUnary(op Op, a int32) (int32, error) {
	tracer().Debugf("%s%d", op, a)
	switch op {
	case Negate:
		return runtime.Negate(a), nil
	case SquareRoot:
		return runtime.SquareRoot(a)
	}
	return 0, illegalOperator(op, 1)
}

func illegalOperator(op Op, arity int) error {
	return dendron.Error{
		Kind:   dendron.IllegalOperator,
		Detail: fmt.Sprintf("%s is not a %d-ary operator", op, arity),
	}
}
