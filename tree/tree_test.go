package tree

import (
	"strings"
	"testing"

	"github.com/npillmayer/dendron"
	"github.com/npillmayer/dendron/machine"
	"github.com/npillmayer/dendron/runtime"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInfix(t *testing.T) {
	e := NewBinaryOp(Multiply, NewConstant(4), NewUnaryOp(Negate, NewConstant(2)))
	if s := InfixExpr(e); s != "( 4 * _2 )" {
		t.Errorf("expected ( 4 * _2 ), got %q", s)
	}
	a := NewAssignment("x", NewBinaryOp(Subtract, NewVariableRef("y"), NewConstant(-3)))
	assert.Equal(t, "x := ( y - -3 )", Infix(a))
	p := NewPrint(NewUnaryOp(SquareRoot, NewBinaryOp(Add, NewVariableRef("a"), NewVariableRef("b"))))
	assert.Equal(t, "Print #( a + b )", Infix(p))
}

func TestEvaluateSquareRoot(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dendron.tree")
	defer teardown()
	//
	e := NewUnaryOp(SquareRoot, NewConstant(9))
	v, err := Evaluate(e, runtime.NewRuntimeEnvironment(nil))
	require.NoError(t, err)
	assert.Equal(t, int32(3), v)
	m := machine.New()
	_, err = m.Execute(append(EmitExpr(e), machine.StoreVar("r")))
	require.NoError(t, err)
	assert.Equal(t, int32(3), m.Vars().Values()["r"])
}

func TestEmit(t *testing.T) {
	p := NewPrint(NewBinaryOp(Add, NewConstant(2), NewConstant(3)))
	expected := machine.Code{machine.Push(2), machine.Push(3), machine.Op(machine.Add), machine.Op(machine.Print)}
	assert.Equal(t, expected, Emit(p))
	a := NewAssignment("z", NewBinaryOp(Divide,
		NewUnaryOp(Negate, NewVariableRef("x")),
		NewConstant(7)))
	expected = machine.Code{machine.LoadVar("x"), machine.Op(machine.Negate), machine.Push(7),
		machine.Op(machine.Divide), machine.StoreVar("z")}
	assert.Equal(t, expected, Emit(a))
}

func TestExecuteStatements(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dendron.tree")
	defer teardown()
	//
	out := &strings.Builder{}
	rt := runtime.NewRuntimeEnvironment(out)
	stmts := []Statement{
		NewAssignment("x", NewConstant(10)),
		NewAssignment("y", NewBinaryOp(Subtract, NewVariableRef("x"), NewConstant(4))),
		NewPrint(NewBinaryOp(Divide, NewVariableRef("x"), NewVariableRef("y"))),
	}
	for _, s := range stmts {
		require.NoError(t, Execute(s, rt))
	}
	assert.Equal(t, "=== 1\n", out.String())
	assert.Equal(t, map[string]int32{"x": 10, "y": 6}, rt.Vars.Values())
}

func TestLeftOperandFailsFirst(t *testing.T) {
	rt := runtime.NewRuntimeEnvironment(nil)
	e := NewBinaryOp(Add, NewVariableRef("nope"), NewBinaryOp(Divide, NewConstant(1), NewConstant(0)))
	_, err := Evaluate(e, rt)
	assert.Equal(t, dendron.UndefinedVariable, dendron.KindOf(err))
	_, err = machine.New().Execute(EmitExpr(e))
	assert.Equal(t, dendron.UndefinedVariable, dendron.KindOf(err))
}

func TestFailingAssignmentHasNoEffect(t *testing.T) {
	rt := runtime.NewRuntimeEnvironment(nil)
	err := Execute(NewAssignment("q", NewBinaryOp(Divide, NewConstant(5), NewConstant(0))), rt)
	assert.Equal(t, dendron.DivideByZero, dendron.KindOf(err))
	assert.Equal(t, 0, rt.Vars.Size())
}

func TestIllegalOperatorOnBothPaths(t *testing.T) {
	for _, e := range []Expression{
		NewBinaryOp(Op(99), NewConstant(1), NewConstant(2)),
		NewBinaryOp(Negate, NewConstant(1), NewConstant(2)),
		NewUnaryOp(Add, NewConstant(1)),
	} {
		_, err := Evaluate(e, runtime.NewRuntimeEnvironment(nil))
		assert.Equal(t, dendron.IllegalOperator, dendron.KindOf(err), InfixExpr(e))
		_, err = machine.New().Execute(EmitExpr(e))
		assert.Equal(t, dendron.IllegalOperator, dendron.KindOf(err), InfixExpr(e))
	}
}

func TestOperators(t *testing.T) {
	for _, sym := range []string{"+", "-", "*", "/", "_", "#"} {
		op, ok := OperatorFor(sym)
		require.True(t, ok, sym)
		assert.Equal(t, sym, op.Symbol())
	}
	_, ok := OperatorFor(":=")
	assert.False(t, ok)
	assert.Equal(t, 2, Divide.Arity())
	assert.Equal(t, 1, SquareRoot.Arity())
	assert.Equal(t, 0, NoOp.Arity())
}

func TestOutline(t *testing.T) {
	a := NewAssignment("x", NewBinaryOp(Add, NewConstant(1), NewUnaryOp(Negate, NewVariableRef("y"))))
	expected := []OutlineItem{
		{0, ":= x"},
		{1, "+"},
		{2, "1"},
		{2, "_"},
		{3, "y"},
	}
	assert.Equal(t, expected, Outline(a))
}
