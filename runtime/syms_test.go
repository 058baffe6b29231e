package runtime

import (
	"strings"
	"testing"

	"github.com/npillmayer/dendron"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSymTab(t *testing.T) {
	symtab := NewSymbolTable()
	if symtab == nil {
		t.Error("no symbol table created")
	}
}

func TestNewSymbol(t *testing.T) {
	symtab := NewSymbolTable()
	sym, _ := symtab.DefineTag("new-sym")
	if sym == nil {
		t.Fatal("no symbol created for table")
	}
	sym.Value = 5
	if symtab.ResolveTag("new-sym").Value != 5 {
		t.Errorf("value of tag not stored")
	}
}

func TestTwoSymbolsDistinctId(t *testing.T) {
	symtab := NewSymbolTable()
	sym1, _ := symtab.DefineTag("new-sym1")
	sym2, _ := symtab.DefineTag("new-sym2")
	if sym1 == sym2 {
		t.Error("2 symbols with equal name")
	}
}

func TestResolveOrDefineTag(t *testing.T) {
	symtab := NewSymbolTable()
	sym, _ := symtab.DefineTag("new-sym")
	if _, found := symtab.ResolveOrDefineTag(sym.Name()); !found {
		t.Error("cannot find stored symbol in table")
	}
	if tag, found := symtab.ResolveOrDefineTag(""); tag != nil || found {
		t.Error("empty tag names must be rejected")
	}
}

func TestDefineTag(t *testing.T) {
	symtab := NewSymbolTable()
	sym, _ := symtab.DefineTag("new-sym")
	if _, old := symtab.DefineTag("new-sym"); old != sym {
		t.Error("symbol should have been replaced")
	}
}

func TestDumpIsSorted(t *testing.T) {
	symtab := NewSymbolTable()
	for _, name := range []string{"zeta", "alpha", "mid", "Beta"} {
		tag, _ := symtab.DefineTag(name)
		tag.Value = int32(len(name))
	}
	assert.Equal(t, []string{"Beta = 4", "alpha = 5", "mid = 3", "zeta = 4"}, symtab.Dump())
}

func TestClone(t *testing.T) {
	symtab := NewSymbolTable()
	symtab.InsertTag(NewTag("x").WithValue(1))
	c := symtab.Clone()
	c.ResolveTag("x").Value = 2
	c.InsertTag(NewTag("y").WithValue(3))
	assert.Equal(t, map[string]int32{"x": 1}, symtab.Values())
	assert.Equal(t, map[string]int32{"x": 2, "y": 3}, c.Values())
}

func TestRuntimeLoadStore(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dendron.runtime")
	defer teardown()
	//
	out := &strings.Builder{}
	rt := NewRuntimeEnvironment(out)
	_, err := rt.Load("x")
	require.Error(t, err)
	assert.Equal(t, dendron.UndefinedVariable, dendron.KindOf(err))
	rt.Store("x", 7)
	rt.Store("x", 8)
	v, err := rt.Load("x")
	require.NoError(t, err)
	assert.Equal(t, int32(8), v)
	assert.Equal(t, map[string]int32{"x": 8}, rt.Vars.Values())
	require.NoError(t, rt.Print(v))
	assert.Equal(t, "=== 8\n", out.String())
}

func TestDivide(t *testing.T) {
	q, err := Divide(-7, 2)
	require.NoError(t, err)
	assert.Equal(t, int32(-3), q, "division truncates toward zero")
	_, err = Divide(5, 0)
	assert.Equal(t, dendron.DivideByZero, dendron.KindOf(err))
}

func TestSquareRoot(t *testing.T) {
	for in, want := range map[int32]int32{0: 0, 1: 1, 8: 2, 9: 3, 10: 3, 2147395600: 46340, 2147483647: 46340} {
		r, err := SquareRoot(in)
		require.NoError(t, err)
		assert.Equal(t, want, r, "sqrt(%d)", in)
	}
	_, err := SquareRoot(-4)
	assert.Equal(t, dendron.IllegalValue, dendron.KindOf(err))
}

func TestWrapAround(t *testing.T) {
	assert.Equal(t, int32(-2147483648), Add(2147483647, 1))
	assert.Equal(t, int32(-2147483648), Negate(-2147483648))
	q, err := Divide(-2147483648, -1)
	assert.NoError(t, err)
	assert.Equal(t, int32(-2147483648), q)
}
