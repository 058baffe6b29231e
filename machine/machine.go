package machine

import (
	"fmt"
	"io"

	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/npillmayer/dendron"
	"github.com/npillmayer/dendron/runtime"
)

// Machine is a virtual machine executing Code. Every machine owns its value stack
// and its variable table, both of which are reset at the start of Execute.
// Machines are not safe for concurrent use, but separate machines are
// independent of each other.
type Machine struct {
	stack *arraystack.Stack
	rt    *runtime.Runtime
	out   io.Writer
}

// Option configures a machine.
type Option func(m *Machine)

// WithOutput sets the destination for PRINT instructions. Default is to
// discard printed values.
func WithOutput(w io.Writer) Option {
	return func(m *Machine) {
		m.out = w
	}
}

// New creates a virtual machine.
func New(opts ...Option) *Machine {
	m := &Machine{}
	for _, opt := range opts {
		opt(m)
	}
	m.reset()
	return m
}

// Report summarizes a run of the machine.
type Report struct {
	Executed  int // number of instructions executed successfully
	StackSize int // number of values left on the stack
}

// reset puts the machine into a pristine state.
func (m *Machine) reset() {
	m.stack = arraystack.New()
	m.rt = runtime.NewRuntimeEnvironment(m.out)
}

// Vars returns the variable table of the most recent run.
func (m *Machine) Vars() *runtime.SymbolTable {
	return m.rt.Vars
}

// StackSize returns the number of values currently on the stack.
func (m *Machine) StackSize() int {
	return m.stack.Size()
}

// Execute runs a compiled program, executing each instruction in order.
// The machine is reset once before the run.
//
// Execution stops at the first failing instruction; the failing instruction has no
// effect on the variable table. The report tells how many instructions have been
// executed and how many values are left on the stack. A non-empty stack is not an
// error.
func (m *Machine) Execute(code Code) (Report, error) {
	m.reset()
	tracer().Debugf("executing %d instructions", len(code))
	for i, instr := range code {
		tracer().P("pc", i).Debugf("%s", instr)
		if err := m.step(instr); err != nil {
			tracer().Errorf("instruction #%d (%s) failed: %v", i, instr, err)
			return Report{Executed: i, StackSize: m.stack.Size()},
				fmt.Errorf("instruction #%d (%s): %w", i, instr, err)
		}
	}
	report := Report{Executed: len(code), StackSize: m.stack.Size()}
	tracer().Infof("execution ended with %d items left on the stack", report.StackSize)
	return report, nil
}

func (m *Machine) step(instr Instruction) error {
	switch instr.Code {
	case PushConst:
		m.stack.Push(instr.Value)
	case Load:
		v, err := m.rt.Load(instr.Name)
		if err != nil {
			return err
		}
		m.stack.Push(v)
	case Store:
		v, err := m.pop(instr)
		if err != nil {
			return err
		}
		m.rt.Store(instr.Name, v)
	case Add, Subtract, Multiply, Divide:
		return m.binary(instr)
	case Negate:
		a, err := m.pop(instr)
		if err != nil {
			return err
		}
		m.stack.Push(runtime.Negate(a))
	case SquareRoot:
		a, err := m.pop(instr)
		if err != nil {
			return err
		}
		r, err := runtime.SquareRoot(a)
		if err != nil {
			return err
		}
		m.stack.Push(r)
	case Print:
		a, err := m.pop(instr)
		if err != nil {
			return err
		}
		return m.rt.Print(a)
	default:
		return dendron.Errorf(dendron.IllegalOperator, "opcode %s", instr.Code)
	}
	return nil
}

func (m *Machine) binary(instr Instruction) error {
	b, err := m.pop(instr)
	if err != nil {
		return err
	}
	a, err := m.pop(instr)
	if err != nil {
		return err
	}
	var r int32
	switch instr.Code {
	case Add:
		r = runtime.Add(a, b)
	case Subtract:
		r = runtime.Subtract(a, b)
	case Multiply:
		r = runtime.Multiply(a, b)
	case Divide:
		if r, err = runtime.Divide(a, b); err != nil {
			return err
		}
	}
	m.stack.Push(r)
	return nil
}

func (m *Machine) pop(instr Instruction) (int32, error) {
	v, ok := m.stack.Pop()
	if !ok {
		return 0, dendron.Errorf(dendron.StackUnderflow, "%s on empty stack", instr.Code)
	}
	return v.(int32), nil
}
