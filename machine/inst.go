package machine

import (
	"fmt"
	"io"
	"strconv"
)

// Opcode is the operation code of an instruction.
type Opcode int8

// The instruction set of the machine.
const (
	NoOp Opcode = iota
	PushConst
	Load
	Store
	Add
	Subtract
	Multiply
	Divide
	Negate
	SquareRoot
	Print
)

var mnemonics = [...]string{
	NoOp:       "NOOP",
	PushConst:  "PUSH",
	Load:       "LOAD",
	Store:      "STORE",
	Add:        "ADD",
	Subtract:   "SUB",
	Multiply:   "MUL",
	Divide:     "DIVIDE",
	Negate:     "NEGATE",
	SquareRoot: "SQRT",
	Print:      "PRINT",
}

// Mnemonic returns the name of an opcode as it appears in program listings.
func (op Opcode) Mnemonic() string {
	if op < 0 || int(op) >= len(mnemonics) {
		return "?" + strconv.Itoa(int(op))
	}
	return mnemonics[op]
}

func (op Opcode) String() string {
	return op.Mnemonic()
}

// Instruction is a single machine instruction. Instructions are values and are
// never modified after creation. Value is the operand of PushConst, Name the
// operand of Load and Store.
type Instruction struct {
	Code  Opcode
	Value int32
	Name  string
}

// Push creates a PushConst instruction.
func Push(v int32) Instruction {
	return Instruction{Code: PushConst, Value: v}
}

// LoadVar creates a Load instruction for variable name.
func LoadVar(name string) Instruction {
	return Instruction{Code: Load, Name: name}
}

// StoreVar creates a Store instruction for variable name.
func StoreVar(name string) Instruction {
	return Instruction{Code: Store, Name: name}
}

// Op creates an instruction without operands, e.g. Op(Add).
func Op(code Opcode) Instruction {
	return Instruction{Code: code}
}

// String shows an instruction the way a person would read it, e.g. "PUSH\t3".
func (i Instruction) String() string {
	switch i.Code {
	case PushConst:
		return fmt.Sprintf("%s\t%d", i.Code.Mnemonic(), i.Value)
	case Load, Store:
		return i.Code.Mnemonic() + "\t" + i.Name
	}
	return i.Code.Mnemonic()
}

// Code is a sequence of instructions, i.e. a compiled program.
type Code []Instruction

// Listing writes the code to w, one instruction per line.
func (c Code) Listing(w io.Writer) error {
	for _, instr := range c {
		if _, err := fmt.Fprintln(w, instr.String()); err != nil {
			return err
		}
	}
	return nil
}
