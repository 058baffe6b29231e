/*
Package program ties the parts of Dendron together.

A Program is created from tokens or from source text and may then be displayed in
infix notation, interpreted, or compiled and executed on the virtual machine:

    prog, err := program.ParseSource(":= x 3  @ * x x")
    prog.Display(os.Stdout)
    vars, err := prog.Interpret(os.Stdout, reporter)
    code := prog.Compile()
    vars, err = program.Execute(code, os.Stdout, reporter)

Interpretation and execution each work on a fresh variable table.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package program

import (
	"fmt"
	"io"

	"github.com/npillmayer/dendron/lang"
	"github.com/npillmayer/dendron/machine"
	"github.com/npillmayer/dendron/runtime"
	"github.com/npillmayer/dendron/tree"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'dendron.program'.
func tracer() tracing.Trace {
	return tracing.Select("dendron.program")
}

// Program is a parsed Dendron program.
type Program struct {
	stmts []tree.Statement
}

// Parse parses a program given as a sequence of tokens.
func Parse(tokens []string) (*Program, error) {
	stmts, err := lang.Parse(tokens)
	if err != nil {
		return nil, err
	}
	return &Program{stmts: stmts}, nil
}

// ParseSource lexes and parses a program given as source text.
func ParseSource(source string) (*Program, error) {
	tokens, err := lang.Tokenize(source)
	if err != nil {
		return nil, err
	}
	return Parse(tokens)
}

// Statements returns the statements of the program, in order.
func (p *Program) Statements() []tree.Statement {
	return p.stmts
}

// Append adds the statements of another program to the end of p.
func (p *Program) Append(other *Program) {
	p.stmts = append(p.stmts, other.stmts...)
}

// Len returns the number of statements.
func (p *Program) Len() int {
	return len(p.stmts)
}

// Display writes the program in infix notation to w, one statement per line.
func (p *Program) Display(w io.Writer) error {
	for _, stmt := range p.stmts {
		if _, err := fmt.Fprintln(w, tree.Infix(stmt)); err != nil {
			return err
		}
	}
	return nil
}

// Interpret runs the program by walking the tree, with a fresh variable table.
// Printed values go to out.
//
// Execution stops at the first failing statement. The error is handed to the
// reporter and returned. In any case the variable table is dumped to the
// reporter and returned.
func (p *Program) Interpret(out io.Writer, rep Reporter) (*runtime.SymbolTable, error) {
	rep = reporterOrDefault(rep)
	rt := runtime.NewRuntimeEnvironment(out)
	err := p.InterpretWith(rt)
	if err != nil {
		rep.Report(err)
	}
	rep.Dump(rt.Vars)
	return rt.Vars, err
}

// InterpretWith runs the program against an existing runtime environment. This is
// for clients which keep variables between runs, like an interactive session.
func (p *Program) InterpretWith(rt *runtime.Runtime) error {
	tracer().Infof("Interpreting the parse tree...")
	for i, stmt := range p.stmts {
		if err := tree.Execute(stmt, rt); err != nil {
			return fmt.Errorf("statement #%d (%s): %w", i+1, tree.Infix(stmt), err)
		}
	}
	tracer().Infof("Interpretation complete")
	return nil
}

// Compile builds the machine code for the program.
func (p *Program) Compile() machine.Code {
	var code machine.Code
	for _, stmt := range p.stmts {
		code = append(code, tree.Emit(stmt)...)
	}
	tracer().Debugf("compiled %d statements into %d instructions", len(p.stmts), len(code))
	return code
}

// Execute runs compiled code on a fresh virtual machine. Printed values go to out.
// A non-empty stack at the end of the run is reported, but is not an error.
// Errors are handled as for Interpret.
func Execute(code machine.Code, out io.Writer, rep Reporter) (*runtime.SymbolTable, error) {
	rep = reporterOrDefault(rep)
	m := machine.New(machine.WithOutput(out))
	report, err := m.Execute(code)
	if err != nil {
		rep.Report(err)
	}
	rep.StackSize(report.StackSize)
	rep.Dump(m.Vars())
	return m.Vars(), err
}
