/*
Package runtime implements the runtime environment of a Dendron run, consisting of
a variable table and an output channel for printed values.

Variable Table

Dendron knows a single value type, 32-bit signed integers. Variables are created on
first assignment; reading a variable before any assignment to it is an error.
The table is implemented as a symbol table of tags, one tag per variable.

Arithmetic

The integer operations of Dendron are implemented here, as the tree-walking
interpreter (package tree) and the virtual machine (package machine) have to agree
on every result and on every error.


----------------------------------------------------------------------

BSD License

Copyright (c) 2017-21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software or the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE. */
package runtime

import (
	"fmt"
	"io"

	"github.com/npillmayer/dendron"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'dendron.runtime'.
func tracer() tracing.Trace {
	return tracing.Select("dendron.runtime")
}

// Runtime is a type implementing a runtime environment for a single program run.
// A Runtime must not be shared between runs.
type Runtime struct {
	Vars *SymbolTable // variables of the run
	Out  io.Writer    // receives printed values
}

// NewRuntimeEnvironment constructs a new runtime environment with an empty
// variable table. Printed values go to out; if out is nil, they are discarded.
//
func NewRuntimeEnvironment(out io.Writer) *Runtime {
	if out == nil {
		out = io.Discard
	}
	rt := &Runtime{
		Vars: NewSymbolTable(),
		Out:  out,
	}
	return rt
}

// Load reads the value of a variable. Fails with dendron.UndefinedVariable if the
// variable has never been assigned to.
func (rt *Runtime) Load(name string) (int32, error) {
	tag := rt.Vars.ResolveTag(name)
	if tag == nil {
		tracer().Debugf("variable %q is not defined", name)
		return 0, dendron.Errorf(dendron.UndefinedVariable, "%s", name)
	}
	return tag.Value, nil
}

// Store assigns a value to a variable, creating it if necessary.
func (rt *Runtime) Store(name string, value int32) {
	tag, _ := rt.Vars.ResolveOrDefineTag(name)
	if tag == nil {
		tracer().Errorf("cannot store value into variable with empty name")
		return
	}
	tag.Value = value
	tracer().P("var", name).Debugf("stored %d", value)
}

// Print outputs a value. Interpreter and machine share this, so that
// both produce identical output.
func (rt *Runtime) Print(value int32) error {
	_, err := fmt.Fprintf(rt.Out, "=== %d\n", value)
	return err
}
