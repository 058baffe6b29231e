/*
Package machine implements a small stack-based virtual machine for Dendron.

The machine has an instruction set, a variable table (instead of general-purpose
memory) and a value stack on which calculations are performed. Code is a straight
sequence of instructions: there are no jumps, every instruction is executed exactly
once and in order.

    code := machine.Code{
        machine.Push(2),
        machine.Push(3),
        machine.Op(machine.Add),
        machine.Op(machine.Print),
    }
    m := machine.New(machine.WithOutput(os.Stdout))
    report, err := m.Execute(code)   // prints "=== 5"

Binary instructions pop their second operand first, then the first one, and push
"first OP second".

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package machine

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'dendron.machine'.
func tracer() tracing.Trace {
	return tracing.Select("dendron.machine")
}
