/*
Package tree implements parse trees for Dendron programs.

A program is a sequence of statements (assignments and prints), each of which owns
an expression tree. Trees are built bottom-up by the parser in package lang and
are not modified afterwards.

Statement and Expression are closed sets of node types. Every operation on trees is
a function with a type switch over all node types:

■ Execute / Evaluate interpret a tree against a runtime environment,

■ Infix / InfixExpr render a tree in infix notation,

■ Emit / EmitExpr generate code for the virtual machine of package machine.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package tree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'dendron.tree'.
func tracer() tracing.Trace {
	return tracing.Select("dendron.tree")
}
