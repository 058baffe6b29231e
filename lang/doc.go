/*
Package lang provides a lexer and a parser for Dendron.

The lexer turns source text into a flat sequence of tokens. The parser then splits
the token sequence into statements, each starting with a leader token (`:=` or `@`),
and parses every statement by recursive descent:

    := x + 3 * 4 5    ⇒   x := ( 3 + ( 4 * 5 ) )
    @ _ x             ⇒   Print _x

As every operator has a fixed number of operands, no parentheses and no
backtracking are needed.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lang

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'dendron.lang'
func tracer() tracing.Trace {
	return tracing.Select("dendron.lang")
}
