/*
Package drepl/main provides a command line tool (D.REPL) for Dendron programs.

Given a source file, D.REPL prints the program in infix notation, interprets it,
and/or compiles it and runs the code on the virtual machine:

    drepl -mode both examples/squares.den

Without a file argument, D.REPL starts an interactive session. Dendron statements
entered are interpreted immediately and collected into a session program; commands
starting with a colon work on the session program (type `:help`).

Settings may be read from a YAML file with option -config:

    trace: Info          # Debug | Info | Error
    mode: both           # interpret | compile | both
    prompt: "dendron> "
    init: session.den    # loaded before the interactive session starts

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'dendron.repl'
func tracer() tracing.Trace {
	return tracing.Select("dendron.repl")
}

// tracingKeys are the trace keys of all Dendron packages.
var tracingKeys = []string{
	"dendron.repl",
	"dendron.lang",
	"dendron.scanner",
	"dendron.tree",
	"dendron.machine",
	"dendron.runtime",
	"dendron.program",
}
