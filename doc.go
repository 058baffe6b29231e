/*
Package dendron implements Dendron, a tiny language in prefix notation.

Every Dendron statement starts with a leader token, either `:=` (assignment) or
`@` (print), and every expression is a prefix tree of operators and operands,
without parentheses:

    := x + 3 * 4 5        ; x = 3 + 4*5
    @ # x                 ; print the integer square root of x

A parsed program may be looked at in three ways: it may be interpreted by walking the
tree, rendered in infix notation, or compiled to code for a small stack machine.
Package structure is as follows:

■ lang: Package lang contains the lexer and the recursive-descent parser for Dendron.

■ tree: Package tree implements the nodes of a parse tree, together with
evaluation, infix rendering and code emission.

■ machine: Package machine implements the instruction set and a stack-based virtual machine.

■ runtime: Package runtime provides the variable table and integer arithmetic shared by
the interpreter and the virtual machine.

■ program: Package program ties everything together for clients.

The base package contains data types which are used throughout all the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package dendron
