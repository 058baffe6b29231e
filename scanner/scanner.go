/*
Package scanner defines an interface for scanners feeding the Dendron parser.

The default implementation is an adapter for lexmachine, living in sub-package `lexmach`.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scanner

import (
	"fmt"
	"text/scanner"

	"github.com/npillmayer/dendron"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'dendron.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("dendron.scanner")
}

// EOF is identical to text/scanner.EOF.
const EOF = scanner.EOF

// Tokenizer is a scanner interface.
type Tokenizer interface {
	NextToken() dendron.Token
	SetErrorHandler(func(error))
}

// LogError is the default error reporting function for scanners.
func LogError(e error) {
	tracer().Errorf("scanner error: " + e.Error())
}

// --- Default tokens --------------------------------------------------------

// DefaultToken is a very unsophisticated token type, used by the lexmachine
// scanner.
type DefaultToken struct {
	kind   dendron.TokType
	lexeme string
	span   dendron.Span
}

// MakeDefaultToken creates a token.
func MakeDefaultToken(typ dendron.TokType, lexeme string, span dendron.Span) DefaultToken {
	return DefaultToken{
		kind:   typ,
		lexeme: lexeme,
		span:   span,
	}
}

func (t DefaultToken) TokType() dendron.TokType {
	return t.kind
}

func (t DefaultToken) Lexeme() string {
	return t.lexeme
}

func (t DefaultToken) Span() dendron.Span {
	return t.span
}

func (t DefaultToken) String() string {
	return fmt.Sprintf("%q@%v", t.lexeme, t.span)
}
