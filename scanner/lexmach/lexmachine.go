package lexmach

import (
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/dendron"
	"github.com/npillmayer/dendron/scanner"
	"github.com/npillmayer/schuko/tracing"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// tracer traces with key 'dendron.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("dendron.scanner")
}

// LMAdapter is a lexmachine adapter to use lexmachine as a scanner.
type LMAdapter struct {
	Lexer *lexmachine.Lexer
}

// NewLMAdapter creates a new lexmachine adapter. It receives a list of
// literals (':=', '@', …), a list of keywords and a
// map for translating token strings to their values.
//
// NewLMAdapter will return an error if compiling the DFA failed.
func NewLMAdapter(init func(*lexmachine.Lexer), literals []string, keywords []string, tokenIds map[string]int) (*LMAdapter, error) {
	adapter := &LMAdapter{}
	adapter.Lexer = lexmachine.NewLexer()
	init(adapter.Lexer)
	for _, lit := range literals {
		r := "\\" + strings.Join(strings.Split(lit, ""), "\\")
		adapter.Lexer.Add([]byte(r), MakeToken(lit, tokenIds[lit]))
	}
	for _, name := range keywords {
		adapter.Lexer.Add([]byte(strings.ToLower(name)), MakeToken(name, tokenIds[name]))
	}
	if err := adapter.Lexer.Compile(); err != nil {
		tracer().Errorf("Error compiling DFA: %v", err)
		return nil, err
	}
	return adapter, nil
}

// Scanner creates a scanner for a given input. The scanner will implement the
// Tokenizer interface.
func (lm *LMAdapter) Scanner(input string) (*LMScanner, error) {
	text := []byte(input)
	s, err := lm.Lexer.Scanner(text)
	if err != nil {
		return &LMScanner{}, err
	}
	return &LMScanner{scanner: s, text: text, Error: scanner.LogError}, nil
}

// LMScanner is a scanner type for lexmachine scanners, implementing the
// Tokenizer interface.
type LMScanner struct {
	scanner *lexmachine.Scanner
	text    []byte
	Error   func(error)
}

var _ scanner.Tokenizer = (*LMScanner)(nil)

// SetErrorHandler sets an error handler for the scanner.
func (lms *LMScanner) SetErrorHandler(h func(error)) {
	if h == nil {
		lms.Error = scanner.LogError
		return
	}
	lms.Error = h
}

// NextToken is part of the Tokenizer interface.
// Input which no pattern matches is reported to the error handler and skipped,
// at least one complete rune at a time.
func (lms *LMScanner) NextToken() dendron.Token {
	tok, err, eof := lms.scanner.Next()
	for err != nil {
		lms.Error(err)
		ui, is := err.(*machines.UnconsumedInput)
		if !is { // cannot recover from errors raised by actions
			return scanner.MakeDefaultToken(scanner.EOF, "", dendron.Span{0, 0})
		}
		tc := ui.FailTC
		if _, width := utf8.DecodeRune(lms.text[ui.StartTC:]); tc < ui.StartTC+width {
			tc = ui.StartTC + width
		}
		for tc < len(lms.text) && !utf8.RuneStart(lms.text[tc]) {
			tc++
		}
		lms.scanner.TC = tc
		tok, err, eof = lms.scanner.Next()
	}
	if eof {
		return scanner.MakeDefaultToken(scanner.EOF, "", dendron.Span{0, 0})
	}
	tracer().Debugf("tok is %T | %v", tok, tok)
	token := tok.(*lexmachine.Token)
	return scanner.MakeDefaultToken(
		dendron.TokType(token.Type),
		string(token.Lexeme),
		dendron.Span{uint64(token.TC), uint64(token.TC + len(token.Lexeme))},
	)
}

// ---------------------------------------------------------------------------

// Skip is a pre-defined action which ignores the scanned match.
func Skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// MakeToken is a pre-defined action which wraps a scanned match into a token.
func MakeToken(name string, id int) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(id, string(m.Bytes), m), nil
	}
}
