package lang

import (
	"fmt"
	"sync"

	"github.com/npillmayer/dendron"
	"github.com/npillmayer/dendron/scanner"
	"github.com/npillmayer/dendron/scanner/lexmach"
	"github.com/timtadh/lexmachine"
)

// The tokens representing literal lexemes: statement leaders and operators
var literals = []string{":=", "@", "+", "-", "*", "/", "_", "#"}

// Dendron has no keywords
var keywords = []string{}

// Token categories which are not literals
var tokens = []string{"ID", "NUM"}

// tokenIds will be set in initTokens()
var tokenIds map[string]int // A map from the token names to their token types

var initOnce sync.Once // monitors one-time initialization
func initTokens() {
	initOnce.Do(func() {
		tokenIds = make(map[string]int)
		for i, tok := range tokens {
			tokenIds[tok] = i + 1
		}
		for i, lit := range literals {
			tokenIds[lit] = i + 10
		}
	})
}

// Token returns a token name and its value.
func Token(t string) (string, int) {
	initTokens()
	id, ok := tokenIds[t]
	if !ok {
		panic(fmt.Errorf("unknown token: %s", t))
	}
	return t, id
}

var lexer *lexmach.LMAdapter
var lexerErr error
var lexerOnce sync.Once // monitors one-time creation of the lexer

// Lexer returns the lexmachine lexer for Dendron. The DFA is compiled once
// and shared.
func Lexer() (*lexmach.LMAdapter, error) {
	lexerOnce.Do(func() {
		initTokens()
		tracer().Infof("Creating lexer")
		init := func(lexer *lexmachine.Lexer) {
			lexer.Add([]byte(`;[^\n]*\n?`), lexmach.Skip) // skip comments
			lexer.Add([]byte(`([a-z]|[A-Z])([a-z]|[A-Z]|[0-9]|_)*`), makeToken("ID"))
			lexer.Add([]byte(`\-?[0-9]+`), makeToken("NUM"))
			lexer.Add([]byte(`( |\t|\n|\r)+`), lexmach.Skip)
		}
		lexer, lexerErr = lexmach.NewLMAdapter(init, literals, keywords, tokenIds)
	})
	return lexer, lexerErr
}

func makeToken(s string) lexmachine.Action {
	id, ok := tokenIds[s]
	if !ok {
		panic(fmt.Errorf("unknown token: %s", s))
	}
	return lexmach.MakeToken(s, id)
}

// Scan splits Dendron source text into tokens. Characters which do not start a
// token are reported as dendron.IllegalToken; the tokens found so far are
// returned together with the error.
func Scan(input string) ([]dendron.Token, error) {
	lex, err := Lexer()
	if err != nil {
		return nil, err
	}
	scan, err := lex.Scanner(input)
	if err != nil {
		return nil, err
	}
	var scanErr error
	scan.SetErrorHandler(func(e error) {
		tracer().Errorf("%v", e)
		if scanErr == nil {
			scanErr = dendron.Errorf(dendron.IllegalToken, "%v", e)
		}
	})
	var toks []dendron.Token
	for token := scan.NextToken(); token.TokType() != scanner.EOF; token = scan.NextToken() {
		tracer().Debugf("token = %q with type = %d", token.Lexeme(), token.TokType())
		toks = append(toks, token)
	}
	return toks, scanErr
}

// Tokenize splits Dendron source text into a sequence of token strings, ready to
// be handed to Parse.
func Tokenize(input string) ([]string, error) {
	toks, err := Scan(input)
	lexemes := make([]string, len(toks))
	for i, t := range toks {
		lexemes[i] = t.Lexeme()
	}
	return lexemes, err
}
