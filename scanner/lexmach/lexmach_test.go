package lexmach

import (
	"testing"

	"github.com/npillmayer/dendron"
	"github.com/npillmayer/dendron/scanner"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/timtadh/lexmachine"
)

var inputStrings = []string{
	"1",
	"1+12",
	"Hello World",
	`x=42 // commented `,
	"1,22,333",
	"a $ b",
}

var tokenCounts = []int{1, 3, 2, 3, 3, 2}

func TestLM(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dendron.scanner")
	defer teardown()
	//
	initTokens()
	init := func(lexer *lexmachine.Lexer) {
		lexer.Add([]byte(`//[^\n]*\n?`), Skip)
		lexer.Add([]byte(`([a-z]|[A-Z])([a-z]|[A-Z]|[0-9]|_)*`), MakeToken("ID", tokenIds["ID"]))
		lexer.Add([]byte(`[0-9]+`), MakeToken("NUM", tokenIds["NUM"]))
		lexer.Add([]byte(`( |\,|\t|\n|\r)+`), Skip)
	}
	LM, err := NewLMAdapter(init, literals, keywords, tokenIds)
	if err != nil {
		t.Fatal(err)
	}
	for i, input := range inputStrings {
		t.Logf("------+-----------------+--------")
		sc, err := LM.Scanner(input)
		if err != nil {
			t.Error(err)
		}
		errors := 0
		sc.SetErrorHandler(func(e error) {
			t.Logf("scanner error: %v", e)
			errors++
		})
		token := sc.NextToken()
		count := 0
		for token.TokType() != scanner.EOF {
			t.Logf(" %4d | %15s | @%5d", token.TokType(), token.Lexeme(), token.Span().From())
			token = sc.NextToken()
			count++
		}
		if count != tokenCounts[i] {
			t.Errorf("Expected token count for #%d to be %d, is %d", i, tokenCounts[i], count)
		}
		if input == "a $ b" && errors == 0 {
			t.Errorf("Expected an error for unknown character '$'")
		}
	}
	t.Logf("------+-----------------+--------")
}

func TestSkipsWholeRunes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dendron.scanner")
	defer teardown()
	//
	initTokens()
	init := func(lexer *lexmachine.Lexer) {
		lexer.Add([]byte(`([a-z]|[A-Z])+`), MakeToken("ID", tokenIds["ID"]))
		lexer.Add([]byte(`( )+`), Skip)
	}
	LM, err := NewLMAdapter(init, literals, keywords, tokenIds)
	if err != nil {
		t.Fatal(err)
	}
	sc, err := LM.Scanner("a é b")
	if err != nil {
		t.Fatal(err)
	}
	errors := 0
	sc.SetErrorHandler(func(e error) {
		t.Logf("scanner error: %v", e)
		errors++
	})
	var lexemes []string
	var last dendron.Span
	for token := sc.NextToken(); token.TokType() != scanner.EOF; token = sc.NextToken() {
		lexemes = append(lexemes, token.Lexeme())
		last = token.Span()
	}
	if errors != 1 {
		t.Errorf("expected 1 error for 'é', got %d", errors)
	}
	if len(lexemes) != 2 || lexemes[1] != "b" {
		t.Fatalf("expected tokens [a b], got %v", lexemes)
	}
	if last.From() != 5 || last.To() != 6 {
		t.Errorf("expected 'b' at 5…6, got %v", last)
	}
}

var literals []string       // The tokens representing literal strings
var keywords []string       // The keyword tokens
var tokens []string         // All of the tokens (including literals and keywords)
var tokenIds map[string]int // A map from the token names to their int ids

func initTokens() {
	literals = []string{
		"=",
		"+",
		"-",
		"*",
		"/",
	}
	keywords = []string{}
	tokens = []string{
		"ID",
		"NUM",
	}
	tokens = append(tokens, literals...)
	tokenIds = make(map[string]int)
	tokenIds["ID"] = 1
	tokenIds["NUM"] = 2
	for i, tok := range tokens[2:] {
		tokenIds[tok] = i + 10
	}
}
