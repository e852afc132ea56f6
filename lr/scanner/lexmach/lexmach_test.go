package lexmach

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/slrgen/lr/scanner"
	"github.com/timtadh/lexmachine"
)

const (
	tokSymbol = 1
	tokBar    = 2
)

var inputStrings = []string{
	"a",
	"E + T | T",
	"  ( E )|id  ",
	"α β\tγ",
	"",
}

var tokenCounts = []int{1, 5, 5, 3, 0}

func makeAdapter(t *testing.T) *LMAdapter {
	init := func(lexer *lexmachine.Lexer) {
		lexer.Add([]byte("( |\t|\r)+"), Skip)
		lexer.Add([]byte("[^ \t\r\n\\|]+"), MakeToken("SYMBOL", tokSymbol))
	}
	LM, err := NewLMAdapter(init, []string{"|"}, nil, map[string]int{"|": tokBar})
	if err != nil {
		t.Fatal(err)
	}
	return LM
}

func TestLMTokenCounts(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slrgen.scanner")
	defer teardown()
	//
	LM := makeAdapter(t)
	for i, input := range inputStrings {
		sc, err := LM.Scanner(input)
		if err != nil {
			t.Fatal(err)
		}
		count := 0
		for token := sc.NextToken(); token.TokType() != scanner.EOF; token = sc.NextToken() {
			t.Logf(" %4d | %10s | %v", token.TokType(), token.Lexeme(), token.Span())
			count++
		}
		if count != tokenCounts[i] {
			t.Errorf("expected token count for #%d to be %d, is %d", i, tokenCounts[i], count)
		}
	}
}

func TestLMTokenKinds(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slrgen.scanner")
	defer teardown()
	//
	LM := makeAdapter(t)
	sc, err := LM.Scanner("a|b")
	if err != nil {
		t.Fatal(err)
	}
	tokens, err := sc.Tokens()
	if err != nil {
		t.Fatal(err)
	}
	if len(tokens) != 3 {
		t.Fatalf("expected 3 tokens, have %d", len(tokens))
	}
	if tokens[1].TokType() != tokBar || tokens[1].Lexeme() != "|" {
		t.Errorf("expected second token to be a bar, is %v", tokens[1])
	}
	if tokens[2].Span().From() != 2 || tokens[2].Span().Len() != 1 {
		t.Errorf("expected third token to span (2…3), is %v", tokens[2].Span())
	}
}
