package lr

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// Expression grammar from the dragon book:
//
//     E  →  E + T  |  T
//     T  →  T * F  |  F
//     F  →  ( E )  |  id
//
func makeExprGrammar(t *testing.T) *Grammar {
	b := NewGrammarBuilder("Expressions")
	b.LHS("E").N("E").T("+").N("T").End()
	b.LHS("E").N("T").End()
	b.LHS("T").N("T").T("*").N("F").End()
	b.LHS("T").N("F").End()
	b.LHS("F").T("(").N("E").T(")").End()
	b.LHS("F").T("id").End()
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func makeEpsGrammar(t *testing.T) *Grammar {
	b := NewGrammarBuilder("G")
	b.LHS("S").N("A").T("a").End()
	b.LHS("A").N("B").N("D").End()
	b.LHS("B").T("b").End()
	b.LHS("B").Epsilon()
	b.LHS("D").T("d").End()
	b.LHS("D").Epsilon()
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func TestGrammarAugmented(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slrgen.lr")
	defer teardown()
	//
	g := makeExprGrammar(t)
	g.Dump()
	if g.Size() != 7 {
		t.Errorf("expected grammar to have 7 rules, has %d", g.Size())
	}
	if g.Start().Name != "E'" || g.UserStart().Name != "E" {
		t.Errorf("expected start rule E' → E, is %v", g.Rule(0))
	}
	if g.Rule(0).String() != "E' → E" {
		t.Errorf("unexpected start rule %q", g.Rule(0))
	}
	if g.Rule(1).String() != "E → E + T" {
		t.Errorf("unexpected rule 1: %q", g.Rule(1))
	}
	if g.EOF().Value != g.SymbolCount()-1 {
		t.Errorf("expected $ to be the last column, has value %d", g.EOF().Value)
	}
	if len(g.Terminals()) != 5 {
		t.Errorf("expected 5 terminals, have %v", g.Terminals())
	}
	if len(g.NonTerminals()) != 4 {
		t.Errorf("expected 4 non-terminals (incl. E'), have %v", g.NonTerminals())
	}
}

func TestGrammarStartPrimeUnique(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slrgen.lr")
	defer teardown()
	//
	b := NewGrammarBuilder("Primes")
	b.LHS("S").N("S'").End()
	b.LHS("S'").T("x").End()
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	if g.Start().Name != "S''" {
		t.Errorf("expected augmented start symbol to be S'', is %v", g.Start())
	}
}

func TestGrammarErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slrgen.lr")
	defer teardown()
	//
	if _, err := NewGrammarBuilder("empty").Grammar(); err != ErrEmptyGrammar {
		t.Errorf("expected ErrEmptyGrammar, have %v", err)
	}
	b := NewGrammarBuilder("undefined")
	b.LHS("S").N("A").End()
	if _, err := b.Grammar(); err == nil {
		t.Errorf("expected undefined symbol A to be flagged")
	} else if u, ok := err.(*UndefinedSymbolError); !ok || u.Name != "A" {
		t.Errorf("expected UndefinedSymbolError for A, have %v", err)
	}
	b = NewGrammarBuilder("start")
	b.LHS("S").T("a").End()
	b.SetStart("X")
	if _, err := b.Grammar(); err == nil {
		t.Errorf("expected undefined start symbol to be flagged")
	} else if _, ok := err.(*UndefinedStartError); !ok {
		t.Errorf("expected UndefinedStartError, have %v", err)
	}
	b = NewGrammarBuilder("mixed")
	b.LHS("S").T("S").End()
	if _, err := b.Grammar(); err == nil {
		t.Errorf("expected S used as terminal and non-terminal to be flagged")
	}
}

func TestGrammarDuplicateRules(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slrgen.lr")
	defer teardown()
	//
	b := NewGrammarBuilder("dup")
	b.LHS("S").T("a").End()
	b.LHS("S").T("a").End()
	b.LHS("S").Epsilon()
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	if g.Size() != 3 {
		t.Errorf("expected duplicate rule to be dropped, have %d rules", g.Size())
	}
	if g.Rule(2).String() != "S → ε" {
		t.Errorf("expected ε-rule to print as S → ε, is %q", g.Rule(2))
	}
}

func TestGrammarUnreachable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slrgen.lr")
	defer teardown()
	//
	b := NewGrammarBuilder("unreachable")
	b.LHS("S").T("a").End()
	b.LHS("X").T("x").End()
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	u := g.Unreachable()
	if len(u) != 1 || u[0].Name != "X" {
		t.Errorf("expected X to be unreachable, have %v", u)
	}
}

func TestItems(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slrgen.lr")
	defer teardown()
	//
	g := makeExprGrammar(t)
	i, A := StartItem(g.Rule(1))
	if A.Name != "E" || i.String() != "E → • E + T" {
		t.Errorf("unexpected start item %v / %v", i, A)
	}
	i = i.Advance().Advance()
	if i.String() != "E → E + • T" || i.PeekSymbol().Name != "T" {
		t.Errorf("unexpected item %v", i)
	}
	i = i.Advance()
	if !i.IsComplete() || i.PeekSymbol() != nil || i.Advance() != i {
		t.Errorf("expected %v to be complete", i)
	}
	if len(i.Prefix()) != 3 {
		t.Errorf("expected prefix of length 3, have %v", i.Prefix())
	}
}
