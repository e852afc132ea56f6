package lr

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func names(syms []*Symbol) []string {
	n := make([]string, len(syms))
	for i, A := range syms {
		n[i] = A.Name
	}
	return n
}

func equalNames(syms []*Symbol, expected ...string) bool {
	n := names(syms)
	if len(n) != len(expected) {
		return false
	}
	for i := range n {
		if n[i] != expected[i] {
			return false
		}
	}
	return true
}

func TestFirstFollowExpressions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slrgen.lr")
	defer teardown()
	//
	g := makeExprGrammar(t)
	ga := Analysis(g)
	for _, A := range []string{"E", "T", "F"} {
		if first := ga.First(g.SymbolByName(A)); !equalNames(first, "(", "id") {
			t.Errorf("expected FIRST(%s) = [( id], is %v", A, first)
		}
	}
	var follow = map[string][]string{
		"E'": {"$"},
		"E":  {"+", ")", "$"},
		"T":  {"+", "*", ")", "$"},
		"F":  {"+", "*", ")", "$"},
	}
	for A, expected := range follow {
		if f := ga.Follow(g.SymbolByName(A)); !equalNames(f, expected...) {
			t.Errorf("expected FOLLOW(%s) = %v, is %v", A, expected, f)
		}
	}
	if ga.Follow(g.SymbolByName("id")) != nil {
		t.Errorf("expected FOLLOW of a terminal to be nil")
	}
}

func TestFirstFollowEpsilon(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slrgen.lr")
	defer teardown()
	//
	g := makeEpsGrammar(t)
	ga := Analysis(g)
	for _, A := range []string{"A", "B", "D"} {
		if !ga.DerivesEpsilon(g.SymbolByName(A)) {
			t.Errorf("expected %s ⇒* ε", A)
		}
	}
	if ga.DerivesEpsilon(g.SymbolByName("S")) {
		t.Errorf("expected S not to derive ε")
	}
	if f := ga.First(g.SymbolByName("A")); !equalNames(f, "ε", "b", "d") {
		t.Errorf("expected FIRST(A) = [ε b d], is %v", f)
	}
	if f := ga.First(g.SymbolByName("S")); !equalNames(f, "a", "b", "d") {
		t.Errorf("expected FIRST(S) = [a b d], is %v", f)
	}
	var follow = map[string][]string{
		"S": {"$"},
		"A": {"a"},
		"B": {"a", "d"},
		"D": {"a"},
	}
	for A, expected := range follow {
		if f := ga.Follow(g.SymbolByName(A)); !equalNames(f, expected...) {
			t.Errorf("expected FOLLOW(%s) = %v, is %v", A, expected, f)
		}
	}
	seq := []*Symbol{g.SymbolByName("B"), g.SymbolByName("D")}
	if f := ga.FirstOfSequence(seq); !equalNames(f, "ε", "b", "d") {
		t.Errorf("expected FIRST(B D) = [ε b d], is %v", f)
	}
}
