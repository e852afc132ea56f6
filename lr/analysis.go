package lr

import (
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
)

// === Static Grammar Analysis ===============================================

// LRAnalysis is an object for grammar analysis: it determines which
// non-terminals derive ε and computes FIRST and FOLLOW sets.
// Create one with Analysis(g).
//
// Refer to "Crafting A Compiler" by Charles N. Fisher & Richard J. LeBlanc, Jr.,
// Section 4.5 (First and Follow sets).
type LRAnalysis struct {
	g          *Grammar
	derivesEps map[*Symbol]bool
	firstSets  map[*Symbol]*treeset.Set
	followSets map[*Symbol]*treeset.Set
}

// Analysis analyses a grammar. All the computations are done at once.
func Analysis(g *Grammar) *LRAnalysis {
	ga := &LRAnalysis{
		g:          g,
		derivesEps: make(map[*Symbol]bool),
		firstSets:  make(map[*Symbol]*treeset.Set),
		followSets: make(map[*Symbol]*treeset.Set),
	}
	ga.markEpsilons()
	ga.computeFirstSets()
	ga.computeFollowSets()
	return ga
}

// Grammar returns the grammar this analysis has been created for.
func (ga *LRAnalysis) Grammar() *Grammar {
	return ga.g
}

// We need this for symbol sets. It sorts symbols by value, i.e. ε first and $ last.
func symbolComparator(s1, s2 interface{}) int {
	return utils.IntComparator(s1.(*Symbol).Value, s2.(*Symbol).Value)
}

func newSymbolSet() *treeset.Set {
	return treeset.NewWith(symbolComparator)
}

// addAll adds all symbols from src to dest, optionally omitting ε. Returns true
// if dest has changed.
func addAll(dest, src *treeset.Set, withEpsilon bool) bool {
	size := dest.Size()
	for _, x := range src.Values() {
		if !withEpsilon && x.(*Symbol).IsEpsilon() {
			continue
		}
		dest.Add(x)
	}
	return dest.Size() > size
}

func symbolSlice(set *treeset.Set) []*Symbol {
	if set == nil {
		return nil
	}
	syms := make([]*Symbol, 0, set.Size())
	for _, x := range set.Values() {
		syms = append(syms, x.(*Symbol))
	}
	return syms
}

// --- ε-derivations ---------------------------------------------------------

func (ga *LRAnalysis) markEpsilons() {
	for changed := true; changed; {
		changed = false
		for _, r := range ga.g.rules {
			if ga.derivesEps[r.LHS] {
				continue
			}
			nullable := true
			for _, A := range r.rhs {
				if !ga.derivesEps[A] {
					nullable = false
					break
				}
			}
			if nullable {
				tracer().Debugf("%v ⇒* ε", r.LHS)
				ga.derivesEps[r.LHS] = true
				changed = true
			}
		}
	}
}

// DerivesEpsilon returns true if A ⇒* ε.
func (ga *LRAnalysis) DerivesEpsilon(A *Symbol) bool {
	return ga.derivesEps[A]
}

// --- FIRST -----------------------------------------------------------------

func (ga *LRAnalysis) computeFirstSets() {
	for _, A := range ga.g.symbols {
		set := newSymbolSet()
		if A.IsTerminal() {
			set.Add(A)
		} else if ga.derivesEps[A] {
			set.Add(ga.g.epsilon)
		}
		ga.firstSets[A] = set
	}
	for changed := true; changed; {
		changed = false
		for _, r := range ga.g.rules {
			first := ga.firstOfSequence(r.rhs)
			if addAll(ga.firstSets[r.LHS], first, false) {
				changed = true
			}
		}
	}
}

// firstOfSequence computes FIRST(X1 X2 … Xn) from the FIRST sets of the Xi
// as known so far. The result contains ε if all of X1…Xn derive ε.
func (ga *LRAnalysis) firstOfSequence(syms []*Symbol) *treeset.Set {
	first := newSymbolSet()
	for _, A := range syms {
		if A.IsEOF() {
			first.Add(A)
			return first
		}
		addAll(first, ga.firstSets[A], false)
		if !ga.derivesEps[A] {
			return first
		}
	}
	first.Add(ga.g.epsilon)
	return first
}

// First returns FIRST(A), ordered by symbol value. If A derives ε, the
// result will contain the grammar's ε symbol.
func (ga *LRAnalysis) First(A *Symbol) []*Symbol {
	return symbolSlice(ga.firstSets[A])
}

// FirstOfSequence returns FIRST(α) for a sequence α of symbols.
func (ga *LRAnalysis) FirstOfSequence(syms []*Symbol) []*Symbol {
	return symbolSlice(ga.firstOfSequence(syms))
}

// --- FOLLOW ----------------------------------------------------------------

// FOLLOW(S') = { $ }; for every rule A → α B β:
//
//    FIRST(β) \ {ε} ⊆ FOLLOW(B)
//    FOLLOW(A) ⊆ FOLLOW(B), if β ⇒* ε
//
func (ga *LRAnalysis) computeFollowSets() {
	for _, A := range ga.g.NonTerminals() {
		ga.followSets[A] = newSymbolSet()
	}
	ga.followSets[ga.g.Start()].Add(ga.g.eof)
	for changed := true; changed; {
		changed = false
		for _, r := range ga.g.rules {
			for i, B := range r.rhs {
				if !B.IsNonTerminal() {
					continue
				}
				beta := ga.firstOfSequence(r.rhs[i+1:])
				if addAll(ga.followSets[B], beta, false) {
					changed = true
				}
				if beta.Contains(ga.g.epsilon) {
					if addAll(ga.followSets[B], ga.followSets[r.LHS], false) {
						changed = true
					}
				}
			}
		}
	}
	for _, A := range ga.g.NonTerminals() {
		tracer().Debugf("FOLLOW(%v) = %v", A, symbolSlice(ga.followSets[A]))
	}
}

// Follow returns FOLLOW(A), ordered by symbol value. The end-of-input marker $ is
// the last element, if present. Follow returns nil for terminals.
func (ga *LRAnalysis) Follow(A *Symbol) []*Symbol {
	return symbolSlice(ga.followSets[A])
}
