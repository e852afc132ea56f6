package lr

import (
	"fmt"
	"strings"

	"github.com/npillmayer/slrgen/lr/iteratable"
)

// === Symbols ===============================================================

// SymbolKind classifies grammar symbols. The kind of a symbol is derived from
// the rules of a grammar: a symbol is a non-terminal iff it is the left hand side
// of at least one rule.
type SymbolKind int8

// Kinds of symbols.
const (
	TerminalKind SymbolKind = iota
	NonTerminalKind
	EpsilonKind
	EOFKind
)

func (k SymbolKind) String() string {
	switch k {
	case TerminalKind:
		return "terminal"
	case NonTerminalKind:
		return "non-terminal"
	case EpsilonKind:
		return "epsilon"
	case EOFKind:
		return "eof"
	}
	return "<unknown symbol kind>"
}

// Symbol is a grammar symbol. Symbols are unique within a grammar, i.e.
// they may be compared by pointer.
//
// Value is a serial number of the symbol and defines the canonical order of the
// grammar's alphabet: symbols are numbered in the order of their first appearance,
// starting with the augmented start symbol at 0. The end-of-input marker $ has
// the highest value, ε has value -1.
type Symbol struct {
	Name  string
	Value int
	kind  SymbolKind
}

// Names of pseudo-symbols, reserved for the grammar.
const (
	EOFName     = "$"
	EpsilonName = "ε"
)

// Kind returns the kind of the symbol.
func (A *Symbol) Kind() SymbolKind {
	return A.kind
}

// IsTerminal returns true if A is a terminal, i.e. matches an input token.
// Neither ε nor $ are considered to be terminals.
func (A *Symbol) IsTerminal() bool {
	return A != nil && A.kind == TerminalKind
}

// IsNonTerminal returns true if A is defined by one or more rules.
func (A *Symbol) IsNonTerminal() bool {
	return A != nil && A.kind == NonTerminalKind
}

// IsEpsilon returns true for the ε pseudo-symbol.
func (A *Symbol) IsEpsilon() bool {
	return A != nil && A.kind == EpsilonKind
}

// IsEOF returns true for the end-of-input marker $.
func (A *Symbol) IsEOF() bool {
	return A != nil && A.kind == EOFKind
}

func (A *Symbol) String() string {
	if A == nil {
		return "<nil>"
	}
	return A.Name
}

// === Rules =================================================================

// Rule is a type for rules of a grammar. Rules cannot be changed once they are
// part of a grammar.
//
// Serial 0 is the augmented start rule S' → S, client rules are numbered from 1
// in the order they have been defined. The serial number is used to denote
// reduce actions.
type Rule struct {
	Serial int
	LHS    *Symbol
	rhs    []*Symbol
}

// RHS returns the right hand side of a rule. The slice must not be modified.
func (r *Rule) RHS() []*Symbol {
	return r.rhs
}

// Len returns the number of symbols on the right hand side.
func (r *Rule) Len() int {
	return len(r.rhs)
}

// IsEpsilon is true for rules A → ε.
func (r *Rule) IsEpsilon() bool {
	return len(r.rhs) == 0
}

func (r *Rule) String() string {
	return fmt.Sprintf("%v → %s", r.LHS, symbolsString(r.rhs, -1))
}

func symbolsString(syms []*Symbol, dot int) string {
	if len(syms) == 0 && dot < 0 {
		return EpsilonName
	}
	var b strings.Builder
	for i, A := range syms {
		if i == dot {
			b.WriteString("• ")
		}
		b.WriteString(A.Name)
		if i < len(syms)-1 {
			b.WriteByte(' ')
		}
	}
	if dot == len(syms) {
		if len(syms) > 0 {
			b.WriteByte(' ')
		}
		b.WriteString("•")
	}
	return b.String()
}

func (r *Rule) hasRHS(rhs []*Symbol) bool {
	if len(r.rhs) != len(rhs) {
		return false
	}
	for i, A := range r.rhs {
		if A != rhs[i] {
			return false
		}
	}
	return true
}

// === Grammars ==============================================================

// Grammar is a type for a context-free grammar. Grammars are created using a
// GrammarBuilder and are immutable thereafter.
//
// A grammar is always augmented: rule 0 is the synthetic rule S' → S, where S
// is the client's start symbol and S' appears nowhere else.
type Grammar struct {
	Name    string
	rules   []*Rule
	symbols []*Symbol          // ordered by value
	byName  map[string]*Symbol // lookup by name
	epsilon *Symbol
	eof     *Symbol
}

// Rule returns rule no. no, or nil if out of range.
func (g *Grammar) Rule(no int) *Rule {
	if no < 0 || no >= len(g.rules) {
		return nil
	}
	return g.rules[no]
}

// Rules returns all rules, starting with the augmented start rule.
func (g *Grammar) Rules() []*Rule {
	r := make([]*Rule, len(g.rules))
	copy(r, g.rules)
	return r
}

// Size returns the number of rules, including the augmented start rule.
func (g *Grammar) Size() int {
	return len(g.rules)
}

// Start returns the augmented start symbol S'.
func (g *Grammar) Start() *Symbol {
	return g.rules[0].LHS
}

// UserStart returns the client's start symbol S, where rule 0 is S' → S.
func (g *Grammar) UserStart() *Symbol {
	return g.rules[0].rhs[0]
}

// EOF returns the end-of-input marker $. It is not part of the grammar's
// alphabet.
func (g *Grammar) EOF() *Symbol {
	return g.eof
}

// Epsilon returns the pseudo-symbol ε, as used within FIRST-sets.
func (g *Grammar) Epsilon() *Symbol {
	return g.epsilon
}

// SymbolByName returns a grammar symbol by name, or nil. ε and $ will be found
// as well.
func (g *Grammar) SymbolByName(name string) *Symbol {
	return g.byName[name]
}

// SymbolCount returns the number of symbols of the grammar's alphabet, plus 1
// for $.
func (g *Grammar) SymbolCount() int {
	return len(g.symbols) + 1
}

// EachSymbol iterates over all symbols of the alphabet (terminals and non-terminals,
// but not $ or ε) in canonical order. The mapper function may return a value,
// which is collected into the result slice, if non-nil.
func (g *Grammar) EachSymbol(mapper func(A *Symbol) interface{}) []interface{} {
	return g.eachSymbolOf(-1, mapper)
}

func (g *Grammar) eachSymbolOf(kind SymbolKind, mapper func(A *Symbol) interface{}) []interface{} {
	var r []interface{}
	for _, A := range g.symbols {
		if kind >= 0 && A.kind != kind {
			continue
		}
		if v := mapper(A); v != nil {
			r = append(r, v)
		}
	}
	return r
}

// Terminals returns all terminals of the grammar in canonical order.
func (g *Grammar) Terminals() []*Symbol {
	return g.symbolsOf(TerminalKind)
}

// NonTerminals returns all non-terminals of the grammar in canonical order,
// starting with the augmented start symbol.
func (g *Grammar) NonTerminals() []*Symbol {
	return g.symbolsOf(NonTerminalKind)
}

func (g *Grammar) symbolsOf(kind SymbolKind) []*Symbol {
	var syms []*Symbol
	for _, A := range g.symbols {
		if A.kind == kind {
			syms = append(syms, A)
		}
	}
	return syms
}

// RulesFor returns all rules with LHS A, in order of definition.
func (g *Grammar) RulesFor(A *Symbol) []*Rule {
	var rules []*Rule
	for _, r := range g.rules {
		if r != nil && r.LHS == A { // rule 0 is nil while building
			rules = append(rules, r)
		}
	}
	return rules
}

// FindNonTermRules returns a set of start items A → •α for every rule of A.
func (g *Grammar) FindNonTermRules(A *Symbol) *iteratable.Set {
	iset := newItemSet()
	for _, r := range g.RulesFor(A) {
		item, _ := StartItem(r)
		iset.Add(item)
	}
	return iset
}

// Unreachable returns all non-terminals which cannot be reached from the start
// symbol. Unreachable symbols are legal and are not removed from the grammar;
// this is a diagnostic for clients.
func (g *Grammar) Unreachable() []*Symbol {
	reached := map[*Symbol]bool{g.Start(): true}
	queue := []*Symbol{g.Start()}
	for len(queue) > 0 {
		A := queue[0]
		queue = queue[1:]
		for _, r := range g.RulesFor(A) {
			for _, B := range r.rhs {
				if B.IsNonTerminal() && !reached[B] {
					reached[B] = true
					queue = append(queue, B)
				}
			}
		}
	}
	var unreached []*Symbol
	for _, A := range g.NonTerminals() {
		if !reached[A] {
			unreached = append(unreached, A)
		}
	}
	return unreached
}

// Dump is a debugging helper: it traces all rules of the grammar.
func (g *Grammar) Dump() {
	tracer().Debugf("--- %s --------------------------------------------", g.Name)
	for _, r := range g.rules {
		tracer().Debugf("%3d: %s", r.Serial, r)
	}
	tracer().Debugf("-------------------------------------------------------")
}

func (g *Grammar) String() string {
	var b strings.Builder
	for _, r := range g.rules {
		b.WriteString(fmt.Sprintf("%d: %s\n", r.Serial, r))
	}
	return b.String()
}

// === Grammar Builder =======================================================

// GrammarBuilder is a tool to construct grammars. Create one with
// NewGrammarBuilder and add rules:
//
//    b := lr.NewGrammarBuilder("G")
//    b.LHS("S").N("A").T("a").End()  // S  ->  A a
//    b.LHS("A").N("B").N("D").End()  // A  ->  B D
//    b.LHS("B").T("b").End()         // B  ->  b
//    b.LHS("B").Epsilon()            // B  ->
//    b.LHS("D").T("d").End()         // D  ->  d
//    g, err := b.Grammar()
//
// The LHS of the first rule is the start symbol, unless set otherwise with
// SetStart. Grammar() will augment the grammar with a rule S' → S.
type GrammarBuilder struct {
	g     *Grammar
	start string
	err   error
}

// NewGrammarBuilder creates a builder for a grammar named gname.
func NewGrammarBuilder(gname string) *GrammarBuilder {
	g := &Grammar{
		Name:    gname,
		rules:   make([]*Rule, 1, 16), // rule 0 is reserved for S' → S
		byName:  make(map[string]*Symbol),
		epsilon: &Symbol{Name: EpsilonName, Value: -1, kind: EpsilonKind},
	}
	// the augmented start symbol will be named as soon as the start symbol is known
	g.symbols = append(g.symbols, &Symbol{Value: 0, kind: NonTerminalKind})
	return &GrammarBuilder{g: g}
}

// SetStart sets the start symbol of the grammar, overriding the default of
// using the first rule's LHS.
func (gb *GrammarBuilder) SetStart(name string) *GrammarBuilder {
	gb.start = name
	return gb
}

// LHS starts a new rule for non-terminal name.
func (gb *GrammarBuilder) LHS(name string) *RuleBuilder {
	A := gb.symbol(name, NonTerminalKind)
	return &RuleBuilder{gb: gb, rule: &Rule{LHS: A}}
}

func (gb *GrammarBuilder) symbol(name string, kind SymbolKind) *Symbol {
	if name == "" || name == EOFName || name == EpsilonName {
		gb.fail(fmt.Errorf("illegal symbol name %q", name))
		return &Symbol{Name: name, Value: -1, kind: kind}
	}
	if A, ok := gb.g.byName[name]; ok {
		if A.kind != kind {
			gb.fail(fmt.Errorf("symbol %q used as %s and as %s", name, A.kind, kind))
		}
		return A
	}
	A := &Symbol{Name: name, Value: len(gb.g.symbols), kind: kind}
	gb.g.symbols = append(gb.g.symbols, A)
	gb.g.byName[name] = A
	return A
}

func (gb *GrammarBuilder) fail(err error) {
	if gb.err == nil {
		gb.err = err
	}
}

// Grammar returns the grammar built so far, augmented by a start rule S' → S.
// Errors are ErrEmptyGrammar, if no rules have been defined,
// UndefinedStartError, if the start symbol set by SetStart has no rule,
// UndefinedSymbolError, if a symbol used as a non-terminal has no rule, or an
// error describing illegal use of symbols.
//
// The builder must not be used any more after calling Grammar().
func (gb *GrammarBuilder) Grammar() (*Grammar, error) {
	if gb.err != nil {
		return nil, gb.err
	}
	g := gb.g
	if len(g.rules) < 2 {
		return nil, ErrEmptyGrammar
	}
	startName := gb.start
	if startName == "" {
		startName = g.rules[1].LHS.Name
	}
	S, ok := g.byName[startName]
	if !ok || len(g.RulesFor(S)) == 0 {
		return nil, &UndefinedStartError{Name: startName}
	}
	for _, A := range g.symbols[1:] {
		if A.kind == NonTerminalKind && len(g.RulesFor(A)) == 0 {
			return nil, &UndefinedSymbolError{Name: A.Name}
		}
	}
	startPrime := g.symbols[0]
	startPrime.Name = S.Name + "'"
	for g.byName[startPrime.Name] != nil {
		startPrime.Name += "'"
	}
	g.byName[startPrime.Name] = startPrime
	g.rules[0] = &Rule{Serial: 0, LHS: startPrime, rhs: []*Symbol{S}}
	g.eof = &Symbol{Name: EOFName, Value: len(g.symbols), kind: EOFKind}
	g.byName[EOFName] = g.eof
	g.byName[EpsilonName] = g.epsilon
	tracer().Debugf("grammar %q has %d rules and %d symbols", g.Name, len(g.rules), len(g.symbols))
	return g, nil
}

// RuleBuilder is a helper type to construct a grammar rule, see GrammarBuilder.
type RuleBuilder struct {
	gb   *GrammarBuilder
	rule *Rule
}

// N appends a non-terminal to the RHS of the rule.
func (rb *RuleBuilder) N(name string) *RuleBuilder {
	rb.rule.rhs = append(rb.rule.rhs, rb.gb.symbol(name, NonTerminalKind))
	return rb
}

// T appends a terminal to the RHS of the rule.
func (rb *RuleBuilder) T(name string) *RuleBuilder {
	rb.rule.rhs = append(rb.rule.rhs, rb.gb.symbol(name, TerminalKind))
	return rb
}

// Epsilon finishes the rule as an ε-rule (empty RHS). Symbols appended before
// will be discarded.
func (rb *RuleBuilder) Epsilon() *Rule {
	rb.rule.rhs = nil
	return rb.End()
}

// End finishes the rule and adds it to the grammar. If an identical rule has
// been defined before, the new rule is dropped and the existing one is returned.
func (rb *RuleBuilder) End() *Rule {
	g := rb.gb.g
	for _, r := range g.rules[1:] {
		if r.LHS == rb.rule.LHS && r.hasRHS(rb.rule.rhs) {
			tracer().Infof("dropping duplicate rule %v", rb.rule)
			return r
		}
	}
	rb.rule.Serial = len(g.rules)
	g.rules = append(g.rules, rb.rule)
	return rb.rule
}
