package lr

import (
	"fmt"
	"strings"

	"github.com/cnf/structhash"
	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/slrgen/lr/iteratable"
	"github.com/npillmayer/slrgen/lr/sparse"
)

// DefaultMaxStates is the upper limit for the number of CFSM states, if neither
// configuration key "lr-max-states" nor option MaxStates says otherwise.
const DefaultMaxStates = 10000

// === Closure and Goto-Set Operations =======================================

// Refer to "Crafting A Compiler" by Charles N. Fisher & Richard J. LeBlanc, Jr.
// Section 6.2.1 LR(0) Parsing

// Compute the closure of an item.
func (ga *LRAnalysis) closure(i Item) *iteratable.Set {
	S := newItemSet()
	S.Add(i)
	return ga.closureSet(S)
}

// Compute the closure of an item set.
// https://www.cs.bgu.ac.il/~comp151/wiki.files/ps6.html#sec-2-7-3
func (ga *LRAnalysis) closureSet(S *iteratable.Set) *iteratable.Set {
	C := S.Copy() // add start items to closure
	C.IterateOnce()
	for C.Next() {
		item := asItem(C.Item())
		A := item.PeekSymbol()           // get symbol A after dot
		if A != nil && !A.IsTerminal() { // A is non-terminal
			R := ga.g.FindNonTermRules(A)
			if New := R.Difference(C); !New.Empty() {
				C.Union(New)
			}
		}
	}
	return C
}

func (ga *LRAnalysis) gotoSet(closure *iteratable.Set, A *Symbol) (*iteratable.Set, *Symbol) {
	// for every item in closure C
	// if item in C:  N -> ... *A ...
	//     advance N -> ... A * ...
	gotoset := newItemSet()
	for _, x := range closure.Values() {
		i := asItem(x)
		if i.PeekSymbol() == A {
			ii := i.Advance()
			tracer().Debugf("goto(%s) -%s-> %s", i, A, ii)
			gotoset.Add(ii)
		}
	}
	return gotoset, A
}

func (ga *LRAnalysis) gotoSetClosure(i *iteratable.Set, A *Symbol) (*iteratable.Set, *Symbol) {
	gotoset, _ := ga.gotoSet(i, A)
	gclosure := ga.closureSet(gotoset)
	tracer().Debugf("goto(%s) --%s--> %s", itemSetString(i), A, itemSetString(gclosure))
	return gclosure, A
}

// Closure returns the LR(0) closure of an item set: for every item with a
// non-terminal B after the dot, the start items of all rules for B are added,
// until nothing changes any more. S is left unchanged.
func (ga *LRAnalysis) Closure(S *iteratable.Set) *iteratable.Set {
	return ga.closureSet(S)
}

// Goto returns closure({ A → αX•β | A → α•Xβ ∈ S }). The result is empty if no
// item of S has X after the dot.
func (ga *LRAnalysis) Goto(S *iteratable.Set, X *Symbol) *iteratable.Set {
	gclosure, _ := ga.gotoSetClosure(S, X)
	return gclosure
}

// === CFSM Construction =====================================================

// CFSMState is a state within the CFSM for a grammar.
type CFSMState struct {
	ID     uint                   // serial ID of this state
	items  *iteratable.Set        // configuration items within this state
	next   map[*Symbol]*CFSMState // outgoing transitions
	Accept bool                   // does this state contain S' → S • ?
}

// Transition is an edge of the CFSM, labelled with a grammar symbol.
type Transition struct {
	From  uint
	To    uint
	Label *Symbol
}

// CFSM edge between 2 states, directed and with a symbol
type cfsmEdge struct {
	from  *CFSMState
	to    *CFSMState
	label *Symbol
}

// Items returns the items of the state, kernel items first.
func (s *CFSMState) Items() []Item {
	return ItemsOf(s.items)
}

// Goto returns the successor state on symbol A, or nil.
func (s *CFSMState) Goto(A *Symbol) *CFSMState {
	return s.next[A]
}

// Dump is a debugging helper
func (s *CFSMState) Dump() {
	tracer().Debugf("--- state %03d -----------", s.ID)
	Dump(s.items)
	tracer().Debugf("-------------------------")
}

// Create a state from an item set
func state(id uint, iset *iteratable.Set) *CFSMState {
	s := &CFSMState{ID: id, next: make(map[*Symbol]*CFSMState)}
	if iset == nil {
		s.items = newItemSet()
	} else {
		s.items = iset
	}
	return s
}

func (s *CFSMState) String() string {
	return fmt.Sprintf("(state %d | [%d])", s.ID, s.items.Size())
}

func (s *CFSMState) containsCompletedStartRule() bool {
	for _, x := range s.items.Values() {
		i := asItem(x)
		if i.rule.Serial == 0 && i.IsComplete() {
			return true
		}
	}
	return false
}

// We need this for the set of states. It sorts states by serial ID.
func stateComparator(s1, s2 interface{}) int {
	c1 := s1.(*CFSMState)
	c2 := s2.(*CFSMState)
	return utils.IntComparator(int(c1.ID), int(c2.ID))
}

// itemSetFingerprint is hashed to find candidates for equal item sets.
type itemSetFingerprint struct {
	Items []ItemKey
}

func fingerprint(iset *iteratable.Set) string {
	keys := sortedKeys(iset)
	h, err := structhash.Hash(itemSetFingerprint{Items: keys}, 1)
	if err != nil {
		tracer().Errorf("cannot hash item set: %v", err)
		return fmt.Sprint(keys)
	}
	return h
}

// Add a state to the CFSM. Checks first if state is present. Returns the state
// and true, if it has been newly created.
func (c *CFSM) addState(iset *iteratable.Set) (*CFSMState, bool) {
	fp := fingerprint(iset)
	if s := c.findStateByItems(fp, iset); s != nil {
		return s, false
	}
	s := state(c.cfsmIds, iset)
	c.cfsmIds++
	c.states.Add(s)
	c.index[fp] = append(c.index[fp], s)
	return s, true
}

// Find a CFSM state by the contained item set.
func (c *CFSM) findStateByItems(fp string, iset *iteratable.Set) *CFSMState {
	for _, s := range c.index[fp] {
		if s.items.Equals(iset) {
			return s
		}
	}
	return nil
}

func (c *CFSM) addEdge(s0, s1 *CFSMState, sym *Symbol) *cfsmEdge {
	e := &cfsmEdge{from: s0, to: s1, label: sym}
	c.edges.Add(e)
	s0.next[sym] = s1
	return e
}

// CFSM is the characteristic finite state machine for a LR grammar, i.e. the
// LR(0) state diagram. Will be constructed by a TableGenerator.
// Clients normally do not use it directly. Nevertheless, there are some methods
// defined on it, e.g, for debugging purposes, or even to
// compute your own tables from it.
//
// States are numbered in order of discovery, with the start state being 0.
type CFSM struct {
	g       *Grammar                // this CFSM is for Grammar g
	states  *treeset.Set            // all the states
	edges   *arraylist.List         // all the edges between states
	index   map[string][]*CFSMState // item set fingerprint → states
	S0      *CFSMState              // start state
	cfsmIds uint                    // serial IDs for CFSM states
}

// create an empty (initial) CFSM automata.
func emptyCFSM(g *Grammar) *CFSM {
	c := &CFSM{g: g}
	c.states = treeset.NewWith(stateComparator)
	c.edges = arraylist.New()
	c.index = make(map[string][]*CFSMState)
	return c
}

// Grammar returns the grammar this CFSM has been built for.
func (c *CFSM) Grammar() *Grammar {
	return c.g
}

// Size returns the number of states.
func (c *CFSM) Size() int {
	return c.states.Size()
}

// States returns all states, ordered by ID.
func (c *CFSM) States() []*CFSMState {
	states := make([]*CFSMState, 0, c.states.Size())
	for _, x := range c.states.Values() {
		states = append(states, x.(*CFSMState))
	}
	return states
}

// State returns the state with a given ID, or nil.
func (c *CFSM) State(id uint) *CFSMState {
	if x, found := c.states.Find(func(index int, value interface{}) bool {
		return value.(*CFSMState).ID == id
	}); x >= 0 {
		return found.(*CFSMState)
	}
	return nil
}

// Transitions returns all edges of the CFSM, in order of discovery.
func (c *CFSM) Transitions() []Transition {
	t := make([]Transition, 0, c.edges.Size())
	it := c.edges.Iterator()
	for it.Next() {
		e := it.Value().(*cfsmEdge)
		t = append(t, Transition{From: e.from.ID, To: e.to.ID, Label: e.label})
	}
	return t
}

// === Table Generator =======================================================

// TableGenerator is a generator object to construct LR parser tables.
// Clients usually create a Grammar G, then a LRAnalysis-object for G,
// and then a table generator. TableGenerator.CreateTables() constructs
// the CFSM and parser tables for an LR-parser recognizing grammar G.
type TableGenerator struct {
	g            *Grammar
	ga           *LRAnalysis
	dfa          *CFSM
	gototable    *Table
	actiontable  *Table
	conflicts    []*ConflictError
	conflictAt   map[cell]*ConflictError
	maxStates    int
	HasConflicts bool
}

// Option configures a TableGenerator.
type Option func(*TableGenerator)

// MaxStates limits the number of CFSM states. Construction fails with a
// StateLimitError if the limit is exceeded.
func MaxStates(n int) Option {
	return func(lrgen *TableGenerator) {
		if n > 0 {
			lrgen.maxStates = n
		}
	}
}

// NewTableGenerator creates a new TableGenerator for a (previously analysed) grammar.
func NewTableGenerator(ga *LRAnalysis, opts ...Option) *TableGenerator {
	lrgen := &TableGenerator{}
	lrgen.g = ga.Grammar()
	lrgen.ga = ga
	lrgen.maxStates = gconf.GetInt("lr-max-states")
	if lrgen.maxStates <= 0 {
		lrgen.maxStates = DefaultMaxStates
	}
	for _, opt := range opts {
		opt(lrgen)
	}
	return lrgen
}

// Grammar returns the grammar the tables are generated for.
func (lrgen *TableGenerator) Grammar() *Grammar {
	return lrgen.g
}

// CFSM returns the characteristic finite state machine (CFSM) for a grammar.
// Usually clients call lrgen.CreateTables() beforehand, but it is possible
// to call lrgen.CFSM() directly. The CFSM will be created, if it has not
// been constructed previously. If construction fails, CFSM returns nil.
func (lrgen *TableGenerator) CFSM() *CFSM {
	if lrgen.dfa == nil {
		dfa, err := lrgen.buildCFSM()
		if err != nil {
			tracer().Errorf("%v", err)
			return nil
		}
		lrgen.dfa = dfa
	}
	return lrgen.dfa
}

// GotoTable returns the GOTO table for LR-parsing a grammar. The tables have to be
// built by calling CreateTables() previously (or a separate call to
// BuildGotoTable(...).)
func (lrgen *TableGenerator) GotoTable() *Table {
	if lrgen.gototable == nil {
		tracer().Errorf("tables not yet initialized")
	}
	return lrgen.gototable
}

// ActionTable returns the ACTION table for LR-parsing a grammar. The tables have to be
// built by calling CreateTables() previously (or a separate call to
// BuildSLR1ActionTable(...).)
func (lrgen *TableGenerator) ActionTable() *Table {
	if lrgen.actiontable == nil {
		tracer().Errorf("tables not yet initialized")
	}
	return lrgen.actiontable
}

// Conflicts returns all conflicts found while building the ACTION table, in
// order of detection.
func (lrgen *TableGenerator) Conflicts() []*ConflictError {
	return lrgen.conflicts
}

// CreateTables creates the necessary data structures for an SLR parser.
// If the grammar is not SLR(1), the tables will be complete nevertheless and
// CreateTables returns ConflictErrors. Construction of the CFSM may fail with a
// StateLimitError.
func (lrgen *TableGenerator) CreateTables() error {
	dfa, err := lrgen.buildCFSM()
	if err != nil {
		return err
	}
	lrgen.dfa = dfa
	lrgen.gototable = lrgen.BuildGotoTable()
	lrgen.actiontable, lrgen.conflicts = lrgen.BuildSLR1ActionTable()
	lrgen.conflictAt = make(map[cell]*ConflictError, len(lrgen.conflicts))
	for _, c := range lrgen.conflicts {
		lrgen.conflictAt[cell{c.State, c.Symbol}] = c
	}
	lrgen.HasConflicts = len(lrgen.conflicts) > 0
	if lrgen.HasConflicts {
		tracer().Infof("grammar %q has %d conflicts", lrgen.g.Name, len(lrgen.conflicts))
		return ConflictErrors(lrgen.conflicts)
	}
	return nil
}

// AcceptingStates returns all states of the CFSM which represent an accept action.
// Clients have to call CreateTables() first.
func (lrgen *TableGenerator) AcceptingStates() []uint {
	if lrgen.dfa == nil {
		tracer().Errorf("tables not yet generated; call CreateTables() first")
		return nil
	}
	acc := make([]uint, 0, 1)
	for _, state := range lrgen.dfa.States() {
		if state.Accept {
			acc = append(acc, state.ID)
		}
	}
	return acc
}

// Construct the characteristic finite state machine CFSM for a grammar.
// States are explored breadth-first; for every state, successors are computed
// for all symbols in canonical order, thus numbering is deterministic.
func (lrgen *TableGenerator) buildCFSM() (*CFSM, error) {
	tracer().Debugf("=== build CFSM ==================================================")
	G := lrgen.g
	cfsm := emptyCFSM(G)
	item, sym := StartItem(G.rules[0])
	tracer().Debugf("Start item=%v/%v", item, sym)
	closure0 := lrgen.ga.closure(item)
	cfsm.S0, _ = cfsm.addState(closure0)
	cfsm.S0.Dump()
	S := treeset.NewWith(stateComparator)
	S.Add(cfsm.S0)
	for S.Size() > 0 {
		s := S.Values()[0].(*CFSMState)
		S.Remove(s)
		var err error
		G.EachSymbol(func(A *Symbol) interface{} {
			if err != nil {
				return nil
			}
			gotoset, _ := lrgen.ga.gotoSetClosure(s.items, A)
			if gotoset.Empty() {
				return nil
			}
			snew, isNew := cfsm.addState(gotoset)
			if isNew {
				if cfsm.Size() > lrgen.maxStates {
					err = &StateLimitError{Limit: lrgen.maxStates}
					return nil
				}
				snew.Accept = snew.containsCompletedStartRule()
				S.Add(snew)
				snew.Dump()
			}
			cfsm.addEdge(s, snew, A)
			return nil
		})
		if err != nil {
			tracer().Errorf("CFSM construction aborted: %v", err)
			return nil, err
		}
		tracer().Debugf("-----------------------------------------------------------------")
	}
	tracer().Infof("CFSM for %q has %d states", G.Name, cfsm.Size())
	return cfsm, nil
}

// ensureCFSM makes the build methods callable without CreateTables().
func (lrgen *TableGenerator) ensureCFSM() *CFSM {
	if lrgen.dfa == nil {
		return lrgen.CFSM()
	}
	return lrgen.dfa
}

// === Actions ===============================================================

// ActionKind is the type of parser table entries.
type ActionKind int8

// Kinds of table entries. ErrorAction is the zero value and stands for an
// empty cell.
const (
	ErrorAction ActionKind = iota
	ShiftAction
	ReduceAction
	AcceptAction
	GotoAction
)

func (k ActionKind) String() string {
	switch k {
	case ShiftAction:
		return "shift"
	case ReduceAction:
		return "reduce"
	case AcceptAction:
		return "accept"
	case GotoAction:
		return "goto"
	}
	return "error"
}

// Action is an entry of a parser table. Shift and goto entries carry a target
// state, reduce entries carry a rule.
type Action struct {
	Kind  ActionKind
	State uint
	Rule  *Rule
}

// String renders an action as "s3", "r2", "acc" or, for goto entries, as a
// plain state number. Error entries render as the empty string.
func (a Action) String() string {
	switch a.Kind {
	case ShiftAction:
		return fmt.Sprintf("s%d", a.State)
	case ReduceAction:
		return fmt.Sprintf("r%d", a.Rule.Serial)
	case AcceptAction:
		return "acc"
	case GotoAction:
		return fmt.Sprintf("%d", a.State)
	}
	return ""
}

// Actions are stored as int32 within sparse matrices, with the kind in the
// lower 3 bits.
func (a Action) encode() int32 {
	var v int32
	switch a.Kind {
	case ShiftAction, GotoAction:
		v = int32(a.State)
	case ReduceAction:
		v = int32(a.Rule.Serial)
	}
	return v<<3 | int32(a.Kind)
}

func decode(g *Grammar, v int32) Action {
	a := Action{Kind: ActionKind(v & 7)}
	switch a.Kind {
	case ShiftAction, GotoAction:
		a.State = uint(v >> 3)
	case ReduceAction:
		a.Rule = g.Rule(int(v >> 3))
	}
	return a
}

// === Tables ================================================================

// Table is a parser table, indexed by state and grammar symbol. Every cell may
// hold up to two entries; two entries denote a conflict. If more than two
// actions compete for a cell, the first one is kept together with the one
// entered last. The complete list is reported by ConflictError, and
// TableGenerator.Grid renders all of them.
type Table struct {
	g      *Grammar
	matrix *sparse.IntMatrix
}

func newTable(g *Grammar, statescnt int) *Table {
	tracer().Infof("table of size %d x %d", statescnt, g.SymbolCount())
	return &Table{
		g:      g,
		matrix: sparse.NewIntMatrix(statescnt, g.SymbolCount(), sparse.DefaultNullValue),
	}
}

func (t *Table) column(A *Symbol) int {
	if A == nil || A.Value < 0 {
		panic(fmt.Sprintf("lr.Table: symbol %v cannot index a parser table", A))
	}
	return A.Value
}

func (t *Table) add(state uint, A *Symbol, a Action) {
	t.matrix.Add(int(state), t.column(A), a.encode())
}

func (t *Table) set(state uint, A *Symbol, a Action) {
	t.matrix.Set(int(state), t.column(A), a.encode())
}

// States returns the number of rows of the table.
func (t *Table) States() int {
	return t.matrix.M()
}

// Size returns the number of non-empty cells.
func (t *Table) Size() int {
	return t.matrix.ValueCount()
}

// Actions returns the entries of cell (state, A): none, one or, for conflicting
// cells, two of them.
func (t *Table) Actions(state uint, A *Symbol) []Action {
	v1, v2 := t.matrix.Values(int(state), t.column(A))
	null := t.matrix.NullValue()
	if v1 == null {
		return nil
	}
	if v2 == null {
		return []Action{decode(t.g, v1)}
	}
	return []Action{decode(t.g, v1), decode(t.g, v2)}
}

// Action returns the (first) entry of cell (state, A). Empty cells return an
// action of kind ErrorAction.
func (t *Table) Action(state uint, A *Symbol) Action {
	v := t.matrix.Value(int(state), t.column(A))
	if v == t.matrix.NullValue() {
		return Action{}
	}
	return decode(t.g, v)
}

// IsConflict is true if cell (state, A) holds more than one action.
func (t *Table) IsConflict(state uint, A *Symbol) bool {
	return len(t.Actions(state, A)) > 1
}

// Goto returns the target state of a GOTO table entry.
func (t *Table) Goto(state uint, A *Symbol) (uint, bool) {
	a := t.Action(state, A)
	if a.Kind != GotoAction {
		return 0, false
	}
	return a.State, true
}

// ===========================================================================

// BuildGotoTable builds the GOTO table. This is normally not called directly, but rather
// via CreateTables(). Only transitions on non-terminals are entered.
func (lrgen *TableGenerator) BuildGotoTable() *Table {
	dfa := lrgen.ensureCFSM()
	if dfa == nil {
		return nil
	}
	gototable := newTable(lrgen.g, dfa.Size())
	for _, e := range dfa.Transitions() {
		if e.Label.IsNonTerminal() {
			gototable.set(e.From, e.Label, Action{Kind: GotoAction, State: e.To})
		}
	}
	return gototable
}

// BuildLR0ActionTable contructs the LR(0) Action table. This method is not called by
// CreateTables(), as we normally use an SLR(1) parser and therefore an action table with
// lookahead included. This method is provided as an add-on: reductions are
// entered for every terminal and $.
func (lrgen *TableGenerator) BuildLR0ActionTable() (*Table, []*ConflictError) {
	return lrgen.buildActionTable(false)
}

// BuildSLR1ActionTable constructs the SLR(1) Action table. This method is normally not called
// by clients, but rather via CreateTables(). It builds an action table including
// lookahead (using the FOLLOW-set created by the grammar analyzer).
func (lrgen *TableGenerator) BuildSLR1ActionTable() (*Table, []*ConflictError) {
	return lrgen.buildActionTable(true)
}

// For building an ACTION table we iterate over all the states of the CFSM.
// An inner loop iterates over all the items within a CFSM-state.
// If an item has a terminal immediately after the dot, we produce a shift
// entry. If an item's dot is behind the complete RHS of a rule,
// then
// - for the LR(0) case: we produce a reduce-entry for the rule for each terminal
// - for the SLR case: we produce a reduce-entry for the rule for each
//   terminal from FOLLOW(LHS).
// Completing the start rule produces an accept-entry for $.
//
// Every write is checked against the entries already present. Equal entries are
// ignored, different ones are recorded as a conflict.
func (lrgen *TableGenerator) buildActionTable(slr1 bool) (*Table, []*ConflictError) {
	dfa := lrgen.ensureCFSM()
	if dfa == nil {
		return nil, nil
	}
	w := &actionWriter{
		table: newTable(lrgen.g, dfa.Size()),
		index: make(map[cell]*ConflictError),
	}
	var lookaheads []*Symbol
	if !slr1 {
		lookaheads = append(lrgen.g.Terminals(), lrgen.g.EOF())
	}
	for _, state := range dfa.States() {
		tracer().Debugf("--- state %d --------------------------------", state.ID)
		for _, i := range state.Items() {
			A := i.PeekSymbol()
			if A != nil && A.IsTerminal() { // create a shift entry
				w.write(state.ID, A, Action{Kind: ShiftAction, State: state.Goto(A).ID})
				continue
			}
			if A != nil {
				continue
			}
			// we are at the end of a rule
			if i.rule.Serial == 0 {
				w.write(state.ID, lrgen.g.EOF(), Action{Kind: AcceptAction})
				continue
			}
			if slr1 {
				lookaheads = lrgen.ga.Follow(i.rule.LHS)
				tracer().Debugf("    Follow(%v) = %v", i.rule.LHS, lookaheads)
			}
			for _, la := range lookaheads {
				w.write(state.ID, la, Action{Kind: ReduceAction, Rule: i.rule})
			}
		}
	}
	return w.table, w.conflicts
}

type cell struct {
	state  uint
	symbol *Symbol
}

// actionWriter enters actions into a table and collects conflicts.
type actionWriter struct {
	table     *Table
	conflicts []*ConflictError
	index     map[cell]*ConflictError
}

func (w *actionWriter) write(state uint, A *Symbol, a Action) {
	tracer().Debugf("    ACTION(%d, %v) += %v", state, A, a)
	if c, ok := w.index[cell{state, A}]; ok {
		for _, act := range c.Actions {
			if act == a {
				return
			}
		}
		c.add(a)
		w.table.add(state, A, a)
		return
	}
	present := w.table.Actions(state, A)
	if len(present) == 0 {
		w.table.add(state, A, a)
		return
	}
	if present[0] == a {
		return
	}
	c := &ConflictError{State: state, Symbol: A, Actions: []Action{present[0]}}
	c.add(a)
	tracer().Infof("%v", c)
	w.index[cell{state, A}] = c
	w.conflicts = append(w.conflicts, c)
	w.table.add(state, A, a)
}

func itemSetString(S *iteratable.Set) string {
	var b strings.Builder
	b.WriteString("{")
	for n, item := range ItemsOf(S) {
		if n == 0 {
			b.WriteString(" ")
		} else {
			b.WriteString(", ")
		}
		b.WriteString(item.String())
	}
	b.WriteString(" }")
	return b.String()
}
