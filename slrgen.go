package slrgen

import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/slrgen/lr"
	"github.com/npillmayer/slrgen/lr/bnf"
)

// Option configures a call to Generate.
type Option func(*config)

type config struct {
	readerOpts []bnf.Option
	tableOpts  []lr.Option
}

// MaxStates limits the number of states of the LR(0) automaton.
func MaxStates(n int) Option {
	return func(c *config) {
		c.tableOpts = append(c.tableOpts, lr.MaxStates(n))
	}
}

// StartSymbol overrides the start symbol of the grammar.
func StartSymbol(name string) Option {
	return func(c *config) {
		c.readerOpts = append(c.readerOpts, bnf.StartSymbol(name))
	}
}

// Strict makes undefined non-terminals an error instead of a warning.
func Strict(b bool) Option {
	return func(c *config) {
		c.readerOpts = append(c.readerOpts, bnf.Strict(b))
	}
}

// Name sets the name of the grammar.
func Name(name string) Option {
	return func(c *config) {
		c.readerOpts = append(c.readerOpts, bnf.Name(name))
	}
}

// Result holds all the artifacts of a generator run. They must not be
// modified by clients.
type Result struct {
	Grammar  *lr.Grammar
	Analysis *lr.LRAnalysis
	Tables   *lr.TableGenerator
	Warnings []error // undefined symbols, unreachable non-terminals
	header   []string
	rows     [][]string
}

// StateView is a printable representation of a CFSM state.
type StateView struct {
	ID     uint
	Items  []string // e.g. "E → E • + T"
	Accept bool
}

// FollowView is a printable representation of FIRST and FOLLOW of a non-terminal.
type FollowView struct {
	Symbol string
	First  []string
	Follow []string
}

// Generate reads a grammar from text and constructs its SLR(1) tables.
//
// Errors from reading the grammar or from constructing the automaton are
// returned without a result. If the grammar is not SLR(1), Generate returns
// the complete result and an error of type lr.ConflictErrors.
func Generate(text string, opts ...Option) (*Result, error) {
	return GenerateFrom(strings.NewReader(text), opts...)
}

// GenerateFrom is like Generate, but reads the grammar from an io.Reader.
func GenerateFrom(in io.Reader, opts ...Option) (*Result, error) {
	c := &config{}
	for _, opt := range opts {
		opt(c)
	}
	reader := bnf.NewReader(c.readerOpts...)
	g, err := reader.Read(in)
	if err != nil {
		return nil, err
	}
	result := &Result{Grammar: g, Warnings: reader.Warnings()}
	for _, A := range g.Unreachable() {
		result.Warnings = append(result.Warnings,
			fmt.Errorf("non-terminal %q is unreachable", A.Name))
	}
	result.Analysis = lr.Analysis(g)
	result.Tables = lr.NewTableGenerator(result.Analysis, c.tableOpts...)
	err = result.Tables.CreateTables()
	if _, ok := err.(lr.ConflictErrors); err != nil && !ok {
		return nil, fmt.Errorf("grammar %q: %w", g.Name, err)
	}
	result.header, result.rows = result.Tables.Grid()
	tracer().Infof("grammar %q: %d rules, %d states, %d conflicts", g.Name, g.Size(),
		len(result.rows), len(result.Tables.Conflicts()))
	return result, err
}

// Header returns the column labels of the parse table: "State", terminals,
// $ and non-terminals.
func (r *Result) Header() []string {
	return r.header
}

// Rows returns the cells of the parse table, one row per state. Cells read
// "sN" (shift), "rN" (reduce), "acc", "N" (goto) or are empty. Conflicting cells
// list all their entries, separated by '/'.
func (r *Result) Rows() [][]string {
	return r.rows
}

// Conflicts returns all SLR(1) conflicts in order of detection.
func (r *Result) Conflicts() []*lr.ConflictError {
	return r.Tables.Conflicts()
}

// States returns printable representations of all CFSM states, ordered by ID.
func (r *Result) States() []StateView {
	var views []StateView
	for _, s := range r.Tables.CFSM().States() {
		views = append(views, StateView{ID: s.ID, Items: s.ItemStrings(), Accept: s.Accept})
	}
	return views
}

// Transitions returns all edges of the CFSM.
func (r *Result) Transitions() []lr.Transition {
	return r.Tables.CFSM().Transitions()
}

// FollowSets returns FIRST and FOLLOW for every non-terminal except the
// augmented start symbol.
func (r *Result) FollowSets() []FollowView {
	var views []FollowView
	for _, A := range r.Grammar.NonTerminals() {
		if A == r.Grammar.Start() {
			continue
		}
		views = append(views, FollowView{
			Symbol: A.Name,
			First:  symbolNames(r.Analysis.First(A)),
			Follow: symbolNames(r.Analysis.Follow(A)),
		})
	}
	return views
}

func symbolNames(syms []*lr.Symbol) []string {
	names := make([]string, len(syms))
	for i, A := range syms {
		names[i] = A.Name
	}
	return names
}
