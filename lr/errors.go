package lr

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyGrammar is returned if a grammar has no rules.
var ErrEmptyGrammar = errors.New("grammar contains no productions")

// UndefinedStartError is returned if the start symbol of a grammar is not
// defined by any rule.
type UndefinedStartError struct {
	Name string
}

func (e *UndefinedStartError) Error() string {
	return fmt.Sprintf("start symbol %q is not defined by any rule", e.Name)
}

// UndefinedSymbolError flags a symbol which is referenced as a non-terminal,
// but never defined by a rule.
type UndefinedSymbolError struct {
	Name string
	Line int // line of first reference, if known
}

func (e *UndefinedSymbolError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: symbol %q is used but never defined", e.Line, e.Name)
	}
	return fmt.Sprintf("symbol %q is used but never defined", e.Name)
}

// StateLimitError is returned if the number of CFSM states exceeds the limit set
// for a table generator.
type StateLimitError struct {
	Limit int
}

func (e *StateLimitError) Error() string {
	return fmt.Sprintf("LR(0) automaton exceeds the limit of %d states", e.Limit)
}

// --- Conflicts -------------------------------------------------------------

// ConflictKind is the type of conflicts within an ACTION table.
type ConflictKind int8

// Kinds of conflicts. Accepting counts as a reduction of rule 0.
const (
	ShiftReduce ConflictKind = iota + 1
	ReduceReduce
)

func (k ConflictKind) String() string {
	switch k {
	case ShiftReduce:
		return "shift/reduce"
	case ReduceReduce:
		return "reduce/reduce"
	}
	return "<no conflict>"
}

// ConflictError describes a cell of an ACTION table with competing actions.
// Actions lists all the competing actions in the order they have been
// entered.
type ConflictError struct {
	Kind    ConflictKind
	State   uint
	Symbol  *Symbol
	Actions []Action
}

func (c *ConflictError) Error() string {
	var acts []string
	for _, a := range c.Actions {
		if a.Kind == ReduceAction {
			acts = append(acts, fmt.Sprintf("%s (%v)", a, a.Rule))
		} else {
			acts = append(acts, a.String())
		}
	}
	return fmt.Sprintf("%s conflict in state %d on %q: %s", c.Kind, c.State, c.Symbol,
		strings.Join(acts, " vs. "))
}

func (c *ConflictError) add(a Action) {
	c.Actions = append(c.Actions, a)
	c.Kind = ReduceReduce
	for _, act := range c.Actions {
		if act.Kind == ShiftAction {
			c.Kind = ShiftReduce
		}
	}
}

// ConflictErrors is a list of conflicts, which itself is an error.
type ConflictErrors []*ConflictError

func (ce ConflictErrors) Error() string {
	switch len(ce) {
	case 0:
		return "no conflicts"
	case 1:
		return ce[0].Error()
	}
	var b strings.Builder
	b.WriteString(fmt.Sprintf("grammar is not SLR(1), %d conflicts:", len(ce)))
	for _, c := range ce {
		b.WriteString("\n    ")
		b.WriteString(c.Error())
	}
	return b.String()
}
