package bnf

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/slrgen/lr"
	"github.com/stretchr/testify/assert"
)

const exprGrammar = `
# expression grammar
E -> E + T | T
T -> T * F | F
F -> ( E ) | id
`

func TestReadExpressionGrammar(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slrgen.bnf")
	defer teardown()
	//
	assert := assert.New(t)
	g, err := Parse(exprGrammar)
	if !assert.NoError(err) {
		return
	}
	assert.Equal(7, g.Size())
	assert.Equal("E' → E", g.Rule(0).String())
	assert.Equal("E → E + T", g.Rule(1).String())
	assert.Equal("F → id", g.Rule(6).String())
	assert.Equal("E", g.UserStart().Name)
	assert.True(g.SymbolByName("T").IsNonTerminal())
	assert.True(g.SymbolByName("id").IsTerminal())
	assert.Len(g.Terminals(), 5)
}

func TestReadSeparatorsAndComments(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slrgen.bnf")
	defer teardown()
	//
	assert := assert.New(t)
	var inputs = []string{
		"S -> a S | b",
		"S → a S | b",
		"S ::= a S | b",
		"// comment\nS -> a S\n\n   S -> b\n",
	}
	for i, input := range inputs {
		g, err := Parse(input)
		if !assert.NoError(err, "input #%d", i) {
			continue
		}
		assert.Equal(3, g.Size(), "input #%d", i)
		assert.Equal("S → a S", g.Rule(1).String(), "input #%d", i)
		assert.Equal("S → b", g.Rule(2).String(), "input #%d", i)
	}
}

func TestReadEpsilon(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slrgen.bnf")
	defer teardown()
	//
	assert := assert.New(t)
	g, err := Parse("S -> A a\nA -> b | ε\nB -> x |")
	if !assert.NoError(err) {
		return
	}
	assert.True(g.Rule(3).IsEpsilon())
	assert.Equal("A → ε", g.Rule(3).String())
	assert.True(g.Rule(5).IsEpsilon())
	ga := lr.Analysis(g)
	assert.True(ga.DerivesEpsilon(g.SymbolByName("A")))
}

func TestReadStartSymbol(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slrgen.bnf")
	defer teardown()
	//
	assert := assert.New(t)
	g, err := Parse(exprGrammar, StartSymbol("T"), Name("terms"))
	if !assert.NoError(err) {
		return
	}
	assert.Equal("T' → T", g.Rule(0).String())
	assert.Equal("terms", g.Name)
	_, err = Parse(exprGrammar, StartSymbol("X"))
	var undef *lr.UndefinedStartError
	assert.True(errors.As(err, &undef))
}

func TestReadMalformed(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slrgen.bnf")
	defer teardown()
	//
	assert := assert.New(t)
	var inputs = []string{
		"S a b",
		"-> a b",
		"S T -> a",
		"S -> a\nA -> a $",
		"ε -> a",
	}
	var lines = []int{1, 1, 1, 2, 1}
	for i, input := range inputs {
		_, err := Parse(input)
		var m *MalformedRuleError
		if assert.True(errors.As(err, &m), "input #%d: %v", i, err) {
			assert.Equal(lines[i], m.Line, "input #%d", i)
		}
	}
}

func TestReadEmpty(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slrgen.bnf")
	defer teardown()
	//
	_, err := Parse("# nothing but a comment\n\n")
	assert.True(t, errors.Is(err, lr.ErrEmptyGrammar))
}

func TestReadCommentsTakePrecedence(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slrgen.bnf")
	defer teardown()
	//
	assert := assert.New(t)
	g, err := Parse("# -> a\n// S -> b\nS -> c\n  # stray text")
	if !assert.NoError(err) {
		return
	}
	assert.Equal(2, g.Size())
	assert.Equal("S → c", g.Rule(1).String())
	assert.Nil(g.SymbolByName("#"))
	_, err = Parse("# -> a")
	assert.True(errors.Is(err, lr.ErrEmptyGrammar))
	_, err = Parse("S -> c\nstray text")
	var m *MalformedRuleError
	if assert.True(errors.As(err, &m)) {
		assert.Equal(2, m.Line)
	}
}

func TestReadUndefinedSymbols(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slrgen.bnf")
	defer teardown()
	//
	assert := assert.New(t)
	r := NewReader()
	g, err := r.Read(strings.NewReader("S -> A b\nS -> c A"))
	if !assert.NoError(err) {
		return
	}
	assert.True(g.SymbolByName("A").IsTerminal())
	if assert.Len(r.Warnings(), 1) {
		var u *lr.UndefinedSymbolError
		assert.True(errors.As(r.Warnings()[0], &u))
		assert.Equal("A", u.Name)
		assert.Equal(1, u.Line)
	}
	_, err = Parse("S -> A b", Strict(true))
	var u *lr.UndefinedSymbolError
	assert.True(errors.As(err, &u))
}
