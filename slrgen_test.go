package slrgen

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/slrgen/lr"
	"github.com/npillmayer/slrgen/lr/bnf"
	"github.com/stretchr/testify/assert"
)

const exprGrammar = `
E -> E + T | T
T -> T * F | F
F -> ( E ) | id
`

func TestGenerateExpressions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slrgen")
	defer teardown()
	//
	assert := assert.New(t)
	result, err := Generate(exprGrammar)
	if !assert.NoError(err) {
		return
	}
	assert.Empty(result.Conflicts())
	assert.Len(result.States(), 12)
	assert.Equal([]string{"State", "+", "*", "(", ")", "id", "$", "E", "T", "F"}, result.Header())
	assert.Equal([]string{"0", "", "", "s4", "", "s5", "", "1", "2", "3"}, result.Rows()[0])
	assert.Equal([]string{"1", "s6", "", "", "", "", "acc", "", "", ""}, result.Rows()[1])
	assert.Equal("E' → • E", result.States()[0].Items[0])
	assert.True(result.States()[1].Accept)
	follow := result.FollowSets()
	assert.Equal("E", follow[0].Symbol)
	assert.Equal([]string{"+", ")", "$"}, follow[0].Follow)
	assert.Equal([]string{"(", "id"}, follow[0].First)
	tr := result.Transitions()
	assert.Equal(uint(0), tr[0].From)
	assert.Equal(uint(1), tr[0].To)
	assert.Equal("E", tr[0].Label.Name)
}

func TestGenerateSmallest(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slrgen")
	defer teardown()
	//
	assert := assert.New(t)
	result, err := Generate("S -> a")
	if !assert.NoError(err) {
		return
	}
	assert.Len(result.States(), 3)
	for _, row := range result.Rows() {
		for _, cell := range row[1:] {
			assert.NotContains(cell, "/")
		}
	}
}

func TestGenerateConflicts(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slrgen")
	defer teardown()
	//
	assert := assert.New(t)
	result, err := Generate("S -> A | B\nA -> a\nB -> a")
	var conflicts lr.ConflictErrors
	if !assert.True(errors.As(err, &conflicts)) {
		return
	}
	assert.NotNil(result)
	assert.Len(conflicts, 1)
	assert.Equal(lr.ReduceReduce, conflicts[0].Kind)
	assert.Len(conflicts[0].Actions, 2)
	found := false
	for _, row := range result.Rows() {
		for _, cell := range row {
			if cell == "r3/r4" {
				found = true
			}
		}
	}
	assert.True(found, "expected a cell to read r3/r4")
}

func TestGenerateErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slrgen")
	defer teardown()
	//
	assert := assert.New(t)
	_, err := Generate("")
	assert.True(errors.Is(err, lr.ErrEmptyGrammar))
	_, err = Generate("S a")
	var m *bnf.MalformedRuleError
	assert.True(errors.As(err, &m))
	_, err = Generate(exprGrammar, MaxStates(5))
	var limit *lr.StateLimitError
	assert.True(errors.As(err, &limit))
	_, err = Generate("S -> X", Strict(true))
	var undef *lr.UndefinedSymbolError
	assert.True(errors.As(err, &undef))
}

func TestGenerateWarnings(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slrgen")
	defer teardown()
	//
	assert := assert.New(t)
	result, err := Generate("S -> X a\nU -> b", Name("warn"))
	if !assert.NoError(err) {
		return
	}
	assert.Equal("warn", result.Grammar.Name)
	assert.Len(result.Warnings, 2)
	assert.True(strings.Contains(result.Warnings[1].Error(), "unreachable"))
}

// Generate is run from several goroutines, which is checked by
// 'go test -race'. The testing tracer must not be used concurrently, therefore
// tracing goes to a Go logger for this test.
func TestGenerateConcurrently(t *testing.T) {
	tracing.SetTraceSelector(tracing.SelectorForAdapter(gologadapter.GetAdapter()))
	defer tracing.SetTraceSelector(nil)
	//
	var wg sync.WaitGroup
	rows := make([][][]string, 4)
	errs := make([]error, len(rows))
	for i := range rows {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			result, err := Generate(exprGrammar)
			if errs[i] = err; err == nil {
				rows[i] = result.Rows()
			}
		}(i)
	}
	wg.Wait()
	for i := range rows {
		assert.NoError(t, errs[i])
		assert.Equal(t, rows[0], rows[i])
	}
	assert.Len(t, rows[0], 12)
}
