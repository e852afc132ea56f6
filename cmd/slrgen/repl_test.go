package main

import (
	"bytes"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/slrgen/lr"
	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
)

const conflictGrammar = "S -> A | B\nA -> a\nB -> a\n"

func capturePterm() (*bytes.Buffer, func()) {
	var buf bytes.Buffer
	pterm.SetDefaultOutput(&buf)
	return &buf, func() { pterm.SetDefaultOutput(os.Stdout) }
}

func TestREPLCommands(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slrgen.cli")
	defer teardown()
	//
	assert := assert.New(t)
	out, restore := capturePterm()
	defer restore()
	intp := &Intp{}
	intp.rules = []string{"S -> A | B", "A -> a", "B -> a"}
	assert.False(intp.Execute(":rules"))
	assert.Contains(out.String(), "S' → S")
	out.Reset()
	assert.False(intp.Execute(":table"))
	assert.Contains(out.String(), "r3/r4")
	assert.Contains(out.String(), "reduce/reduce")
	out.Reset()
	assert.False(intp.Execute(":states"))
	assert.Contains(out.String(), "A → a •")
	assert.False(intp.Execute(":follow"))
	out.Reset()
	assert.False(intp.Execute(":nonsense"))
	assert.Contains(out.String(), "unknown command :nonsense")
	assert.False(intp.Execute(":clear"))
	assert.Empty(intp.rules)
	out.Reset()
	assert.False(intp.Execute(":table")) // empty grammar is reported, not fatal
	assert.Contains(out.String(), lr.ErrEmptyGrammar.Error())
	assert.True(intp.Execute(":quit"))
}

func TestExportReportsConflicts(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slrgen.cli")
	defer teardown()
	//
	assert := assert.New(t)
	_, restore := capturePterm()
	defer restore()
	dir := t.TempDir()
	grammar := filepath.Join(dir, "rr.txt")
	if err := ioutil.WriteFile(grammar, []byte(conflictGrammar), 0644); err != nil {
		t.Fatal(err)
	}
	dotfile := filepath.Join(dir, "rr.dot")
	*exportFlags.dotOutput = dotfile
	defer func() { *exportFlags.dotOutput = "" }()
	err := runDot(nil, []string{grammar})
	assert.True(isConflict(err), "expected conflicts to be returned, have %v", err)
	dot, rerr := ioutil.ReadFile(dotfile)
	if assert.NoError(rerr) {
		assert.Contains(string(dot), "digraph {")
	}
	htmlfile := filepath.Join(dir, "rr.html")
	*exportFlags.htmlOutput = htmlfile
	defer func() { *exportFlags.htmlOutput = "" }()
	err = runHTML(nil, []string{grammar})
	assert.True(isConflict(err), "expected conflicts to be returned, have %v", err)
	html, rerr := ioutil.ReadFile(htmlfile)
	if assert.NoError(rerr) {
		assert.Contains(string(html), "r3/r4")
	}
	assert.True(isConflict(runStates(nil, []string{grammar})))
	assert.True(isConflict(runFollow(nil, []string{grammar})))
	assert.True(isConflict(runTable(nil, []string{grammar})))
}
