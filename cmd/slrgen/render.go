package main

import (
	"fmt"
	"strings"

	"github.com/npillmayer/slrgen"
	"github.com/pterm/pterm"
)

func printWarnings(result *slrgen.Result) {
	for _, w := range result.Warnings {
		pterm.Warning.Println(w.Error())
	}
}

func printConflicts(result *slrgen.Result) {
	conflicts := result.Conflicts()
	if len(conflicts) == 0 {
		pterm.Info.Println(fmt.Sprintf("grammar %s is SLR(1), %d states", result.Grammar.Name, len(result.Rows())))
		return
	}
	for _, c := range conflicts {
		pterm.Error.Println(c.Error())
	}
}

// renderTable prints ACTION and GOTO table as a single table.
func renderTable(result *slrgen.Result) {
	data := pterm.TableData{result.Header()}
	data = append(data, result.Rows()...)
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

// renderStates prints the CFSM states and their transitions as a tree.
func renderStates(result *slrgen.Result) {
	out := make(map[uint][]string)
	for _, t := range result.Transitions() {
		out[t.From] = append(out[t.From], fmt.Sprintf("%s ⇒ %d", t.Label.Name, t.To))
	}
	ll := pterm.LeveledList{}
	for _, s := range result.States() {
		label := fmt.Sprintf("state %d", s.ID)
		if s.Accept {
			label += " (accept)"
		}
		ll = append(ll, pterm.LeveledListItem{Level: 0, Text: label})
		for _, item := range s.Items {
			ll = append(ll, pterm.LeveledListItem{Level: 1, Text: item})
		}
		if len(out[s.ID]) > 0 {
			ll = append(ll, pterm.LeveledListItem{Level: 1, Text: strings.Join(out[s.ID], ", ")})
		}
	}
	root := pterm.NewTreeFromLeveledList(ll)
	pterm.Println(result.Grammar.Name)
	pterm.DefaultTree.WithRoot(root).Render()
}

// renderFollow prints FIRST and FOLLOW sets.
func renderFollow(result *slrgen.Result) {
	data := pterm.TableData{{"Non-terminal", "FIRST", "FOLLOW"}}
	for _, f := range result.FollowSets() {
		data = append(data, []string{
			f.Symbol,
			"{ " + strings.Join(f.First, ", ") + " }",
			"{ " + strings.Join(f.Follow, ", ") + " }",
		})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

// renderRules prints the (augmented) grammar.
func renderRules(result *slrgen.Result) {
	data := pterm.TableData{{"No", "Rule"}}
	for _, r := range result.Grammar.Rules() {
		data = append(data, []string{fmt.Sprintf("%d", r.Serial), r.String()})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}
