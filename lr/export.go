package lr

import (
	"fmt"
	"html"
	"io"
	"strings"
)

// Columns returns the symbols labelling the columns of the combined parser
// table: terminals, $ and then non-terminals, each group in canonical order.
// The augmented start symbol S' is omitted, as it never labels a transition.
func (lrgen *TableGenerator) Columns() []*Symbol {
	cols := lrgen.g.Terminals()
	cols = append(cols, lrgen.g.EOF())
	for _, A := range lrgen.g.NonTerminals() {
		if A != lrgen.g.Start() {
			cols = append(cols, A)
		}
	}
	return cols
}

// Grid renders ACTION and GOTO table as a single grid of strings, with one row
// per state. The first column holds the state number. Conflicting cells
// list all competing entries separated by '/', e.g. "s4/r2", in order of
// detection.
//
// The tables have to be created beforehand.
func (lrgen *TableGenerator) Grid() (header []string, rows [][]string) {
	if lrgen.actiontable == nil || lrgen.gototable == nil {
		tracer().Errorf("tables not yet created, cannot export grid")
		return nil, nil
	}
	cols := lrgen.Columns()
	header = make([]string, 0, len(cols)+1)
	header = append(header, "State")
	for _, A := range cols {
		header = append(header, A.Name)
	}
	for _, state := range lrgen.dfa.States() {
		row := make([]string, 0, len(cols)+1)
		row = append(row, fmt.Sprintf("%d", state.ID))
		for _, A := range cols {
			row = append(row, lrgen.cellString(state.ID, A))
		}
		rows = append(rows, row)
	}
	return header, rows
}

func (lrgen *TableGenerator) cellString(state uint, A *Symbol) string {
	if A.IsNonTerminal() {
		if to, ok := lrgen.gototable.Goto(state, A); ok {
			return fmt.Sprintf("%d", to)
		}
		return ""
	}
	actions := lrgen.actiontable.Actions(state, A)
	if c, ok := lrgen.conflictAt[cell{state, A}]; ok {
		actions = c.Actions
	}
	var entries []string
	for _, a := range actions {
		entries = append(entries, a.String())
	}
	return strings.Join(entries, "/")
}

// ItemStrings returns the items of a state as strings, e.g. "E → E • + T".
func (s *CFSMState) ItemStrings() []string {
	items := s.Items()
	strs := make([]string, len(items))
	for n, i := range items {
		strs[n] = i.String()
	}
	return strs
}

// --- Graphviz --------------------------------------------------------------

// GraphViz exports a CFSM to the Graphviz Dot format. Accepting states are
// filled in gray.
func (c *CFSM) GraphViz(w io.Writer) error {
	var b strings.Builder
	b.WriteString(`digraph {
graph [splines=true, fontname=Helvetica, fontsize=10];
node [shape=Mrecord, style=filled, fontname=Helvetica, fontsize=10];
edge [fontname=Helvetica, fontsize=10];

`)
	for _, s := range c.States() {
		b.WriteString(fmt.Sprintf("s%03d [fillcolor=%s label=\"{%03d | %s}\"]\n",
			s.ID, nodecolor(s), s.ID, forGraphviz(s)))
	}
	for _, e := range c.Transitions() {
		b.WriteString(fmt.Sprintf("s%03d -> s%03d [label=\"%s\"]\n", e.From, e.To,
			dotEscaper.Replace(e.Label.Name)))
	}
	b.WriteString("}\n")
	_, err := io.WriteString(w, b.String())
	return err
}

func nodecolor(state *CFSMState) string {
	if state.Accept {
		return "lightgray"
	}
	return "white"
}

// Characters with special meaning within record labels.
var dotEscaper = strings.NewReplacer(
	`\`, `\\`, `"`, `\"`, `{`, `\{`, `}`, `\}`, `|`, `\|`, `<`, `\<`, `>`, `\>`,
)

func forGraphviz(s *CFSMState) string {
	var b strings.Builder
	for _, item := range s.ItemStrings() {
		b.WriteString(dotEscaper.Replace(item))
		b.WriteString(`\l`)
	}
	return b.String()
}

// --- HTML ------------------------------------------------------------------

// TableAsHTML exports the combined ACTION/GOTO table in HTML-format.
func TableAsHTML(lrgen *TableGenerator, w io.Writer) error {
	header, rows := lrgen.Grid()
	if header == nil {
		return fmt.Errorf("parser tables not yet created, cannot export to HTML")
	}
	var b strings.Builder
	b.WriteString("<html><body>\n")
	b.WriteString(fmt.Sprintf("<p>SLR(1) table for %s, %d states</p>\n",
		html.EscapeString(lrgen.g.Name), len(rows)))
	b.WriteString("<table border=1 cellspacing=0 cellpadding=5>\n")
	b.WriteString("<tr bgcolor=#cccccc>")
	for _, h := range header {
		b.WriteString("<td>")
		b.WriteString(html.EscapeString(h))
		b.WriteString("</td>")
	}
	b.WriteString("</tr>\n")
	for _, row := range rows {
		b.WriteString("<tr>")
		for _, td := range row {
			switch {
			case td == "":
				b.WriteString("<td>&nbsp;</td>")
			case strings.Contains(td, "/"):
				b.WriteString("<td bgcolor=#ffcccc>" + html.EscapeString(td) + "</td>")
			default:
				b.WriteString("<td>" + html.EscapeString(td) + "</td>")
			}
		}
		b.WriteString("</tr>\n")
	}
	b.WriteString("</table></body></html>\n")
	_, err := io.WriteString(w, b.String())
	return err
}
