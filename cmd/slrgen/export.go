package main

import (
	"github.com/npillmayer/slrgen/lr"
	"github.com/spf13/cobra"
)

var exportFlags = struct {
	dotOutput  *string
	htmlOutput *string
}{}

func init() {
	dot := &cobra.Command{
		Use:     "dot [grammar file]",
		Short:   "Export the LR(0) automaton in Graphviz Dot format",
		Example: `  slrgen dot expr.txt -o expr.dot`,
		Args:    cobra.MaximumNArgs(1),
		RunE:    runDot,
	}
	exportFlags.dotOutput = dot.Flags().StringP("output", "o", "", "output file path (default stdout)")
	rootCmd.AddCommand(dot)
	html := &cobra.Command{
		Use:     "html [grammar file]",
		Short:   "Export the parse table in HTML format",
		Example: `  slrgen html expr.txt -o expr.html`,
		Args:    cobra.MaximumNArgs(1),
		RunE:    runHTML,
	}
	exportFlags.htmlOutput = html.Flags().StringP("output", "o", "", "output file path (default stdout)")
	rootCmd.AddCommand(html)
}

func runDot(cmd *cobra.Command, args []string) error {
	result, err := generate(args)
	if result == nil {
		return err
	}
	w, werr := output(*exportFlags.dotOutput)
	if werr != nil {
		return werr
	}
	defer w.Close()
	if werr = result.Tables.CFSM().GraphViz(w); werr != nil {
		return werr
	}
	return err // non-nil for grammars with conflicts
}

func runHTML(cmd *cobra.Command, args []string) error {
	result, err := generate(args)
	if result == nil {
		return err
	}
	w, werr := output(*exportFlags.htmlOutput)
	if werr != nil {
		return werr
	}
	defer w.Close()
	if werr = lr.TableAsHTML(result.Tables, w); werr != nil {
		return werr
	}
	return err // non-nil for grammars with conflicts
}
