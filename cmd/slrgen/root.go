package main

import (
	"fmt"
	"os"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/slrgen"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var rootFlags = struct {
	trace     *string
	start     *string
	strict    *bool
	maxStates *int
}{}

var rootCmd = &cobra.Command{
	Use:   "slrgen",
	Short: "Generate SLR(1) parser tables from a grammar",
	Long: `slrgen reads a context-free grammar and constructs
- the LR(0) automaton (CFSM) of the grammar,
- FIRST and FOLLOW sets of all non-terminals,
- the SLR(1) ACTION and GOTO tables, reporting every conflict.`,
	SilenceErrors:     true,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootFlags.trace = rootCmd.PersistentFlags().String("trace", "Error", "trace level [Debug|Info|Error]")
	rootFlags.start = rootCmd.PersistentFlags().StringP("start", "s", "", "start symbol (default LHS of first rule)")
	rootFlags.strict = rootCmd.PersistentFlags().Bool("strict", false, "treat undefined non-terminals as errors")
	rootFlags.maxStates = rootCmd.PersistentFlags().Int("max-states", 0, "limit for the number of LR(0) states")
}

// tracer traces with key 'slrgen.cli'.
func tracer() tracing.Trace {
	return tracing.Select("slrgen.cli")
}

// Execute runs the root command.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return err
	}
	return nil
}

func setup(cmd *cobra.Command, args []string) error {
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	level := tracing.TraceLevelFromString(*rootFlags.trace)
	for _, key := range []string{"slrgen", "slrgen.lr", "slrgen.bnf", "slrgen.scanner", "slrgen.cli"} {
		tracing.Select(key).SetTraceLevel(level)
	}
	tracer().Infof("trace level is %s", *rootFlags.trace)
	return nil
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// generatorOptions collects the options given by persistent flags.
func generatorOptions() []slrgen.Option {
	var opts []slrgen.Option
	if *rootFlags.start != "" {
		opts = append(opts, slrgen.StartSymbol(*rootFlags.start))
	}
	if *rootFlags.strict {
		opts = append(opts, slrgen.Strict(true))
	}
	if *rootFlags.maxStates > 0 {
		opts = append(opts, slrgen.MaxStates(*rootFlags.maxStates))
	}
	return opts
}
