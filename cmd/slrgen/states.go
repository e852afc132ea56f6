package main

import (
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:     "states [grammar file]",
		Short:   "Print the states of the LR(0) automaton",
		Example: `  slrgen states expr.txt`,
		Args:    cobra.MaximumNArgs(1),
		RunE:    runStates,
	}
	rootCmd.AddCommand(cmd)
}

func runStates(cmd *cobra.Command, args []string) error {
	result, err := generate(args)
	if result == nil {
		return err
	}
	renderStates(result)
	return err
}
