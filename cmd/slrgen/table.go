package main

import (
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:     "table [grammar file]",
		Short:   "Print the SLR(1) parse table of a grammar",
		Example: `  slrgen table expr.txt`,
		Args:    cobra.MaximumNArgs(1),
		RunE:    runTable,
	}
	rootCmd.AddCommand(cmd)
}

func runTable(cmd *cobra.Command, args []string) error {
	result, err := generate(args)
	if result == nil {
		return err
	}
	renderTable(result)
	printConflicts(result)
	return err
}
