package main

import (
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:     "follow [grammar file]",
		Short:   "Print FIRST and FOLLOW sets of all non-terminals",
		Example: `  slrgen follow expr.txt`,
		Args:    cobra.MaximumNArgs(1),
		RunE:    runFollow,
	}
	rootCmd.AddCommand(cmd)
}

func runFollow(cmd *cobra.Command, args []string) error {
	result, err := generate(args)
	if result == nil {
		return err
	}
	renderFollow(result)
	return err
}
