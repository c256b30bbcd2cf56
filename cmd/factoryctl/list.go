package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newListCmd(a *app) *cobra.Command {
	var paths bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the implementation names in the index",
		Long: `List the implementation names in discovery order.

Examples:
  factoryctl list
  factoryctl list --paths`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			for _, e := range a.factory().Entries() {
				if paths {
					fmt.Fprintf(out, "%s\t%s\n", e.Name, e.Path)
					continue
				}
				fmt.Fprintln(out, e.Name)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&paths, "paths", false, "also print each implementation's path in the hierarchy")
	return cmd
}
