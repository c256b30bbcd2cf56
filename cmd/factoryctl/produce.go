package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newProduceCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "produce NAME [ARGS...]",
		Short: "Produce an implementation by name",
		Long: `Produce the implementation registered under NAME and print it.

Arguments that parse as numbers are passed as float64, everything else as a
string.

Examples:
  factoryctl produce Circle 5
  factoryctl produce Rectangle 2 4
  factoryctl produce Triangle 3 4 5`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.factory().Produce(cmd.Context(), args[0], parseArgs(args[1:])...)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, s)
			fmt.Fprintf(out, "area: %.4f\n", s.Area())
			fmt.Fprintf(out, "perimeter: %.4f\n", s.Perimeter())
			return nil
		},
	}
}

func parseArgs(raw []string) []any {
	out := make([]any, len(raw))
	for i, r := range raw {
		if f, err := strconv.ParseFloat(r, 64); err == nil {
			out[i] = f
			continue
		}
		out[i] = r
	}
	return out
}
