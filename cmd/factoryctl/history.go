package main

import (
	"errors"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
)

var errNoLedger = errors.New("no ledger configured; pass --ledger or set FACTORYCTL_LEDGER_PATH")

func newHistoryCmd(a *app) *cobra.Command {
	var factoryName string

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show product requests recorded in the ledger",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if a.store == nil {
				return errNoLedger
			}
			records, err := a.store.List(factoryName)
			if err != nil {
				return fmt.Errorf("list ledger: %w", err)
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "TIME\tFACTORY\tPRODUCT\tARGS\tOUTCOME\tERROR")
			for _, r := range records {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\t%s\n",
					r.Timestamp.Format(time.RFC3339), r.Factory, r.Product, r.Args, r.Outcome, r.Error)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVar(&factoryName, "factory", "", "only show requests made through this factory")
	return cmd
}
