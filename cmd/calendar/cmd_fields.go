package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/reugn/go-calendar/calendar"
	"github.com/spf13/cobra"
)

func fieldsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fields",
		Short: "List the supported fields, from the most significant",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "FIELD\tMIN\tMAX")
			for _, f := range calendar.Fields() {
				lo, hi := f.Range()
				fmt.Fprintf(w, "%s\t%d\t%d\n", f, lo, hi)
			}
			return w.Flush()
		},
	}
}
