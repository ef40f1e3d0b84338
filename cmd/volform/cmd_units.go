package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jingkaihe/volform/pkg/size"
)

var unitsCmd = &cobra.Command{
	Use:   "units",
	Short: "List size units from smallest to largest",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "UNIT\tBYTES")
		for _, u := range size.Units {
			fmt.Fprintf(w, "%s\t%d\n", u, u.Factor())
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(unitsCmd)
}
