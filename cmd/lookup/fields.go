package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"customer-lookup/internal/fields"
	"github.com/spf13/cobra"
)

func newFieldsCmd(reg *fields.Registry) *cobra.Command {
	return &cobra.Command{
		Use:   "fields",
		Short: "List the search and display fields",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "SEARCH FIELD\tLABEL\tPARAM\tWIDGET")
			for _, f := range reg.SearchFields() {
				widget := f.Widget.Kind()
				if sel, ok := f.Widget.(fields.SelectInput); ok {
					widget += " (" + strings.Join(sel.Options, ", ") + ")"
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", f.Key, f.Label, f.QueryParam, widget)
			}
			fmt.Fprintln(tw)
			fmt.Fprintln(tw, "DISPLAY FIELD\tLABEL\tKIND\t")
			for _, f := range reg.DisplayFields() {
				fmt.Fprintf(tw, "%s\t%s\t%s\t\n", f.Key, f.Label, f.Kind)
			}
			return tw.Flush()
		},
	}
}
