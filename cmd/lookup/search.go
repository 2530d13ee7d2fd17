package main

import (
	"errors"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"customer-lookup/internal/config"
	"customer-lookup/internal/directory"
	"customer-lookup/internal/domain"
	"customer-lookup/internal/fields"
	"customer-lookup/internal/lookup"
	"customer-lookup/internal/query"
	"github.com/spf13/cobra"
)

func newSearchCmd(cfg config.Config, reg *fields.Registry) *cobra.Command {
	var (
		baseURL string
		timeout time.Duration
		details bool
	)
	values := make(map[string]*string)

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search the directory and print matching customers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var criteria query.Criteria
			for _, f := range reg.SearchFields() {
				if cmd.Flags().Changed(f.Key) {
					criteria.Set(f.Key, *values[f.Key])
				}
			}

			searcher := lookup.NewSearcher(reg, directory.NewClient(baseURL, timeout), nil)
			res, err := searcher.Run(cmd.Context(), criteria)
			if err != nil {
				return errors.New(lookup.ErrorMessage(err))
			}
			printResults(cmd.OutOrStdout(), reg, res.Customers, details)
			return nil
		},
	}

	for _, f := range reg.SearchFields() {
		usage := f.Label
		if sel, ok := f.Widget.(fields.SelectInput); ok {
			usage = fmt.Sprintf("%s %v", f.Label, sel.Options)
		}
		if _, ok := f.Widget.(fields.DateInput); ok {
			usage = f.Label + " (YYYY-MM-DD)"
		}
		values[f.Key] = cmd.Flags().String(f.Key, "", usage)
	}
	cmd.Flags().StringVar(&baseURL, "base-url", cfg.DirectoryBaseURL, "customer directory base URL")
	cmd.Flags().DurationVar(&timeout, "timeout", cfg.DirectoryTimeout, "directory request timeout")
	cmd.Flags().BoolVar(&details, "details", false, "print addresses, phones and emails")
	return cmd
}

func printResults(w io.Writer, reg *fields.Registry, customers []domain.Customer, details bool) {
	if len(customers) == 0 {
		fmt.Fprintln(w, "No results found")
		return
	}
	if len(customers) == 1 {
		fmt.Fprintln(w, "1 result")
	} else {
		fmt.Fprintf(w, "%d results\n", len(customers))
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, c := range customers {
		fmt.Fprintln(tw)
		for _, f := range reg.DisplayFields() {
			fmt.Fprintf(tw, "%s:\t%s\n", f.Label, fields.Render(f.Kind, c))
		}
		if !details {
			continue
		}
		for _, a := range c.Addresses {
			fmt.Fprintf(tw, "Address (%s):\t%s, %s, %s %s\n", a.Type, a.Street, a.City, a.State, a.ZipCode)
		}
		for _, p := range c.Phones {
			fmt.Fprintf(tw, "Phone (%s):\t%s%s\n", p.Type, p.Number, primaryMark(p.IsPrimary))
		}
		for _, e := range c.Emails {
			fmt.Fprintf(tw, "Email (%s):\t%s%s\n", e.Type, e.Address, primaryMark(e.IsPrimary))
		}
	}
	_ = tw.Flush()
}

func primaryMark(primary bool) string {
	if primary {
		return " (primary)"
	}
	return ""
}
