// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvstats/catalog"
)

func newListCommand(_ *app) *cobra.Command {
	var kinds []string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List catalog functions and their parameters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ks := make([]catalog.Kind, 0, len(kinds))
			for _, s := range kinds {
				k, err := catalog.ParseKind(s)
				if err != nil {
					return err
				}
				ks = append(ks, k)
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, e := range catalog.Entries(ks...) {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", e.Name, e.Kind, strings.Join(e.Params, " "))
			}
			return tw.Flush()
		},
	}
	cmd.Flags().StringSliceVar(&kinds, "kind", nil, "only list these kinds (density, cdf, quantile, random, kernel)")
	return cmd
}
