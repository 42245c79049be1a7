package cli

import (
	"fmt"
	"text/tabwriter"

	"alertacordon/internal/domain/entity"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newCategoriesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List the incident categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "KEY\tLABEL\tCOLOR")
			for _, c := range entity.Categories() {
				fmt.Fprintf(w, "%s\t%s\t%s\n", c.Key, c.Label, c.Color)
			}

			return errors.WithStack(w.Flush())
		},
	}
}
