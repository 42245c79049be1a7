package cli

import (
	"fmt"
	"unicode/utf8"

	"alertacordon/internal/domain/alert"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newPreviewCommand() *cobra.Command {
	var summary alert.ReportSummary

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Render the status text posted for a report",
		Example: `  alertctl preview --id 12 --location "Rivera y Paullier" \
    --category robo --description "Arrebato de celular en la parada"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			status := alert.Format(summary)

			if _, err := fmt.Fprintln(cmd.OutOrStdout(), status); err != nil {
				return errors.WithStack(err)
			}
			_, err := fmt.Fprintf(cmd.ErrOrStderr(), "%d/%d characters\n", utf8.RuneCountInString(status), alert.MaxStatusLength)

			return errors.WithStack(err)
		},
	}

	cmd.Flags().Int64Var(&summary.ID, "id", 1, "report number")
	cmd.Flags().StringVar(&summary.Location, "location", "", "location as typed in the form")
	cmd.Flags().StringVar(&summary.Description, "description", "", "incident description")
	cmd.Flags().StringVar(&summary.Category, "category", "", "category key, see 'alertctl categories'")
	_ = cmd.MarkFlagRequired("location")
	_ = cmd.MarkFlagRequired("description")

	return cmd
}
