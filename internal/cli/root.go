// Package cli implements alertctl, the operator command line of AlertaCordón.
package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCommand assembles alertctl and its subcommands.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "alertctl",
		Short: "Operator tools for AlertaCordón",
		Long: `Operator tools for AlertaCordón.

Available subcommands:
  resolve        - Show where a typed location is pinned
  preview        - Render the status text posted for a report
  categories     - List the incident categories
  hash-password  - Produce the bcrypt hash for the moderator login`,
		SilenceUsage: true,
	}

	root.AddCommand(
		newResolveCommand(),
		newPreviewCommand(),
		newCategoriesCommand(),
		newHashPasswordCommand(),
	)

	return root
}
