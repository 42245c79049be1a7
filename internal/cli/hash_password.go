package cli

import (
	"bufio"
	"fmt"
	"strings"

	"alertacordon/internal/infra/auth"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
)

func newHashPasswordCommand() *cobra.Command {
	var cost int

	cmd := &cobra.Command{
		Use:   "hash-password [password]",
		Short: "Produce the bcrypt hash for the moderator login",
		Long: `Hash a moderator password for the admin.passwordHash setting.

The password is read from the first argument, or from the first line of stdin
when no argument is given so it stays out of the shell history.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			password, err := readPassword(cmd, args)
			if err != nil {
				return err
			}

			hash, err := auth.NewBcryptHasherWithCost(cost).Hash(password)
			if err != nil {
				return errors.Wrap(err, "hash password")
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), hash)

			return errors.WithStack(err)
		},
	}

	cmd.Flags().IntVar(&cost, "cost", bcrypt.DefaultCost, "bcrypt cost")

	return cmd
}

func readPassword(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}

	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && line == "" {
		return "", errors.Wrap(err, "read password from stdin")
	}

	return strings.TrimRight(line, "\r\n"), nil
}
