package user

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pinepods/pinectl/internal/cliutil"
)

type verifyPasswordOptions struct {
	username string
	password string
}

func newVerifyPasswordCommand(cli cliutil.CLI) *cobra.Command {
	var opts verifyPasswordOptions

	cmd := &cobra.Command{
		Use:   "verify-password [flags] <username>",
		Short: "Check a user's password (prompts for it unless --password is given)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.username = args[0]

			if opts.password == "" {
				if err := cli.Password(fmt.Sprintf("Password for %s", opts.username), &opts.password); err != nil {
					return cliutil.WrapStatusError(err)
				}
			}

			return cliutil.WrapStatusError(runVerifyPassword(cmd.Context(), cli, &opts))
		},
	}

	flags := cmd.Flags()

	flags.StringVarP(
		&opts.password,
		"password",
		"p",
		"",
		`Password to verify (visible in the process list, prefer the prompt)`,
	)

	return cmd
}

func runVerifyPassword(ctx context.Context, cli cliutil.CLI, opts *verifyPasswordOptions) error {
	valid, err := cli.Client().VerifyPassword(ctx, opts.username, opts.password)
	return cliutil.PrintResult(cli, err, "Error verifying password", func() error {
		cli.PrintOut("Is password valid: %t\n", valid)
		return nil
	})
}
