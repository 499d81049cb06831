package mfa

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/pinepods/pinectl/internal/cliutil"
)

func newStatusCommand(cli cliutil.CLI) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status <user-id>",
		Short: "Print whether MFA is enabled for a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cliutil.WrapStatusError(runStatus(cmd.Context(), cli, args[0]))
		},
	}
	return cmd
}

func runStatus(ctx context.Context, cli cliutil.CLI, userID string) error {
	enabled, err := cli.Client().GetMFASettings(ctx, userID)
	return cliutil.PrintResult(cli, err, "Error fetching MFA settings", func() error {
		cli.PrintOut("MFA enabled: %t\n", enabled)
		return nil
	})
}
