package user

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/pinepods/pinectl/internal/cliutil"
)

func newGuestStatusCommand(cli cliutil.CLI) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "guest-status",
		Short: "Print whether the guest user is active",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cliutil.WrapStatusError(runGuestStatus(cmd.Context(), cli))
		},
	}
	return cmd
}

func runGuestStatus(ctx context.Context, cli cliutil.CLI) error {
	active, err := cli.Client().GuestStatus(ctx)
	return cliutil.PrintResult(cli, err, "Error fetching guest status", func() error {
		cli.PrintOut("Guest status: %s\n", cliutil.FormatValue(active))
		return nil
	})
}
