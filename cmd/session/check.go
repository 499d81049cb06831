package session

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/pinepods/pinectl/internal/cliutil"
)

func newCheckSavedCommand(cli cliutil.CLI) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check-saved",
		Short: "Print the user ID of the session saved on the server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cliutil.WrapStatusError(runCheckSaved(cmd.Context(), cli))
		},
	}
	return cmd
}

func runCheckSaved(ctx context.Context, cli cliutil.CLI) error {
	userID, err := cli.Client().CheckSavedSession(ctx)
	return cliutil.HandleResult(err, func(int) {
		cli.PrintOut("No saved session found\n")
	}, func() error {
		cli.PrintOut("User ID: %s\n", cliutil.FormatValue(userID))
		return nil
	})
}
