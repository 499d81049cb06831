package session

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/pinepods/pinectl/internal/cliutil"
)

func newCleanExpiredCommand(cli cliutil.CLI) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean-expired",
		Short: "Ask the server to drop expired sessions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cliutil.WrapStatusError(runCleanExpired(cmd.Context(), cli))
		},
	}
	return cmd
}

func runCleanExpired(ctx context.Context, cli cliutil.CLI) error {
	res, err := cli.Client().CleanExpiredSessions(ctx)
	return cliutil.PrintResult(cli, err, "Error calling clean_expired_sessions", func() error {
		cli.PrintOut("%s\n", cliutil.FormatValue(res))
		return nil
	})
}
