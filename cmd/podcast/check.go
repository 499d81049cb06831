package podcast

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/pinepods/pinectl/internal/cliutil"
)

func newCheckCommand(cli cliutil.CLI) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <user-id> <podcast-name>",
		Short: "Check whether a user is subscribed to a podcast",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cliutil.WrapStatusError(runCheck(cmd.Context(), cli, args[0], args[1]))
		},
	}
	return cmd
}

func runCheck(ctx context.Context, cli cliutil.CLI, userID, podcastName string) error {
	exists, err := cli.Client().CheckPodcast(ctx, userID, podcastName)
	return cliutil.PrintResult(cli, err, "Error checking podcast", func() error {
		cli.PrintOut("Podcast exists: %t\n", exists)
		return nil
	})
}
