package podcast

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/pinepods/pinectl/internal/cliutil"
)

type removeOptions struct {
	userID      string
	podcastName string
	feedURL     string

	force bool
}

func newRemoveCommand(cli cliutil.CLI) *cobra.Command {
	var opts removeOptions

	cmd := &cobra.Command{
		Use:     "remove [flags] <user-id> <podcast-title> <feed-url>",
		Aliases: []string{"rm"},
		Short:   "Unsubscribe a user from a podcast",
		Args:    cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.userID = args[0]
			opts.podcastName = args[1]
			opts.feedURL = args[2]

			if !opts.force && !cli.Confirm(
				"Remove "+opts.podcastName+" and its episodes for user "+opts.userID+"?",
				"Remove",
				"Keep",
			) {
				return nil
			}

			return cliutil.WrapStatusError(runRemove(cmd.Context(), cli, &opts))
		},
	}

	flags := cmd.Flags()

	flags.BoolVarP(
		&opts.force,
		"force",
		"f",
		false,
		`Do not ask for confirmation`,
	)

	return cmd
}

func runRemove(ctx context.Context, cli cliutil.CLI, opts *removeOptions) error {
	res, err := cli.Client().RemovePodcastByName(ctx, opts.userID, opts.podcastName, opts.feedURL)
	return cliutil.PrintResult(cli, err, "Error removing podcast", func() error {
		cli.PrintOut("Podcast removed: %s\n", cliutil.FormatValue(res))
		return nil
	})
}
