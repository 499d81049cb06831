package episode

import (
	"context"

	"github.com/skratchdot/open-golang/open"
	"github.com/spf13/cobra"

	"github.com/pinepods/pinectl/internal/cliutil"
)

type playbackOptions struct {
	userID       string
	episodeTitle string
	episodeURL   string

	open bool
}

var openURL = open.Run

func newPlaybackCommand(cli cliutil.CLI) *cobra.Command {
	var opts playbackOptions

	cmd := &cobra.Command{
		Use:   "playback [flags] <user-id> <episode-title> <episode-url>",
		Short: "Check the playback state of an episode for a user",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.userID = args[0]
			opts.episodeTitle = args[1]
			opts.episodeURL = args[2]

			return cliutil.WrapStatusError(runPlayback(cmd.Context(), cli, &opts))
		},
	}

	flags := cmd.Flags()

	flags.BoolVar(
		&opts.open,
		"open",
		false,
		`Open the episode URL in a browser after a successful check`,
	)

	return cmd
}

func runPlayback(ctx context.Context, cli cliutil.CLI, opts *playbackOptions) error {
	data, err := cli.Client().CheckEpisodePlayback(ctx, opts.userID, opts.episodeTitle, opts.episodeURL)
	return cliutil.PrintResult(cli, err, "Error checking episode playback", func() error {
		cli.PrintOut("Playback data: %s\n", cliutil.FormatValue(data))

		if opts.open {
			cli.PrintAux("Opening %s in your browser...\n", opts.episodeURL)

			if err := openURL(opts.episodeURL); err != nil {
				cli.PrintAux("Failed opening the browser. Copy the above URL into a browser manually.\n")
			}
		}

		return nil
	})
}
