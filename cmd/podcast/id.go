package podcast

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/spf13/cobra"

	"github.com/pinepods/pinectl/internal/cliutil"
)

type idOptions struct {
	userID string

	episodeID    string
	episodeTitle string
	episodeURL   string
}

func newIDCommand(cli cliutil.CLI) *cobra.Command {
	var opts idOptions

	cmd := &cobra.Command{
		Use:   "id [flags] <user-id>",
		Short: "Find the podcast an episode belongs to (by --episode-id, or by --episode-title and --episode-url)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.userID = args[0]

			byID := opts.episodeID != ""
			byName := opts.episodeTitle != "" || opts.episodeURL != ""
			switch {
			case byID && byName:
				return cliutil.WrapStatusError(errors.New("--episode-id cannot be combined with --episode-title or --episode-url"))
			case !byID && (opts.episodeTitle == "" || opts.episodeURL == ""):
				return cliutil.WrapStatusError(errors.New("either --episode-id or both --episode-title and --episode-url are required"))
			}

			return cliutil.WrapStatusError(runID(cmd.Context(), cli, &opts))
		},
	}

	flags := cmd.Flags()

	flags.StringVar(
		&opts.episodeID,
		"episode-id",
		"",
		`Episode ID`,
	)
	flags.StringVar(
		&opts.episodeTitle,
		"episode-title",
		"",
		`Episode title`,
	)
	flags.StringVar(
		&opts.episodeURL,
		"episode-url",
		"",
		`Episode audio URL`,
	)

	return cmd
}

func runID(ctx context.Context, cli cliutil.CLI, opts *idOptions) error {
	var (
		podcastID json.RawMessage
		err       error
	)
	if opts.episodeID != "" {
		podcastID, err = cli.Client().GetPodcastIDFromEpisode(ctx, opts.userID, opts.episodeID)
	} else {
		podcastID, err = cli.Client().GetPodcastIDFromEpisodeName(ctx, opts.userID, opts.episodeTitle, opts.episodeURL)
	}

	return cliutil.PrintResult(cli, err, "Error fetching podcast ID", func() error {
		cli.PrintOut("Podcast ID: %s\n", cliutil.FormatValue(podcastID))
		return nil
	})
}
