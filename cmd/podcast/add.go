package podcast

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/pinepods/pinectl/internal/api"
	"github.com/pinepods/pinectl/internal/cliutil"
)

type addOptions struct {
	userID  string
	podcast api.PodcastValues
}

func newAddCommand(cli cliutil.CLI) *cobra.Command {
	var opts addOptions

	cmd := &cobra.Command{
		Use:   "add [flags] <user-id> <feed-url>",
		Short: "Subscribe a user to a podcast feed",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.userID = args[0]
			opts.podcast.FeedURL = args[1]

			if opts.podcast.Title == "" {
				return cliutil.WrapStatusError(errors.New("--title is required"))
			}

			return cliutil.WrapStatusError(runAdd(cmd.Context(), cli, &opts))
		},
	}

	flags := cmd.Flags()

	flags.StringVarP(
		&opts.podcast.Title,
		"title",
		"t",
		"",
		`Podcast title`,
	)
	flags.StringVar(
		&opts.podcast.Author,
		"author",
		"",
		`Podcast author`,
	)
	flags.StringVar(
		&opts.podcast.Artwork,
		"artwork",
		"",
		`URL of the podcast artwork`,
	)
	flags.StringVar(
		&opts.podcast.Description,
		"description",
		"",
		`Podcast description`,
	)
	flags.StringVar(
		&opts.podcast.Website,
		"website",
		"",
		`Podcast website URL`,
	)
	flags.StringVar(
		&opts.podcast.Categories,
		"categories",
		"",
		`Comma-separated podcast categories`,
	)
	flags.IntVar(
		&opts.podcast.EpisodeCount,
		"episode-count",
		0,
		`Number of episodes in the feed`,
	)
	flags.BoolVar(
		&opts.podcast.Explicit,
		"explicit",
		false,
		`Mark the podcast as explicit`,
	)

	return cmd
}

func runAdd(ctx context.Context, cli cliutil.CLI, opts *addOptions) error {
	res, err := cli.Client().AddPodcast(ctx, opts.userID, opts.podcast)
	return cliutil.PrintResult(cli, err, "Error adding podcast", func() error {
		cli.PrintOut("Podcast added: %s\n", cliutil.FormatValue(res))
		return nil
	})
}
