package episode

import (
	"context"
	"errors"
	"slices"

	"github.com/spf13/cobra"

	"github.com/pinepods/pinectl/internal/api"
	"github.com/pinepods/pinectl/internal/cliutil"
)

type recentOptions struct {
	userID string
	limit  int
	output string
}

func newRecentCommand(cli cliutil.CLI) *cobra.Command {
	var opts recentOptions

	cmd := &cobra.Command{
		Use:   "recent [flags] <user-id>",
		Short: "Show a user's home feed: the newest episodes first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.userID = args[0]

			if opts.limit < 0 {
				return cliutil.WrapStatusError(errors.New("--limit cannot be negative"))
			}
			if opts.output != outputTable && opts.output != outputJSON {
				return cliutil.NewStatusError(1, "unsupported output format %q (expected table or json)", opts.output)
			}

			return cliutil.WrapStatusError(runRecent(cmd.Context(), cli, &opts))
		},
	}

	flags := cmd.Flags()

	flags.IntVarP(
		&opts.limit,
		"limit",
		"n",
		10,
		`Number of episodes to show (0 shows all)`,
	)
	flags.StringVarP(
		&opts.output,
		"output",
		"o",
		outputTable,
		`Output format ("table" | "json")`,
	)

	return cmd
}

func runRecent(ctx context.Context, cli cliutil.CLI, opts *recentOptions) error {
	raw, err := cli.Client().ReturnEpisodes(ctx, opts.userID)
	return cliutil.PrintResult(cli, err, "Error fetching episodes", func() error {
		episodes, err := api.DecodeEpisodes(raw)
		if err != nil {
			return err
		}

		episodes = newestFirst(episodes)
		if opts.limit > 0 && len(episodes) > opts.limit {
			episodes = episodes[:opts.limit]
		}

		return printEpisodes(cli, opts.output, episodes)
	})
}

// newestFirst orders episodes by publication date. Episodes with an
// unparsable date go last, in server order.
func newestFirst(episodes []api.Episode) []api.Episode {
	sorted := slices.Clone(episodes)
	slices.SortStableFunc(sorted, func(a, b api.Episode) int {
		ta, oka := parsePubDate(a.PubDate)
		tb, okb := parsePubDate(b.PubDate)
		switch {
		case oka && okb:
			return tb.Compare(ta)
		case oka:
			return -1
		case okb:
			return 1
		}
		return 0
	})
	return sorted
}
