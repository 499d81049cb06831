package podcast

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/pinepods/pinectl/internal/api"
	"github.com/pinepods/pinectl/internal/cliutil"
)

type skipTimesOptions struct {
	userID    string
	podcastID string

	start int
	end   int

	// Bounds not given on the command line keep the server's current value.
	startSet bool
	endSet   bool
}

func newSkipTimesCommand(cli cliutil.CLI) *cobra.Command {
	var opts skipTimesOptions

	cmd := &cobra.Command{
		Use:   "skip-times [flags] <user-id> <podcast-id>",
		Short: "Show or adjust the seconds skipped at the start and end of a podcast's episodes",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.userID = args[0]
			opts.podcastID = args[1]

			flags := cmd.Flags()
			opts.startSet = flags.Changed("start")
			opts.endSet = flags.Changed("end")

			if !opts.startSet && !opts.endSet {
				return cliutil.WrapStatusError(runGetSkipTimes(cmd.Context(), cli, &opts))
			}

			if opts.start < 0 || opts.end < 0 {
				return cliutil.WrapStatusError(errors.New("skip times cannot be negative"))
			}

			return cliutil.WrapStatusError(runAdjustSkipTimes(cmd.Context(), cli, &opts))
		},
	}

	flags := cmd.Flags()

	flags.IntVar(
		&opts.start,
		"start",
		0,
		`Seconds to skip at the start of every episode`,
	)
	flags.IntVar(
		&opts.end,
		"end",
		0,
		`Seconds to skip at the end of every episode`,
	)

	return cmd
}

func runGetSkipTimes(ctx context.Context, cli cliutil.CLI, opts *skipTimesOptions) error {
	times, err := cli.Client().GetAutoSkipTimes(ctx, opts.userID, opts.podcastID)
	return cliutil.PrintResult(cli, err, "Error fetching skip times", func() error {
		cli.PrintOut("Skip times: start=%d end=%d\n", times.Start, times.End)
		return nil
	})
}

// runAdjustSkipTimes fetches the current skip times first when only one of
// the bounds is being changed. A failed fetch is reported like any other
// non-200 reply and nothing is adjusted.
func runAdjustSkipTimes(ctx context.Context, cli cliutil.CLI, opts *skipTimesOptions) error {
	times := api.SkipTimes{Start: opts.start, End: opts.end}

	if opts.startSet != opts.endSet {
		current, err := cli.Client().GetAutoSkipTimes(ctx, opts.userID, opts.podcastID)
		if err != nil {
			return cliutil.PrintResult(cli, err, "Error fetching skip times", nil)
		}

		if !opts.startSet {
			times.Start = current.Start
		}
		if !opts.endSet {
			times.End = current.End
		}
	}

	res, err := cli.Client().AdjustSkipTimes(ctx, opts.userID, opts.podcastID, times)
	return cliutil.PrintResult(cli, err, "Error adjusting skip times", func() error {
		cli.PrintOut("Skip times updated: %s\n", cliutil.FormatValue(res))
		return nil
	})
}
