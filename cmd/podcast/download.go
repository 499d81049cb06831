package podcast

import (
	"context"
	"time"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"

	"github.com/pinepods/pinectl/internal/cliutil"
)

type downloadAllOptions struct {
	userID    string
	podcastID string

	quiet bool
}

func newDownloadAllCommand(cli cliutil.CLI) *cobra.Command {
	var opts downloadAllOptions

	cmd := &cobra.Command{
		Use:   "download-all [flags] <user-id> <podcast-id>",
		Short: "Queue every episode of a podcast for download on the server",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cli.SetQuiet(opts.quiet)

			opts.userID = args[0]
			opts.podcastID = args[1]

			return cliutil.WrapStatusError(runDownloadAll(cmd.Context(), cli, &opts))
		},
	}

	flags := cmd.Flags()

	flags.BoolVarP(
		&opts.quiet,
		"quiet",
		"q",
		false,
		`Do not print any diagnostic messages`,
	)

	return cmd
}

func runDownloadAll(ctx context.Context, cli cliutil.CLI, opts *downloadAllOptions) error {
	s := spinner.New(spinner.CharSets[38], 300*time.Millisecond)
	s.Writer = cli.AuxStream()
	s.Prefix = "Queueing podcast episodes for download... "
	s.Start()

	res, err := cli.Client().DownloadAllPodcast(ctx, opts.userID, opts.podcastID)
	s.Stop()

	return cliutil.PrintResult(cli, err, "Error downloading podcast", func() error {
		cli.PrintOut("Download queued: %s\n", cliutil.FormatValue(res))
		return nil
	})
}
