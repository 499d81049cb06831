package podcast

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/pinepods/pinectl/internal/cliutil"
)

type autoDownloadOptions struct {
	userID    string
	podcastID string

	enable  bool
	disable bool
}

func newAutoDownloadCommand(cli cliutil.CLI) *cobra.Command {
	var opts autoDownloadOptions

	cmd := &cobra.Command{
		Use:   "auto-download [flags] <user-id> <podcast-id>",
		Short: "Show or change whether new episodes of a podcast are downloaded automatically",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.enable && opts.disable {
				return cliutil.WrapStatusError(errors.New("--enable and --disable are mutually exclusive"))
			}

			opts.userID = args[0]
			opts.podcastID = args[1]

			if opts.enable || opts.disable {
				return cliutil.WrapStatusError(runSetAutoDownload(cmd.Context(), cli, &opts))
			}
			return cliutil.WrapStatusError(runGetAutoDownload(cmd.Context(), cli, &opts))
		},
	}

	flags := cmd.Flags()

	flags.BoolVar(
		&opts.enable,
		"enable",
		false,
		`Turn automatic downloads on`,
	)
	flags.BoolVar(
		&opts.disable,
		"disable",
		false,
		`Turn automatic downloads off`,
	)

	return cmd
}

func runGetAutoDownload(ctx context.Context, cli cliutil.CLI, opts *autoDownloadOptions) error {
	enabled, err := cli.Client().GetAutoDownloadStatus(ctx, opts.userID, opts.podcastID)
	return cliutil.PrintResult(cli, err, "Error fetching auto download status", func() error {
		cli.PrintOut("Auto download: %t\n", enabled)
		return nil
	})
}

func runSetAutoDownload(ctx context.Context, cli cliutil.CLI, opts *autoDownloadOptions) error {
	res, err := cli.Client().EnableAutoDownload(ctx, opts.userID, opts.podcastID, opts.enable)
	return cliutil.PrintResult(cli, err, "Error updating auto download", func() error {
		cli.PrintOut("Auto download updated: %s\n", cliutil.FormatValue(res))
		return nil
	})
}
