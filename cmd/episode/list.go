package episode

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/pinepods/pinectl/internal/api"
	"github.com/pinepods/pinectl/internal/cliutil"
)

const (
	outputSummary = ""
	outputTable   = "table"
	outputJSON    = "json"
)

type listOptions struct {
	userID string
	output string
}

func newListCommand(cli cliutil.CLI) *cobra.Command {
	var opts listOptions

	cmd := &cobra.Command{
		Use:     "list [flags] <user-id>",
		Aliases: []string{"ls"},
		Short:   `List the episodes returned for a user`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.userID = args[0]

			switch opts.output {
			case outputSummary, outputTable, outputJSON:
			default:
				return cliutil.NewStatusError(1, "unsupported output format %q (expected table or json)", opts.output)
			}

			return cliutil.WrapStatusError(runList(cmd.Context(), cli, &opts))
		},
	}

	flags := cmd.Flags()

	flags.StringVarP(
		&opts.output,
		"output",
		"o",
		outputSummary,
		`Output format ("table" | "json"), a one-line summary when empty`,
	)

	return cmd
}

func runList(ctx context.Context, cli cliutil.CLI, opts *listOptions) error {
	raw, err := cli.Client().ReturnEpisodes(ctx, opts.userID)
	return cliutil.PrintResult(cli, err, "Error fetching episodes", func() error {
		if opts.output == outputSummary {
			cli.PrintOut("Episodes: %s\n", cliutil.FormatValue(raw))
			return nil
		}

		episodes, err := api.DecodeEpisodes(raw)
		if err != nil {
			return err
		}
		return printEpisodes(cli, opts.output, episodes)
	})
}

func printEpisodes(cli cliutil.CLI, output string, episodes []api.Episode) error {
	var printer cliutil.Printer[api.Episode]
	if output == outputJSON {
		printer = cliutil.NewJSONPrinter[api.Episode](cli.OutputStream())
	} else {
		printer = cliutil.NewTablePrinter(cli.OutputStream(), []string{
			"ID",
			"TITLE",
			"PODCAST",
			"PUBLISHED",
			"DURATION",
			"LISTENED",
		}, episodeRow)
	}
	defer printer.Flush()

	return printer.Print(episodes)
}

func episodeRow(ep api.Episode) []string {
	listened := "-"
	if ep.ListenDuration != nil && ep.Duration > 0 {
		listened = fmt.Sprintf("%d%%", min(100, *ep.ListenDuration*100/ep.Duration))
	}

	return []string{
		strconv.FormatInt(ep.ID, 10),
		ep.Title,
		ep.PodcastName,
		pubDate(ep.PubDate),
		(time.Duration(ep.Duration) * time.Second).String(),
		listened,
	}
}

var pubDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func parsePubDate(s string) (time.Time, bool) {
	for _, layout := range pubDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func pubDate(s string) string {
	if t, ok := parsePubDate(s); ok {
		return humanize.Time(t)
	}
	return s
}
