package podcast

import (
	"github.com/spf13/cobra"

	"github.com/pinepods/pinectl/internal/cliutil"
)

func NewCommand(cli cliutil.CLI) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "podcast <add|remove|id|check|download-all|auto-download|skip-times>",
		Aliases: []string{"podcasts", "pod"},
		Short:   "Manage podcast subscriptions and per-podcast download and skip settings",
	}

	cmd.AddCommand(
		newAddCommand(cli),
		newRemoveCommand(cli),
		newIDCommand(cli),
		newCheckCommand(cli),
		newDownloadAllCommand(cli),
		newAutoDownloadCommand(cli),
		newSkipTimesCommand(cli),
	)

	return cmd
}
