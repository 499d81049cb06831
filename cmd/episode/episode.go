package episode

import (
	"github.com/spf13/cobra"

	"github.com/pinepods/pinectl/internal/cliutil"
)

func NewCommand(cli cliutil.CLI) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "episode <list|recent|playback>",
		Aliases: []string{"episodes", "ep"},
		Short:   "List a user's episodes and check their playback state",
	}

	cmd.AddCommand(
		newListCommand(cli),
		newRecentCommand(cli),
		newPlaybackCommand(cli),
	)

	return cmd
}
