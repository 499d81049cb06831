package session

import (
	"github.com/spf13/cobra"

	"github.com/pinepods/pinectl/internal/cliutil"
)

func NewCommand(cli cliutil.CLI) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session <clean-expired|check-saved|create>",
		Short: "Manage server-side user sessions",
	}

	cmd.AddCommand(
		newCleanExpiredCommand(cli),
		newCheckSavedCommand(cli),
		newCreateCommand(cli),
	)

	return cmd
}
