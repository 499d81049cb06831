package user

import (
	"github.com/spf13/cobra"

	"github.com/pinepods/pinectl/internal/cliutil"
)

func NewCommand(cli cliutil.CLI) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user <details|details-id|guest-status|verify-password|theme>",
		Short: "Look up users and their settings",
	}

	cmd.AddCommand(
		newDetailsCommand(cli),
		newDetailsByIDCommand(cli),
		newGuestStatusCommand(cli),
		newVerifyPasswordCommand(cli),
		newThemeCommand(cli),
	)

	return cmd
}
