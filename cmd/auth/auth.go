package auth

import (
	"github.com/spf13/cobra"

	"github.com/pinepods/pinectl/internal/cliutil"
)

func NewCommand(cli cliutil.CLI) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth <login|logout|whoami>",
		Short: "Store or clear the API key used by pinectl",
	}

	cmd.AddCommand(
		newLoginCommand(cli),
		newLogoutCommand(cli),
		newWhoAmICommand(cli),
	)

	return cmd
}
