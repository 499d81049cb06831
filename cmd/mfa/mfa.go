package mfa

import (
	"github.com/spf13/cobra"

	"github.com/pinepods/pinectl/internal/cliutil"
)

func NewCommand(cli cliutil.CLI) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mfa <status|save-secret>",
		Short: "Inspect and set up multi-factor authentication for a user",
	}

	cmd.AddCommand(
		newStatusCommand(cli),
		newSaveSecretCommand(cli),
	)

	return cmd
}
