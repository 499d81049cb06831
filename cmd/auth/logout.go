package auth

import (
	"github.com/spf13/cobra"

	"github.com/pinepods/pinectl/internal/cliutil"
)

type logoutOptions struct {
	force bool
}

func newLogoutCommand(cli cliutil.CLI) *cobra.Command {
	var opts logoutOptions

	cmd := &cobra.Command{
		Use:   "logout [flags]",
		Short: "Forget the stored username and API key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cliutil.WrapStatusError(runLogout(cli, &opts))
		},
	}

	flags := cmd.Flags()

	flags.BoolVarP(
		&opts.force,
		"force",
		"f",
		false,
		`Do not ask for confirmation`,
	)

	return cmd
}

func runLogout(cli cliutil.CLI, opts *logoutOptions) error {
	if cli.Config().APIKey == "" {
		cli.PrintAux("No API key stored. You are already logged out.\n")
		return nil
	}

	if !opts.force && !cli.Confirm(
		"Forget the stored API key for "+cli.Config().Username+"?",
		"Yes",
		"No",
	) {
		return nil
	}

	cli.Config().Username = ""
	cli.Config().APIKey = ""
	if err := cli.Config().Dump(); err != nil {
		return err
	}

	cli.PrintAux("Logged out successfully.\n")
	return nil
}
