package auth

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pinepods/pinectl/internal/api"
	"github.com/pinepods/pinectl/internal/cliutil"
)

type loginOptions struct {
	username string
	apiKey   string
}

func newLoginCommand(cli cliutil.CLI) *cobra.Command {
	var opts loginOptions

	cmd := &cobra.Command{
		Use:   "login [flags]",
		Short: "Save a username and API key (you will be prompted for missing values)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.username == "" {
				if err := cli.Input("Username", "> ", &opts.username, cliutil.NonEmpty); err != nil {
					return cliutil.WrapStatusError(err)
				}
			}
			if opts.apiKey == "" {
				if err := cli.Password("API key", &opts.apiKey); err != nil {
					return cliutil.WrapStatusError(err)
				}
			}

			return cliutil.WrapStatusError(runLogin(cmd.Context(), cli, &opts))
		},
	}

	flags := cmd.Flags()

	flags.StringVarP(
		&opts.username,
		"username",
		"u",
		"",
		`Username to log in as`,
	)
	flags.StringVar(
		&opts.apiKey,
		"api-key",
		"",
		`API key generated in the web UI settings`,
	)

	return cmd
}

func runLogin(ctx context.Context, cli cliutil.CLI, opts *loginOptions) error {
	cli.Client().SetAPIKey(opts.apiKey)

	if _, err := cli.Client().GetUserDetails(ctx, opts.username); err != nil {
		if code, ok := api.StatusCode(err); ok {
			return cliutil.NewStatusError(1, "couldn't verify the API key for %s (status %d)", opts.username, code)
		}
		return fmt.Errorf("couldn't verify the API key: %w", err)
	}

	cli.Config().Username = opts.username
	cli.Config().APIKey = opts.apiKey
	if err := cli.Config().Dump(); err != nil {
		return err
	}

	cli.PrintAux("Logged in as %s. You can now use pinectl commands.\n", opts.username)
	return nil
}
