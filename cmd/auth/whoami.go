package auth

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/pinepods/pinectl/internal/cliutil"
)

func newWhoAmICommand(cli cliutil.CLI) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "whoami",
		Short: "Print the details of the logged in user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cliutil.WrapStatusError(runWhoAmI(cmd.Context(), cli))
		},
	}
	return cmd
}

func runWhoAmI(ctx context.Context, cli cliutil.CLI) error {
	if cli.Config().Username == "" || cli.Config().APIKey == "" {
		cli.PrintErr("Not logged in. Use 'pinectl auth login' to log in.\n")
		return nil
	}

	raw, err := cli.Client().GetUserDetails(ctx, cli.Config().Username)
	return cliutil.PrintResult(cli, err, "Error fetching user details", func() error {
		var details any
		if err := json.Unmarshal(raw, &details); err != nil {
			return fmt.Errorf("unexpected user details payload: %w", err)
		}

		return yaml.NewEncoder(cli.OutputStream()).Encode(details)
	})
}
