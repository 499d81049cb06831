package user

import (
	"context"
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/pinepods/pinectl/internal/cliutil"
)

func newDetailsCommand(cli cliutil.CLI) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "details <username>",
		Short: "Print the details of a user looked up by name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cliutil.WrapStatusError(runDetails(cmd.Context(), cli, args[0]))
		},
	}
	return cmd
}

func newDetailsByIDCommand(cli cliutil.CLI) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "details-id <user-id>",
		Short: "Print the details of a user looked up by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cliutil.WrapStatusError(runDetailsByID(cmd.Context(), cli, args[0]))
		},
	}
	return cmd
}

func runDetails(ctx context.Context, cli cliutil.CLI, username string) error {
	details, err := cli.Client().GetUserDetails(ctx, username)
	return printDetails(cli, details, err)
}

func runDetailsByID(ctx context.Context, cli cliutil.CLI, userID string) error {
	details, err := cli.Client().GetUserDetailsByID(ctx, userID)
	return printDetails(cli, details, err)
}

func printDetails(cli cliutil.CLI, details json.RawMessage, err error) error {
	return cliutil.PrintResult(cli, err, "Error fetching user details", func() error {
		cli.PrintOut("User details: %s\n", cliutil.FormatValue(details))
		return nil
	})
}
