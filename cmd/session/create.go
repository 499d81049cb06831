package session

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/pinepods/pinectl/internal/cliutil"
)

type createOptions struct {
	userID string
}

func newCreateCommand(cli cliutil.CLI) *cobra.Command {
	var opts createOptions

	cmd := &cobra.Command{
		Use:   "create <user-id>",
		Short: "Create a session for the given user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.userID = args[0]

			return cliutil.WrapStatusError(runCreate(cmd.Context(), cli, &opts))
		},
	}
	return cmd
}

func runCreate(ctx context.Context, cli cliutil.CLI, opts *createOptions) error {
	err := cli.Client().CreateSession(ctx, opts.userID)
	return cliutil.PrintResult(cli, err, "Error creating session", func() error {
		cli.PrintOut("Session created successfully\n")
		return nil
	})
}
