package user

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/pinepods/pinectl/internal/cliutil"
)

func newThemeCommand(cli cliutil.CLI) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme <user-id>",
		Short: "Print the UI theme selected by a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cliutil.WrapStatusError(runTheme(cmd.Context(), cli, args[0]))
		},
	}
	return cmd
}

func runTheme(ctx context.Context, cli cliutil.CLI, userID string) error {
	theme, err := cli.Client().GetTheme(ctx, userID)
	return cliutil.PrintResult(cli, err, "Error fetching theme", func() error {
		cli.PrintOut("Theme: %s\n", cliutil.FormatValue(theme))
		return nil
	})
}
