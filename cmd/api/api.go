package api

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pinepods/pinectl/internal/cliutil"
)

func NewCommand(cli cliutil.CLI) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "api <path>",
		Short: "Send a raw GET request to the server API and print the response body",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cliutil.WrapStatusError(runAPIRequest(cmd.Context(), cli, args[0]))
		},
	}

	return cmd
}

func runAPIRequest(ctx context.Context, cli cliutil.CLI, path string) error {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	resp, err := cli.Client().Get(ctx, path, nil, nil)
	if err != nil {
		return fmt.Errorf("failed to make API request: %w", err)
	}
	defer resp.Body.Close()

	if _, err := io.Copy(cli.OutputStream(), resp.Body); err != nil {
		return fmt.Errorf("failed to write response: %w", err)
	}

	return nil
}
