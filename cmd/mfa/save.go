package mfa

import (
	"context"
	"fmt"
	"strings"

	"github.com/pquerna/otp/totp"
	"github.com/spf13/cobra"

	"github.com/pinepods/pinectl/internal/cliutil"
)

const (
	issuer = "Pinepods"

	// Bytes of entropy in a generated secret.
	secretSize = 32
)

type saveSecretOptions struct {
	userID  string
	secret  string
	account string
	code    string
}

func newSaveSecretCommand(cli cliutil.CLI) *cobra.Command {
	var opts saveSecretOptions

	cmd := &cobra.Command{
		Use:   "save-secret [flags] <user-id>",
		Short: "Store a TOTP secret for a user (a new one is generated unless --secret is given)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.userID = args[0]

			if opts.account == "" {
				opts.account = cli.Config().Username
			}

			return cliutil.WrapStatusError(runSaveSecret(cmd.Context(), cli, &opts))
		},
	}

	flags := cmd.Flags()

	flags.StringVar(
		&opts.secret,
		"secret",
		"",
		`Base32 TOTP secret to store`,
	)
	flags.StringVar(
		&opts.account,
		"account",
		"",
		`Account name in the provisioning URL (defaults to the logged in username)`,
	)
	flags.StringVar(
		&opts.code,
		"code",
		"",
		`Current code from the authenticator app (prompted for when a secret is generated)`,
	)

	return cmd
}

func runSaveSecret(ctx context.Context, cli cliutil.CLI, opts *saveSecretOptions) error {
	secret := opts.secret
	code := opts.code

	if secret == "" {
		account := opts.account
		if account == "" {
			account = "user-" + opts.userID
		}

		key, err := totp.Generate(totp.GenerateOpts{
			Issuer:      issuer,
			AccountName: account,
			SecretSize:  secretSize,
		})
		if err != nil {
			return fmt.Errorf("couldn't generate MFA secret: %w", err)
		}

		secret = key.Secret()
		cli.PrintAux("Add this account to your authenticator app:\n%s\n\n", key.URL())

		if code == "" {
			if err := cli.Input("Code from the authenticator app", "> ", &code, cliutil.NonEmpty); err != nil {
				return err
			}
		}
	}

	// A secret the user supplied is only checked when a code comes with it.
	if code != "" && !totp.Validate(strings.TrimSpace(code), secret) {
		return cliutil.NewStatusError(1, "invalid verification code, MFA secret not saved")
	}

	res, err := cli.Client().SaveMFASecret(ctx, opts.userID, secret)
	return cliutil.PrintResult(cli, err, "Error saving MFA secret", func() error {
		cli.PrintOut("MFA secret saved: %s\n", cliutil.FormatValue(res))
		return nil
	})
}
