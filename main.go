package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/moby/term"
	"github.com/spf13/cobra"

	apicmd "github.com/pinepods/pinectl/cmd/api"
	"github.com/pinepods/pinectl/cmd/auth"
	"github.com/pinepods/pinectl/cmd/episode"
	"github.com/pinepods/pinectl/cmd/mfa"
	"github.com/pinepods/pinectl/cmd/podcast"
	"github.com/pinepods/pinectl/cmd/session"
	"github.com/pinepods/pinectl/cmd/user"
	versioncmd "github.com/pinepods/pinectl/cmd/version"
	"github.com/pinepods/pinectl/internal/api"
	"github.com/pinepods/pinectl/internal/cliutil"
	"github.com/pinepods/pinectl/internal/config"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

type configOverrides struct {
	endpoint string
	apiKey   string
	headers  map[string]string
}

func main() {
	stdin, stdout, stderr := term.StdStreams()
	cli := cliutil.NewCLI(stdin, stdout, stderr, version)

	cmd := newRootCommand(cli)

	if err := cmd.Execute(); err != nil {
		if sterr, ok := err.(cliutil.StatusError); ok {
			cli.PrintErr("pinectl: %s\n", sterr)
			os.Exit(sterr.Code())
		}

		// Hopefully, only usage errors.
		slog.Debug("Exit error", "error", err)
		os.Exit(1)
	}
}

func newRootCommand(cli cliutil.CLI) *cobra.Command {
	var (
		logLevel  string
		overrides configOverrides
	)

	cmd := &cobra.Command{
		Use:     "pinectl <session|user|episode|podcast|mfa|auth|...>",
		Short:   "pinectl - command line client for the Pinepods server API.",
		Version: fmt.Sprintf("%s (built: %s commit: %s)", version, date, commit),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setLogLevel(cli, logLevel)
			cmd.SilenceUsage = true
			cmd.SilenceErrors = true

			loadConfigOrFail(cli, overrides)

			cli.SetClient(api.NewClient(api.ClientOptions{
				BaseURL:   cli.Config().APIBaseURL,
				Headers:   cli.Config().MergeHeaders(overrides.headers),
				APIKey:    cli.Config().APIKey,
				UserAgent: fmt.Sprintf("pinectl/%s", version),
			}))
		},
	}
	cmd.SetOut(cli.OutputStream())
	cmd.SetErr(cli.ErrorStream())

	cmd.AddCommand(
		session.NewCommand(cli),
		user.NewCommand(cli),
		episode.NewCommand(cli),
		podcast.NewCommand(cli),
		mfa.NewCommand(cli),
		auth.NewCommand(cli),
		apicmd.NewCommand(cli),
		versioncmd.NewCommand(cli),
	)

	flags := cmd.PersistentFlags()
	flags.SetInterspersed(false) // Instead of relying on --

	flags.StringVarP(
		&logLevel,
		"log-level",
		"l",
		"info",
		`log level for pinectl ("debug" | "info" | "warn" | "error")`,
	)
	flags.StringVar(
		&overrides.endpoint,
		"url",
		"",
		"Pinepods server API base URL",
	)
	flags.StringVar(
		&overrides.apiKey,
		"api-key",
		"",
		"API key to send instead of the stored one",
	)
	flags.StringToStringVarP(
		&overrides.headers,
		"header",
		"H",
		nil,
		"extra request header as key=value (repeatable)",
	)

	return cmd
}

func loadConfigOrFail(cli cliutil.CLI, overrides configOverrides) {
	configPath, err := config.ConfigFilePath()
	if err != nil {
		cli.PrintErr("Unable to determine config path: %s\n", err)
		os.Exit(1)
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		cli.PrintErr("Unable to load config: %s\n", err)
		cli.PrintErr("Is %s corrupted?\n", configPath)
		cfg = config.Default(configPath)
	}

	applyOverrides(cfg, overrides)

	cli.SetConfig(cfg)
}

func applyOverrides(cfg *config.Config, overrides configOverrides) {
	if overrides.endpoint != "" {
		cfg.APIBaseURL = overrides.endpoint
	}
	if overrides.apiKey != "" {
		cfg.APIKey = overrides.apiKey
	}
}

func setLogLevel(cli cliutil.CLI, logLevel string) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(logLevel)); err != nil {
		cli.PrintErr("Unable to parse log level: %s\n", logLevel)
		os.Exit(1)
	}

	slog.SetLogLoggerLevel(level)
}
