// Package cliutil holds what every pinectl command shares: the output
// streams, the loaded config, the API client and the interactive prompts.
package cliutil

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/docker/cli/cli/streams"

	"github.com/pinepods/pinectl/internal/api"
	"github.com/pinepods/pinectl/internal/config"
)

// Messages go to OutputStream. Prompts, spinners and hints go to AuxStream
// so that stdout only ever carries the command's result.
type Streams interface {
	InputStream() *streams.In
	OutputStream() *streams.Out
	AuxStream() *streams.Out
	ErrorStream() io.Writer
}

type CLI interface {
	Streams

	// Quiet mode discards everything printed with PrintAux.
	SetQuiet(bool)

	PrintOut(string, ...any)
	PrintErr(string, ...any)
	PrintAux(string, ...any)

	SetConfig(*config.Config)
	Config() *config.Config

	SetClient(*api.Client)
	Client() *api.Client

	Confirm(title, affirmative, negative string) bool

	Input(title, prompt string, value *string, validate func(string) error) error

	// Masked input for passwords and API keys.
	Password(title string, value *string) error

	Version() string
}

type cli struct {
	in  *streams.In
	out *streams.Out
	aux *streams.Out
	err io.Writer

	config *config.Config
	client *api.Client

	version string
}

var _ CLI = &cli{}

func NewCLI(cin io.ReadCloser, cout io.Writer, cerr io.Writer, version string) CLI {
	return &cli{
		in:      streams.NewIn(cin),
		out:     streams.NewOut(cout),
		aux:     streams.NewOut(cerr),
		err:     cerr,
		version: version,
	}
}

func (c *cli) InputStream() *streams.In   { return c.in }
func (c *cli) OutputStream() *streams.Out { return c.out }
func (c *cli) AuxStream() *streams.Out    { return c.aux }
func (c *cli) ErrorStream() io.Writer     { return c.err }

func (c *cli) SetConfig(cfg *config.Config) { c.config = cfg }
func (c *cli) Config() *config.Config       { return c.config }

func (c *cli) SetClient(client *api.Client) { c.client = client }
func (c *cli) Client() *api.Client          { return c.client }

func (c *cli) Version() string { return c.version }

func (c *cli) SetQuiet(quiet bool) {
	var w io.Writer = c.err
	if quiet {
		w = io.Discard
	}
	c.aux = streams.NewOut(w)
}

func (c *cli) PrintOut(format string, a ...any) {
	fmt.Fprintf(c.out, format, a...)
}

func (c *cli) PrintErr(format string, a ...any) {
	fmt.Fprintf(c.err, format, a...)
}

func (c *cli) PrintAux(format string, a ...any) {
	fmt.Fprintf(c.aux, format, a...)
}

func (c *cli) Confirm(title, affirmative, negative string) bool {
	var confirm bool

	field := huh.NewConfirm().
		Title(title).
		Affirmative(affirmative).
		Negative(negative).
		Value(&confirm)

	if err := c.prompt(field); err != nil {
		slog.Warn("Confirmation prompt failed", "error", err.Error())
		return false
	}

	return confirm
}

func (c *cli) Input(title, prompt string, value *string, validate func(string) error) error {
	return c.prompt(huh.NewInput().
		Title(title).
		Prompt(prompt).
		Validate(validate).
		Value(value))
}

func (c *cli) Password(title string, value *string) error {
	return c.prompt(huh.NewInput().
		Title(title).
		EchoMode(huh.EchoModePassword).
		Validate(NonEmpty).
		Value(value))
}

// prompt runs a single field on the CLI's own input and error streams.
func (c *cli) prompt(field huh.Field) error {
	return huh.NewForm(huh.NewGroup(field)).
		WithShowHelp(false).
		WithInput(c.in).
		WithOutput(c.err).
		Run()
}

func NonEmpty(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("value cannot be empty")
	}
	return nil
}
