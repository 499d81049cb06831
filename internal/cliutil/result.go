package cliutil

import (
	"github.com/pinepods/pinectl/internal/api"
)

// HandleResult applies the rule every wrapper command follows after its
// request. A non-200 reply calls onStatus with the code and is not an
// error. Transport and decoding errors are returned untouched. Otherwise
// onSuccess runs.
func HandleResult(err error, onStatus func(code int), onSuccess func() error) error {
	if code, ok := api.StatusCode(err); ok {
		onStatus(code)
		return nil
	}
	if err != nil {
		return err
	}
	return onSuccess()
}

// PrintResult is HandleResult with the usual failure line,
// "<failure>: <code>", printed to stdout.
func PrintResult(cli CLI, err error, failure string, onSuccess func() error) error {
	return HandleResult(err, func(code int) {
		cli.PrintOut("%s: %d\n", failure, code)
	}, onSuccess)
}
