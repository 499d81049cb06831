package cliutil

import (
	"errors"
	"fmt"
	"strings"

	"github.com/pinepods/pinectl/internal/api"
)

// StatusError is what a command returns to main: a one-line message and
// the process exit code.
type StatusError struct {
	status string
	code   int
}

var _ error = StatusError{}

func NewStatusError(code int, format string, a ...any) StatusError {
	status := fmt.Sprintf(format, a...)
	if !strings.HasSuffix(status, ".") && !strings.HasSuffix(status, "!") {
		status += "."
	}
	return StatusError{
		code:   code,
		status: strings.ToUpper(status[:1]) + status[1:],
	}
}

func (e StatusError) Error() string {
	return e.status
}

func (e StatusError) Code() int {
	return e.code
}

// WrapStatusError turns any command error into a StatusError with exit
// code 1. A non-200 reply that reached main is reported by its status code
// rather than its raw body.
func WrapStatusError(err error) error {
	if err == nil {
		return nil
	}

	if errors.As(err, new(StatusError)) {
		return err
	}

	if code, ok := api.StatusCode(err); ok {
		return NewStatusError(1, "server replied with status %d", code)
	}

	return NewStatusError(1, "%s", err.Error())
}
