package cli

import (
	"errors"
	"fmt"

	"github.com/tOgg1/hue/internal/scheme"
)

const (
	ExitCodeFailure = 1
	ExitCodeUsage   = 2
)

// ExitError carries the process exit code for an error.
type ExitError struct {
	Code    int
	Err     error
	Printed bool
}

func (e *ExitError) Error() string {
	if e == nil || e.Err == nil {
		return "exit"
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Exitf builds an ExitError from a format string. %w verbs are preserved.
func Exitf(code int, format string, args ...any) error {
	return &ExitError{Code: code, Err: fmt.Errorf(format, args...)}
}

// exitFor maps state machine errors to exit codes: lookups that miss are usage errors.
func exitFor(err error) error {
	if err == nil {
		return nil
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return err
	}
	switch {
	case errors.Is(err, scheme.ErrNameNotFound),
		errors.Is(err, scheme.ErrUnknownDirection),
		errors.Is(err, scheme.ErrUnknownLightness):
		return &ExitError{Code: ExitCodeUsage, Err: err}
	default:
		return &ExitError{Code: ExitCodeFailure, Err: err}
	}
}
