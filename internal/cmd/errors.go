package cmd

import (
	"errors"

	"github.com/aaronlippold/linesplit/internal/splitter"
)

// ErrUsage is returned when the required positional arguments are missing.
var ErrUsage = errors.New("missing arguments")

// ErrInvalidFlag is returned for flag values that have no fallback.
var ErrInvalidFlag = errors.New("invalid flag value")

// errReported marks errors already printed to the user.
var errReported = errors.New("reported")

type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }

func (e *reportedError) Unwrap() []error { return []error{e.err, errReported} }

func reported(err error) error {
	return &reportedError{err: err}
}

// ExitCode maps an error returned by Execute to a process exit code:
// 0 on success, 2 for usage errors and missing input, 1 for I/O failures.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, ErrUsage), errors.Is(err, ErrInvalidFlag), errors.Is(err, splitter.ErrInputNotFound):
		return 2
	default:
		return 1
	}
}
