package cli

import (
	"errors"
	"fmt"
)

// Process exit statuses.
const (
	ExitSuccess      = 0
	ExitLookupFailed = 1 // no matching withdrawal, or its payload is malformed
	ExitCommandError = 2 // bad configuration, unusable ledger file, failed schema setup
)

// codedError carries the exit status a failed command should end with.
type codedError struct {
	code int
	err  error
}

func (e *codedError) Error() string { return e.err.Error() }
func (e *codedError) Unwrap() error { return e.err }

// exitWith prefixes err with msg and attaches code. A nil err yields msg alone.
func exitWith(code int, msg string, err error) error {
	if err == nil {
		return &codedError{code: code, err: errors.New(msg)}
	}
	return &codedError{code: code, err: fmt.Errorf("%s: %w", msg, err)}
}

// ExitCode maps a command error to the process exit status. Errors without an
// attached status, such as cobra's flag and argument errors, are command errors.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var coded *codedError
	if errors.As(err, &coded) {
		return coded.code
	}
	return ExitCommandError
}
