package cmd

import (
	"errors"
	"fmt"
)

// codedError carries a process exit code through a RunE return value.
type codedError struct {
	code    int
	message string
	err     error
}

// Error implements the error interface.
func (e *codedError) Error() string {
	return fmt.Sprintf("%s: %v", e.message, e.err)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *codedError) Unwrap() error {
	return e.err
}

// exitError creates an error that will cause the CLI to exit with the
// given code.
func exitError(code int, message string, err error) error {
	return &codedError{code: code, message: message, err: err}
}

// exitCode extracts the exit code from err, defaulting to 1.
func exitCode(err error) int {
	var coded *codedError
	if errors.As(err, &coded) {
		return coded.code
	}
	return 1
}
