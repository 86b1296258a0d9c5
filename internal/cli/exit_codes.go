package cli

import "fmt"

// Exit codes for the validate-docs CLI
// These codes support programmatic composition and CI integration
const (
	// ExitSuccess indicates no error diagnostics (and no warnings under --strict)
	ExitSuccess = 0

	// ExitValidationFailed indicates one or more error-severity diagnostics
	ExitValidationFailed = 1

	// ExitUsage indicates an invocation error (bad path, unreadable file, bad flag)
	ExitUsage = 2
)

// exitError is a custom error type that carries an exit code.
type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit code %d", e.code)
}

// NewExitError creates a new exit error with the given code.
func NewExitError(code int) error {
	return &exitError{code: code}
}

// ExitCode returns the exit code from an error.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	if e, ok := err.(*exitError); ok {
		return e.code
	}
	return ExitValidationFailed
}
