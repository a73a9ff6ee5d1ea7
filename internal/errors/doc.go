// Package errors provides error handling conventions for the skillmeta CLI.
//
// It re-exports the wrapping helpers from [github.com/cockroachdb/errors] so
// every package wraps errors the same way, defines sentinel errors for common
// failure conditions, and provides an ExitError type that carries a process
// exit code and an optional suggestion for the user.
//
// # Sentinel Errors
//
//	if errors.Is(err, errors.ErrNotFound) {
//	    // handle missing skill
//	}
//
// # Exit Codes
//
//   - ExitSuccess (0): command completed successfully
//   - ExitUser (1): invalid input, failed validation, bad configuration
//   - ExitSystem (2): I/O or permission failures
//
// # ExitError
//
//	err := errors.NewUserError(errors.ErrValidationFailed, "Run: skillmeta validate --json <dir>")
//	var exitErr *errors.ExitError
//	if errors.As(err, &exitErr) {
//	    os.Exit(exitErr.Code)
//	}
package errors
