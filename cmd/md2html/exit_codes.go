package main

import "errors"

// Exit codes for md2html CLI. Every failure class exits 1; the diagnostic
// line distinguishes them.
const (
	ExitSuccess = 0 // Successful conversion
	ExitError   = 1 // Usage, missing input, I/O, or conversion error
)

// renderError maps an error to the single diagnostic line printed on
// standard error. It uses errors.Is to check wrapped errors, so callers
// must wrap with fmt.Errorf("%w", err). Usage and missing-input errors
// print verbatim; everything else carries the "Error: " prefix.
func renderError(err error) string {
	switch {
	case errors.Is(err, ErrUsage), errors.Is(err, ErrMissingInput):
		return err.Error()
	default:
		return "Error: " + err.Error()
	}
}
