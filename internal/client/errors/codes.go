package errors

import (
	"fmt"
	"net/http"
	"os"
)

// Exit codes for different error scenarios
const (
	ExitSuccess          = 0 // Success
	ExitGeneralError     = 1 // General error (network failure, unknown error)
	ExitInvalidArguments = 2 // Invalid arguments/usage (bad flags, invalid config)
	ExitNotFound         = 3 // No token found in any source
	ExitAuthError        = 5 // Token rejected by the Copilot endpoint (401)
	ExitPermissionDenied = 6 // Token has no Copilot access (403)
)

// ExitWithError prints error message and exits with appropriate code
func ExitWithError(err error, message string) {
	if message != "" {
		fmt.Fprintf(os.Stderr, "Error: %s: %v\n", message, err)
	} else {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	os.Exit(ExitGeneralError)
}

// ExitWithCode prints error message and exits with specific code.
// An empty message exits silently.
func ExitWithCode(code int, message string) {
	if message != "" {
		fmt.Fprintf(os.Stderr, "Error: %s\n", message)
	}
	os.Exit(code)
}

// MapHTTPStatusToExitCode maps token endpoint status codes to exit codes
func MapHTTPStatusToExitCode(statusCode int) int {
	switch {
	case statusCode >= 200 && statusCode < 300:
		return ExitSuccess
	case statusCode == http.StatusUnauthorized:
		return ExitAuthError
	case statusCode == http.StatusForbidden:
		return ExitPermissionDenied
	case statusCode == http.StatusNotFound:
		// The endpoint answers 404 for accounts without Copilot
		return ExitPermissionDenied
	default:
		return ExitGeneralError
	}
}

// HandleHTTPError handles token endpoint error responses
func HandleHTTPError(statusCode int, message string) {
	code := MapHTTPStatusToExitCode(statusCode)

	// Add specific suggestions for auth errors
	if statusCode == http.StatusUnauthorized {
		message += ". Try running 'gh auth login' or signing in to Copilot in your editor"
	}

	ExitWithCode(code, message)
}
