package cli

import (
	"fmt"
	"os"

	"github.com/gatetools/gate/errors"
)

// ErrorHandler provides user-friendly error messages
type ErrorHandler struct {
	Verbose bool
}

// NewErrorHandler creates a new error handler
func NewErrorHandler(verbose bool) *ErrorHandler {
	return &ErrorHandler{
		Verbose: verbose,
	}
}

// Handle provides user-friendly error messages based on error type
func (h *ErrorHandler) Handle(err error) error {
	switch errors.GetCode(err) {
	case errors.ErrCodeConfigNotFound:
		fmt.Fprintf(os.Stderr, "❌ No configuration found. Run 'gate sample-config > .gate.yaml' to create one.\n")
		return err

	case errors.ErrCodeHookNotFound:
		if gateErr, ok := err.(*errors.GateError); ok {
			fmt.Fprintf(os.Stderr, "❌ Hook '%s' not found\n", gateErr.Details["hook"])
			fmt.Fprintf(os.Stderr, "Run 'gate list-hooks' to see configured hooks.\n")
		}
		return err

	case errors.ErrCodeGitNotInstalled:
		fmt.Fprintf(os.Stderr, "❌ git is not installed or not on PATH.\n")
		return err

	case errors.ErrCodeGitNotARepo:
		fmt.Fprintf(os.Stderr, "❌ Not inside a git repository.\n")
		return err

	case errors.ErrCodeGitCloneFailed:
		if gateErr, ok := err.(*errors.GateError); ok {
			fmt.Fprintf(os.Stderr, "❌ Failed to clone hook repository '%s'\n", gateErr.Details["repo"])
			fmt.Fprintf(os.Stderr, "Check the repo URL and your network connection.\n")
		}
		return err

	case errors.ErrCodeCommandTimeout:
		fmt.Fprintf(os.Stderr, "❌ A hook command timed out.\n")
		return err

	default:
		fmt.Fprintf(os.Stderr, "❌ Error: %v\n", err)

		if h.Verbose {
			if gateErr, ok := err.(*errors.GateError); ok {
				fmt.Fprintf(os.Stderr, "\nError details:\n%s\n", gateErr.ToJSON())
			}
		}
		return err
	}
}
