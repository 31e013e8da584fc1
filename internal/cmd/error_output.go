package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/foundersandcoders/fac-cli/internal/debug"
	clierrors "github.com/foundersandcoders/fac-cli/internal/errors"
)

// printCommandError is the single place a command error becomes stderr text.
// User-facing errors get a one-line remediation hint; in debug mode the full
// cause chain is shown as well.
func printCommandError(ctx context.Context, w io.Writer, err error) {
	if err == nil {
		return
	}

	if errors.Is(err, context.Canceled) {
		_, _ = fmt.Fprintln(w, "\nOperation cancelled by user")
		return
	}

	_, _ = fmt.Fprintf(w, "Error: %v\n", err)

	if suggestion := clierrors.UserSuggestion(err); suggestion != "" {
		_, _ = fmt.Fprintf(w, "Hint: %s\n", suggestion)
	} else if strings.HasPrefix(err.Error(), "unknown command") {
		_, _ = fmt.Fprintln(w, "Run 'fac help' for usage information")
	}

	if debug.IsDebug(ctx) {
		for cause := errors.Unwrap(err); cause != nil; cause = errors.Unwrap(cause) {
			_, _ = fmt.Fprintf(w, "  caused by: %v\n", cause)
		}
	}
}
