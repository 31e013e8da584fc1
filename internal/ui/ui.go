// Package ui provides terminal color support and leveled console messages for fac-cli.
package ui

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// ColorMode determines when to use colored output.
type ColorMode int

const (
	// ColorAuto automatically detects whether to use colors based on terminal capabilities.
	ColorAuto ColorMode = iota
	// ColorAlways forces colored output regardless of terminal capabilities.
	ColorAlways
	// ColorNever disables all colored output.
	ColorNever
)

type contextKey string

const uiContextKey contextKey = "ui"

// UI provides methods for formatted terminal output with color support.
// Success and Info write to stdout; Warning and Error write to stderr,
// keeping the data/diagnostics split stable for shell pipelines.
type UI struct {
	stdout *termenv.Output
	stderr *termenv.Output
	color  ColorMode
}

// New creates a new UI instance writing to the given streams with the
// specified color mode. It respects the NO_COLOR environment variable
// (POSIX standard).
func New(mode ColorMode, stdout, stderr io.Writer) *UI {
	if os.Getenv("NO_COLOR") != "" {
		mode = ColorNever
	}
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}

	profile := termenv.ColorProfile()
	switch mode {
	case ColorNever:
		profile = termenv.Ascii
	case ColorAlways:
		// Use at least ANSI256 if forcing colors
		if profile == termenv.Ascii {
			profile = termenv.ANSI256
		}
	default:
		if !isTerminal(stdout) {
			profile = termenv.Ascii
		}
	}

	return &UI{
		stdout: termenv.NewOutput(stdout, termenv.WithProfile(profile)),
		stderr: termenv.NewOutput(stderr, termenv.WithProfile(profile)),
		color:  mode,
	}
}

// WithUI returns a new context with the UI instance attached.
func WithUI(ctx context.Context, ui *UI) context.Context {
	return context.WithValue(ctx, uiContextKey, ui)
}

// FromContext retrieves the UI instance from the context.
// If no UI is found, it returns a default UI with ColorAuto mode.
func FromContext(ctx context.Context) *UI {
	if ui, ok := ctx.Value(uiContextKey).(*UI); ok {
		return ui
	}
	return New(ColorAuto, os.Stdout, os.Stderr)
}

// Success prints a success message in green to stdout.
func (u *UI) Success(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	_, _ = fmt.Fprintln(u.stdout, u.stdout.String("✓ "+msg).Foreground(termenv.ANSIGreen))
}

// Info prints an informational message in blue to stdout.
func (u *UI) Info(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	_, _ = fmt.Fprintln(u.stdout, u.stdout.String("ℹ "+msg).Foreground(termenv.ANSIBlue))
}

// Warning prints a warning message in yellow to stderr.
func (u *UI) Warning(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	_, _ = fmt.Fprintln(u.stderr, u.stderr.String("⚠ "+msg).Foreground(termenv.ANSIYellow))
}

// Error prints an error message in red to stderr.
func (u *UI) Error(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	_, _ = fmt.Fprintln(u.stderr, u.stderr.String("✗ "+msg).Foreground(termenv.ANSIRed))
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
