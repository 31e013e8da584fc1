// Package cmd wires the fac CLI commands.
package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/foundersandcoders/fac-cli/internal/config"
	"github.com/foundersandcoders/fac-cli/internal/debug"
	"github.com/foundersandcoders/fac-cli/internal/logging"
	"github.com/foundersandcoders/fac-cli/internal/ui"
)

func newRootCmd(app *App) *cobra.Command {
	// Global flags
	var (
		debugFlag bool
		colorFlag string
	)

	rootCmd := &cobra.Command{
		Use:   "fac",
		Short: "CLI for Founders and Coders training operations",
		Long: `fac is a command-line tool for Founders and Coders training operations.

Available commands:
  gr              Gateway recent - fetch and display recent gateway data

Configuration:
  Copy .env.example to .env and configure your Airtable credentials.`,
		// Cobra must not emit its own error/usage text; error output is
		// handled centrally in App.Execute.
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			debugMode := debugFlag || config.DebugEnabled()

			logging.Setup(debugMode, cmd.ErrOrStderr())

			ctx := debug.WithDebug(cmd.Context(), debugMode)
			ctx = ui.WithUI(ctx, ui.New(parseColorMode(colorFlag), cmd.OutOrStdout(), cmd.ErrOrStderr()))
			cmd.SetContext(ctx)
			return nil
		},
	}

	rootCmd.SetOut(app.Stdout)
	rootCmd.SetErr(app.Stderr)

	rootCmd.Version = app.Version
	rootCmd.SetVersionTemplate(fmt.Sprintf("fac %s (commit: %s, built: %s)\n", app.Version, app.Commit, app.BuildTime))

	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "Enable debug output (shows HTTP requests/responses)")
	rootCmd.PersistentFlags().StringVar(&colorFlag, "color", "auto", "Color output mode (auto|always|never)")

	rootCmd.AddCommand(newGRCmd())

	return rootCmd
}

func parseColorMode(value string) ui.ColorMode {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "always":
		return ui.ColorAlways
	case "never":
		return ui.ColorNever
	default:
		return ui.ColorAuto
	}
}
