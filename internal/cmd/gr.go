package cmd

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/foundersandcoders/fac-cli/internal/airtable"
	"github.com/foundersandcoders/fac-cli/internal/config"
	"github.com/foundersandcoders/fac-cli/internal/debug"
	clierrors "github.com/foundersandcoders/fac-cli/internal/errors"
	"github.com/foundersandcoders/fac-cli/internal/output"
	"github.com/foundersandcoders/fac-cli/internal/report"
	"github.com/foundersandcoders/fac-cli/internal/ui"
)

func newGRCmd() *cobra.Command {
	var (
		outputFlag string
		queryFlag  string
	)

	cmd := &cobra.Command{
		Use:     "gr",
		Aliases: []string{"gateway-recent"},
		Short:   "Gateway recent - fetch and display recent gateway data",
		Long: `Fetch recent gateway submission rows from the configured Airtable view
and display them as a table.

Columns and header labels come from GR_COLUMNS and GR_HEADERS (comma-separated).

Example:
  fac gr
  fac gr --output json --query '.[].Email'`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg, err := config.Validate()
			if err != nil {
				return err
			}

			asJSON, err := parseOutputFlag(outputFlag)
			if err != nil {
				return err
			}

			u := ui.FromContext(ctx)
			if !cmd.Root().PersistentFlags().Changed("color") && cfg.Color != "" {
				u = ui.New(parseColorMode(cfg.Color), cmd.OutOrStdout(), cmd.ErrOrStderr())
			}

			u.Info("Fetching gateway recent data...")

			client := airtable.NewClient(cfg.APIKey)
			// Allows tests and proxies to override the Airtable API base URL.
			if baseURL := strings.TrimSpace(os.Getenv("AIRTABLE_API_BASE_URL")); baseURL != "" {
				client.WithBaseURL(baseURL)
			}
			if debug.IsDebug(ctx) || cfg.Debug {
				client.WithDebugOutput(cmd.ErrOrStderr())
			}

			records, err := client.ListRecords(ctx, cfg.ViewURL)
			if err != nil {
				return err
			}

			processed := report.Process(records)

			if asJSON {
				if err := output.PrintJSON(cmd.OutOrStdout(), processed, queryFlag); err != nil {
					return err
				}
			} else {
				columns := report.SplitList(cfg.Columns)
				headers := report.SplitList(cfg.Headers)
				if err := output.PrintTable(cmd.OutOrStdout(), processed, columns, headers); err != nil {
					return err
				}
			}

			u.Success("Displayed %d records", len(processed))
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFlag, "output", "o", "text", "Output format: text|json")
	cmd.Flags().StringVarP(&queryFlag, "query", "q", "", "JQ expression to filter JSON output")
	flagAlias(cmd.Flags(), "query", "jq")

	return cmd
}

func parseOutputFlag(value string) (asJSON bool, err error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "text", "table":
		return false, nil
	case "json":
		return true, nil
	default:
		return false, clierrors.NewUserError(
			"invalid --output format",
			"Use one of: text, json",
		)
	}
}
