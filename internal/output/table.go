// Package output renders gateway records for the terminal.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/foundersandcoders/fac-cli/internal/airtable"
	clierrors "github.com/foundersandcoders/fac-cli/internal/errors"
	"github.com/foundersandcoders/fac-cli/internal/report"
)

// maxCellWidth is the cap on a rendered cell. Longer values are cut to 47
// characters plus the ellipsis marker so the result is exactly 50.
const maxCellWidth = 50

const cellEllipsis = "..."

// Messages for the empty cases.
const (
	noDataToDisplay = "No data to display"
	noDataAvailable = "No data available"
)

// FormatRows projects records onto the ordered column keys, stringifying and
// truncating each cell. Missing fields default to the empty string. The
// column/header counts must match; the mismatch is reported before any row is
// built.
func FormatRows(records []airtable.Record, columns, headers []string) ([][]string, error) {
	if len(columns) != len(headers) {
		return nil, clierrors.NewUserError(
			fmt.Sprintf("columns (%d) and headers (%d) count mismatch", len(columns), len(headers)),
			"GR_COLUMNS and GR_HEADERS must list the same number of entries",
		)
	}

	rows := make([][]string, 0, len(records))
	for _, record := range records {
		row := make([]string, 0, len(columns))
		for _, column := range columns {
			row = append(row, formatCell(record[column]))
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func formatCell(v any) string {
	s := report.Stringify(v)
	r := []rune(s)
	if len(r) > maxCellWidth {
		s = string(r[:maxCellWidth-len(cellEllipsis)]) + cellEllipsis
	}
	return s
}

// RenderTable draws rows under headers as a boxed grid table. Empty rows
// yield the literal "No data to display". Column widths use terminal display
// width, so wide runes line up.
func RenderTable(rows [][]string, headers []string) string {
	if len(rows) == 0 {
		return noDataToDisplay
	}

	widths := columnWidths(rows, headers)

	var sb strings.Builder
	writeRule(&sb, widths, '-')
	writeRow(&sb, headers, widths)
	writeRule(&sb, widths, '=')
	for _, row := range rows {
		writeRow(&sb, row, widths)
		writeRule(&sb, widths, '-')
	}
	return strings.TrimSuffix(sb.String(), "\n")
}

// PrintTable renders records onto the column projection and writes the table
// to w. Empty input prints "No data available" and draws nothing.
func PrintTable(w io.Writer, records []airtable.Record, columns, headers []string) error {
	if len(records) == 0 {
		_, err := fmt.Fprintln(w, noDataAvailable)
		return err
	}

	rows, err := FormatRows(records, columns, headers)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, RenderTable(rows, headers))
	return err
}

func columnWidths(rows [][]string, headers []string) []int {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) {
				if w := runewidth.StringWidth(cell); w > widths[i] {
					widths[i] = w
				}
			}
		}
	}
	return widths
}

func writeRule(sb *strings.Builder, widths []int, fill rune) {
	sb.WriteString("+")
	for _, w := range widths {
		sb.WriteString(strings.Repeat(string(fill), w+2))
		sb.WriteString("+")
	}
	sb.WriteString("\n")
}

func writeRow(sb *strings.Builder, cells []string, widths []int) {
	sb.WriteString("|")
	for i, w := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		pad := w - runewidth.StringWidth(cell)
		sb.WriteString(" ")
		sb.WriteString(cell)
		if pad > 0 {
			sb.WriteString(strings.Repeat(" ", pad))
		}
		sb.WriteString(" |")
	}
	sb.WriteString("\n")
}
