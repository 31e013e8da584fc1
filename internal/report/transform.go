// Package report reshapes gateway records for display.
package report

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/foundersandcoders/fac-cli/internal/airtable"
)

// familyNameField is the one field the gateway report rewrites. Airtable
// returns it as a list of linked values; the report shows an abbreviation.
const familyNameField = "Family name"

// abbrevLen is the number of leading characters kept by Abbreviate.
const abbrevLen = 4

// Flatten converts a field value to its display string. Lists collapse to the
// string form of their first element (empty string for empty lists), nil
// becomes the empty string, and everything else is stringified.
func Flatten(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case []any:
		if len(val) == 0 {
			return ""
		}
		return Stringify(val[0])
	default:
		return Stringify(v)
	}
}

// Stringify renders a JSON-compatible value as a string. Nil becomes the
// empty string; numbers drop their trailing zero fraction.
func Stringify(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// Abbreviate returns the first 4 characters of name, or name unchanged when
// it is shorter. No padding is applied.
func Abbreviate(name string) string {
	r := []rune(name)
	if len(r) <= abbrevLen {
		return name
	}
	return string(r[:abbrevLen])
}

// Process rewrites the family-name field of every record, leaving all other
// fields untouched. Each returned record is a shallow copy of its input:
// nested values are shared with the original. Nil and empty inputs yield an
// empty slice.
func Process(records []airtable.Record) []airtable.Record {
	if len(records) == 0 {
		return []airtable.Record{}
	}

	processed := make([]airtable.Record, 0, len(records))
	for _, record := range records {
		cp := make(airtable.Record, len(record))
		for k, v := range record {
			cp[k] = v
		}
		if v, ok := cp[familyNameField]; ok {
			cp[familyNameField] = Abbreviate(Flatten(v))
		}
		processed = append(processed, cp)
	}
	return processed
}

// SplitList parses a comma-separated configuration value into its entries,
// trimming surrounding whitespace and dropping empty tokens.
func SplitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
