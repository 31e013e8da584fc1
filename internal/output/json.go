package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/itchyny/gojq"

	clierrors "github.com/foundersandcoders/fac-cli/internal/errors"
)

// PrintJSON writes data as pretty-printed JSON. A non-empty query is compiled
// as a jq expression and applied first; each result is encoded on its own.
func PrintJSON(w io.Writer, data any, query string) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")

	if query == "" {
		return enc.Encode(data)
	}

	normalized, err := normalizeToInterface(data)
	if err != nil {
		return fmt.Errorf("query error: %w", err)
	}

	parsed, err := gojq.Parse(query)
	if err != nil {
		return invalidQueryError(err)
	}
	code, err := gojq.Compile(parsed)
	if err != nil {
		return invalidQueryError(err)
	}

	iter := code.Run(normalized)
	for {
		v, ok := iter.Next()
		if !ok {
			break
		}
		if queryErr, isErr := v.(error); isErr {
			return clierrors.WrapUserError(queryErr, "query error", "")
		}
		if err := enc.Encode(v); err != nil {
			return err
		}
	}

	return nil
}

// normalizeToInterface converts data to plain map/slice form via a JSON round
// trip so gojq can traverse it.
func normalizeToInterface(data any) (any, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	var normalized any
	if err := json.Unmarshal(raw, &normalized); err != nil {
		return nil, err
	}
	return normalized, nil
}

func invalidQueryError(err error) error {
	return clierrors.WrapUserError(err,
		"invalid --query expression",
		"See the jq manual for filter syntax")
}
