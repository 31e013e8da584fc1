package airtable

import (
	"fmt"
	"strings"

	clierrors "github.com/foundersandcoders/fac-cli/internal/errors"
)

const (
	publicURLPrefix = "https://airtable.com/"
	apiURLPrefix    = "https://api.airtable.com/"
)

// ID prefixes Airtable uses for the three path segments of a shared view URL.
const (
	appIDPrefix   = "app"
	tableIDPrefix = "tbl"
	viewIDPrefix  = "viw"
)

const expectedURLShape = "https://airtable.com/appXXXXX/tblXXXXX/viwXXXXX"

// ConvertViewURL translates a human-shareable Airtable view URL into the
// API-addressable form:
//
//	https://airtable.com/<app>/<tbl>/<viw>  ->  https://api.airtable.com/v0/<app>/<tbl>?view=<viw>
//
// URLs that already point at the API host are returned unchanged, which makes
// the conversion idempotent. Path segments beyond the third are discarded.
func ConvertViewURL(viewURL string) (string, error) {
	if strings.HasPrefix(viewURL, apiURLPrefix) {
		return viewURL, nil
	}

	if !strings.HasPrefix(viewURL, publicURLPrefix) {
		return "", clierrors.NewUserError(
			"invalid Airtable view URL",
			fmt.Sprintf("Expected format: %s", expectedURLShape),
		)
	}

	parts := strings.Split(strings.TrimPrefix(viewURL, publicURLPrefix), "/")
	if len(parts) < 3 {
		return "", clierrors.NewUserError(
			"invalid Airtable view URL format",
			fmt.Sprintf("Expected format: %s", expectedURLShape),
		)
	}

	appID, tableID, viewID := parts[0], parts[1], parts[2]
	if !strings.HasPrefix(appID, appIDPrefix) ||
		!strings.HasPrefix(tableID, tableIDPrefix) ||
		!strings.HasPrefix(viewID, viewIDPrefix) {
		return "", clierrors.NewUserError(
			"invalid Airtable view URL components",
			fmt.Sprintf("Expected %s/%s/%s identifiers as in %s", appIDPrefix+"XXXXX", tableIDPrefix+"XXXXX", viewIDPrefix+"XXXXX", expectedURLShape),
		)
	}

	return fmt.Sprintf("%sv0/%s/%s?view=%s", apiURLPrefix, appID, tableID, viewID), nil
}
