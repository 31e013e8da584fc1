package airtable

import "fmt"

// APIError represents a non-2xx response from the Airtable API that does not
// map to a more specific error type.
type APIError struct {
	StatusCode int
	Body       string
}

// Error implements the error interface
func (e *APIError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("Airtable API error: %d - %s", e.StatusCode, e.Body)
	}
	return fmt.Sprintf("Airtable API error: %d", e.StatusCode)
}
