// Package airtable is a minimal client for reading records from one Airtable view.
package airtable

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/foundersandcoders/fac-cli/internal/debug"
	clierrors "github.com/foundersandcoders/fac-cli/internal/errors"
)

const (
	defaultBaseURL = "https://api.airtable.com"
	defaultTimeout = 30 * time.Second
)

// Record is one row's field data as returned by Airtable, keyed by field name.
type Record map[string]any

// Client is the Airtable API client. It issues a single authenticated GET per
// ListRecords call; rate limiting is surfaced to the caller, never retried.
type Client struct {
	httpClient *http.Client
	apiKey     string
	baseURL    string
}

// NewClient creates a new Airtable API client with the given API key.
func NewClient(apiKey string) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
	}
}

// WithHTTPClient sets a custom HTTP client
func (c *Client) WithHTTPClient(client *http.Client) *Client {
	c.httpClient = client
	return c
}

// WithBaseURL sets a custom base URL (useful for testing)
func (c *Client) WithBaseURL(baseURL string) *Client {
	c.baseURL = strings.TrimSuffix(baseURL, "/")
	return c
}

// WithDebugOutput enables HTTP request/response logging to the provided writer.
func (c *Client) WithDebugOutput(w io.Writer) *Client {
	baseTransport := c.httpClient.Transport
	if baseTransport == nil {
		baseTransport = http.DefaultTransport
	}

	c.httpClient.Transport = debug.NewTransport(baseTransport, w)
	return c
}

// authHeaders returns the headers sent with every Airtable request.
func authHeaders(apiKey string) map[string]string {
	return map[string]string{
		"Authorization": "Bearer " + apiKey,
		"Content-Type":  "application/json",
	}
}

// recordEnvelope is one element of the response "records" array. Elements
// without a fields object are dropped by extraction.
type recordEnvelope struct {
	ID     string         `json:"id"`
	Fields map[string]any `json:"fields"`
}

// ListRecords fetches all records of the configured view in a single GET.
// The view URL may be either the shareable https://airtable.com form or the
// already-converted API form.
func (c *Client) ListRecords(ctx context.Context, viewURL string) ([]Record, error) {
	if c.apiKey == "" || viewURL == "" {
		return nil, clierrors.NewUserError(
			"Airtable API key and view URL are required",
			"Set AIRTABLE_API_KEY and AIRTABLE_VIEW_URL in your .env file",
		)
	}

	apiURL, err := ConvertViewURL(viewURL)
	if err != nil {
		return nil, err
	}
	if c.baseURL != defaultBaseURL {
		apiURL = c.baseURL + strings.TrimPrefix(apiURL, strings.TrimSuffix(apiURLPrefix, "/"))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	for key, value := range authHeaders(c.apiKey) {
		req.Header.Set(key, value)
	}

	slog.Debug("fetching Airtable view", "url", req.URL.Redacted())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, transportError(ctx, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, clierrors.WrapUserError(err, "unexpected error connecting to Airtable", "")
	}

	if resp.StatusCode != http.StatusOK {
		return nil, statusError(resp, body)
	}

	return decodeRecords(body)
}

// transportError maps request-level failures to distinct user-facing errors.
func transportError(ctx context.Context, err error) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return clierrors.WrapUserError(err,
			"request to Airtable timed out",
			"Check your internet connection")
	}

	return clierrors.WrapUserError(err,
		"unable to connect to Airtable",
		"Check your internet connection")
}

// statusError buckets non-200 responses into the error taxonomy.
func statusError(resp *http.Response, body []byte) error {
	switch resp.StatusCode {
	case http.StatusUnauthorized:
		return &clierrors.AuthError{
			Reason:     "invalid Airtable API key",
			Suggestion: "Check AIRTABLE_API_KEY in your .env file",
		}
	case http.StatusNotFound:
		return clierrors.NewUserError(
			"Airtable view not found",
			"Check AIRTABLE_VIEW_URL in your .env file",
		)
	case http.StatusTooManyRequests:
		return &clierrors.RateLimitError{
			RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After")),
		}
	default:
		return &APIError{
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}
}

// decodeRecords parses the JSON envelope and extracts the per-record field
// mapping. The top-level records key is required; elements without fields are
// silently dropped.
func decodeRecords(body []byte) ([]Record, error) {
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, clierrors.WrapUserError(err,
			"invalid response from Airtable API",
			"Expected a JSON object")
	}

	raw, ok := envelope["records"]
	if !ok {
		return nil, clierrors.NewUserError(
			"unexpected response format from Airtable: missing 'records' field",
			"",
		)
	}

	var elements []recordEnvelope
	if err := json.Unmarshal(raw, &elements); err != nil {
		return nil, clierrors.WrapUserError(err,
			"invalid response from Airtable API",
			"Expected 'records' to be an array")
	}

	records := make([]Record, 0, len(elements))
	for _, el := range elements {
		if el.Fields == nil {
			continue
		}
		records = append(records, Record(el.Fields))
	}
	return records, nil
}

// parseRetryAfter parses the Retry-After header value.
// Returns the duration to wait, or 0 if not parseable.
func parseRetryAfter(retryAfter string) time.Duration {
	if retryAfter == "" {
		return 0
	}

	if seconds, err := strconv.Atoi(retryAfter); err == nil {
		return time.Duration(seconds) * time.Second
	}

	if t, err := http.ParseTime(retryAfter); err == nil {
		delay := time.Until(t)
		if delay > 0 {
			return delay
		}
	}

	return 0
}
