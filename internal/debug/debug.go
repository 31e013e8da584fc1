package debug

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

type contextKey struct{}

// WithDebug injects the debug flag into the context
func WithDebug(ctx context.Context, debug bool) context.Context {
	return context.WithValue(ctx, contextKey{}, debug)
}

// IsDebug returns true if debug mode is enabled in the context
func IsDebug(ctx context.Context) bool {
	if v, ok := ctx.Value(contextKey{}).(bool); ok {
		return v
	}
	return false
}

// Transport wraps http.RoundTripper to log requests/responses when debug mode is enabled
type Transport struct {
	Base   http.RoundTripper
	Output io.Writer
}

// NewTransport creates a new debug Transport with the given base transport.
// If output is nil, it defaults to os.Stderr.
func NewTransport(base http.RoundTripper, output io.Writer) *Transport {
	if base == nil {
		base = http.DefaultTransport
	}
	if output == nil {
		output = os.Stderr
	}
	return &Transport{
		Base:   base,
		Output: output,
	}
}

// RoundTrip implements http.RoundTripper
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()

	_, _ = fmt.Fprintf(t.Output, "\n--> %s %s\n", req.Method, req.URL)

	for key, values := range req.Header {
		if key == "Authorization" {
			_, _ = fmt.Fprintf(t.Output, "    %s: %s\n", key, redactBearer(values[0]))
		} else {
			_, _ = fmt.Fprintf(t.Output, "    %s: %s\n", key, strings.Join(values, ", "))
		}
	}

	resp, err := t.Base.RoundTrip(req)

	duration := time.Since(start)

	if err != nil {
		_, _ = fmt.Fprintf(t.Output, "<-- ERROR: %v (%s)\n\n", err, duration)
		return resp, err
	}

	_, _ = fmt.Fprintf(t.Output, "<-- %d %s (%s)\n", resp.StatusCode, resp.Status, duration)

	for key, values := range resp.Header {
		_, _ = fmt.Fprintf(t.Output, "    %s: %s\n", key, strings.Join(values, ", "))
	}

	if resp.Body != nil {
		bodyBytes, err := io.ReadAll(resp.Body)
		if err != nil {
			_, _ = fmt.Fprintf(t.Output, "    [ERROR reading response body: %v]\n\n", err)
		} else {
			resp.Body = io.NopCloser(bytes.NewReader(bodyBytes)) // Restore body for caller
			if len(bodyBytes) > 0 {
				bodyStr := string(bodyBytes)
				if len(bodyStr) > 1000 {
					bodyStr = bodyStr[:1000] + "... [truncated]"
				}
				_, _ = fmt.Fprintf(t.Output, "    Body: %s\n", bodyStr)
			}
		}
	}

	_, _ = fmt.Fprintln(t.Output)

	return resp, err
}

// redactBearer hides all but the last 4 characters of a bearer token.
func redactBearer(val string) string {
	if !strings.HasPrefix(val, "Bearer ") {
		return val
	}
	token := val[7:]
	if len(token) <= 10 {
		return val
	}
	return "Bearer ..." + token[len(token)-4:]
}
