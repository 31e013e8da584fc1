// Package testutil provides testing utilities for fac-cli.
package testutil

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
)

// MockServer provides a test HTTP server that mimics the Airtable API.
type MockServer struct {
	server   *httptest.Server
	handlers map[string]http.HandlerFunc
	mu       sync.RWMutex
}

// NewMockServer creates a new mock server.
func NewMockServer() *MockServer {
	ms := &MockServer{
		handlers: make(map[string]http.HandlerFunc),
	}

	ms.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.Method + " " + r.URL.Path

		ms.mu.RLock()
		handler, ok := ms.handlers[key]
		ms.mu.RUnlock()

		if ok {
			handler(w, r)
			return
		}

		http.NotFound(w, r)
	}))

	return ms
}

// URL returns the server's base URL.
func (ms *MockServer) URL() string {
	return ms.server.URL
}

// Close shuts down the server.
func (ms *MockServer) Close() {
	ms.server.Close()
}

// Handle registers a custom handler for a method+path.
func (ms *MockServer) Handle(method, path string, handler http.HandlerFunc) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.handlers[method+" "+path] = handler
}

// HandleJSON registers a handler that returns JSON with the given status.
func (ms *MockServer) HandleJSON(method, path string, status int, response interface{}) {
	ms.Handle(method, path, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(response)
	})
}

// HandleRecords registers a view endpoint returning an Airtable records
// envelope built from the given field mappings.
func (ms *MockServer) HandleRecords(path string, fields ...map[string]interface{}) {
	records := make([]map[string]interface{}, 0, len(fields))
	for i, f := range fields {
		records = append(records, map[string]interface{}{
			"id":     fmt.Sprintf("rec%08d", i),
			"fields": f,
		})
	}
	ms.HandleJSON(http.MethodGet, path, http.StatusOK, map[string]interface{}{
		"records": records,
	})
}

// HandleError registers a handler that returns an Airtable API error body.
func (ms *MockServer) HandleError(method, path string, status int, errType, message string) {
	ms.HandleJSON(method, path, status, map[string]interface{}{
		"error": map[string]interface{}{
			"type":    errType,
			"message": message,
		},
	})
}

// HandleRateLimit registers a 429 response with Retry-After header.
func (ms *MockServer) HandleRateLimit(method, path string, retryAfter int) {
	ms.Handle(method, path, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Retry-After", fmt.Sprintf("%d", retryAfter))
		w.WriteHeader(http.StatusTooManyRequests)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"error": map[string]interface{}{
				"type":    "RATE_LIMIT_REACHED",
				"message": "Rate limited",
			},
		})
	})
}

// Reset clears all registered handlers.
func (ms *MockServer) Reset() {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.handlers = make(map[string]http.HandlerFunc)
}
