// Package testutil provides testing utilities for the football proxy.
package testutil

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
)

// MockUpstreamResponse defines the behavior for a mock API-Football
// endpoint response.
type MockUpstreamResponse struct {
	StatusCode int
	Body       string
}

// MockUpstream is a configurable mock API-Football server for testing.
type MockUpstream struct {
	server   *httptest.Server
	mu       sync.RWMutex
	handlers map[string]func(w http.ResponseWriter, r *http.Request)

	requestCount map[string]int
	lastHeader   http.Header
}

// NewMockUpstream creates a new mock API-Football server.
func NewMockUpstream() *MockUpstream {
	mock := &MockUpstream{
		handlers:     make(map[string]func(w http.ResponseWriter, r *http.Request)),
		requestCount: make(map[string]int),
	}

	mock.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mock.mu.Lock()
		mock.requestCount[r.URL.Path]++
		mock.lastHeader = r.Header.Clone()
		handler, exists := mock.handlers[r.URL.Path]
		mock.mu.Unlock()

		if exists {
			handler(w, r)
			return
		}

		mock.defaultHandler(w)
	}))

	return mock
}

// URL returns the mock server URL.
func (m *MockUpstream) URL() string {
	return m.server.URL
}

// Close shuts down the mock server.
func (m *MockUpstream) Close() {
	m.server.Close()
}

// Reset clears all tracking counters.
func (m *MockUpstream) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requestCount = make(map[string]int)
	m.lastHeader = nil
}

// SetHandler sets a custom handler for a specific path.
func (m *MockUpstream) SetHandler(path string, handler func(w http.ResponseWriter, r *http.Request)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.handlers[path] = handler
}

// SetResponse configures a simple response for a path.
func (m *MockUpstream) SetResponse(path string, resp MockUpstreamResponse) {
	m.SetHandler(path, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(resp.StatusCode)
		if resp.Body != "" {
			w.Write([]byte(resp.Body))
		}
	})
}

// SetEnvelope configures a 200 response wrapping body in the provider's
// `response` envelope with single-page paging.
func (m *MockUpstream) SetEnvelope(path, body string) {
	m.SetResponse(path, MockUpstreamResponse{
		StatusCode: http.StatusOK,
		Body:       fmt.Sprintf(`{"response": %s, "paging": {"current": 1, "total": 1}}`, body),
	})
}

// RequestCount returns the number of requests made to a path.
func (m *MockUpstream) RequestCount(path string) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.requestCount[path]
}

// LastHeader returns the headers of the most recent request.
func (m *MockUpstream) LastHeader() http.Header {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.lastHeader
}

// defaultHandler answers unconfigured paths with an empty envelope.
func (m *MockUpstream) defaultHandler(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"response": [], "paging": {"current": 1, "total": 1}}`))
}
