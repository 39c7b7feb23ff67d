package testutil

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/eruixma/one-click-campaign/internal/api"
	"github.com/eruixma/one-click-campaign/internal/audit"
)

// RecordingAuditor captures audit events synchronously for assertions.
type RecordingAuditor struct {
	mu     sync.Mutex
	events []audit.Event
}

func (a *RecordingAuditor) Log(e audit.Event) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.events = append(a.events, e)
}

// Events returns a copy of the captured events.
func (a *RecordingAuditor) Events() []audit.Event {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]audit.Event, len(a.events))
	copy(out, a.events)
	return out
}

// NewTestServer creates an API server backed by a recording auditor.
func NewTestServer(t *testing.T, apiKey string) (*api.Server, *RecordingAuditor) {
	t.Helper()
	auditor := &RecordingAuditor{}
	return api.NewServer(apiKey, auditor), auditor
}

// HTTPRequest is a helper for making test HTTP requests.
type HTTPRequest struct {
	Method  string
	Path    string
	Body    string
	Headers map[string]string
}

// Do executes the HTTP request and returns the response recorder.
func (r *HTTPRequest) Do(t *testing.T, handler http.Handler) *httptest.ResponseRecorder {
	t.Helper()
	var body io.Reader
	if r.Body != "" {
		body = bytes.NewBufferString(r.Body)
	}
	req := httptest.NewRequest(r.Method, r.Path, body)
	if r.Body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range r.Headers {
		req.Header.Set(k, v)
	}
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	return rr
}
