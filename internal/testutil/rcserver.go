package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
)

// RCRequest is one call received by a FakeRC.
type RCRequest struct {
	Path string
	Auth string
	Body map[string]interface{}
}

// FakeRC is a stand-in rclone rc daemon. Replies are looked up by endpoint,
// unknown endpoints answer 404 with an rclone style error body.
type FakeRC struct {
	*httptest.Server

	mu       sync.Mutex
	replies  map[string]interface{}
	failures map[string]int
	requests []RCRequest
}

// NewFakeRC starts a fake daemon that is closed when the test ends.
func NewFakeRC(t *testing.T) *FakeRC {
	t.Helper()

	f := &FakeRC{
		replies:  make(map[string]interface{}),
		failures: make(map[string]int),
	}
	f.Server = httptest.NewServer(http.HandlerFunc(f.serve))
	t.Cleanup(f.Close)
	return f
}

// Reply sets the JSON body returned for endpoint (e.g. "core/stats").
func (f *FakeRC) Reply(endpoint string, body interface{}) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.replies[endpoint] = body
}

// Fail makes endpoint answer with the given HTTP status.
func (f *FakeRC) Fail(endpoint string, status int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failures[endpoint] = status
}

// Requests returns a copy of the calls received so far.
func (f *FakeRC) Requests() []RCRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]RCRequest(nil), f.requests...)
}

// LastRequest returns the most recent call, or a zero value.
func (f *FakeRC) LastRequest() RCRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.requests) == 0 {
		return RCRequest{}
	}
	return f.requests[len(f.requests)-1]
}

func (f *FakeRC) serve(w http.ResponseWriter, r *http.Request) {
	endpoint := strings.TrimPrefix(r.URL.Path, "/")

	var body map[string]interface{}
	json.NewDecoder(r.Body).Decode(&body)

	f.mu.Lock()
	f.requests = append(f.requests, RCRequest{Path: endpoint, Auth: r.Header.Get("Authorization"), Body: body})
	status, failing := f.failures[endpoint]
	reply, ok := f.replies[endpoint]
	f.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")

	if failing {
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(map[string]interface{}{"error": "failed", "path": endpoint, "status": status})
		return
	}
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]interface{}{"error": "couldn't find method \"" + endpoint + "\"", "path": endpoint, "status": 404})
		return
	}

	json.NewEncoder(w).Encode(reply)
}
