package testutil

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
)

// Request is one call captured by a Recorder.
type Request struct {
	Method string
	Path   string
	Body   []byte
}

// Recorder captures every request a mock server receives.
type Recorder struct {
	mu       sync.Mutex
	requests []Request
}

func (r *Recorder) Requests() []Request {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Request(nil), r.requests...)
}

// Count returns how many requests matched method and path.
func (r *Recorder) Count(method, path string) int {
	n := 0
	for _, req := range r.Requests() {
		if req.Method == method && req.Path == path {
			n++
		}
	}
	return n
}

// NewMockServer serves handlers keyed by "METHOD /path" (or just "/path" for
// any method). Unmatched requests get 404. Every request is recorded.
func NewMockServer(handlers map[string]http.HandlerFunc) (*httptest.Server, *Recorder) {
	rec := &Recorder{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		rec.mu.Lock()
		rec.requests = append(rec.requests, Request{Method: r.Method, Path: r.URL.Path, Body: body})
		rec.mu.Unlock()

		if h, ok := handlers[r.Method+" "+r.URL.Path]; ok {
			h(w, r)
			return
		}
		if h, ok := handlers[r.URL.Path]; ok {
			h(w, r)
			return
		}
		http.NotFound(w, r)
	}))

	return srv, rec
}

// WithJSONResponse returns a handler writing body as JSON with statusCode.
func WithJSONResponse(statusCode int, body any) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(statusCode)
		if body != nil {
			_ = json.NewEncoder(w).Encode(body)
		}
	}
}

// WithRawResponse writes body verbatim, for malformed payloads.
func WithRawResponse(statusCode int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(statusCode)
		_, _ = io.WriteString(w, body)
	}
}
