package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
)

var testTime = time.Date(2026, 3, 9, 8, 30, 0, 0, time.UTC)

// entryRequest builds a request for /api/v1/entries/{segment}, where segment
// is the escaped path segment as sent on the wire, and fills the route param
// from RawPath or Path the way chi's mux does.
func entryRequest(method, segment string, body io.Reader) *http.Request {
	r := httptest.NewRequest(method, "/api/v1/entries/"+segment, body)

	routed := r.URL.Path
	if r.URL.RawPath != "" {
		routed = r.URL.RawPath
	}

	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("key", strings.TrimPrefix(routed, "/api/v1/entries/"))
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(v); err != nil {
		t.Fatalf("encode JSON body: %v", err)
	}
	return buf
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var result T
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("decode JSON response: %v; body = %s", err, rec.Body.String())
	}
	return result
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Fatalf("status = %d, want %d; body = %s", rec.Code, want, rec.Body.String())
	}
}
