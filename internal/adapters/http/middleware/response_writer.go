// Package middleware provides HTTP middleware for the inbound request pipeline.
//
// The middleware chain processes requests in this order:
//
//	Recovery → RequestID → OpenTelemetry → Logging → Handler
//
// Each middleware is a func(http.Handler) http.Handler and is registered on
// the chi router with Use.
package middleware

import "net/http"

// statusRecorder records the status and body size of a response. Recovery,
// OpenTelemetry and Logging share one recorder per request.
type statusRecorder struct {
	http.ResponseWriter
	status int
	bytes  int64
}

// recordStatus wraps w, or returns w itself when an outer middleware already
// wrapped it.
func recordStatus(w http.ResponseWriter) *statusRecorder {
	if rec, ok := w.(*statusRecorder); ok {
		return rec
	}
	return &statusRecorder{ResponseWriter: w}
}

// Status reports the committed status, or 200 when the handler wrote nothing.
func (rec *statusRecorder) Status() int {
	if rec.status == 0 {
		return http.StatusOK
	}
	return rec.status
}

// Committed reports whether the status line has been sent.
func (rec *statusRecorder) Committed() bool {
	return rec.status != 0
}

// WriteHeader keeps the first status and drops the rest.
func (rec *statusRecorder) WriteHeader(code int) {
	if rec.Committed() {
		return
	}
	rec.status = code
	rec.ResponseWriter.WriteHeader(code)
}

func (rec *statusRecorder) Write(b []byte) (int, error) {
	if !rec.Committed() {
		rec.status = http.StatusOK
	}
	n, err := rec.ResponseWriter.Write(b)
	rec.bytes += int64(n)
	return n, err
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (rec *statusRecorder) Unwrap() http.ResponseWriter {
	return rec.ResponseWriter
}
