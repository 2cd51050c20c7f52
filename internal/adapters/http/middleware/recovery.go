package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/jsamuelsen11/undoable/internal/adapters/http/dto"
)

// errInternalServer is what clients see for a recovered panic; the panic
// value and stack only go to the log.
var errInternalServer = errors.New("internal server error")

// Recovery returns middleware that turns a handler panic into an RFC 9457 500
// response and an error log line carrying the stack. Nothing is written when
// the handler already sent headers. A panic with http.ErrAbortHandler is
// re-raised so net/http can abort the connection quietly.
//
// Recovery runs outside RequestID, so it reads the request ID back from the
// response header.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rec := recordStatus(w)

			defer func() {
				v := recover()
				if v == nil {
					return
				}
				if err, ok := v.(error); ok && errors.Is(err, http.ErrAbortHandler) {
					panic(v)
				}

				logger.ErrorContext(r.Context(), "panic recovered",
					slog.String("panic", fmt.Sprint(v)),
					slog.String("stack", string(debug.Stack())),
					slog.String("request_id", rec.Header().Get(headerRequestID)),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
				)

				if !rec.Committed() {
					dto.WriteErrorResponse(rec, r, errInternalServer)
				}
			}()

			next.ServeHTTP(rec, r)
		})
	}
}
