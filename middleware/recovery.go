package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"legislators_dashboard/logger"
)

var internalErrorBody = []byte(`{"error": "Internal server error", "code": 500}`)

// RecoveryMiddleware turns a panic in a handler into a JSON 500. When the
// handler had already started its response the panic is only logged.
func RecoveryMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tw := &trackingWriter{ResponseWriter: w}
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}
			logger.Logger.Errorw("panic recovered",
				"method", r.Method,
				"path", r.URL.Path,
				"panic", fmt.Sprint(rec),
				"committed", tw.started,
				"stack", string(debug.Stack()),
			)
			if tw.started {
				return
			}

			w.Header().Del("Content-Length")
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusInternalServerError)
			w.Write(internalErrorBody)
		}()
		next.ServeHTTP(tw, r)
	})
}

type trackingWriter struct {
	http.ResponseWriter
	started bool
}

func (t *trackingWriter) WriteHeader(code int) {
	t.started = true
	t.ResponseWriter.WriteHeader(code)
}

func (t *trackingWriter) Write(b []byte) (int, error) {
	t.started = true
	return t.ResponseWriter.Write(b)
}
