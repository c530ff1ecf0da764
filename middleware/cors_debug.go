package middleware

import (
	"net/http"

	"legislators_dashboard/logger"
)

// CORSDebugMiddleware logs cross-origin requests and the headers sent back.
// It only observes; rs/cors answers preflights.
func CORSDebugMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin == "" {
			next.ServeHTTP(w, r)
			return
		}

		logger.Logger.Debugw("[CORS Debug] request",
			"origin", origin,
			"method", r.Method,
			"preflight", r.Method == http.MethodOptions,
			"headers", r.Header,
		)

		next.ServeHTTP(w, r)

		logger.Logger.Debugw("[CORS Debug] response", "headers", w.Header())
	})
}
