package middleware

import "net/http"

// Chain wraps h in the dashboard's middleware stack. Compression is
// outermost so a recovered panic is written through the gzip stream with
// its 500 status intact.
func Chain(h http.Handler) http.Handler {
	return CompressHandler(LoggingMiddleware(RecoveryMiddleware(h)))
}
