package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"legislators_dashboard/middleware"
)

type RouterOptions struct {
	AllowedOrigins []string
	CORSDebug      bool
}

// NewRouter wires the dashboard routes behind the middleware chain.
func NewRouter(d *Dashboard, opts RouterOptions) http.Handler {
	r := mux.NewRouter()

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: opts.AllowedOrigins,
		AllowedMethods: []string{
			"GET", "PUT", "POST", "OPTIONS",
		},
		AllowedHeaders: []string{
			"Accept",
			"Content-Type",
			"X-Requested-With",
			"Origin",
		},
		ExposedHeaders: []string{
			"Content-Length",
			"Content-Type",
		},
		AllowCredentials: true,
		MaxAge:           86400,
	})

	r.Use(middleware.Chain)
	d.RegisterRoutes(r)

	// preflight requests match no route, so CORS wraps the whole router
	var h http.Handler = corsHandler.Handler(r)
	if opts.CORSDebug {
		h = middleware.CORSDebugMiddleware(h)
	}
	return h
}
