package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
)

// CORS allows any origin and reflects whatever request headers a preflight
// asks for. The API carries no cookies or credentials.
func CORS() func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{RequestIDHeader},
		MaxAge:         300,
	})
}
