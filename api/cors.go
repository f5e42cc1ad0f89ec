package api

import (
	"net/http"

	"github.com/rs/cors"
)

// corsHandler lets browsers on allowedOrigins call the API with a bearer token.
// An empty list allows any origin.
func corsHandler(allowedOrigins []string) func(http.Handler) http.Handler {
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}
	options := cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{
			http.MethodHead,
			http.MethodGet,
			http.MethodPost,
		},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}
	return cors.New(options).Handler
}
