package middleware

import (
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/noid254/qaribu-api/internal/config"
)

// CORSMiddleware builds the CORS policy from config, falling back to local
// development defaults when a list is left empty. Idempotency-Key is always
// allowed since the finalize and order endpoints expect it.
func CORSMiddleware(cfg *config.CORSConfig) gin.HandlerFunc {
	origins := cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"http://localhost:3000", "http://127.0.0.1:3000"}
	}

	methods := cfg.AllowedMethods
	if len(methods) == 0 {
		methods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	}

	headers := cfg.AllowedHeaders
	if len(headers) == 0 {
		headers = []string{"Accept", "Authorization", "Content-Type", "Origin", "X-Request-ID"}
	}
	if !slices.Contains(headers, "Idempotency-Key") {
		headers = append(headers, "Idempotency-Key")
	}

	return cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     methods,
		AllowHeaders:     headers,
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID", "X-Idempotency-Replayed"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	})
}
