package middleware

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
	"github.com/sangkips/medrep-crm/internal/config"
)

var (
	defaultOrigins = []string{"http://localhost:5173", "http://localhost:3000", "http://127.0.0.1:5173"}
	defaultMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	defaultHeaders = []string{"Accept", "Authorization", "Content-Type", "X-Request-ID", "Origin"}
)

// CORSMiddleware creates a CORS middleware with the provided configuration.
// Empty lists fall back to the local frontend defaults.
func CORSMiddleware(cfg *config.CORSConfig) gin.HandlerFunc {
	headers := orDefault(cfg.AllowedHeaders, defaultHeaders)
	if !lo.Contains(headers, IdempotencyKeyHeader) {
		headers = append(headers, IdempotencyKeyHeader)
	}

	return cors.New(cors.Config{
		AllowOrigins: orDefault(cfg.AllowedOrigins, defaultOrigins),
		AllowMethods: orDefault(cfg.AllowedMethods, defaultMethods),
		AllowHeaders: headers,
		// downloads read the filename from Content-Disposition
		ExposeHeaders:    []string{"Content-Length", "Content-Type", "Content-Disposition", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	})
}

func orDefault(values, fallback []string) []string {
	values = lo.Compact(values)
	if len(values) == 0 {
		return append([]string(nil), fallback...)
	}
	return values
}
