package middleware

import (
	"bytes"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/medrep-crm/internal/domain/entity"
	"github.com/sangkips/medrep-crm/internal/domain/repository"
	"go.uber.org/zap"
)

// IdempotencyKeyHeader is the HTTP header for idempotency keys
const IdempotencyKeyHeader = "Idempotency-Key"

// IdempotencyConfig holds configuration for the idempotency middleware
type IdempotencyConfig struct {
	Repo   repository.IdempotencyRepository
	TTL    time.Duration
	Logger *zap.Logger
}

// responseWriter wraps gin.ResponseWriter to capture the response body
type responseWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w responseWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// Idempotency replays the stored response when a request repeats an
// Idempotency-Key the user already sent. Only 2xx responses are stored.
// Requests without the header pass through.
func Idempotency(config IdempotencyConfig) gin.HandlerFunc {
	log := config.Logger
	if log == nil {
		log = zap.NewNop()
	}

	return func(c *gin.Context) {
		if c.Request.Method != "POST" && c.Request.Method != "PUT" && c.Request.Method != "PATCH" {
			c.Next()
			return
		}

		key := c.GetHeader(IdempotencyKeyHeader)
		userID := c.GetString(ContextUserID)
		if key == "" || userID == "" {
			c.Next()
			return
		}

		existing, err := config.Repo.Get(c.Request.Context(), userID, key)
		if err != nil {
			// the request still runs, only without protection
			log.Warn("idempotency lookup failed", zap.String("key", key), zap.Error(err))
			c.Next()
			return
		}

		if existing != nil && !existing.IsExpired() {
			c.Header("X-Idempotency-Replayed", "true")
			c.Data(existing.ResponseCode, "application/json; charset=utf-8", []byte(existing.ResponseBody))
			c.Abort()
			return
		}

		blw := &responseWriter{body: bytes.NewBufferString(""), ResponseWriter: c.Writer}
		c.Writer = blw

		c.Next()

		status := c.Writer.Status()
		if status < 200 || status >= 300 {
			return
		}

		now := time.Now()
		record := &entity.IdempotencyRecord{
			Key:          key,
			UserID:       userID,
			Endpoint:     c.Request.Method + " " + c.FullPath(),
			ResponseCode: status,
			ResponseBody: blw.body.String(),
			CreatedAt:    now,
			ExpiresAt:    now.Add(config.TTL),
		}
		if err := config.Repo.Save(c.Request.Context(), record); err != nil {
			log.Warn("idempotency save failed", zap.String("key", key), zap.Error(err))
		}
	}
}
