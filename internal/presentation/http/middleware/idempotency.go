package middleware

import (
	"bytes"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/noid254/qaribu-api/internal/domain/entity"
	"github.com/noid254/qaribu-api/internal/domain/repository"
)

const (
	// IdempotencyKeyHeader is the HTTP header for idempotency keys
	IdempotencyKeyHeader = "Idempotency-Key"
	// IdempotencyKeyTTL is how long keys are valid
	IdempotencyKeyTTL = 24 * time.Hour
)

// IdempotencyConfig holds configuration for the idempotency middleware
type IdempotencyConfig struct {
	Repo repository.IdempotencyRepository
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

// Idempotency replays the stored response when a write request carries a key
// it has seen before. Requests without a key pass through untouched.
func Idempotency(config IdempotencyConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != "POST" && c.Request.Method != "PUT" && c.Request.Method != "PATCH" {
			c.Next()
			return
		}

		key := c.GetHeader(IdempotencyKeyHeader)
		if key == "" {
			c.Next()
			return
		}

		userID, ok := contextUserID(c)
		if !ok {
			c.Next()
			return
		}

		existing, err := config.Repo.GetByKey(c.Request.Context(), key, userID)
		if err != nil {
			c.Next()
			return
		}
		if existing != nil && !existing.IsExpired() {
			c.Header("X-Idempotency-Replayed", "true")
			c.Data(existing.ResponseCode, "application/json", []byte(existing.ResponseBody))
			c.Abort()
			return
		}

		blw := &responseWriter{body: bytes.NewBufferString(""), ResponseWriter: c.Writer}
		c.Writer = blw

		c.Next()

		_ = config.Repo.Create(c.Request.Context(), &entity.IdempotencyKey{
			Key:          key,
			UserID:       userID,
			Endpoint:     c.Request.Method + " " + c.FullPath(),
			ResponseCode: c.Writer.Status(),
			ResponseBody: blw.body.String(),
			ExpiresAt:    time.Now().Add(IdempotencyKeyTTL),
		})
	}
}

// IdempotencyRequired rejects POST requests that do not carry a key. Finalize
// and check-in submission sit behind this so a retried tap cannot produce two
// documents or two access requests.
func IdempotencyRequired(config IdempotencyConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != "POST" {
			c.Next()
			return
		}

		key := c.GetHeader(IdempotencyKeyHeader)
		if key == "" {
			c.JSON(400, gin.H{
				"success": false,
				"message": "Idempotency-Key header is required for this request",
			})
			c.Abort()
			return
		}

		userID, ok := contextUserID(c)
		if !ok {
			c.JSON(401, gin.H{
				"success": false,
				"message": "User not authenticated",
			})
			c.Abort()
			return
		}

		existing, err := config.Repo.GetByKey(c.Request.Context(), key, userID)
		if err != nil {
			c.JSON(500, gin.H{
				"success": false,
				"message": "Failed to check idempotency key",
			})
			c.Abort()
			return
		}
		if existing != nil && !existing.IsExpired() {
			c.Header("X-Idempotency-Replayed", "true")
			c.Data(existing.ResponseCode, "application/json", []byte(existing.ResponseBody))
			c.Abort()
			return
		}

		blw := &responseWriter{body: bytes.NewBufferString(""), ResponseWriter: c.Writer}
		c.Writer = blw

		c.Next()

		// only successful responses are worth replaying
		if c.Writer.Status() >= 200 && c.Writer.Status() < 300 {
			_ = config.Repo.Create(c.Request.Context(), &entity.IdempotencyKey{
				Key:          key,
				UserID:       userID,
				Endpoint:     c.Request.Method + " " + c.FullPath(),
				ResponseCode: c.Writer.Status(),
				ResponseBody: blw.body.String(),
				ExpiresAt:    time.Now().Add(IdempotencyKeyTTL),
			})
		}
	}
}

// contextUserID pulls the authenticated user id set by AuthMiddleware
func contextUserID(c *gin.Context) (uuid.UUID, bool) {
	value, exists := c.Get("user_id")
	if !exists {
		return uuid.Nil, false
	}
	userID, ok := value.(uuid.UUID)
	return userID, ok
}
