package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// LoggerMiddleware tags each request with an ID and logs a summary line once
// the handler chain finishes. The ID lands in the response envelope's meta
// and the X-Request-ID header so clients can quote it back.
func LoggerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set("request_id", requestID)
		c.Header("X-Request-ID", requestID)

		start := time.Now()
		c.Next()

		fullPath := c.Request.URL.Path
		if query := c.Request.URL.RawQuery; query != "" {
			fullPath += "?" + query
		}

		log.Printf("request_id=%s method=%s path=%s status=%d duration=%s ip=%s",
			requestID,
			c.Request.Method,
			fullPath,
			c.Writer.Status(),
			time.Since(start).Round(time.Microsecond),
			c.ClientIP(),
		)

		for _, ginErr := range c.Errors {
			log.Printf("request_id=%s error=%q", requestID, ginErr.Err)
		}
	}
}
