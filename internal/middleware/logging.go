package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"hearth/internal/logger"
	"hearth/internal/uuid"
)

const requestIDKey = "requestID"

// RequestLogging returns a Gin middleware that logs each request with a request
// ID, method, path, status code, latency and client IP. An incoming X-Request-ID
// is kept when it is a valid UUID.
func RequestLogging() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := c.GetHeader("X-Request-ID")
		if !uuid.IsValid(requestID) {
			requestID = uuid.New()
		}
		c.Set(requestIDKey, requestID)
		c.Writer.Header().Set("X-Request-ID", requestID)

		c.Next()

		fields := []any{
			"request_id", requestID,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency_ms", time.Since(start).Milliseconds(),
			"client_ip", c.ClientIP(),
		}
		if callID := c.GetString(auditAPICallIDKey); callID != "" {
			fields = append(fields, "audit_api_call_id", callID)
		}
		logger.Get().Infow("request", fields...)
	}
}
