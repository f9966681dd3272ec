package middleware

import (
	"github.com/gin-gonic/gin"

	"hearth/internal/logger"
	"hearth/internal/models"
	"hearth/internal/services"
)

const auditAPICallIDKey = "auditAPICallID"

// AuditAPICall records every authenticated request as an AuditAPICall row and
// exposes its id to handlers under "auditAPICallID". The row is completed with
// the response status once the handler chain returns, so errors left on the
// context are written here first. It must run after AuthMiddleware.
func AuditAPICall(audit services.AuditServicer) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString(userIDKey)
		if userID == "" {
			abortUnauthorized(c, "Authentication required")
			return
		}

		call := &models.AuditAPICall{
			UserID:    userID,
			Method:    c.Request.Method,
			Path:      c.FullPath(),
			IPAddress: c.ClientIP(),
			RequestID: c.GetString(requestIDKey),
		}
		if call.Path == "" {
			call.Path = c.Request.URL.Path
		}
		if err := audit.RecordAPICall(c.Request.Context(), call); err != nil {
			respondError(c, err)
			c.Abort()
			return
		}
		c.Set(auditAPICallIDKey, call.ID)

		c.Next()
		flushErrors(c)

		if err := audit.CompleteAPICall(c.Request.Context(), call.ID, c.Writer.Status()); err != nil {
			logger.Get().Warnw("failed to complete audit call",
				"audit_api_call_id", call.ID,
				"error", err.Error(),
			)
		}
	}
}
