package middleware

import (
	"context"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/school-backoffice-api/internal/models"
	"github.com/noah-isme/school-backoffice-api/pkg/middleware/requestid"
)

// AuditRecorder persists audit entries.
type AuditRecorder interface {
	Record(ctx context.Context, entry models.AuditLog) error
}

// Audit records successful mutating requests. Recording failures never change the response.
func Audit(recorder AuditRecorder) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		if recorder == nil || !mutating(c.Request.Method) || c.Writer.Status() >= 400 {
			return
		}

		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}
		entry := models.AuditLog{
			Method:     c.Request.Method,
			Path:       c.Request.URL.Path,
			Resource:   resourceOf(path),
			ResourceID: c.Param("id"),
			Status:     c.Writer.Status(),
			IPAddress:  c.ClientIP(),
			UserAgent:  c.GetHeader("User-Agent"),
			RequestID:  requestid.Value(c),
			LatencyMs:  time.Since(start).Milliseconds(),
		}
		if claims := CurrentClaims(c); claims != nil {
			entry.ActorID = claims.UserID
			entry.ActorRole = claims.Role
		}
		_ = recorder.Record(context.WithoutCancel(c.Request.Context()), entry)
	}
}

func mutating(method string) bool {
	switch method {
	case "POST", "PUT", "PATCH", "DELETE":
		return true
	}
	return false
}

// resourceOf returns the first literal segment after the API prefix, e.g. "bank-accounts" for /api/bank-accounts/:id.
func resourceOf(route string) string {
	segments := strings.Split(strings.Trim(route, "/"), "/")
	if len(segments) > 1 {
		return segments[1]
	}
	return segments[0]
}
