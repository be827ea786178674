package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDKey is where the request ID lives in the gin context.
const RequestIDKey = "request_id"

// RequestID tags every request with an ID for log correlation, reusing the
// client's X-Request-ID when present.
func RequestID(c *gin.Context) {
	id := c.GetHeader("X-Request-ID")
	if id == "" {
		id = uuid.NewString()
	}
	c.Set(RequestIDKey, id)
	c.Writer.Header().Set("X-Request-ID", id)
	c.Next()
}
