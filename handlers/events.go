package handlers

import (
	"io"
	"net/http"

	"github.com/Raj-Aarav/FinWise/logger"
	"github.com/Raj-Aarav/FinWise/middleware"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Events opens a server-sent-events stream for the caller. EventSource
// cannot set an Authorization header, so the token arrives as a query
// parameter and is verified here instead of by the auth middleware.
func (h *Handler) Events(c *gin.Context) {
	tokenString := c.Query("token")
	if tokenString == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing or invalid token"})
		return
	}

	claims, err := middleware.VerifyToken(tokenString, h.jwtSecret, h.jwtIssuer)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
		return
	}

	flusher, ok := c.Writer.(http.Flusher)
	if !ok {
		c.String(http.StatusInternalServerError, "streaming unsupported")
		return
	}

	stream := h.events.Register(claims.UserID())
	defer h.events.Unregister(claims.UserID(), stream)

	logger.Get().Info("event stream opened", zap.String("user_id", claims.UserID()))
	defer logger.Get().Info("event stream closed", zap.String("user_id", claims.UserID()))

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	c.Stream(func(w io.Writer) bool {
		select {
		case msg, ok := <-stream.Messages:
			if !ok {
				return false
			}
			c.Writer.Write([]byte("data: " + msg + "\n\n"))
			flusher.Flush()
			return true
		case <-c.Request.Context().Done():
			return false
		case <-stream.Done:
			return false
		}
	})
}
