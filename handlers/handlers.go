package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/Raj-Aarav/FinWise/apierr"
	"github.com/Raj-Aarav/FinWise/config"
	"github.com/Raj-Aarav/FinWise/llm"
	"github.com/Raj-Aarav/FinWise/logger"
	"github.com/Raj-Aarav/FinWise/middleware"
	"github.com/Raj-Aarav/FinWise/models"
	"github.com/Raj-Aarav/FinWise/mongodb"
	"github.com/Raj-Aarav/FinWise/sse"
	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler carries the collaborators every route needs: the document store,
// the completion service and the event broker. All are injected by main.
type Handler struct {
	store     *mongodb.Store
	completer llm.Completer
	events    *sse.Broker
	jwtSecret string
	jwtIssuer string
	timeout   time.Duration
}

func New(store *mongodb.Store, completer llm.Completer, events *sse.Broker, cfg *config.Config) *Handler {
	return &Handler{
		store:     store,
		completer: completer,
		events:    events,
		jwtSecret: cfg.JWTSecret,
		jwtIssuer: cfg.JWTIssuer,
		timeout:   cfg.RequestTimeout,
	}
}

// opContext bounds one request's external calls so a stalled collaborator
// surfaces as an error instead of a hung handler.
func (h *Handler) opContext(c *gin.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request.Context(), h.timeout)
}

// currentUser pulls the verified claims the auth middleware stored. A
// missing or mistyped value means the route was wired without the
// middleware, which is treated as unauthenticated.
func currentUser(c *gin.Context) (*models.Claims, bool) {
	user, exists := c.Get(middleware.ContextUserKey)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return nil, false
	}

	claims, ok := user.(*models.Claims)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return nil, false
	}
	return claims, true
}

// respondError maps any failure onto the error taxonomy, returns the stable
// client message and logs the internal detail.
func respondError(c *gin.Context, err error) {
	apiErr := apierr.From(err)

	fields := []zap.Field{
		zap.String("code", apiErr.Code),
		zap.String("path", c.FullPath()),
		zap.String("request_id", c.GetString(middleware.RequestIDKey)),
		zap.Error(err),
	}
	if apiErr.StatusCode >= 500 {
		logger.Get().Error("request failed", fields...)
		sentry.CaptureException(err)
	} else {
		logger.Get().Warn("request rejected", fields...)
	}

	c.JSON(apiErr.StatusCode, gin.H{"error": apiErr.Message})
}

// Health reports liveness. Unauthenticated by design.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
