package handlers

import (
	"net/http"
	"time"

	"github.com/Raj-Aarav/FinWise/models"
	"github.com/gin-gonic/gin"
)

const tipListLimit = 10

// GenerateTip asks the completion service for one savings tip based on the
// caller's current budget usage, stores it and returns it.
func (h *Handler) GenerateTip(c *gin.Context) {
	claims, ok := currentUser(c)
	if !ok {
		return
	}

	prompt, err := h.buildPrompt(c, claims.UserID(),
		"Give one concrete tip to improve this budget next month.")
	if err != nil {
		respondError(c, err)
		return
	}

	ctx, cancel := h.opContext(c)
	defer cancel()

	content, err := h.completer.Complete(ctx, prompt)
	if err != nil {
		respondError(c, err)
		return
	}

	tip := &models.Tip{
		UserID:    claims.UserID(),
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}
	if err := h.store.InsertTip(ctx, tip); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, tip)
}

// ListTips returns the caller's most recent tips, newest first.
func (h *Handler) ListTips(c *gin.Context) {
	claims, ok := currentUser(c)
	if !ok {
		return
	}

	ctx, cancel := h.opContext(c)
	defer cancel()
	tips, err := h.store.ListTips(ctx, claims.UserID(), tipListLimit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tips)
}
