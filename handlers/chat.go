package handlers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/Raj-Aarav/FinWise/apierr"
	"github.com/Raj-Aarav/FinWise/models"
	"github.com/gin-gonic/gin"
)

const chatHistoryLimit = 50

type chatRequest struct {
	Message string `json:"message" binding:"required"`
}

// Chat stores the user's message, asks the completion service for a reply
// grounded in the caller's budget picture, stores the reply and returns
// both turns. The reply is also pushed to any open event stream so other
// tabs see it. The completion runs before anything is written, so a failed
// upstream call leaves no half-recorded conversation.
func (h *Handler) Chat(c *gin.Context) {
	claims, ok := currentUser(c)
	if !ok {
		return
	}

	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apierr.InvalidArgument("message is required"))
		return
	}

	ctx, cancel := h.opContext(c)
	defer cancel()

	prompt, err := h.buildPrompt(c, claims.UserID(), req.Message)
	if err != nil {
		respondError(c, err)
		return
	}

	reply, err := h.completer.Complete(ctx, prompt)
	if err != nil {
		respondError(c, err)
		return
	}

	now := time.Now().UTC()
	userMessage := &models.ChatMessage{
		UserID:    claims.UserID(),
		Message:   req.Message,
		Type:      models.SenderUser,
		Timestamp: now,
	}
	if err := h.store.InsertChatMessage(ctx, userMessage); err != nil {
		respondError(c, err)
		return
	}

	aiMessage := &models.ChatMessage{
		UserID:    claims.UserID(),
		Message:   reply,
		Type:      models.SenderAssistant,
		Timestamp: now,
	}
	if err := h.store.InsertChatMessage(ctx, aiMessage); err != nil {
		respondError(c, err)
		return
	}

	h.events.Publish(claims.UserID(), reply)

	c.JSON(http.StatusOK, gin.H{
		"userMessage": userMessage,
		"aiResponse":  aiMessage,
	})
}

// ChatHistory returns the caller's most recent conversation turns, newest
// first.
func (h *Handler) ChatHistory(c *gin.Context) {
	claims, ok := currentUser(c)
	if !ok {
		return
	}

	ctx, cancel := h.opContext(c)
	defer cancel()
	messages, err := h.store.ListChatMessages(ctx, claims.UserID(), chatHistoryLimit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, messages)
}

// buildPrompt prefixes the user's question with a compact rendering of
// their budgets so the assistant answers against real figures.
func (h *Handler) buildPrompt(c *gin.Context, userID, message string) (string, error) {
	ctx, cancel := h.opContext(c)
	defer cancel()

	budgets, err := h.store.ListBudgets(ctx, userID)
	if err != nil {
		return "", err
	}

	summary := models.SummarizeBudgets(budgets)
	var b strings.Builder
	fmt.Fprintf(&b, "Total budget %.2f, spent %.2f (%.1f%% used).\n",
		summary.TotalBudget, summary.TotalSpent, summary.PercentUsed)
	for _, cat := range summary.Categories {
		fmt.Fprintf(&b, "- %s: %.2f of %.2f (%s)\n",
			cat.Category, cat.Spent, cat.Limit, cat.Status)
	}
	fmt.Fprintf(&b, "\nQuestion: %s", message)
	return b.String(), nil
}
