package handlers

import (
	"net/http"
	"time"

	"github.com/Raj-Aarav/FinWise/apierr"
	"github.com/Raj-Aarav/FinWise/models"
	"github.com/gin-gonic/gin"
)

type createBudgetRequest struct {
	Category string  `json:"category" binding:"required"`
	Amount   float64 `json:"amount" binding:"required,gt=0"`
	Period   string  `json:"period" binding:"required"`
}

// CreateBudget sets a spending limit for a category and period.
func (h *Handler) CreateBudget(c *gin.Context) {
	claims, ok := currentUser(c)
	if !ok {
		return
	}

	var req createBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apierr.InvalidArgument("category, a positive amount and a period are required"))
		return
	}
	if !models.ValidPeriod(req.Period) {
		respondError(c, apierr.InvalidArgument("period must be one of daily, weekly, monthly, yearly"))
		return
	}

	now := time.Now().UTC()
	budget := &models.Budget{
		UserID:       claims.UserID(),
		Category:     req.Category,
		Limit:        req.Amount,
		Period:       req.Period,
		CurrentSpent: 0,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	ctx, cancel := h.opContext(c)
	defer cancel()
	if err := h.store.CreateBudget(ctx, budget); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, budget)
}

// ListBudgets returns the caller's budgets, newest first.
func (h *Handler) ListBudgets(c *gin.Context) {
	claims, ok := currentUser(c)
	if !ok {
		return
	}

	ctx, cancel := h.opContext(c)
	defer cancel()
	budgets, err := h.store.ListBudgets(ctx, claims.UserID())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, budgets)
}

// BudgetSummary returns the aggregate spend-vs-limit view across all of the
// caller's budgets, with the advisory status classification per category.
func (h *Handler) BudgetSummary(c *gin.Context) {
	claims, ok := currentUser(c)
	if !ok {
		return
	}

	ctx, cancel := h.opContext(c)
	defer cancel()
	budgets, err := h.store.ListBudgets(ctx, claims.UserID())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.SummarizeBudgets(budgets))
}
