package handlers

import (
	"math"
	"net/http"
	"time"

	"github.com/Raj-Aarav/FinWise/apierr"
	"github.com/Raj-Aarav/FinWise/models"
	"github.com/gin-gonic/gin"
)

type createGoalRequest struct {
	Name         string     `json:"name" binding:"required"`
	TargetAmount float64    `json:"targetAmount" binding:"required,gt=0"`
	Deadline     *time.Time `json:"deadline"`
	Category     string     `json:"category"`
	Priority     string     `json:"priority"`
}

type contributeRequest struct {
	Amount float64 `json:"amount" binding:"required,gt=0"`
}

// CreateGoal starts a new savings goal at zero progress.
func (h *Handler) CreateGoal(c *gin.Context) {
	claims, ok := currentUser(c)
	if !ok {
		return
	}

	var req createGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apierr.InvalidArgument("name and a positive target amount are required"))
		return
	}
	if req.Category == "" {
		req.Category = "other"
	}
	if req.Priority == "" {
		req.Priority = "medium"
	}

	now := time.Now().UTC()
	goal := &models.Goal{
		UserID:        claims.UserID(),
		Name:          req.Name,
		TargetAmount:  req.TargetAmount,
		CurrentAmount: 0,
		Deadline:      req.Deadline,
		Category:      req.Category,
		Priority:      req.Priority,
		IsCompleted:   false,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	ctx, cancel := h.opContext(c)
	defer cancel()
	if err := h.store.CreateGoal(ctx, goal); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, goal)
}

// ListGoals returns the caller's goals, optionally narrowed by completion
// status (completed/ongoing) and category.
func (h *Handler) ListGoals(c *gin.Context) {
	claims, ok := currentUser(c)
	if !ok {
		return
	}

	ctx, cancel := h.opContext(c)
	defer cancel()
	goals, err := h.store.ListGoals(ctx, claims.UserID(), c.Query("status"), c.Query("category"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, goals)
}

// GoalStats aggregates all of the caller's goals into totals and a
// per-category tally.
func (h *Handler) GoalStats(c *gin.Context) {
	claims, ok := currentUser(c)
	if !ok {
		return
	}

	ctx, cancel := h.opContext(c)
	defer cancel()
	goals, err := h.store.ListGoals(ctx, claims.UserID(), "", "")
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.ComputeGoalStats(goals))
}

// ContributeToGoal adds an amount to a goal's progress. Validation happens
// before any store access; existence is checked before ownership so a
// missing goal is NotFound rather than Forbidden; the increment itself is a
// single atomic document update.
func (h *Handler) ContributeToGoal(c *gin.Context) {
	claims, ok := currentUser(c)
	if !ok {
		return
	}

	var req contributeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apierr.InvalidArgument("amount must be a positive number"))
		return
	}
	if math.IsNaN(req.Amount) || math.IsInf(req.Amount, 0) {
		respondError(c, apierr.InvalidArgument("amount must be a positive number"))
		return
	}

	ctx, cancel := h.opContext(c)
	defer cancel()

	goal, err := h.store.GetGoal(ctx, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	if goal.UserID != claims.UserID() {
		respondError(c, apierr.Forbidden("you do not own this goal"))
		return
	}

	updated, err := h.store.AddToGoal(ctx, c.Param("id"), req.Amount, time.Now().UTC())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteGoal removes a goal after checking the caller owns it.
func (h *Handler) DeleteGoal(c *gin.Context) {
	claims, ok := currentUser(c)
	if !ok {
		return
	}

	ctx, cancel := h.opContext(c)
	defer cancel()

	goal, err := h.store.GetGoal(ctx, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	if goal.UserID != claims.UserID() {
		respondError(c, apierr.Forbidden("you do not own this goal"))
		return
	}

	if err := h.store.DeleteGoal(ctx, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Goal deleted successfully"})
}
