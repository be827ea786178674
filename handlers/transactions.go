package handlers

import (
	"net/http"
	"time"

	"github.com/Raj-Aarav/FinWise/apierr"
	"github.com/Raj-Aarav/FinWise/logger"
	"github.com/Raj-Aarav/FinWise/models"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type createTransactionRequest struct {
	Amount             float64   `json:"amount" binding:"required,gt=0"`
	Description        string    `json:"description" binding:"required"`
	Category           string    `json:"category" binding:"required"`
	IsIncome           bool      `json:"isIncome"`
	IsRecurring        bool      `json:"isRecurring"`
	RecurringFrequency string    `json:"recurringFrequency"`
	Date               time.Time `json:"date" binding:"required"`
}

// CreateTransaction records an income or expense entry. Expenses also feed
// the budget accumulator for their category; if that increment fails the
// transaction is rolled back so the two never diverge observably.
func (h *Handler) CreateTransaction(c *gin.Context) {
	claims, ok := currentUser(c)
	if !ok {
		return
	}

	var req createTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apierr.InvalidArgument("amount, description, category and date are required, and amount must be positive"))
		return
	}

	now := time.Now().UTC()
	tx := &models.Transaction{
		UserID:             claims.UserID(),
		Amount:             req.Amount,
		Description:        req.Description,
		Category:           req.Category,
		IsIncome:           req.IsIncome,
		IsRecurring:        req.IsRecurring,
		RecurringFrequency: req.RecurringFrequency,
		Date:               req.Date,
		CreatedAt:          now,
	}

	ctx, cancel := h.opContext(c)
	defer cancel()
	if err := h.store.CreateTransaction(ctx, tx); err != nil {
		respondError(c, err)
		return
	}

	// Income never touches a budget.
	if !tx.IsIncome {
		if err := h.store.AddSpend(ctx, claims.UserID(), tx.Category, tx.Amount, now); err != nil {
			if delErr := h.store.DeleteTransaction(ctx, tx.ID.Hex()); delErr != nil {
				logger.Get().Error("failed to roll back transaction after spend update failure",
					zap.String("transaction_id", tx.ID.Hex()),
					zap.Error(delErr))
			}
			respondError(c, err)
			return
		}
	}

	c.JSON(http.StatusCreated, tx)
}

// ListTransactions returns the caller's transactions, newest first.
func (h *Handler) ListTransactions(c *gin.Context) {
	claims, ok := currentUser(c)
	if !ok {
		return
	}

	ctx, cancel := h.opContext(c)
	defer cancel()
	transactions, err := h.store.ListTransactions(ctx, claims.UserID())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, transactions)
}

// DeleteTransaction removes a transaction after checking the caller owns
// it. Existence is checked first so a missing record is NotFound.
func (h *Handler) DeleteTransaction(c *gin.Context) {
	claims, ok := currentUser(c)
	if !ok {
		return
	}

	ctx, cancel := h.opContext(c)
	defer cancel()

	tx, err := h.store.GetTransaction(ctx, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	if tx.UserID != claims.UserID() {
		respondError(c, apierr.Forbidden("you do not own this transaction"))
		return
	}

	if err := h.store.DeleteTransaction(ctx, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
