package models

import (
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// Budget periods.
const (
	PeriodDaily   = "daily"
	PeriodWeekly  = "weekly"
	PeriodMonthly = "monthly"
	PeriodYearly  = "yearly"
)

// ValidPeriod reports whether p is a recognized budget period.
func ValidPeriod(p string) bool {
	switch p {
	case PeriodDaily, PeriodWeekly, PeriodMonthly, PeriodYearly:
		return true
	}
	return false
}

// Budget caps one spending category for a period. CurrentSpent is an
// accumulator the store increments atomically as non-income transactions
// land; the limit is advisory and never blocks spending.
type Budget struct {
	ID           bson.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID       string        `bson:"userId" json:"userId"`
	Category     string        `bson:"category" json:"category"`
	Limit        float64       `bson:"limit" json:"limit"`
	Period       string        `bson:"period" json:"period"`
	CurrentSpent float64       `bson:"currentSpent" json:"currentSpent"`
	CreatedAt    time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time     `bson:"updatedAt" json:"updatedAt"`
}

// Spend classification thresholds, in percent of limit used.
const (
	warningThreshold  = 75
	criticalThreshold = 90
)

// CategorySummary is the spend-vs-limit view of one budget.
type CategorySummary struct {
	Category    string  `json:"category"`
	Limit       float64 `json:"limit"`
	Spent       float64 `json:"spent"`
	Remaining   float64 `json:"remaining"`
	PercentUsed float64 `json:"percentUsed"`
	Status      string  `json:"status"`
}

// BudgetSummary aggregates every budget a user has.
type BudgetSummary struct {
	TotalBudget float64           `json:"totalBudget"`
	TotalSpent  float64           `json:"totalSpent"`
	Remaining   float64           `json:"remaining"`
	PercentUsed float64           `json:"percentUsed"`
	Status      string            `json:"status"`
	Categories  []CategorySummary `json:"categories"`
}

// SummarizeBudgets computes totals, remaining amounts and usage percentages.
// The math runs through decimals so percentages come out exact, and a zero
// limit yields 0% used instead of a division fault.
func SummarizeBudgets(budgets []Budget) BudgetSummary {
	totalLimit := decimal.Zero
	totalSpent := decimal.Zero
	categories := make([]CategorySummary, 0, len(budgets))

	for _, b := range budgets {
		limit := decimal.NewFromFloat(b.Limit)
		spent := decimal.NewFromFloat(b.CurrentSpent)
		totalLimit = totalLimit.Add(limit)
		totalSpent = totalSpent.Add(spent)

		pct := percentUsed(spent, limit)
		categories = append(categories, CategorySummary{
			Category:    b.Category,
			Limit:       b.Limit,
			Spent:       b.CurrentSpent,
			Remaining:   limit.Sub(spent).InexactFloat64(),
			PercentUsed: pct,
			Status:      SpendStatus(pct),
		})
	}

	pct := percentUsed(totalSpent, totalLimit)
	return BudgetSummary{
		TotalBudget: totalLimit.InexactFloat64(),
		TotalSpent:  totalSpent.InexactFloat64(),
		Remaining:   totalLimit.Sub(totalSpent).InexactFloat64(),
		PercentUsed: pct,
		Status:      SpendStatus(pct),
		Categories:  categories,
	}
}

// SpendStatus classifies a usage percentage for display: critical above 90,
// warning above 75, ok otherwise. Advisory only.
func SpendStatus(percent float64) string {
	switch {
	case percent > criticalThreshold:
		return "critical"
	case percent > warningThreshold:
		return "warning"
	default:
		return "ok"
	}
}

func percentUsed(spent, limit decimal.Decimal) float64 {
	if limit.IsZero() {
		return 0
	}
	return spent.Div(limit).Mul(decimal.NewFromInt(100)).InexactFloat64()
}
