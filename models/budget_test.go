package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummarizeBudgets(t *testing.T) {
	budgets := []Budget{
		{Category: "food", Limit: 200, CurrentSpent: 50},
		{Category: "rent", Limit: 300, CurrentSpent: 300},
	}

	summary := SummarizeBudgets(budgets)

	assert.Equal(t, 500.0, summary.TotalBudget)
	assert.Equal(t, 350.0, summary.TotalSpent)
	assert.Equal(t, 150.0, summary.Remaining)
	assert.Equal(t, 70.0, summary.PercentUsed)
	assert.Equal(t, "ok", summary.Status)

	if assert.Len(t, summary.Categories, 2) {
		food := summary.Categories[0]
		assert.Equal(t, "food", food.Category)
		assert.Equal(t, 25.0, food.PercentUsed)
		assert.Equal(t, 150.0, food.Remaining)
		assert.Equal(t, "ok", food.Status)

		rent := summary.Categories[1]
		assert.Equal(t, 100.0, rent.PercentUsed)
		assert.Equal(t, 0.0, rent.Remaining)
		assert.Equal(t, "critical", rent.Status)
	}
}

func TestSummarizeBudgetsEmpty(t *testing.T) {
	summary := SummarizeBudgets(nil)

	assert.Equal(t, 0.0, summary.TotalBudget)
	assert.Equal(t, 0.0, summary.TotalSpent)
	assert.Equal(t, 0.0, summary.Remaining)
	assert.Equal(t, 0.0, summary.PercentUsed)
	assert.Equal(t, "ok", summary.Status)
	assert.Empty(t, summary.Categories)
}

func TestSummarizeBudgetsZeroLimit(t *testing.T) {
	// Lazily created budgets start with a zero limit; percentage must not fault.
	summary := SummarizeBudgets([]Budget{{Category: "misc", Limit: 0, CurrentSpent: 40}})

	assert.Equal(t, 0.0, summary.Categories[0].PercentUsed)
	assert.Equal(t, -40.0, summary.Categories[0].Remaining)
}

func TestSpendStatus(t *testing.T) {
	cases := []struct {
		percent float64
		want    string
	}{
		{0, "ok"},
		{70, "ok"},
		{75, "ok"},
		{75.1, "warning"},
		{90, "warning"},
		{90.1, "critical"},
		{120, "critical"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, SpendStatus(tc.percent), "percent=%v", tc.percent)
	}
}

func TestValidPeriod(t *testing.T) {
	for _, p := range []string{PeriodDaily, PeriodWeekly, PeriodMonthly, PeriodYearly} {
		assert.True(t, ValidPeriod(p), p)
	}
	assert.False(t, ValidPeriod("quarterly"))
	assert.False(t, ValidPeriod(""))
}
