package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestApplyContribution(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name          string
		target        float64
		current       float64
		amount        float64
		wantCurrent   float64
		wantCompleted bool
	}{
		{"partial progress", 100, 0, 30, 30, false},
		{"reaches target exactly", 100, 80, 20, 100, true},
		{"overshoot stays completed", 100, 0, 150, 150, true},
		{"already completed stays completed", 100, 120, 5, 125, true},
		{"tiny amount", 100, 99.5, 0.25, 99.75, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := Goal{TargetAmount: tc.target, CurrentAmount: tc.current}
			g.IsCompleted = g.CurrentAmount >= g.TargetAmount

			g.ApplyContribution(tc.amount, now)

			assert.Equal(t, tc.wantCurrent, g.CurrentAmount)
			assert.Equal(t, tc.wantCompleted, g.IsCompleted)
			assert.Equal(t, tc.target, g.TargetAmount, "target must never change")
			assert.Equal(t, now, g.UpdatedAt)
		})
	}
}

func TestApplyContributionIncreasesByExactAmount(t *testing.T) {
	g := Goal{TargetAmount: 500, CurrentAmount: 42.5}
	before := g.CurrentAmount

	g.ApplyContribution(17.25, time.Now())

	assert.Equal(t, before+17.25, g.CurrentAmount)
}

func TestComputeGoalStats(t *testing.T) {
	goals := []Goal{
		{TargetAmount: 100, CurrentAmount: 100, IsCompleted: true, Category: "travel"},
		{TargetAmount: 200, CurrentAmount: 50, IsCompleted: false, Category: "travel"},
		{TargetAmount: 300, CurrentAmount: 0, IsCompleted: false, Category: "emergency"},
	}

	stats := ComputeGoalStats(goals)

	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 1, stats.Completed)
	assert.Equal(t, 2, stats.Ongoing)
	assert.Equal(t, 600.0, stats.TotalTargetAmount)
	assert.Equal(t, 150.0, stats.TotalSavedAmount)
	assert.Equal(t, map[string]int{"travel": 2, "emergency": 1}, stats.CategoryCount)
}

func TestComputeGoalStatsEmpty(t *testing.T) {
	stats := ComputeGoalStats(nil)

	assert.Equal(t, 0, stats.Total)
	assert.Equal(t, 0.0, stats.TotalTargetAmount)
	assert.NotNil(t, stats.CategoryCount)
}
