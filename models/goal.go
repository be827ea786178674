package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Goal is a savings goal document. TargetAmount is fixed at creation;
// CurrentAmount only ever grows through contributions, and IsCompleted is
// derived from the two rather than set directly.
type Goal struct {
	ID            bson.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID        string        `bson:"userId" json:"userId"`
	Name          string        `bson:"name" json:"name"`
	TargetAmount  float64       `bson:"targetAmount" json:"targetAmount"`
	CurrentAmount float64       `bson:"currentAmount" json:"currentAmount"`
	Deadline      *time.Time    `bson:"deadline,omitempty" json:"deadline"`
	Category      string        `bson:"category" json:"category"`
	Priority      string        `bson:"priority" json:"priority"`
	IsCompleted   bool          `bson:"isCompleted" json:"isCompleted"`
	CreatedAt     time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time     `bson:"updatedAt" json:"updatedAt"`
}

// ApplyContribution adds amount to the goal's progress and re-derives the
// completion flag. Overshoot past the target is allowed and keeps the goal
// completed. The store performs the same transition server-side in a single
// document update; this form exists for the domain rules and their tests.
func (g *Goal) ApplyContribution(amount float64, now time.Time) {
	g.CurrentAmount += amount
	g.IsCompleted = g.CurrentAmount >= g.TargetAmount
	g.UpdatedAt = now
}

// GoalStats is the aggregate view over all of a user's goals.
type GoalStats struct {
	Total             int            `json:"total"`
	Completed         int            `json:"completed"`
	Ongoing           int            `json:"ongoing"`
	TotalTargetAmount float64        `json:"totalTargetAmount"`
	TotalSavedAmount  float64        `json:"totalSavedAmount"`
	CategoryCount     map[string]int `json:"categoryCount"`
}

// ComputeGoalStats folds a user's goals into their stats view.
func ComputeGoalStats(goals []Goal) GoalStats {
	stats := GoalStats{CategoryCount: make(map[string]int)}
	for _, g := range goals {
		stats.Total++
		stats.TotalTargetAmount += g.TargetAmount
		stats.TotalSavedAmount += g.CurrentAmount
		if g.IsCompleted {
			stats.Completed++
		} else {
			stats.Ongoing++
		}
		stats.CategoryCount[g.Category]++
	}
	return stats
}
