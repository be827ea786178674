package mongodb

import (
	"context"
	"time"

	"github.com/Raj-Aarav/FinWise/apierr"
	"github.com/Raj-Aarav/FinWise/models"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// CreateBudget inserts a new budget document and fills in its assigned ID.
func (s *Store) CreateBudget(ctx context.Context, budget *models.Budget) error {
	budget.ID = bson.NewObjectID()
	if _, err := s.budgets.InsertOne(ctx, budget); err != nil {
		return apierr.Upstream("failed to create budget", err)
	}
	return nil
}

// ListBudgets returns a user's budgets, newest first.
func (s *Store) ListBudgets(ctx context.Context, userID string) ([]models.Budget, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := s.budgets.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, apierr.Upstream("failed to fetch budgets", err)
	}
	defer cursor.Close(ctx)

	budgets := []models.Budget{}
	if err := cursor.All(ctx, &budgets); err != nil {
		return nil, apierr.Upstream("failed to decode budgets", err)
	}
	return budgets, nil
}

// AddSpend atomically increments the spend accumulator for the user's
// budget in the given category. The upsert lazily creates the budget with a
// zero limit when no budget exists for the category yet, so the spend is
// never dropped; the increment itself is a single document operation and
// safe under concurrent transaction writes.
func (s *Store) AddSpend(ctx context.Context, userID, category string, amount float64, now time.Time) error {
	filter := bson.M{"userId": userID, "category": category}
	update := bson.M{
		"$inc": bson.M{"currentSpent": amount},
		"$set": bson.M{"updatedAt": now},
		"$setOnInsert": bson.M{
			"limit":     0.0,
			"period":    models.PeriodMonthly,
			"createdAt": now,
		},
	}

	opts := options.UpdateOne().SetUpsert(true)
	if _, err := s.budgets.UpdateOne(ctx, filter, update, opts); err != nil {
		return apierr.Upstream("failed to record spend", err)
	}
	return nil
}
