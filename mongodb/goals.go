package mongodb

import (
	"context"
	"time"

	"github.com/Raj-Aarav/FinWise/apierr"
	"github.com/Raj-Aarav/FinWise/models"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// CreateGoal inserts a new goal document and fills in its assigned ID.
func (s *Store) CreateGoal(ctx context.Context, goal *models.Goal) error {
	goal.ID = bson.NewObjectID()
	if _, err := s.goals.InsertOne(ctx, goal); err != nil {
		return apierr.Upstream("failed to create goal", err)
	}
	return nil
}

// GetGoal fetches a goal by ID. A malformed or unknown ID is NotFound.
func (s *Store) GetGoal(ctx context.Context, id string) (*models.Goal, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, apierr.NotFound("goal not found")
	}

	var goal models.Goal
	if err := s.goals.FindOne(ctx, bson.M{"_id": oid}).Decode(&goal); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apierr.NotFound("goal not found")
		}
		return nil, apierr.Upstream("failed to fetch goal", err)
	}
	return &goal, nil
}

// ListGoals returns a user's goals, newest first. Status narrows to
// completed or ongoing goals; category narrows to one category.
func (s *Store) ListGoals(ctx context.Context, userID, status, category string) ([]models.Goal, error) {
	filter := bson.M{"userId": userID}
	switch status {
	case "completed":
		filter["isCompleted"] = true
	case "ongoing":
		filter["isCompleted"] = false
	}
	if category != "" {
		filter["category"] = category
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := s.goals.Find(ctx, filter, opts)
	if err != nil {
		return nil, apierr.Upstream("failed to fetch goals", err)
	}
	defer cursor.Close(ctx)

	goals := []models.Goal{}
	if err := cursor.All(ctx, &goals); err != nil {
		return nil, apierr.Upstream("failed to decode goals", err)
	}
	return goals, nil
}

// AddToGoal applies one contribution as a single atomic document update:
// the pipeline adds the amount, derives isCompleted from the post-increment
// value and stamps updatedAt, so concurrent contributions never lose an
// update. Returns the updated goal.
func (s *Store) AddToGoal(ctx context.Context, id string, amount float64, now time.Time) (*models.Goal, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, apierr.NotFound("goal not found")
	}

	pipeline := mongo.Pipeline{
		{{Key: "$set", Value: bson.M{
			"currentAmount": bson.M{"$add": bson.A{"$currentAmount", amount}},
			"updatedAt":     now,
		}}},
		{{Key: "$set", Value: bson.M{
			"isCompleted": bson.M{"$gte": bson.A{"$currentAmount", "$targetAmount"}},
		}}},
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var goal models.Goal
	if err := s.goals.FindOneAndUpdate(ctx, bson.M{"_id": oid}, pipeline, opts).Decode(&goal); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apierr.NotFound("goal not found")
		}
		return nil, apierr.Upstream("failed to update goal progress", err)
	}
	return &goal, nil
}

// DeleteGoal removes a goal by ID.
func (s *Store) DeleteGoal(ctx context.Context, id string) error {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return apierr.NotFound("goal not found")
	}

	result, err := s.goals.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return apierr.Upstream("failed to delete goal", err)
	}
	if result.DeletedCount == 0 {
		return apierr.NotFound("goal not found")
	}
	return nil
}
