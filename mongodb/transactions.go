package mongodb

import (
	"context"

	"github.com/Raj-Aarav/FinWise/apierr"
	"github.com/Raj-Aarav/FinWise/models"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// CreateTransaction inserts a new transaction and fills in its assigned ID.
func (s *Store) CreateTransaction(ctx context.Context, tx *models.Transaction) error {
	tx.ID = bson.NewObjectID()
	if _, err := s.transactions.InsertOne(ctx, tx); err != nil {
		return apierr.Upstream("failed to create transaction", err)
	}
	return nil
}

// ListTransactions returns a user's transactions, newest first by the date
// they are attributed to.
func (s *Store) ListTransactions(ctx context.Context, userID string) ([]models.Transaction, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cursor, err := s.transactions.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, apierr.Upstream("failed to fetch transactions", err)
	}
	defer cursor.Close(ctx)

	transactions := []models.Transaction{}
	if err := cursor.All(ctx, &transactions); err != nil {
		return nil, apierr.Upstream("failed to decode transactions", err)
	}
	return transactions, nil
}

// GetTransaction fetches a transaction by ID so ownership can be checked
// before a mutation.
func (s *Store) GetTransaction(ctx context.Context, id string) (*models.Transaction, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, apierr.NotFound("transaction not found")
	}

	var tx models.Transaction
	if err := s.transactions.FindOne(ctx, bson.M{"_id": oid}).Decode(&tx); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apierr.NotFound("transaction not found")
		}
		return nil, apierr.Upstream("failed to fetch transaction", err)
	}
	return &tx, nil
}

// DeleteTransaction removes a transaction by ID.
func (s *Store) DeleteTransaction(ctx context.Context, id string) error {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return apierr.NotFound("transaction not found")
	}

	result, err := s.transactions.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return apierr.Upstream("failed to delete transaction", err)
	}
	if result.DeletedCount == 0 {
		return apierr.NotFound("transaction not found")
	}
	return nil
}
