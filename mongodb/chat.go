package mongodb

import (
	"context"

	"github.com/Raj-Aarav/FinWise/apierr"
	"github.com/Raj-Aarav/FinWise/models"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// InsertChatMessage stores one conversation turn and fills in its ID.
func (s *Store) InsertChatMessage(ctx context.Context, msg *models.ChatMessage) error {
	msg.ID = bson.NewObjectID()
	if _, err := s.chat.InsertOne(ctx, msg); err != nil {
		return apierr.Upstream("failed to store chat message", err)
	}
	return nil
}

// ListChatMessages returns a user's most recent messages, newest first.
func (s *Store) ListChatMessages(ctx context.Context, userID string, limit int64) ([]models.ChatMessage, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(limit)
	cursor, err := s.chat.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, apierr.Upstream("failed to fetch chat history", err)
	}
	defer cursor.Close(ctx)

	messages := []models.ChatMessage{}
	if err := cursor.All(ctx, &messages); err != nil {
		return nil, apierr.Upstream("failed to decode chat history", err)
	}
	return messages, nil
}

// InsertTip stores a generated savings tip and fills in its ID.
func (s *Store) InsertTip(ctx context.Context, tip *models.Tip) error {
	tip.ID = bson.NewObjectID()
	if _, err := s.tips.InsertOne(ctx, tip); err != nil {
		return apierr.Upstream("failed to store tip", err)
	}
	return nil
}

// ListTips returns a user's most recent tips, newest first.
func (s *Store) ListTips(ctx context.Context, userID string, limit int64) ([]models.Tip, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(limit)
	cursor, err := s.tips.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, apierr.Upstream("failed to fetch tips", err)
	}
	defer cursor.Close(ctx)

	tips := []models.Tip{}
	if err := cursor.All(ctx, &tips); err != nil {
		return nil, apierr.Upstream("failed to decode tips", err)
	}
	return tips, nil
}
