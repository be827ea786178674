package mongodb

import (
	"context"

	"github.com/Raj-Aarav/FinWise/config"
	"github.com/Raj-Aarav/FinWise/logger"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.uber.org/zap"
)

// Collection names.
const (
	GoalCollection        = "goals"
	BudgetCollection      = "budgets"
	TransactionCollection = "transactions"
	ChatCollection        = "chat_messages"
	TipCollection         = "ai_tips"
)

// Store is the handle to the document store. It is constructed once at
// startup and injected into every component that reads or writes documents;
// main owns its lifecycle.
type Store struct {
	client       *mongo.Client
	goals        *mongo.Collection
	budgets      *mongo.Collection
	transactions *mongo.Collection
	chat         *mongo.Collection
	tips         *mongo.Collection
}

// Connect dials the document store and verifies the connection before
// handing back a Store.
func Connect(ctx context.Context, cfg *config.Config) (*Store, error) {
	serverAPI := options.ServerAPI(options.ServerAPIVersion1)
	opts := options.Client().ApplyURI(cfg.MongoURI).SetServerAPIOptions(serverAPI)

	client, err := mongo.Connect(opts)
	if err != nil {
		return nil, errors.Wrap(err, "connecting to MongoDB")
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, errors.Wrap(err, "pinging MongoDB")
	}

	db := client.Database(cfg.MongoDatabase)
	logger.Get().Info("connected to MongoDB",
		zap.String("database", cfg.MongoDatabase))

	return &Store{
		client:       client,
		goals:        db.Collection(GoalCollection),
		budgets:      db.Collection(BudgetCollection),
		transactions: db.Collection(TransactionCollection),
		chat:         db.Collection(ChatCollection),
		tips:         db.Collection(TipCollection),
	}, nil
}

// Close disconnects from the document store.
func (s *Store) Close(ctx context.Context) {
	if err := s.client.Disconnect(ctx); err != nil {
		logger.Get().Error("failed to disconnect from MongoDB", zap.Error(err))
		return
	}
	logger.Get().Info("disconnected from MongoDB")
}
