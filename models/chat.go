package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Chat message senders.
const (
	SenderUser      = "user"
	SenderAssistant = "ai"
)

// ChatMessage is one turn in the assistant conversation.
type ChatMessage struct {
	ID        bson.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    string        `bson:"userId" json:"userId"`
	Message   string        `bson:"message" json:"message"`
	Type      string        `bson:"type" json:"type"`
	Timestamp time.Time     `bson:"timestamp" json:"timestamp"`
}

// Tip is a stored piece of generated savings advice.
type Tip struct {
	ID        bson.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    string        `bson:"userId" json:"userId"`
	Content   string        `bson:"content" json:"content"`
	CreatedAt time.Time     `bson:"createdAt" json:"createdAt"`
}
