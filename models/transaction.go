package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Transaction is a single income or expense entry. Date is the day the
// transaction is attributed to, which can differ from CreatedAt.
type Transaction struct {
	ID                 bson.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID             string        `bson:"userId" json:"userId"`
	Amount             float64       `bson:"amount" json:"amount"`
	Description        string        `bson:"description" json:"description"`
	Category           string        `bson:"category" json:"category"`
	IsIncome           bool          `bson:"isIncome" json:"isIncome"`
	IsRecurring        bool          `bson:"isRecurring" json:"isRecurring"`
	RecurringFrequency string        `bson:"recurringFrequency,omitempty" json:"recurringFrequency,omitempty"`
	Date               time.Time     `bson:"date" json:"date"`
	CreatedAt          time.Time     `bson:"createdAt" json:"createdAt"`
}
