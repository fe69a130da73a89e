package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Response is a single user's answer to a question. At most one response
// exists per (questionId, userId) pair.
type Response struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	QuestionID primitive.ObjectID `bson:"questionId" json:"questionId"`
	UserID     primitive.ObjectID `bson:"userId" json:"userId"`
	Value      string             `bson:"value" json:"value"`
	AnsweredAt time.Time          `bson:"answeredAt" json:"answeredAt"`
}
