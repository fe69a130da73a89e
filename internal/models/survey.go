package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Survey statuses. Published surveys cannot be deleted.
const (
	SurveyDraft     = "draft"
	SurveyPublished = "published"
	SurveyCompleted = "completed"
)

// Survey is a questionnaire with ordered questions
type Survey struct {
	ID                  primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Title               string             `bson:"title" json:"title"`
	Description         string             `bson:"description,omitempty" json:"description,omitempty"`
	Status              string             `bson:"status" json:"status"`
	IsActive            bool               `bson:"isActive" json:"isActive"`
	NumberOfRespondents int                `bson:"numberOfRespondents" json:"numberOfRespondents"`
	CreatedAt           time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt           time.Time          `bson:"updatedAt" json:"updatedAt"`

	Questions []*Question `bson:"-" json:"questions,omitempty"`
}
