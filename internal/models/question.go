package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Question types.
const (
	QuestionShortText      = "short-text"
	QuestionLongText       = "long-text"
	QuestionMultipleChoice = "multiple-choice"
	QuestionCheckbox       = "checkbox"
	QuestionDropdown       = "dropdown"
	QuestionLinearScale    = "linear-scale"
	QuestionDate           = "date"
	QuestionTime           = "time"
)

// QuestionTypes lists every recognised question type.
var QuestionTypes = []string{
	QuestionShortText,
	QuestionLongText,
	QuestionMultipleChoice,
	QuestionCheckbox,
	QuestionDropdown,
	QuestionLinearScale,
	QuestionDate,
	QuestionTime,
}

// Question belongs to a survey and carries an explicit display order
type Question struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	SurveyID  primitive.ObjectID `bson:"surveyId" json:"surveyId"`
	Text      string             `bson:"text" json:"text"`
	Type      string             `bson:"type" json:"type"`
	Options   []string           `bson:"options" json:"options"`
	Order     int                `bson:"order" json:"order"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// QuestionOrder pairs a question ID with its new display order.
type QuestionOrder struct {
	ID    primitive.ObjectID `json:"_id"`
	Order int                `json:"order"`
}

// QuestionTypeRequiresOptions reports whether a question type is choice-style
// and must carry a non-empty options list.
func QuestionTypeRequiresOptions(t string) bool {
	switch t {
	case QuestionMultipleChoice, QuestionCheckbox, QuestionDropdown, QuestionLinearScale:
		return true
	}
	return false
}

// ValidQuestionType reports whether t is a recognised question type.
func ValidQuestionType(t string) bool {
	for _, qt := range QuestionTypes {
		if qt == t {
			return true
		}
	}
	return false
}
