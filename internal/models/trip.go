package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Trip represents a bookable trip in the catalog
type Trip struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Destination string             `bson:"destination" json:"destination"`
	Description string             `bson:"description" json:"description"`
	Price       float64            `bson:"price" json:"price"`
	Reduction   int                `bson:"reduction" json:"reduction"` // percentage, 0-100
	DebutDate   time.Time          `bson:"debutDate" json:"debutDate"`
	EndDate     time.Time          `bson:"endDate" json:"endDate"`
	Image       string             `bson:"image" json:"image"`
	TripType    string             `bson:"tripType,omitempty" json:"tripType,omitempty"`
	IsActive    bool               `bson:"isActive" json:"isActive"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// EffectivePrice returns the price after the percentage reduction is applied.
func (t *Trip) EffectivePrice() float64 {
	if t.Reduction <= 0 {
		return t.Price
	}
	return t.Price * (1 - float64(t.Reduction)/100)
}
