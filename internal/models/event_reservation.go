package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// EventReservation is the event-only booking record kept in its own
// collection, mirroring the unified Reservation API.
type EventReservation struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	EventID        primitive.ObjectID `bson:"eventId" json:"eventId"`
	UserID         primitive.ObjectID `bson:"userId" json:"userId"`
	NumberOfPeople int                `bson:"numberOfPeople" json:"numberOfPeople"`
	TotalPrice     float64            `bson:"totalPrice" json:"totalPrice"`
	Notes          string             `bson:"notes,omitempty" json:"notes,omitempty"`
	PaymentMethod  string             `bson:"paymentMethod" json:"paymentMethod"`
	Status         string             `bson:"status" json:"status"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt" json:"updatedAt"`

	Event *Event `bson:"-" json:"event,omitempty"`
	User  *User  `bson:"-" json:"user,omitempty"`
}
