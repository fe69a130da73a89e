package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Reservation statuses. Transitions are not enforced; the status field is a
// plain overwrite (see updateReservationStatus).
const (
	ReservationPending   = "pending"
	ReservationConfirmed = "confirmed"
	ReservationCancelled = "cancelled"
)

// Points awarded when a reservation is created. The award fires at creation
// time and is never reversed, even if the reservation is later cancelled.
const (
	TripReservationPoints  = 100
	EventReservationPoints = 80
)

// PaymentMethods accepted on reservations.
var PaymentMethods = []string{"konnect", "paypal", "bank_transfer", "credit_card", "cash", "other"}

// Reservation links a user to a trip or an event. Exactly one of TripID /
// EventID is set.
type Reservation struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	TripID         primitive.ObjectID `bson:"tripId,omitempty" json:"tripId,omitempty"`
	EventID        primitive.ObjectID `bson:"eventId,omitempty" json:"eventId,omitempty"`
	UserID         primitive.ObjectID `bson:"userId" json:"userId"`
	NumberOfPeople int                `bson:"numberOfPeople" json:"numberOfPeople"`
	TotalPrice     float64            `bson:"totalPrice" json:"totalPrice"`
	Notes          string             `bson:"notes,omitempty" json:"notes,omitempty"`
	PaymentMethod  string             `bson:"paymentMethod" json:"paymentMethod"`
	Status         string             `bson:"status" json:"status"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt" json:"updatedAt"`

	// Denormalized for display, populated on reads. Never persisted.
	Trip  *Trip  `bson:"-" json:"trip,omitempty"`
	Event *Event `bson:"-" json:"event,omitempty"`
	User  *User  `bson:"-" json:"user,omitempty"`
}

// ValidPaymentMethod reports whether m is one of the accepted payment methods.
func ValidPaymentMethod(m string) bool {
	for _, pm := range PaymentMethods {
		if pm == m {
			return true
		}
	}
	return false
}
