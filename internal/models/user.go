package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TravelPreferences recognised by the platform. Stored verbatim on the user.
var TravelPreferences = []string{
	"Beach destinations",
	"Cultural tours",
	"Adventure travel",
	"Nature escapes",
	"City breaks",
	"Luxury travel",
	"Budget travel",
	"Wellness retreats",
	"Family vacations",
}

// User represents a registered traveller
type User struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name              string             `bson:"name" json:"name"`
	Lastname          string             `bson:"lastname" json:"lastname"`
	Email             string             `bson:"email" json:"email"`
	Password          string             `bson:"password" json:"-"`
	ProfileImage      string             `bson:"profileImage,omitempty" json:"profileImage,omitempty"`
	Location          string             `bson:"location,omitempty" json:"location,omitempty"`
	TravelPreferences []string           `bson:"travelPreferences" json:"travelPreferences"`
	Points            int                `bson:"points" json:"points"`
	IsActive          bool               `bson:"isActive" json:"isActive"`
	ResetCode         string             `bson:"resetPasswordCode,omitempty" json:"-"`
	ResetCodeExpires  time.Time          `bson:"resetPasswordCodeExpires,omitempty" json:"-"`
	CreatedAt         time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt         time.Time          `bson:"updatedAt" json:"updatedAt"`
}
