package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Reward is a catalog item users redeem loyalty points for
type Reward struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Title          string             `bson:"title" json:"title"`
	Description    string             `bson:"description" json:"description"`
	Image          string             `bson:"image" json:"image"`
	Category       string             `bson:"category" json:"category"`
	PointsRequired int                `bson:"pointsRequired" json:"pointsRequired"`
	IsActive       bool               `bson:"isActive" json:"isActive"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt" json:"updatedAt"`
}
