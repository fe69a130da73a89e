package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Claimed reward statuses.
const (
	ClaimClaimed = "claimed"
	ClaimUsed    = "used"
	ClaimExpired = "expired"
)

// ClaimValidity is how long a claimed reward stays redeemable.
const ClaimValidity = 7 * 24 * time.Hour

// ClaimedReward records a user redeeming points for a reward
type ClaimedReward struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	RewardID       primitive.ObjectID `bson:"rewardId" json:"rewardId"`
	UserID         primitive.ObjectID `bson:"userId" json:"userId"`
	Status         string             `bson:"status" json:"status"`
	ExpirationDate time.Time          `bson:"expirationDate" json:"expirationDate"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt" json:"updatedAt"`

	Reward *Reward `bson:"-" json:"reward,omitempty"`
	User   *User   `bson:"-" json:"user,omitempty"`
}
