package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Comment is embedded in a community post
type Comment struct {
	UserID    primitive.ObjectID `bson:"userId" json:"userId"`
	Text      string             `bson:"text" json:"text"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

// CommunityPost is a feed entry with at least one of text/image present
type CommunityPost struct {
	ID        primitive.ObjectID   `bson:"_id,omitempty" json:"id,omitempty"`
	UserID    primitive.ObjectID   `bson:"userId" json:"userId"`
	Text      string               `bson:"text,omitempty" json:"text,omitempty"`
	Image     string               `bson:"image,omitempty" json:"image,omitempty"`
	Likes     []primitive.ObjectID `bson:"likes" json:"likes"`
	Comments  []Comment            `bson:"comments" json:"comments"`
	CreatedAt time.Time            `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time            `bson:"updatedAt" json:"updatedAt"`

	User *User `bson:"-" json:"user,omitempty"`
}
