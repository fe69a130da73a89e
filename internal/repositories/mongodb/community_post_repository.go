package mongodb

import (
	"context"
	"time"

	"github.com/tripondo/tripondo-backend/internal/models"
	"github.com/tripondo/tripondo-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var _ repositories.CommunityPostRepository = (*CommunityPostRepository)(nil)

// CommunityPostRepository handles MongoDB operations for CommunityPost
type CommunityPostRepository struct {
	collection *mongo.Collection
}

// NewCommunityPostRepository creates a new CommunityPostRepository
func NewCommunityPostRepository(db *mongo.Database) *CommunityPostRepository {
	return &CommunityPostRepository{
		collection: db.Collection("communityposts"),
	}
}

// Create inserts a new post
func (r *CommunityPostRepository) Create(ctx context.Context, post *models.CommunityPost) error {
	post.ID = primitive.NewObjectID()
	post.CreatedAt = time.Now()
	post.UpdatedAt = time.Now()
	if post.Likes == nil {
		post.Likes = []primitive.ObjectID{}
	}
	if post.Comments == nil {
		post.Comments = []models.Comment{}
	}
	_, err := r.collection.InsertOne(ctx, post)
	return err
}

// FindByID finds a post by ID
func (r *CommunityPostRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.CommunityPost, error) {
	var post models.CommunityPost
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&post)
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// FindAll retrieves all posts, newest first
func (r *CommunityPostRepository) FindAll(ctx context.Context) ([]*models.CommunityPost, error) {
	opts := options.Find().SetSort(bson.M{"createdAt": -1})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var posts []*models.CommunityPost
	if err = cursor.All(ctx, &posts); err != nil {
		return nil, err
	}
	if posts == nil {
		posts = []*models.CommunityPost{}
	}
	return posts, nil
}

// AddLike records a like. $addToSet keeps the like list duplicate-free.
func (r *CommunityPostRepository) AddLike(ctx context.Context, postID, userID primitive.ObjectID) error {
	update := bson.M{
		"$addToSet": bson.M{"likes": userID},
		"$set":      bson.M{"updatedAt": time.Now()},
	}
	return r.updateOne(ctx, postID, update)
}

// RemoveLike withdraws a like
func (r *CommunityPostRepository) RemoveLike(ctx context.Context, postID, userID primitive.ObjectID) error {
	update := bson.M{
		"$pull": bson.M{"likes": userID},
		"$set":  bson.M{"updatedAt": time.Now()},
	}
	return r.updateOne(ctx, postID, update)
}

// AddComment appends a comment to the post
func (r *CommunityPostRepository) AddComment(ctx context.Context, postID primitive.ObjectID, comment models.Comment) error {
	update := bson.M{
		"$push": bson.M{"comments": comment},
		"$set":  bson.M{"updatedAt": time.Now()},
	}
	return r.updateOne(ctx, postID, update)
}

func (r *CommunityPostRepository) updateOne(ctx context.Context, id primitive.ObjectID, update bson.M) error {
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// Delete deletes a post by ID
func (r *CommunityPostRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
