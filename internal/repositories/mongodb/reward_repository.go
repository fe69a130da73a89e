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

var _ repositories.RewardRepository = (*RewardRepository)(nil)

// RewardRepository handles MongoDB operations for Reward
type RewardRepository struct {
	collection *mongo.Collection
}

// NewRewardRepository creates a new RewardRepository
func NewRewardRepository(db *mongo.Database) *RewardRepository {
	return &RewardRepository{
		collection: db.Collection("rewards"),
	}
}

// Create inserts a new reward
func (r *RewardRepository) Create(ctx context.Context, reward *models.Reward) error {
	reward.ID = primitive.NewObjectID()
	reward.CreatedAt = time.Now()
	reward.UpdatedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, reward)
	return err
}

// FindByID finds a reward by ID
func (r *RewardRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Reward, error) {
	var reward models.Reward
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&reward)
	if err != nil {
		return nil, err
	}
	return &reward, nil
}

// FindAll retrieves all rewards, cheapest first
func (r *RewardRepository) FindAll(ctx context.Context) ([]*models.Reward, error) {
	opts := options.Find().SetSort(bson.M{"pointsRequired": 1})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rewards []*models.Reward
	if err = cursor.All(ctx, &rewards); err != nil {
		return nil, err
	}
	if rewards == nil {
		rewards = []*models.Reward{}
	}
	return rewards, nil
}

// Update updates an existing reward
func (r *RewardRepository) Update(ctx context.Context, reward *models.Reward) error {
	reward.UpdatedAt = time.Now()
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": reward.ID}, bson.M{"$set": reward})
	return err
}

// Delete deletes a reward by ID
func (r *RewardRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
