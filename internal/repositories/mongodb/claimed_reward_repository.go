package mongodb

import (
	"context"
	"time"

	"github.com/tripondo/tripondo-backend/internal/models"
	"github.com/tripondo/tripondo-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var _ repositories.ClaimedRewardRepository = (*ClaimedRewardRepository)(nil)

// ClaimedRewardRepository handles MongoDB operations for ClaimedReward
type ClaimedRewardRepository struct {
	collection *mongo.Collection
}

// NewClaimedRewardRepository creates a new ClaimedRewardRepository
func NewClaimedRewardRepository(db *mongo.Database) *ClaimedRewardRepository {
	return &ClaimedRewardRepository{
		collection: db.Collection("claimedrewards"),
	}
}

// Create inserts a new claimed reward
func (r *ClaimedRewardRepository) Create(ctx context.Context, claim *models.ClaimedReward) error {
	claim.ID = primitive.NewObjectID()
	claim.CreatedAt = time.Now()
	claim.UpdatedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, claim)
	return err
}

// FindByID finds a claimed reward by ID
func (r *ClaimedRewardRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.ClaimedReward, error) {
	var claim models.ClaimedReward
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&claim)
	if err != nil {
		return nil, err
	}
	return &claim, nil
}

// FindAll retrieves all claimed rewards
func (r *ClaimedRewardRepository) FindAll(ctx context.Context) ([]*models.ClaimedReward, error) {
	return r.find(ctx, bson.M{})
}

// FindByUserID retrieves claimed rewards belonging to a user
func (r *ClaimedRewardRepository) FindByUserID(ctx context.Context, userID primitive.ObjectID) ([]*models.ClaimedReward, error) {
	return r.find(ctx, bson.M{"userId": userID})
}

func (r *ClaimedRewardRepository) find(ctx context.Context, filter bson.M) ([]*models.ClaimedReward, error) {
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var claims []*models.ClaimedReward
	if err = cursor.All(ctx, &claims); err != nil {
		return nil, err
	}
	if claims == nil {
		claims = []*models.ClaimedReward{}
	}
	return claims, nil
}
