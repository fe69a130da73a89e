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

var _ repositories.SurveyRepository = (*SurveyRepository)(nil)

// SurveyRepository handles MongoDB operations for Survey
type SurveyRepository struct {
	collection *mongo.Collection
}

// NewSurveyRepository creates a new SurveyRepository
func NewSurveyRepository(db *mongo.Database) *SurveyRepository {
	return &SurveyRepository{
		collection: db.Collection("surveys"),
	}
}

// Create inserts a new survey
func (r *SurveyRepository) Create(ctx context.Context, survey *models.Survey) error {
	survey.ID = primitive.NewObjectID()
	survey.CreatedAt = time.Now()
	survey.UpdatedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, survey)
	return err
}

// FindByID finds a survey by ID
func (r *SurveyRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Survey, error) {
	var survey models.Survey
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&survey)
	if err != nil {
		return nil, err
	}
	return &survey, nil
}

// FindAll retrieves all surveys
func (r *SurveyRepository) FindAll(ctx context.Context) ([]*models.Survey, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var surveys []*models.Survey
	if err = cursor.All(ctx, &surveys); err != nil {
		return nil, err
	}
	if surveys == nil {
		surveys = []*models.Survey{}
	}
	return surveys, nil
}

// Update updates an existing survey
func (r *SurveyRepository) Update(ctx context.Context, survey *models.Survey) error {
	survey.UpdatedAt = time.Now()
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": survey.ID}, bson.M{"$set": survey})
	return err
}

// UpdateStatus sets the survey lifecycle status
func (r *SurveyRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) error {
	update := bson.M{"$set": bson.M{"status": status, "updatedAt": time.Now()}}
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// Delete deletes a survey by ID
func (r *SurveyRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
