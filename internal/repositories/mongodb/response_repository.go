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

var _ repositories.ResponseRepository = (*ResponseRepository)(nil)

// ResponseRepository handles MongoDB operations for Response
type ResponseRepository struct {
	collection *mongo.Collection
}

// NewResponseRepository creates a new ResponseRepository
func NewResponseRepository(db *mongo.Database) *ResponseRepository {
	return &ResponseRepository{
		collection: db.Collection("responses"),
	}
}

// Create inserts a new response
func (r *ResponseRepository) Create(ctx context.Context, response *models.Response) error {
	response.ID = primitive.NewObjectID()
	response.AnsweredAt = time.Now()
	_, err := r.collection.InsertOne(ctx, response)
	return err
}

// FindByID finds a response by ID
func (r *ResponseRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Response, error) {
	var response models.Response
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&response)
	if err != nil {
		return nil, err
	}
	return &response, nil
}

// FindAll retrieves all responses
func (r *ResponseRepository) FindAll(ctx context.Context) ([]*models.Response, error) {
	return r.find(ctx, bson.M{})
}

// FindByQuestionID retrieves all responses to a question
func (r *ResponseRepository) FindByQuestionID(ctx context.Context, questionID primitive.ObjectID) ([]*models.Response, error) {
	return r.find(ctx, bson.M{"questionId": questionID})
}

// FindByUserID retrieves all responses submitted by a user
func (r *ResponseRepository) FindByUserID(ctx context.Context, userID primitive.ObjectID) ([]*models.Response, error) {
	return r.find(ctx, bson.M{"userId": userID})
}

// FindByQuestionAndUser finds the unique response for a (question, user) pair
func (r *ResponseRepository) FindByQuestionAndUser(ctx context.Context, questionID, userID primitive.ObjectID) (*models.Response, error) {
	var response models.Response
	err := r.collection.FindOne(ctx, bson.M{"questionId": questionID, "userId": userID}).Decode(&response)
	if err != nil {
		return nil, err
	}
	return &response, nil
}

func (r *ResponseRepository) find(ctx context.Context, filter bson.M) ([]*models.Response, error) {
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var responses []*models.Response
	if err = cursor.All(ctx, &responses); err != nil {
		return nil, err
	}
	if responses == nil {
		responses = []*models.Response{}
	}
	return responses, nil
}

// Update updates an existing response value
func (r *ResponseRepository) Update(ctx context.Context, response *models.Response) error {
	response.AnsweredAt = time.Now()
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": response.ID}, bson.M{"$set": response})
	return err
}

// Delete deletes a response by ID
func (r *ResponseRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
