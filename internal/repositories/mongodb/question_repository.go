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

var _ repositories.QuestionRepository = (*QuestionRepository)(nil)

// QuestionRepository handles MongoDB operations for Question
type QuestionRepository struct {
	collection *mongo.Collection
}

// NewQuestionRepository creates a new QuestionRepository
func NewQuestionRepository(db *mongo.Database) *QuestionRepository {
	return &QuestionRepository{
		collection: db.Collection("questions"),
	}
}

// Create inserts a new question
func (r *QuestionRepository) Create(ctx context.Context, question *models.Question) error {
	question.ID = primitive.NewObjectID()
	question.CreatedAt = time.Now()
	question.UpdatedAt = time.Now()
	if question.Options == nil {
		question.Options = []string{}
	}
	_, err := r.collection.InsertOne(ctx, question)
	return err
}

// CreateMany inserts a batch of questions
func (r *QuestionRepository) CreateMany(ctx context.Context, questions []*models.Question) error {
	if len(questions) == 0 {
		return nil
	}
	docs := make([]interface{}, 0, len(questions))
	for _, q := range questions {
		q.ID = primitive.NewObjectID()
		q.CreatedAt = time.Now()
		q.UpdatedAt = time.Now()
		if q.Options == nil {
			q.Options = []string{}
		}
		docs = append(docs, q)
	}
	_, err := r.collection.InsertMany(ctx, docs)
	return err
}

// FindByID finds a question by ID
func (r *QuestionRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Question, error) {
	var question models.Question
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&question)
	if err != nil {
		return nil, err
	}
	return &question, nil
}

// FindBySurveyID retrieves a survey's questions in display order
func (r *QuestionRepository) FindBySurveyID(ctx context.Context, surveyID primitive.ObjectID) ([]*models.Question, error) {
	opts := options.Find().SetSort(bson.M{"order": 1})
	cursor, err := r.collection.Find(ctx, bson.M{"surveyId": surveyID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var questions []*models.Question
	if err = cursor.All(ctx, &questions); err != nil {
		return nil, err
	}
	if questions == nil {
		questions = []*models.Question{}
	}
	return questions, nil
}

// Update updates an existing question
func (r *QuestionRepository) Update(ctx context.Context, question *models.Question) error {
	question.UpdatedAt = time.Now()
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": question.ID}, bson.M{"$set": question})
	return err
}

// Delete deletes a question by ID
func (r *QuestionRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

// DeleteBySurveyID removes every question belonging to a survey
func (r *QuestionRepository) DeleteBySurveyID(ctx context.Context, surveyID primitive.ObjectID) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{"surveyId": surveyID})
	return err
}
