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

var _ repositories.TripRepository = (*TripRepository)(nil)

// TripRepository handles MongoDB operations for Trip
type TripRepository struct {
	collection *mongo.Collection
}

// NewTripRepository creates a new TripRepository
func NewTripRepository(db *mongo.Database) *TripRepository {
	return &TripRepository{
		collection: db.Collection("trips"),
	}
}

// Create inserts a new trip
func (r *TripRepository) Create(ctx context.Context, trip *models.Trip) error {
	trip.ID = primitive.NewObjectID()
	trip.CreatedAt = time.Now()
	trip.UpdatedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, trip)
	return err
}

// FindByID finds a trip by ID
func (r *TripRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Trip, error) {
	var trip models.Trip
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&trip)
	if err != nil {
		return nil, err
	}
	return &trip, nil
}

// FindAll retrieves all trips
func (r *TripRepository) FindAll(ctx context.Context) ([]*models.Trip, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var trips []*models.Trip
	if err = cursor.All(ctx, &trips); err != nil {
		return nil, err
	}
	if trips == nil {
		trips = []*models.Trip{}
	}
	return trips, nil
}

// Update updates an existing trip
func (r *TripRepository) Update(ctx context.Context, trip *models.Trip) error {
	trip.UpdatedAt = time.Now()
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": trip.ID}, bson.M{"$set": trip})
	return err
}

// Delete deletes a trip by ID
func (r *TripRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
