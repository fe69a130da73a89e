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

var _ repositories.EventReservationRepository = (*EventReservationRepository)(nil)

// EventReservationRepository handles MongoDB operations for EventReservation
type EventReservationRepository struct {
	collection *mongo.Collection
}

// NewEventReservationRepository creates a new EventReservationRepository
func NewEventReservationRepository(db *mongo.Database) *EventReservationRepository {
	return &EventReservationRepository{
		collection: db.Collection("eventreservations"),
	}
}

// Create inserts a new event reservation
func (r *EventReservationRepository) Create(ctx context.Context, reservation *models.EventReservation) error {
	reservation.ID = primitive.NewObjectID()
	reservation.CreatedAt = time.Now()
	reservation.UpdatedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, reservation)
	return err
}

// FindByID finds an event reservation by ID
func (r *EventReservationRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.EventReservation, error) {
	var reservation models.EventReservation
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&reservation)
	if err != nil {
		return nil, err
	}
	return &reservation, nil
}

// FindAll retrieves all event reservations
func (r *EventReservationRepository) FindAll(ctx context.Context) ([]*models.EventReservation, error) {
	return r.find(ctx, bson.M{})
}

// FindByUserID retrieves event reservations made by a user
func (r *EventReservationRepository) FindByUserID(ctx context.Context, userID primitive.ObjectID) ([]*models.EventReservation, error) {
	return r.find(ctx, bson.M{"userId": userID})
}

// FindByEventID retrieves reservations referencing an event
func (r *EventReservationRepository) FindByEventID(ctx context.Context, eventID primitive.ObjectID) ([]*models.EventReservation, error) {
	return r.find(ctx, bson.M{"eventId": eventID})
}

// FindByStatus retrieves event reservations by status
func (r *EventReservationRepository) FindByStatus(ctx context.Context, status string) ([]*models.EventReservation, error) {
	return r.find(ctx, bson.M{"status": status})
}

func (r *EventReservationRepository) find(ctx context.Context, filter bson.M) ([]*models.EventReservation, error) {
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var reservations []*models.EventReservation
	if err = cursor.All(ctx, &reservations); err != nil {
		return nil, err
	}
	if reservations == nil {
		reservations = []*models.EventReservation{}
	}
	return reservations, nil
}

// CountByEventID counts reservations referencing an event
func (r *EventReservationRepository) CountByEventID(ctx context.Context, eventID primitive.ObjectID) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"eventId": eventID})
}

// Update replaces the mutable fields of an existing event reservation
func (r *EventReservationRepository) Update(ctx context.Context, reservation *models.EventReservation) error {
	reservation.UpdatedAt = time.Now()
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": reservation.ID}, bson.M{"$set": reservation})
	return err
}

// UpdateStatus overwrites the status field
func (r *EventReservationRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) error {
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

// Delete deletes an event reservation by ID
func (r *EventReservationRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
