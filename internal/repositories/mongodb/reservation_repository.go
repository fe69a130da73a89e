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

var _ repositories.ReservationRepository = (*ReservationRepository)(nil)

// ReservationRepository handles MongoDB operations for Reservation
type ReservationRepository struct {
	collection *mongo.Collection
}

// NewReservationRepository creates a new ReservationRepository
func NewReservationRepository(db *mongo.Database) *ReservationRepository {
	return &ReservationRepository{
		collection: db.Collection("reservations"),
	}
}

// Create inserts a new reservation
func (r *ReservationRepository) Create(ctx context.Context, reservation *models.Reservation) error {
	reservation.ID = primitive.NewObjectID()
	reservation.CreatedAt = time.Now()
	reservation.UpdatedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, reservation)
	return err
}

// FindByID finds a reservation by ID
func (r *ReservationRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Reservation, error) {
	var reservation models.Reservation
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&reservation)
	if err != nil {
		return nil, err
	}
	return &reservation, nil
}

// FindAll retrieves all reservations
func (r *ReservationRepository) FindAll(ctx context.Context) ([]*models.Reservation, error) {
	return r.find(ctx, bson.M{})
}

// FindByUserID retrieves reservations made by a user
func (r *ReservationRepository) FindByUserID(ctx context.Context, userID primitive.ObjectID) ([]*models.Reservation, error) {
	return r.find(ctx, bson.M{"userId": userID})
}

// FindByTripID retrieves reservations referencing a trip
func (r *ReservationRepository) FindByTripID(ctx context.Context, tripID primitive.ObjectID) ([]*models.Reservation, error) {
	return r.find(ctx, bson.M{"tripId": tripID})
}

// FindByEventID retrieves reservations referencing an event
func (r *ReservationRepository) FindByEventID(ctx context.Context, eventID primitive.ObjectID) ([]*models.Reservation, error) {
	return r.find(ctx, bson.M{"eventId": eventID})
}

// FindByStatus retrieves reservations by status
func (r *ReservationRepository) FindByStatus(ctx context.Context, status string) ([]*models.Reservation, error) {
	return r.find(ctx, bson.M{"status": status})
}

// FindByDateRange retrieves reservations created inside [start, end]
func (r *ReservationRepository) FindByDateRange(ctx context.Context, start, end time.Time) ([]*models.Reservation, error) {
	return r.find(ctx, bson.M{"createdAt": bson.M{"$gte": start, "$lte": end}})
}

func (r *ReservationRepository) find(ctx context.Context, filter bson.M) ([]*models.Reservation, error) {
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var reservations []*models.Reservation
	if err = cursor.All(ctx, &reservations); err != nil {
		return nil, err
	}
	if reservations == nil {
		reservations = []*models.Reservation{}
	}
	return reservations, nil
}

// CountByTripID counts reservations referencing a trip
func (r *ReservationRepository) CountByTripID(ctx context.Context, tripID primitive.ObjectID) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"tripId": tripID})
}

// CountByEventID counts reservations referencing an event
func (r *ReservationRepository) CountByEventID(ctx context.Context, eventID primitive.ObjectID) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"eventId": eventID})
}

// Update replaces the mutable fields of an existing reservation
func (r *ReservationRepository) Update(ctx context.Context, reservation *models.Reservation) error {
	reservation.UpdatedAt = time.Now()
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": reservation.ID}, bson.M{"$set": reservation})
	return err
}

// UpdateStatus overwrites the status field. No transition table is enforced.
func (r *ReservationRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) error {
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

// Delete deletes a reservation by ID
func (r *ReservationRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
