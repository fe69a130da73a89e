package services

import (
	"context"
	"fmt"

	"github.com/tripondo/tripondo-backend/internal/models"
	"github.com/tripondo/tripondo-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TripService handles the trip catalog
type TripService struct {
	tripRepo        repositories.TripRepository
	reservationRepo repositories.ReservationRepository
}

// NewTripService creates a new TripService
func NewTripService(tripRepo repositories.TripRepository, reservationRepo repositories.ReservationRepository) *TripService {
	return &TripService{
		tripRepo:        tripRepo,
		reservationRepo: reservationRepo,
	}
}

// CreateTrip validates and creates a trip
func (s *TripService) CreateTrip(ctx context.Context, trip *models.Trip) error {
	if trip.Destination == "" {
		return fmt.Errorf("%w: destination is required", ErrInvalidInput)
	}
	if trip.Price < 0 {
		return fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}
	if trip.Reduction < 0 || trip.Reduction > 100 {
		return fmt.Errorf("%w: reduction must be between 0 and 100", ErrInvalidInput)
	}
	if !trip.EndDate.IsZero() && trip.EndDate.Before(trip.DebutDate) {
		return fmt.Errorf("%w: end date precedes start date", ErrInvalidInput)
	}
	trip.IsActive = true
	return s.tripRepo.Create(ctx, trip)
}

// GetTripByID retrieves a trip by ID
func (s *TripService) GetTripByID(ctx context.Context, id primitive.ObjectID) (*models.Trip, error) {
	trip, err := s.tripRepo.FindByID(ctx, id)
	if err != nil {
		return nil, translate(err)
	}
	return trip, nil
}

// GetAllTrips retrieves all trips
func (s *TripService) GetAllTrips(ctx context.Context) ([]*models.Trip, error) {
	return s.tripRepo.FindAll(ctx)
}

// UpdateTrip updates an existing trip
func (s *TripService) UpdateTrip(ctx context.Context, id primitive.ObjectID, updated *models.Trip) (*models.Trip, error) {
	trip, err := s.tripRepo.FindByID(ctx, id)
	if err != nil {
		return nil, translate(err)
	}

	if updated.Destination != "" {
		trip.Destination = updated.Destination
	}
	if updated.Description != "" {
		trip.Description = updated.Description
	}
	if updated.Price > 0 {
		trip.Price = updated.Price
	}
	if updated.Reduction != 0 {
		if updated.Reduction < 0 || updated.Reduction > 100 {
			return nil, fmt.Errorf("%w: reduction must be between 0 and 100", ErrInvalidInput)
		}
		trip.Reduction = updated.Reduction
	}
	if !updated.DebutDate.IsZero() {
		trip.DebutDate = updated.DebutDate
	}
	if !updated.EndDate.IsZero() {
		trip.EndDate = updated.EndDate
	}
	if updated.Image != "" {
		trip.Image = updated.Image
	}
	if updated.TripType != "" {
		trip.TripType = updated.TripType
	}
	if !trip.EndDate.IsZero() && trip.EndDate.Before(trip.DebutDate) {
		return nil, fmt.Errorf("%w: end date precedes start date", ErrInvalidInput)
	}

	if err := s.tripRepo.Update(ctx, trip); err != nil {
		return nil, err
	}
	return trip, nil
}

// ToggleTripStatus flips the trip's active flag
func (s *TripService) ToggleTripStatus(ctx context.Context, id primitive.ObjectID) (*models.Trip, error) {
	trip, err := s.tripRepo.FindByID(ctx, id)
	if err != nil {
		return nil, translate(err)
	}
	trip.IsActive = !trip.IsActive
	if err := s.tripRepo.Update(ctx, trip); err != nil {
		return nil, err
	}
	return trip, nil
}

// DeleteTrip deletes a trip unless reservations still reference it
func (s *TripService) DeleteTrip(ctx context.Context, id primitive.ObjectID) error {
	if _, err := s.tripRepo.FindByID(ctx, id); err != nil {
		return translate(err)
	}
	count, err := s.reservationRepo.CountByTripID(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrHasReservations
	}
	return s.tripRepo.Delete(ctx, id)
}
