package services

import (
	"context"
	"fmt"

	"github.com/tripondo/tripondo-backend/internal/models"
	"github.com/tripondo/tripondo-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// EventService handles the event catalog
type EventService struct {
	eventRepo            repositories.EventRepository
	reservationRepo      repositories.ReservationRepository
	eventReservationRepo repositories.EventReservationRepository
}

// NewEventService creates a new EventService
func NewEventService(eventRepo repositories.EventRepository, reservationRepo repositories.ReservationRepository, eventReservationRepo repositories.EventReservationRepository) *EventService {
	return &EventService{
		eventRepo:            eventRepo,
		reservationRepo:      reservationRepo,
		eventReservationRepo: eventReservationRepo,
	}
}

// CreateEvent validates and creates an event
func (s *EventService) CreateEvent(ctx context.Context, event *models.Event) error {
	if event.Title == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if event.Price < 0 {
		return fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}
	event.IsActive = true
	return s.eventRepo.Create(ctx, event)
}

// GetEventByID retrieves an event by ID
func (s *EventService) GetEventByID(ctx context.Context, id primitive.ObjectID) (*models.Event, error) {
	event, err := s.eventRepo.FindByID(ctx, id)
	if err != nil {
		return nil, translate(err)
	}
	return event, nil
}

// GetAllEvents retrieves all events
func (s *EventService) GetAllEvents(ctx context.Context) ([]*models.Event, error) {
	return s.eventRepo.FindAll(ctx)
}

// GetActiveEvents retrieves only active events
func (s *EventService) GetActiveEvents(ctx context.Context) ([]*models.Event, error) {
	return s.eventRepo.FindActive(ctx)
}

// UpdateEvent updates an existing event
func (s *EventService) UpdateEvent(ctx context.Context, id primitive.ObjectID, updated *models.Event) (*models.Event, error) {
	event, err := s.eventRepo.FindByID(ctx, id)
	if err != nil {
		return nil, translate(err)
	}

	if updated.Title != "" {
		event.Title = updated.Title
	}
	if updated.Description != "" {
		event.Description = updated.Description
	}
	if updated.Image != "" {
		event.Image = updated.Image
	}
	if updated.Location != "" {
		event.Location = updated.Location
	}
	if !updated.Date.IsZero() {
		event.Date = updated.Date
	}
	if updated.Time != "" {
		event.Time = updated.Time
	}
	if updated.Price > 0 {
		event.Price = updated.Price
	}

	if err := s.eventRepo.Update(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

// ToggleEventStatus flips the event's active flag
func (s *EventService) ToggleEventStatus(ctx context.Context, id primitive.ObjectID) (*models.Event, error) {
	event, err := s.eventRepo.FindByID(ctx, id)
	if err != nil {
		return nil, translate(err)
	}
	event.IsActive = !event.IsActive
	if err := s.eventRepo.Update(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

// DeleteEvent deletes an event unless reservations in either collection
// still reference it
func (s *EventService) DeleteEvent(ctx context.Context, id primitive.ObjectID) error {
	if _, err := s.eventRepo.FindByID(ctx, id); err != nil {
		return translate(err)
	}
	count, err := s.reservationRepo.CountByEventID(ctx, id)
	if err != nil {
		return err
	}
	if count == 0 {
		count, err = s.eventReservationRepo.CountByEventID(ctx, id)
		if err != nil {
			return err
		}
	}
	if count > 0 {
		return ErrHasReservations
	}
	return s.eventRepo.Delete(ctx, id)
}
