package services

import (
	"context"
	"fmt"
	"log"

	"github.com/tripondo/tripondo-backend/internal/models"
	"github.com/tripondo/tripondo-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// EventReservationService handles the event-only booking collection that
// mirrors the unified reservation API
type EventReservationService struct {
	eventReservationRepo repositories.EventReservationRepository
	eventRepo            repositories.EventRepository
	userRepo             repositories.UserRepository
	notifications        *NotificationService
}

// NewEventReservationService creates a new EventReservationService
func NewEventReservationService(
	eventReservationRepo repositories.EventReservationRepository,
	eventRepo repositories.EventRepository,
	userRepo repositories.UserRepository,
	notifications *NotificationService,
) *EventReservationService {
	return &EventReservationService{
		eventReservationRepo: eventReservationRepo,
		eventRepo:            eventRepo,
		userRepo:             userRepo,
		notifications:        notifications,
	}
}

// CreateEventReservation validates the booking, persists it as pending,
// awards points and sends the confirmation email
func (s *EventReservationService) CreateEventReservation(ctx context.Context, reservation *models.EventReservation) (*models.EventReservation, error) {
	if reservation.EventID.IsZero() {
		return nil, fmt.Errorf("%w: eventId is required", ErrInvalidInput)
	}
	if reservation.NumberOfPeople < 1 {
		return nil, fmt.Errorf("%w: numberOfPeople must be at least 1", ErrInvalidInput)
	}
	if !models.ValidPaymentMethod(reservation.PaymentMethod) {
		return nil, fmt.Errorf("%w: unknown payment method %q", ErrInvalidInput, reservation.PaymentMethod)
	}

	user, err := s.userRepo.FindByID(ctx, reservation.UserID)
	if err != nil {
		return nil, translate(err)
	}
	event, err := s.eventRepo.FindByID(ctx, reservation.EventID)
	if err != nil {
		return nil, translate(err)
	}

	reservation.TotalPrice = event.Price * float64(reservation.NumberOfPeople)
	reservation.Status = models.ReservationPending
	if err := s.eventReservationRepo.Create(ctx, reservation); err != nil {
		return nil, err
	}

	if err := s.userRepo.IncrementPoints(ctx, user.ID, models.EventReservationPoints); err != nil {
		log.Printf("failed to award %d points to user %s: %v", models.EventReservationPoints, user.ID.Hex(), err)
	}

	go func() {
		if err := s.notifications.SendEventReservationConfirmation(user, event, reservation.NumberOfPeople, reservation.TotalPrice); err != nil {
			log.Printf("failed to send reservation email to %s: %v", user.Email, err)
		}
	}()

	reservation.Event = event
	reservation.User = user
	return reservation, nil
}

// GetEventReservationByID retrieves a reservation with its event and user
// populated
func (s *EventReservationService) GetEventReservationByID(ctx context.Context, id primitive.ObjectID) (*models.EventReservation, error) {
	reservation, err := s.eventReservationRepo.FindByID(ctx, id)
	if err != nil {
		return nil, translate(err)
	}
	s.populate(ctx, reservation)
	return reservation, nil
}

// GetAllEventReservations retrieves all event reservations, populated
func (s *EventReservationService) GetAllEventReservations(ctx context.Context) ([]*models.EventReservation, error) {
	reservations, err := s.eventReservationRepo.FindAll(ctx)
	return s.populated(ctx, reservations, err)
}

// GetEventReservationsByUser retrieves a user's event reservations
func (s *EventReservationService) GetEventReservationsByUser(ctx context.Context, userID primitive.ObjectID) ([]*models.EventReservation, error) {
	reservations, err := s.eventReservationRepo.FindByUserID(ctx, userID)
	return s.populated(ctx, reservations, err)
}

// GetEventReservationsByEvent retrieves reservations for an event
func (s *EventReservationService) GetEventReservationsByEvent(ctx context.Context, eventID primitive.ObjectID) ([]*models.EventReservation, error) {
	reservations, err := s.eventReservationRepo.FindByEventID(ctx, eventID)
	return s.populated(ctx, reservations, err)
}

// GetEventReservationsByStatus retrieves event reservations in a status
func (s *EventReservationService) GetEventReservationsByStatus(ctx context.Context, status string) ([]*models.EventReservation, error) {
	reservations, err := s.eventReservationRepo.FindByStatus(ctx, status)
	return s.populated(ctx, reservations, err)
}

// UpdateEventReservation updates the mutable booking fields
func (s *EventReservationService) UpdateEventReservation(ctx context.Context, id primitive.ObjectID, updated *models.EventReservation) (*models.EventReservation, error) {
	reservation, err := s.eventReservationRepo.FindByID(ctx, id)
	if err != nil {
		return nil, translate(err)
	}

	if updated.NumberOfPeople > 0 {
		reservation.NumberOfPeople = updated.NumberOfPeople
	}
	if updated.Notes != "" {
		reservation.Notes = updated.Notes
	}
	if updated.PaymentMethod != "" {
		if !models.ValidPaymentMethod(updated.PaymentMethod) {
			return nil, fmt.Errorf("%w: unknown payment method %q", ErrInvalidInput, updated.PaymentMethod)
		}
		reservation.PaymentMethod = updated.PaymentMethod
	}
	if updated.TotalPrice > 0 {
		reservation.TotalPrice = updated.TotalPrice
	}

	if err := s.eventReservationRepo.Update(ctx, reservation); err != nil {
		return nil, err
	}
	s.populate(ctx, reservation)
	return reservation, nil
}

// UpdateEventReservationStatus overwrites the reservation status
func (s *EventReservationService) UpdateEventReservationStatus(ctx context.Context, id primitive.ObjectID, status string) error {
	switch status {
	case models.ReservationPending, models.ReservationConfirmed, models.ReservationCancelled:
	default:
		return fmt.Errorf("%w: unknown status %q", ErrInvalidInput, status)
	}
	return translate(s.eventReservationRepo.UpdateStatus(ctx, id, status))
}

// DeleteEventReservation deletes an event reservation by ID
func (s *EventReservationService) DeleteEventReservation(ctx context.Context, id primitive.ObjectID) error {
	if _, err := s.eventReservationRepo.FindByID(ctx, id); err != nil {
		return translate(err)
	}
	return s.eventReservationRepo.Delete(ctx, id)
}

func (s *EventReservationService) populated(ctx context.Context, reservations []*models.EventReservation, err error) ([]*models.EventReservation, error) {
	if err != nil {
		return nil, err
	}
	for _, r := range reservations {
		s.populate(ctx, r)
	}
	return reservations, nil
}

func (s *EventReservationService) populate(ctx context.Context, r *models.EventReservation) {
	if event, err := s.eventRepo.FindByID(ctx, r.EventID); err == nil {
		r.Event = event
	}
	if user, err := s.userRepo.FindByID(ctx, r.UserID); err == nil {
		r.User = user
	}
}
