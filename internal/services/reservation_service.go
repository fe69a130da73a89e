package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/tripondo/tripondo-backend/internal/models"
	"github.com/tripondo/tripondo-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ReservationService handles the unified trip/event booking flow. Creating a
// reservation awards loyalty points and emails the traveller.
type ReservationService struct {
	reservationRepo repositories.ReservationRepository
	tripRepo        repositories.TripRepository
	eventRepo       repositories.EventRepository
	userRepo        repositories.UserRepository
	notifications   *NotificationService
}

// NewReservationService creates a new ReservationService
func NewReservationService(
	reservationRepo repositories.ReservationRepository,
	tripRepo repositories.TripRepository,
	eventRepo repositories.EventRepository,
	userRepo repositories.UserRepository,
	notifications *NotificationService,
) *ReservationService {
	return &ReservationService{
		reservationRepo: reservationRepo,
		tripRepo:        tripRepo,
		eventRepo:       eventRepo,
		userRepo:        userRepo,
		notifications:   notifications,
	}
}

// CreateReservation validates the booking, persists it as pending, awards
// points and sends the confirmation email. Exactly one of TripID / EventID
// must be set. The points award is atomic and is never reversed, even when
// the reservation is later cancelled.
func (s *ReservationService) CreateReservation(ctx context.Context, reservation *models.Reservation) (*models.Reservation, error) {
	hasTrip := !reservation.TripID.IsZero()
	hasEvent := !reservation.EventID.IsZero()
	if hasTrip == hasEvent {
		return nil, fmt.Errorf("%w: exactly one of tripId and eventId must be set", ErrInvalidInput)
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

	var (
		trip   *models.Trip
		event  *models.Event
		points int
	)
	if hasTrip {
		trip, err = s.tripRepo.FindByID(ctx, reservation.TripID)
		if err != nil {
			return nil, translate(err)
		}
		reservation.TotalPrice = trip.EffectivePrice() * float64(reservation.NumberOfPeople)
		points = models.TripReservationPoints
	} else {
		event, err = s.eventRepo.FindByID(ctx, reservation.EventID)
		if err != nil {
			return nil, translate(err)
		}
		reservation.TotalPrice = event.Price * float64(reservation.NumberOfPeople)
		points = models.EventReservationPoints
	}

	reservation.Status = models.ReservationPending
	if err := s.reservationRepo.Create(ctx, reservation); err != nil {
		return nil, err
	}

	if err := s.userRepo.IncrementPoints(ctx, user.ID, points); err != nil {
		log.Printf("failed to award %d points to user %s: %v", points, user.ID.Hex(), err)
	}

	go func() {
		var err error
		if trip != nil {
			err = s.notifications.SendTripReservationConfirmation(user, trip, reservation)
		} else {
			err = s.notifications.SendEventReservationConfirmation(user, event, reservation.NumberOfPeople, reservation.TotalPrice)
		}
		if err != nil {
			log.Printf("failed to send reservation email to %s: %v", user.Email, err)
		}
	}()

	reservation.Trip = trip
	reservation.Event = event
	reservation.User = user
	return reservation, nil
}

// GetReservationByID retrieves a reservation with its trip/event and user
// populated
func (s *ReservationService) GetReservationByID(ctx context.Context, id primitive.ObjectID) (*models.Reservation, error) {
	reservation, err := s.reservationRepo.FindByID(ctx, id)
	if err != nil {
		return nil, translate(err)
	}
	s.populate(ctx, reservation)
	return reservation, nil
}

// GetAllReservations retrieves all reservations, populated
func (s *ReservationService) GetAllReservations(ctx context.Context) ([]*models.Reservation, error) {
	reservations, err := s.reservationRepo.FindAll(ctx)
	return s.populated(ctx, reservations, err)
}

// GetReservationsByUser retrieves a user's reservations
func (s *ReservationService) GetReservationsByUser(ctx context.Context, userID primitive.ObjectID) ([]*models.Reservation, error) {
	reservations, err := s.reservationRepo.FindByUserID(ctx, userID)
	return s.populated(ctx, reservations, err)
}

// GetReservationsByTrip retrieves reservations for a trip
func (s *ReservationService) GetReservationsByTrip(ctx context.Context, tripID primitive.ObjectID) ([]*models.Reservation, error) {
	reservations, err := s.reservationRepo.FindByTripID(ctx, tripID)
	return s.populated(ctx, reservations, err)
}

// GetReservationsByEvent retrieves reservations for an event
func (s *ReservationService) GetReservationsByEvent(ctx context.Context, eventID primitive.ObjectID) ([]*models.Reservation, error) {
	reservations, err := s.reservationRepo.FindByEventID(ctx, eventID)
	return s.populated(ctx, reservations, err)
}

// GetReservationsByStatus retrieves reservations in a given status
func (s *ReservationService) GetReservationsByStatus(ctx context.Context, status string) ([]*models.Reservation, error) {
	reservations, err := s.reservationRepo.FindByStatus(ctx, status)
	return s.populated(ctx, reservations, err)
}

// GetReservationsByDateRange retrieves reservations created inside the range
func (s *ReservationService) GetReservationsByDateRange(ctx context.Context, start, end time.Time) ([]*models.Reservation, error) {
	reservations, err := s.reservationRepo.FindByDateRange(ctx, start, end)
	return s.populated(ctx, reservations, err)
}

// UpdateReservation updates the mutable booking fields
func (s *ReservationService) UpdateReservation(ctx context.Context, id primitive.ObjectID, updated *models.Reservation) (*models.Reservation, error) {
	reservation, err := s.reservationRepo.FindByID(ctx, id)
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

	if err := s.reservationRepo.Update(ctx, reservation); err != nil {
		return nil, err
	}
	s.populate(ctx, reservation)
	return reservation, nil
}

// UpdateReservationStatus overwrites the reservation status. No transition
// rules are enforced; cancelling does not claw back awarded points.
func (s *ReservationService) UpdateReservationStatus(ctx context.Context, id primitive.ObjectID, status string) error {
	switch status {
	case models.ReservationPending, models.ReservationConfirmed, models.ReservationCancelled:
	default:
		return fmt.Errorf("%w: unknown status %q", ErrInvalidInput, status)
	}
	return translate(s.reservationRepo.UpdateStatus(ctx, id, status))
}

// DeleteReservation deletes a reservation by ID
func (s *ReservationService) DeleteReservation(ctx context.Context, id primitive.ObjectID) error {
	if _, err := s.reservationRepo.FindByID(ctx, id); err != nil {
		return translate(err)
	}
	return s.reservationRepo.Delete(ctx, id)
}

func (s *ReservationService) populated(ctx context.Context, reservations []*models.Reservation, err error) ([]*models.Reservation, error) {
	if err != nil {
		return nil, err
	}
	for _, r := range reservations {
		s.populate(ctx, r)
	}
	return reservations, nil
}

// populate attaches the referenced trip/event and user. Lookup failures are
// tolerated; a reservation whose trip was since removed still renders.
func (s *ReservationService) populate(ctx context.Context, r *models.Reservation) {
	if !r.TripID.IsZero() {
		if trip, err := s.tripRepo.FindByID(ctx, r.TripID); err == nil {
			r.Trip = trip
		}
	}
	if !r.EventID.IsZero() {
		if event, err := s.eventRepo.FindByID(ctx, r.EventID); err == nil {
			r.Event = event
		}
	}
	if user, err := s.userRepo.FindByID(ctx, r.UserID); err == nil {
		r.User = user
	}
}
