package services

import (
	"fmt"

	"github.com/tripondo/tripondo-backend/internal/models"
	"github.com/tripondo/tripondo-backend/pkg/mailer"
)

// NotificationService formats and sends the transactional emails. Callers
// fire these off the request path; a failed send never fails the operation
// that triggered it.
type NotificationService struct {
	mailer mailer.Mailer
}

// NewNotificationService creates a new NotificationService
func NewNotificationService(m mailer.Mailer) *NotificationService {
	return &NotificationService{
		mailer: m,
	}
}

// SendTripReservationConfirmation confirms a trip booking
func (s *NotificationService) SendTripReservationConfirmation(user *models.User, trip *models.Trip, reservation *models.Reservation) error {
	body := fmt.Sprintf(
		"Hello %s,\n\nYour reservation for %s has been received and is pending confirmation.\n\nTravellers: %d\nTotal price: %.2f\nDeparture: %s\n\nYou earned %d loyalty points for this booking.\n\nThe Tripondo Team",
		user.Name, trip.Destination, reservation.NumberOfPeople, reservation.TotalPrice,
		trip.DebutDate.Format("02 Jan 2006"), models.TripReservationPoints)
	return s.mailer.Send(user.Email, "Reservation Received: "+trip.Destination, body)
}

// SendEventReservationConfirmation confirms an event booking
func (s *NotificationService) SendEventReservationConfirmation(user *models.User, event *models.Event, numberOfPeople int, totalPrice float64) error {
	body := fmt.Sprintf(
		"Hello %s,\n\nYour reservation for %s has been received and is pending confirmation.\n\nAttendees: %d\nTotal price: %.2f\nDate: %s %s\nLocation: %s\n\nYou earned %d loyalty points for this booking.\n\nThe Tripondo Team",
		user.Name, event.Title, numberOfPeople, totalPrice,
		event.Date.Format("02 Jan 2006"), event.Time, event.Location, models.EventReservationPoints)
	return s.mailer.Send(user.Email, "Reservation Received: "+event.Title, body)
}

// SendClaimConfirmation confirms a redeemed reward
func (s *NotificationService) SendClaimConfirmation(user *models.User, reward *models.Reward, claim *models.ClaimedReward) error {
	body := fmt.Sprintf(
		"Hello %s,\n\nYou claimed the reward \"%s\" for %d points.\n\nYour claim is valid until %s. Present it at the venue to redeem.\n\nThe Tripondo Team",
		user.Name, reward.Title, reward.PointsRequired,
		claim.ExpirationDate.Format("02 Jan 2006"))
	return s.mailer.Send(user.Email, "Reward Claimed: "+reward.Title, body)
}
