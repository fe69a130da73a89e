package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/tripondo/tripondo-backend/internal/models"
	"github.com/tripondo/tripondo-backend/pkg/mailer"
)

func TestDeleteTripBlockedByReservations(t *testing.T) {
	userRepo := newFakeUserRepo()
	tripRepo := newFakeTripRepo()
	eventRepo := newFakeEventRepo()
	reservationRepo := newFakeReservationRepo()
	tripSvc := NewTripService(tripRepo, reservationRepo)
	reservationSvc := NewReservationService(reservationRepo, tripRepo, eventRepo, userRepo, NewNotificationService(mailer.NewMockMailer()))
	ctx := context.Background()

	user := &models.User{Name: "Rim", Email: "rim@example.com"}
	userRepo.Create(ctx, user)
	trip := &models.Trip{Destination: "Hammamet", Price: 250}
	tripRepo.Create(ctx, trip)

	created, err := reservationSvc.CreateReservation(ctx, &models.Reservation{
		TripID:         trip.ID,
		UserID:         user.ID,
		NumberOfPeople: 1,
		PaymentMethod:  "cash",
	})
	if err != nil {
		t.Fatalf("CreateReservation: %v", err)
	}

	if err := tripSvc.DeleteTrip(ctx, trip.ID); !errors.Is(err, ErrHasReservations) {
		t.Fatalf("DeleteTrip err = %v, want %v", err, ErrHasReservations)
	}
	if _, err := tripRepo.FindByID(ctx, trip.ID); err != nil {
		t.Fatalf("trip should still exist: %v", err)
	}

	if err := reservationSvc.DeleteReservation(ctx, created.ID); err != nil {
		t.Fatalf("DeleteReservation: %v", err)
	}
	if err := tripSvc.DeleteTrip(ctx, trip.ID); err != nil {
		t.Fatalf("DeleteTrip after clearing reservations: %v", err)
	}
}

func TestCreateTripValidation(t *testing.T) {
	tripSvc := NewTripService(newFakeTripRepo(), newFakeReservationRepo())
	ctx := context.Background()

	cases := []struct {
		name string
		trip models.Trip
	}{
		{"missing destination", models.Trip{Price: 100}},
		{"negative price", models.Trip{Destination: "Tunis", Price: -5}},
		{"reduction out of range", models.Trip{Destination: "Tunis", Price: 100, Reduction: 150}},
		{"end before start", models.Trip{
			Destination: "Tunis", Price: 100,
			DebutDate: time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := tripSvc.CreateTrip(ctx, &tc.trip); !errors.Is(err, ErrInvalidInput) {
				t.Errorf("err = %v, want %v", err, ErrInvalidInput)
			}
		})
	}
}

func TestToggleTripStatus(t *testing.T) {
	tripRepo := newFakeTripRepo()
	tripSvc := NewTripService(tripRepo, newFakeReservationRepo())
	ctx := context.Background()

	trip := &models.Trip{Destination: "Kairouan", Price: 90}
	if err := tripSvc.CreateTrip(ctx, trip); err != nil {
		t.Fatalf("CreateTrip: %v", err)
	}
	if !trip.IsActive {
		t.Fatal("new trips should start active")
	}

	toggled, err := tripSvc.ToggleTripStatus(ctx, trip.ID)
	if err != nil {
		t.Fatalf("ToggleTripStatus: %v", err)
	}
	if toggled.IsActive {
		t.Error("trip should be inactive after toggle")
	}
}

func TestEffectivePrice(t *testing.T) {
	trip := &models.Trip{Price: 200, Reduction: 25}
	if got := trip.EffectivePrice(); got != 150 {
		t.Errorf("EffectivePrice = %v, want 150", got)
	}
	full := &models.Trip{Price: 200}
	if got := full.EffectivePrice(); got != 200 {
		t.Errorf("EffectivePrice without reduction = %v, want 200", got)
	}
}
