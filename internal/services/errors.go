package services

import (
	"errors"

	"github.com/tripondo/tripondo-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/mongo"
)

// Sentinel errors returned by the service layer. Handlers map these onto
// HTTP status codes.
var (
	ErrNotFound           = errors.New("resource not found")
	ErrInvalidInput       = errors.New("invalid input")
	ErrForbidden          = errors.New("forbidden")
	ErrEmailTaken         = errors.New("email already in use")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidResetCode   = errors.New("invalid or expired reset code")
	ErrHasReservations    = errors.New("existing reservations reference this item")
	ErrSurveyPublished    = errors.New("published surveys cannot be deleted")
	ErrDuplicateResponse  = errors.New("question already answered by this user")
)

// ErrInsufficientPoints surfaces the repository-level balance check.
var ErrInsufficientPoints = repositories.ErrInsufficientPoints

// translate converts store-level lookup failures into service errors.
func translate(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	return err
}
