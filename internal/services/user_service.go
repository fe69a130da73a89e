package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/tripondo/tripondo-backend/internal/models"
	"github.com/tripondo/tripondo-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

// UserService handles user account business logic
type UserService struct {
	userRepo repositories.UserRepository
}

// NewUserService creates a new UserService
func NewUserService(userRepo repositories.UserRepository) *UserService {
	return &UserService{
		userRepo: userRepo,
	}
}

// GetUserByID retrieves a user by ID
func (s *UserService) GetUserByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, translate(err)
	}
	return user, nil
}

// GetAllUsers retrieves all users
func (s *UserService) GetAllUsers(ctx context.Context) ([]*models.User, error) {
	return s.userRepo.FindAll(ctx)
}

// UpdateUser updates profile fields on an existing user. A non-empty
// password is re-hashed; travel preferences must come from the known set.
func (s *UserService) UpdateUser(ctx context.Context, id primitive.ObjectID, updated *models.User) (*models.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, translate(err)
	}

	if updated.Email != "" && updated.Email != user.Email {
		if _, err := s.userRepo.FindByEmail(ctx, updated.Email); err == nil {
			return nil, ErrEmailTaken
		} else if !errors.Is(err, mongo.ErrNoDocuments) {
			return nil, err
		}
		user.Email = updated.Email
	}
	if updated.Name != "" {
		user.Name = updated.Name
	}
	if updated.Lastname != "" {
		user.Lastname = updated.Lastname
	}
	if updated.Location != "" {
		user.Location = updated.Location
	}
	if updated.ProfileImage != "" {
		user.ProfileImage = updated.ProfileImage
	}
	if updated.TravelPreferences != nil {
		for _, p := range updated.TravelPreferences {
			if !validPreference(p) {
				return nil, fmt.Errorf("%w: unknown travel preference %q", ErrInvalidInput, p)
			}
		}
		user.TravelPreferences = updated.TravelPreferences
	}
	if updated.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(updated.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.Password = string(hashed)
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteUser deletes a user account
func (s *UserService) DeleteUser(ctx context.Context, id primitive.ObjectID) error {
	if _, err := s.userRepo.FindByID(ctx, id); err != nil {
		return translate(err)
	}
	return s.userRepo.Delete(ctx, id)
}

func validPreference(p string) bool {
	for _, known := range models.TravelPreferences {
		if known == p {
			return true
		}
	}
	return false
}
