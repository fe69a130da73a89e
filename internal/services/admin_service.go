package services

import (
	"context"
	"errors"

	"github.com/tripondo/tripondo-backend/internal/models"
	"github.com/tripondo/tripondo-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

// AdminService handles back-office operator accounts
type AdminService struct {
	adminRepo repositories.AdminRepository
}

// NewAdminService creates a new AdminService
func NewAdminService(adminRepo repositories.AdminRepository) *AdminService {
	return &AdminService{
		adminRepo: adminRepo,
	}
}

// GetAdminByID retrieves an admin by ID
func (s *AdminService) GetAdminByID(ctx context.Context, id primitive.ObjectID) (*models.Admin, error) {
	admin, err := s.adminRepo.FindByID(ctx, id)
	if err != nil {
		return nil, translate(err)
	}
	return admin, nil
}

// GetAllAdmins retrieves all admins
func (s *AdminService) GetAllAdmins(ctx context.Context) ([]*models.Admin, error) {
	return s.adminRepo.FindAll(ctx)
}

// CreateAdmin creates a new admin with a hashed password
func (s *AdminService) CreateAdmin(ctx context.Context, admin *models.Admin) error {
	if _, err := s.adminRepo.FindByEmail(ctx, admin.Email); err == nil {
		return ErrEmailTaken
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(admin.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin.Password = string(hashed)
	return s.adminRepo.Create(ctx, admin)
}

// UpdateAdmin updates an existing admin. A non-empty password is re-hashed.
func (s *AdminService) UpdateAdmin(ctx context.Context, id primitive.ObjectID, updated *models.Admin) (*models.Admin, error) {
	admin, err := s.adminRepo.FindByID(ctx, id)
	if err != nil {
		return nil, translate(err)
	}

	if updated.Email != "" && updated.Email != admin.Email {
		if _, err := s.adminRepo.FindByEmail(ctx, updated.Email); err == nil {
			return nil, ErrEmailTaken
		} else if !errors.Is(err, mongo.ErrNoDocuments) {
			return nil, err
		}
		admin.Email = updated.Email
	}
	if updated.Name != "" {
		admin.Name = updated.Name
	}
	if updated.ProfileImage != "" {
		admin.ProfileImage = updated.ProfileImage
	}
	if updated.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(updated.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		admin.Password = string(hashed)
	}

	if err := s.adminRepo.Update(ctx, admin); err != nil {
		return nil, err
	}
	return admin, nil
}

// DeleteAdmin deletes an admin account
func (s *AdminService) DeleteAdmin(ctx context.Context, id primitive.ObjectID) error {
	if _, err := s.adminRepo.FindByID(ctx, id); err != nil {
		return translate(err)
	}
	return s.adminRepo.Delete(ctx, id)
}
