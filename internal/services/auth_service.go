package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tripondo/tripondo-backend/internal/config"
	"github.com/tripondo/tripondo-backend/internal/models"
	"github.com/tripondo/tripondo-backend/internal/repositories"
	"github.com/tripondo/tripondo-backend/internal/utils"
	"github.com/tripondo/tripondo-backend/pkg/mailer"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

// ResetCodeTTL is how long an emailed password reset code stays valid.
const ResetCodeTTL = 15 * time.Minute

// AuthService handles signup, login and the password reset flow for both
// user and admin accounts
type AuthService struct {
	userRepo  repositories.UserRepository
	adminRepo repositories.AdminRepository
	mailer    mailer.Mailer
	cfg       *config.Config
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo repositories.UserRepository, adminRepo repositories.AdminRepository, m mailer.Mailer, cfg *config.Config) *AuthService {
	return &AuthService{
		userRepo:  userRepo,
		adminRepo: adminRepo,
		mailer:    m,
		cfg:       cfg,
	}
}

// RegisterUser creates a user account and returns it with a session token
func (s *AuthService) RegisterUser(ctx context.Context, req *models.RegisterRequest) (*models.User, string, error) {
	if _, err := s.userRepo.FindByEmail(ctx, req.Email); err == nil {
		return nil, "", ErrEmailTaken
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, "", err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	user := &models.User{
		Name:              req.Name,
		Lastname:          req.Lastname,
		Email:             req.Email,
		Password:          string(hashed),
		TravelPreferences: []string{},
		Points:            0,
		IsActive:          true,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := utils.GenerateJWT(user.ID.Hex(), user.Name, user.Email, "user", s.cfg)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// LoginUser verifies user credentials and returns the account with a token
func (s *AuthService) LoginUser(ctx context.Context, email, password string) (*models.User, string, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := utils.GenerateJWT(user.ID.Hex(), user.Name, user.Email, "user", s.cfg)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// LoginAdmin verifies admin credentials and returns the account with a token
func (s *AuthService) LoginAdmin(ctx context.Context, email, password string) (*models.Admin, string, error) {
	admin, err := s.adminRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := utils.GenerateJWT(admin.ID.Hex(), admin.Name, admin.Email, "admin", s.cfg)
	if err != nil {
		return nil, "", err
	}
	return admin, token, nil
}

// ForgotPassword emails a short-lived 6-digit reset code to the account
func (s *AuthService) ForgotPassword(ctx context.Context, email string) error {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return translate(err)
	}

	code, err := utils.GenerateResetCode()
	if err != nil {
		return err
	}
	user.ResetCode = code
	user.ResetCodeExpires = time.Now().Add(ResetCodeTTL)
	if err := s.userRepo.Update(ctx, user); err != nil {
		return err
	}

	body := fmt.Sprintf(
		"Hello %s,\n\nYour password reset code is: %s\n\nThe code expires in 15 minutes. If you did not request a reset, you can ignore this email.\n\nThe Tripondo Team",
		user.Name, code)
	return s.mailer.Send(user.Email, "Password Reset Code", body)
}

// ResetPassword checks the emailed code and sets the new password
func (s *AuthService) ResetPassword(ctx context.Context, code, newPassword string) error {
	user, err := s.userRepo.FindByResetCode(ctx, code)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrInvalidResetCode
		}
		return err
	}
	if time.Now().After(user.ResetCodeExpires) {
		return ErrInvalidResetCode
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.Password = string(hashed)
	if err := s.userRepo.Update(ctx, user); err != nil {
		return err
	}
	// The code fields must be unset explicitly; emptying them on the
	// struct would not survive Update's $set.
	return s.userRepo.ClearResetCode(ctx, user.ID)
}
