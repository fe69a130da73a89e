package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/tripondo/tripondo-backend/internal/config"
	"github.com/tripondo/tripondo-backend/internal/models"
	"github.com/tripondo/tripondo-backend/internal/utils"
	"github.com/tripondo/tripondo-backend/pkg/mailer"
)

func newAuthConfig() *config.Config {
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.ExpiresIn = 3600
	return cfg
}

func newAuthFixture() (*AuthService, *fakeUserRepo, *fakeAdminRepo, *mailer.MockMailer) {
	userRepo := newFakeUserRepo()
	adminRepo := newFakeAdminRepo()
	mock := mailer.NewMockMailer()
	return NewAuthService(userRepo, adminRepo, mock, newAuthConfig()), userRepo, adminRepo, mock
}

func TestRegisterAndLogin(t *testing.T) {
	svc, _, _, _ := newAuthFixture()
	ctx := context.Background()

	user, token, err := svc.RegisterUser(ctx, &models.RegisterRequest{
		Name:     "Leila",
		Lastname: "Ben Salah",
		Email:    "leila@example.com",
		Password: "s3cret-pass",
	})
	if err != nil {
		t.Fatalf("RegisterUser: %v", err)
	}
	if token == "" {
		t.Error("register returned empty token")
	}
	if user.Password == "s3cret-pass" {
		t.Error("password stored in plain text")
	}
	if !user.IsActive {
		t.Error("new accounts should start active")
	}
	if user.Points != 0 {
		t.Errorf("points = %d, want 0", user.Points)
	}

	logged, token, err := svc.LoginUser(ctx, "leila@example.com", "s3cret-pass")
	if err != nil {
		t.Fatalf("LoginUser: %v", err)
	}
	if logged.ID != user.ID {
		t.Errorf("logged in as %s, want %s", logged.ID.Hex(), user.ID.Hex())
	}

	claims, err := utils.ValidateJWT(token, newAuthConfig())
	if err != nil {
		t.Fatalf("ValidateJWT: %v", err)
	}
	if claims["role"] != "user" {
		t.Errorf("token role = %v, want user", claims["role"])
	}
	if claims["email"] != user.Email {
		t.Errorf("token email = %v, want %s", claims["email"], user.Email)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _, _, _ := newAuthFixture()
	ctx := context.Background()

	req := &models.RegisterRequest{Name: "Tarek", Email: "tarek@example.com", Password: "pass1234"}
	if _, _, err := svc.RegisterUser(ctx, req); err != nil {
		t.Fatalf("RegisterUser: %v", err)
	}
	if _, _, err := svc.RegisterUser(ctx, req); !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("err = %v, want %v", err, ErrEmailTaken)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc, _, _, _ := newAuthFixture()
	ctx := context.Background()

	if _, _, err := svc.RegisterUser(ctx, &models.RegisterRequest{
		Name: "Wael", Email: "wael@example.com", Password: "correct-horse",
	}); err != nil {
		t.Fatalf("RegisterUser: %v", err)
	}

	if _, _, err := svc.LoginUser(ctx, "wael@example.com", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("wrong password err = %v, want %v", err, ErrInvalidCredentials)
	}
	if _, _, err := svc.LoginUser(ctx, "nobody@example.com", "whatever"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("unknown email err = %v, want %v", err, ErrInvalidCredentials)
	}
}

func TestPasswordResetFlow(t *testing.T) {
	svc, userRepo, _, mock := newAuthFixture()
	ctx := context.Background()

	if _, _, err := svc.RegisterUser(ctx, &models.RegisterRequest{
		Name: "Selma", Email: "selma@example.com", Password: "old-password",
	}); err != nil {
		t.Fatalf("RegisterUser: %v", err)
	}

	if err := svc.ForgotPassword(ctx, "selma@example.com"); err != nil {
		t.Fatalf("ForgotPassword: %v", err)
	}
	sent := mock.Sent()
	if len(sent) != 1 {
		t.Fatalf("sent %d emails, want 1", len(sent))
	}

	stored, _ := userRepo.FindByEmail(ctx, "selma@example.com")
	if len(stored.ResetCode) != 6 {
		t.Fatalf("reset code = %q, want 6 digits", stored.ResetCode)
	}

	if err := svc.ResetPassword(ctx, stored.ResetCode, "new-password"); err != nil {
		t.Fatalf("ResetPassword: %v", err)
	}
	if _, _, err := svc.LoginUser(ctx, "selma@example.com", "new-password"); err != nil {
		t.Fatalf("login with new password: %v", err)
	}
	if _, _, err := svc.LoginUser(ctx, "selma@example.com", "old-password"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("old password still accepted: err = %v", err)
	}

	after, _ := userRepo.FindByEmail(ctx, "selma@example.com")
	if after.ResetCode != "" {
		t.Error("reset code not cleared after use")
	}
	if err := svc.ResetPassword(ctx, stored.ResetCode, "third-password"); !errors.Is(err, ErrInvalidResetCode) {
		t.Errorf("used code replayed: err = %v, want %v", err, ErrInvalidResetCode)
	}
}

func TestResetPasswordRejectsExpiredCode(t *testing.T) {
	svc, userRepo, _, _ := newAuthFixture()
	ctx := context.Background()

	if _, _, err := svc.RegisterUser(ctx, &models.RegisterRequest{
		Name: "Fares", Email: "fares@example.com", Password: "password1",
	}); err != nil {
		t.Fatalf("RegisterUser: %v", err)
	}
	if err := svc.ForgotPassword(ctx, "fares@example.com"); err != nil {
		t.Fatalf("ForgotPassword: %v", err)
	}

	stored, _ := userRepo.FindByEmail(ctx, "fares@example.com")
	stored.ResetCodeExpires = time.Now().Add(-time.Minute)
	userRepo.Update(ctx, stored)

	if err := svc.ResetPassword(ctx, stored.ResetCode, "password2"); !errors.Is(err, ErrInvalidResetCode) {
		t.Errorf("err = %v, want %v", err, ErrInvalidResetCode)
	}
	if err := svc.ResetPassword(ctx, "000000", "password2"); !errors.Is(err, ErrInvalidResetCode) {
		t.Errorf("unknown code err = %v, want %v", err, ErrInvalidResetCode)
	}
}

func TestLoginAdmin(t *testing.T) {
	svc, _, adminRepo, _ := newAuthFixture()
	ctx := context.Background()

	adminSvc := NewAdminService(adminRepo)
	admin := &models.Admin{Name: "Root", Email: "root@example.com", Password: "admin-pass"}
	if err := adminSvc.CreateAdmin(ctx, admin); err != nil {
		t.Fatalf("CreateAdmin: %v", err)
	}

	logged, token, err := svc.LoginAdmin(ctx, "root@example.com", "admin-pass")
	if err != nil {
		t.Fatalf("LoginAdmin: %v", err)
	}
	if logged.ID != admin.ID {
		t.Errorf("logged in as %s, want %s", logged.ID.Hex(), admin.ID.Hex())
	}

	claims, err := utils.ValidateJWT(token, newAuthConfig())
	if err != nil {
		t.Fatalf("ValidateJWT: %v", err)
	}
	if claims["role"] != "admin" {
		t.Errorf("token role = %v, want admin", claims["role"])
	}
}
