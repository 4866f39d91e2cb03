package services

import (
	"testing"

	"github.com/ahmadnzr/fintrack-by-ai/constants"
	"github.com/ahmadnzr/fintrack-by-ai/dto"
	apperrors "github.com/ahmadnzr/fintrack-by-ai/errors"
	"github.com/ahmadnzr/fintrack-by-ai/models"
)

func TestRegister(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db, nil)

	user, token, err := svc.Register(&dto.RegisterRequest{
		Email:    "alice@example.com",
		Password: "secret123",
		Name:     "Alice",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if token == "" {
		t.Error("expected a signed token")
	}
	if user.PasswordHash == "secret123" {
		t.Error("password stored in plaintext")
	}

	// Registration seeds default settings and categories.
	var settings models.UserSettings
	if err := db.Where("user_id = ?", user.ID).First(&settings).Error; err != nil {
		t.Fatalf("settings not created: %v", err)
	}
	if settings.Theme != constants.DefaultTheme {
		t.Errorf("theme = %q, want default", settings.Theme)
	}

	var categories int64
	db.Model(&models.Category{}).Where("user_id = ?", user.ID).Count(&categories)
	if categories != 17 {
		t.Errorf("seeded categories = %d, want 17", categories)
	}

	_, _, err = svc.Register(&dto.RegisterRequest{
		Email: "alice@example.com", Password: "secret123",
	})
	wantAppError(t, err, apperrors.ErrCodeConflict, "User with this email already exists")
}

func TestRegisterValidation(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db, nil)

	_, _, err := svc.Register(&dto.RegisterRequest{})
	wantAppError(t, err, apperrors.ErrCodeRequiredField, "Email and password are required")

	_, _, err = svc.Register(&dto.RegisterRequest{Email: "not-an-email", Password: "secret123"})
	wantAppError(t, err, apperrors.ErrCodeInvalidFormat, "Invalid email address")

	_, _, err = svc.Register(&dto.RegisterRequest{Email: "a@b.com", Password: "short"})
	wantAppError(t, err, apperrors.ErrCodeValidation, "Password must be at least 6 characters")
}

func TestLogin(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db, nil)

	_, _, err := svc.Register(&dto.RegisterRequest{
		Email: "alice@example.com", Password: "secret123",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	user, token, err := svc.Login(&dto.LoginRequest{Email: "alice@example.com", Password: "secret123"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if token == "" {
		t.Error("expected a signed token")
	}

	userID, email, err := ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if userID != user.ID || email != user.Email {
		t.Errorf("token identity = (%d, %s), want (%d, %s)", userID, email, user.ID, user.Email)
	}

	_, _, err = svc.Login(&dto.LoginRequest{Email: "alice@example.com", Password: "wrong"})
	wantAppError(t, err, apperrors.ErrCodeUnauthorized, "Invalid email or password")

	// Unknown email yields the same message so the endpoint doesn't leak
	// which accounts exist.
	_, _, err = svc.Login(&dto.LoginRequest{Email: "nobody@example.com", Password: "secret123"})
	wantAppError(t, err, apperrors.ErrCodeUnauthorized, "Invalid email or password")
}

func TestSettings(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db, nil)
	user := createTestUser(t, db, "alice@example.com")

	// First read creates defaults.
	settings, err := svc.GetSettings(user.ID)
	if err != nil {
		t.Fatalf("GetSettings: %v", err)
	}
	if settings.Theme != constants.DefaultTheme || settings.Language != constants.DefaultLanguage {
		t.Errorf("defaults not applied: %+v", settings)
	}

	settings, err = svc.UpdateSettings(user.ID, &dto.UpdateSettingsRequest{Theme: "dark"})
	if err != nil {
		t.Fatalf("UpdateSettings: %v", err)
	}
	if settings.Theme != "dark" {
		t.Errorf("theme = %q, want dark", settings.Theme)
	}
	if settings.Language != constants.DefaultLanguage {
		t.Errorf("language changed unexpectedly: %q", settings.Language)
	}

	_, err = svc.UpdateSettings(user.ID, &dto.UpdateSettingsRequest{Theme: "neon"})
	wantAppError(t, err, apperrors.ErrCodeValidation, "Invalid theme value")
}
