package validator

import (
	"time"

	"github.com/ahmadnzr/fintrack-by-ai/constants"
	"github.com/ahmadnzr/fintrack-by-ai/dto"
	apperrors "github.com/ahmadnzr/fintrack-by-ai/errors"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateRegister validate thông tin đăng ký.
func ValidateRegister(req *dto.RegisterRequest) error {
	if req.Email == "" || req.Password == "" {
		return apperrors.NewAppError(apperrors.ErrCodeRequiredField, "Email and password are required", nil)
	}

	if err := validate.Var(req.Email, "email"); err != nil {
		return apperrors.NewAppError(apperrors.ErrCodeInvalidFormat, "Invalid email address", nil)
	}

	if len(req.Password) < 6 {
		return apperrors.Validation("Password must be at least 6 characters")
	}

	return nil
}

// ValidateSettings validate theme và language.
func ValidateSettings(req *dto.UpdateSettingsRequest) error {
	if req.Theme != "" && !contains(constants.Themes, req.Theme) {
		return apperrors.Validation("Invalid theme value")
	}
	if req.Language != "" && !contains(constants.Languages, req.Language) {
		return apperrors.Validation("Invalid language value")
	}
	return nil
}

// ValidateCategory validate thông tin category.
func ValidateCategory(req *dto.CategoryRequest) error {
	if req.Name == "" || req.Type == "" {
		return apperrors.NewAppError(apperrors.ErrCodeRequiredField, "Name and type are required", nil)
	}

	switch req.Type {
	case constants.TypeIncome, constants.TypeExpense, constants.TypeGeneral:
	default:
		return apperrors.Validation("Type must be income, expense or general")
	}

	if len(req.Name) > 100 {
		return apperrors.Validation("Name must be 100 characters or less")
	}

	return nil
}

// ValidateTransaction validates the request and parses its date.
func ValidateTransaction(req *dto.TransactionRequest) (time.Time, error) {
	if req.Date == "" || req.Description == "" || req.Amount == 0 || req.Category == 0 || req.Type == "" {
		return time.Time{}, apperrors.NewAppError(apperrors.ErrCodeRequiredField, "All required fields must be provided", nil)
	}

	if req.Type != constants.TypeIncome && req.Type != constants.TypeExpense {
		return time.Time{}, apperrors.Validation("Type must be income or expense")
	}

	if req.Amount < 0 {
		return time.Time{}, apperrors.Validation("Amount must be positive")
	}

	date, err := parseTimestamp(req.Date)
	if err != nil {
		return time.Time{}, apperrors.NewAppError(apperrors.ErrCodeInvalidFormat, "Invalid date format", nil)
	}

	return date, nil
}

// ValidateRoom validate thông tin phòng họp.
func ValidateRoom(req *dto.RoomRequest) error {
	if req.Name == "" || req.Capacity == 0 {
		return apperrors.NewAppError(apperrors.ErrCodeRequiredField, "Name and capacity are required", nil)
	}

	if req.Capacity < 1 || req.Capacity > 100 {
		return apperrors.Validation("Capacity must be between 1 and 100")
	}

	if len(req.Name) > 100 {
		return apperrors.Validation("Name must be 100 characters or less")
	}

	if len(req.Description) > 500 {
		return apperrors.Validation("Description must be 500 characters or less")
	}

	if len(req.Location) > 200 {
		return apperrors.Validation("Location must be 200 characters or less")
	}

	return nil
}

// ValidateFacility validate thông tin tiện nghi.
func ValidateFacility(req *dto.FacilityRequest) error {
	if req.Name == "" {
		return apperrors.NewAppError(apperrors.ErrCodeRequiredField, "Name is required", nil)
	}

	if len(req.Name) > 50 {
		return apperrors.Validation("Name must be 50 characters or less")
	}

	if len(req.Description) > 200 {
		return apperrors.Validation("Description must be 200 characters or less")
	}

	if len(req.Icon) > 50 {
		return apperrors.Validation("Icon must be 50 characters or less")
	}

	return nil
}

// ValidateBookingCreate checks field constraints on a proposed booking and
// returns the parsed interval. Business rules against store state (room
// exists, maintenance, one active booking per user, overlap) live in the
// booking service, inside the write transaction.
func ValidateBookingCreate(req *dto.BookingCreateRequest, now time.Time) (time.Time, time.Time, error) {
	if req.RoomID == 0 || req.StartTime == "" || req.EndTime == "" || req.Purpose == "" {
		return time.Time{}, time.Time{}, apperrors.NewAppError(apperrors.ErrCodeRequiredField,
			"Room ID, start time, end time, and purpose are required", nil)
	}

	if len(req.Purpose) > 200 {
		return time.Time{}, time.Time{}, apperrors.Validation("Purpose must be 200 characters or less")
	}

	start, err := parseTimestamp(req.StartTime)
	if err != nil {
		return time.Time{}, time.Time{}, apperrors.NewAppError(apperrors.ErrCodeInvalidFormat, "Invalid date format", nil)
	}

	end, err := parseTimestamp(req.EndTime)
	if err != nil {
		return time.Time{}, time.Time{}, apperrors.NewAppError(apperrors.ErrCodeInvalidFormat, "Invalid date format", nil)
	}

	if !start.Before(end) {
		return time.Time{}, time.Time{}, apperrors.Validation("Start time must be before end time")
	}

	if start.Before(now) {
		return time.Time{}, time.Time{}, apperrors.Validation("Start time cannot be in the past")
	}

	return start, end, nil
}

// ParseTimestamp parses an ISO-8601 timestamp from a request body.
func ParseTimestamp(value string) (time.Time, error) {
	return parseTimestamp(value)
}

func parseTimestamp(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	// Date-only values come from the transaction form.
	return time.Parse("2006-01-02", value)
}

func contains(values []string, v string) bool {
	for _, value := range values {
		if value == v {
			return true
		}
	}
	return false
}
