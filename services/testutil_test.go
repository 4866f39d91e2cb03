package services

import (
	"testing"
	"time"

	apperrors "github.com/ahmadnzr/fintrack-by-ai/errors"
	"github.com/ahmadnzr/fintrack-by-ai/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.UserSettings{},
		&models.Category{},
		&models.Tag{},
		&models.Transaction{},
		&models.Facility{},
		&models.Room{},
		&models.Booking{},
	)
	if err != nil {
		t.Fatalf("migrate test db: %v", err)
	}

	return db
}

func createTestUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()
	user := &models.User{Email: email, Name: "Test User"}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user
}

func createTestRoom(t *testing.T, db *gorm.DB, name, status string) *models.Room {
	t.Helper()
	room := &models.Room{Name: name, Capacity: 8, Status: status}
	if err := db.Create(room).Error; err != nil {
		t.Fatalf("create room: %v", err)
	}
	return room
}

func createTestBooking(t *testing.T, db *gorm.DB, userID, roomID uint, start, end time.Time, status string) *models.Booking {
	t.Helper()
	booking := &models.Booking{
		UserID:    userID,
		RoomID:    roomID,
		StartTime: start,
		EndTime:   end,
		Purpose:   "Team sync",
		Status:    status,
	}
	if err := db.Create(booking).Error; err != nil {
		t.Fatalf("create booking: %v", err)
	}
	return booking
}

func roomStatus(t *testing.T, db *gorm.DB, roomID uint) string {
	t.Helper()
	var room models.Room
	if err := db.First(&room, roomID).Error; err != nil {
		t.Fatalf("load room: %v", err)
	}
	return room.Status
}

func mustTime(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		t.Fatalf("parse %q: %v", value, err)
	}
	return parsed
}

func wantAppError(t *testing.T, err error, code apperrors.ErrorCode, message string) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error %q, got nil", message)
	}
	appErr, ok := apperrors.AsAppError(err)
	if !ok {
		t.Fatalf("expected AppError, got %T: %v", err, err)
	}
	if appErr.Code != code {
		t.Errorf("got code %q, want %q", appErr.Code, code)
	}
	if message != "" && appErr.Message != message {
		t.Errorf("got message %q, want %q", appErr.Message, message)
	}
}

// fakeNotifier records room status events for assertions.
type fakeNotifier struct {
	events []RoomStatusEvent
}

func (f *fakeNotifier) NotifyRoomStatus(roomID uint, status string) {
	f.events = append(f.events, RoomStatusEvent{Type: "room_status", RoomID: roomID, Status: status})
}

func strPtr(s string) *string { return &s }
