package services

import (
	"testing"

	"github.com/ahmadnzr/fintrack-by-ai/constants"
	"github.com/ahmadnzr/fintrack-by-ai/dto"
	apperrors "github.com/ahmadnzr/fintrack-by-ai/errors"
	"github.com/ahmadnzr/fintrack-by-ai/models"
)

func TestRoomCreateAndGet(t *testing.T) {
	db := newTestDB(t)
	svc := NewRoomService(db, nil)

	projector := &models.Facility{Name: "Projector"}
	if err := db.Create(projector).Error; err != nil {
		t.Fatalf("create facility: %v", err)
	}

	room, err := svc.Create(&dto.RoomRequest{
		Name:        "Orion",
		Capacity:    10,
		Location:    "Floor 2",
		FacilityIDs: []uint{projector.ID},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if room.Status != constants.RoomStatusAvailable {
		t.Errorf("new room status = %q, want available", room.Status)
	}
	if len(room.Facilities) != 1 || room.Facilities[0].Name != "Projector" {
		t.Errorf("facilities not attached: %+v", room.Facilities)
	}

	_, err = svc.Create(&dto.RoomRequest{Name: "Orion", Capacity: 5})
	wantAppError(t, err, apperrors.ErrCodeConflict, "A room with this name already exists")

	_, err = svc.Create(&dto.RoomRequest{Name: "Lyra", Capacity: 5, FacilityIDs: []uint{999}})
	wantAppError(t, err, apperrors.ErrCodeValidation, "One or more facility IDs are invalid")

	_, err = svc.Get(999)
	wantAppError(t, err, apperrors.ErrCodeNotFound, "Room not found")
}

func TestRoomCreateValidation(t *testing.T) {
	db := newTestDB(t)
	svc := NewRoomService(db, nil)

	_, err := svc.Create(&dto.RoomRequest{Name: "", Capacity: 0})
	wantAppError(t, err, apperrors.ErrCodeRequiredField, "Name and capacity are required")

	_, err = svc.Create(&dto.RoomRequest{Name: "Orion", Capacity: 101})
	wantAppError(t, err, apperrors.ErrCodeValidation, "Capacity must be between 1 and 100")
}

func TestRoomListFilters(t *testing.T) {
	db := newTestDB(t)
	svc := NewRoomService(db, nil)

	createTestRoom(t, db, "Orion", constants.RoomStatusAvailable)
	big := createTestRoom(t, db, "Lyra", constants.RoomStatusAvailable)
	db.Model(big).Update("capacity", 20)
	createTestRoom(t, db, "Vega", constants.RoomStatusMaintenance)

	rooms, total, _, err := svc.List(dto.RoomFilters{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if total != 3 || len(rooms) != 3 {
		t.Fatalf("total = %d, want 3", total)
	}

	_, total, _, err = svc.List(dto.RoomFilters{Status: constants.RoomStatusMaintenance})
	if err != nil {
		t.Fatalf("List by status: %v", err)
	}
	if total != 1 {
		t.Errorf("maintenance rooms = %d, want 1", total)
	}

	rooms, total, _, err = svc.List(dto.RoomFilters{MinCapacity: 15})
	if err != nil {
		t.Fatalf("List by capacity: %v", err)
	}
	if total != 1 || rooms[0].Name != "Lyra" {
		t.Errorf("capacity filter failed: total=%d", total)
	}

	_, total, _, err = svc.List(dto.RoomFilters{Search: "ori"})
	if err != nil {
		t.Fatalf("List by search: %v", err)
	}
	if total != 1 {
		t.Errorf("search matched %d rooms, want 1", total)
	}
}

func TestRoomListSuggestion(t *testing.T) {
	db := newTestDB(t)
	svc := NewRoomService(db, nil)

	createTestRoom(t, db, "Orion", constants.RoomStatusAvailable)
	createTestRoom(t, db, "Lyra", constants.RoomStatusAvailable)

	rooms, total, suggestion, err := svc.List(dto.RoomFilters{Search: "oroin"})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if total != 0 || len(rooms) != 0 {
		t.Fatalf("expected no matches, got %d", total)
	}
	if suggestion != "Orion" {
		t.Errorf("suggestion = %q, want Orion", suggestion)
	}
}

func TestRoomDeleteWithActiveBookings(t *testing.T) {
	db := newTestDB(t)
	svc := NewRoomService(db, nil)
	room := createTestRoom(t, db, "Orion", constants.RoomStatusBooked)
	user := createTestUser(t, db, "alice@example.com")

	createTestBooking(t, db, user.ID, room.ID,
		mustTime(t, "2026-09-01T10:00:00Z"), mustTime(t, "2026-09-01T11:00:00Z"),
		constants.BookingStatusConfirmed)

	err := svc.Delete(room.ID)
	wantAppError(t, err, apperrors.ErrCodeConflict, "Cannot delete a room with active bookings")

	db.Model(&models.Booking{}).Where("room_id = ?", room.ID).
		Update("status", constants.BookingStatusCancelled)

	if err := svc.Delete(room.ID); err != nil {
		t.Fatalf("delete after cancel: %v", err)
	}
}

func TestRoomSetStatus(t *testing.T) {
	db := newTestDB(t)
	notifier := &fakeNotifier{}
	svc := NewRoomService(db, notifier)
	room := createTestRoom(t, db, "Orion", constants.RoomStatusAvailable)
	user := createTestUser(t, db, "alice@example.com")

	_, err := svc.SetStatus(room.ID, constants.RoomStatusBooked)
	wantAppError(t, err, apperrors.ErrCodeValidation, "Invalid status value")

	updated, err := svc.SetStatus(room.ID, constants.RoomStatusMaintenance)
	if err != nil {
		t.Fatalf("set maintenance: %v", err)
	}
	if updated.Status != constants.RoomStatusMaintenance {
		t.Errorf("status = %q, want maintenance", updated.Status)
	}

	// An active booking exists while the room is in maintenance, so leaving
	// maintenance must land on booked, not available.
	createTestBooking(t, db, user.ID, room.ID,
		mustTime(t, "2026-09-01T10:00:00Z"), mustTime(t, "2026-09-01T11:00:00Z"),
		constants.BookingStatusConfirmed)

	updated, err = svc.SetStatus(room.ID, constants.RoomStatusAvailable)
	if err != nil {
		t.Fatalf("leave maintenance: %v", err)
	}
	if updated.Status != constants.RoomStatusBooked {
		t.Errorf("status = %q, want booked after reconciliation", updated.Status)
	}

	if len(notifier.events) != 2 {
		t.Errorf("expected 2 notifications, got %d", len(notifier.events))
	}
}
