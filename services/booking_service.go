package services

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/ahmadnzr/fintrack-by-ai/constants"
	"github.com/ahmadnzr/fintrack-by-ai/dto"
	apperrors "github.com/ahmadnzr/fintrack-by-ai/errors"
	"github.com/ahmadnzr/fintrack-by-ai/models"
	"github.com/ahmadnzr/fintrack-by-ai/services/logger"
	"github.com/ahmadnzr/fintrack-by-ai/validator"

	"github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// RoomStatusNotifier receives room status changes produced by booking
// writes. Implemented by WSNotifier; nil disables notifications.
type RoomStatusNotifier interface {
	NotifyRoomStatus(roomID uint, status string)
}

// BookingService owns every booking mutation. All writes run inside a
// single transaction together with the room-status reconciliation, and the
// conflict check runs inside that same transaction (serializable on
// Postgres) so two concurrent creates cannot both pass the check.
type BookingService struct {
	db       *gorm.DB
	log      logger.Logger
	notifier RoomStatusNotifier
	rdb      *redis.Client
}

func NewBookingService(db *gorm.DB, log logger.Logger, notifier RoomStatusNotifier, rdb *redis.Client) *BookingService {
	if log == nil {
		log = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &BookingService{db: db, log: log, notifier: notifier, rdb: rdb}
}

func errRoomBooked() error {
	return apperrors.Conflict("The room is already booked for the selected time period")
}

// isExclusionViolation reports whether the database rejected the write via
// the bookings overlap exclusion constraint (Postgres 23P01).
func isExclusionViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23P01"
	}
	return false
}

// transaction runs fn atomically; on Postgres the transaction is
// serializable so the in-transaction conflict check closes the
// check-then-act race.
func (s *BookingService) transaction(fn func(tx *gorm.DB) error) error {
	if s.db.Dialector.Name() == "postgres" {
		return s.db.Transaction(fn, &sql.TxOptions{Isolation: sql.LevelSerializable})
	}
	return s.db.Transaction(fn)
}

// conflictExists is the Conflict Detector: half-open interval overlap
// (s1 < e2 AND s2 < e1) against active bookings for the room, optionally
// excluding the booking being updated. Adjacent intervals do not conflict.
func (s *BookingService) conflictExists(tx *gorm.DB, roomID uint, start, end time.Time, excludeID uint) (bool, error) {
	q := tx.Model(&models.Booking{}).
		Where("room_id = ? AND status IN ? AND start_time < ? AND end_time > ?",
			roomID, constants.ActiveBookingStatuses(), end, start)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// ReconcileRoomStatus recomputes Room.status from the set of active
// bookings. It must run inside the transaction that mutated the bookings.
// A room in maintenance keeps that status; maintenance is administrative
// state, not derived from bookings.
func ReconcileRoomStatus(tx *gorm.DB, roomID uint) (string, error) {
	var room models.Room
	if err := tx.First(&room, roomID).Error; err != nil {
		return "", err
	}

	if room.Status == constants.RoomStatusMaintenance {
		return room.Status, nil
	}

	var active int64
	err := tx.Model(&models.Booking{}).
		Where("room_id = ? AND status IN ?", roomID, constants.ActiveBookingStatuses()).
		Count(&active).Error
	if err != nil {
		return "", err
	}

	next := constants.RoomStatusAvailable
	if active > 0 {
		next = constants.RoomStatusBooked
	}

	if next != room.Status {
		if err := tx.Model(&models.Room{}).Where("id = ?", roomID).Update("status", next).Error; err != nil {
			return "", err
		}
	}
	return next, nil
}

func (s *BookingService) notifyRoom(roomID uint, status string) {
	if s.notifier != nil && status != "" {
		s.notifier.NotifyRoomStatus(roomID, status)
	}
}

// invalidateCaches drops the cached lists a booking write makes stale. The
// sweep path needs this as much as the HTTP handlers do.
func (s *BookingService) invalidateCaches(userID uint) {
	_ = DeleteFromRedis(context.Background(), s.rdb, BookingListCacheKey(userID), RoomListCacheKey)
}

// List trả về danh sách booking của user, có filter và phân trang.
func (s *BookingService) List(userID uint, f dto.BookingFilters) ([]models.Booking, int64, error) {
	q := s.db.Model(&models.Booking{}).Where("user_id = ?", userID)

	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.RoomID != 0 {
		q = q.Where("room_id = ?", f.RoomID)
	}
	if f.StartDate != "" {
		if t, err := validator.ParseTimestamp(f.StartDate); err == nil {
			q = q.Where("start_time >= ?", t)
		}
	}
	if f.EndDate != "" {
		if t, err := validator.ParseTimestamp(f.EndDate); err == nil {
			q = q.Where("end_time <= ?", t)
		}
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page, limit := normalizePage(f.Page, f.Limit)

	var bookings []models.Booking
	err := q.Preload("Room.Facilities").Preload("User").
		Order("start_time DESC").
		Offset((page - 1) * limit).Limit(limit).
		Find(&bookings).Error
	if err != nil {
		return nil, 0, err
	}

	return bookings, total, nil
}

// Get trả về một booking, chỉ cho chủ sở hữu.
func (s *BookingService) Get(userID, id uint) (*models.Booking, error) {
	var booking models.Booking
	err := s.db.Preload("Room.Facilities").Preload("User").First(&booking, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Booking not found")
		}
		return nil, err
	}

	if booking.UserID != userID {
		return nil, apperrors.Forbidden("Forbidden - Can only access own bookings")
	}

	return &booking, nil
}

// Create validates the proposed booking, then atomically re-checks the
// business rules, inserts the booking as pending, and reconciles the room
// status.
func (s *BookingService) Create(userID uint, req *dto.BookingCreateRequest, now time.Time) (*models.Booking, error) {
	start, end, err := validator.ValidateBookingCreate(req, now)
	if err != nil {
		return nil, err
	}

	booking := &models.Booking{
		UserID:    userID,
		RoomID:    req.RoomID,
		StartTime: start,
		EndTime:   end,
		Purpose:   req.Purpose,
		Status:    constants.BookingStatusPending,
	}

	var roomStatus string
	txErr := s.transaction(func(tx *gorm.DB) error {
		var room models.Room
		if err := tx.First(&room, req.RoomID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NotFound("Room not found")
			}
			return err
		}

		if room.Status == constants.RoomStatusMaintenance {
			return apperrors.Conflict("Room is under maintenance and cannot be booked")
		}

		// One active booking per user, system-wide.
		var activeCount int64
		err := tx.Model(&models.Booking{}).
			Where("user_id = ? AND status IN ?", userID, constants.ActiveBookingStatuses()).
			Count(&activeCount).Error
		if err != nil {
			return err
		}
		if activeCount > 0 {
			return apperrors.Conflict("You already have an active booking. Please cancel or complete it before making a new booking.")
		}

		conflict, err := s.conflictExists(tx, req.RoomID, start, end, 0)
		if err != nil {
			return err
		}
		if conflict {
			return errRoomBooked()
		}

		if err := tx.Create(booking).Error; err != nil {
			if isExclusionViolation(err) {
				return errRoomBooked()
			}
			return err
		}

		roomStatus, err = ReconcileRoomStatus(tx, req.RoomID)
		return err
	})
	if txErr != nil {
		return nil, txErr
	}

	s.log.Info("booking %d created for room %d (%s - %s)", booking.ID, booking.RoomID, start, end)
	s.notifyRoom(booking.RoomID, roomStatus)
	s.invalidateCaches(userID)

	return s.reload(booking.ID)
}

// Update applies a status transition and/or, while the booking is still
// pending, changes to its time and purpose.
func (s *BookingService) Update(userID, id uint, req *dto.BookingUpdateRequest, now time.Time) (*models.Booking, error) {
	var roomID uint
	var roomStatus string

	txErr := s.transaction(func(tx *gorm.DB) error {
		var booking models.Booking
		if err := tx.First(&booking, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NotFound("Booking not found")
			}
			return err
		}

		if booking.UserID != userID {
			return apperrors.Forbidden("Forbidden - Can only modify own bookings")
		}

		roomID = booking.RoomID
		originalStatus := booking.Status
		updates := map[string]interface{}{}

		if req.Status != nil {
			target := *req.Status
			if !constants.IsBookingStatus(target) {
				return apperrors.Validation("Invalid status value")
			}

			// A terminal booking rejects any requested status, including a
			// repeat of its current one.
			if booking.Terminal() {
				return stateError(models.ErrTerminalBooking)
			}

			if target != originalStatus {
				state := models.GetBookingState(originalStatus)
				var terr error
				switch target {
				case constants.BookingStatusConfirmed:
					terr = state.Confirm(&booking)
				case constants.BookingStatusCancelled:
					terr = state.Cancel(&booking)
				case constants.BookingStatusCompleted:
					terr = state.Complete(&booking)
				case constants.BookingStatusPending:
					terr = errors.New("cannot revert a booking to pending")
				}
				if terr != nil {
					return stateError(terr)
				}
				updates["status"] = booking.Status
			}
		}

		if req.StartTime != nil || req.EndTime != nil || req.Purpose != nil {
			// Mutable-field rule: time and purpose are frozen once the
			// booking leaves pending.
			if originalStatus != constants.BookingStatusPending {
				return apperrors.State("Can only modify time and purpose for pending bookings")
			}

			timeChanged := false

			if req.StartTime != nil {
				start, err := validator.ParseTimestamp(*req.StartTime)
				if err != nil {
					return apperrors.NewAppError(apperrors.ErrCodeInvalidFormat, "Invalid start time format", nil)
				}
				if start.Before(now) {
					return apperrors.Validation("Start time cannot be in the past")
				}
				booking.StartTime = start
				updates["start_time"] = start
				timeChanged = true
			}

			if req.EndTime != nil {
				end, err := validator.ParseTimestamp(*req.EndTime)
				if err != nil {
					return apperrors.NewAppError(apperrors.ErrCodeInvalidFormat, "Invalid end time format", nil)
				}
				booking.EndTime = end
				updates["end_time"] = end
				timeChanged = true
			}

			if req.Purpose != nil {
				if *req.Purpose == "" || len(*req.Purpose) > 200 {
					return apperrors.Validation("Purpose is required and must be 200 characters or less")
				}
				booking.Purpose = *req.Purpose
				updates["purpose"] = *req.Purpose
			}

			if timeChanged {
				if !booking.StartTime.Before(booking.EndTime) {
					return apperrors.Validation("Start time must be before end time")
				}

				conflict, err := s.conflictExists(tx, booking.RoomID, booking.StartTime, booking.EndTime, booking.ID)
				if err != nil {
					return err
				}
				if conflict {
					return errRoomBooked()
				}
			}
		}

		if len(updates) > 0 {
			err := tx.Model(&models.Booking{}).Where("id = ?", booking.ID).Updates(updates).Error
			if err != nil {
				if isExclusionViolation(err) {
					return errRoomBooked()
				}
				return err
			}
		}

		var err error
		roomStatus, err = ReconcileRoomStatus(tx, booking.RoomID)
		return err
	})
	if txErr != nil {
		return nil, txErr
	}

	s.notifyRoom(roomID, roomStatus)
	s.invalidateCaches(userID)
	return s.reload(id)
}

// Delete removes a pending or cancelled booking. Confirmed bookings must be
// cancelled first so the status history stays explicit.
func (s *BookingService) Delete(userID, id uint) error {
	var roomID uint
	var roomStatus string

	txErr := s.transaction(func(tx *gorm.DB) error {
		var booking models.Booking
		if err := tx.First(&booking, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NotFound("Booking not found")
			}
			return err
		}

		if booking.UserID != userID {
			return apperrors.Forbidden("Forbidden - Can only delete own bookings")
		}

		if booking.Status == constants.BookingStatusConfirmed || booking.Status == constants.BookingStatusCompleted {
			return apperrors.State("Cannot delete a confirmed or completed booking. Please cancel it first.")
		}

		roomID = booking.RoomID

		if err := tx.Delete(&models.Booking{}, booking.ID).Error; err != nil {
			return err
		}

		var err error
		roomStatus, err = ReconcileRoomStatus(tx, booking.RoomID)
		return err
	})
	if txErr != nil {
		return txErr
	}

	s.notifyRoom(roomID, roomStatus)
	s.invalidateCaches(userID)
	return nil
}

// CompleteExpired moves confirmed bookings whose end time has passed into
// completed and reconciles the affected rooms. Run by the cron sweeper.
func (s *BookingService) CompleteExpired(now time.Time) (int, error) {
	var expired []models.Booking
	err := s.db.
		Where("status = ? AND end_time <= ?", constants.BookingStatusConfirmed, now).
		Find(&expired).Error
	if err != nil {
		return 0, err
	}

	completed := 0
	for _, booking := range expired {
		b := booking
		var roomStatus string
		txErr := s.transaction(func(tx *gorm.DB) error {
			state := models.GetBookingState(b.Status)
			if err := state.Complete(&b); err != nil {
				return stateError(err)
			}
			err := tx.Model(&models.Booking{}).Where("id = ?", b.ID).
				Update("status", constants.BookingStatusCompleted).Error
			if err != nil {
				return err
			}
			roomStatus, err = ReconcileRoomStatus(tx, b.RoomID)
			return err
		})
		if txErr != nil {
			s.log.Error("completing booking %d: %v", b.ID, txErr)
			continue
		}
		s.notifyRoom(b.RoomID, roomStatus)
		s.invalidateCaches(b.UserID)
		completed++
	}

	return completed, nil
}

func (s *BookingService) reload(id uint) (*models.Booking, error) {
	var booking models.Booking
	err := s.db.Preload("Room.Facilities").Preload("User").First(&booking, id).Error
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func stateError(err error) error {
	if errors.Is(err, models.ErrTerminalBooking) {
		return apperrors.State("Cannot modify a cancelled or completed booking")
	}
	return apperrors.State("Invalid status transition: " + err.Error())
}

func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}
	return page, limit
}
