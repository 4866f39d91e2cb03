package services

import (
	"errors"

	"github.com/ahmadnzr/fintrack-by-ai/constants"
	"github.com/ahmadnzr/fintrack-by-ai/dto"
	apperrors "github.com/ahmadnzr/fintrack-by-ai/errors"
	"github.com/ahmadnzr/fintrack-by-ai/models"
	"github.com/ahmadnzr/fintrack-by-ai/validator"

	"gorm.io/gorm"
)

type RoomService struct {
	db       *gorm.DB
	notifier RoomStatusNotifier
}

func NewRoomService(db *gorm.DB, notifier RoomStatusNotifier) *RoomService {
	return &RoomService{db: db, notifier: notifier}
}

// List trả về danh sách phòng theo filter. When a search matches nothing,
// the closest room name is returned as a suggestion.
func (s *RoomService) List(f dto.RoomFilters) ([]models.Room, int64, string, error) {
	q := s.db.Model(&models.Room{})

	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.MinCapacity > 0 {
		q = q.Where("capacity >= ?", f.MinCapacity)
	}
	if len(f.FacilityIDs) > 0 {
		q = q.Where("id IN (SELECT room_id FROM room_facilities WHERE facility_id IN ?)", f.FacilityIDs)
	}
	if f.Search != "" {
		pattern := "%" + f.Search + "%"
		q = q.Where("lower(name) LIKE lower(?) OR lower(location) LIKE lower(?)", pattern, pattern)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, "", err
	}

	page, limit := normalizePage(f.Page, f.Limit)

	var rooms []models.Room
	err := q.Preload("Facilities").
		Order("name ASC").
		Offset((page - 1) * limit).Limit(limit).
		Find(&rooms).Error
	if err != nil {
		return nil, 0, "", err
	}

	suggestion := ""
	if f.Search != "" && total == 0 {
		var names []string
		if err := s.db.Model(&models.Room{}).Pluck("name", &names).Error; err == nil {
			suggestion = SuggestClosestName(f.Search, names)
		}
	}

	return rooms, total, suggestion, nil
}

func (s *RoomService) Get(id uint) (*models.Room, error) {
	var room models.Room
	if err := s.db.Preload("Facilities").First(&room, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Room not found")
		}
		return nil, err
	}
	return &room, nil
}

func (s *RoomService) Create(req *dto.RoomRequest) (*models.Room, error) {
	if err := validator.ValidateRoom(req); err != nil {
		return nil, err
	}

	var count int64
	if err := s.db.Model(&models.Room{}).Where("name = ?", req.Name).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, apperrors.Conflict("A room with this name already exists")
	}

	facilities, err := s.resolveFacilities(req.FacilityIDs)
	if err != nil {
		return nil, err
	}

	room := &models.Room{
		Name:        req.Name,
		Description: req.Description,
		Capacity:    req.Capacity,
		Location:    req.Location,
		Status:      constants.RoomStatusAvailable,
		Facilities:  facilities,
	}

	if err := s.db.Create(room).Error; err != nil {
		return nil, err
	}

	return s.Get(room.ID)
}

func (s *RoomService) Update(id uint, req *dto.RoomRequest) (*models.Room, error) {
	room, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if err := validator.ValidateRoom(req); err != nil {
		return nil, err
	}

	var count int64
	if err := s.db.Model(&models.Room{}).Where("name = ? AND id <> ?", req.Name, id).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, apperrors.Conflict("A room with this name already exists")
	}

	facilities, err := s.resolveFacilities(req.FacilityIDs)
	if err != nil {
		return nil, err
	}

	// Field updates and the facility set swap must land together.
	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&models.Room{}).Where("id = ?", id).Updates(map[string]interface{}{
			"name":        req.Name,
			"description": req.Description,
			"capacity":    req.Capacity,
			"location":    req.Location,
		}).Error
		if err != nil {
			return err
		}
		return tx.Model(room).Association("Facilities").Replace(facilities)
	})
	if txErr != nil {
		return nil, txErr
	}

	return s.Get(id)
}

func (s *RoomService) Delete(id uint) error {
	room, err := s.Get(id)
	if err != nil {
		return err
	}

	var active int64
	err = s.db.Model(&models.Booking{}).
		Where("room_id = ? AND status IN ?", id, constants.ActiveBookingStatuses()).
		Count(&active).Error
	if err != nil {
		return err
	}
	if active > 0 {
		return apperrors.Conflict("Cannot delete a room with active bookings")
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(room).Association("Facilities").Clear(); err != nil {
			return err
		}
		return tx.Delete(&models.Room{}, id).Error
	})
}

// SetStatus is the administrative maintenance toggle. Only "maintenance"
// and "available" may be requested; "booked" is always derived. Taking a
// room out of maintenance re-runs the reconciler, so a room with active
// bookings comes back as booked, not available.
func (s *RoomService) SetStatus(id uint, status string) (*models.Room, error) {
	if status != constants.RoomStatusMaintenance && status != constants.RoomStatusAvailable {
		return nil, apperrors.Validation("Invalid status value")
	}

	if _, err := s.Get(id); err != nil {
		return nil, err
	}

	var finalStatus string
	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Room{}).Where("id = ?", id).Update("status", status).Error; err != nil {
			return err
		}
		if status == constants.RoomStatusMaintenance {
			finalStatus = status
			return nil
		}
		var err error
		finalStatus, err = ReconcileRoomStatus(tx, id)
		return err
	})
	if txErr != nil {
		return nil, txErr
	}

	if s.notifier != nil {
		s.notifier.NotifyRoomStatus(id, finalStatus)
	}

	return s.Get(id)
}

func (s *RoomService) resolveFacilities(ids []uint) ([]models.Facility, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var facilities []models.Facility
	if err := s.db.Where("id IN ?", ids).Find(&facilities).Error; err != nil {
		return nil, err
	}
	if len(facilities) != len(ids) {
		return nil, apperrors.Validation("One or more facility IDs are invalid")
	}
	return facilities, nil
}
