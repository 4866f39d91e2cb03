package services

import (
	"errors"

	"github.com/ahmadnzr/fintrack-by-ai/dto"
	apperrors "github.com/ahmadnzr/fintrack-by-ai/errors"
	"github.com/ahmadnzr/fintrack-by-ai/models"
	"github.com/ahmadnzr/fintrack-by-ai/validator"

	"gorm.io/gorm"
)

type FacilityService struct {
	db *gorm.DB
}

func NewFacilityService(db *gorm.DB) *FacilityService {
	return &FacilityService{db: db}
}

func (s *FacilityService) List(search string) ([]models.Facility, error) {
	q := s.db.Model(&models.Facility{})
	if search != "" {
		q = q.Where("lower(name) LIKE lower(?)", "%"+search+"%")
	}

	var facilities []models.Facility
	if err := q.Order("name ASC").Find(&facilities).Error; err != nil {
		return nil, err
	}
	return facilities, nil
}

func (s *FacilityService) Get(id uint) (*models.Facility, error) {
	var facility models.Facility
	if err := s.db.First(&facility, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Facility not found")
		}
		return nil, err
	}
	return &facility, nil
}

func (s *FacilityService) Create(req *dto.FacilityRequest) (*models.Facility, error) {
	if err := validator.ValidateFacility(req); err != nil {
		return nil, err
	}

	var count int64
	if err := s.db.Model(&models.Facility{}).Where("name = ?", req.Name).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, apperrors.Conflict("A facility with this name already exists")
	}

	facility := &models.Facility{
		Name:        req.Name,
		Description: req.Description,
		Icon:        req.Icon,
	}
	if err := s.db.Create(facility).Error; err != nil {
		return nil, err
	}
	return facility, nil
}

func (s *FacilityService) Update(id uint, req *dto.FacilityRequest) (*models.Facility, error) {
	facility, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if err := validator.ValidateFacility(req); err != nil {
		return nil, err
	}

	var count int64
	if err := s.db.Model(&models.Facility{}).Where("name = ? AND id <> ?", req.Name, id).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, apperrors.Conflict("A facility with this name already exists")
	}

	facility.Name = req.Name
	facility.Description = req.Description
	facility.Icon = req.Icon
	if err := s.db.Save(facility).Error; err != nil {
		return nil, err
	}
	return facility, nil
}

func (s *FacilityService) Delete(id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}

	var assigned int64
	err := s.db.Table("room_facilities").Where("facility_id = ?", id).Count(&assigned).Error
	if err != nil {
		return err
	}
	if assigned > 0 {
		return apperrors.Conflict("Cannot delete a facility that is assigned to rooms")
	}

	return s.db.Delete(&models.Facility{}, id).Error
}
