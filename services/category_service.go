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

type CategoryService struct {
	db *gorm.DB
}

func NewCategoryService(db *gorm.DB) *CategoryService {
	return &CategoryService{db: db}
}

type CategoryFilters struct {
	Type     string
	IsCustom *bool
	Search   string
}

func (s *CategoryService) List(userID uint, f CategoryFilters) ([]models.Category, error) {
	q := s.db.Where("user_id = ?", userID)

	if f.Type != "" {
		q = q.Where("type = ?", f.Type)
	}
	if f.IsCustom != nil {
		q = q.Where("is_custom = ?", *f.IsCustom)
	}
	if f.Search != "" {
		q = q.Where("lower(name) LIKE lower(?)", "%"+f.Search+"%")
	}

	var categories []models.Category
	if err := q.Order("type ASC, name ASC").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (s *CategoryService) Get(userID, id uint) (*models.Category, error) {
	var category models.Category
	if err := s.db.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Category not found")
		}
		return nil, err
	}
	if category.UserID != userID {
		return nil, apperrors.Forbidden("Forbidden - Can only access own categories")
	}
	return &category, nil
}

func (s *CategoryService) Create(userID uint, req *dto.CategoryRequest) (*models.Category, error) {
	if err := validator.ValidateCategory(req); err != nil {
		return nil, err
	}

	var count int64
	err := s.db.Model(&models.Category{}).
		Where("user_id = ? AND name = ? AND type = ?", userID, req.Name, req.Type).
		Count(&count).Error
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, apperrors.Conflict("A category with this name and type already exists")
	}

	category := &models.Category{
		UserID:   userID,
		Name:     req.Name,
		Type:     req.Type,
		IsCustom: true,
		Icon:     req.Icon,
	}
	if err := s.db.Create(category).Error; err != nil {
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) Update(userID, id uint, req *dto.CategoryRequest) (*models.Category, error) {
	category, err := s.Get(userID, id)
	if err != nil {
		return nil, err
	}

	if err := validator.ValidateCategory(req); err != nil {
		return nil, err
	}

	var count int64
	err = s.db.Model(&models.Category{}).
		Where("user_id = ? AND name = ? AND type = ? AND id <> ?", userID, req.Name, req.Type, id).
		Count(&count).Error
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, apperrors.Conflict("A category with this name and type already exists")
	}

	category.Name = req.Name
	category.Type = req.Type
	category.Icon = req.Icon
	if err := s.db.Save(category).Error; err != nil {
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) Delete(userID, id uint) error {
	category, err := s.Get(userID, id)
	if err != nil {
		return err
	}

	if !category.IsCustom {
		return apperrors.Conflict("Default categories cannot be deleted")
	}

	var inUse int64
	err = s.db.Model(&models.Transaction{}).Where("category_id = ?", id).Count(&inUse).Error
	if err != nil {
		return err
	}
	if inUse > 0 {
		return apperrors.Conflict("Cannot delete a category that has transactions")
	}

	return s.db.Delete(&models.Category{}, id).Error
}

// SeedDefaults creates the built-in category set for a new user.
func (s *CategoryService) SeedDefaults(tx *gorm.DB, userID uint) error {
	type seed struct {
		name string
		typ  string
		icon string
	}

	seeds := []seed{
		{"Salary", constants.TypeIncome, "💰"},
		{"Freelance", constants.TypeIncome, "💻"},
		{"Investments", constants.TypeIncome, "📈"},
		{"Gifts", constants.TypeIncome, "🎁"},
		{"Other Income", constants.TypeIncome, "💵"},
		{"Food & Dining", constants.TypeExpense, "🍔"},
		{"Transportation", constants.TypeExpense, "🚗"},
		{"Housing", constants.TypeExpense, "🏠"},
		{"Utilities", constants.TypeExpense, "💡"},
		{"Entertainment", constants.TypeExpense, "🎬"},
		{"Shopping", constants.TypeExpense, "🛍️"},
		{"Health", constants.TypeExpense, "🏥"},
		{"Education", constants.TypeExpense, "📚"},
		{"Travel", constants.TypeExpense, "✈️"},
		{"Other Expenses", constants.TypeExpense, "📝"},
		{"Transfers", constants.TypeGeneral, "🔄"},
		{"Uncategorized", constants.TypeGeneral, "❓"},
	}

	categories := make([]models.Category, 0, len(seeds))
	for _, sd := range seeds {
		categories = append(categories, models.Category{
			UserID:   userID,
			Name:     sd.name,
			Type:     sd.typ,
			IsCustom: false,
			Icon:     sd.icon,
		})
	}

	return tx.Create(&categories).Error
}
