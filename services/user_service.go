package services

import (
	"errors"

	"github.com/ahmadnzr/fintrack-by-ai/constants"
	"github.com/ahmadnzr/fintrack-by-ai/dto"
	apperrors "github.com/ahmadnzr/fintrack-by-ai/errors"
	"github.com/ahmadnzr/fintrack-by-ai/models"
	"github.com/ahmadnzr/fintrack-by-ai/services/logger"
	"github.com/ahmadnzr/fintrack-by-ai/validator"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserService struct {
	db         *gorm.DB
	log        logger.Logger
	categories *CategoryService
}

func NewUserService(db *gorm.DB, log logger.Logger) *UserService {
	if log == nil {
		log = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &UserService{db: db, log: log, categories: NewCategoryService(db)}
}

// Register creates the user together with default settings and the seeded
// category set, and returns a signed token.
func (s *UserService) Register(req *dto.RegisterRequest) (*models.User, string, error) {
	if err := validator.ValidateRegister(req); err != nil {
		return nil, "", err
	}

	var count int64
	if err := s.db.Model(&models.User{}).Where("email = ?", req.Email).Count(&count).Error; err != nil {
		return nil, "", err
	}
	if count > 0 {
		return nil, "", apperrors.Conflict("User with this email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", apperrors.Internal(err)
	}

	user := &models.User{
		Email:        req.Email,
		Name:         req.Name,
		PasswordHash: string(hash),
	}

	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}

		settings := &models.UserSettings{
			UserID:   user.ID,
			Theme:    constants.DefaultTheme,
			Language: constants.DefaultLanguage,
		}
		if err := tx.Create(settings).Error; err != nil {
			return err
		}

		return s.categories.SeedDefaults(tx, user.ID)
	})
	if txErr != nil {
		return nil, "", txErr
	}

	token, err := GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, "", err
	}

	s.log.Info("registered user %d (%s)", user.ID, user.Email)
	return user, token, nil
}

// Login verifies the credentials and returns a signed token.
func (s *UserService) Login(req *dto.LoginRequest) (*models.User, string, error) {
	if req.Email == "" || req.Password == "" {
		return nil, "", apperrors.NewAppError(apperrors.ErrCodeRequiredField, "Email and password are required", nil)
	}

	var user models.User
	err := s.db.Where("email = ?", req.Email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", apperrors.NewAppError(apperrors.ErrCodeUnauthorized, "Invalid email or password", nil)
		}
		return nil, "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return nil, "", apperrors.NewAppError(apperrors.ErrCodeUnauthorized, "Invalid email or password", nil)
	}

	token, err := GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, "", err
	}

	return &user, token, nil
}

// GetSettings returns the user's settings, creating defaults on first read.
func (s *UserService) GetSettings(userID uint) (*models.UserSettings, error) {
	var settings models.UserSettings
	err := s.db.Where("user_id = ?", userID).First(&settings).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		settings = models.UserSettings{
			UserID:   userID,
			Theme:    constants.DefaultTheme,
			Language: constants.DefaultLanguage,
		}
		err = s.db.Create(&settings).Error
	}
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

// UpdateSettings validates and upserts the user's settings.
func (s *UserService) UpdateSettings(userID uint, req *dto.UpdateSettingsRequest) (*models.UserSettings, error) {
	if err := validator.ValidateSettings(req); err != nil {
		return nil, err
	}

	settings, err := s.GetSettings(userID)
	if err != nil {
		return nil, err
	}

	if req.Theme != "" {
		settings.Theme = req.Theme
	}
	if req.Language != "" {
		settings.Language = req.Language
	}

	if err := s.db.Save(settings).Error; err != nil {
		return nil, err
	}
	return settings, nil
}
