package services

import (
	"errors"

	"github.com/ahmadnzr/fintrack-by-ai/dto"
	apperrors "github.com/ahmadnzr/fintrack-by-ai/errors"
	"github.com/ahmadnzr/fintrack-by-ai/models"
	"github.com/ahmadnzr/fintrack-by-ai/validator"

	"gorm.io/gorm"
)

type TransactionService struct {
	db *gorm.DB
}

func NewTransactionService(db *gorm.DB) *TransactionService {
	return &TransactionService{db: db}
}

func (s *TransactionService) List(userID uint, f dto.TransactionFilters) ([]models.Transaction, int64, error) {
	q := s.db.Model(&models.Transaction{}).Where("transactions.user_id = ?", userID)

	if f.Type != "" {
		q = q.Where("transactions.type = ?", f.Type)
	}
	if f.Category != 0 {
		q = q.Where("transactions.category_id = ?", f.Category)
	}
	if f.Search != "" {
		pattern := "%" + f.Search + "%"
		q = q.Where(
			`lower(transactions.description) LIKE lower(?)
			OR transactions.category_id IN (SELECT id FROM categories WHERE lower(name) LIKE lower(?))
			OR transactions.id IN (
				SELECT transaction_id FROM transaction_tags
				JOIN tags ON tags.id = transaction_tags.tag_id
				WHERE lower(tags.name) LIKE lower(?)
			)`,
			pattern, pattern, pattern)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page, limit := normalizePage(f.Page, f.Limit)

	var transactions []models.Transaction
	err := q.Preload("Category").Preload("Tags").
		Order("date DESC").
		Offset((page - 1) * limit).Limit(limit).
		Find(&transactions).Error
	if err != nil {
		return nil, 0, err
	}

	return transactions, total, nil
}

func (s *TransactionService) Get(userID, id uint) (*models.Transaction, error) {
	var transaction models.Transaction
	err := s.db.Preload("Category").Preload("Tags").First(&transaction, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Transaction not found")
		}
		return nil, err
	}
	if transaction.UserID != userID {
		return nil, apperrors.Forbidden("Forbidden - Can only access own transactions")
	}
	return &transaction, nil
}

func (s *TransactionService) Create(userID uint, req *dto.TransactionRequest) (*models.Transaction, error) {
	date, err := validator.ValidateTransaction(req)
	if err != nil {
		return nil, err
	}

	// The category must exist and belong to the requesting user.
	var category models.Category
	err = s.db.Where("id = ? AND user_id = ?", req.Category, userID).First(&category).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.Validation("Invalid category")
		}
		return nil, err
	}

	transaction := &models.Transaction{
		UserID:        userID,
		Date:          date,
		Description:   req.Description,
		Amount:        req.Amount,
		CategoryID:    req.Category,
		Type:          req.Type,
		AttachmentURL: req.AttachmentURL,
	}

	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(transaction).Error; err != nil {
			return err
		}

		tags, err := s.findOrCreateTags(tx, userID, req.Tags)
		if err != nil {
			return err
		}
		if len(tags) > 0 {
			return tx.Model(transaction).Association("Tags").Append(tags)
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	return s.Get(userID, transaction.ID)
}

func (s *TransactionService) Update(userID, id uint, req *dto.TransactionRequest) (*models.Transaction, error) {
	transaction, err := s.Get(userID, id)
	if err != nil {
		return nil, err
	}

	date, err := validator.ValidateTransaction(req)
	if err != nil {
		return nil, err
	}

	var category models.Category
	err = s.db.Where("id = ? AND user_id = ?", req.Category, userID).First(&category).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.Validation("Invalid category")
		}
		return nil, err
	}

	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&models.Transaction{}).Where("id = ?", id).Updates(map[string]interface{}{
			"date":           date,
			"description":    req.Description,
			"amount":         req.Amount,
			"category_id":    req.Category,
			"type":           req.Type,
			"attachment_url": req.AttachmentURL,
		}).Error
		if err != nil {
			return err
		}

		tags, err := s.findOrCreateTags(tx, userID, req.Tags)
		if err != nil {
			return err
		}
		return tx.Model(transaction).Association("Tags").Replace(tags)
	})
	if txErr != nil {
		return nil, txErr
	}

	return s.Get(userID, id)
}

func (s *TransactionService) Delete(userID, id uint) error {
	transaction, err := s.Get(userID, id)
	if err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(transaction).Association("Tags").Clear(); err != nil {
			return err
		}
		return tx.Delete(&models.Transaction{}, id).Error
	})
}

func (s *TransactionService) findOrCreateTags(tx *gorm.DB, userID uint, names []string) ([]models.Tag, error) {
	tags := make([]models.Tag, 0, len(names))
	for _, name := range names {
		if name == "" {
			continue
		}

		var tag models.Tag
		err := tx.Where("user_id = ? AND name = ?", userID, name).First(&tag).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			tag = models.Tag{UserID: userID, Name: name}
			err = tx.Create(&tag).Error
		}
		if err != nil {
			return nil, err
		}
		tags = append(tags, tag)
	}
	return tags, nil
}
