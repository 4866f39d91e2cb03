package services

import (
	"testing"

	"github.com/ahmadnzr/fintrack-by-ai/constants"
	"github.com/ahmadnzr/fintrack-by-ai/dto"
	apperrors "github.com/ahmadnzr/fintrack-by-ai/errors"
	"github.com/ahmadnzr/fintrack-by-ai/models"
)

func setupTransactionTest(t *testing.T) (*TransactionService, *models.User, *models.Category) {
	t.Helper()
	db := newTestDB(t)
	svc := NewTransactionService(db)
	user := createTestUser(t, db, "alice@example.com")
	category := &models.Category{UserID: user.ID, Name: "Food", Type: constants.TypeExpense, IsCustom: false}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("create category: %v", err)
	}
	return svc, user, category
}

func TestTransactionCreateWithTags(t *testing.T) {
	svc, user, category := setupTransactionTest(t)

	transaction, err := svc.Create(user.ID, &dto.TransactionRequest{
		Date:        "2026-09-01",
		Description: "Groceries",
		Amount:      52.3,
		Category:    category.ID,
		Type:        constants.TypeExpense,
		Tags:        []string{"weekly", "food"},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if len(transaction.Tags) != 2 {
		t.Errorf("tags = %d, want 2", len(transaction.Tags))
	}
	if transaction.Category.Name != "Food" {
		t.Errorf("category not preloaded: %+v", transaction.Category)
	}

	// Reusing a tag name must attach the existing tag, not duplicate it.
	if _, err := svc.Create(user.ID, &dto.TransactionRequest{
		Date: "2026-09-02", Description: "Lunch", Amount: 12,
		Category: category.ID, Type: constants.TypeExpense, Tags: []string{"food"},
	}); err != nil {
		t.Fatalf("second create: %v", err)
	}
	var tagCount int64
	svc.db.Model(&models.Tag{}).Where("user_id = ?", user.ID).Count(&tagCount)
	if tagCount != 2 {
		t.Errorf("tag count = %d, want 2", tagCount)
	}
}

func TestTransactionCreateValidation(t *testing.T) {
	svc, user, category := setupTransactionTest(t)

	_, err := svc.Create(user.ID, &dto.TransactionRequest{})
	wantAppError(t, err, apperrors.ErrCodeRequiredField, "All required fields must be provided")

	_, err = svc.Create(user.ID, &dto.TransactionRequest{
		Date: "2026-09-01", Description: "x", Amount: 5, Category: 999, Type: constants.TypeExpense,
	})
	wantAppError(t, err, apperrors.ErrCodeValidation, "Invalid category")

	other := createTestUser(t, svc.db, "bob@example.com")
	_, err = svc.Create(other.ID, &dto.TransactionRequest{
		Date: "2026-09-01", Description: "x", Amount: 5, Category: category.ID, Type: constants.TypeExpense,
	})
	wantAppError(t, err, apperrors.ErrCodeValidation, "Invalid category")
}

func TestTransactionUpdateReplacesTags(t *testing.T) {
	svc, user, category := setupTransactionTest(t)

	transaction, err := svc.Create(user.ID, &dto.TransactionRequest{
		Date: "2026-09-01", Description: "Groceries", Amount: 52.3,
		Category: category.ID, Type: constants.TypeExpense, Tags: []string{"weekly"},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	updated, err := svc.Update(user.ID, transaction.ID, &dto.TransactionRequest{
		Date: "2026-09-01", Description: "Groceries and snacks", Amount: 60,
		Category: category.ID, Type: constants.TypeExpense, Tags: []string{"monthly"},
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Description != "Groceries and snacks" || updated.Amount != 60 {
		t.Errorf("fields not updated: %+v", updated)
	}
	if len(updated.Tags) != 1 || updated.Tags[0].Name != "monthly" {
		t.Errorf("tags not replaced: %+v", updated.Tags)
	}
}

func TestTransactionDeleteAndOwnership(t *testing.T) {
	svc, user, category := setupTransactionTest(t)
	other := createTestUser(t, svc.db, "bob@example.com")

	transaction, err := svc.Create(user.ID, &dto.TransactionRequest{
		Date: "2026-09-01", Description: "Groceries", Amount: 52.3,
		Category: category.ID, Type: constants.TypeExpense,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	err = svc.Delete(other.ID, transaction.ID)
	wantAppError(t, err, apperrors.ErrCodeForbidden, "Forbidden - Can only access own transactions")

	if err := svc.Delete(user.ID, transaction.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	_, err = svc.Get(user.ID, transaction.ID)
	wantAppError(t, err, apperrors.ErrCodeNotFound, "Transaction not found")
}

func TestTransactionListSearch(t *testing.T) {
	svc, user, category := setupTransactionTest(t)

	if _, err := svc.Create(user.ID, &dto.TransactionRequest{
		Date: "2026-09-01", Description: "Coffee beans", Amount: 18,
		Category: category.ID, Type: constants.TypeExpense, Tags: []string{"morning"},
	}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := svc.Create(user.ID, &dto.TransactionRequest{
		Date: "2026-09-02", Description: "Bus ticket", Amount: 3,
		Category: category.ID, Type: constants.TypeExpense,
	}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	tests := []struct {
		name   string
		search string
		want   int
	}{
		{"by description", "coffee", 1},
		{"by tag", "morning", 1},
		{"by category name", "food", 2},
		{"no match", "zzz", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, total, err := svc.List(user.ID, dto.TransactionFilters{Search: tt.search})
			if err != nil {
				t.Fatalf("List: %v", err)
			}
			if int(total) != tt.want {
				t.Errorf("total = %d, want %d", total, tt.want)
			}
		})
	}
}
