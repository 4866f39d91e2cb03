package services

import (
	"strings"
	"testing"
	"time"

	"github.com/ahmadnzr/fintrack-by-ai/constants"
	apperrors "github.com/ahmadnzr/fintrack-by-ai/errors"
	"github.com/ahmadnzr/fintrack-by-ai/models"

	"gorm.io/gorm"
)

func seedInsightData(t *testing.T, db *gorm.DB, userID uint, now time.Time) {
	t.Helper()

	salary := &models.Category{UserID: userID, Name: "Salary", Type: constants.TypeIncome}
	food := &models.Category{UserID: userID, Name: "Food", Type: constants.TypeExpense}
	rent := &models.Category{UserID: userID, Name: "Housing", Type: constants.TypeExpense}
	for _, c := range []*models.Category{salary, food, rent} {
		if err := db.Create(c).Error; err != nil {
			t.Fatalf("create category: %v", err)
		}
	}

	rows := []models.Transaction{
		{UserID: userID, CategoryID: salary.ID, Type: constants.TypeIncome, Amount: 3000, Description: "Paycheck", Date: now.AddDate(0, 0, -20)},
		{UserID: userID, CategoryID: food.ID, Type: constants.TypeExpense, Amount: 200, Description: "Groceries", Date: now.AddDate(0, 0, -15)},
		{UserID: userID, CategoryID: food.ID, Type: constants.TypeExpense, Amount: 100, Description: "Dining", Date: now.AddDate(0, 0, -10)},
		{UserID: userID, CategoryID: rent.ID, Type: constants.TypeExpense, Amount: 1200, Description: "Rent", Date: now.AddDate(0, 0, -5)},
		{UserID: userID, CategoryID: food.ID, Type: constants.TypeExpense, Amount: 50, Description: "Snacks", Date: now.AddDate(0, 0, -2)},
	}
	if err := db.Create(&rows).Error; err != nil {
		t.Fatalf("create transactions: %v", err)
	}
}

func TestInsightGenerate(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")

	db := newTestDB(t)
	svc := NewInsightService(db, nil)
	user := createTestUser(t, db, "alice@example.com")
	now := mustTime(t, "2026-09-01T08:00:00Z")

	seedInsightData(t, db, user.ID, now)

	result, err := svc.Generate(user.ID, now)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if result.TotalIncome != 3000 {
		t.Errorf("total income = %.2f, want 3000", result.TotalIncome)
	}
	if result.TotalExpenses != 1550 {
		t.Errorf("total expenses = %.2f, want 1550", result.TotalExpenses)
	}
	wantRate := (3000.0 - 1550.0) / 3000.0 * 100
	if result.SavingsRate < wantRate-0.01 || result.SavingsRate > wantRate+0.01 {
		t.Errorf("savings rate = %.2f, want %.2f", result.SavingsRate, wantRate)
	}

	for _, fragment := range []string{
		"Financial Insights",
		"Overall Summary:",
		"Total Income: $3000.00",
		"Total Expenses: $1550.00",
		"Top Expense Categories:",
		"Housing: $1200.00",
	} {
		if !strings.Contains(result.Insights, fragment) {
			t.Errorf("report missing %q:\n%s", fragment, result.Insights)
		}
	}

	// Housing outranks Food in the category breakdown.
	if strings.Index(result.Insights, "Housing") > strings.Index(result.Insights, "Food") {
		t.Error("top categories not ordered by amount")
	}
}

func TestInsightGenerateNotEnoughData(t *testing.T) {
	db := newTestDB(t)
	svc := NewInsightService(db, nil)
	user := createTestUser(t, db, "alice@example.com")
	now := mustTime(t, "2026-09-01T08:00:00Z")

	_, err := svc.Generate(user.ID, now)
	wantAppError(t, err, apperrors.ErrCodeValidation, "Not enough transaction data to generate insights")
}

func TestInsightIgnoresOldTransactions(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")

	db := newTestDB(t)
	svc := NewInsightService(db, nil)
	user := createTestUser(t, db, "alice@example.com")
	now := mustTime(t, "2026-09-01T08:00:00Z")

	seedInsightData(t, db, user.ID, now)

	// Outside the 30-day window; must not shift the totals.
	old := &models.Category{UserID: user.ID, Name: "Bonus", Type: constants.TypeIncome}
	if err := db.Create(old).Error; err != nil {
		t.Fatalf("create category: %v", err)
	}
	stale := models.Transaction{
		UserID: user.ID, CategoryID: old.ID, Type: constants.TypeIncome,
		Amount: 9999, Description: "Old bonus", Date: now.AddDate(0, 0, -45),
	}
	if err := db.Create(&stale).Error; err != nil {
		t.Fatalf("create transaction: %v", err)
	}

	result, err := svc.Generate(user.ID, now)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if result.TotalIncome != 3000 {
		t.Errorf("total income = %.2f, old transaction leaked into window", result.TotalIncome)
	}
}
