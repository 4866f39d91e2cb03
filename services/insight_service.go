package services

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/ahmadnzr/fintrack-by-ai/constants"
	"github.com/ahmadnzr/fintrack-by-ai/dto"
	apperrors "github.com/ahmadnzr/fintrack-by-ai/errors"
	"github.com/ahmadnzr/fintrack-by-ai/models"
	"github.com/ahmadnzr/fintrack-by-ai/services/logger"

	"gorm.io/gorm"
)

const insightWindow = 30 * 24 * time.Hour

// minInsightTransactions is the smallest sample the report is willing to
// draw conclusions from.
const minInsightTransactions = 5

type InsightService struct {
	db  *gorm.DB
	log logger.Logger
}

func NewInsightService(db *gorm.DB, log logger.Logger) *InsightService {
	if log == nil {
		log = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &InsightService{db: db, log: log}
}

// Generate builds the 30-day financial summary for a user. The text is
// deterministic; when an OpenAI key is configured the summary is passed
// through the model for a friendlier phrasing, falling back to the
// deterministic text on any failure.
func (s *InsightService) Generate(userID uint, now time.Time) (*dto.InsightResponse, error) {
	since := now.Add(-insightWindow)

	var transactions []models.Transaction
	err := s.db.Preload("Category").
		Where("user_id = ? AND date >= ?", userID, since).
		Order("date ASC").
		Find(&transactions).Error
	if err != nil {
		return nil, err
	}

	if len(transactions) < minInsightTransactions {
		return nil, apperrors.Validation("Not enough transaction data to generate insights")
	}

	var totalIncome, totalExpenses float64
	expensesByCategory := map[string]float64{}

	for _, t := range transactions {
		switch t.Type {
		case constants.TypeIncome:
			totalIncome += t.Amount
		case constants.TypeExpense:
			totalExpenses += t.Amount
			expensesByCategory[t.Category.Name] += t.Amount
		}
	}

	savingsRate := 0.0
	if totalIncome > 0 {
		savingsRate = (totalIncome - totalExpenses) / totalIncome * 100
	}

	insights := s.buildReport(since, now, totalIncome, totalExpenses, savingsRate, expensesByCategory)

	if phrased, err := ParaphraseInsights(insights); err == nil && phrased != "" {
		insights = phrased
	}

	return &dto.InsightResponse{
		Insights:      insights,
		TotalIncome:   totalIncome,
		TotalExpenses: totalExpenses,
		SavingsRate:   savingsRate,
	}, nil
}

func (s *InsightService) buildReport(from, to time.Time, totalIncome, totalExpenses, savingsRate float64, byCategory map[string]float64) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Financial Insights (%s - %s):\n\n", from.Format("2006-01-02"), to.Format("2006-01-02"))

	fmt.Fprintf(&b, "Overall Summary:\n")
	fmt.Fprintf(&b, "- Total Income: $%.2f\n", totalIncome)
	fmt.Fprintf(&b, "- Total Expenses: $%.2f\n", totalExpenses)
	fmt.Fprintf(&b, "- Net Savings: $%.2f\n\n", totalIncome-totalExpenses)

	fmt.Fprintf(&b, "Savings Rate: %.1f%%\n", savingsRate)
	switch {
	case savingsRate < 10:
		b.WriteString("Your savings rate is low. Consider reducing expenses to increase your savings.\n\n")
	case savingsRate < 20:
		b.WriteString("Your savings rate is good. Keep it up!\n\n")
	default:
		b.WriteString("Your savings rate is excellent! You're on track for financial success.\n\n")
	}

	top := topCategories(byCategory, 3)
	if len(top) > 0 {
		b.WriteString("Top Expense Categories:\n")
		for _, entry := range top {
			share := 0.0
			if totalExpenses > 0 {
				share = entry.amount / totalExpenses * 100
			}
			fmt.Fprintf(&b, "- %s: $%.2f (%.1f%% of expenses)\n", entry.name, entry.amount, share)
		}
	}

	return b.String()
}

type categoryAmount struct {
	name   string
	amount float64
}

func topCategories(byCategory map[string]float64, n int) []categoryAmount {
	entries := make([]categoryAmount, 0, len(byCategory))
	for name, amount := range byCategory {
		entries = append(entries, categoryAmount{name: name, amount: amount})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].amount != entries[j].amount {
			return entries[i].amount > entries[j].amount
		}
		return entries[i].name < entries[j].name
	})
	if len(entries) > n {
		entries = entries[:n]
	}
	return entries
}
