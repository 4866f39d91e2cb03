package dto

type InsightResponse struct {
	Insights      string  `json:"insights"`
	TotalIncome   float64 `json:"totalIncome"`
	TotalExpenses float64 `json:"totalExpenses"`
	SavingsRate   float64 `json:"savingsRate"`
}
