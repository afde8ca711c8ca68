// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/savings-tracker/backend/internal/application/usecase/dashboard"
)

// SummaryResponse represents the dashboard summary in API responses.
type SummaryResponse struct {
	TotalIncome       float64 `json:"total_income"`
	TotalExpense      float64 `json:"total_expense"`
	Balance           float64 `json:"balance"`
	TotalCollected    float64 `json:"total_collected"`
	TotalTargetPrice  float64 `json:"total_target_price"`
	AggregateProgress int64   `json:"aggregate_progress"`
}

// TrendPointResponse represents one month of ledger activity.
type TrendPointResponse struct {
	Period  string  `json:"period"`
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
	Balance float64 `json:"balance"`
}

// MonthlyTrendsResponse represents the response for monthly trends.
type MonthlyTrendsResponse struct {
	Trends []TrendPointResponse `json:"trends"`
}

// ToSummaryResponse converts a GetSummaryOutput to a SummaryResponse DTO.
func ToSummaryResponse(output *dashboard.GetSummaryOutput) SummaryResponse {
	return SummaryResponse{
		TotalIncome:       output.TotalIncome.InexactFloat64(),
		TotalExpense:      output.TotalExpense.InexactFloat64(),
		Balance:           output.Balance.InexactFloat64(),
		TotalCollected:    output.TotalCollected.InexactFloat64(),
		TotalTargetPrice:  output.TotalTargetPrice.InexactFloat64(),
		AggregateProgress: output.AggregateProgress,
	}
}

// ToMonthlyTrendsResponse converts a GetMonthlyTrendsOutput to a MonthlyTrendsResponse DTO.
func ToMonthlyTrendsResponse(output *dashboard.GetMonthlyTrendsOutput) MonthlyTrendsResponse {
	trends := make([]TrendPointResponse, len(output.Trends))
	for i, point := range output.Trends {
		trends[i] = TrendPointResponse{
			Period:  point.PeriodLabel,
			Income:  point.Income.InexactFloat64(),
			Expense: point.Expense.InexactFloat64(),
			Balance: point.Balance.InexactFloat64(),
		}
	}
	return MonthlyTrendsResponse{
		Trends: trends,
	}
}
