// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/savings-tracker/backend/internal/application/adapter"
	"github.com/savings-tracker/backend/internal/domain/entity"
)

// MaxTrendMonths is the maximum number of monthly buckets returned.
const MaxTrendMonths = 6

// GetMonthlyTrendsInput represents the input for monthly trends.
type GetMonthlyTrendsInput struct {
	UserID uuid.UUID
}

// TrendPoint represents one calendar month of ledger activity.
type TrendPoint struct {
	Month       time.Time
	PeriodLabel string
	Income      decimal.Decimal
	Expense     decimal.Decimal
	Balance     decimal.Decimal
}

// GetMonthlyTrendsOutput represents the output of monthly trends.
type GetMonthlyTrendsOutput struct {
	Trends []TrendPoint
}

// GetMonthlyTrendsUseCase buckets the transaction log by calendar month
// for charting.
type GetMonthlyTrendsUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewGetMonthlyTrendsUseCase creates a new GetMonthlyTrendsUseCase instance.
func NewGetMonthlyTrendsUseCase(transactionRepo adapter.TransactionRepository) *GetMonthlyTrendsUseCase {
	return &GetMonthlyTrendsUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute partitions the user's transactions by the calendar month of
// their date, sums income and expense per bucket, and returns at most the
// most recent MaxTrendMonths buckets in chronological order. Months with
// no transactions produce no bucket.
func (uc *GetMonthlyTrendsUseCase) Execute(ctx context.Context, input GetMonthlyTrendsInput) (*GetMonthlyTrendsOutput, error) {
	transactions, err := uc.transactionRepo.FindByUser(ctx, input.UserID, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	buckets := make(map[time.Time]*TrendPoint)
	for _, t := range transactions {
		month := monthStart(t.Date)
		point, ok := buckets[month]
		if !ok {
			point = &TrendPoint{
				Month:       month,
				PeriodLabel: periodLabel(month),
				Income:      decimal.Zero,
				Expense:     decimal.Zero,
			}
			buckets[month] = point
		}

		switch t.Type {
		case entity.TransactionTypeIncome:
			point.Income = point.Income.Add(t.Amount)
		case entity.TransactionTypeExpense:
			point.Expense = point.Expense.Add(t.Amount)
		}
	}

	trends := make([]TrendPoint, 0, len(buckets))
	for _, point := range buckets {
		point.Balance = point.Income.Sub(point.Expense)
		trends = append(trends, *point)
	}
	sort.Slice(trends, func(i, j int) bool {
		return trends[i].Month.Before(trends[j].Month)
	})

	if len(trends) > MaxTrendMonths {
		trends = trends[len(trends)-MaxTrendMonths:]
	}

	return &GetMonthlyTrendsOutput{
		Trends: trends,
	}, nil
}

// monthStart normalizes a timestamp to the first instant of its calendar
// month in UTC.
func monthStart(date time.Time) time.Time {
	d := date.UTC()
	return time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// periodLabel generates a human-readable label for a month, e.g. "Mar 2025".
func periodLabel(month time.Time) string {
	return month.Format("Jan 2006")
}
