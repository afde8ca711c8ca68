// Package dashboard contains dashboard-related use cases: the read-side
// summaries the presentation layer renders. Everything here is derived
// from the persisted target/transaction snapshot on demand; no aggregate
// is ever stored.
package dashboard

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/savings-tracker/backend/internal/application/adapter"
	"github.com/savings-tracker/backend/internal/domain/entity"
)

// GetSummaryInput represents the input for the ledger summary.
type GetSummaryInput struct {
	UserID uuid.UUID
}

// GetSummaryOutput represents the aggregate state of the ledger.
type GetSummaryOutput struct {
	TotalIncome       decimal.Decimal
	TotalExpense      decimal.Decimal
	Balance           decimal.Decimal
	TotalCollected    decimal.Decimal
	TotalTargetPrice  decimal.Decimal
	AggregateProgress int64
}

// GetSummaryUseCase computes the global ledger summary.
type GetSummaryUseCase struct {
	transactionRepo adapter.TransactionRepository
	targetRepo      adapter.TargetRepository
}

// NewGetSummaryUseCase creates a new GetSummaryUseCase instance.
func NewGetSummaryUseCase(
	transactionRepo adapter.TransactionRepository,
	targetRepo adapter.TargetRepository,
) *GetSummaryUseCase {
	return &GetSummaryUseCase{
		transactionRepo: transactionRepo,
		targetRepo:      targetRepo,
	}
}

// Execute computes income/expense totals, the net balance, and the
// aggregate funding progress across all targets.
func (uc *GetSummaryUseCase) Execute(ctx context.Context, input GetSummaryInput) (*GetSummaryOutput, error) {
	transactions, err := uc.transactionRepo.FindByUser(ctx, input.UserID, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	targets, err := uc.targetRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load targets: %w", err)
	}

	totalIncome := decimal.Zero
	totalExpense := decimal.Zero
	for _, t := range transactions {
		switch t.Type {
		case entity.TransactionTypeIncome:
			totalIncome = totalIncome.Add(t.Amount)
		case entity.TransactionTypeExpense:
			totalExpense = totalExpense.Add(t.Amount)
		}
	}

	totalCollected := decimal.Zero
	totalPrice := decimal.Zero
	for _, t := range targets {
		totalCollected = totalCollected.Add(t.Collected)
		totalPrice = totalPrice.Add(t.Price)
	}

	var aggregateProgress int64
	if totalPrice.IsPositive() {
		aggregateProgress = totalCollected.Mul(decimal.NewFromInt(100)).Div(totalPrice).Round(0).IntPart()
	}

	return &GetSummaryOutput{
		TotalIncome:       totalIncome,
		TotalExpense:      totalExpense,
		Balance:           totalIncome.Sub(totalExpense),
		TotalCollected:    totalCollected,
		TotalTargetPrice:  totalPrice,
		AggregateProgress: aggregateProgress,
	}, nil
}
