// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/savings-tracker/backend/internal/application/adapter"
	"github.com/savings-tracker/backend/internal/domain/allocation"
	"github.com/savings-tracker/backend/internal/domain/entity"
	domainerror "github.com/savings-tracker/backend/internal/domain/error"
)

// MaxDescriptionLength is the maximum allowed length for transaction descriptions.
const MaxDescriptionLength = 255

// RecordTransactionInput represents the input for recording a transaction.
type RecordTransactionInput struct {
	UserID      uuid.UUID
	Type        entity.TransactionType
	Amount      decimal.Decimal
	Description string
}

// RecordTransactionOutput represents the output of recording a transaction.
// Unallocated is the part of an income deposit that no target could absorb
// (zero for expenses and whenever capacity covered the deposit).
type RecordTransactionOutput struct {
	Transaction *entity.Transaction
	Unallocated decimal.Decimal
}

// RecordTransactionUseCase appends a transaction to the ledger and, for
// income, distributes the amount across the user's savings targets.
type RecordTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	targetRepo      adapter.TargetRepository
	locks           *userLocks
}

// NewRecordTransactionUseCase creates a new RecordTransactionUseCase instance.
func NewRecordTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	targetRepo adapter.TargetRepository,
) *RecordTransactionUseCase {
	return &RecordTransactionUseCase{
		transactionRepo: transactionRepo,
		targetRepo:      targetRepo,
		locks:           newUserLocks(),
	}
}

// Execute records the transaction. All validation happens before any
// write. Income triggers exactly one allocation run against the current
// target set; expenses never touch targets. An income deposit with no
// targets records the transaction and mutates nothing.
func (uc *RecordTransactionUseCase) Execute(ctx context.Context, input RecordTransactionInput) (*RecordTransactionOutput, error) {
	// Validate transaction type
	if !isValidTransactionType(input.Type) {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionType,
			"transaction type must be 'income' or 'expense'",
			domainerror.ErrInvalidTransactionType,
		)
	}

	// Validate amount
	if !input.Amount.IsPositive() {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionAmount,
			"amount must be greater than zero",
			domainerror.ErrInvalidTransactionAmount,
		)
	}

	// Validate description length
	if len(input.Description) > MaxDescriptionLength {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeDescriptionTooLong,
			fmt.Sprintf("description must not exceed %d characters", MaxDescriptionLength),
			domainerror.ErrDescriptionTooLong,
		)
	}

	transaction := entity.NewTransaction(input.UserID, input.Type, input.Amount, input.Description)

	if input.Type != entity.TransactionTypeIncome {
		// Expenses only append to the log
		if err := uc.transactionRepo.Create(ctx, transaction); err != nil {
			return nil, fmt.Errorf("failed to record transaction: %w", err)
		}
		return &RecordTransactionOutput{
			Transaction: transaction,
			Unallocated: decimal.Zero,
		}, nil
	}

	// Income: serialize the read-modify-write of the target set per user
	lock := uc.locks.get(input.UserID)
	lock.Lock()
	defer lock.Unlock()

	targets, err := uc.targetRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load targets: %w", err)
	}

	if err := uc.transactionRepo.Create(ctx, transaction); err != nil {
		return nil, fmt.Errorf("failed to record transaction: %w", err)
	}

	leftover := allocation.Distribute(targets, input.Amount)

	if len(targets) > 0 {
		if err := uc.targetRepo.UpdateCollectedAmounts(ctx, targets); err != nil {
			return nil, fmt.Errorf("failed to persist allocation: %w", err)
		}
	}

	if leftover.IsPositive() {
		slog.Info("Income deposit not fully allocated",
			"userID", input.UserID,
			"transactionID", transaction.ID,
			"unallocated", leftover.String(),
		)
	}

	return &RecordTransactionOutput{
		Transaction: transaction,
		Unallocated: leftover,
	}, nil
}

// isValidTransactionType validates the transaction type.
func isValidTransactionType(transactionType entity.TransactionType) bool {
	return transactionType == entity.TransactionTypeIncome || transactionType == entity.TransactionTypeExpense
}
