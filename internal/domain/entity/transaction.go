// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType represents the type of transaction (income or expense).
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// DefaultDescription is used when a transaction is recorded without one.
const DefaultDescription = "No description"

// Transaction is an immutable, timestamped record of money moved in or
// out. The transaction log is append-only: records are never edited or
// deleted after creation.
type Transaction struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Type        TransactionType
	Amount      decimal.Decimal
	Description string
	Date        time.Time
	CreatedAt   time.Time
}

// NewTransaction creates a new Transaction entity dated now. A blank
// description falls back to DefaultDescription.
func NewTransaction(userID uuid.UUID, transactionType TransactionType, amount decimal.Decimal, description string) *Transaction {
	now := time.Now().UTC()
	if description == "" {
		description = DefaultDescription
	}

	return &Transaction{
		ID:          uuid.New(),
		UserID:      userID,
		Type:        transactionType,
		Amount:      amount,
		Description: description,
		Date:        now,
		CreatedAt:   now,
	}
}
