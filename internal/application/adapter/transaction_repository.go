// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/savings-tracker/backend/internal/domain/entity"
)

// TransactionRepository defines the interface for the append-only
// transaction log. Records are never updated or deleted.
type TransactionRepository interface {
	// Create appends a transaction to the log.
	Create(ctx context.Context, transaction *entity.Transaction) error

	// FindByUser retrieves the user's transactions, newest first. A
	// positive limit windows the result to the most recent records;
	// limit <= 0 returns the full log.
	FindByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.Transaction, error)
}
