// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/savings-tracker/backend/internal/domain/entity"
)

// TargetRepository defines the interface for target persistence operations.
type TargetRepository interface {
	// Create creates a new target in the store.
	Create(ctx context.Context, target *entity.Target) error

	// FindByUser retrieves all targets for a given user in insertion
	// order. The allocation engine depends on this ordering.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Target, error)

	// UpdateCollectedAmounts persists the collected amounts of the given
	// targets after an allocation run.
	UpdateCollectedAmounts(ctx context.Context, targets []*entity.Target) error

	// DeleteByIDAndUser removes the target with the given id if it belongs
	// to the user. Deleting a missing id is not an error; the returned
	// count is the number of rows removed.
	DeleteByIDAndUser(ctx context.Context, id, userID uuid.UUID) (int64, error)
}
