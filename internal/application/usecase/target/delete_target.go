// Package target contains savings-target-related use cases.
package target

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/savings-tracker/backend/internal/application/adapter"
)

// DeleteTargetInput represents the input for target deletion.
type DeleteTargetInput struct {
	UserID   uuid.UUID
	TargetID uuid.UUID
}

// DeleteTargetOutput represents the output of target deletion.
type DeleteTargetOutput struct {
	Deleted bool
}

// DeleteTargetUseCase handles target deletion logic.
type DeleteTargetUseCase struct {
	targetRepo adapter.TargetRepository
}

// NewDeleteTargetUseCase creates a new DeleteTargetUseCase instance.
func NewDeleteTargetUseCase(targetRepo adapter.TargetRepository) *DeleteTargetUseCase {
	return &DeleteTargetUseCase{
		targetRepo: targetRepo,
	}
}

// Execute removes the target. Deleting an id that does not exist (or
// belongs to another user) is a no-op success. Past transactions are never
// touched: the log is append-only and holds no target references.
func (uc *DeleteTargetUseCase) Execute(ctx context.Context, input DeleteTargetInput) (*DeleteTargetOutput, error) {
	count, err := uc.targetRepo.DeleteByIDAndUser(ctx, input.TargetID, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to delete target: %w", err)
	}

	if count == 0 {
		slog.Debug("Delete of missing target treated as no-op",
			"userID", input.UserID,
			"targetID", input.TargetID,
		)
	}

	return &DeleteTargetOutput{
		Deleted: count > 0,
	}, nil
}
