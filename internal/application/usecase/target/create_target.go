// Package target contains savings-target-related use cases.
package target

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/savings-tracker/backend/internal/application/adapter"
	"github.com/savings-tracker/backend/internal/domain/entity"
	domainerror "github.com/savings-tracker/backend/internal/domain/error"
)

// CreateTargetInput represents the input for target creation.
type CreateTargetInput struct {
	UserID    uuid.UUID
	Name      string
	Price     decimal.Decimal
	DailyGoal decimal.Decimal
}

// CreateTargetOutput represents the output of target creation.
type CreateTargetOutput struct {
	Target *entity.Target
}

// CreateTargetUseCase handles target creation logic.
type CreateTargetUseCase struct {
	targetRepo adapter.TargetRepository
}

// NewCreateTargetUseCase creates a new CreateTargetUseCase instance.
func NewCreateTargetUseCase(targetRepo adapter.TargetRepository) *CreateTargetUseCase {
	return &CreateTargetUseCase{
		targetRepo: targetRepo,
	}
}

// Execute performs the target creation. Validation precedes any write.
func (uc *CreateTargetUseCase) Execute(ctx context.Context, input CreateTargetInput) (*CreateTargetOutput, error) {
	// Validate name
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerror.NewTargetError(
			domainerror.ErrCodeMissingTargetName,
			"target name is required",
			domainerror.ErrMissingTargetName,
		)
	}

	// Validate price
	if !input.Price.IsPositive() {
		return nil, domainerror.NewTargetError(
			domainerror.ErrCodeInvalidTargetPrice,
			"price must be greater than zero",
			domainerror.ErrInvalidTargetPrice,
		)
	}

	// Validate daily goal
	if !input.DailyGoal.IsPositive() {
		return nil, domainerror.NewTargetError(
			domainerror.ErrCodeInvalidDailyGoal,
			"daily goal must be greater than zero",
			domainerror.ErrInvalidDailyGoal,
		)
	}

	// Create target entity with nothing collected
	target := entity.NewTarget(input.UserID, name, input.Price, input.DailyGoal)

	// Save target to the store
	if err := uc.targetRepo.Create(ctx, target); err != nil {
		return nil, fmt.Errorf("failed to create target: %w", err)
	}

	return &CreateTargetOutput{
		Target: target,
	}, nil
}
