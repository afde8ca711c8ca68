// Package target contains savings-target-related use cases.
package target

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/savings-tracker/backend/internal/application/adapter"
	"github.com/savings-tracker/backend/internal/domain/entity"
)

// ListTargetsInput represents the input for listing targets.
type ListTargetsInput struct {
	UserID uuid.UUID
}

// TargetWithMetrics bundles a target with its derived metrics. The metrics
// are computed from the snapshot on every call, never stored.
type TargetWithMetrics struct {
	Target                 *entity.Target
	ProgressPercent        int64
	Remaining              decimal.Decimal
	EstimatedDaysRemaining int64
}

// ListTargetsOutput represents the output of listing targets.
type ListTargetsOutput struct {
	Targets []*TargetWithMetrics
}

// ListTargetsUseCase handles target listing logic.
type ListTargetsUseCase struct {
	targetRepo adapter.TargetRepository
}

// NewListTargetsUseCase creates a new ListTargetsUseCase instance.
func NewListTargetsUseCase(targetRepo adapter.TargetRepository) *ListTargetsUseCase {
	return &ListTargetsUseCase{
		targetRepo: targetRepo,
	}
}

// Execute retrieves the user's targets in insertion order with derived
// metrics attached.
func (uc *ListTargetsUseCase) Execute(ctx context.Context, input ListTargetsInput) (*ListTargetsOutput, error) {
	targets, err := uc.targetRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list targets: %w", err)
	}

	result := make([]*TargetWithMetrics, len(targets))
	for i, t := range targets {
		result[i] = &TargetWithMetrics{
			Target:                 t,
			ProgressPercent:        t.ProgressPercent(),
			Remaining:              t.Remaining(),
			EstimatedDaysRemaining: t.EstimatedDaysRemaining(),
		}
	}

	return &ListTargetsOutput{
		Targets: result,
	}, nil
}
