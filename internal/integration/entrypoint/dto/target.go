// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/savings-tracker/backend/internal/application/usecase/target"
	"github.com/savings-tracker/backend/internal/domain/entity"
)

// CreateTargetRequest represents the request body for target creation.
type CreateTargetRequest struct {
	Name      string  `json:"name" binding:"required,min=1,max=100"`
	Price     float64 `json:"price" binding:"required,gt=0"`
	DailyGoal float64 `json:"daily_goal" binding:"required,gt=0"`
}

// TargetResponse represents a single savings target in API responses.
type TargetResponse struct {
	ID                     string    `json:"id"`
	UserID                 string    `json:"user_id"`
	Name                   string    `json:"name"`
	Price                  float64   `json:"price"`
	DailyGoal              float64   `json:"daily_goal"`
	Collected              float64   `json:"collected"`
	Remaining              float64   `json:"remaining"`
	ProgressPercent        int64     `json:"progress_percent"`
	EstimatedDaysRemaining int64     `json:"estimated_days_remaining"`
	Funded                 bool      `json:"funded"`
	CreatedAt              time.Time `json:"created_at"`
	UpdatedAt              time.Time `json:"updated_at"`
}

// TargetListResponse represents the response for listing targets.
type TargetListResponse struct {
	Targets []TargetResponse `json:"targets"`
}

// ToTargetResponse converts a domain Target entity to a TargetResponse DTO.
// Derived metrics are computed from the entity snapshot.
func ToTargetResponse(t *entity.Target) TargetResponse {
	return TargetResponse{
		ID:                     t.ID.String(),
		UserID:                 t.UserID.String(),
		Name:                   t.Name,
		Price:                  t.Price.InexactFloat64(),
		DailyGoal:              t.DailyGoal.InexactFloat64(),
		Collected:              t.Collected.InexactFloat64(),
		Remaining:              t.Remaining().InexactFloat64(),
		ProgressPercent:        t.ProgressPercent(),
		EstimatedDaysRemaining: t.EstimatedDaysRemaining(),
		Funded:                 t.IsFunded(),
		CreatedAt:              t.CreatedAt,
		UpdatedAt:              t.UpdatedAt,
	}
}

// ToTargetResponseWithMetrics converts a TargetWithMetrics to a TargetResponse DTO.
func ToTargetResponseWithMetrics(tm *target.TargetWithMetrics) TargetResponse {
	return TargetResponse{
		ID:                     tm.Target.ID.String(),
		UserID:                 tm.Target.UserID.String(),
		Name:                   tm.Target.Name,
		Price:                  tm.Target.Price.InexactFloat64(),
		DailyGoal:              tm.Target.DailyGoal.InexactFloat64(),
		Collected:              tm.Target.Collected.InexactFloat64(),
		Remaining:              tm.Remaining.InexactFloat64(),
		ProgressPercent:        tm.ProgressPercent,
		EstimatedDaysRemaining: tm.EstimatedDaysRemaining,
		Funded:                 tm.Target.IsFunded(),
		CreatedAt:              tm.Target.CreatedAt,
		UpdatedAt:              tm.Target.UpdatedAt,
	}
}

// ToTargetListResponse converts a list of TargetWithMetrics to TargetListResponse.
func ToTargetListResponse(targets []*target.TargetWithMetrics) TargetListResponse {
	responses := make([]TargetResponse, len(targets))
	for i, tm := range targets {
		responses[i] = ToTargetResponseWithMetrics(tm)
	}
	return TargetListResponse{
		Targets: responses,
	}
}
