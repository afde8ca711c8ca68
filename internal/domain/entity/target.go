// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Target represents a savings goal: an item with a price, a daily saving
// goal, and a running collected amount.
//
// Invariant: 0 <= Collected <= Price. Collected is mutated only by the
// allocation engine, which saturates at Price.
type Target struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	Price     decimal.Decimal
	DailyGoal decimal.Decimal
	Collected decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewTarget creates a new Target entity with nothing collected yet.
func NewTarget(userID uuid.UUID, name string, price, dailyGoal decimal.Decimal) *Target {
	now := time.Now().UTC()

	return &Target{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      name,
		Price:     price,
		DailyGoal: dailyGoal,
		Collected: decimal.Zero,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Remaining returns the amount still needed to reach the target price.
func (t *Target) Remaining() decimal.Decimal {
	return t.Price.Sub(t.Collected)
}

// IsFunded reports whether the target has reached its price.
func (t *Target) IsFunded() bool {
	return t.Collected.GreaterThanOrEqual(t.Price)
}

// ProgressPercent returns the funding progress as a whole percentage,
// rounded half-up and capped at 100.
func (t *Target) ProgressPercent() int64 {
	if !t.Price.IsPositive() {
		return 0
	}
	percent := t.Collected.Mul(decimal.NewFromInt(100)).Div(t.Price).Round(0).IntPart()
	if percent > 100 {
		return 100
	}
	return percent
}

// EstimatedDaysRemaining returns how many days of saving at DailyGoal are
// still needed to fund the target, rounded up. Returns 0 when DailyGoal is
// not positive or the target is already funded.
func (t *Target) EstimatedDaysRemaining() int64 {
	if !t.DailyGoal.IsPositive() {
		return 0
	}
	remaining := t.Remaining()
	if !remaining.IsPositive() {
		return 0
	}
	return remaining.Div(t.DailyGoal).Ceil().IntPart()
}
