package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func metricsTarget(price, dailyGoal, collected int64) *Target {
	target := NewTarget(uuid.New(), "bicycle", decimal.NewFromInt(price), decimal.NewFromInt(dailyGoal))
	target.Collected = decimal.NewFromInt(collected)
	return target
}

func TestTargetProgressPercent(t *testing.T) {
	tests := []struct {
		name      string
		price     int64
		collected int64
		want      int64
	}{
		{"nothing collected", 100, 0, 0},
		{"halfway", 200, 100, 50},
		{"rounds half up", 1000, 125, 13},
		{"rounds down", 1000, 124, 12},
		{"fully funded", 100, 100, 100},
		{"capped at one hundred", 100, 150, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target := metricsTarget(tt.price, 1, tt.collected)
			if got := target.ProgressPercent(); got != tt.want {
				t.Errorf("expected %d%%, got %d%%", tt.want, got)
			}
		})
	}
}

func TestTargetEstimatedDaysRemaining(t *testing.T) {
	tests := []struct {
		name      string
		price     int64
		dailyGoal int64
		collected int64
		want      int64
	}{
		{"exact division", 100, 10, 0, 10},
		{"partial day rounds up", 100, 30, 0, 4},
		{"partially funded", 100, 10, 45, 6},
		{"already funded", 100, 10, 100, 0},
		{"zero daily goal", 100, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target := NewTarget(uuid.New(), "bicycle", decimal.NewFromInt(tt.price), decimal.NewFromInt(tt.dailyGoal))
			target.Collected = decimal.NewFromInt(tt.collected)
			if got := target.EstimatedDaysRemaining(); got != tt.want {
				t.Errorf("expected %d days, got %d days", tt.want, got)
			}
		})
	}
}

func TestTargetMetricsArePure(t *testing.T) {
	target := metricsTarget(300, 20, 110)

	first := target.ProgressPercent()
	second := target.ProgressPercent()
	if first != second {
		t.Errorf("ProgressPercent changed between calls: %d then %d", first, second)
	}

	if !target.Remaining().Equal(decimal.NewFromInt(190)) {
		t.Errorf("expected remaining 190, got %s", target.Remaining())
	}
	if !target.Collected.Equal(decimal.NewFromInt(110)) {
		t.Errorf("metric calls mutated collected: %s", target.Collected)
	}
}
