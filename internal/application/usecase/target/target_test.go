package target

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/savings-tracker/backend/internal/domain/entity"
	domainerror "github.com/savings-tracker/backend/internal/domain/error"
)

type fakeTargetRepo struct {
	targets []*entity.Target
}

func (r *fakeTargetRepo) Create(_ context.Context, target *entity.Target) error {
	r.targets = append(r.targets, target)
	return nil
}

func (r *fakeTargetRepo) FindByUser(_ context.Context, userID uuid.UUID) ([]*entity.Target, error) {
	out := make([]*entity.Target, 0, len(r.targets))
	for _, t := range r.targets {
		if t.UserID == userID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *fakeTargetRepo) UpdateCollectedAmounts(_ context.Context, _ []*entity.Target) error {
	return nil
}

func (r *fakeTargetRepo) DeleteByIDAndUser(_ context.Context, id, userID uuid.UUID) (int64, error) {
	for i, t := range r.targets {
		if t.ID == id && t.UserID == userID {
			r.targets = append(r.targets[:i], r.targets[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func TestCreateTarget(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("creates target with zero collected", func(t *testing.T) {
		repo := &fakeTargetRepo{}
		uc := NewCreateTargetUseCase(repo)

		output, err := uc.Execute(ctx, CreateTargetInput{
			UserID:    userID,
			Name:      "bicycle",
			Price:     decimal.NewFromInt(1500),
			DailyGoal: decimal.NewFromInt(25),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !output.Target.Collected.IsZero() {
			t.Errorf("expected collected to start at zero, got %s", output.Target.Collected)
		}
		if output.Target.ID == uuid.Nil {
			t.Error("expected a generated target id")
		}
		if len(repo.targets) != 1 {
			t.Fatalf("expected one stored target, got %d", len(repo.targets))
		}
	})

	t.Run("rejects non-positive price", func(t *testing.T) {
		repo := &fakeTargetRepo{}
		uc := NewCreateTargetUseCase(repo)

		_, err := uc.Execute(ctx, CreateTargetInput{
			UserID:    userID,
			Name:      "bicycle",
			Price:     decimal.Zero,
			DailyGoal: decimal.NewFromInt(25),
		})
		if !errors.Is(err, domainerror.ErrInvalidTargetPrice) {
			t.Fatalf("expected ErrInvalidTargetPrice, got %v", err)
		}
		if len(repo.targets) != 0 {
			t.Error("expected no write on validation failure")
		}
	})

	t.Run("rejects non-positive daily goal", func(t *testing.T) {
		uc := NewCreateTargetUseCase(&fakeTargetRepo{})

		_, err := uc.Execute(ctx, CreateTargetInput{
			UserID:    userID,
			Name:      "bicycle",
			Price:     decimal.NewFromInt(100),
			DailyGoal: decimal.NewFromInt(-5),
		})
		if !errors.Is(err, domainerror.ErrInvalidDailyGoal) {
			t.Fatalf("expected ErrInvalidDailyGoal, got %v", err)
		}
	})

	t.Run("rejects blank name", func(t *testing.T) {
		uc := NewCreateTargetUseCase(&fakeTargetRepo{})

		_, err := uc.Execute(ctx, CreateTargetInput{
			UserID:    userID,
			Name:      "   ",
			Price:     decimal.NewFromInt(100),
			DailyGoal: decimal.NewFromInt(5),
		})
		if !errors.Is(err, domainerror.ErrMissingTargetName) {
			t.Fatalf("expected ErrMissingTargetName, got %v", err)
		}
	})
}

func TestDeleteTarget(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("deletes an existing target", func(t *testing.T) {
		target := entity.NewTarget(userID, "bicycle", decimal.NewFromInt(100), decimal.NewFromInt(5))
		repo := &fakeTargetRepo{targets: []*entity.Target{target}}
		uc := NewDeleteTargetUseCase(repo)

		output, err := uc.Execute(ctx, DeleteTargetInput{UserID: userID, TargetID: target.ID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !output.Deleted {
			t.Error("expected Deleted to be true")
		}
		if len(repo.targets) != 0 {
			t.Error("expected target to be removed")
		}
	})

	t.Run("missing id is a no-op success", func(t *testing.T) {
		uc := NewDeleteTargetUseCase(&fakeTargetRepo{})

		output, err := uc.Execute(ctx, DeleteTargetInput{UserID: userID, TargetID: uuid.New()})
		if err != nil {
			t.Fatalf("expected no error for missing id, got %v", err)
		}
		if output.Deleted {
			t.Error("expected Deleted to be false")
		}
	})

	t.Run("cannot delete another user's target", func(t *testing.T) {
		target := entity.NewTarget(uuid.New(), "bicycle", decimal.NewFromInt(100), decimal.NewFromInt(5))
		repo := &fakeTargetRepo{targets: []*entity.Target{target}}
		uc := NewDeleteTargetUseCase(repo)

		output, err := uc.Execute(ctx, DeleteTargetInput{UserID: userID, TargetID: target.ID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Deleted {
			t.Error("expected no deletion across users")
		}
		if len(repo.targets) != 1 {
			t.Error("expected the other user's target to remain")
		}
	})
}
