// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/savings-tracker/backend/internal/application/adapter"
	"github.com/savings-tracker/backend/internal/domain/entity"
	"github.com/savings-tracker/backend/internal/integration/persistence/model"
)

// targetRepository implements the adapter.TargetRepository interface.
type targetRepository struct {
	db *gorm.DB
}

// NewTargetRepository creates a new target repository instance.
func NewTargetRepository(db *gorm.DB) adapter.TargetRepository {
	return &targetRepository{
		db: db,
	}
}

// Create creates a new target in the database.
func (r *targetRepository) Create(ctx context.Context, target *entity.Target) error {
	targetModel := model.TargetFromEntity(target)
	result := r.db.WithContext(ctx).Create(targetModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByUser retrieves all targets for a given user in insertion order.
func (r *targetRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Target, error) {
	var targetModels []model.TargetModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&targetModels)
	if result.Error != nil {
		return nil, result.Error
	}

	targets := make([]*entity.Target, len(targetModels))
	for i, tm := range targetModels {
		targets[i] = tm.ToEntity()
	}
	return targets, nil
}

// UpdateCollectedAmounts persists the collected amounts of the given
// targets in a single database transaction, so an allocation run is
// written all-or-nothing.
func (r *targetRepository) UpdateCollectedAmounts(ctx context.Context, targets []*entity.Target) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now().UTC()
		for _, target := range targets {
			result := tx.Model(&model.TargetModel{}).
				Where("id = ?", target.ID).
				Updates(map[string]interface{}{
					"collected":  target.Collected,
					"updated_at": now,
				})
			if result.Error != nil {
				return result.Error
			}
		}
		return nil
	})
}

// DeleteByIDAndUser removes the target with the given id if it belongs to
// the user. Matching zero rows is not an error.
func (r *targetRepository) DeleteByIDAndUser(ctx context.Context, id, userID uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.TargetModel{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
