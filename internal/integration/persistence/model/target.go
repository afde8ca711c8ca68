// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/savings-tracker/backend/internal/domain/entity"
)

// TargetModel represents the targets table in the database.
type TargetModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name      string          `gorm:"type:varchar(255);not null"`
	Price     decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	DailyGoal decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Collected decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	CreatedAt time.Time       `gorm:"not null"`
	UpdatedAt time.Time       `gorm:"not null"`
}

// TableName returns the table name for the TargetModel.
func (TargetModel) TableName() string {
	return "targets"
}

// ToEntity converts a TargetModel to a domain Target entity.
func (m *TargetModel) ToEntity() *entity.Target {
	return &entity.Target{
		ID:        m.ID,
		UserID:    m.UserID,
		Name:      m.Name,
		Price:     m.Price,
		DailyGoal: m.DailyGoal,
		Collected: m.Collected,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// TargetFromEntity creates a TargetModel from a domain Target entity.
func TargetFromEntity(target *entity.Target) *TargetModel {
	return &TargetModel{
		ID:        target.ID,
		UserID:    target.UserID,
		Name:      target.Name,
		Price:     target.Price,
		DailyGoal: target.DailyGoal,
		Collected: target.Collected,
		CreatedAt: target.CreatedAt,
		UpdatedAt: target.UpdatedAt,
	}
}
