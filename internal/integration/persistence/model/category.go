// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/Felipaof/My-Fluxo-Finance/internal/domain/entity"
)

// CategoryModel represents the categories table in the database.
// A NULL owner marks a system category shared by every user.
type CategoryModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name      string     `gorm:"type:varchar(100);not null;uniqueIndex:idx_categories_owner_name,priority:2;uniqueIndex:idx_categories_system_name,where:owner_id IS NULL"`
	Kind      string     `gorm:"type:varchar(10);not null"`
	Icon      string     `gorm:"type:varchar(50)"`
	OwnerID   *uuid.UUID `gorm:"type:uuid;index;uniqueIndex:idx_categories_owner_name,priority:1"`
	CreatedAt time.Time  `gorm:"not null"`
	UpdatedAt time.Time  `gorm:"not null"`
}

// TableName returns the table name for the CategoryModel.
func (CategoryModel) TableName() string {
	return "categories"
}

// ToEntity converts a CategoryModel to a domain Category entity.
func (m *CategoryModel) ToEntity() *entity.Category {
	return &entity.Category{
		ID:        m.ID,
		Name:      m.Name,
		Kind:      entity.CategoryKind(m.Kind),
		Icon:      m.Icon,
		OwnerID:   m.OwnerID,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// CategoryFromEntity creates a CategoryModel from a domain Category entity.
func CategoryFromEntity(category *entity.Category) *CategoryModel {
	return &CategoryModel{
		ID:        category.ID,
		Name:      category.Name,
		Kind:      string(category.Kind),
		Icon:      category.Icon,
		OwnerID:   category.OwnerID,
		CreatedAt: category.CreatedAt.UTC(),
		UpdatedAt: category.UpdatedAt.UTC(),
	}
}
