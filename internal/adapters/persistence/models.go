package persistence

import (
	"time"
)

// PlanModel represents the plans table. Factories are stored as one JSON
// document per plan: the engine always loads and recalculates a plan as a
// whole, so a relational breakdown would only add join overhead.
type PlanModel struct {
	ID          string    `gorm:"column:id;primaryKey;not null"`
	Name        string    `gorm:"column:name;unique;not null"`
	Factories   string    `gorm:"column:factories;type:text"` // JSON array as text
	DataVersion string    `gorm:"column:data_version;not null"`
	CreatedAt   time.Time `gorm:"column:created_at;not null"`
	UpdatedAt   time.Time `gorm:"column:updated_at;not null"`
}

func (PlanModel) TableName() string {
	return "plans"
}
