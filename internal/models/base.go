package models

import (
	"time"

	"accrue/internal/uuid"

	"gorm.io/gorm"
)

// Base contains common columns for all tables. There is no soft-delete
// column: accounts and categories archive through explicit flags, and
// transactions and transfers are physically removed so a deleted transfer
// leaves no rows behind.
type Base struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate hook generates a UUIDv7 for new records
func (b *Base) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.New()
	}
	return nil
}
