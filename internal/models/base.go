package models

import (
	"time"

	"hearth/internal/uuid"

	"gorm.io/gorm"
)

// Base contains common columns for all tables
type Base struct {
	ID        string         `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate hook generates a UUIDv7 for new records
func (b *Base) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.New()
	}
	return nil
}

// RecordID returns the primary key of the row.
func (b Base) RecordID() string { return b.ID }

// Record is a persisted row that can be snapshotted into the audit trail.
type Record interface {
	TableName() string
	RecordID() string
}

// Owned is a Record reachable from exactly one household. OwnedBy narrows a query
// on the record's table to rows of that household, joining parent tables when the
// record carries no household_id of its own.
type Owned interface {
	Record
	OwnedBy(db *gorm.DB, householdID string) *gorm.DB
}
