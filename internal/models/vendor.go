package models

import "gorm.io/gorm"

// Vendor is a payee referenced by expenses.
type Vendor struct {
	Base
	HouseholdID string `gorm:"type:uuid;not null;index" json:"household_id"`
	Name        string `gorm:"not null" json:"name"`
	Description string `json:"description"`
}

func (Vendor) TableName() string { return "vendors" }

func (Vendor) OwnedBy(db *gorm.DB, householdID string) *gorm.DB {
	return db.Where("vendors.household_id = ?", householdID)
}
