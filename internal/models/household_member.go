package models

import "gorm.io/gorm"

// HouseholdMember is a person expenses and income are attributed to. Members need
// not have a login.
type HouseholdMember struct {
	Base
	HouseholdID string `gorm:"type:uuid;not null;index" json:"household_id"`
	Name        string `gorm:"not null" json:"name"`
}

func (HouseholdMember) TableName() string { return "household_members" }

func (HouseholdMember) OwnedBy(db *gorm.DB, householdID string) *gorm.DB {
	return db.Where("household_members.household_id = ?", householdID)
}
