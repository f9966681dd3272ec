package models

import "gorm.io/gorm"

// Income is money earned by a household member.
type Income struct {
	Base
	HouseholdMemberID string `gorm:"type:uuid;not null;index" json:"household_member_id"`
	Date              Date   `gorm:"type:date;not null" json:"date"`
	AmountCents       int64  `gorm:"type:bigint;not null" json:"amount_cents"`
	Description       string `gorm:"not null" json:"description"`
}

func (Income) TableName() string { return "incomes" }

func (Income) OwnedBy(db *gorm.DB, householdID string) *gorm.DB {
	return db.Joins("JOIN household_members ON household_members.id = incomes.household_member_id AND household_members.deleted_at IS NULL").
		Where("household_members.household_id = ?", householdID)
}
