package models

import "gorm.io/gorm"

// Fund is a pot of money. BalanceCents is denormalized: it equals the sum of the
// fund's deposits minus the net amount of the expenses drawn from it, and is only
// ever changed inside the transaction of the deposit or expense write that moves it.
type Fund struct {
	Base
	HouseholdID  string `gorm:"type:uuid;not null;index" json:"household_id"`
	Name         string `gorm:"not null" json:"name"`
	BalanceCents int64  `gorm:"type:bigint;not null;default:0" json:"balance_cents"`
}

func (Fund) TableName() string { return "funds" }

func (Fund) OwnedBy(db *gorm.DB, householdID string) *gorm.DB {
	return db.Where("funds.household_id = ?", householdID)
}

// Deposit adds money to a fund.
type Deposit struct {
	Base
	FundID      string `gorm:"type:uuid;not null;index" json:"fund_id"`
	Date        Date   `gorm:"type:date;not null" json:"date"`
	AmountCents int64  `gorm:"type:bigint;not null" json:"amount_cents"`
}

func (Deposit) TableName() string { return "deposits" }

func (Deposit) OwnedBy(db *gorm.DB, householdID string) *gorm.DB {
	return db.Joins("JOIN funds ON funds.id = deposits.fund_id AND funds.deleted_at IS NULL").
		Where("funds.household_id = ?", householdID)
}
