package models

import "gorm.io/gorm"

// Expense is money spent. FundID is optional; when set, the expense draws its net
// amount from that fund.
type Expense struct {
	Base
	SubcategoryID     string  `gorm:"type:uuid;not null;index" json:"subcategory_id"`
	VendorID          string  `gorm:"type:uuid;not null;index" json:"vendor_id"`
	HouseholdMemberID string  `gorm:"type:uuid;not null;index" json:"household_member_id"`
	FundID            *string `gorm:"type:uuid;index" json:"fund_id"`
	Date              Date    `gorm:"type:date;not null" json:"date"`
	AmountCents       int64   `gorm:"type:bigint;not null" json:"amount_cents"`
	ReimbursedCents   int64   `gorm:"type:bigint;not null;default:0" json:"reimbursed_cents"`
	Description       string  `gorm:"not null" json:"description"`
}

func (Expense) TableName() string { return "expenses" }

func (Expense) OwnedBy(db *gorm.DB, householdID string) *gorm.DB {
	return db.Joins("JOIN household_members ON household_members.id = expenses.household_member_id AND household_members.deleted_at IS NULL").
		Where("household_members.household_id = ?", householdID)
}

// NetCents is the part of the expense that actually draws down a fund.
func (e Expense) NetCents() int64 {
	return e.AmountCents - e.ReimbursedCents
}

// FundRef returns the fund id or "" when the expense is not attributed to a fund.
func (e Expense) FundRef() string {
	if e.FundID == nil {
		return ""
	}
	return *e.FundID
}
