package models

import "gorm.io/gorm"

// Budget limits
const (
	BudgetMinYear  = 2000
	BudgetMaxYear  = 2050
	BudgetMinMonth = 0
	BudgetMaxMonth = 11
)

// Budget is the planned spend of one subcategory for one month. Month is zero based.
type Budget struct {
	Base
	SubcategoryID string `gorm:"type:uuid;not null;index" json:"subcategory_id"`
	Year          int    `gorm:"not null" json:"year"`
	Month         int    `gorm:"not null" json:"month"`
	BudgetCents   int64  `gorm:"type:bigint;not null" json:"budget_cents"`
}

func (Budget) TableName() string { return "budgets" }

func (Budget) OwnedBy(db *gorm.DB, householdID string) *gorm.DB {
	return db.Joins("JOIN subcategories ON subcategories.id = budgets.subcategory_id AND subcategories.deleted_at IS NULL").
		Joins("JOIN categories ON categories.id = subcategories.category_id AND categories.deleted_at IS NULL").
		Where("categories.household_id = ?", householdID)
}
