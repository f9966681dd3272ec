package models

import "gorm.io/gorm"

// Category is the top level of the expense taxonomy.
type Category struct {
	Base
	HouseholdID string `gorm:"type:uuid;not null;index" json:"household_id"`
	Name        string `gorm:"not null" json:"name"`
}

func (Category) TableName() string { return "categories" }

func (Category) OwnedBy(db *gorm.DB, householdID string) *gorm.DB {
	return db.Where("categories.household_id = ?", householdID)
}

// Subcategory is the second level of the expense taxonomy; expenses and budgets
// reference it.
type Subcategory struct {
	Base
	CategoryID string `gorm:"type:uuid;not null;index" json:"category_id"`
	Name       string `gorm:"not null" json:"name"`
}

func (Subcategory) TableName() string { return "subcategories" }

func (Subcategory) OwnedBy(db *gorm.DB, householdID string) *gorm.DB {
	return db.Joins("JOIN categories ON categories.id = subcategories.category_id AND categories.deleted_at IS NULL").
		Where("categories.household_id = ?", householdID)
}
