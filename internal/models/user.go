package models

import "time"

// User represents the user model in the database
type User struct {
	Base
	HouseholdID string     `gorm:"type:uuid;not null;index" json:"household_id"`
	Email       string     `gorm:"uniqueIndex;not null" json:"email"`
	Password    string     `gorm:"not null" json:"-"`
	FirstName   string     `json:"first_name"`
	LastName    string     `json:"last_name"`
	IsActive    bool       `gorm:"default:true" json:"is_active"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`

	Household Household `gorm:"foreignKey:HouseholdID" json:"household,omitempty"`
}

func (User) TableName() string { return "users" }
