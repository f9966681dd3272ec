package models

// Household is the tenancy boundary: every other row belongs to exactly one.
type Household struct {
	Base
	Name string `gorm:"not null" json:"name"`
}

func (Household) TableName() string { return "households" }
