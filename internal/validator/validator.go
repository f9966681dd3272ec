// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"hearth/internal/models"
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		RegisterOn(v)
	}
}

// RegisterOn registers the custom validators on v.
func RegisterOn(v *validator.Validate) {
	_ = v.RegisterValidation("iso_date", validateISODate)
	_ = v.RegisterValidation("budget_year", validateBudgetYear)
	_ = v.RegisterValidation("budget_month", validateBudgetMonth)
}

func validateISODate(fl validator.FieldLevel) bool {
	_, err := models.ParseDate(fl.Field().String())
	return err == nil
}

func validateBudgetYear(fl validator.FieldLevel) bool {
	y := fl.Field().Int()
	return y >= models.BudgetMinYear && y <= models.BudgetMaxYear
}

func validateBudgetMonth(fl validator.FieldLevel) bool {
	m := fl.Field().Int()
	return m >= models.BudgetMinMonth && m <= models.BudgetMaxMonth
}
