// Package validator provides custom validation functions for Gin's binding
// engine plus the struct validator used at the storage decode boundary.
package validator

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// records validates decoded records against their schema tags before they
// are allowed into an aggregation pass.
var records = validator.New()

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("transaction_kind", validateTransactionKind)
		_ = v.RegisterValidation("frequency", validateFrequency)
		_ = v.RegisterValidation("investment_type", validateInvestmentType)
		_ = v.RegisterValidation("property_type", validatePropertyType)
		_ = v.RegisterValidation("plan_type", validatePlanType)
		_ = v.RegisterValidation("loan_type", validateLoanType)
	}
}

// Struct validates a record against its schema tags. Used when loading
// collections so a malformed record is dropped instead of poisoning a total.
func Struct(v interface{}) error {
	return records.Struct(v)
}

func validateTransactionKind(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "income", "expense":
		return true
	}
	return false
}

func validateFrequency(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "monthly", "weekly", "yearly", "one-time":
		return true
	}
	return false
}

func validateInvestmentType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "fixed-income", "equities", "real-estate-fund", "private-equity", "credit-instrument":
		return true
	}
	return false
}

func validatePropertyType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "residential", "commercial", "land", "reit":
		return true
	}
	return false
}

func validatePlanType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "public-pension", "private", "pgbl", "vgbl":
		return true
	}
	return false
}

func validateLoanType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "personal", "payroll-deduction", "credit-card", "financing", "overdraft":
		return true
	}
	return false
}
