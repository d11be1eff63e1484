package models

// Frequency represents the native payment cadence of an income source
type Frequency string

const (
	FrequencyMonthly Frequency = "monthly"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyYearly  Frequency = "yearly"
	FrequencyOneTime Frequency = "one-time"
)

// IncomeSource represents a recurring income stream, distinct from
// income-kind ledger entries. Inactive sources contribute nothing to
// the monthly income total.
type IncomeSource struct {
	ID          string    `json:"id" validate:"required"`
	Name        string    `json:"name" validate:"required"`
	Amount      float64   `json:"amount" validate:"gte=0"`
	Frequency   Frequency `json:"frequency" validate:"required,oneof=monthly weekly yearly one-time"`
	Category    string    `json:"category" validate:"required"`
	NextPayment string    `json:"nextPayment,omitempty" validate:"omitempty,datetime=2006-01-02"`
	IsActive    bool      `json:"isActive"`
}

// RecordID implements Record.
func (s IncomeSource) RecordID() string { return s.ID }
