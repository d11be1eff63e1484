package models

// PropertyType represents the kind of real estate holding
type PropertyType string

const (
	PropertyResidential PropertyType = "residential"
	PropertyCommercial  PropertyType = "commercial"
	PropertyLand        PropertyType = "land"
	PropertyREIT        PropertyType = "reit"
)

// RealEstateHolding represents a directly held property. Expenses are a
// required monthly figure, so an unrented property contributes a negative
// net monthly income.
type RealEstateHolding struct {
	ID            string       `json:"id" validate:"required"`
	Type          PropertyType `json:"type" validate:"required,oneof=residential commercial land reit"`
	Address       string       `json:"address" validate:"required"`
	PurchasePrice float64      `json:"purchasePrice" validate:"gte=0"`
	CurrentValue  *float64     `json:"currentValue,omitempty" validate:"omitempty,gte=0"`
	MonthlyRent   *float64     `json:"monthlyRent,omitempty" validate:"omitempty,gte=0"`
	Expenses      float64      `json:"expenses" validate:"gte=0"`
	PurchaseDate  string       `json:"purchaseDate" validate:"required,datetime=2006-01-02"`
	IsRented      bool         `json:"isRented"`
	Attachments   []string     `json:"attachments,omitempty"`
}

// RecordID implements Record.
func (p RealEstateHolding) RecordID() string { return p.ID }

// Value resolves the property valuation, falling back to the purchase
// price when no current appraisal is recorded.
func (p RealEstateHolding) Value() float64 {
	if p.CurrentValue != nil {
		return *p.CurrentValue
	}
	return p.PurchasePrice
}

// NetMonthlyIncome is rent minus monthly expenses; rent defaults to 0.
func (p RealEstateHolding) NetMonthlyIncome() float64 {
	rent := 0.0
	if p.MonthlyRent != nil {
		rent = *p.MonthlyRent
	}
	return rent - p.Expenses
}
