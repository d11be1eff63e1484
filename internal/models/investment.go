package models

// InvestmentType represents the asset class of an investment
type InvestmentType string

const (
	InvestmentFixedIncome      InvestmentType = "fixed-income"
	InvestmentEquities         InvestmentType = "equities"
	InvestmentRealEstateFund   InvestmentType = "real-estate-fund"
	InvestmentPrivateEquity    InvestmentType = "private-equity"
	InvestmentCreditInstrument InvestmentType = "credit-instrument"
)

// Investment represents a holding of an investment asset. Optional
// valuation fields are pointers: a stored zero is a price, a nil is a
// gap to be filled by the fallback chain.
type Investment struct {
	ID            string         `json:"id" validate:"required"`
	Type          InvestmentType `json:"type" validate:"required,oneof=fixed-income equities real-estate-fund private-equity credit-instrument"`
	Name          string         `json:"name" validate:"required"`
	Broker        string         `json:"broker"`
	Amount        float64        `json:"amount" validate:"gte=0"`
	PurchasePrice *float64       `json:"purchasePrice,omitempty" validate:"omitempty,gte=0"`
	CurrentPrice  *float64       `json:"currentPrice,omitempty" validate:"omitempty,gte=0"`
	InterestRate  *float64       `json:"interestRate,omitempty"`
	MonthlyIncome *float64       `json:"monthlyIncome,omitempty"`
	PurchaseDate  string         `json:"purchaseDate" validate:"required,datetime=2006-01-02"`
	MaturityDate  string         `json:"maturityDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

// RecordID implements Record.
func (i Investment) RecordID() string { return i.ID }

// CurrentValue resolves the valuation fallback chain:
// currentPrice, then purchasePrice, then the invested amount.
func (i Investment) CurrentValue() float64 {
	if i.CurrentPrice != nil {
		return *i.CurrentPrice
	}
	if i.PurchasePrice != nil {
		return *i.PurchasePrice
	}
	return i.Amount
}
