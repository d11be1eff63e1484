package models

// PlanType represents the kind of retirement plan
type PlanType string

const (
	PlanPublicPension PlanType = "public-pension"
	PlanPrivate       PlanType = "private"
	PlanPGBL          PlanType = "pgbl"
	PlanVGBL          PlanType = "vgbl"
)

// RetirementPlan represents a pension or private retirement plan. Plans
// have no inactive state; the monthly contribution is always a recurring
// outflow for cash-flow purposes.
type RetirementPlan struct {
	ID                  string   `json:"id" validate:"required"`
	Type                PlanType `json:"type" validate:"required,oneof=public-pension private pgbl vgbl"`
	Name                string   `json:"name" validate:"required"`
	Company             string   `json:"company"`
	MonthlyContribution float64  `json:"monthlyContribution" validate:"gte=0"`
	TotalContributed    float64  `json:"totalContributed" validate:"gte=0"`
	ExpectedReturn      *float64 `json:"expectedReturn,omitempty"`
	StartDate           string   `json:"startDate" validate:"required,datetime=2006-01-02"`
	RetirementAge       *int     `json:"retirementAge,omitempty" validate:"omitempty,gt=0"`
}

// RecordID implements Record.
func (r RetirementPlan) RecordID() string { return r.ID }
