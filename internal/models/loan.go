package models

// LoanType represents the kind of loan or debt
type LoanType string

const (
	LoanPersonal         LoanType = "personal"
	LoanPayrollDeduction LoanType = "payroll-deduction"
	LoanCreditCard       LoanType = "credit-card"
	LoanFinancing        LoanType = "financing"
	LoanOverdraft        LoanType = "overdraft"
)

// LoanOrDebt represents an outstanding obligation. RemainingAmount is the
// debt contribution to net worth; remainingAmount <= amount is trusted
// input, not enforced here.
type LoanOrDebt struct {
	ID              string   `json:"id" validate:"required"`
	Type            LoanType `json:"type" validate:"required,oneof=personal payroll-deduction credit-card financing overdraft"`
	Bank            string   `json:"bank" validate:"required"`
	Amount          float64  `json:"amount" validate:"gte=0"`
	RemainingAmount float64  `json:"remainingAmount" validate:"gte=0"`
	InterestRate    float64  `json:"interestRate"`
	MonthlyPayment  float64  `json:"monthlyPayment" validate:"gte=0"`
	DueDate         string   `json:"dueDate" validate:"required,datetime=2006-01-02"`
	StartDate       string   `json:"startDate" validate:"required,datetime=2006-01-02"`
	EndDate         string   `json:"endDate" validate:"required,datetime=2006-01-02"`
}

// RecordID implements Record.
func (l LoanOrDebt) RecordID() string { return l.ID }
