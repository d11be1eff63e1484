// Package metrics computes the dashboard metrics snapshot from the record
// collections. Compute is a pure function: persistence and change
// subscription live in Engine, never here.
package metrics

import (
	"time"

	"balanco/internal/models"
)

// weeksPerMonth is the average number of weeks in a calendar month, used
// to normalize weekly amounts.
const weeksPerMonth = 4.33

// Collections holds one whole-collection snapshot per category, as read
// from the store after a change notification.
type Collections struct {
	Transactions []models.Transaction
	Income       []models.IncomeSource
	Investments  []models.Investment
	RealEstate   []models.RealEstateHolding
	Retirement   []models.RetirementPlan
	Loans        []models.LoanOrDebt
	Bills        []models.Bill
}

// Metrics is an immutable snapshot of every derived dashboard figure.
// All fields are always present and numeric; an all-empty input yields
// all zeroes.
type Metrics struct {
	TotalMonthlyIncome          float64 `json:"totalMonthlyIncome"`
	TotalMonthlyExpenses        float64 `json:"totalMonthlyExpenses"`
	TotalInvestmentValue        float64 `json:"totalInvestmentValue"`
	TotalInvestmentIncome       float64 `json:"totalInvestmentIncome"`
	TotalRealEstateValue        float64 `json:"totalRealEstateValue"`
	TotalRealEstateIncome       float64 `json:"totalRealEstateIncome"`
	TotalRetirementSaved        float64 `json:"totalRetirementSaved"`
	TotalRetirementContribution float64 `json:"totalRetirementContribution"`
	TotalDebt                   float64 `json:"totalDebt"`
	TotalLoanPayments           float64 `json:"totalLoanPayments"`
	TotalBills                  float64 `json:"totalBills"`

	NetMonthlyIncome float64 `json:"netMonthlyIncome"`
	TotalAssets      float64 `json:"totalAssets"`
	NetWorth         float64 `json:"netWorth"`
}

// MonthlyEquivalent normalizes an amount with a native payment cadence to
// its per-month contribution. One-time amounts never contribute to a
// recurring monthly figure.
func MonthlyEquivalent(amount float64, frequency models.Frequency) float64 {
	switch frequency {
	case models.FrequencyMonthly:
		return amount
	case models.FrequencyWeekly:
		return amount * weeksPerMonth
	case models.FrequencyYearly:
		return amount / 12
	default:
		return 0
	}
}

// expenseAccrual decides how much of a transaction counts toward the
// current month's expense total. Recurring expenses are standing monthly
// obligations and always count in full. Non-recurring expenses count only
// when dated in the same calendar month as now; this is a deliberate
// month-boundary rule, not a trailing-30-day window.
func expenseAccrual(t models.Transaction, now time.Time) float64 {
	if t.Kind != models.TransactionExpense {
		return 0
	}
	if t.IsRecurring {
		return t.Amount
	}
	date, err := time.Parse(models.DateLayout, t.Date)
	if err != nil {
		return 0
	}
	if date.Month() == now.Month() && date.Year() == now.Year() {
		return t.Amount
	}
	return 0
}

// Compute rolls the collections into a metrics snapshot. It is
// deterministic and idempotent: now is explicit, there is no I/O, and
// identical inputs always yield identical output.
func Compute(c Collections, now time.Time) Metrics {
	var m Metrics

	for _, source := range c.Income {
		if source.IsActive {
			m.TotalMonthlyIncome += MonthlyEquivalent(source.Amount, source.Frequency)
		}
	}

	for _, t := range c.Transactions {
		m.TotalMonthlyExpenses += expenseAccrual(t, now)
	}

	for _, inv := range c.Investments {
		m.TotalInvestmentValue += inv.CurrentValue()
		if inv.MonthlyIncome != nil {
			m.TotalInvestmentIncome += *inv.MonthlyIncome
		}
	}

	for _, prop := range c.RealEstate {
		m.TotalRealEstateValue += prop.Value()
		m.TotalRealEstateIncome += prop.NetMonthlyIncome()
	}

	for _, plan := range c.Retirement {
		m.TotalRetirementSaved += plan.TotalContributed
		m.TotalRetirementContribution += plan.MonthlyContribution
	}

	for _, loan := range c.Loans {
		m.TotalDebt += loan.RemainingAmount
		m.TotalLoanPayments += loan.MonthlyPayment
	}

	for _, bill := range c.Bills {
		if bill.IsActive {
			m.TotalBills += bill.Amount
		}
	}

	m.NetMonthlyIncome = m.TotalMonthlyIncome + m.TotalInvestmentIncome + m.TotalRealEstateIncome -
		m.TotalMonthlyExpenses - m.TotalLoanPayments - m.TotalBills - m.TotalRetirementContribution
	m.TotalAssets = m.TotalInvestmentValue + m.TotalRealEstateValue + m.TotalRetirementSaved
	m.NetWorth = m.TotalAssets - m.TotalDebt

	return m
}
