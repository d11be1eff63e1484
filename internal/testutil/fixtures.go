package testutil

import (
	"testing"
	"time"

	"balanco/internal/models"
	"balanco/internal/storage"
	"balanco/internal/uuid"
)

// FloatPtr returns a pointer to v, for the optional valuation fields.
func FloatPtr(v float64) *float64 { return &v }

// Today returns the current date in the record wire format.
func Today() string { return time.Now().Format(models.DateLayout) }

// SeedTransaction writes a single-entry transaction collection.
func SeedTransaction(t *testing.T, store *storage.Store, tx models.Transaction) models.Transaction {
	t.Helper()
	if tx.ID == "" {
		tx.ID = uuid.New()
	}
	existing := storage.Load[models.Transaction](store, storage.KeyTransactions)
	if err := store.Save(storage.KeyTransactions, append(existing, tx)); err != nil {
		t.Fatalf("failed to seed transaction: %v", err)
	}
	return tx
}

// SeedIncomeSource writes an income source into its collection.
func SeedIncomeSource(t *testing.T, store *storage.Store, src models.IncomeSource) models.IncomeSource {
	t.Helper()
	if src.ID == "" {
		src.ID = uuid.New()
	}
	existing := storage.Load[models.IncomeSource](store, storage.KeyIncome)
	if err := store.Save(storage.KeyIncome, append(existing, src)); err != nil {
		t.Fatalf("failed to seed income source: %v", err)
	}
	return src
}

// NewTransaction builds a valid expense dated today.
func NewTransaction() models.Transaction {
	return models.Transaction{
		ID:          uuid.New(),
		Kind:        models.TransactionExpense,
		Amount:      100,
		Category:    "groceries",
		Description: "weekly shop",
		Date:        Today(),
	}
}

// NewIncomeSource builds a valid active monthly source.
func NewIncomeSource() models.IncomeSource {
	return models.IncomeSource{
		ID:        uuid.New(),
		Name:      "Salary",
		Amount:    5000,
		Frequency: models.FrequencyMonthly,
		Category:  "salary",
		IsActive:  true,
	}
}

// NewInvestment builds a valid fixed income holding with no price data,
// so its value resolves to the invested amount.
func NewInvestment() models.Investment {
	return models.Investment{
		ID:           uuid.New(),
		Type:         models.InvestmentFixedIncome,
		Name:         "Treasury 2031",
		Broker:       "XP",
		Amount:       10000,
		PurchaseDate: "2024-03-01",
	}
}

// NewProperty builds a valid rented residential holding.
func NewProperty() models.RealEstateHolding {
	return models.RealEstateHolding{
		ID:            uuid.New(),
		Type:          models.PropertyResidential,
		Address:       "Rua das Flores 100",
		PurchasePrice: 350000,
		MonthlyRent:   FloatPtr(2200),
		Expenses:      400,
		PurchaseDate:  "2020-06-15",
		IsRented:      true,
	}
}

// NewPlan builds a valid private retirement plan.
func NewPlan() models.RetirementPlan {
	return models.RetirementPlan{
		ID:                  uuid.New(),
		Type:                models.PlanPrivate,
		Name:                "Previdencia XYZ",
		Company:             "Seguradora ABC",
		MonthlyContribution: 800,
		TotalContributed:    48000,
		StartDate:           "2019-01-10",
	}
}

// NewLoan builds a valid financing loan.
func NewLoan() models.LoanOrDebt {
	return models.LoanOrDebt{
		ID:              uuid.New(),
		Type:            models.LoanFinancing,
		Bank:            "Banco do Brasil",
		Amount:          80000,
		RemainingAmount: 52000,
		InterestRate:    1.2,
		MonthlyPayment:  1500,
		DueDate:         "2026-09-10",
		StartDate:       "2022-09-10",
		EndDate:         "2030-09-10",
	}
}

// NewBill builds a valid active bill.
func NewBill() models.Bill {
	return models.Bill{
		ID:          uuid.New(),
		Name:        "Electricity",
		Company:     "Enel",
		Amount:      250,
		DueDay:      10,
		Category:    "utilities",
		IsRecurring: true,
		IsActive:    true,
	}
}
