// Package services implements record CRUD over the collection store. Every
// write fully replaces the owning collection and, through the store, fans a
// change notification out to the metrics engine. Services never read the
// engine and never write any key they do not own.
package services

import (
	"balanco/internal/models"
)

// TransactionServicer defines the contract for ledger entries.
type TransactionServicer interface {
	CreateTransaction(kind models.TransactionKind, amount float64, category, description, date string, isRecurring bool) (*models.Transaction, error)
	ListTransactions() []models.Transaction
	UpdateTransaction(t models.Transaction) (*models.Transaction, error)
	DeleteTransaction(id string) error
}

// IncomeServicer defines the contract for recurring income sources.
type IncomeServicer interface {
	CreateIncomeSource(name string, amount float64, frequency models.Frequency, category, nextPayment string) (*models.IncomeSource, error)
	ListIncomeSources() []models.IncomeSource
	UpdateIncomeSource(s models.IncomeSource) (*models.IncomeSource, error)
	DeleteIncomeSource(id string) error
}

// InvestmentServicer defines the contract for investment holdings.
type InvestmentServicer interface {
	CreateInvestment(inv models.Investment) (*models.Investment, error)
	ListInvestments() []models.Investment
	UpdateInvestment(inv models.Investment) (*models.Investment, error)
	DeleteInvestment(id string) error
}

// RealEstateServicer defines the contract for real estate holdings.
type RealEstateServicer interface {
	CreateProperty(p models.RealEstateHolding) (*models.RealEstateHolding, error)
	ListProperties() []models.RealEstateHolding
	UpdateProperty(p models.RealEstateHolding) (*models.RealEstateHolding, error)
	DeleteProperty(id string) error
}

// RetirementServicer defines the contract for retirement plans.
type RetirementServicer interface {
	CreatePlan(p models.RetirementPlan) (*models.RetirementPlan, error)
	ListPlans() []models.RetirementPlan
	UpdatePlan(p models.RetirementPlan) (*models.RetirementPlan, error)
	DeletePlan(id string) error
}

// LoanServicer defines the contract for loans and debts.
type LoanServicer interface {
	CreateLoan(l models.LoanOrDebt) (*models.LoanOrDebt, error)
	ListLoans() []models.LoanOrDebt
	UpdateLoan(l models.LoanOrDebt) (*models.LoanOrDebt, error)
	DeleteLoan(id string) error
}

// BillServicer defines the contract for recurring bills.
type BillServicer interface {
	CreateBill(b models.Bill) (*models.Bill, error)
	ListBills() []models.Bill
	UpdateBill(b models.Bill) (*models.Bill, error)
	DeleteBill(id string) error
}
