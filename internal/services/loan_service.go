package services

import (
	apperrors "balanco/internal/errors"
	"balanco/internal/models"
	"balanco/internal/storage"
	"balanco/internal/uuid"
)

// loanService handles loan and debt business logic.
type loanService struct {
	store *storage.Store
}

// NewLoanService creates a new LoanServicer.
func NewLoanService(store *storage.Store) LoanServicer {
	return &loanService{store: store}
}

// CreateLoan appends a new loan with a fresh ID. remainingAmount <= amount
// is trusted input; inconsistent balances flow into totalDebt as-is.
func (s *loanService) CreateLoan(l models.LoanOrDebt) (*models.LoanOrDebt, error) {
	l.ID = uuid.New()
	if err := appendRecord(s.store, storage.KeyLoans, l); err != nil {
		return nil, err
	}
	return &l, nil
}

// ListLoans returns all loans.
func (s *loanService) ListLoans() []models.LoanOrDebt {
	return storage.Load[models.LoanOrDebt](s.store, storage.KeyLoans)
}

// UpdateLoan replaces the loan with l's ID.
func (s *loanService) UpdateLoan(l models.LoanOrDebt) (*models.LoanOrDebt, error) {
	if err := replaceRecord(s.store, storage.KeyLoans, l, apperrors.ErrLoanNotFound); err != nil {
		return nil, err
	}
	return &l, nil
}

// DeleteLoan removes the loan with the given ID.
func (s *loanService) DeleteLoan(id string) error {
	return removeRecord[models.LoanOrDebt](s.store, storage.KeyLoans, id, apperrors.ErrLoanNotFound)
}
