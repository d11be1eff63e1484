package services

import (
	apperrors "balanco/internal/errors"
	"balanco/internal/models"
	"balanco/internal/storage"
	"balanco/internal/uuid"
)

// transactionService handles ledger entry business logic.
type transactionService struct {
	store *storage.Store
}

// NewTransactionService creates a new TransactionServicer.
func NewTransactionService(store *storage.Store) TransactionServicer {
	return &transactionService{store: store}
}

// CreateTransaction appends a new ledger entry with a fresh ID.
func (s *transactionService) CreateTransaction(
	kind models.TransactionKind,
	amount float64,
	category, description, date string,
	isRecurring bool,
) (*models.Transaction, error) {
	t := models.Transaction{
		ID:          uuid.New(),
		Kind:        kind,
		Amount:      amount,
		Category:    category,
		Description: description,
		Date:        date,
		IsRecurring: isRecurring,
	}
	if err := appendRecord(s.store, storage.KeyTransactions, t); err != nil {
		return nil, err
	}
	return &t, nil
}

// ListTransactions returns the whole ledger.
func (s *transactionService) ListTransactions() []models.Transaction {
	return storage.Load[models.Transaction](s.store, storage.KeyTransactions)
}

// UpdateTransaction replaces the entry with t's ID.
func (s *transactionService) UpdateTransaction(t models.Transaction) (*models.Transaction, error) {
	if err := replaceRecord(s.store, storage.KeyTransactions, t, apperrors.ErrTransactionNotFound); err != nil {
		return nil, err
	}
	return &t, nil
}

// DeleteTransaction removes the entry with the given ID.
func (s *transactionService) DeleteTransaction(id string) error {
	return removeRecord[models.Transaction](s.store, storage.KeyTransactions, id, apperrors.ErrTransactionNotFound)
}
