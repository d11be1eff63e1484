package services

import (
	apperrors "balanco/internal/errors"
	"balanco/internal/models"
	"balanco/internal/storage"
	"balanco/internal/uuid"
)

// incomeService handles recurring income stream business logic.
type incomeService struct {
	store *storage.Store
}

// NewIncomeService creates a new IncomeServicer.
func NewIncomeService(store *storage.Store) IncomeServicer {
	return &incomeService{store: store}
}

// CreateIncomeSource appends a new income source. New sources start active.
func (s *incomeService) CreateIncomeSource(
	name string,
	amount float64,
	frequency models.Frequency,
	category, nextPayment string,
) (*models.IncomeSource, error) {
	source := models.IncomeSource{
		ID:          uuid.New(),
		Name:        name,
		Amount:      amount,
		Frequency:   frequency,
		Category:    category,
		NextPayment: nextPayment,
		IsActive:    true,
	}
	if err := appendRecord(s.store, storage.KeyIncome, source); err != nil {
		return nil, err
	}
	return &source, nil
}

// ListIncomeSources returns all income sources, active or not.
func (s *incomeService) ListIncomeSources() []models.IncomeSource {
	return storage.Load[models.IncomeSource](s.store, storage.KeyIncome)
}

// UpdateIncomeSource replaces the source with src's ID. Deactivation
// happens here: an update with isActive=false drops the source from the
// monthly income total without deleting its history.
func (s *incomeService) UpdateIncomeSource(src models.IncomeSource) (*models.IncomeSource, error) {
	if err := replaceRecord(s.store, storage.KeyIncome, src, apperrors.ErrIncomeSourceNotFound); err != nil {
		return nil, err
	}
	return &src, nil
}

// DeleteIncomeSource removes the source with the given ID.
func (s *incomeService) DeleteIncomeSource(id string) error {
	return removeRecord[models.IncomeSource](s.store, storage.KeyIncome, id, apperrors.ErrIncomeSourceNotFound)
}
