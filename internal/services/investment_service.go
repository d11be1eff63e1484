package services

import (
	apperrors "balanco/internal/errors"
	"balanco/internal/models"
	"balanco/internal/storage"
	"balanco/internal/uuid"
)

// investmentService handles investment holding business logic.
type investmentService struct {
	store *storage.Store
}

// NewInvestmentService creates a new InvestmentServicer.
func NewInvestmentService(store *storage.Store) InvestmentServicer {
	return &investmentService{store: store}
}

// CreateInvestment appends a new holding with a fresh ID. The caller-built
// record carries the optional valuation fields; missing prices stay nil so
// the fallback chain can resolve them at aggregation time.
func (s *investmentService) CreateInvestment(inv models.Investment) (*models.Investment, error) {
	inv.ID = uuid.New()
	if err := appendRecord(s.store, storage.KeyInvestments, inv); err != nil {
		return nil, err
	}
	return &inv, nil
}

// ListInvestments returns all holdings.
func (s *investmentService) ListInvestments() []models.Investment {
	return storage.Load[models.Investment](s.store, storage.KeyInvestments)
}

// UpdateInvestment replaces the holding with inv's ID.
func (s *investmentService) UpdateInvestment(inv models.Investment) (*models.Investment, error) {
	if err := replaceRecord(s.store, storage.KeyInvestments, inv, apperrors.ErrInvestmentNotFound); err != nil {
		return nil, err
	}
	return &inv, nil
}

// DeleteInvestment removes the holding with the given ID.
func (s *investmentService) DeleteInvestment(id string) error {
	return removeRecord[models.Investment](s.store, storage.KeyInvestments, id, apperrors.ErrInvestmentNotFound)
}
