package services

import (
	apperrors "balanco/internal/errors"
	"balanco/internal/models"
	"balanco/internal/storage"
	"balanco/internal/uuid"
)

// billService handles recurring bill business logic.
type billService struct {
	store *storage.Store
}

// NewBillService creates a new BillServicer.
func NewBillService(store *storage.Store) BillServicer {
	return &billService{store: store}
}

// CreateBill appends a new bill with a fresh ID. New bills start active.
func (s *billService) CreateBill(b models.Bill) (*models.Bill, error) {
	b.ID = uuid.New()
	b.IsActive = true
	if err := appendRecord(s.store, storage.KeyBills, b); err != nil {
		return nil, err
	}
	return &b, nil
}

// ListBills returns all bills, active or not.
func (s *billService) ListBills() []models.Bill {
	return storage.Load[models.Bill](s.store, storage.KeyBills)
}

// UpdateBill replaces the bill with b's ID.
func (s *billService) UpdateBill(b models.Bill) (*models.Bill, error) {
	if err := replaceRecord(s.store, storage.KeyBills, b, apperrors.ErrBillNotFound); err != nil {
		return nil, err
	}
	return &b, nil
}

// DeleteBill removes the bill with the given ID.
func (s *billService) DeleteBill(id string) error {
	return removeRecord[models.Bill](s.store, storage.KeyBills, id, apperrors.ErrBillNotFound)
}
