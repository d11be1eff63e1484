package services

import (
	apperrors "balanco/internal/errors"
	"balanco/internal/models"
	"balanco/internal/storage"
	"balanco/internal/uuid"
)

// realEstateService handles property holding business logic.
type realEstateService struct {
	store *storage.Store
}

// NewRealEstateService creates a new RealEstateServicer.
func NewRealEstateService(store *storage.Store) RealEstateServicer {
	return &realEstateService{store: store}
}

// CreateProperty appends a new holding with a fresh ID.
func (s *realEstateService) CreateProperty(p models.RealEstateHolding) (*models.RealEstateHolding, error) {
	p.ID = uuid.New()
	if err := appendRecord(s.store, storage.KeyRealEstate, p); err != nil {
		return nil, err
	}
	return &p, nil
}

// ListProperties returns all holdings.
func (s *realEstateService) ListProperties() []models.RealEstateHolding {
	return storage.Load[models.RealEstateHolding](s.store, storage.KeyRealEstate)
}

// UpdateProperty replaces the holding with p's ID.
func (s *realEstateService) UpdateProperty(p models.RealEstateHolding) (*models.RealEstateHolding, error) {
	if err := replaceRecord(s.store, storage.KeyRealEstate, p, apperrors.ErrPropertyNotFound); err != nil {
		return nil, err
	}
	return &p, nil
}

// DeleteProperty removes the holding with the given ID.
func (s *realEstateService) DeleteProperty(id string) error {
	return removeRecord[models.RealEstateHolding](s.store, storage.KeyRealEstate, id, apperrors.ErrPropertyNotFound)
}
