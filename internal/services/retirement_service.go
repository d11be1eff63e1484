package services

import (
	apperrors "balanco/internal/errors"
	"balanco/internal/models"
	"balanco/internal/storage"
	"balanco/internal/uuid"
)

// retirementService handles retirement plan business logic.
type retirementService struct {
	store *storage.Store
}

// NewRetirementService creates a new RetirementServicer.
func NewRetirementService(store *storage.Store) RetirementServicer {
	return &retirementService{store: store}
}

// CreatePlan appends a new plan with a fresh ID.
func (s *retirementService) CreatePlan(p models.RetirementPlan) (*models.RetirementPlan, error) {
	p.ID = uuid.New()
	if err := appendRecord(s.store, storage.KeyRetirement, p); err != nil {
		return nil, err
	}
	return &p, nil
}

// ListPlans returns all plans.
func (s *retirementService) ListPlans() []models.RetirementPlan {
	return storage.Load[models.RetirementPlan](s.store, storage.KeyRetirement)
}

// UpdatePlan replaces the plan with p's ID.
func (s *retirementService) UpdatePlan(p models.RetirementPlan) (*models.RetirementPlan, error) {
	if err := replaceRecord(s.store, storage.KeyRetirement, p, apperrors.ErrPlanNotFound); err != nil {
		return nil, err
	}
	return &p, nil
}

// DeletePlan removes the plan with the given ID.
func (s *retirementService) DeletePlan(id string) error {
	return removeRecord[models.RetirementPlan](s.store, storage.KeyRetirement, id, apperrors.ErrPlanNotFound)
}
