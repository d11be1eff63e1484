package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "balanco/internal/errors"
	"balanco/internal/models"
	"balanco/internal/services"
)

// RetirementHandler handles retirement plan requests.
type RetirementHandler struct {
	retirementService services.RetirementServicer
}

// NewRetirementHandler creates a new RetirementHandler.
func NewRetirementHandler(retirementService services.RetirementServicer) *RetirementHandler {
	return &RetirementHandler{retirementService: retirementService}
}

// PlanRequest is the payload for creating or updating a retirement plan.
type PlanRequest struct {
	Type                models.PlanType `json:"type" binding:"required,plan_type"`
	Name                string          `json:"name" binding:"required"`
	Company             string          `json:"company"`
	MonthlyContribution float64         `json:"monthlyContribution" binding:"gte=0"`
	TotalContributed    float64         `json:"totalContributed" binding:"gte=0"`
	ExpectedReturn      *float64        `json:"expectedReturn"`
	StartDate           string          `json:"startDate" binding:"required,datetime=2006-01-02"`
	RetirementAge       *int            `json:"retirementAge" binding:"omitempty,gt=0"`
}

func (r PlanRequest) toModel(id string) models.RetirementPlan {
	return models.RetirementPlan{
		ID:                  id,
		Type:                r.Type,
		Name:                r.Name,
		Company:             r.Company,
		MonthlyContribution: r.MonthlyContribution,
		TotalContributed:    r.TotalContributed,
		ExpectedReturn:      r.ExpectedReturn,
		StartDate:           r.StartDate,
		RetirementAge:       r.RetirementAge,
	}
}

// CreatePlan handles the creation of a new plan.
// @Summary     Create a retirement plan
// @Tags        retirement
// @Accept      json
// @Produce     json
// @Param       request body PlanRequest true "Plan details"
// @Success     201 {object} models.RetirementPlan "Plan created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /retirement [post]
func (h *RetirementHandler) CreatePlan(c *gin.Context) {
	var req PlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	plan, err := h.retirementService.CreatePlan(req.toModel(""))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"plan": plan})
}

// GetPlans handles listing all plans.
// @Summary     List retirement plans
// @Tags        retirement
// @Produce     json
// @Success     200 {array} models.RetirementPlan "Plans"
// @Router      /retirement [get]
func (h *RetirementHandler) GetPlans(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"plans": h.retirementService.ListPlans()})
}

// UpdatePlan handles replacing an existing plan.
// @Summary     Update a retirement plan
// @Tags        retirement
// @Accept      json
// @Produce     json
// @Param       id      path string      true "Plan ID"
// @Param       request body PlanRequest true "Plan details"
// @Success     200 {object} models.RetirementPlan "Plan updated"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Plan not found"
// @Router      /retirement/{id} [put]
func (h *RetirementHandler) UpdatePlan(c *gin.Context) {
	id, err := parseRecordID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req PlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	plan, err := h.retirementService.UpdatePlan(req.toModel(id))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"plan": plan})
}

// DeletePlan handles removing a plan.
// @Summary     Delete a retirement plan
// @Tags        retirement
// @Produce     json
// @Param       id path string true "Plan ID"
// @Success     204 "Plan deleted"
// @Failure     404 {object} ErrorResponse "Plan not found"
// @Router      /retirement/{id} [delete]
func (h *RetirementHandler) DeletePlan(c *gin.Context) {
	id, err := parseRecordID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.retirementService.DeletePlan(id); err != nil {
		respondWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
