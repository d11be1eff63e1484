package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "balanco/internal/errors"
	"balanco/internal/models"
	"balanco/internal/services"
)

// RealEstateHandler handles property holding requests.
type RealEstateHandler struct {
	realEstateService services.RealEstateServicer
}

// NewRealEstateHandler creates a new RealEstateHandler.
func NewRealEstateHandler(realEstateService services.RealEstateServicer) *RealEstateHandler {
	return &RealEstateHandler{realEstateService: realEstateService}
}

// PropertyRequest is the payload for creating or updating a holding.
// Expenses are required and monthly; monthlyRent is optional so vacant
// properties show up as a negative cash flow.
type PropertyRequest struct {
	Type          models.PropertyType `json:"type" binding:"required,property_type"`
	Address       string              `json:"address" binding:"required"`
	PurchasePrice float64             `json:"purchasePrice" binding:"gte=0"`
	CurrentValue  *float64            `json:"currentValue" binding:"omitempty,gte=0"`
	MonthlyRent   *float64            `json:"monthlyRent" binding:"omitempty,gte=0"`
	Expenses      float64             `json:"expenses" binding:"gte=0"`
	PurchaseDate  string              `json:"purchaseDate" binding:"required,datetime=2006-01-02"`
	IsRented      bool                `json:"isRented"`
	Attachments   []string            `json:"attachments"`
}

func (r PropertyRequest) toModel(id string) models.RealEstateHolding {
	return models.RealEstateHolding{
		ID:            id,
		Type:          r.Type,
		Address:       r.Address,
		PurchasePrice: r.PurchasePrice,
		CurrentValue:  r.CurrentValue,
		MonthlyRent:   r.MonthlyRent,
		Expenses:      r.Expenses,
		PurchaseDate:  r.PurchaseDate,
		IsRented:      r.IsRented,
		Attachments:   r.Attachments,
	}
}

// CreateProperty handles the creation of a new holding.
// @Summary     Create a real estate holding
// @Tags        real-estate
// @Accept      json
// @Produce     json
// @Param       request body PropertyRequest true "Property details"
// @Success     201 {object} models.RealEstateHolding "Property created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /real-estate [post]
func (h *RealEstateHandler) CreateProperty(c *gin.Context) {
	var req PropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	prop, err := h.realEstateService.CreateProperty(req.toModel(""))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"property": prop})
}

// GetProperties handles listing all holdings.
// @Summary     List real estate holdings
// @Tags        real-estate
// @Produce     json
// @Success     200 {array} models.RealEstateHolding "Properties"
// @Router      /real-estate [get]
func (h *RealEstateHandler) GetProperties(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"properties": h.realEstateService.ListProperties()})
}

// UpdateProperty handles replacing an existing holding.
// @Summary     Update a real estate holding
// @Tags        real-estate
// @Accept      json
// @Produce     json
// @Param       id      path string          true "Property ID"
// @Param       request body PropertyRequest true "Property details"
// @Success     200 {object} models.RealEstateHolding "Property updated"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Property not found"
// @Router      /real-estate/{id} [put]
func (h *RealEstateHandler) UpdateProperty(c *gin.Context) {
	id, err := parseRecordID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req PropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	prop, err := h.realEstateService.UpdateProperty(req.toModel(id))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"property": prop})
}

// DeleteProperty handles removing a holding.
// @Summary     Delete a real estate holding
// @Tags        real-estate
// @Produce     json
// @Param       id path string true "Property ID"
// @Success     204 "Property deleted"
// @Failure     404 {object} ErrorResponse "Property not found"
// @Router      /real-estate/{id} [delete]
func (h *RealEstateHandler) DeleteProperty(c *gin.Context) {
	id, err := parseRecordID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.realEstateService.DeleteProperty(id); err != nil {
		respondWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
