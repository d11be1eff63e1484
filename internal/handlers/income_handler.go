package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "balanco/internal/errors"
	"balanco/internal/models"
	"balanco/internal/services"
)

// IncomeHandler handles income source requests.
type IncomeHandler struct {
	incomeService services.IncomeServicer
}

// NewIncomeHandler creates a new IncomeHandler.
func NewIncomeHandler(incomeService services.IncomeServicer) *IncomeHandler {
	return &IncomeHandler{incomeService: incomeService}
}

// CreateIncomeSourceRequest is the payload for creating an income source.
type CreateIncomeSourceRequest struct {
	Name        string           `json:"name" binding:"required"`
	Amount      float64          `json:"amount" binding:"gte=0"`
	Frequency   models.Frequency `json:"frequency" binding:"required,frequency"`
	Category    string           `json:"category" binding:"required"`
	NextPayment string           `json:"nextPayment" binding:"omitempty,datetime=2006-01-02"`
}

// UpdateIncomeSourceRequest is the payload for replacing an income source.
// Unlike creation, it carries isActive so a source can be paused.
type UpdateIncomeSourceRequest struct {
	Name        string           `json:"name" binding:"required"`
	Amount      float64          `json:"amount" binding:"gte=0"`
	Frequency   models.Frequency `json:"frequency" binding:"required,frequency"`
	Category    string           `json:"category" binding:"required"`
	NextPayment string           `json:"nextPayment" binding:"omitempty,datetime=2006-01-02"`
	IsActive    bool             `json:"isActive"`
}

// CreateIncomeSource handles the creation of a new income source.
// @Summary     Create an income source
// @Description Add a recurring income stream; new sources start active
// @Tags        income
// @Accept      json
// @Produce     json
// @Param       request body CreateIncomeSourceRequest true "Income source details"
// @Success     201 {object} models.IncomeSource "Income source created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /income [post]
func (h *IncomeHandler) CreateIncomeSource(c *gin.Context) {
	var req CreateIncomeSourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	source, err := h.incomeService.CreateIncomeSource(
		req.Name, req.Amount, req.Frequency, req.Category, req.NextPayment,
	)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"incomeSource": source})
}

// GetIncomeSources handles listing all income sources.
// @Summary     List income sources
// @Tags        income
// @Produce     json
// @Success     200 {array} models.IncomeSource "Income sources"
// @Router      /income [get]
func (h *IncomeHandler) GetIncomeSources(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"incomeSources": h.incomeService.ListIncomeSources()})
}

// UpdateIncomeSource handles replacing an existing income source.
// @Summary     Update an income source
// @Tags        income
// @Accept      json
// @Produce     json
// @Param       id      path string                    true "Income source ID"
// @Param       request body UpdateIncomeSourceRequest true "Income source details"
// @Success     200 {object} models.IncomeSource "Income source updated"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Income source not found"
// @Router      /income/{id} [put]
func (h *IncomeHandler) UpdateIncomeSource(c *gin.Context) {
	id, err := parseRecordID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateIncomeSourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	source, err := h.incomeService.UpdateIncomeSource(models.IncomeSource{
		ID:          id,
		Name:        req.Name,
		Amount:      req.Amount,
		Frequency:   req.Frequency,
		Category:    req.Category,
		NextPayment: req.NextPayment,
		IsActive:    req.IsActive,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"incomeSource": source})
}

// DeleteIncomeSource handles removing an income source.
// @Summary     Delete an income source
// @Tags        income
// @Produce     json
// @Param       id path string true "Income source ID"
// @Success     204 "Income source deleted"
// @Failure     404 {object} ErrorResponse "Income source not found"
// @Router      /income/{id} [delete]
func (h *IncomeHandler) DeleteIncomeSource(c *gin.Context) {
	id, err := parseRecordID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.incomeService.DeleteIncomeSource(id); err != nil {
		respondWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
