package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "balanco/internal/errors"
	"balanco/internal/models"
	"balanco/internal/services"
)

// InvestmentHandler handles investment holding requests.
type InvestmentHandler struct {
	investmentService services.InvestmentServicer
}

// NewInvestmentHandler creates a new InvestmentHandler.
func NewInvestmentHandler(investmentService services.InvestmentServicer) *InvestmentHandler {
	return &InvestmentHandler{investmentService: investmentService}
}

// InvestmentRequest is the payload for creating or updating a holding.
// Price fields are pointers: omitting one means "unknown", which the
// valuation fallback chain resolves, while an explicit 0 is a price.
type InvestmentRequest struct {
	Type          models.InvestmentType `json:"type" binding:"required,investment_type"`
	Name          string                `json:"name" binding:"required"`
	Broker        string                `json:"broker"`
	Amount        float64               `json:"amount" binding:"gte=0"`
	PurchasePrice *float64              `json:"purchasePrice" binding:"omitempty,gte=0"`
	CurrentPrice  *float64              `json:"currentPrice" binding:"omitempty,gte=0"`
	InterestRate  *float64              `json:"interestRate"`
	MonthlyIncome *float64              `json:"monthlyIncome"`
	PurchaseDate  string                `json:"purchaseDate" binding:"required,datetime=2006-01-02"`
	MaturityDate  string                `json:"maturityDate" binding:"omitempty,datetime=2006-01-02"`
}

func (r InvestmentRequest) toModel(id string) models.Investment {
	return models.Investment{
		ID:            id,
		Type:          r.Type,
		Name:          r.Name,
		Broker:        r.Broker,
		Amount:        r.Amount,
		PurchasePrice: r.PurchasePrice,
		CurrentPrice:  r.CurrentPrice,
		InterestRate:  r.InterestRate,
		MonthlyIncome: r.MonthlyIncome,
		PurchaseDate:  r.PurchaseDate,
		MaturityDate:  r.MaturityDate,
	}
}

// CreateInvestment handles the creation of a new holding.
// @Summary     Create an investment
// @Tags        investments
// @Accept      json
// @Produce     json
// @Param       request body InvestmentRequest true "Investment details"
// @Success     201 {object} models.Investment "Investment created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /investments [post]
func (h *InvestmentHandler) CreateInvestment(c *gin.Context) {
	var req InvestmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	inv, err := h.investmentService.CreateInvestment(req.toModel(""))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"investment": inv})
}

// GetInvestments handles listing all holdings.
// @Summary     List investments
// @Tags        investments
// @Produce     json
// @Success     200 {array} models.Investment "Investments"
// @Router      /investments [get]
func (h *InvestmentHandler) GetInvestments(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"investments": h.investmentService.ListInvestments()})
}

// UpdateInvestment handles replacing an existing holding.
// @Summary     Update an investment
// @Tags        investments
// @Accept      json
// @Produce     json
// @Param       id      path string            true "Investment ID"
// @Param       request body InvestmentRequest true "Investment details"
// @Success     200 {object} models.Investment "Investment updated"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Investment not found"
// @Router      /investments/{id} [put]
func (h *InvestmentHandler) UpdateInvestment(c *gin.Context) {
	id, err := parseRecordID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req InvestmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	inv, err := h.investmentService.UpdateInvestment(req.toModel(id))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"investment": inv})
}

// DeleteInvestment handles removing a holding.
// @Summary     Delete an investment
// @Tags        investments
// @Produce     json
// @Param       id path string true "Investment ID"
// @Success     204 "Investment deleted"
// @Failure     404 {object} ErrorResponse "Investment not found"
// @Router      /investments/{id} [delete]
func (h *InvestmentHandler) DeleteInvestment(c *gin.Context) {
	id, err := parseRecordID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.investmentService.DeleteInvestment(id); err != nil {
		respondWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
