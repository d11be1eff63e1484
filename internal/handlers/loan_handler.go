package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "balanco/internal/errors"
	"balanco/internal/models"
	"balanco/internal/services"
)

// LoanHandler handles loan and debt requests.
type LoanHandler struct {
	loanService services.LoanServicer
}

// NewLoanHandler creates a new LoanHandler.
func NewLoanHandler(loanService services.LoanServicer) *LoanHandler {
	return &LoanHandler{loanService: loanService}
}

// LoanRequest is the payload for creating or updating a loan. The
// interest rate is percent per month.
type LoanRequest struct {
	Type            models.LoanType `json:"type" binding:"required,loan_type"`
	Bank            string          `json:"bank" binding:"required"`
	Amount          float64         `json:"amount" binding:"gte=0"`
	RemainingAmount float64         `json:"remainingAmount" binding:"gte=0"`
	InterestRate    float64         `json:"interestRate"`
	MonthlyPayment  float64         `json:"monthlyPayment" binding:"gte=0"`
	DueDate         string          `json:"dueDate" binding:"required,datetime=2006-01-02"`
	StartDate       string          `json:"startDate" binding:"required,datetime=2006-01-02"`
	EndDate         string          `json:"endDate" binding:"required,datetime=2006-01-02"`
}

func (r LoanRequest) toModel(id string) models.LoanOrDebt {
	return models.LoanOrDebt{
		ID:              id,
		Type:            r.Type,
		Bank:            r.Bank,
		Amount:          r.Amount,
		RemainingAmount: r.RemainingAmount,
		InterestRate:    r.InterestRate,
		MonthlyPayment:  r.MonthlyPayment,
		DueDate:         r.DueDate,
		StartDate:       r.StartDate,
		EndDate:         r.EndDate,
	}
}

// CreateLoan handles the creation of a new loan.
// @Summary     Create a loan
// @Tags        loans
// @Accept      json
// @Produce     json
// @Param       request body LoanRequest true "Loan details"
// @Success     201 {object} models.LoanOrDebt "Loan created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /loans [post]
func (h *LoanHandler) CreateLoan(c *gin.Context) {
	var req LoanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	loan, err := h.loanService.CreateLoan(req.toModel(""))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"loan": loan})
}

// GetLoans handles listing all loans.
// @Summary     List loans
// @Tags        loans
// @Produce     json
// @Success     200 {array} models.LoanOrDebt "Loans"
// @Router      /loans [get]
func (h *LoanHandler) GetLoans(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"loans": h.loanService.ListLoans()})
}

// UpdateLoan handles replacing an existing loan.
// @Summary     Update a loan
// @Tags        loans
// @Accept      json
// @Produce     json
// @Param       id      path string      true "Loan ID"
// @Param       request body LoanRequest true "Loan details"
// @Success     200 {object} models.LoanOrDebt "Loan updated"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Loan not found"
// @Router      /loans/{id} [put]
func (h *LoanHandler) UpdateLoan(c *gin.Context) {
	id, err := parseRecordID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req LoanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	loan, err := h.loanService.UpdateLoan(req.toModel(id))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"loan": loan})
}

// DeleteLoan handles removing a loan.
// @Summary     Delete a loan
// @Tags        loans
// @Produce     json
// @Param       id path string true "Loan ID"
// @Success     204 "Loan deleted"
// @Failure     404 {object} ErrorResponse "Loan not found"
// @Router      /loans/{id} [delete]
func (h *LoanHandler) DeleteLoan(c *gin.Context) {
	id, err := parseRecordID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.loanService.DeleteLoan(id); err != nil {
		respondWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
