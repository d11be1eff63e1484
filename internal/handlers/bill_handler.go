package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "balanco/internal/errors"
	"balanco/internal/models"
	"balanco/internal/services"
)

// BillHandler handles recurring bill requests.
type BillHandler struct {
	billService services.BillServicer
}

// NewBillHandler creates a new BillHandler.
func NewBillHandler(billService services.BillServicer) *BillHandler {
	return &BillHandler{billService: billService}
}

// CreateBillRequest is the payload for creating a bill.
type CreateBillRequest struct {
	Name        string  `json:"name" binding:"required"`
	Company     string  `json:"company"`
	Amount      float64 `json:"amount" binding:"gte=0"`
	DueDay      int     `json:"dueDay" binding:"required,min=1,max=31"`
	Category    string  `json:"category" binding:"required"`
	IsRecurring bool    `json:"isRecurring"`
	NextDue     string  `json:"nextDue" binding:"omitempty,datetime=2006-01-02"`
}

// UpdateBillRequest is the payload for replacing a bill; it carries
// isActive and lastPaid so a bill can be paused or marked paid.
type UpdateBillRequest struct {
	Name        string  `json:"name" binding:"required"`
	Company     string  `json:"company"`
	Amount      float64 `json:"amount" binding:"gte=0"`
	DueDay      int     `json:"dueDay" binding:"required,min=1,max=31"`
	Category    string  `json:"category" binding:"required"`
	IsRecurring bool    `json:"isRecurring"`
	IsActive    bool    `json:"isActive"`
	LastPaid    string  `json:"lastPaid" binding:"omitempty,datetime=2006-01-02"`
	NextDue     string  `json:"nextDue" binding:"omitempty,datetime=2006-01-02"`
}

// CreateBill handles the creation of a new bill.
// @Summary     Create a bill
// @Description Add a recurring bill; new bills start active
// @Tags        bills
// @Accept      json
// @Produce     json
// @Param       request body CreateBillRequest true "Bill details"
// @Success     201 {object} models.Bill "Bill created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /bills [post]
func (h *BillHandler) CreateBill(c *gin.Context) {
	var req CreateBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	bill, err := h.billService.CreateBill(models.Bill{
		Name:        req.Name,
		Company:     req.Company,
		Amount:      req.Amount,
		DueDay:      req.DueDay,
		Category:    req.Category,
		IsRecurring: req.IsRecurring,
		NextDue:     req.NextDue,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"bill": bill})
}

// GetBills handles listing all bills.
// @Summary     List bills
// @Tags        bills
// @Produce     json
// @Success     200 {array} models.Bill "Bills"
// @Router      /bills [get]
func (h *BillHandler) GetBills(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"bills": h.billService.ListBills()})
}

// UpdateBill handles replacing an existing bill.
// @Summary     Update a bill
// @Tags        bills
// @Accept      json
// @Produce     json
// @Param       id      path string            true "Bill ID"
// @Param       request body UpdateBillRequest true "Bill details"
// @Success     200 {object} models.Bill "Bill updated"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Bill not found"
// @Router      /bills/{id} [put]
func (h *BillHandler) UpdateBill(c *gin.Context) {
	id, err := parseRecordID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	bill, err := h.billService.UpdateBill(models.Bill{
		ID:          id,
		Name:        req.Name,
		Company:     req.Company,
		Amount:      req.Amount,
		DueDay:      req.DueDay,
		Category:    req.Category,
		IsRecurring: req.IsRecurring,
		IsActive:    req.IsActive,
		LastPaid:    req.LastPaid,
		NextDue:     req.NextDue,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"bill": bill})
}

// DeleteBill handles removing a bill.
// @Summary     Delete a bill
// @Tags        bills
// @Produce     json
// @Param       id path string true "Bill ID"
// @Success     204 "Bill deleted"
// @Failure     404 {object} ErrorResponse "Bill not found"
// @Router      /bills/{id} [delete]
func (h *BillHandler) DeleteBill(c *gin.Context) {
	id, err := parseRecordID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.billService.DeleteBill(id); err != nil {
		respondWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
