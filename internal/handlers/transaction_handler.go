package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "balanco/internal/errors"
	"balanco/internal/models"
	"balanco/internal/services"
)

// TransactionHandler handles ledger entry requests.
type TransactionHandler struct {
	transactionService services.TransactionServicer
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(transactionService services.TransactionServicer) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService}
}

// TransactionRequest is the payload for creating or updating a ledger
// entry. Updates replace the whole record; edits resubmit every field.
type TransactionRequest struct {
	Kind        models.TransactionKind `json:"type" binding:"required,transaction_kind"`
	Amount      float64                `json:"amount" binding:"gte=0"`
	Category    string                 `json:"category" binding:"required"`
	Description string                 `json:"description"`
	Date        string                 `json:"date" binding:"required,datetime=2006-01-02"`
	IsRecurring bool                   `json:"isRecurring"`
}

// CreateTransaction handles the creation of a new ledger entry.
// @Summary     Create a transaction
// @Description Append a new income or expense entry to the ledger
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Param       request body TransactionRequest true "Transaction details"
// @Success     201 {object} models.Transaction "Transaction created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions [post]
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	var req TransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	t, err := h.transactionService.CreateTransaction(
		req.Kind, req.Amount, req.Category, req.Description, req.Date, req.IsRecurring,
	)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"transaction": t})
}

// GetTransactions handles listing the whole ledger.
// @Summary     List transactions
// @Description Get every ledger entry
// @Tags        transactions
// @Produce     json
// @Success     200 {array} models.Transaction "Transactions"
// @Router      /transactions [get]
func (h *TransactionHandler) GetTransactions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"transactions": h.transactionService.ListTransactions()})
}

// UpdateTransaction handles replacing an existing ledger entry.
// @Summary     Update a transaction
// @Description Replace the ledger entry with the given ID
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Param       id      path string             true "Transaction ID"
// @Param       request body TransactionRequest true "Transaction details"
// @Success     200 {object} models.Transaction "Transaction updated"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Router      /transactions/{id} [put]
func (h *TransactionHandler) UpdateTransaction(c *gin.Context) {
	id, err := parseRecordID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req TransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	t, err := h.transactionService.UpdateTransaction(models.Transaction{
		ID:          id,
		Kind:        req.Kind,
		Amount:      req.Amount,
		Category:    req.Category,
		Description: req.Description,
		Date:        req.Date,
		IsRecurring: req.IsRecurring,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"transaction": t})
}

// DeleteTransaction handles removing a ledger entry.
// @Summary     Delete a transaction
// @Description Remove the ledger entry with the given ID
// @Tags        transactions
// @Produce     json
// @Param       id path string true "Transaction ID"
// @Success     204 "Transaction deleted"
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Router      /transactions/{id} [delete]
func (h *TransactionHandler) DeleteTransaction(c *gin.Context) {
	id, err := parseRecordID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.transactionService.DeleteTransaction(id); err != nil {
		respondWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
