package models

// TransactionKind represents the direction of a ledger entry
type TransactionKind string

const (
	TransactionIncome  TransactionKind = "income"
	TransactionExpense TransactionKind = "expense"
)

// Transaction is a raw ledger entry, not tied to a category total.
// Recurring expenses are treated as standing monthly obligations
// regardless of their literal date.
type Transaction struct {
	ID          string          `json:"id" validate:"required"`
	Kind        TransactionKind `json:"type" validate:"required,oneof=income expense"`
	Amount      float64         `json:"amount" validate:"gte=0"`
	Category    string          `json:"category" validate:"required"`
	Description string          `json:"description"`
	Date        string          `json:"date" validate:"required,datetime=2006-01-02"`
	IsRecurring bool            `json:"isRecurring,omitempty"`
}

// RecordID implements Record.
func (t Transaction) RecordID() string { return t.ID }
