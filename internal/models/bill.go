package models

// Bill represents a recurring household bill. Only active bills count
// toward the monthly bills total.
type Bill struct {
	ID          string  `json:"id" validate:"required"`
	Name        string  `json:"name" validate:"required"`
	Company     string  `json:"company"`
	Amount      float64 `json:"amount" validate:"gte=0"`
	DueDay      int     `json:"dueDay" validate:"min=1,max=31"`
	Category    string  `json:"category" validate:"required"`
	IsRecurring bool    `json:"isRecurring"`
	IsActive    bool    `json:"isActive"`
	LastPaid    string  `json:"lastPaid,omitempty" validate:"omitempty,datetime=2006-01-02"`
	NextDue     string  `json:"nextDue,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

// RecordID implements Record.
func (b Bill) RecordID() string { return b.ID }
