package expenses

import "time"

// CreateExpenseRequest records a new expense. New expenses always start
// pending; settlement goes through MarkPaid.
type CreateExpenseRequest struct {
	Date        time.Time `json:"date" validate:"required"`
	Category    string    `json:"category" validate:"required,max=100"`
	Description string    `json:"description" validate:"max=500"`
	Amount      float64   `json:"amount" validate:"required,gt=0"`
	Currency    string    `json:"currency" validate:"required,len=3"`
	VendorID    *int64    `json:"vendor_id,omitempty" validate:"omitempty,gt=0"`
}

// UpdateExpenseRequest edits an expense.
type UpdateExpenseRequest struct {
	Date        *time.Time `json:"date,omitempty"`
	Category    *string    `json:"category,omitempty" validate:"omitempty,max=100"`
	Description *string    `json:"description,omitempty" validate:"omitempty,max=500"`
	Amount      *float64   `json:"amount,omitempty" validate:"omitempty,gt=0"`
	Currency    *string    `json:"currency,omitempty" validate:"omitempty,len=3"`
	VendorID    *int64     `json:"vendor_id,omitempty"`
}

// ListExpensesRequest filters the expense listing.
type ListExpensesRequest struct {
	Category string     `json:"category"`
	Status   Status     `json:"status"`
	From     *time.Time `json:"from,omitempty"`
	To       *time.Time `json:"to,omitempty"`
	Limit    int        `json:"limit" validate:"gte=0,lte=1000"`
	Offset   int        `json:"offset" validate:"gte=0"`
}
