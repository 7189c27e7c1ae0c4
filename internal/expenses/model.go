package expenses

import "time"

// Status tracks whether an expense has been settled.
type Status string

const (
	StatusPending Status = "pending"
	StatusPaid    Status = "paid"
)

// Expense is a category-tagged monetary entry.
type Expense struct {
	ID          int64      `json:"id"`
	Date        time.Time  `json:"date"`
	Category    string     `json:"category"`
	Description string     `json:"description,omitempty"`
	Amount      float64    `json:"amount"`
	Currency    string     `json:"currency"`
	Status      Status     `json:"status"`
	VendorID    *int64     `json:"vendor_id,omitempty"`
	PaidAt      *time.Time `json:"paid_at,omitempty"`
	CreatedBy   int64      `json:"created_by"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
