package vendorbills

import "time"

// Status tracks whether a bill has been settled.
type Status string

const (
	StatusPending Status = "pending"
	StatusPaid    Status = "paid"
)

// VendorBill is a payable recorded against a vendor. It is a standalone
// entity, distinct from vendor-party invoices.
type VendorBill struct {
	ID          int64      `json:"id"`
	VendorID    int64      `json:"vendor_id"`
	BillNumber  string     `json:"bill_number"`
	Date        time.Time  `json:"date"`
	DueDate     time.Time  `json:"due_date"`
	Category    string     `json:"category,omitempty"`
	Description string     `json:"description,omitempty"`
	Amount      float64    `json:"amount"`
	Currency    string     `json:"currency"`
	Status      Status     `json:"status"`
	PaidAt      *time.Time `json:"paid_at,omitempty"`
	CreatedBy   int64      `json:"created_by"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// Overdue reports whether a pending bill is past its due date at the given
// instant.
func (b *VendorBill) Overdue(now time.Time) bool {
	return b.Status == StatusPending && b.DueDate.Before(now)
}
