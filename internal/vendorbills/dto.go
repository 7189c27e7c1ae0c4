package vendorbills

import "time"

// CreateVendorBillRequest records a new bill. New bills always start pending.
type CreateVendorBillRequest struct {
	VendorID    int64     `json:"vendor_id" validate:"required,gt=0"`
	BillNumber  string    `json:"bill_number" validate:"required,max=50"`
	Date        time.Time `json:"date" validate:"required"`
	DueDate     time.Time `json:"due_date" validate:"required"`
	Category    string    `json:"category" validate:"max=100"`
	Description string    `json:"description" validate:"max=500"`
	Amount      float64   `json:"amount" validate:"required,gt=0"`
	Currency    string    `json:"currency" validate:"required,len=3"`
}

// UpdateVendorBillRequest edits a bill.
type UpdateVendorBillRequest struct {
	VendorID    *int64     `json:"vendor_id,omitempty" validate:"omitempty,gt=0"`
	BillNumber  *string    `json:"bill_number,omitempty" validate:"omitempty,max=50"`
	Date        *time.Time `json:"date,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	Category    *string    `json:"category,omitempty" validate:"omitempty,max=100"`
	Description *string    `json:"description,omitempty" validate:"omitempty,max=500"`
	Amount      *float64   `json:"amount,omitempty" validate:"omitempty,gt=0"`
	Currency    *string    `json:"currency,omitempty" validate:"omitempty,len=3"`
}

// ListVendorBillsRequest filters the bill listing.
type ListVendorBillsRequest struct {
	VendorID int64  `json:"vendor_id"`
	Status   Status `json:"status"`
	Limit    int    `json:"limit" validate:"gte=0,lte=1000"`
	Offset   int    `json:"offset" validate:"gte=0"`
}
