package invoices

import "time"

// LineItemInput is one billable row on a create/update request. Amount is
// always recomputed server-side from quantity and unit price. Key is assigned
// by the server on first write; clients echo it back on edits so sync-written
// rows keep their identity.
type LineItemInput struct {
	Key         string  `json:"key" validate:"max=100"`
	Description string  `json:"description" validate:"required,max=500"`
	Quantity    float64 `json:"quantity" validate:"gt=0"`
	UnitPrice   float64 `json:"unit_price" validate:"gte=0"`
}

// CreateInvoiceRequest creates a customer invoice or vendor bill.
type CreateInvoiceRequest struct {
	Number    string          `json:"number" validate:"max=50"`
	PartyType PartyType       `json:"party_type" validate:"required,oneof=customer vendor"`
	PartyID   int64           `json:"party_id" validate:"required,gt=0"`
	Date      time.Time       `json:"date" validate:"required"`
	DueDate   time.Time       `json:"due_date"`
	Currency  string          `json:"currency" validate:"required,len=3"`
	TaxRate   float64         `json:"tax_rate" validate:"gte=0,lte=100"`
	Discount  float64         `json:"discount" validate:"gte=0"`
	LineItems []LineItemInput `json:"line_items" validate:"dive"`
	Notes     string          `json:"notes"`
}

// UpdateInvoiceRequest edits an invoice. A nil LineItems leaves the existing
// rows (including sync-written ones) untouched.
type UpdateInvoiceRequest struct {
	Date      *time.Time       `json:"date,omitempty"`
	DueDate   *time.Time       `json:"due_date,omitempty"`
	Currency  *string          `json:"currency,omitempty" validate:"omitempty,len=3"`
	TaxRate   *float64         `json:"tax_rate,omitempty" validate:"omitempty,gte=0,lte=100"`
	Discount  *float64         `json:"discount,omitempty" validate:"omitempty,gte=0"`
	Status    *Status          `json:"status,omitempty"`
	LineItems *[]LineItemInput `json:"line_items,omitempty" validate:"omitempty,dive"`
	Notes     *string          `json:"notes,omitempty"`
}

// ListInvoicesRequest filters the invoice listing.
type ListInvoicesRequest struct {
	PartyType PartyType `json:"party_type"`
	PartyID   int64     `json:"party_id"`
	Status    Status    `json:"status"`
	Limit     int       `json:"limit" validate:"gte=0,lte=1000"`
	Offset    int       `json:"offset" validate:"gte=0"`
}

// RecordPaymentRequest registers a received or made payment.
type RecordPaymentRequest struct {
	Amount float64 `json:"amount" validate:"required,gt=0"`
}

// ShipmentCharge is the shipment-side input to the invoice sync: the monetary
// contribution of one shipment, to be folded into the linked invoice as a
// single keyed line item.
type ShipmentCharge struct {
	InvoiceID    int64
	Reference    string
	Direction    string
	Mode         string
	Currency     string
	TotalCharges float64
	InvoiceValue float64
}
