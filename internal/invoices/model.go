package invoices

import (
	"time"

	"github.com/freightdesk/freightdesk/internal/fx"
)

// PartyType tags who an invoice is addressed to.
type PartyType string

const (
	PartyCustomer PartyType = "customer"
	PartyVendor   PartyType = "vendor"
)

// Status enumerates the invoice lifecycle.
type Status string

const (
	StatusDraft         Status = "draft"
	StatusSent          Status = "sent"
	StatusPaid          Status = "paid"
	StatusPartiallyPaid Status = "partially_paid"
	StatusOverdue       Status = "overdue"
	StatusCancelled     Status = "cancelled"
)

// LineItem is a single billable row. Key identifies rows written by the
// shipment sync so a re-save replaces its own contribution instead of
// appending a duplicate.
type LineItem struct {
	ID          int64   `json:"id"`
	Key         string  `json:"key"`
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Amount      float64 `json:"amount"`
}

// Invoice is a receivable (customer) or payable (vendor) document.
type Invoice struct {
	ID         int64      `json:"id"`
	Number     string     `json:"number"`
	PartyType  PartyType  `json:"party_type"`
	PartyID    int64      `json:"party_id"`
	Date       time.Time  `json:"date"`
	DueDate    time.Time  `json:"due_date"`
	Currency   string     `json:"currency"`
	LineItems  []LineItem `json:"line_items"`
	Subtotal   float64    `json:"subtotal"`
	TaxRate    float64    `json:"tax_rate"`
	TaxAmount  float64    `json:"tax_amount"`
	Discount   float64    `json:"discount"`
	Total      float64    `json:"total"`
	PaidAmount float64    `json:"paid_amount"`
	Status     Status     `json:"status"`
	Notes      string     `json:"notes,omitempty"`
	CreatedBy  int64      `json:"created_by"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// recalcTotals recomputes line amounts, subtotal, tax and total in place.
// total = subtotal + taxAmount - discount, taxAmount = subtotal * taxRate/100.
func (inv *Invoice) recalcTotals() {
	var subtotal float64
	for i := range inv.LineItems {
		inv.LineItems[i].Amount = fx.Round2(inv.LineItems[i].Quantity * inv.LineItems[i].UnitPrice)
		subtotal += inv.LineItems[i].Amount
	}
	inv.Subtotal = fx.Round2(subtotal)
	inv.TaxAmount = fx.Round2(inv.Subtotal * inv.TaxRate / 100)
	inv.Total = fx.Round2(inv.Subtotal + inv.TaxAmount - inv.Discount)
}

// deriveStatus moves the status according to payments. Draft and cancelled
// documents are left alone.
func (inv *Invoice) deriveStatus() {
	if inv.Status == StatusDraft || inv.Status == StatusCancelled {
		return
	}
	switch {
	case inv.PaidAmount >= inv.Total-0.005 && inv.Total > 0:
		inv.Status = StatusPaid
	case inv.PaidAmount > 0:
		inv.Status = StatusPartiallyPaid
	}
}

// ValidStatus reports whether s is a known lifecycle value.
func ValidStatus(s Status) bool {
	switch s {
	case StatusDraft, StatusSent, StatusPaid, StatusPartiallyPaid, StatusOverdue, StatusCancelled:
		return true
	}
	return false
}
