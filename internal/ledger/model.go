package ledger

import (
	"errors"
	"time"
)

// EntryType enumerates what a ledger entry records.
type EntryType string

const (
	TypeInvoice    EntryType = "invoice"
	TypePayment    EntryType = "payment"
	TypeAdjustment EntryType = "adjustment"
	TypeCreditNote EntryType = "credit_note"
)

// ValidType reports whether t is a known entry type.
func ValidType(t EntryType) bool {
	switch t {
	case TypeInvoice, TypePayment, TypeAdjustment, TypeCreditNote:
		return true
	}
	return false
}

// PartyType tags which side of the book the party sits on.
type PartyType string

const (
	PartyCustomer PartyType = "customer"
	PartyVendor   PartyType = "vendor"
)

var (
	// ErrBothSides indicates an entry with both debit and credit set.
	ErrBothSides = errors.New("ledger entry cannot carry both debit and credit")
	// ErrNoAmount indicates an entry with neither debit nor credit set.
	ErrNoAmount = errors.New("ledger entry requires a debit or a credit")
	// ErrNegativeAmount indicates a negative debit or credit.
	ErrNegativeAmount = errors.New("ledger amounts cannot be negative")
)

// Entry is a manual general-ledger record. Exactly one of Debit and Credit is
// strictly positive.
type Entry struct {
	ID          int64     `json:"id"`
	Date        time.Time `json:"date"`
	PartyType   PartyType `json:"party_type,omitempty"`
	PartyID     *int64    `json:"party_id,omitempty"`
	Debit       float64   `json:"debit"`
	Credit      float64   `json:"credit"`
	Type        EntryType `json:"type"`
	Description string    `json:"description,omitempty"`
	Reference   string    `json:"reference,omitempty"`
	Currency    string    `json:"currency"`
	CreatedBy   int64     `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Validate enforces the debit/credit exclusivity rule.
func (e Entry) Validate() error {
	if e.Debit < 0 || e.Credit < 0 {
		return ErrNegativeAmount
	}
	if e.Debit > 0 && e.Credit > 0 {
		return ErrBothSides
	}
	if e.Debit == 0 && e.Credit == 0 {
		return ErrNoAmount
	}
	return nil
}
