package ledger

import "time"

// CreateEntryRequest records a manual ledger entry. Exactly one of debit and
// credit must be positive; Entry.Validate enforces that after field checks.
type CreateEntryRequest struct {
	Date        time.Time `json:"date" validate:"required"`
	PartyType   PartyType `json:"party_type" validate:"omitempty,oneof=customer vendor"`
	PartyID     *int64    `json:"party_id,omitempty" validate:"omitempty,gt=0"`
	Debit       float64   `json:"debit" validate:"gte=0"`
	Credit      float64   `json:"credit" validate:"gte=0"`
	Type        EntryType `json:"type" validate:"required,oneof=invoice payment adjustment credit_note"`
	Description string    `json:"description" validate:"max=500"`
	Reference   string    `json:"reference" validate:"max=100"`
	Currency    string    `json:"currency" validate:"required,len=3"`
}

// ListEntriesRequest filters the ledger listing.
type ListEntriesRequest struct {
	PartyType PartyType  `json:"party_type"`
	PartyID   int64      `json:"party_id"`
	Type      EntryType  `json:"type"`
	From      *time.Time `json:"from,omitempty"`
	To        *time.Time `json:"to,omitempty"`
	Limit     int        `json:"limit" validate:"gte=0,lte=1000"`
	Offset    int        `json:"offset" validate:"gte=0"`
}

// Totals carries the running debit and credit sums over a filtered listing.
type Totals struct {
	Debit  float64 `json:"debit"`
	Credit float64 `json:"credit"`
}
