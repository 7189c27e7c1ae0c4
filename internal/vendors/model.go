package vendors

import "time"

// Vendor is a service-provider profile: shipping lines, transporters,
// customs brokers and similar counterparties the office buys from.
type Vendor struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	ContactPerson   string    `json:"contact_person,omitempty"`
	Emails          []string  `json:"emails"`
	Phones          []string  `json:"phones"`
	Address         string    `json:"address,omitempty"`
	Country         string    `json:"country,omitempty"`
	TaxRegistration string    `json:"tax_registration,omitempty"`
	Services        string    `json:"services,omitempty"`
	PaymentTerms    string    `json:"payment_terms,omitempty"`
	Notes           string    `json:"notes,omitempty"`
	CreatedBy       int64     `json:"created_by"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
