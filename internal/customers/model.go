package customers

import "time"

// Consignee is a named receiving party attached to a customer profile.
type Consignee struct {
	Name         string `json:"name"`
	TradeLicense string `json:"trade_license"`
}

// Customer is a freight customer profile. Up to three emails and phones are
// kept per profile, mirroring the contact blocks on the profile form.
type Customer struct {
	ID              int64       `json:"id"`
	Name            string      `json:"name"`
	ContactPerson   string      `json:"contact_person,omitempty"`
	Emails          []string    `json:"emails"`
	Phones          []string    `json:"phones"`
	Address         string      `json:"address,omitempty"`
	Country         string      `json:"country,omitempty"`
	TaxRegistration string      `json:"tax_registration,omitempty"`
	Commodities     string      `json:"commodities,omitempty"`
	Consignees      []Consignee `json:"consignees"`
	Notes           string      `json:"notes,omitempty"`
	CreatedBy       int64       `json:"created_by"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}
