package vendors

// CreateVendorRequest carries a new vendor profile. Same contact rules as
// customers: at least one email and one phone, at most three of each.
type CreateVendorRequest struct {
	Name            string   `json:"name" validate:"required,max=200"`
	ContactPerson   string   `json:"contact_person" validate:"max=200"`
	Emails          []string `json:"emails" validate:"required,min=1,max=3,dive,email"`
	Phones          []string `json:"phones" validate:"required,min=1,max=3,dive,max=50"`
	Address         string   `json:"address" validate:"max=500"`
	Country         string   `json:"country" validate:"max=100"`
	TaxRegistration string   `json:"tax_registration" validate:"max=50"`
	Services        string   `json:"services" validate:"max=500"`
	PaymentTerms    string   `json:"payment_terms" validate:"max=100"`
	Notes           string   `json:"notes"`
}

// UpdateVendorRequest carries partial edits from the edit modal.
type UpdateVendorRequest struct {
	Name            *string   `json:"name,omitempty" validate:"omitempty,max=200"`
	ContactPerson   *string   `json:"contact_person,omitempty" validate:"omitempty,max=200"`
	Emails          *[]string `json:"emails,omitempty" validate:"omitempty,min=1,max=3,dive,email"`
	Phones          *[]string `json:"phones,omitempty" validate:"omitempty,min=1,max=3,dive,max=50"`
	Address         *string   `json:"address,omitempty" validate:"omitempty,max=500"`
	Country         *string   `json:"country,omitempty" validate:"omitempty,max=100"`
	TaxRegistration *string   `json:"tax_registration,omitempty" validate:"omitempty,max=50"`
	Services        *string   `json:"services,omitempty" validate:"omitempty,max=500"`
	PaymentTerms    *string   `json:"payment_terms,omitempty" validate:"omitempty,max=100"`
	Notes           *string   `json:"notes,omitempty"`
}

// ListVendorsRequest filters the vendor listing.
type ListVendorsRequest struct {
	Search string `json:"search"`
	Limit  int    `json:"limit" validate:"gte=0,lte=1000"`
	Offset int    `json:"offset" validate:"gte=0"`
}
