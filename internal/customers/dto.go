package customers

// ConsigneeInput mirrors a consignee row on the profile form.
type ConsigneeInput struct {
	Name         string `json:"name" validate:"required,max=200"`
	TradeLicense string `json:"trade_license" validate:"max=100"`
}

// CreateCustomerRequest carries a new customer profile. At least one email and
// one phone are required; the form allows up to three of each.
type CreateCustomerRequest struct {
	Name            string           `json:"name" validate:"required,max=200"`
	ContactPerson   string           `json:"contact_person" validate:"max=200"`
	Emails          []string         `json:"emails" validate:"required,min=1,max=3,dive,email"`
	Phones          []string         `json:"phones" validate:"required,min=1,max=3,dive,max=50"`
	Address         string           `json:"address" validate:"max=500"`
	Country         string           `json:"country" validate:"max=100"`
	TaxRegistration string           `json:"tax_registration" validate:"max=50"`
	Commodities     string           `json:"commodities" validate:"max=500"`
	Consignees      []ConsigneeInput `json:"consignees" validate:"dive"`
	Notes           string           `json:"notes"`
}

// UpdateCustomerRequest carries partial edits from the edit modal.
type UpdateCustomerRequest struct {
	Name            *string           `json:"name,omitempty" validate:"omitempty,max=200"`
	ContactPerson   *string           `json:"contact_person,omitempty" validate:"omitempty,max=200"`
	Emails          *[]string         `json:"emails,omitempty" validate:"omitempty,min=1,max=3,dive,email"`
	Phones          *[]string         `json:"phones,omitempty" validate:"omitempty,min=1,max=3,dive,max=50"`
	Address         *string           `json:"address,omitempty" validate:"omitempty,max=500"`
	Country         *string           `json:"country,omitempty" validate:"omitempty,max=100"`
	TaxRegistration *string           `json:"tax_registration,omitempty" validate:"omitempty,max=50"`
	Commodities     *string           `json:"commodities,omitempty" validate:"omitempty,max=500"`
	Consignees      *[]ConsigneeInput `json:"consignees,omitempty" validate:"omitempty,dive"`
	Notes           *string           `json:"notes,omitempty"`
}

// ListCustomersRequest filters the customer listing. Search is a
// case-insensitive substring match over name, emails, phones and tax
// registration.
type ListCustomersRequest struct {
	Search string `json:"search"`
	Limit  int    `json:"limit" validate:"gte=0,lte=1000"`
	Offset int    `json:"offset" validate:"gte=0"`
}
