package customers

import (
	"context"
	"fmt"
)

// Service handles customer profile business logic.
type Service struct {
	repo RepositoryPort
}

// NewService builds Service instance.
func NewService(repo RepositoryPort) *Service {
	return &Service{repo: repo}
}

// Create stores a new customer profile.
func (s *Service) Create(ctx context.Context, req CreateCustomerRequest, createdBy int64) (*Customer, error) {
	customer := Customer{
		Name:            req.Name,
		ContactPerson:   req.ContactPerson,
		Emails:          req.Emails,
		Phones:          req.Phones,
		Address:         req.Address,
		Country:         req.Country,
		TaxRegistration: req.TaxRegistration,
		Commodities:     req.Commodities,
		Consignees:      toConsignees(req.Consignees),
		Notes:           req.Notes,
		CreatedBy:       createdBy,
	}
	created, err := s.repo.Create(ctx, customer)
	if err != nil {
		return nil, fmt.Errorf("create customer: %w", err)
	}
	return created, nil
}

// Update applies partial edits to an existing profile and returns the stored
// record, so callers refresh their copy only after the write succeeded.
func (s *Service) Update(ctx context.Context, id int64, req UpdateCustomerRequest) (*Customer, error) {
	existing, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get customer: %w", err)
	}

	if req.Name != nil {
		existing.Name = *req.Name
	}
	if req.ContactPerson != nil {
		existing.ContactPerson = *req.ContactPerson
	}
	if req.Emails != nil {
		existing.Emails = *req.Emails
	}
	if req.Phones != nil {
		existing.Phones = *req.Phones
	}
	if req.Address != nil {
		existing.Address = *req.Address
	}
	if req.Country != nil {
		existing.Country = *req.Country
	}
	if req.TaxRegistration != nil {
		existing.TaxRegistration = *req.TaxRegistration
	}
	if req.Commodities != nil {
		existing.Commodities = *req.Commodities
	}
	if req.Consignees != nil {
		existing.Consignees = toConsignees(*req.Consignees)
	}
	if req.Notes != nil {
		existing.Notes = *req.Notes
	}

	updated, err := s.repo.Update(ctx, *existing)
	if err != nil {
		return nil, fmt.Errorf("update customer: %w", err)
	}
	return updated, nil
}

// Get returns a single profile.
func (s *Service) Get(ctx context.Context, id int64) (*Customer, error) {
	return s.repo.Get(ctx, id)
}

// List returns profiles matching the filter plus the unfiltered-match total.
func (s *Service) List(ctx context.Context, req ListCustomersRequest) ([]Customer, int, error) {
	return s.repo.List(ctx, req)
}

// Delete removes a profile.
func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func toConsignees(inputs []ConsigneeInput) []Consignee {
	out := make([]Consignee, 0, len(inputs))
	for _, in := range inputs {
		out = append(out, Consignee{Name: in.Name, TradeLicense: in.TradeLicense})
	}
	return out
}
