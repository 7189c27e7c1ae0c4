package vendors

import (
	"context"
	"fmt"
)

// Service handles vendor profile business logic.
type Service struct {
	repo RepositoryPort
}

// NewService builds Service instance.
func NewService(repo RepositoryPort) *Service {
	return &Service{repo: repo}
}

// Create stores a new vendor profile.
func (s *Service) Create(ctx context.Context, req CreateVendorRequest, createdBy int64) (*Vendor, error) {
	vendor := Vendor{
		Name:            req.Name,
		ContactPerson:   req.ContactPerson,
		Emails:          req.Emails,
		Phones:          req.Phones,
		Address:         req.Address,
		Country:         req.Country,
		TaxRegistration: req.TaxRegistration,
		Services:        req.Services,
		PaymentTerms:    req.PaymentTerms,
		Notes:           req.Notes,
		CreatedBy:       createdBy,
	}
	created, err := s.repo.Create(ctx, vendor)
	if err != nil {
		return nil, fmt.Errorf("create vendor: %w", err)
	}
	return created, nil
}

// Update applies partial edits and returns the stored record.
func (s *Service) Update(ctx context.Context, id int64, req UpdateVendorRequest) (*Vendor, error) {
	existing, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get vendor: %w", err)
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
	if req.Services != nil {
		existing.Services = *req.Services
	}
	if req.PaymentTerms != nil {
		existing.PaymentTerms = *req.PaymentTerms
	}
	if req.Notes != nil {
		existing.Notes = *req.Notes
	}

	updated, err := s.repo.Update(ctx, *existing)
	if err != nil {
		return nil, fmt.Errorf("update vendor: %w", err)
	}
	return updated, nil
}

// Get returns a single profile.
func (s *Service) Get(ctx context.Context, id int64) (*Vendor, error) {
	return s.repo.Get(ctx, id)
}

// List returns profiles matching the filter.
func (s *Service) List(ctx context.Context, req ListVendorsRequest) ([]Vendor, int, error) {
	return s.repo.List(ctx, req)
}

// Delete removes a profile.
func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
