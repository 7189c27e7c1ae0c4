package vendorbills

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/freightdesk/freightdesk/internal/fx"
)

// ErrAlreadyPaid indicates a mark-paid on a bill that is already settled.
var ErrAlreadyPaid = errors.New("vendor bill already paid")

// Service handles vendor bill business logic.
type Service struct {
	repo RepositoryPort
	now  func() time.Time
}

// NewService builds Service instance.
func NewService(repo RepositoryPort) *Service {
	return &Service{repo: repo, now: time.Now}
}

// WithNow overrides the clock, for tests.
func (s *Service) WithNow(now func() time.Time) *Service {
	s.now = now
	return s
}

// Create records a new pending bill.
func (s *Service) Create(ctx context.Context, req CreateVendorBillRequest, createdBy int64) (*VendorBill, error) {
	bill := VendorBill{
		VendorID:    req.VendorID,
		BillNumber:  req.BillNumber,
		Date:        req.Date,
		DueDate:     req.DueDate,
		Category:    req.Category,
		Description: req.Description,
		Amount:      fx.Round2(req.Amount),
		Currency:    req.Currency,
		Status:      StatusPending,
		CreatedBy:   createdBy,
	}
	created, err := s.repo.Create(ctx, bill)
	if err != nil {
		if errors.Is(err, ErrDuplicateNumber) {
			return nil, err
		}
		return nil, fmt.Errorf("create vendor bill: %w", err)
	}
	return created, nil
}

// Update applies a partial edit. Settlement goes through MarkPaid.
func (s *Service) Update(ctx context.Context, id int64, req UpdateVendorBillRequest) (*VendorBill, error) {
	existing, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.VendorID != nil {
		existing.VendorID = *req.VendorID
	}
	if req.BillNumber != nil {
		existing.BillNumber = *req.BillNumber
	}
	if req.Date != nil {
		existing.Date = *req.Date
	}
	if req.DueDate != nil {
		existing.DueDate = *req.DueDate
	}
	if req.Category != nil {
		existing.Category = *req.Category
	}
	if req.Description != nil {
		existing.Description = *req.Description
	}
	if req.Amount != nil {
		existing.Amount = fx.Round2(*req.Amount)
	}
	if req.Currency != nil {
		existing.Currency = *req.Currency
	}
	return s.repo.Update(ctx, *existing)
}

// MarkPaid settles a pending bill.
func (s *Service) MarkPaid(ctx context.Context, id int64) (*VendorBill, error) {
	existing, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing.Status == StatusPaid {
		return nil, ErrAlreadyPaid
	}
	paidAt := s.now()
	existing.Status = StatusPaid
	existing.PaidAt = &paidAt
	return s.repo.Update(ctx, *existing)
}

// Get returns a single bill.
func (s *Service) Get(ctx context.Context, id int64) (*VendorBill, error) {
	return s.repo.Get(ctx, id)
}

// List returns bills matching the filter.
func (s *Service) List(ctx context.Context, req ListVendorBillsRequest) ([]VendorBill, int, error) {
	return s.repo.List(ctx, req)
}

// Delete removes a bill.
func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
