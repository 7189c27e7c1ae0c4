package expenses

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/freightdesk/freightdesk/internal/fx"
)

// ErrAlreadyPaid indicates a mark-paid on an expense that is already settled.
var ErrAlreadyPaid = errors.New("expense already paid")

// Service handles expense business logic.
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

// Create records a new pending expense.
func (s *Service) Create(ctx context.Context, req CreateExpenseRequest, createdBy int64) (*Expense, error) {
	expense := Expense{
		Date:        req.Date,
		Category:    req.Category,
		Description: req.Description,
		Amount:      fx.Round2(req.Amount),
		Currency:    req.Currency,
		Status:      StatusPending,
		VendorID:    req.VendorID,
		CreatedBy:   createdBy,
	}
	created, err := s.repo.Create(ctx, expense)
	if err != nil {
		return nil, fmt.Errorf("create expense: %w", err)
	}
	return created, nil
}

// Update applies a partial edit. Status is not editable here; settlement goes
// through MarkPaid.
func (s *Service) Update(ctx context.Context, id int64, req UpdateExpenseRequest) (*Expense, error) {
	existing, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Date != nil {
		existing.Date = *req.Date
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
	if req.VendorID != nil {
		existing.VendorID = req.VendorID
	}
	return s.repo.Update(ctx, *existing)
}

// MarkPaid settles a pending expense.
func (s *Service) MarkPaid(ctx context.Context, id int64) (*Expense, error) {
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

// Get returns a single expense.
func (s *Service) Get(ctx context.Context, id int64) (*Expense, error) {
	return s.repo.Get(ctx, id)
}

// List returns expenses matching the filter.
func (s *Service) List(ctx context.Context, req ListExpensesRequest) ([]Expense, int, error) {
	return s.repo.List(ctx, req)
}

// Delete removes an expense.
func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
