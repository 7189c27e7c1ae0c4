package ledger

import (
	"context"
	"fmt"

	"github.com/freightdesk/freightdesk/internal/fx"
)

// Service handles ledger business logic.
type Service struct {
	repo RepositoryPort
}

// NewService builds Service instance.
func NewService(repo RepositoryPort) *Service {
	return &Service{repo: repo}
}

// Create validates and records a ledger entry.
func (s *Service) Create(ctx context.Context, req CreateEntryRequest, createdBy int64) (*Entry, error) {
	entry := Entry{
		Date:        req.Date,
		PartyType:   req.PartyType,
		PartyID:     req.PartyID,
		Debit:       fx.Round2(req.Debit),
		Credit:      fx.Round2(req.Credit),
		Type:        req.Type,
		Description: req.Description,
		Reference:   req.Reference,
		Currency:    req.Currency,
		CreatedBy:   createdBy,
	}
	if err := entry.Validate(); err != nil {
		return nil, err
	}
	created, err := s.repo.Create(ctx, entry)
	if err != nil {
		return nil, fmt.Errorf("create ledger entry: %w", err)
	}
	return created, nil
}

// Get returns a single entry.
func (s *Service) Get(ctx context.Context, id int64) (*Entry, error) {
	return s.repo.Get(ctx, id)
}

// List returns entries matching the filter plus running debit/credit totals
// over the whole filtered set, not just the returned page.
func (s *Service) List(ctx context.Context, req ListEntriesRequest) ([]Entry, Totals, int, error) {
	return s.repo.List(ctx, req)
}

// Delete removes an entry.
func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
