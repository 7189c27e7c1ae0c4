package invoices

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Service handles invoice and vendor-bill business logic.
type Service struct {
	repo RepositoryPort
	now  func() time.Time
}

// NewService builds Service instance.
func NewService(repo RepositoryPort) *Service {
	return &Service{repo: repo, now: time.Now}
}

// WithNow overrides the clock, for tests.
func (s *Service) WithNow(now func() time.Time) {
	if now != nil {
		s.now = now
	}
}

// Create stores a new invoice; line amounts and totals are recomputed here,
// never trusted from the caller.
func (s *Service) Create(ctx context.Context, req CreateInvoiceRequest, createdBy int64) (*Invoice, error) {
	number := req.Number
	if number == "" {
		var err error
		number, err = s.repo.NextNumber(ctx, req.PartyType)
		if err != nil {
			return nil, fmt.Errorf("next invoice number: %w", err)
		}
	}
	dueDate := req.DueDate
	if dueDate.IsZero() {
		dueDate = req.Date.AddDate(0, 0, 30)
	}
	inv := Invoice{
		Number:    number,
		PartyType: req.PartyType,
		PartyID:   req.PartyID,
		Date:      req.Date,
		DueDate:   dueDate,
		Currency:  req.Currency,
		TaxRate:   req.TaxRate,
		Discount:  req.Discount,
		LineItems: assignLineKeys(nil, toLineItems(req.LineItems)),
		Status:    StatusDraft,
		Notes:     req.Notes,
		CreatedBy: createdBy,
	}
	inv.recalcTotals()

	created, err := s.repo.Create(ctx, inv)
	if err != nil {
		return nil, fmt.Errorf("create invoice: %w", err)
	}
	return created, nil
}

// Update applies edits and recomputes totals.
func (s *Service) Update(ctx context.Context, id int64, req UpdateInvoiceRequest) (*Invoice, error) {
	inv, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get invoice: %w", err)
	}

	if req.Date != nil {
		inv.Date = *req.Date
	}
	if req.DueDate != nil {
		inv.DueDate = *req.DueDate
	}
	if req.Currency != nil {
		inv.Currency = *req.Currency
	}
	if req.TaxRate != nil {
		inv.TaxRate = *req.TaxRate
	}
	if req.Discount != nil {
		inv.Discount = *req.Discount
	}
	if req.Status != nil {
		if !ValidStatus(*req.Status) {
			return nil, fmt.Errorf("invoices: unknown status %q", *req.Status)
		}
		inv.Status = *req.Status
	}
	if req.LineItems != nil {
		inv.LineItems = assignLineKeys(inv.LineItems, toLineItems(*req.LineItems))
	}
	if req.Notes != nil {
		inv.Notes = *req.Notes
	}
	inv.recalcTotals()

	updated, err := s.repo.Update(ctx, *inv)
	if err != nil {
		return nil, fmt.Errorf("update invoice: %w", err)
	}
	return updated, nil
}

// NextNumber returns the next free document number for the party type.
func (s *Service) NextNumber(ctx context.Context, partyType PartyType) (string, error) {
	return s.repo.NextNumber(ctx, partyType)
}

// Get returns one invoice with its lines.
func (s *Service) Get(ctx context.Context, id int64) (*Invoice, error) {
	return s.repo.Get(ctx, id)
}

// List returns invoices matching the filter.
func (s *Service) List(ctx context.Context, req ListInvoicesRequest) ([]Invoice, int, error) {
	return s.repo.List(ctx, req)
}

// Delete removes an invoice and its lines.
func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

// RecordPayment adds a received amount and moves the status accordingly.
func (s *Service) RecordPayment(ctx context.Context, id int64, req RecordPaymentRequest) (*Invoice, error) {
	inv, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	if inv.Status == StatusCancelled {
		return nil, errors.New("invoices: cannot pay a cancelled invoice")
	}
	inv.PaidAmount += req.Amount
	if inv.Status == StatusDraft {
		inv.Status = StatusSent
	}
	inv.deriveStatus()

	updated, err := s.repo.Update(ctx, *inv)
	if err != nil {
		return nil, fmt.Errorf("record payment: %w", err)
	}
	return updated, nil
}

// MarkOverdue flips sent and partially paid invoices past their due date to
// overdue. Returns the number of invoices touched.
func (s *Service) MarkOverdue(ctx context.Context) (int64, error) {
	return s.repo.MarkOverdue(ctx, s.now())
}

func toLineItems(inputs []LineItemInput) []LineItem {
	out := make([]LineItem, 0, len(inputs))
	for _, in := range inputs {
		out = append(out, LineItem{
			Key:         in.Key,
			Description: in.Description,
			Quantity:    in.Quantity,
			UnitPrice:   in.UnitPrice,
		})
	}
	return out
}

// assignLineKeys gives every line a non-empty key, unique within the invoice.
// Inputs that echo a key keep it; a key echoed twice only counts the first
// time. Inputs without one first reclaim the key of an existing line with the
// same description, so an edit that drops keys does not orphan a sync-written
// row, and otherwise get a fresh token.
func assignLineKeys(existing, lines []LineItem) []LineItem {
	used := make(map[string]bool, len(lines))
	for i := range lines {
		if lines[i].Key == "" {
			continue
		}
		if used[lines[i].Key] {
			lines[i].Key = ""
			continue
		}
		used[lines[i].Key] = true
	}
	spare := make(map[string][]string)
	for _, l := range existing {
		if l.Key != "" && !used[l.Key] {
			spare[l.Description] = append(spare[l.Description], l.Key)
		}
	}
	for i := range lines {
		if lines[i].Key != "" {
			continue
		}
		if keys := spare[lines[i].Description]; len(keys) > 0 {
			lines[i].Key = keys[0]
			spare[lines[i].Description] = keys[1:]
			continue
		}
		lines[i].Key = uuid.NewString()
	}
	return lines
}
