package invoices

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/freightdesk/freightdesk/internal/fx"
)

// SyncShipmentCharge folds a shipment's monetary value into its linked
// invoice as exactly one line item keyed by the shipment reference. Re-syncing
// the same shipment replaces that line rather than duplicating it, so the
// operation is idempotent and a retry after a failure repairs any divergence.
//
// The amount is the shipment's total charges (plus the declared invoice value
// for exports), converted into the invoice currency with the static rate
// table. Totals are recomputed and the invoice is persisted in one
// transaction. The error is returned to the caller; swallowing it would leave
// the shipment and invoice silently diverged.
func (s *Service) SyncShipmentCharge(ctx context.Context, charge ShipmentCharge) (*Invoice, error) {
	inv, err := s.repo.Get(ctx, charge.InvoiceID)
	if err != nil {
		return nil, fmt.Errorf("sync shipment charge: %w", err)
	}

	amount := charge.TotalCharges
	if strings.EqualFold(charge.Direction, "export") {
		amount += charge.InvoiceValue
	}
	amount = fx.Convert(amount, charge.Currency, inv.Currency)

	line := LineItem{
		Key:         syncLineKey(charge.Reference),
		Description: syncLineDescription(charge),
		Quantity:    1,
		UnitPrice:   amount,
		Amount:      amount,
	}

	// Upsert by key: drop this shipment's previous contribution, then append.
	kept := inv.LineItems[:0]
	for _, l := range inv.LineItems {
		if l.Key != line.Key {
			kept = append(kept, l)
		}
	}
	inv.LineItems = append(kept, line)
	inv.recalcTotals()

	updated, err := s.repo.Update(ctx, *inv)
	if err != nil {
		return nil, fmt.Errorf("sync shipment charge: %w", err)
	}
	return updated, nil
}

// syncLineKey builds the stable upsert key from the shipment reference. A
// shipment saved without any reference number gets a random token, so each
// sync appends a fresh line instead of replacing one.
func syncLineKey(reference string) string {
	if reference == "" {
		return "shipment-" + uuid.NewString()
	}
	return "shipment-" + reference
}

func syncLineDescription(charge ShipmentCharge) string {
	direction := "Import"
	if strings.EqualFold(charge.Direction, "export") {
		direction = "Export"
	}
	reference := charge.Reference
	if reference == "" {
		reference = "Shipment"
	}
	return fmt.Sprintf("%s • %s (%s)", reference, direction, charge.Mode)
}
