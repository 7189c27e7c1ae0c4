package invoices

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exportCharge(invoiceID int64) ShipmentCharge {
	return ShipmentCharge{
		InvoiceID:    invoiceID,
		Reference:    "JOB-2025-001",
		Direction:    "export",
		Mode:         "sea",
		Currency:     "USD",
		TotalCharges: 200,
		InvoiceValue: 1000,
	}
}

// Mirrors the worked example: export shipment with invoiceValue=1000 and
// totalCharges=200 in USD synced onto a USD invoice with taxRate=10,
// discount=0 and one prior line of 500 gives lines (500, 1200),
// subtotal=1700, taxAmount=170, total=1870.
func TestSyncShipmentChargeWorkedExample(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	inv, err := svc.Create(ctx, createRequest(), 1)
	require.NoError(t, err)
	require.Equal(t, 500.0, inv.Subtotal)

	synced, err := svc.SyncShipmentCharge(ctx, exportCharge(inv.ID))
	require.NoError(t, err)

	require.Len(t, synced.LineItems, 2)
	assert.Equal(t, 500.0, synced.LineItems[0].Amount)
	assert.Equal(t, 1200.0, synced.LineItems[1].Amount)
	assert.Equal(t, "JOB-2025-001 • Export (sea)", synced.LineItems[1].Description)
	assert.Equal(t, 1700.0, synced.Subtotal)
	assert.Equal(t, 170.0, synced.TaxAmount)
	assert.Equal(t, 1870.0, synced.Total)
}

func TestSyncIsIdempotent(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	inv, err := svc.Create(ctx, createRequest(), 1)
	require.NoError(t, err)

	_, err = svc.SyncShipmentCharge(ctx, exportCharge(inv.ID))
	require.NoError(t, err)
	synced, err := svc.SyncShipmentCharge(ctx, exportCharge(inv.ID))
	require.NoError(t, err)

	// Saving the same shipment twice yields exactly one line for it.
	require.Len(t, synced.LineItems, 2)
	assert.Equal(t, 1700.0, synced.Subtotal)
}

func TestSyncReplacesAmountOnChargeChange(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	inv, err := svc.Create(ctx, createRequest(), 1)
	require.NoError(t, err)

	_, err = svc.SyncShipmentCharge(ctx, exportCharge(inv.ID))
	require.NoError(t, err)

	charge := exportCharge(inv.ID)
	charge.TotalCharges = 450
	synced, err := svc.SyncShipmentCharge(ctx, charge)
	require.NoError(t, err)

	require.Len(t, synced.LineItems, 2)
	assert.Equal(t, 1450.0, synced.LineItems[1].Amount)
	assert.Equal(t, 1950.0, synced.Subtotal)
	assert.Equal(t, 195.0, synced.TaxAmount)
	assert.Equal(t, 2145.0, synced.Total)
}

func TestSyncImportUsesTotalChargesOnly(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	inv, err := svc.Create(ctx, createRequest(), 1)
	require.NoError(t, err)

	charge := ShipmentCharge{
		InvoiceID:    inv.ID,
		Reference:    "BL-779",
		Direction:    "import",
		Mode:         "air",
		Currency:     "USD",
		TotalCharges: 320,
		InvoiceValue: 9999, // ignored for imports
	}
	synced, err := svc.SyncShipmentCharge(ctx, charge)
	require.NoError(t, err)

	require.Len(t, synced.LineItems, 2)
	assert.Equal(t, 320.0, synced.LineItems[1].Amount)
	assert.Equal(t, "BL-779 • Import (air)", synced.LineItems[1].Description)
}

func TestSyncConvertsCurrency(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	inv, err := svc.Create(ctx, createRequest(), 1) // USD invoice
	require.NoError(t, err)

	charge := ShipmentCharge{
		InvoiceID:    inv.ID,
		Reference:    "JOB-7",
		Direction:    "import",
		Mode:         "sea",
		Currency:     "AED",
		TotalCharges: 1000,
	}
	synced, err := svc.SyncShipmentCharge(ctx, charge)
	require.NoError(t, err)

	require.Len(t, synced.LineItems, 2)
	assert.InDelta(t, 272.3, synced.LineItems[1].Amount, 0.001)
}

func TestSyncMissingInvoiceSurfacesError(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.SyncShipmentCharge(context.Background(), exportCharge(404))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSyncRepoFailureSurfaces(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	inv, err := svc.Create(ctx, createRequest(), 1)
	require.NoError(t, err)

	repo.updateErr = errors.New("connection reset")
	_, err = svc.SyncShipmentCharge(ctx, exportCharge(inv.ID))
	require.Error(t, err)

	// The stored invoice is untouched after a failed sync.
	stored, err := repo.Get(ctx, inv.ID)
	require.NoError(t, err)
	assert.Len(t, stored.LineItems, 1)
	assert.Equal(t, 500.0, stored.Subtotal)
}

func TestSyncWithoutReferenceAppendsFreshLine(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	inv, err := svc.Create(ctx, createRequest(), 1)
	require.NoError(t, err)

	charge := exportCharge(inv.ID)
	charge.Reference = ""
	_, err = svc.SyncShipmentCharge(ctx, charge)
	require.NoError(t, err)
	synced, err := svc.SyncShipmentCharge(ctx, charge)
	require.NoError(t, err)

	// No stable key, so each sync contributes its own line.
	assert.Len(t, synced.LineItems, 3)
	assert.Equal(t, "Shipment • Export (sea)", synced.LineItems[1].Description)
}

func TestSyncKeyStability(t *testing.T) {
	assert.Equal(t, "shipment-JOB-1", syncLineKey("JOB-1"))
	assert.NotEqual(t, syncLineKey(""), syncLineKey(""))
}

// A form edit that resubmits every line without keys must not strip the sync
// line of its identity: the next shipment re-save still replaces its own row
// instead of appending a duplicate.
func TestSyncSurvivesManualEditWithoutKeys(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	inv, err := svc.Create(ctx, createRequest(), 1)
	require.NoError(t, err)
	synced, err := svc.SyncShipmentCharge(ctx, exportCharge(inv.ID))
	require.NoError(t, err)

	lines := make([]LineItemInput, 0, len(synced.LineItems))
	for _, l := range synced.LineItems {
		lines = append(lines, LineItemInput{
			Description: l.Description,
			Quantity:    l.Quantity,
			UnitPrice:   l.UnitPrice,
		})
	}
	edited, err := svc.Update(ctx, inv.ID, UpdateInvoiceRequest{LineItems: &lines})
	require.NoError(t, err)
	require.Len(t, edited.LineItems, 2)

	resynced, err := svc.SyncShipmentCharge(ctx, exportCharge(inv.ID))
	require.NoError(t, err)
	require.Len(t, resynced.LineItems, 2)
	assert.Equal(t, 1700.0, resynced.Subtotal)
}
