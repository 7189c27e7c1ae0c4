package shipments

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/freightdesk/freightdesk/internal/invoices"
)

type memoryShipmentRepo struct {
	nextID    int64
	shipments map[int64]Shipment
}

func newMemoryShipmentRepo() *memoryShipmentRepo {
	return &memoryShipmentRepo{nextID: 1, shipments: map[int64]Shipment{}}
}

func (m *memoryShipmentRepo) Create(_ context.Context, s Shipment) (*Shipment, error) {
	s.ID = m.nextID
	m.nextID++
	m.shipments[s.ID] = s
	out := s
	return &out, nil
}

func (m *memoryShipmentRepo) Get(_ context.Context, id int64) (*Shipment, error) {
	s, ok := m.shipments[id]
	if !ok {
		return nil, ErrNotFound
	}
	out := s
	return &out, nil
}

func (m *memoryShipmentRepo) List(_ context.Context, _ ListShipmentsRequest) ([]Shipment, int, error) {
	items := make([]Shipment, 0, len(m.shipments))
	for _, s := range m.shipments {
		items = append(items, s)
	}
	return items, len(items), nil
}

func (m *memoryShipmentRepo) Update(_ context.Context, s Shipment) (*Shipment, error) {
	if _, ok := m.shipments[s.ID]; !ok {
		return nil, ErrNotFound
	}
	m.shipments[s.ID] = s
	out := s
	return &out, nil
}

func (m *memoryShipmentRepo) Delete(_ context.Context, id int64) error {
	if _, ok := m.shipments[id]; !ok {
		return ErrNotFound
	}
	delete(m.shipments, id)
	return nil
}

type fakeSync struct {
	calls []invoices.ShipmentCharge
	err   error
}

func (f *fakeSync) SyncShipmentCharge(_ context.Context, charge invoices.ShipmentCharge) (*invoices.Invoice, error) {
	f.calls = append(f.calls, charge)
	if f.err != nil {
		return nil, f.err
	}
	return &invoices.Invoice{ID: charge.InvoiceID}, nil
}

func newTestService(sync *fakeSync) (*Service, *memoryShipmentRepo) {
	repo := newMemoryShipmentRepo()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewService(repo, sync, logger), repo
}

func createReq() CreateShipmentRequest {
	return CreateShipmentRequest{
		Direction:  DirectionExport,
		JobNumber:  "EXP-2024-001",
		CustomerID: 7,
		Mode:       "sea",
		Charges: ChargesInput{
			Freight:       800,
			Insurance:     100,
			CustomsDuty:   250,
			Handling:      50,
			Documentation: 25,
			Other:         12.5,
		},
		InvoiceValue: 5000,
		Currency:     "USD",
	}
}

func TestCreateComputesTotalCharges(t *testing.T) {
	svc, _ := newTestService(&fakeSync{})

	outcome, err := svc.Create(context.Background(), createReq(), 1)
	require.NoError(t, err)

	assert.Equal(t, 1237.5, outcome.Shipment.TotalCharges)
	assert.Empty(t, outcome.SyncError)
	assert.Nil(t, outcome.Invoice)
}

func TestCreateIgnoresClientTotal(t *testing.T) {
	// Total charges come from the charge heads, never from the payload.
	svc, repo := newTestService(&fakeSync{})

	req := createReq()
	req.Charges = ChargesInput{Freight: 100}
	outcome, err := svc.Create(context.Background(), req, 1)
	require.NoError(t, err)

	assert.Equal(t, 100.0, outcome.Shipment.TotalCharges)
	assert.Equal(t, 100.0, repo.shipments[outcome.Shipment.ID].TotalCharges)
}

func TestCreateSyncsLinkedInvoice(t *testing.T) {
	sync := &fakeSync{}
	svc, _ := newTestService(sync)

	invoiceID := int64(42)
	req := createReq()
	req.InvoiceID = &invoiceID

	outcome, err := svc.Create(context.Background(), req, 1)
	require.NoError(t, err)
	require.Len(t, sync.calls, 1)

	charge := sync.calls[0]
	assert.Equal(t, int64(42), charge.InvoiceID)
	assert.Equal(t, "EXP-2024-001", charge.Reference)
	assert.Equal(t, "export", charge.Direction)
	assert.Equal(t, "sea", charge.Mode)
	assert.Equal(t, "USD", charge.Currency)
	assert.Equal(t, 1237.5, charge.TotalCharges)
	assert.Equal(t, 5000.0, charge.InvoiceValue)

	require.NotNil(t, outcome.Invoice)
	assert.Equal(t, int64(42), outcome.Invoice.ID)
}

func TestCreateWithoutInvoiceSkipsSync(t *testing.T) {
	sync := &fakeSync{}
	svc, _ := newTestService(sync)

	_, err := svc.Create(context.Background(), createReq(), 1)
	require.NoError(t, err)
	assert.Empty(t, sync.calls)
}

func TestCreateSurfacesSyncFailure(t *testing.T) {
	// A failed invoice sync must not roll back the shipment; the caller gets
	// the saved shipment plus the sync error.
	sync := &fakeSync{err: errors.New("invoice not found")}
	svc, repo := newTestService(sync)

	invoiceID := int64(99)
	req := createReq()
	req.InvoiceID = &invoiceID

	outcome, err := svc.Create(context.Background(), req, 1)
	require.NoError(t, err)

	assert.Equal(t, "invoice not found", outcome.SyncError)
	assert.Nil(t, outcome.Invoice)
	assert.Contains(t, repo.shipments, outcome.Shipment.ID)
}

func TestUpdateRecomputesTotalAndResyncs(t *testing.T) {
	sync := &fakeSync{}
	svc, _ := newTestService(sync)

	invoiceID := int64(5)
	req := createReq()
	req.InvoiceID = &invoiceID
	created, err := svc.Create(context.Background(), req, 1)
	require.NoError(t, err)

	newCharges := ChargesInput{Freight: 900, Handling: 100}
	outcome, err := svc.Update(context.Background(), created.Shipment.ID, UpdateShipmentRequest{
		Charges: &newCharges,
	})
	require.NoError(t, err)

	assert.Equal(t, 1000.0, outcome.Shipment.TotalCharges)
	require.Len(t, sync.calls, 2)
	assert.Equal(t, 1000.0, sync.calls[1].TotalCharges)
}

func TestUpdateUnknownShipment(t *testing.T) {
	svc, _ := newTestService(&fakeSync{})

	_, err := svc.Update(context.Background(), 123, UpdateShipmentRequest{})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestReferencePrefersJobNumber(t *testing.T) {
	s := Shipment{JobNumber: "JOB-1", BookingNumber: "BK-1", BLNumber: "BL-1"}
	assert.Equal(t, "JOB-1", s.Reference())

	s.JobNumber = ""
	assert.Equal(t, "BK-1", s.Reference())

	s.BookingNumber = ""
	assert.Equal(t, "BL-1", s.Reference())
}
