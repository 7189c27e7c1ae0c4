package ledger

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryLedgerRepo struct {
	nextID  int64
	entries map[int64]Entry
}

func newMemoryLedgerRepo() *memoryLedgerRepo {
	return &memoryLedgerRepo{nextID: 1, entries: map[int64]Entry{}}
}

func (m *memoryLedgerRepo) Create(_ context.Context, e Entry) (*Entry, error) {
	e.ID = m.nextID
	m.nextID++
	m.entries[e.ID] = e
	out := e
	return &out, nil
}

func (m *memoryLedgerRepo) Get(_ context.Context, id int64) (*Entry, error) {
	e, ok := m.entries[id]
	if !ok {
		return nil, ErrNotFound
	}
	out := e
	return &out, nil
}

func (m *memoryLedgerRepo) List(_ context.Context, req ListEntriesRequest) ([]Entry, Totals, int, error) {
	var items []Entry
	var totals Totals
	for _, e := range m.entries {
		if req.PartyType != "" && e.PartyType != req.PartyType {
			continue
		}
		if req.PartyID > 0 && (e.PartyID == nil || *e.PartyID != req.PartyID) {
			continue
		}
		if req.Type != "" && e.Type != req.Type {
			continue
		}
		items = append(items, e)
		totals.Debit += e.Debit
		totals.Credit += e.Credit
	}
	return items, totals, len(items), nil
}

func (m *memoryLedgerRepo) Delete(_ context.Context, id int64) error {
	if _, ok := m.entries[id]; !ok {
		return ErrNotFound
	}
	delete(m.entries, id)
	return nil
}

func entryReq(debit, credit float64) CreateEntryRequest {
	return CreateEntryRequest{
		Date:     time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
		Debit:    debit,
		Credit:   credit,
		Type:     TypePayment,
		Currency: "USD",
	}
}

func TestCreateExactlyOneSide(t *testing.T) {
	svc := NewService(newMemoryLedgerRepo())
	ctx := context.Background()

	entry, err := svc.Create(ctx, entryReq(100, 0), 1)
	require.NoError(t, err)
	assert.Equal(t, 100.0, entry.Debit)
	assert.Zero(t, entry.Credit)

	entry, err = svc.Create(ctx, entryReq(0, 250.5), 1)
	require.NoError(t, err)
	assert.Equal(t, 250.5, entry.Credit)
}

func TestCreateRejectsBothSides(t *testing.T) {
	svc := NewService(newMemoryLedgerRepo())

	_, err := svc.Create(context.Background(), entryReq(100, 100), 1)
	assert.ErrorIs(t, err, ErrBothSides)
}

func TestCreateRejectsNoAmount(t *testing.T) {
	svc := NewService(newMemoryLedgerRepo())

	_, err := svc.Create(context.Background(), entryReq(0, 0), 1)
	assert.ErrorIs(t, err, ErrNoAmount)
}

func TestValidateNegativeAmount(t *testing.T) {
	err := Entry{Debit: -5}.Validate()
	assert.ErrorIs(t, err, ErrNegativeAmount)
}

func TestListRunningTotals(t *testing.T) {
	svc := NewService(newMemoryLedgerRepo())
	ctx := context.Background()

	_, err := svc.Create(ctx, entryReq(100, 0), 1)
	require.NoError(t, err)
	_, err = svc.Create(ctx, entryReq(40, 0), 1)
	require.NoError(t, err)
	_, err = svc.Create(ctx, entryReq(0, 90), 1)
	require.NoError(t, err)

	_, totals, total, err := svc.List(ctx, ListEntriesRequest{})
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	assert.Equal(t, 140.0, totals.Debit)
	assert.Equal(t, 90.0, totals.Credit)
}

func TestListFiltersByParty(t *testing.T) {
	svc := NewService(newMemoryLedgerRepo())
	ctx := context.Background()

	partyID := int64(7)
	req := entryReq(100, 0)
	req.PartyType = PartyCustomer
	req.PartyID = &partyID
	_, err := svc.Create(ctx, req, 1)
	require.NoError(t, err)

	_, err = svc.Create(ctx, entryReq(0, 50), 1)
	require.NoError(t, err)

	items, totals, _, err := svc.List(ctx, ListEntriesRequest{PartyType: PartyCustomer, PartyID: 7})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 100.0, totals.Debit)
	assert.Zero(t, totals.Credit)
}
