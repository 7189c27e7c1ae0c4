package vendorbills

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryBillRepo struct {
	nextID int64
	bills  map[int64]VendorBill
}

func newMemoryBillRepo() *memoryBillRepo {
	return &memoryBillRepo{nextID: 1, bills: map[int64]VendorBill{}}
}

func (m *memoryBillRepo) Create(_ context.Context, b VendorBill) (*VendorBill, error) {
	for _, existing := range m.bills {
		if existing.VendorID == b.VendorID && existing.BillNumber == b.BillNumber {
			return nil, ErrDuplicateNumber
		}
	}
	b.ID = m.nextID
	m.nextID++
	m.bills[b.ID] = b
	out := b
	return &out, nil
}

func (m *memoryBillRepo) Get(_ context.Context, id int64) (*VendorBill, error) {
	b, ok := m.bills[id]
	if !ok {
		return nil, ErrNotFound
	}
	out := b
	return &out, nil
}

func (m *memoryBillRepo) List(_ context.Context, req ListVendorBillsRequest) ([]VendorBill, int, error) {
	var items []VendorBill
	for _, b := range m.bills {
		if req.VendorID > 0 && b.VendorID != req.VendorID {
			continue
		}
		if req.Status != "" && b.Status != req.Status {
			continue
		}
		items = append(items, b)
	}
	return items, len(items), nil
}

func (m *memoryBillRepo) Update(_ context.Context, b VendorBill) (*VendorBill, error) {
	if _, ok := m.bills[b.ID]; !ok {
		return nil, ErrNotFound
	}
	m.bills[b.ID] = b
	out := b
	return &out, nil
}

func (m *memoryBillRepo) Delete(_ context.Context, id int64) error {
	if _, ok := m.bills[id]; !ok {
		return ErrNotFound
	}
	delete(m.bills, id)
	return nil
}

func createReq() CreateVendorBillRequest {
	return CreateVendorBillRequest{
		VendorID:   3,
		BillNumber: "VB-1001",
		Date:       time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		DueDate:    time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		Category:   "trucking",
		Amount:     780.125,
		Currency:   "AED",
	}
}

func TestCreateStartsPending(t *testing.T) {
	svc := NewService(newMemoryBillRepo())

	bill, err := svc.Create(context.Background(), createReq(), 1)
	require.NoError(t, err)

	assert.Equal(t, StatusPending, bill.Status)
	assert.Equal(t, 780.13, bill.Amount)
}

func TestCreateDuplicateNumber(t *testing.T) {
	svc := NewService(newMemoryBillRepo())

	_, err := svc.Create(context.Background(), createReq(), 1)
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), createReq(), 1)
	assert.ErrorIs(t, err, ErrDuplicateNumber)
}

func TestMarkPaid(t *testing.T) {
	paidAt := time.Date(2024, 2, 20, 12, 0, 0, 0, time.UTC)
	svc := NewService(newMemoryBillRepo()).WithNow(func() time.Time { return paidAt })

	created, err := svc.Create(context.Background(), createReq(), 1)
	require.NoError(t, err)

	paid, err := svc.MarkPaid(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusPaid, paid.Status)
	require.NotNil(t, paid.PaidAt)
	assert.Equal(t, paidAt, *paid.PaidAt)

	_, err = svc.MarkPaid(context.Background(), created.ID)
	assert.ErrorIs(t, err, ErrAlreadyPaid)
}

func TestOverdue(t *testing.T) {
	bill := VendorBill{
		Status:  StatusPending,
		DueDate: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
	}
	assert.True(t, bill.Overdue(time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)))
	assert.False(t, bill.Overdue(time.Date(2024, 2, 28, 0, 0, 0, 0, time.UTC)))

	bill.Status = StatusPaid
	assert.False(t, bill.Overdue(time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)))
}
