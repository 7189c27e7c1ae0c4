package expenses

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryExpenseRepo struct {
	nextID   int64
	expenses map[int64]Expense
}

func newMemoryExpenseRepo() *memoryExpenseRepo {
	return &memoryExpenseRepo{nextID: 1, expenses: map[int64]Expense{}}
}

func (m *memoryExpenseRepo) Create(_ context.Context, e Expense) (*Expense, error) {
	e.ID = m.nextID
	m.nextID++
	m.expenses[e.ID] = e
	out := e
	return &out, nil
}

func (m *memoryExpenseRepo) Get(_ context.Context, id int64) (*Expense, error) {
	e, ok := m.expenses[id]
	if !ok {
		return nil, ErrNotFound
	}
	out := e
	return &out, nil
}

func (m *memoryExpenseRepo) List(_ context.Context, req ListExpensesRequest) ([]Expense, int, error) {
	var items []Expense
	for _, e := range m.expenses {
		if req.Category != "" && e.Category != req.Category {
			continue
		}
		if req.Status != "" && e.Status != req.Status {
			continue
		}
		items = append(items, e)
	}
	return items, len(items), nil
}

func (m *memoryExpenseRepo) Update(_ context.Context, e Expense) (*Expense, error) {
	if _, ok := m.expenses[e.ID]; !ok {
		return nil, ErrNotFound
	}
	m.expenses[e.ID] = e
	out := e
	return &out, nil
}

func (m *memoryExpenseRepo) Delete(_ context.Context, id int64) error {
	if _, ok := m.expenses[id]; !ok {
		return ErrNotFound
	}
	delete(m.expenses, id)
	return nil
}

func TestCreateStartsPending(t *testing.T) {
	svc := NewService(newMemoryExpenseRepo())

	expense, err := svc.Create(context.Background(), CreateExpenseRequest{
		Date:     time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		Category: "port charges",
		Amount:   120.456,
		Currency: "AED",
	}, 1)
	require.NoError(t, err)

	assert.Equal(t, StatusPending, expense.Status)
	assert.Equal(t, 120.46, expense.Amount)
	assert.Nil(t, expense.PaidAt)
}

func TestMarkPaidSetsTimestamp(t *testing.T) {
	paidAt := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
	svc := NewService(newMemoryExpenseRepo()).WithNow(func() time.Time { return paidAt })

	created, err := svc.Create(context.Background(), CreateExpenseRequest{
		Date:     time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		Category: "transport",
		Amount:   300,
		Currency: "USD",
	}, 1)
	require.NoError(t, err)

	paid, err := svc.MarkPaid(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusPaid, paid.Status)
	require.NotNil(t, paid.PaidAt)
	assert.Equal(t, paidAt, *paid.PaidAt)

	_, err = svc.MarkPaid(context.Background(), created.ID)
	assert.ErrorIs(t, err, ErrAlreadyPaid)
}

func TestUpdateDoesNotTouchStatus(t *testing.T) {
	svc := NewService(newMemoryExpenseRepo())

	created, err := svc.Create(context.Background(), CreateExpenseRequest{
		Date:     time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		Category: "transport",
		Amount:   300,
		Currency: "USD",
	}, 1)
	require.NoError(t, err)

	newAmount := 450.0
	updated, err := svc.Update(context.Background(), created.ID, UpdateExpenseRequest{Amount: &newAmount})
	require.NoError(t, err)
	assert.Equal(t, 450.0, updated.Amount)
	assert.Equal(t, StatusPending, updated.Status)
}

func TestMarkPaidUnknownExpense(t *testing.T) {
	svc := NewService(newMemoryExpenseRepo())
	_, err := svc.MarkPaid(context.Background(), 99)
	assert.ErrorIs(t, err, ErrNotFound)
}
