package reports

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/freightdesk/freightdesk/internal/expenses"
	"github.com/freightdesk/freightdesk/internal/invoices"
	"github.com/freightdesk/freightdesk/internal/ledger"
	"github.com/freightdesk/freightdesk/internal/shipments"
	"github.com/freightdesk/freightdesk/internal/vendorbills"
)

type stubSources struct {
	invoices  []invoices.Invoice
	expenses  []expenses.Expense
	bills     []vendorbills.VendorBill
	entries   []ledger.Entry
	shipments []shipments.Shipment

	invoiceCalls int
}

func (s *stubSources) List(ctx context.Context, req invoices.ListInvoicesRequest) ([]invoices.Invoice, int, error) {
	s.invoiceCalls++
	return s.invoices, len(s.invoices), nil
}

type expenseSource struct{ items []expenses.Expense }

func (s expenseSource) List(_ context.Context, _ expenses.ListExpensesRequest) ([]expenses.Expense, int, error) {
	return s.items, len(s.items), nil
}

type billSource struct{ items []vendorbills.VendorBill }

func (s billSource) List(_ context.Context, _ vendorbills.ListVendorBillsRequest) ([]vendorbills.VendorBill, int, error) {
	return s.items, len(s.items), nil
}

type ledgerSource struct{ items []ledger.Entry }

func (s ledgerSource) List(_ context.Context, _ ledger.ListEntriesRequest) ([]ledger.Entry, ledger.Totals, int, error) {
	return s.items, ledger.Totals{}, len(s.items), nil
}

type shipmentSource struct{ items []shipments.Shipment }

func (s shipmentSource) List(_ context.Context, _ shipments.ListShipmentsRequest) ([]shipments.Shipment, int, error) {
	return s.items, len(s.items), nil
}

func newTestService(t *testing.T, src *stubSources, withCache bool) *Service {
	t.Helper()
	var cache *redis.Client
	if withCache {
		mr := miniredis.RunT(t)
		cache = redis.NewClient(&redis.Options{Addr: mr.Addr()})
	}
	svc := NewService(src,
		expenseSource{src.expenses},
		billSource{src.bills},
		ledgerSource{src.entries},
		shipmentSource{src.shipments},
		cache)
	return svc.WithNow(func() time.Time { return time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC) })
}

func TestBalanceSheetAggregation(t *testing.T) {
	src := &stubSources{
		entries: []ledger.Entry{
			{Credit: 1000, Currency: "USD", Type: ledger.TypePayment},
			{Debit: 200, Currency: "USD", Type: ledger.TypePayment},
		},
		invoices: []invoices.Invoice{
			{PartyType: invoices.PartyCustomer, Status: invoices.StatusSent, Currency: "USD", Total: 500, PaidAmount: 100},
			{PartyType: invoices.PartyVendor, Status: invoices.StatusSent, Currency: "USD", Total: 300, PaidAmount: 0},
			{PartyType: invoices.PartyCustomer, Status: invoices.StatusCancelled, Currency: "USD", Total: 9999},
		},
		bills: []vendorbills.VendorBill{
			{Status: vendorbills.StatusPending, Amount: 150, Currency: "USD"},
			{Status: vendorbills.StatusPaid, Amount: 400, Currency: "USD"},
		},
		expenses: []expenses.Expense{
			{Amount: 120, Currency: "USD"},
		},
	}
	svc := newTestService(t, src, false)

	sheet, err := svc.BalanceSheet(context.Background(), "USD")
	require.NoError(t, err)

	// Cash 800, AR 400, AP 300 + 150, retained earnings 500 − 120.
	assert.Equal(t, 800.0, sheet.Cash)
	assert.Equal(t, 400.0, sheet.AccountsReceivable)
	assert.Equal(t, 1200.0, sheet.TotalAssets)
	assert.Equal(t, 450.0, sheet.AccountsPayable)
	assert.Equal(t, 380.0, sheet.RetainedEarnings)
	assert.Equal(t, 830.0, sheet.TotalLiabilitiesAndEquity)
	assert.False(t, sheet.Balanced)
}

func TestBalanceSheetBalancedThreshold(t *testing.T) {
	assert.True(t, balanced(100.0, 100.0))
	assert.True(t, balanced(100.0, 100.009))
	assert.False(t, balanced(100.0, 100.01))
	assert.False(t, balanced(100.0, 100.011))
	assert.True(t, balanced(100.005, 100.0))
}

func TestBalanceSheetUsesCache(t *testing.T) {
	src := &stubSources{
		invoices: []invoices.Invoice{
			{PartyType: invoices.PartyCustomer, Status: invoices.StatusSent, Currency: "USD", Total: 500},
		},
	}
	svc := newTestService(t, src, true)
	ctx := context.Background()

	first, err := svc.BalanceSheet(ctx, "USD")
	require.NoError(t, err)
	second, err := svc.BalanceSheet(ctx, "USD")
	require.NoError(t, err)

	assert.Equal(t, 1, src.invoiceCalls)
	assert.Equal(t, first.TotalAssets, second.TotalAssets)
}

func TestWarmBalanceSheetBypassesCache(t *testing.T) {
	src := &stubSources{}
	svc := newTestService(t, src, true)
	ctx := context.Background()

	require.NoError(t, svc.WarmBalanceSheet(ctx, "USD"))
	require.NoError(t, svc.WarmBalanceSheet(ctx, "USD"))

	assert.Equal(t, 2, src.invoiceCalls)
}

func TestBalanceSheetUnsupportedCurrency(t *testing.T) {
	svc := newTestService(t, &stubSources{}, false)
	_, err := svc.BalanceSheet(context.Background(), "XXX")
	assert.Error(t, err)
}

func TestBalanceSheetConvertsCurrencies(t *testing.T) {
	src := &stubSources{
		entries: []ledger.Entry{
			// 1000 AED at the 0.2723 USD cross rate.
			{Credit: 1000, Currency: "AED", Type: ledger.TypePayment},
		},
	}
	svc := newTestService(t, src, false)

	sheet, err := svc.BalanceSheet(context.Background(), "USD")
	require.NoError(t, err)
	assert.Equal(t, 272.3, sheet.Cash)
}

func TestShipmentDetailBreakdowns(t *testing.T) {
	src := &stubSources{
		shipments: []shipments.Shipment{
			{Direction: shipments.DirectionImport, Mode: "sea", TotalCharges: 100, Currency: "USD"},
			{Direction: shipments.DirectionImport, Mode: "air", TotalCharges: 50, Currency: "USD"},
			{Direction: shipments.DirectionExport, Mode: "sea", TotalCharges: 200, Currency: "USD"},
		},
	}
	svc := newTestService(t, src, false)

	report, err := svc.ShipmentDetail(context.Background(), shipments.ListShipmentsRequest{}, "USD")
	require.NoError(t, err)

	assert.Equal(t, 3, report.Count)
	assert.Equal(t, 350.0, report.TotalCharges)
	assert.Equal(t, 150.0, report.ByDirection["import"])
	assert.Equal(t, 200.0, report.ByDirection["export"])
	assert.Equal(t, 300.0, report.ByMode["sea"])
	assert.Equal(t, 2, report.CountByMode["sea"])
}

func TestExpenseSummaryByCategoryAndStatus(t *testing.T) {
	src := &stubSources{
		expenses: []expenses.Expense{
			{Category: "transport", Status: expenses.StatusPending, Amount: 100, Currency: "USD"},
			{Category: "transport", Status: expenses.StatusPaid, Amount: 60, Currency: "USD"},
			{Category: "port charges", Status: expenses.StatusPaid, Amount: 40, Currency: "USD"},
		},
	}
	svc := newTestService(t, src, false)

	report, err := svc.ExpenseSummary(context.Background(), "USD")
	require.NoError(t, err)

	assert.Equal(t, 200.0, report.Total)
	assert.Equal(t, 160.0, report.ByCategory["transport"])
	assert.Equal(t, 100.0, report.ByStatus["pending"])
	assert.Equal(t, 100.0, report.ByStatus["paid"])
}

func TestVendorBillSummaryOverdue(t *testing.T) {
	due := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	src := &stubSources{
		bills: []vendorbills.VendorBill{
			{ID: 1, VendorID: 3, Status: vendorbills.StatusPending, DueDate: due, Amount: 100, Currency: "USD"},
			{ID: 2, VendorID: 3, Status: vendorbills.StatusPaid, DueDate: due, Amount: 70, Currency: "USD"},
			{ID: 3, VendorID: 9, Status: vendorbills.StatusPending, DueDate: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), Amount: 40, Currency: "USD"},
		},
	}
	svc := newTestService(t, src, false)

	report, err := svc.VendorBillSummary(context.Background(), "USD")
	require.NoError(t, err)

	assert.Equal(t, 210.0, report.Total)
	assert.Equal(t, 170.0, report.ByVendor[3])
	assert.Equal(t, []int64{1}, report.OverdueIDs)
	assert.Equal(t, 100.0, report.Overdue)
}
