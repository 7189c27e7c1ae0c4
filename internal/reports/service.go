package reports

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/freightdesk/freightdesk/internal/expenses"
	"github.com/freightdesk/freightdesk/internal/fx"
	"github.com/freightdesk/freightdesk/internal/invoices"
	"github.com/freightdesk/freightdesk/internal/ledger"
	"github.com/freightdesk/freightdesk/internal/shipments"
	"github.com/freightdesk/freightdesk/internal/vendorbills"
)

// fetchLimit caps each source sweep. Report aggregation reads whole
// collections, not pages.
const fetchLimit = 1000

// cacheTTL bounds balance-sheet staleness between cache warms.
const cacheTTL = 5 * time.Minute

// InvoiceSource lists invoices for aggregation.
type InvoiceSource interface {
	List(ctx context.Context, req invoices.ListInvoicesRequest) ([]invoices.Invoice, int, error)
}

// ExpenseSource lists expenses for aggregation.
type ExpenseSource interface {
	List(ctx context.Context, req expenses.ListExpensesRequest) ([]expenses.Expense, int, error)
}

// BillSource lists vendor bills for aggregation.
type BillSource interface {
	List(ctx context.Context, req vendorbills.ListVendorBillsRequest) ([]vendorbills.VendorBill, int, error)
}

// LedgerSource lists ledger entries for aggregation.
type LedgerSource interface {
	List(ctx context.Context, req ledger.ListEntriesRequest) ([]ledger.Entry, ledger.Totals, int, error)
}

// ShipmentSource lists shipments for aggregation.
type ShipmentSource interface {
	List(ctx context.Context, req shipments.ListShipmentsRequest) ([]shipments.Shipment, int, error)
}

// Service aggregates financial reports from the domain services.
type Service struct {
	invoices  InvoiceSource
	expenses  ExpenseSource
	bills     BillSource
	ledger    LedgerSource
	shipments ShipmentSource
	cache     *redis.Client
	now       func() time.Time
}

// NewService builds Service instance. Cache may be nil; reports are then
// computed on every call.
func NewService(inv InvoiceSource, exp ExpenseSource, bills BillSource, led LedgerSource, ship ShipmentSource, cache *redis.Client) *Service {
	return &Service{
		invoices:  inv,
		expenses:  exp,
		bills:     bills,
		ledger:    led,
		shipments: ship,
		cache:     cache,
		now:       time.Now,
	}
}

// WithNow overrides the clock, for tests.
func (s *Service) WithNow(now func() time.Time) *Service {
	s.now = now
	return s
}

func balanceSheetKey(currency string) string {
	return "report:balance_sheet:" + currency
}

// BalanceSheet assembles the statement in the given display currency. The
// four source sweeps run concurrently; the finished statement is cached.
func (s *Service) BalanceSheet(ctx context.Context, currency string) (*BalanceSheet, error) {
	if !fx.Supported(currency) {
		return nil, fmt.Errorf("unsupported display currency %q", currency)
	}
	if s.cache != nil {
		if raw, err := s.cache.Get(ctx, balanceSheetKey(currency)).Bytes(); err == nil {
			var cached BalanceSheet
			if err := json.Unmarshal(raw, &cached); err == nil {
				return &cached, nil
			}
		}
	}

	sheet, err := s.buildBalanceSheet(ctx, currency)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if raw, err := json.Marshal(sheet); err == nil {
			s.cache.Set(ctx, balanceSheetKey(currency), raw, cacheTTL)
		}
	}
	return sheet, nil
}

// WarmBalanceSheet recomputes and recaches the statement, bypassing any
// cached copy. The background worker calls it on a schedule.
func (s *Service) WarmBalanceSheet(ctx context.Context, currency string) error {
	if !fx.Supported(currency) {
		return fmt.Errorf("unsupported display currency %q", currency)
	}
	sheet, err := s.buildBalanceSheet(ctx, currency)
	if err != nil {
		return err
	}
	if s.cache == nil {
		return nil
	}
	raw, err := json.Marshal(sheet)
	if err != nil {
		return err
	}
	return s.cache.Set(ctx, balanceSheetKey(currency), raw, cacheTTL).Err()
}

func (s *Service) buildBalanceSheet(ctx context.Context, currency string) (*BalanceSheet, error) {
	var (
		invoiceList []invoices.Invoice
		expenseList []expenses.Expense
		billList    []vendorbills.VendorBill
		entryList   []ledger.Entry
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		invoiceList, _, err = s.invoices.List(ctx, invoices.ListInvoicesRequest{Limit: fetchLimit})
		return err
	})
	g.Go(func() error {
		var err error
		expenseList, _, err = s.expenses.List(ctx, expenses.ListExpensesRequest{Limit: fetchLimit})
		return err
	})
	g.Go(func() error {
		var err error
		billList, _, err = s.bills.List(ctx, vendorbills.ListVendorBillsRequest{Limit: fetchLimit})
		return err
	})
	g.Go(func() error {
		var err error
		entryList, _, _, err = s.ledger.List(ctx, ledger.ListEntriesRequest{Type: ledger.TypePayment, Limit: fetchLimit})
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("balance sheet sources: %w", err)
	}

	var cash float64
	for _, e := range entryList {
		cash += fx.Convert(e.Credit, e.Currency, currency) - fx.Convert(e.Debit, e.Currency, currency)
	}

	var receivable, payable, revenue float64
	for _, inv := range invoiceList {
		if inv.Status == invoices.StatusCancelled {
			continue
		}
		outstanding := fx.Convert(inv.Total-inv.PaidAmount, inv.Currency, currency)
		switch inv.PartyType {
		case invoices.PartyCustomer:
			receivable += outstanding
			revenue += fx.Convert(inv.Total, inv.Currency, currency)
		case invoices.PartyVendor:
			payable += outstanding
		}
	}
	for _, b := range billList {
		if b.Status == vendorbills.StatusPending {
			payable += fx.Convert(b.Amount, b.Currency, currency)
		}
	}

	var expenseTotal float64
	for _, e := range expenseList {
		expenseTotal += fx.Convert(e.Amount, e.Currency, currency)
	}

	sheet := &BalanceSheet{
		Currency:           currency,
		Cash:               fx.Round2(cash),
		AccountsReceivable: fx.Round2(receivable),
		AccountsPayable:    fx.Round2(payable),
		RetainedEarnings:   fx.Round2(revenue - expenseTotal),
		GeneratedAt:        s.now(),
	}
	sheet.TotalAssets = fx.Round2(sheet.Cash + sheet.AccountsReceivable)
	sheet.TotalLiabilitiesAndEquity = fx.Round2(sheet.AccountsPayable + sheet.RetainedEarnings)
	sheet.Balanced = balanced(sheet.TotalAssets, sheet.TotalLiabilitiesAndEquity)
	return sheet, nil
}

// balanced applies the 0.01 threshold on the assets vs liabilities+equity
// difference.
func balanced(assets, liabilitiesAndEquity float64) bool {
	diff := assets - liabilitiesAndEquity
	if diff < 0 {
		diff = -diff
	}
	return diff < 0.01
}

// ShipmentDetail aggregates charge totals over the filtered shipment set.
func (s *Service) ShipmentDetail(ctx context.Context, req shipments.ListShipmentsRequest, currency string) (*ShipmentReport, error) {
	if !fx.Supported(currency) {
		return nil, fmt.Errorf("unsupported display currency %q", currency)
	}
	if req.Limit <= 0 {
		req.Limit = fetchLimit
	}
	list, _, err := s.shipments.List(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("shipment report: %w", err)
	}

	report := &ShipmentReport{
		Currency:    currency,
		Count:       len(list),
		ByDirection: map[string]float64{},
		ByMode:      map[string]float64{},
		CountByMode: map[string]int{},
		GeneratedAt: s.now(),
	}
	for _, sh := range list {
		amount := fx.Convert(sh.TotalCharges, sh.Currency, currency)
		report.TotalCharges += amount
		report.ByDirection[string(sh.Direction)] += amount
		report.ByMode[sh.Mode] += amount
		report.CountByMode[sh.Mode]++
	}
	report.TotalCharges = fx.Round2(report.TotalCharges)
	for k, v := range report.ByDirection {
		report.ByDirection[k] = fx.Round2(v)
	}
	for k, v := range report.ByMode {
		report.ByMode[k] = fx.Round2(v)
	}
	return report, nil
}

// ExpenseSummary totals expenses by category and status.
func (s *Service) ExpenseSummary(ctx context.Context, currency string) (*ExpenseReport, error) {
	if !fx.Supported(currency) {
		return nil, fmt.Errorf("unsupported display currency %q", currency)
	}
	list, _, err := s.expenses.List(ctx, expenses.ListExpensesRequest{Limit: fetchLimit})
	if err != nil {
		return nil, fmt.Errorf("expense report: %w", err)
	}

	report := &ExpenseReport{
		Currency:    currency,
		Count:       len(list),
		ByCategory:  map[string]float64{},
		ByStatus:    map[string]float64{},
		GeneratedAt: s.now(),
	}
	for _, e := range list {
		amount := fx.Convert(e.Amount, e.Currency, currency)
		report.Total += amount
		report.ByCategory[e.Category] += amount
		report.ByStatus[string(e.Status)] += amount
	}
	report.Total = fx.Round2(report.Total)
	for k, v := range report.ByCategory {
		report.ByCategory[k] = fx.Round2(v)
	}
	for k, v := range report.ByStatus {
		report.ByStatus[k] = fx.Round2(v)
	}
	return report, nil
}

// VendorBillSummary totals bills by vendor and status and lists the overdue
// subset.
func (s *Service) VendorBillSummary(ctx context.Context, currency string) (*VendorBillReport, error) {
	if !fx.Supported(currency) {
		return nil, fmt.Errorf("unsupported display currency %q", currency)
	}
	list, _, err := s.bills.List(ctx, vendorbills.ListVendorBillsRequest{Limit: fetchLimit})
	if err != nil {
		return nil, fmt.Errorf("vendor bill report: %w", err)
	}

	now := s.now()
	report := &VendorBillReport{
		Currency:    currency,
		Count:       len(list),
		ByVendor:    map[int64]float64{},
		ByStatus:    map[string]float64{},
		GeneratedAt: now,
	}
	for i := range list {
		b := list[i]
		amount := fx.Convert(b.Amount, b.Currency, currency)
		report.Total += amount
		report.ByVendor[b.VendorID] += amount
		report.ByStatus[string(b.Status)] += amount
		if b.Overdue(now) {
			report.OverdueIDs = append(report.OverdueIDs, b.ID)
			report.Overdue += amount
		}
	}
	report.Total = fx.Round2(report.Total)
	report.Overdue = fx.Round2(report.Overdue)
	for k, v := range report.ByVendor {
		report.ByVendor[k] = fx.Round2(v)
	}
	for k, v := range report.ByStatus {
		report.ByStatus[k] = fx.Round2(v)
	}
	return report, nil
}
