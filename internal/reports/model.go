package reports

import (
	"time"

	"github.com/freightdesk/freightdesk/internal/fx"
)

// BalanceSheet is a point-in-time statement, all figures in the requested
// display currency.
type BalanceSheet struct {
	Currency                  string    `json:"currency"`
	Cash                      float64   `json:"cash"`
	AccountsReceivable        float64   `json:"accounts_receivable"`
	TotalAssets               float64   `json:"total_assets"`
	AccountsPayable           float64   `json:"accounts_payable"`
	RetainedEarnings          float64   `json:"retained_earnings"`
	TotalLiabilitiesAndEquity float64   `json:"total_liabilities_and_equity"`
	Balanced                  bool      `json:"balanced"`
	GeneratedAt               time.Time `json:"generated_at"`
}

// Display renders the headline figures with grouping separators for the
// statement view.
func (b BalanceSheet) Display() map[string]string {
	return map[string]string{
		"cash":                         fx.FormatCurrencyValue(b.Cash, b.Currency),
		"accounts_receivable":          fx.FormatCurrencyValue(b.AccountsReceivable, b.Currency),
		"total_assets":                 fx.FormatCurrencyValue(b.TotalAssets, b.Currency),
		"accounts_payable":             fx.FormatCurrencyValue(b.AccountsPayable, b.Currency),
		"retained_earnings":            fx.FormatCurrencyValue(b.RetainedEarnings, b.Currency),
		"total_liabilities_and_equity": fx.FormatCurrencyValue(b.TotalLiabilitiesAndEquity, b.Currency),
	}
}

// ShipmentReport summarizes job files with charge totals broken down by
// direction and by mode.
type ShipmentReport struct {
	Currency     string             `json:"currency"`
	Count        int                `json:"count"`
	TotalCharges float64            `json:"total_charges"`
	ByDirection  map[string]float64 `json:"by_direction"`
	ByMode       map[string]float64 `json:"by_mode"`
	CountByMode  map[string]int     `json:"count_by_mode"`
	GeneratedAt  time.Time          `json:"generated_at"`
}

// ExpenseReport totals expenses by category and by status.
type ExpenseReport struct {
	Currency    string             `json:"currency"`
	Count       int                `json:"count"`
	Total       float64            `json:"total"`
	ByCategory  map[string]float64 `json:"by_category"`
	ByStatus    map[string]float64 `json:"by_status"`
	GeneratedAt time.Time          `json:"generated_at"`
}

// VendorBillReport totals bills by vendor and by status, with the overdue
// subset listed out.
type VendorBillReport struct {
	Currency    string             `json:"currency"`
	Count       int                `json:"count"`
	Total       float64            `json:"total"`
	ByVendor    map[int64]float64  `json:"by_vendor"`
	ByStatus    map[string]float64 `json:"by_status"`
	OverdueIDs  []int64            `json:"overdue_ids"`
	Overdue     float64            `json:"overdue"`
	GeneratedAt time.Time          `json:"generated_at"`
}
