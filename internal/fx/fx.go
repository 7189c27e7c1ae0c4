// Package fx converts and formats monetary amounts using a static rate table.
// Rates are a fixed lookup table keyed by currency pair, not a live feed.
package fx

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// usdRates holds units of USD per one unit of the keyed currency.
var usdRates = map[string]float64{
	"USD": 1.0,
	"AED": 0.2723,
	"EUR": 1.09,
	"GBP": 1.27,
	"INR": 0.012,
	"CNY": 0.14,
	"SAR": 0.2666,
	"SGD": 0.75,
}

// SupportedCurrencies lists the currency codes the rate table covers.
func SupportedCurrencies() []string {
	return []string{"AED", "USD", "EUR", "GBP", "INR", "CNY", "SAR", "SGD"}
}

// Supported reports whether code appears in the rate table.
func Supported(code string) bool {
	_, ok := usdRates[code]
	return ok
}

// Convert converts amount from one currency to another through the USD cross
// rate, rounded to 2 decimal places. Unknown codes leave the amount unchanged,
// matching the behaviour of a table lookup with no matching pair.
func Convert(amount float64, from, to string) float64 {
	if from == to {
		return amount
	}
	fromRate, okFrom := usdRates[from]
	toRate, okTo := usdRates[to]
	if !okFrom || !okTo {
		return amount
	}
	return Round2(amount * fromRate / toRate)
}

// Round2 rounds to 2 decimal places, away from zero on ties.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

var printer = message.NewPrinter(language.English)

// FormatCurrencyValue renders an amount with grouping separators and the
// currency code as prefix, e.g. "AED 12,500.00".
func FormatCurrencyValue(amount float64, code string) string {
	return printer.Sprintf("%s %v", code, number.Decimal(amount, number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}
