package fx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertSameCurrency(t *testing.T) {
	assert.Equal(t, 150.5, Convert(150.5, "USD", "USD"))
}

func TestConvertThroughUSD(t *testing.T) {
	// 1000 AED -> USD at 0.2723
	got := Convert(1000, "AED", "USD")
	assert.InDelta(t, 272.3, got, 0.001)

	// Round trip loses only rounding noise.
	back := Convert(got, "USD", "AED")
	assert.InDelta(t, 1000, back, 0.1)
}

func TestConvertUnknownCurrencyPassesThrough(t *testing.T) {
	assert.Equal(t, 99.0, Convert(99.0, "XXX", "USD"))
	assert.Equal(t, 99.0, Convert(99.0, "USD", "XXX"))
}

func TestConvertRoundsToCents(t *testing.T) {
	got := Convert(1, "INR", "USD")
	assert.Equal(t, 0.01, got)
}

func TestSupported(t *testing.T) {
	for _, code := range SupportedCurrencies() {
		require.True(t, Supported(code), code)
	}
	assert.False(t, Supported("BTC"))
}

func TestFormatCurrencyValue(t *testing.T) {
	assert.Equal(t, "AED 12,500.00", FormatCurrencyValue(12500, "AED"))
	assert.Equal(t, "USD 0.50", FormatCurrencyValue(0.5, "USD"))
}
