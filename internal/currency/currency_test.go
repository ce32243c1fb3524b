package currency

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name   string
		amount int64
		want   string
	}{
		{"zero", 0, "₹0"},
		{"hundreds", 950, "₹950"},
		{"thousands grouped", 50_000, "₹50,000"},
		{"just below a lakh", 99_999, "₹99,999"},
		{"exactly one lakh", 100_000, "₹1.00 L"},
		{"lakhs", 250_000, "₹2.50 L"},
		{"just below a crore", 9_999_999, "₹100.00 L"},
		{"exactly one crore", 10_000_000, "₹1.00 Cr"},
		{"crores", 15_000_000, "₹1.50 Cr"},
		{"large crores", 1_234_500_000, "₹123.45 Cr"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(decimal.NewFromInt(tt.amount)))
		})
	}
}

func TestFormat_RoundsPlainAmountsToWholeRupees(t *testing.T) {
	assert.Equal(t, "₹1,235", Format(decimal.RequireFromString("1234.6")))
	assert.Equal(t, "₹1,234", Format(decimal.RequireFromString("1234.4")))
	// half to even, matching "%.0f"
	assert.Equal(t, "₹1,234", Format(decimal.RequireFromString("1234.5")))
}

func TestFormatFloat(t *testing.T) {
	assert.Equal(t, "₹1.20 L", FormatFloat(120_000))
	assert.Equal(t, "₹50,000", FormatFloat(50_000))
}

func TestFromLakh(t *testing.T) {
	got := FromLakh(decimal.RequireFromString("12.5"))
	assert.True(t, got.Equal(decimal.NewFromInt(1_250_000)), "got %s", got)
}
