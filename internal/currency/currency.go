// Package currency formats rupee amounts using the Indian crore/lakh display convention.
package currency

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Symbol is the rupee grapheme prefixed to every formatted amount.
const Symbol = "₹"

var (
	// Lakh is 1,00,000 base units.
	Lakh = decimal.NewFromInt(100_000)
	// Crore is 1,00,00,000 base units.
	Crore = decimal.NewFromInt(10_000_000)
)

// plain groups thousands with commas and prints no fraction digits.
var plain = money.NewFormatter(0, ".", ",", Symbol, "$1")

// Format renders a non-negative amount in base units:
//
//	>= 1 crore -> "₹1.50 Cr"
//	>= 1 lakh  -> "₹2.50 L"
//	otherwise  -> "₹50,000"
func Format(amount decimal.Decimal) string {
	switch {
	case amount.GreaterThanOrEqual(Crore):
		return Symbol + amount.Div(Crore).StringFixed(2) + " Cr"
	case amount.GreaterThanOrEqual(Lakh):
		return Symbol + amount.Div(Lakh).StringFixed(2) + " L"
	default:
		return plain.Format(amount.RoundBank(0).IntPart())
	}
}

// FormatFloat is Format for callers holding a float64.
func FormatFloat(amount float64) string {
	return Format(decimal.NewFromFloat(amount))
}

// FromLakh converts a value entered in lakh into base units.
func FromLakh(lakh decimal.Decimal) decimal.Decimal {
	return lakh.Mul(Lakh)
}
