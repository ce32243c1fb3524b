package models

import "github.com/shopspring/decimal"

// Bucket is one of the five aggregated portfolio categories.
type Bucket string

const (
	BucketEquity      Bucket = "equity"
	BucketFixedIncome Bucket = "fixed_income"
	BucketRealEstate  Bucket = "real_estate"
	BucketGold        Bucket = "gold"
	BucketCash        Bucket = "cash"
)

// Buckets lists every bucket in display order.
var Buckets = []Bucket{BucketEquity, BucketFixedIncome, BucketRealEstate, BucketGold, BucketCash}

// Label is the long name used on the chart and in the PDF.
func (b Bucket) Label() string {
	switch b {
	case BucketEquity:
		return "Equity & Mutual Funds"
	case BucketFixedIncome:
		return "Fixed Income"
	case BucketRealEstate:
		return "Real Estate"
	case BucketGold:
		return "Gold/Commodities"
	case BucketCash:
		return "Cash & Savings"
	}
	return string(b)
}

// ShortLabel is the compact name used next to allocation bars.
func (b Bucket) ShortLabel() string {
	switch b {
	case BucketEquity:
		return "Equity & MF"
	case BucketGold:
		return "Gold"
	}
	return b.Label()
}

// BucketShare is a bucket total (base units) and its share of the portfolio.
type BucketShare struct {
	Bucket  Bucket          `json:"bucket"`
	Label   string          `json:"label"`
	Value   decimal.Decimal `json:"value"`
	Percent float64         `json:"percent"`
}

// AllocationBreakdown holds the five bucket shares, always in Buckets order.
// It only exists for portfolios with a positive total.
type AllocationBreakdown struct {
	Total  decimal.Decimal `json:"total"`
	Shares []BucketShare   `json:"shares"`
}

// Share returns the share for bucket b, or a zero share if absent.
func (a AllocationBreakdown) Share(b Bucket) BucketShare {
	for _, s := range a.Shares {
		if s.Bucket == b {
			return s
		}
	}
	return BucketShare{Bucket: b, Label: b.Label()}
}

// Percent returns the percentage share of bucket b.
func (a AllocationBreakdown) Percent(b Bucket) float64 {
	return a.Share(b).Percent
}

// Value returns the total of bucket b in base units.
func (a AllocationBreakdown) Value(b Bucket) decimal.Decimal {
	return a.Share(b).Value
}
