// Package allocation aggregates raw portfolio inputs into the five allocation
// buckets and computes each bucket's share of the total.
package allocation

import (
	"github.com/shopspring/decimal"

	"wealthcheck/internal/currency"
	apperrors "wealthcheck/internal/errors"
	"wealthcheck/internal/models"
)

var hundred = decimal.NewFromInt(100)

// Totals returns the total of each bucket in base units.
// Insurance covers are not part of the portfolio.
func Totals(in models.PortfolioInput) map[models.Bucket]decimal.Decimal {
	return map[models.Bucket]decimal.Decimal{
		models.BucketEquity:      sumLakhs(in.DirectStocks, in.MutualFunds),
		models.BucketFixedIncome: sumLakhs(in.FixedDeposits, in.ProvidentFund, in.Bonds),
		models.BucketRealEstate:  sumLakhs(in.RealEstate),
		models.BucketGold:        sumLakhs(in.Gold),
		models.BucketCash:        sumLakhs(in.CashSavings),
	}
}

// Calculate builds the allocation breakdown for in. It returns ErrEmptyPortfolio
// when the portfolio total is not positive; no percentages are computed then.
func Calculate(in models.PortfolioInput) (models.AllocationBreakdown, error) {
	totals := Totals(in)

	total := decimal.Zero
	for _, b := range models.Buckets {
		total = total.Add(totals[b])
	}
	if !total.IsPositive() {
		return models.AllocationBreakdown{}, apperrors.ErrEmptyPortfolio
	}

	shares := make([]models.BucketShare, 0, len(models.Buckets))
	for _, b := range models.Buckets {
		v := totals[b]
		shares = append(shares, models.BucketShare{
			Bucket:  b,
			Label:   b.Label(),
			Value:   v,
			Percent: percentOf(v, total),
		})
	}

	return models.AllocationBreakdown{Total: total, Shares: shares}, nil
}

// percentOf is v*100/total as a float, unrounded.
func percentOf(v, total decimal.Decimal) float64 {
	return v.Mul(hundred).InexactFloat64() / total.InexactFloat64()
}

func sumLakhs(values ...float64) decimal.Decimal {
	sum := decimal.Zero
	for _, v := range values {
		sum = sum.Add(decimal.NewFromFloat(v))
	}
	return currency.FromLakh(sum)
}
