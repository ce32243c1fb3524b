// Package testutil provides test helpers for building client inputs,
// fixed clocks, and making assertions.
package testutil

import (
	"time"

	"wealthcheck/internal/models"
)

// FixedTime is the analysis time stamped by FixedClock.
var FixedTime = time.Date(2026, time.March, 5, 10, 30, 0, 0, time.UTC)

// FixedClock always returns FixedTime.
func FixedClock() time.Time { return FixedTime }

// SampleInput returns a valid client whose findings cover every severity:
// equity under-allocated (55% vs 70%), emergency fund short by 1.2L,
// life cover short by 70L and health cover below 10L. Total portfolio is 1 Cr.
func SampleInput() models.PortfolioInput {
	return models.PortfolioInput{
		ClientName:           "Asha Rao",
		Age:                  30,
		AnnualIncome:         12,
		DirectStocks:         30,
		MutualFunds:          25,
		FixedDeposits:        12,
		ProvidentFund:        5,
		Bonds:                3,
		RealEstate:           17,
		Gold:                 5,
		CashSavings:          3,
		LifeInsuranceCover:   50,
		HealthInsuranceCover: 8,
	}
}

// WellCoveredInput returns a client for whom every rule passes.
func WellCoveredInput() models.PortfolioInput {
	return models.PortfolioInput{
		ClientName:           "Ravi Kumar",
		Age:                  35,
		AnnualIncome:         10,
		DirectStocks:         40,
		MutualFunds:          25,
		FixedDeposits:        10,
		ProvidentFund:        10,
		RealEstate:           5,
		Gold:                 5,
		CashSavings:          5,
		LifeInsuranceCover:   120,
		HealthInsuranceCover: 10,
	}
}

// EmptyPortfolioInput returns a named client with nothing invested.
func EmptyPortfolioInput() models.PortfolioInput {
	return models.PortfolioInput{ClientName: "Nobody", Age: 40, AnnualIncome: 6, LifeInsuranceCover: 20}
}
