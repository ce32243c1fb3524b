package report

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wealthcheck/internal/advisory"
	"wealthcheck/internal/allocation"
	"wealthcheck/internal/models"
)

func sampleInput() models.PortfolioInput {
	return models.PortfolioInput{
		ClientName:           "  Ravi Kumar ",
		Age:                  45,
		AnnualIncome:         24,
		DirectStocks:         40,
		MutualFunds:          20,
		FixedDeposits:        15,
		ProvidentFund:        10,
		RealEstate:           10,
		Gold:                 3,
		CashSavings:          2,
		LifeInsuranceCover:   300,
		HealthInsuranceCover: 15,
	}
}

func TestAssemble(t *testing.T) {
	in := sampleInput()
	breakdown, err := allocation.Calculate(in)
	require.NoError(t, err)
	res := advisory.New(advisory.DefaultThresholds()).Evaluate(in, breakdown)
	at := time.Date(2026, time.March, 5, 10, 0, 0, 0, time.UTC)

	r := Assemble(DefaultFirm, in, breakdown, res, at)

	assert.Equal(t, "Ravi Kumar", r.Client.Name)
	assert.Equal(t, 45, r.Client.Age)
	assert.True(t, r.Client.AnnualIncome.Equal(decimal.NewFromInt(2_400_000)))
	assert.True(t, r.TotalPortfolio.Equal(decimal.NewFromInt(10_000_000)))
	assert.True(t, r.LifeCover.Equal(decimal.NewFromInt(30_000_000)))
	assert.True(t, r.HealthCover.Equal(decimal.NewFromInt(1_500_000)))
	assert.Equal(t, DefaultFirm, r.Firm)
	assert.Equal(t, at, r.AnalyzedAt)
	assert.Equal(t, res.Risk, r.Risk)
	assert.Equal(t, res.Findings, r.Findings)
	assert.Equal(t, "March 05, 2026", r.AnalyzedAt.Format(DateLayout))
}

func TestAssemble_DoesNotShareSlices(t *testing.T) {
	in := sampleInput()
	breakdown, err := allocation.Calculate(in)
	require.NoError(t, err)
	res := advisory.New(advisory.DefaultThresholds()).Evaluate(in, breakdown)

	r := Assemble(DefaultFirm, in, breakdown, res, time.Time{})
	res.Findings[0].Message = "changed"
	breakdown.Shares[0].Percent = -1

	assert.NotEqual(t, "changed", r.Findings[0].Message)
	assert.NotEqual(t, -1.0, r.Allocation.Shares[0].Percent)
}

func TestDetails(t *testing.T) {
	in := sampleInput()
	breakdown, err := allocation.Calculate(in)
	require.NoError(t, err)
	r := Assemble(DefaultFirm, in, breakdown, advisory.Result{}, time.Time{})

	lines := r.Details()
	require.Len(t, lines, 7)
	assert.Equal(t, "Equity & Mutual Funds", lines[0].Label)
	assert.Equal(t, "Cash & Savings", lines[4].Label)
	assert.Equal(t, "Life Insurance Cover", lines[5].Label)
	assert.Equal(t, "Health Insurance Cover", lines[6].Label)
	assert.True(t, lines[6].Amount.Equal(decimal.NewFromInt(1_500_000)))
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "wealth_health_check_Ravi_Kumar.pdf", Filename("Ravi Kumar"))
	assert.Equal(t, "wealth_health_check_A_B_C.pdf", Filename(" A B C "))
	assert.Equal(t, "wealth_health_check_Asha.pdf", Filename("Asha"))
}
