package models

import (
	"strings"

	"github.com/shopspring/decimal"

	"wealthcheck/internal/currency"
)

// Age limits accepted on the input form.
const (
	MinAge = 18
	MaxAge = 100
)

// PortfolioInput is the raw client data collected by the form. Every amount is in lakh.
type PortfolioInput struct {
	ClientName   string  `json:"client_name" form:"client_name" mapstructure:"client_name" binding:"max=120"`
	Age          int     `json:"age" form:"age" mapstructure:"age" binding:"min=18,max=100"`
	AnnualIncome float64 `json:"annual_income" form:"annual_income" mapstructure:"annual_income" binding:"finite,gte=0"`

	DirectStocks  float64 `json:"direct_stocks" form:"direct_stocks" mapstructure:"direct_stocks" binding:"finite,gte=0"`
	MutualFunds   float64 `json:"mutual_funds" form:"mutual_funds" mapstructure:"mutual_funds" binding:"finite,gte=0"`
	FixedDeposits float64 `json:"fixed_deposits" form:"fixed_deposits" mapstructure:"fixed_deposits" binding:"finite,gte=0"`
	ProvidentFund float64 `json:"provident_fund" form:"provident_fund" mapstructure:"provident_fund" binding:"finite,gte=0"`
	Bonds         float64 `json:"bonds" form:"bonds" mapstructure:"bonds" binding:"finite,gte=0"`
	RealEstate    float64 `json:"real_estate" form:"real_estate" mapstructure:"real_estate" binding:"finite,gte=0"`
	Gold          float64 `json:"gold" form:"gold" mapstructure:"gold" binding:"finite,gte=0"`
	CashSavings   float64 `json:"cash_savings" form:"cash_savings" mapstructure:"cash_savings" binding:"finite,gte=0"`

	LifeInsuranceCover   float64 `json:"life_insurance_cover" form:"life_insurance_cover" mapstructure:"life_insurance_cover" binding:"finite,gte=0"`
	HealthInsuranceCover float64 `json:"health_insurance_cover" form:"health_insurance_cover" mapstructure:"health_insurance_cover" binding:"finite,gte=0"`
}

// Name returns the client name with surrounding whitespace removed.
func (p PortfolioInput) Name() string {
	return strings.TrimSpace(p.ClientName)
}

// AnnualIncomeAmount returns the annual income in base units.
func (p PortfolioInput) AnnualIncomeAmount() decimal.Decimal {
	return lakhs(p.AnnualIncome)
}

// LifeCoverAmount returns the life insurance cover in base units.
func (p PortfolioInput) LifeCoverAmount() decimal.Decimal {
	return lakhs(p.LifeInsuranceCover)
}

// HealthCoverAmount returns the health insurance cover in base units.
func (p PortfolioInput) HealthCoverAmount() decimal.Decimal {
	return lakhs(p.HealthInsuranceCover)
}

func lakhs(v float64) decimal.Decimal {
	return currency.FromLakh(decimal.NewFromFloat(v))
}
