// Package advisory evaluates the advisory rules (equity vs age, emergency fund,
// life and health insurance) and classifies portfolio risk.
//
// The engine trusts its input: the allocation breakdown must come from
// allocation.Calculate, which rejects empty portfolios.
package advisory

import (
	"fmt"

	"github.com/shopspring/decimal"

	"wealthcheck/internal/currency"
	"wealthcheck/internal/models"
)

// Thresholds are the fixed constants the rules compare against.
type Thresholds struct {
	EquityBaseAge      int             // ideal equity % = EquityBaseAge - age
	EquityBand         float64         // tolerated deviation from the ideal, in points
	ExpenseRatio       decimal.Decimal // share of income assumed spent
	EmergencyMonths    int64           // months of expenses the cash bucket should cover
	LifeCoverMultiple  int64           // required life cover as a multiple of income
	MinHealthCover     decimal.Decimal // base units
	AggressiveAbove    float64         // equity % strictly above which a portfolio is Aggressive
	ModAggressiveAbove float64
	ModerateAbove      float64
}

// DefaultThresholds returns the thresholds every analysis uses.
func DefaultThresholds() Thresholds {
	return Thresholds{
		EquityBaseAge:      100,
		EquityBand:         10,
		ExpenseRatio:       decimal.RequireFromString("0.7"),
		EmergencyMonths:    6,
		LifeCoverMultiple:  10,
		MinHealthCover:     decimal.NewFromInt(1_000_000),
		AggressiveAbove:    80,
		ModAggressiveAbove: 60,
		ModerateAbove:      40,
	}
}

// Result is the output of one evaluation.
type Result struct {
	Findings []models.Finding
	Risk     models.RiskProfile
}

// Engine runs the advisory rules against fixed thresholds.
type Engine struct {
	th Thresholds
}

// New creates an Engine.
func New(th Thresholds) *Engine {
	return &Engine{th: th}
}

// Evaluate runs every rule, in display order, and classifies risk.
func (e *Engine) Evaluate(in models.PortfolioInput, a models.AllocationBreakdown) Result {
	equityPct := a.Percent(models.BucketEquity)
	income := in.AnnualIncomeAmount()

	return Result{
		Findings: []models.Finding{
			e.EquityAllocation(in.Age, equityPct),
			e.EmergencyFund(income, a.Value(models.BucketCash)),
			e.LifeInsurance(income, in.LifeCoverAmount()),
			e.HealthInsurance(in.HealthCoverAmount()),
		},
		Risk: e.ClassifyRisk(equityPct),
	}
}

// EquityAllocation compares the equity share with 100 minus age.
// A deviation of exactly the band is not flagged.
func (e *Engine) EquityAllocation(age int, equityPct float64) models.Finding {
	ideal := e.th.EquityBaseAge - age
	delta := equityPct - float64(ideal)

	current := fmt.Sprintf("%.1f", equityPct)
	switch {
	case delta < -e.th.EquityBand:
		return newMessage("Under-allocated in Equity: Current {current}%, Ideal {ideal}%. Consider investing more in equity instruments.").
			with("current", equityPct, current).
			with("ideal", float64(ideal), fmt.Sprintf("%d", ideal)).
			finding(models.RuleEquityAllocation, models.SeverityDeficiency)
	case delta > e.th.EquityBand:
		return newMessage("Over-allocated in Equity: Current {current}%, Ideal {ideal}%. Consider rebalancing to debt instruments.").
			with("current", equityPct, current).
			with("ideal", float64(ideal), fmt.Sprintf("%d", ideal)).
			finding(models.RuleEquityAllocation, models.SeverityWarning)
	default:
		return newMessage("Equity allocation is optimal based on age ({current}%).").
			with("current", equityPct, current).
			finding(models.RuleEquityAllocation, models.SeverityOK)
	}
}

// MonthlyExpense estimates monthly spending from annual income.
func (e *Engine) MonthlyExpense(income decimal.Decimal) decimal.Decimal {
	return income.Mul(e.th.ExpenseRatio).Div(decimal.NewFromInt(12))
}

// EmergencyFund checks that cash covers the configured months of expenses.
// With no income the requirement is zero and months covered is reported as 0.
func (e *Engine) EmergencyFund(income, cash decimal.Decimal) models.Finding {
	monthly := e.MonthlyExpense(income)
	required := monthly.Mul(decimal.NewFromInt(e.th.EmergencyMonths))

	if cash.LessThan(required) {
		shortfall := required.Sub(cash)
		return newMessage("Emergency fund is insufficient by {shortfall}. Increase savings.").
			with("shortfall", shortfall.InexactFloat64(), currency.Format(shortfall)).
			finding(models.RuleEmergencyFund, models.SeverityDeficiency)
	}

	months := decimal.Zero
	if !monthly.IsZero() {
		months = cash.Div(monthly)
	}
	return newMessage("Emergency fund is adequate covering {months} months of expenses.").
		with("months", months.InexactFloat64(), months.StringFixed(1)).
		finding(models.RuleEmergencyFund, models.SeverityOK)
}

// LifeInsurance checks that life cover is at least the configured multiple of income.
// With no income any cover is adequate and the multiple is reported as 0.
func (e *Engine) LifeInsurance(income, cover decimal.Decimal) models.Finding {
	required := income.Mul(decimal.NewFromInt(e.th.LifeCoverMultiple))

	if cover.LessThan(required) {
		gap := required.Sub(cover)
		return newMessage("Life insurance cover is insufficient by {gap}. Please increase coverage.").
			with("gap", gap.InexactFloat64(), currency.Format(gap)).
			finding(models.RuleLifeInsurance, models.SeverityDeficiency)
	}

	multiple := decimal.Zero
	if !income.IsZero() {
		multiple = cover.Div(income)
	}
	return newMessage("Life insurance cover is adequate at {multiple}x annual income.").
		with("multiple", multiple.InexactFloat64(), multiple.StringFixed(1)).
		finding(models.RuleLifeInsurance, models.SeverityOK)
}

// HealthInsurance flags cover below the minimum as a warning; the minimum itself is adequate.
func (e *Engine) HealthInsurance(cover decimal.Decimal) models.Finding {
	if cover.LessThan(e.th.MinHealthCover) {
		lakhs := e.th.MinHealthCover.Div(currency.Lakh)
		return newMessage("Health insurance cover is below recommended {threshold}. Consider upgrading your health cover.").
			with("threshold", e.th.MinHealthCover.InexactFloat64(), currency.Symbol+lakhs.String()+"L").
			finding(models.RuleHealthInsurance, models.SeverityWarning)
	}
	return newMessage("Health insurance cover is adequate.").
		finding(models.RuleHealthInsurance, models.SeverityOK)
}

// ClassifyRisk maps the equity share onto a risk tier. Each boundary belongs to the lower tier.
func (e *Engine) ClassifyRisk(equityPct float64) models.RiskProfile {
	switch {
	case equityPct > e.th.AggressiveAbove:
		return models.RiskProfile{Tier: models.RiskAggressive, Description: "High volatility, high potential returns.", Marker: "red"}
	case equityPct > e.th.ModAggressiveAbove:
		return models.RiskProfile{Tier: models.RiskModerateAggressive, Description: "Moderate to high volatility, good growth potential.", Marker: "yellow"}
	case equityPct > e.th.ModerateAbove:
		return models.RiskProfile{Tier: models.RiskModerate, Description: "Balanced risk-return profile.", Marker: "green"}
	default:
		return models.RiskProfile{Tier: models.RiskConservative, Description: "Low volatility, steady returns.", Marker: "blue"}
	}
}
