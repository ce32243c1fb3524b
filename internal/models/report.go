package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Client is the identity block printed at the top of a report.
type Client struct {
	Name         string          `json:"name"`
	Age          int             `json:"age"`
	AnnualIncome decimal.Decimal `json:"annual_income"`
}

// Firm identifies the advisory firm issuing the report.
type Firm struct {
	Name    string `json:"name"`
	Advisor string `json:"advisor"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Website string `json:"website"`
	License string `json:"license"`
}

// Report is a point-in-time advisory analysis of one client.
// It is assembled once per request and never modified afterwards.
type Report struct {
	Client         Client              `json:"client"`
	Firm           Firm                `json:"firm"`
	AnalyzedAt     time.Time           `json:"analyzed_at"`
	TotalPortfolio decimal.Decimal     `json:"total_portfolio"`
	LifeCover      decimal.Decimal     `json:"life_cover"`
	HealthCover    decimal.Decimal     `json:"health_cover"`
	Allocation     AllocationBreakdown `json:"allocation"`
	Findings       []Finding           `json:"findings"`
	Risk           RiskProfile         `json:"risk"`
}

// DetailLine is one "Portfolio Details" entry: a category and its amount.
type DetailLine struct {
	Label  string
	Amount decimal.Decimal
}

// Details lists the five buckets followed by the insurance covers.
func (r Report) Details() []DetailLine {
	lines := make([]DetailLine, 0, len(r.Allocation.Shares)+2)
	for _, s := range r.Allocation.Shares {
		lines = append(lines, DetailLine{Label: s.Label, Amount: s.Value})
	}
	return append(lines,
		DetailLine{Label: "Life Insurance Cover", Amount: r.LifeCover},
		DetailLine{Label: "Health Insurance Cover", Amount: r.HealthCover},
	)
}
