// Package report assembles the advisory report consumed by the render sinks.
package report

import (
	"strings"
	"time"

	"wealthcheck/internal/advisory"
	"wealthcheck/internal/models"
)

// DefaultFirm is the issuing firm used when nothing else is configured.
var DefaultFirm = models.Firm{
	Name:    "FinElevate India",
	Advisor: "Chirag Sanghvi",
	Phone:   "+91-7744892728",
	Email:   "finelevateindia@gmail.com",
	Website: "www.finelevateindia.com",
	License: "SEBI REG: INH000000000",
}

// Title heads every rendered report.
const Title = "Comprehensive Wealth Health Check"

// Disclaimer lines closing every rendered report.
var Disclaimer = []string{
	"Disclaimer: This analysis is for informational purposes only. Past performance does not guarantee future results.",
	"Please consult with a qualified advisor before making investment decisions.",
}

// DateLayout formats the analysis date, e.g. "March 05, 2026".
const DateLayout = "January 02, 2006"

// Assemble packages the analysis into a Report. It computes nothing itself.
func Assemble(firm models.Firm, in models.PortfolioInput, breakdown models.AllocationBreakdown, res advisory.Result, analyzedAt time.Time) models.Report {
	findings := make([]models.Finding, len(res.Findings))
	copy(findings, res.Findings)

	shares := make([]models.BucketShare, len(breakdown.Shares))
	copy(shares, breakdown.Shares)

	return models.Report{
		Client: models.Client{
			Name:         in.Name(),
			Age:          in.Age,
			AnnualIncome: in.AnnualIncomeAmount(),
		},
		Firm:           firm,
		AnalyzedAt:     analyzedAt,
		TotalPortfolio: breakdown.Total,
		LifeCover:      in.LifeCoverAmount(),
		HealthCover:    in.HealthCoverAmount(),
		Allocation:     models.AllocationBreakdown{Total: breakdown.Total, Shares: shares},
		Findings:       findings,
		Risk:           res.Risk,
	}
}

// Filename is the download name of the PDF for a client.
func Filename(clientName string) string {
	return "wealth_health_check_" + strings.ReplaceAll(strings.TrimSpace(clientName), " ", "_") + ".pdf"
}
