// Package render turns a report into its presentation surfaces: allocation
// bars, plain and styled text, a donut chart and a PDF document.
package render

import (
	"fmt"
	"strings"

	"wealthcheck/internal/currency"
	"wealthcheck/internal/models"
	"wealthcheck/internal/report"
)

// BarWidth is the number of glyphs in an allocation bar.
const BarWidth = 30

const (
	barFilled = "█"
	barEmpty  = "░"
)

// Bar draws pct (0..100) as a fixed-width glyph bar followed by the percentage.
// The filled part is truncated, never rounded up.
func Bar(pct float64, width int) string {
	filled := int(pct * float64(width) / 100)
	if filled < 0 {
		filled = 0
	}
	if filled > width {
		filled = width
	}
	return strings.Repeat(barFilled, filled) + strings.Repeat(barEmpty, width-filled) + fmt.Sprintf(" %.1f%%", pct)
}

// AllocationLines returns one labelled bar per bucket, in bucket order.
func AllocationLines(a models.AllocationBreakdown) []string {
	lines := make([]string, 0, len(a.Shares))
	for _, s := range a.Shares {
		lines = append(lines, fmt.Sprintf("%-18s%s", s.Bucket.ShortLabel()+":", Bar(s.Percent, BarWidth)))
	}
	return lines
}

// severityTag prefixes findings in plain text output.
func severityTag(s models.Severity) string {
	switch s {
	case models.SeverityDeficiency:
		return "[!!]"
	case models.SeverityWarning:
		return "[! ]"
	}
	return "[ok]"
}

// Text renders the full report as plain text.
func Text(r models.Report) string {
	var b strings.Builder

	fmt.Fprintln(&b, report.Title)
	fmt.Fprintf(&b, "%s  |  %s\n", r.Firm.Name, r.Firm.License)
	fmt.Fprintln(&b)

	fmt.Fprintf(&b, "Analysis Report for %s\n", r.Client.Name)
	fmt.Fprintf(&b, "Date of Analysis: %s\n", r.AnalyzedAt.Format(report.DateLayout))
	fmt.Fprintf(&b, "Age: %d\n", r.Client.Age)
	fmt.Fprintf(&b, "Total Portfolio Value: %s\n", currency.Format(r.TotalPortfolio))
	fmt.Fprintf(&b, "Annual Income: %s\n", currency.Format(r.Client.AnnualIncome))
	fmt.Fprintln(&b)

	fmt.Fprintln(&b, "Current Asset Allocation")
	for _, line := range AllocationLines(r.Allocation) {
		fmt.Fprintln(&b, line)
	}
	fmt.Fprintln(&b)

	fmt.Fprintln(&b, "Recommendations")
	for _, f := range r.Findings {
		fmt.Fprintf(&b, "%s %s\n", severityTag(f.Severity), f.Message)
	}
	fmt.Fprintln(&b)

	fmt.Fprintln(&b, "Portfolio Risk Assessment")
	fmt.Fprintf(&b, "Risk Profile: %s\n", r.Risk.Tier)
	fmt.Fprintln(&b, r.Risk.Description)
	fmt.Fprintln(&b)

	fmt.Fprintf(&b, "Report prepared by: %s | %s\n", r.Firm.Advisor, r.Firm.Name)
	fmt.Fprintf(&b, "Contact: %s | Email: %s | Website: %s\n", r.Firm.Phone, r.Firm.Email, r.Firm.Website)
	fmt.Fprintln(&b, strings.Join(report.Disclaimer, " "))

	return b.String()
}
