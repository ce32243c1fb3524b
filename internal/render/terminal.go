package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"wealthcheck/internal/currency"
	"wealthcheck/internal/models"
	"wealthcheck/internal/report"
)

var (
	primaryColor = lipgloss.Color("#1F77B4")
	okColor      = lipgloss.Color("#2CA02C")
	warningColor = lipgloss.Color("#E6B400")
	errorColor   = lipgloss.Color("#D62728")
	subtleColor  = lipgloss.Color("#666666")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor)

	headingStyle = lipgloss.NewStyle().
			Bold(true).
			Underline(true)

	subtleStyle = lipgloss.NewStyle().
			Foreground(subtleColor)

	labelStyle = lipgloss.NewStyle().
			Width(18)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#333")).
			Padding(0, 1)
)

func severityStyle(s models.Severity) (lipgloss.Style, string) {
	switch s {
	case models.SeverityDeficiency:
		return lipgloss.NewStyle().Foreground(errorColor), "✗"
	case models.SeverityWarning:
		return lipgloss.NewStyle().Foreground(warningColor), "!"
	}
	return lipgloss.NewStyle().Foreground(okColor), "✓"
}

// Terminal renders the report with colour and borders for an interactive terminal.
// lipgloss strips the styling itself when the output is not a TTY.
func Terminal(r models.Report) string {
	var sections []string

	header := []string{
		titleStyle.Render(report.Title),
		subtleStyle.Render(r.Firm.Name + "  |  " + r.Firm.License),
		"",
		fmt.Sprintf("Client: %s (age %d)", r.Client.Name, r.Client.Age),
		fmt.Sprintf("Date of Analysis: %s", r.AnalyzedAt.Format(report.DateLayout)),
		fmt.Sprintf("Total Portfolio Value: %s", currency.Format(r.TotalPortfolio)),
		fmt.Sprintf("Annual Income: %s", currency.Format(r.Client.AnnualIncome)),
	}
	sections = append(sections, boxStyle.Render(strings.Join(header, "\n")))

	alloc := []string{headingStyle.Render("Current Asset Allocation")}
	for _, s := range r.Allocation.Shares {
		bar := lipgloss.NewStyle().Foreground(lipgloss.Color(BucketColor(s.Bucket).Hex())).Render(Bar(s.Percent, BarWidth))
		alloc = append(alloc, labelStyle.Render(s.Bucket.ShortLabel()+":")+bar)
	}
	sections = append(sections, strings.Join(alloc, "\n"))

	recs := []string{headingStyle.Render("Recommendations")}
	for _, f := range r.Findings {
		style, icon := severityStyle(f.Severity)
		recs = append(recs, style.Render(icon)+" "+f.Message)
	}
	sections = append(sections, strings.Join(recs, "\n"))

	tier := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(MarkerColor(r.Risk.Marker).Hex())).Render(string(r.Risk.Tier))
	sections = append(sections, strings.Join([]string{
		headingStyle.Render("Portfolio Risk Assessment"),
		"Risk Profile: " + tier,
		r.Risk.Description,
	}, "\n"))

	sections = append(sections, subtleStyle.Render(strings.Join([]string{
		fmt.Sprintf("Report prepared by: %s | %s", r.Firm.Advisor, r.Firm.Name),
		fmt.Sprintf("Contact: %s | Email: %s | Website: %s", r.Firm.Phone, r.Firm.Email, r.Firm.Website),
		strings.Join(report.Disclaimer, " "),
	}, "\n")))

	return strings.Join(sections, "\n\n") + "\n"
}
