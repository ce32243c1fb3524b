package handlers

import (
	"embed"
	"html/template"
	"time"

	"wealthcheck/internal/currency"
	"wealthcheck/internal/models"
	"wealthcheck/internal/render"
	"wealthcheck/internal/report"
)

//go:embed templates/*.html
var templateFS embed.FS

var templateFuncs = template.FuncMap{
	"money": currency.Format,
	"bar": func(pct float64) string {
		return render.Bar(pct, render.BarWidth)
	},
	"date": func(t time.Time) string {
		return t.Format(report.DateLayout)
	},
	"marker": func(marker string) string {
		return render.MarkerColor(marker).Hex()
	},
	"severityIcon": func(s models.Severity) string {
		switch s {
		case models.SeverityDeficiency:
			return "✗"
		case models.SeverityWarning:
			return "!"
		}
		return "✓"
	},
}

// Templates parses the embedded HTML pages for the form handler.
func Templates() (*template.Template, error) {
	return template.New("").Funcs(templateFuncs).ParseFS(templateFS, "templates/*.html")
}
