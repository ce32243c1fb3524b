package render

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"

	"wealthcheck/internal/currency"
	"wealthcheck/internal/logger"
	"wealthcheck/internal/models"
	"wealthcheck/internal/report"
)

const (
	pageWidth    = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 20.0
	contentWidth = pageWidth - marginLeft - marginRight

	chartRadius = 30.0
	chartStep   = 3.0
	lineHeight  = 6.0
)

type pdfReport struct {
	pdf     *fpdf.Fpdf
	report  models.Report
	dropped int
}

// PDF renders the report as an A4 document using the standard PDF fonts.
// Text is restricted to ISO-8859-1 first, so characters such as the rupee sign
// do not appear in the document. Output is byte-identical for identical reports.
func PDF(r models.Report) ([]byte, error) {
	doc := &pdfReport{
		pdf:    fpdf.New("P", "mm", "A4", ""),
		report: r,
	}

	doc.pdf.SetMargins(marginLeft, marginTop, marginRight)
	doc.pdf.SetAutoPageBreak(true, marginBottom)
	doc.pdf.SetCatalogSort(true)
	doc.pdf.SetCreationDate(r.AnalyzedAt)
	doc.pdf.SetModificationDate(r.AnalyzedAt)
	doc.pdf.SetTitle(report.Title+" - "+r.Client.Name, true)
	doc.pdf.SetAuthor(r.Firm.Name, true)
	doc.pdf.SetCreator(r.Firm.Advisor, true)

	doc.pdf.AddPage()
	doc.addHeader()
	doc.addClient()
	doc.addChart()
	doc.addDetails()
	doc.addRecommendations()
	doc.addRisk()
	doc.addFooter()

	if doc.dropped > 0 {
		logger.Get().Debugw("characters dropped from PDF text", "count", doc.dropped)
	}

	var buf bytes.Buffer
	if err := doc.pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("rendering pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// text prepares s for the standard fonts.
func (d *pdfReport) text(s string) string {
	out, dropped := latin1(s)
	d.dropped += dropped
	return out
}

func (d *pdfReport) line(s string) {
	d.pdf.CellFormat(contentWidth, lineHeight, d.text(s), "", 1, "L", false, 0, "")
}

func (d *pdfReport) heading(s string) {
	d.pdf.Ln(4)
	d.pdf.SetFont("Arial", "B", 12)
	d.pdf.SetTextColor(0, 51, 102)
	d.line(s)
	d.pdf.SetFont("Arial", "", 11)
	d.pdf.SetTextColor(50, 50, 50)
}

func (d *pdfReport) addHeader() {
	d.pdf.SetFont("Arial", "B", 16)
	d.pdf.SetTextColor(0, 51, 102)
	d.pdf.CellFormat(contentWidth, 10, d.text(report.Title), "", 1, "C", false, 0, "")

	d.pdf.SetFont("Arial", "", 10)
	d.pdf.SetTextColor(80, 80, 80)
	d.pdf.CellFormat(contentWidth, 6, d.text(d.report.Firm.Name), "", 1, "C", false, 0, "")
	d.pdf.CellFormat(contentWidth, 6, d.text(d.report.Firm.License), "", 1, "C", false, 0, "")

	d.pdf.SetDrawColor(200, 200, 200)
	y := d.pdf.GetY() + 2
	d.pdf.Line(marginLeft, y, pageWidth-marginRight, y)
	d.pdf.Ln(6)
}

func (d *pdfReport) addClient() {
	r := d.report
	d.pdf.SetFont("Arial", "", 11)
	d.pdf.SetTextColor(50, 50, 50)
	d.line("Client Name: " + r.Client.Name)
	d.line(fmt.Sprintf("Age: %d", r.Client.Age))
	d.line("Annual Income: " + currency.Format(r.Client.AnnualIncome))
	d.line("Date of Analysis: " + r.AnalyzedAt.Format(report.DateLayout))
	d.line("Total Portfolio Value: " + currency.Format(r.TotalPortfolio))
}

func (d *pdfReport) addChart() {
	d.heading("Asset Allocation:")

	top := d.pdf.GetY() + 2
	if top+2*chartRadius > 297-marginBottom {
		d.pdf.AddPage()
		top = d.pdf.GetY()
	}
	center := Point{X: marginLeft + chartRadius + 10, Y: top + chartRadius}

	d.pdf.SetDrawColor(255, 255, 255)
	d.pdf.SetLineWidth(0.3)
	slices := Slices(d.report.Allocation)
	for _, s := range slices {
		ring := s.Ring(center, chartRadius, chartRadius*HoleRatio, chartStep)
		pts := make([]fpdf.PointType, len(ring))
		for i, p := range ring {
			pts[i] = fpdf.PointType{X: p.X, Y: p.Y}
		}
		d.pdf.SetFillColor(s.Color.R, s.Color.G, s.Color.B)
		d.pdf.Polygon(pts, "FD")
	}

	d.pdf.SetFont("Arial", "B", 8)
	d.pdf.SetTextColor(255, 255, 255)
	for _, s := range slices {
		if s.Percent < minLabeled {
			continue
		}
		p := s.Mid(center, chartRadius*(1+HoleRatio)/2)
		label := fmt.Sprintf("%.1f%%", s.Percent)
		w := d.pdf.GetStringWidth(label)
		d.pdf.Text(p.X-w/2, p.Y+1, label)
	}

	legendX := center.X + chartRadius + 20
	y := center.Y - float64(len(slices))*lineHeight/2
	d.pdf.SetFont("Arial", "", 10)
	d.pdf.SetTextColor(50, 50, 50)
	for _, s := range slices {
		d.pdf.SetFillColor(s.Color.R, s.Color.G, s.Color.B)
		d.pdf.Rect(legendX, y+1, 4, 4, "F")
		d.pdf.SetXY(legendX+6, y)
		d.pdf.CellFormat(70, lineHeight, d.text(fmt.Sprintf("%s %.1f%%", s.Label, s.Percent)), "", 0, "L", false, 0, "")
		y += lineHeight
	}

	d.pdf.SetXY(marginLeft, top+2*chartRadius+4)
}

func (d *pdfReport) addDetails() {
	d.heading("Portfolio Details:")
	for _, l := range d.report.Details() {
		d.line(l.Label + ": " + currency.Format(l.Amount))
	}
}

func (d *pdfReport) addRecommendations() {
	d.heading("Recommendations:")
	for _, f := range d.report.Findings {
		d.pdf.MultiCell(contentWidth, lineHeight, d.text("- "+f.Message), "", "L", false)
	}
}

func (d *pdfReport) addRisk() {
	d.heading("Risk Profile:")
	risk := d.report.Risk

	c := MarkerColor(risk.Marker)
	d.pdf.SetFillColor(c.R, c.G, c.B)
	d.pdf.Circle(marginLeft+2, d.pdf.GetY()+lineHeight/2, 1.8, "F")
	d.pdf.SetX(marginLeft + 6)
	d.pdf.SetFont("Arial", "B", 11)
	d.pdf.CellFormat(contentWidth-6, lineHeight, d.text(string(risk.Tier)), "", 1, "L", false, 0, "")
	d.pdf.SetFont("Arial", "", 11)
	d.pdf.MultiCell(contentWidth, lineHeight, d.text(risk.Description), "", "L", false)
}

func (d *pdfReport) addFooter() {
	f := d.report.Firm
	d.pdf.Ln(8)
	d.pdf.SetFont("Arial", "", 10)
	d.pdf.SetTextColor(80, 80, 80)
	d.line(fmt.Sprintf("Report prepared by: %s | %s", f.Advisor, f.Name))
	d.line(fmt.Sprintf("Contact: %s | Email: %s | Website: %s", f.Phone, f.Email, f.Website))

	d.pdf.Ln(4)
	d.pdf.SetFont("Arial", "I", 8)
	for _, l := range report.Disclaimer {
		d.pdf.MultiCell(contentWidth, 4, d.text(l), "", "L", false)
	}
}
