package handlers

import (
	"html/template"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"wealthcheck/internal/logger"
	"wealthcheck/internal/models"
	"wealthcheck/internal/render"
	"wealthcheck/internal/report"
	"wealthcheck/internal/services"
)

// defaultAge pre-fills the age field on an empty form.
const defaultAge = 30

// FormHandler serves the HTML input form and the rendered analysis.
type FormHandler struct {
	analysisService services.AnalysisServicer
	documents       DocumentObserver
	firm            models.Firm
}

// NewFormHandler creates a new FormHandler. documents may be nil.
func NewFormHandler(analysisService services.AnalysisServicer, documents DocumentObserver, firm models.Firm) *FormHandler {
	return &FormHandler{analysisService: analysisService, documents: documents, firm: firm}
}

type formField struct {
	Name  string
	Label string
	Type  string
	Value string
	Min   string
	Max   string
	Step  string
}

type formSection struct {
	Title  string
	Fields []formField
}

type pageData struct {
	Title      string
	Firm       models.Firm
	Sections   []formSection
	Error      string
	Report     *models.Report
	Chart      template.HTML
	Disclaimer []string
}

func amountField(name, label string, v float64) formField {
	return formField{Name: name, Label: label, Type: "number", Value: strconv.FormatFloat(v, 'f', -1, 64), Min: "0", Step: "0.01"}
}

func formSections(in models.PortfolioInput) []formSection {
	return []formSection{
		{
			Title: "Client Details",
			Fields: []formField{
				{Name: "client_name", Label: "Client Name", Type: "text", Value: in.ClientName},
				{Name: "age", Label: "Age", Type: "number", Value: strconv.Itoa(in.Age),
					Min: strconv.Itoa(models.MinAge), Max: strconv.Itoa(models.MaxAge), Step: "1"},
				amountField("annual_income", "Annual Income (in Lakhs)", in.AnnualIncome),
			},
		},
		{
			Title: "Investment Portfolio (in Lakhs)",
			Fields: []formField{
				amountField("direct_stocks", "Direct Stocks", in.DirectStocks),
				amountField("mutual_funds", "Mutual Funds", in.MutualFunds),
				amountField("fixed_deposits", "Fixed Deposits", in.FixedDeposits),
				amountField("provident_fund", "PPF/EPF", in.ProvidentFund),
				amountField("bonds", "Bonds", in.Bonds),
				amountField("real_estate", "Real Estate", in.RealEstate),
				amountField("gold", "Gold", in.Gold),
				amountField("cash_savings", "Cash & Savings", in.CashSavings),
			},
		},
		{
			Title: "Insurance Coverage (in Lakhs)",
			Fields: []formField{
				amountField("life_insurance_cover", "Life Insurance Cover", in.LifeInsuranceCover),
				amountField("health_insurance_cover", "Health Insurance Cover", in.HealthInsuranceCover),
			},
		},
	}
}

func (h *FormHandler) page(in models.PortfolioInput) pageData {
	return pageData{
		Title:      report.Title,
		Firm:       h.firm,
		Sections:   formSections(in),
		Disclaimer: report.Disclaimer,
	}
}

func (h *FormHandler) renderError(c *gin.Context, in models.PortfolioInput, err error) {
	appErr := asAppError(err)
	if appErr.Internal != nil {
		logger.Get().Errorw("form request failed",
			"code", appErr.Code,
			"internal", appErr.Internal.Error(),
			"path", c.Request.URL.Path,
		)
	}
	data := h.page(in)
	data.Error = appErr.Message
	c.HTML(appErr.StatusCode, "index.html", data)
}

// Index renders the empty input form.
func (h *FormHandler) Index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", h.page(models.PortfolioInput{Age: defaultAge}))
}

// Analyze handles a form submission and renders the report below the form.
func (h *FormHandler) Analyze(c *gin.Context) {
	in, err := bindInput(c, binding.Form)
	if err != nil {
		h.renderError(c, in, err)
		return
	}
	r, err := h.analysisService.Analyze(in)
	if err != nil {
		h.renderError(c, in, err)
		return
	}

	svg := render.SVG(*r)
	if h.documents != nil {
		h.documents.ObserveDocument("svg", len(svg))
	}

	data := h.page(in)
	data.Report = r
	data.Chart = template.HTML(svg) //nolint:gosec // labels escaped by render.SVG
	c.HTML(http.StatusOK, "index.html", data)
}

// DownloadPDF handles the report download button.
func (h *FormHandler) DownloadPDF(c *gin.Context) {
	in, err := bindInput(c, binding.Form)
	if err != nil {
		h.renderError(c, in, err)
		return
	}
	r, err := h.analysisService.Analyze(in)
	if err != nil {
		h.renderError(c, in, err)
		return
	}
	doc, err := render.PDF(*r)
	if err != nil {
		h.renderError(c, in, err)
		return
	}
	if h.documents != nil {
		h.documents.ObserveDocument("pdf", len(doc))
	}
	writePDF(c, r.Client.Name, doc)
}
