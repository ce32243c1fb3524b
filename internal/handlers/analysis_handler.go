package handlers

import (
	"mime"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	apperrors "wealthcheck/internal/errors"
	"wealthcheck/internal/models"
	"wealthcheck/internal/render"
	"wealthcheck/internal/report"
	"wealthcheck/internal/services"
)

// AnalysisHandler serves the JSON analysis API.
type AnalysisHandler struct {
	analysisService services.AnalysisServicer
	documents       DocumentObserver
}

// NewAnalysisHandler creates a new AnalysisHandler. documents may be nil.
func NewAnalysisHandler(analysisService services.AnalysisServicer, documents DocumentObserver) *AnalysisHandler {
	return &AnalysisHandler{analysisService: analysisService, documents: documents}
}

// AnalysisResponse wraps a report.
type AnalysisResponse struct {
	Report *models.Report `json:"report"`
}

func (h *AnalysisHandler) analyze(c *gin.Context) (*models.Report, bool) {
	in, err := bindInput(c, binding.JSON)
	if err != nil {
		respondWithError(c, err)
		return nil, false
	}
	r, err := h.analysisService.Analyze(in)
	if err != nil {
		respondWithError(c, err)
		return nil, false
	}
	return r, true
}

func (h *AnalysisHandler) observe(format string, size int) {
	if h.documents != nil {
		h.documents.ObserveDocument(format, size)
	}
}

// Analyze handles a wealth health check and returns the report as JSON.
// @Summary     Analyze portfolio
// @Description Run the allocation and advisory analysis for one client. Amounts are in lakh.
// @Tags        analysis
// @Accept      json
// @Produce     json
// @Param       request body models.PortfolioInput true "Client and portfolio"
// @Success     200 {object} AnalysisResponse "Analysis report"
// @Failure     400 {object} ErrorResponse "Missing client name or invalid input"
// @Failure     422 {object} ErrorResponse "Empty portfolio"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /analysis [post]
func (h *AnalysisHandler) Analyze(c *gin.Context) {
	r, ok := h.analyze(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, AnalysisResponse{Report: r})
}

// AnalyzePDF handles a wealth health check and returns the PDF report.
// @Summary     Analyze portfolio as PDF
// @Description Run the analysis and download the report as a PDF document
// @Tags        analysis
// @Accept      json
// @Produce     application/pdf
// @Param       request body models.PortfolioInput true "Client and portfolio"
// @Success     200 {file} file "PDF report"
// @Failure     400 {object} ErrorResponse "Missing client name or invalid input"
// @Failure     422 {object} ErrorResponse "Empty portfolio"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /analysis/pdf [post]
func (h *AnalysisHandler) AnalyzePDF(c *gin.Context) {
	r, ok := h.analyze(c)
	if !ok {
		return
	}
	doc, err := render.PDF(*r)
	if err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
		return
	}
	h.observe("pdf", len(doc))
	writePDF(c, r.Client.Name, doc)
}

// AnalyzeChart handles a wealth health check and returns the allocation donut.
// @Summary     Allocation chart
// @Description Run the analysis and return the asset allocation donut chart
// @Tags        analysis
// @Accept      json
// @Produce     image/svg+xml
// @Param       request body models.PortfolioInput true "Client and portfolio"
// @Success     200 {string} string "SVG document"
// @Failure     400 {object} ErrorResponse "Missing client name or invalid input"
// @Failure     422 {object} ErrorResponse "Empty portfolio"
// @Router      /analysis/chart.svg [post]
func (h *AnalysisHandler) AnalyzeChart(c *gin.Context) {
	r, ok := h.analyze(c)
	if !ok {
		return
	}
	svg := render.SVG(*r)
	h.observe("svg", len(svg))
	c.Data(http.StatusOK, "image/svg+xml", svg)
}

// AnalyzeText handles a wealth health check and returns a plain text report.
// @Summary     Text report
// @Description Run the analysis and return the report with allocation bars as plain text
// @Tags        analysis
// @Accept      json
// @Produce     plain
// @Param       request body models.PortfolioInput true "Client and portfolio"
// @Success     200 {string} string "Plain text report"
// @Failure     400 {object} ErrorResponse "Missing client name or invalid input"
// @Failure     422 {object} ErrorResponse "Empty portfolio"
// @Router      /analysis/text [post]
func (h *AnalysisHandler) AnalyzeText(c *gin.Context) {
	r, ok := h.analyze(c)
	if !ok {
		return
	}
	text := render.Text(*r)
	h.observe("text", len(text))
	c.String(http.StatusOK, text)
}

// writePDF sends doc as a download named after the client.
func writePDF(c *gin.Context, clientName string, doc []byte) {
	disposition := mime.FormatMediaType("attachment", map[string]string{"filename": report.Filename(clientName)})
	if disposition == "" {
		disposition = "attachment"
	}
	c.Header("Content-Disposition", disposition)
	c.Data(http.StatusOK, "application/pdf", doc)
}
