package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"wealthcheck/internal/logger"
	"wealthcheck/internal/metrics"
	"wealthcheck/internal/report"
	"wealthcheck/internal/services"
	"wealthcheck/internal/testutil"
)

// testApp holds the full application stack for router tests.
type testApp struct {
	Router  *gin.Engine
	Metrics *metrics.Recorder
}

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
}

func setupApp(t *testing.T) *testApp {
	t.Helper()

	rec := metrics.New()
	svc := services.NewAnalysisService(report.DefaultFirm,
		services.WithClock(testutil.FixedClock),
		services.WithObserver(rec),
	)
	router, err := NewRouter(Deps{Analysis: svc, Metrics: rec, Firm: report.DefaultFirm})
	if err != nil {
		t.Fatalf("failed to build router: %v", err)
	}
	return &testApp{Router: router, Metrics: rec}
}

func (a *testApp) request(method, path, contentType, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	rec := httptest.NewRecorder()
	a.Router.ServeHTTP(rec, req)
	return rec
}

func sampleBody(t *testing.T) string {
	t.Helper()
	b, err := json.Marshal(testutil.SampleInput())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return string(b)
}

func TestHealth(t *testing.T) {
	app := setupApp(t)

	rec := app.request("GET", "/api/health", "", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"ok"`) {
		t.Errorf("unexpected body: %s", rec.Body.String())
	}
	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("expected X-Request-ID header")
	}
}

func TestAnalysisFlow(t *testing.T) {
	app := setupApp(t)

	rec := app.request("POST", "/api/v1/analysis", "application/json", sampleBody(t))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Report struct {
			AnalyzedAt string `json:"analyzed_at"`
			Allocation struct {
				Shares []struct {
					Bucket  string  `json:"bucket"`
					Percent float64 `json:"percent"`
				} `json:"shares"`
			} `json:"allocation"`
			Findings []struct {
				Rule     string `json:"rule"`
				Severity string `json:"severity"`
			} `json:"findings"`
		} `json:"report"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Report.AnalyzedAt != "2026-03-05T10:30:00Z" {
		t.Errorf("unexpected analysis time %s", resp.Report.AnalyzedAt)
	}
	sum := 0.0
	for _, s := range resp.Report.Allocation.Shares {
		sum += s.Percent
	}
	if sum < 99.999999 || sum > 100.000001 {
		t.Errorf("expected percentages to sum to 100, got %v", sum)
	}
	want := []string{"equity_allocation", "emergency_fund", "life_insurance", "health_insurance"}
	for i, f := range resp.Report.Findings {
		if f.Rule != want[i] {
			t.Errorf("finding %d: expected %s, got %s", i, want[i], f.Rule)
		}
	}

	pdf := app.request("POST", "/api/v1/analysis/pdf", "application/json", sampleBody(t))
	if pdf.Code != http.StatusOK || !strings.HasPrefix(pdf.Body.String(), "%PDF-") {
		t.Fatalf("expected PDF, got %d", pdf.Code)
	}

	empty, _ := json.Marshal(testutil.EmptyPortfolioInput())
	rej := app.request("POST", "/api/v1/analysis", "application/json", string(empty))
	if rej.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rej.Code)
	}
}

func TestFormFlow(t *testing.T) {
	app := setupApp(t)

	page := app.request("GET", "/", "", "")
	if page.Code != http.StatusOK || !strings.Contains(page.Body.String(), "Analyze Portfolio") {
		t.Fatalf("expected form page, got %d", page.Code)
	}

	form := url.Values{
		"client_name":   {"Meera Shah"},
		"age":           {"45"},
		"direct_stocks": {"10"},
		"cash_savings":  {"2"},
	}
	rec := app.request("POST", "/analyze", "application/x-www-form-urlencoded", form.Encode())
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "Analysis Report for Meera Shah") {
		t.Error("expected report for Meera Shah")
	}

	pdf := app.request("POST", "/report.pdf", "application/x-www-form-urlencoded", form.Encode())
	if pdf.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", pdf.Code)
	}
	if cd := pdf.Header().Get("Content-Disposition"); !strings.Contains(cd, "wealth_health_check_Meera_Shah.pdf") {
		t.Errorf("unexpected Content-Disposition %q", cd)
	}
}

func TestNotFound(t *testing.T) {
	app := setupApp(t)

	rec := app.request("GET", "/api/v1/nothing", "", "")

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "NOT_FOUND") {
		t.Errorf("expected NOT_FOUND error, got %s", rec.Body.String())
	}
}

func TestSwagger(t *testing.T) {
	app := setupApp(t)

	rec := app.request("GET", "/swagger/doc.json", "", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "/analysis/pdf") {
		t.Error("expected analysis routes in swagger document")
	}
}

func TestMetrics(t *testing.T) {
	app := setupApp(t)

	app.request("POST", "/api/v1/analysis", "application/json", sampleBody(t))
	app.request("POST", "/api/v1/analysis/chart.svg", "application/json", sampleBody(t))
	app.request("POST", "/api/v1/analysis", "application/json", `{"client_name":""}`)

	rec := app.request("GET", "/metrics", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	for _, want := range []string{
		`wealthcheck_analyses_total{risk_tier="Moderate"} 2`,
		`wealthcheck_rejections_total{code="CLIENT_NAME_REQUIRED"} 1`,
		`wealthcheck_document_bytes_count{format="svg"} 1`,
		`wealthcheck_http_requests_total{method="POST",route="/api/v1/analysis",status="200"} 1`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("expected metrics to contain %q", want)
		}
	}
}
