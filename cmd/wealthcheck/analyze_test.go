package main

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wealthcheck/internal/logger"
	"wealthcheck/internal/models"
	"wealthcheck/internal/report"
	"wealthcheck/internal/server"
	"wealthcheck/internal/services"
	"wealthcheck/internal/testutil"
)

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
}

var sampleArgs = []string{
	"analyze", "--name", "Asha Rao", "--age", "30", "--income", "12",
	"--stocks", "30", "--mutual-funds", "25", "--fixed-deposits", "12", "--provident-fund", "5",
	"--bonds", "3", "--real-estate", "17", "--gold", "5", "--cash", "3",
	"--life-cover", "50", "--health-cover", "8",
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestAnalyzeCmd(t *testing.T) {
	tests := []struct {
		outputCheck   func(t *testing.T, output string)
		name          string
		errorContains string
		args          []string
		wantErr       bool
	}{
		{
			name: "flags produce a terminal report",
			args: sampleArgs,
			outputCheck: func(t *testing.T, output string) {
				t.Helper()
				assert.Contains(t, output, report.Title)
				assert.Contains(t, output, "Asha Rao")
				assert.Contains(t, output, "Moderate")
			},
		},
		{
			name: "plain output",
			args: append(append([]string{}, sampleArgs...), "--plain"),
			outputCheck: func(t *testing.T, output string) {
				t.Helper()
				assert.Contains(t, output, "Analysis Report for Asha Rao")
				assert.Contains(t, output, "Equity & MF:")
			},
		},
		{
			name:          "missing name",
			args:          []string{"analyze", "--age", "30", "--stocks", "10"},
			wantErr:       true,
			errorContains: "Please enter Client Name.",
		},
		{
			name:          "age out of range",
			args:          []string{"analyze", "--name", "X", "--age", "17", "--stocks", "10"},
			wantErr:       true,
			errorContains: "Age must be at least 18",
		},
		{
			name:          "empty portfolio",
			args:          []string{"analyze", "--name", "X", "--age", "40", "--income", "5"},
			wantErr:       true,
			errorContains: "greater than zero",
		},
		{
			name:          "missing profile",
			args:          []string{"analyze", "--profile", "does-not-exist.yaml"},
			wantErr:       true,
			errorContains: "failed to read profile",
		},
		{
			name:          "json and plain are exclusive",
			args:          append(append([]string{}, sampleArgs...), "--json", "--plain"),
			wantErr:       true,
			errorContains: "none of the others can be",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := execute(t, tt.args...)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorContains)
				return
			}
			require.NoError(t, err)
			if tt.outputCheck != nil {
				tt.outputCheck(t, out)
			}
		})
	}
}

func TestAnalyzeCmd_JSON(t *testing.T) {
	out, _, err := execute(t, append(append([]string{}, sampleArgs...), "--json")...)
	require.NoError(t, err)

	var r models.Report
	require.NoError(t, json.Unmarshal([]byte(out), &r))
	assert.Equal(t, "Asha Rao", r.Client.Name)
	assert.Equal(t, models.RiskModerate, r.Risk.Tier)
	assert.Len(t, r.Findings, 4)
}

func TestAnalyzeCmd_Profile(t *testing.T) {
	dir := t.TempDir()
	profile := filepath.Join(dir, "client.yaml")
	require.NoError(t, os.WriteFile(profile, []byte(`
client_name: Ravi Kumar
age: 35
annual_income: 10
direct_stocks: 40
mutual_funds: 25
fixed_deposits: 10
provident_fund: 10
real_estate: 5
gold: 5
cash_savings: 5
life_insurance_cover: 120
health_insurance_cover: 10
`), 0o600))

	t.Run("profile values", func(t *testing.T) {
		out, _, err := execute(t, "analyze", "--profile", profile, "--json")
		require.NoError(t, err)

		var r models.Report
		require.NoError(t, json.Unmarshal([]byte(out), &r))
		assert.Equal(t, "Ravi Kumar", r.Client.Name)
		assert.Equal(t, models.RiskModerateAggressive, r.Risk.Tier)
	})

	t.Run("environment overrides profile", func(t *testing.T) {
		t.Setenv("WEALTHCHECK_AGE", "60")
		out, _, err := execute(t, "analyze", "--profile", profile, "--json")
		require.NoError(t, err)

		var r models.Report
		require.NoError(t, json.Unmarshal([]byte(out), &r))
		assert.Equal(t, 60, r.Client.Age)
	})

	t.Run("flags override environment", func(t *testing.T) {
		t.Setenv("WEALTHCHECK_AGE", "60")
		out, _, err := execute(t, "analyze", "--profile", profile, "--age", "50", "--json")
		require.NoError(t, err)

		var r models.Report
		require.NoError(t, json.Unmarshal([]byte(out), &r))
		assert.Equal(t, 50, r.Client.Age)
	})
}

func TestAnalyzeCmd_PDF(t *testing.T) {
	dir := t.TempDir()

	_, stderr, err := execute(t, append(append([]string{}, sampleArgs...), "--pdf", dir)...)
	require.NoError(t, err)

	path := filepath.Join(dir, "wealth_health_check_Asha_Rao.pdf")
	doc, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-", string(doc[:5]))
	assert.Contains(t, stderr, path)

	explicit := filepath.Join(dir, "custom.pdf")
	_, _, err = execute(t, append(append([]string{}, sampleArgs...), "--pdf", explicit)...)
	require.NoError(t, err)
	assert.FileExists(t, explicit)
}

func TestAnalyzeCmd_Server(t *testing.T) {
	svc := services.NewAnalysisService(report.DefaultFirm, services.WithClock(testutil.FixedClock))
	router, err := server.NewRouter(server.Deps{Analysis: svc, Firm: report.DefaultFirm})
	require.NoError(t, err)
	srv := httptest.NewServer(router)
	defer srv.Close()

	dir := t.TempDir()
	out, _, err := execute(t, append(append([]string{}, sampleArgs...), "--server", srv.URL, "--json", "--pdf", dir)...)
	require.NoError(t, err)

	var r models.Report
	require.NoError(t, json.Unmarshal([]byte(out), &r))
	assert.True(t, r.AnalyzedAt.Equal(testutil.FixedTime), "report should come from the server")
	assert.FileExists(t, filepath.Join(dir, "wealth_health_check_Asha_Rao.pdf"))

	in := append([]string{}, sampleArgs...)
	in[2] = " "
	_, _, err = execute(t, append(in, "--server", srv.URL)...)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Please enter Client Name.")
}
