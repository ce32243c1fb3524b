package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"wealthcheck/internal/client"
	"wealthcheck/internal/config"
	"wealthcheck/internal/models"
	"wealthcheck/internal/render"
	"wealthcheck/internal/report"
	"wealthcheck/internal/services"
)

// envPrefix scopes environment overrides, e.g. WEALTHCHECK_ANNUAL_INCOME.
const envPrefix = "WEALTHCHECK"

// inputFlag ties a CLI flag to the input key used in profiles and the environment.
type inputFlag struct {
	flag  string
	key   string
	usage string
}

var amountFlags = []inputFlag{
	{"income", "annual_income", "annual income"},
	{"stocks", "direct_stocks", "direct stocks"},
	{"mutual-funds", "mutual_funds", "mutual funds"},
	{"fixed-deposits", "fixed_deposits", "fixed deposits"},
	{"provident-fund", "provident_fund", "PPF/EPF balance"},
	{"bonds", "bonds", "bonds"},
	{"real-estate", "real_estate", "real estate"},
	{"gold", "gold", "gold"},
	{"cash", "cash_savings", "cash and savings"},
	{"life-cover", "life_insurance_cover", "life insurance cover"},
	{"health-cover", "health_insurance_cover", "health insurance cover"},
}

func analyzeCmd() *cobra.Command {
	var (
		profile   string
		pdfPath   string
		jsonOut   bool
		plain     bool
		serverURL string
		timeout   time.Duration
	)
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Run a wealth health check",
		Long: `Run the allocation and advisory analysis for one client and print the report.

Values come from flags, WEALTHCHECK_* environment variables or a profile file
(YAML, JSON or TOML), in that order of precedence. All amounts are in lakh.`,
		Example: `  wealthcheck analyze --name "Asha Rao" --age 30 --income 12 --stocks 30 --mutual-funds 25
  wealthcheck analyze --profile asha.yaml --pdf reports/
  wealthcheck analyze --profile asha.yaml --server http://localhost:8080 --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in, err := loadInput(v, profile)
			if err != nil {
				return err
			}

			var (
				r      *models.Report
				remote *client.Client
			)
			if serverURL != "" {
				remote = client.New(serverURL, &http.Client{Timeout: timeout})
				r, err = remote.Analyze(cmd.Context(), in)
			} else {
				r, err = services.NewAnalysisService(config.FromEnv().Firm).Analyze(in)
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch {
			case jsonOut:
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				if err := enc.Encode(r); err != nil {
					return fmt.Errorf("encoding report: %w", err)
				}
			case plain:
				fmt.Fprint(out, render.Text(*r))
			default:
				fmt.Fprint(out, render.Terminal(*r))
			}

			if pdfPath == "" {
				return nil
			}
			var doc []byte
			if remote != nil {
				doc, err = remote.DownloadPDF(cmd.Context(), in)
			} else {
				doc, err = render.PDF(*r)
			}
			if err != nil {
				return err
			}
			path := pdfTarget(pdfPath, r.Client.Name)
			if err := os.WriteFile(path, doc, 0o644); err != nil {
				return fmt.Errorf("writing pdf: %w", err)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "PDF report written to %s\n", path)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&profile, "profile", "", "client profile file (yaml, json or toml)")
	flags.StringVar(&pdfPath, "pdf", "", "write the PDF report to this file or directory")
	flags.BoolVar(&jsonOut, "json", false, "print the report as JSON")
	flags.BoolVar(&plain, "plain", false, "print the report without colours")
	flags.StringVar(&serverURL, "server", "", "analyse through a running wealthcheck server at this URL")
	flags.DurationVar(&timeout, "timeout", 30*time.Second, "request timeout when using --server")
	cmd.MarkFlagsMutuallyExclusive("json", "plain")

	flags.String("name", "", "client name")
	flags.Int("age", 0, fmt.Sprintf("client age (%d-%d)", models.MinAge, models.MaxAge))
	_ = v.BindPFlag("client_name", flags.Lookup("name"))
	_ = v.BindPFlag("age", flags.Lookup("age"))
	for _, f := range amountFlags {
		flags.Float64(f.flag, 0, f.usage+" in lakh")
		_ = v.BindPFlag(f.key, flags.Lookup(f.flag))
	}

	return cmd
}

// loadInput merges the profile, environment and flags into a PortfolioInput.
func loadInput(v *viper.Viper, profile string) (models.PortfolioInput, error) {
	var in models.PortfolioInput

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if profile != "" {
		v.SetConfigFile(profile)
		if err := v.ReadInConfig(); err != nil {
			return in, fmt.Errorf("failed to read profile: %w", err)
		}
	}

	if err := v.Unmarshal(&in); err != nil {
		return in, fmt.Errorf("failed to decode input: %w", err)
	}
	return in, nil
}

// pdfTarget resolves --pdf: an existing directory or a trailing separator gets
// the default report name appended.
func pdfTarget(path, clientName string) string {
	if strings.HasSuffix(path, string(os.PathSeparator)) {
		return filepath.Join(path, report.Filename(clientName))
	}
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return filepath.Join(path, report.Filename(clientName))
	}
	return path
}
