package config

import (
	"testing"

	"wealthcheck/internal/report"
)

func TestFromEnv_Defaults(t *testing.T) {
	for _, k := range []string{"PORT", "ENV", "FIRM_NAME", "FIRM_ADVISOR", "FIRM_PHONE", "FIRM_EMAIL", "FIRM_WEBSITE", "FIRM_LICENSE"} {
		t.Setenv(k, "")
	}

	cfg := FromEnv()

	if cfg.Port != "8080" {
		t.Errorf("expected default port 8080, got %s", cfg.Port)
	}
	if cfg.Env != "development" {
		t.Errorf("expected default env development, got %s", cfg.Env)
	}
	if cfg.Firm != report.DefaultFirm {
		t.Errorf("expected default firm, got %+v", cfg.Firm)
	}
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("FIRM_NAME", "Acme Advisors")
	t.Setenv("FIRM_LICENSE", "SEBI REG: INH000000123")

	cfg := FromEnv()

	if cfg.Port != "9090" {
		t.Errorf("expected port 9090, got %s", cfg.Port)
	}
	if cfg.Firm.Name != "Acme Advisors" {
		t.Errorf("expected firm name override, got %s", cfg.Firm.Name)
	}
	if cfg.Firm.License != "SEBI REG: INH000000123" {
		t.Errorf("expected license override, got %s", cfg.Firm.License)
	}
	if cfg.Firm.Advisor != report.DefaultFirm.Advisor {
		t.Errorf("expected default advisor, got %s", cfg.Firm.Advisor)
	}
}
