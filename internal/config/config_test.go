package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadWithDefaults(t *testing.T) {
	cfg, err := Load(WithEnvMap(map[string]string{}), WithoutSystemEnv(), WithEnvFile(""))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Server.Addr != ":8080" {
		t.Errorf("expected default addr :8080, got %s", cfg.Server.Addr)
	}
	if cfg.Server.ReadTimeout != 15*time.Second {
		t.Errorf("unexpected read timeout: %s", cfg.Server.ReadTimeout)
	}
	if cfg.Server.Environment != "local" {
		t.Errorf("expected local environment, got %s", cfg.Server.Environment)
	}
	if cfg.Site.DefaultLocale != "en" {
		t.Errorf("expected default locale en, got %s", cfg.Site.DefaultLocale)
	}
	if !cfg.Metrics.Enabled {
		t.Errorf("expected metrics enabled by default")
	}
	if cfg.Production() {
		t.Errorf("local config must not report production")
	}
}

func TestLoadHonoursPortAndOverrides(t *testing.T) {
	env := map[string]string{
		"PORT":                    "9090",
		"LMS_WEB_ENV":             "PROD",
		"LMS_WEB_DEV":             "yes",
		"LMS_WEB_WRITE_TIMEOUT":   "45s",
		"LMS_WEB_BASE_URL":        "https://lms.example.com/",
		"LMS_WEB_METRICS_ENABLED": "off",
	}
	cfg, err := Load(WithEnvMap(env), WithoutSystemEnv(), WithEnvFile(""))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Server.Addr != ":9090" {
		t.Errorf("expected addr from PORT, got %s", cfg.Server.Addr)
	}
	if !cfg.Production() {
		t.Errorf("expected production environment")
	}
	if !cfg.Server.DevMode {
		t.Errorf("expected dev mode enabled")
	}
	if cfg.Server.WriteTimeout != 45*time.Second {
		t.Errorf("unexpected write timeout: %s", cfg.Server.WriteTimeout)
	}
	if cfg.Site.BaseURL != "https://lms.example.com" {
		t.Errorf("expected trailing slash trimmed, got %s", cfg.Site.BaseURL)
	}
	if cfg.Metrics.Enabled {
		t.Errorf("expected metrics disabled")
	}
}

func TestLoadReportsInvalidFields(t *testing.T) {
	env := map[string]string{
		"LMS_WEB_READ_TIMEOUT":   "soon",
		"LMS_WEB_DEV":            "maybe",
		"LMS_WEB_DEFAULT_LOCALE": "fr",
	}
	_, err := Load(WithEnvMap(env), WithoutSystemEnv(), WithEnvFile(""))
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	fields := verr.Fields()
	want := map[string]bool{"LMS_WEB_READ_TIMEOUT": true, "LMS_WEB_DEV": true, "Site.DefaultLocale": true}
	if len(fields) != len(want) {
		t.Fatalf("expected %d invalid fields, got %v", len(want), fields)
	}
	for _, f := range fields {
		if !want[f] {
			t.Errorf("unexpected invalid field %s", f)
		}
	}
}

func TestLoadReadsDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	content := "# local overrides\nexport LMS_WEB_ADDR=\"127.0.0.1:3000\"\nLMS_WEB_GA_MEASUREMENT_ID=G-TEST\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}

	cfg, err := Load(WithEnvFile(path), WithoutSystemEnv(), WithEnvMap(map[string]string{
		"LMS_WEB_GA_MEASUREMENT_ID": "G-OVERRIDE",
	}))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Server.Addr != "127.0.0.1:3000" {
		t.Errorf("expected addr from .env, got %s", cfg.Server.Addr)
	}
	if cfg.Analytics.GA4MeasurementID != "G-OVERRIDE" {
		t.Errorf("expected env map to win over .env, got %s", cfg.Analytics.GA4MeasurementID)
	}
}
