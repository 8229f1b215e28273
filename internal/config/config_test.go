package config

import (
	"testing"
	"time"
)

func TestConfig_Defaults(t *testing.T) {
	for _, key := range []string{
		"HTTP_PORT", "HTTP_REQUEST_TIMEOUT_SECONDS", "HTTP_SHUTDOWN_TIMEOUT_SECONDS",
		"LOG_LEVEL", "LOG_FILE", "TEMPLATES_DIR", "TEMPLATES_RELOAD",
		"CHART_STYLE_FILE", "CHART_NOSCRIPT_FALLBACK",
	} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.HTTPPort != 8000 {
		t.Errorf("HTTPPort = %d, want 8000", cfg.HTTPPort)
	}
	if cfg.RequestTimeout != 30*time.Second {
		t.Errorf("RequestTimeout = %v, want 30s", cfg.RequestTimeout)
	}
	if cfg.ShutdownTimeout != 10*time.Second {
		t.Errorf("ShutdownTimeout = %v, want 10s", cfg.ShutdownTimeout)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "info")
	}
	if cfg.TemplatesDir != "" || cfg.TemplatesReload {
		t.Errorf("templates = (%q, %v), want embedded without reload", cfg.TemplatesDir, cfg.TemplatesReload)
	}
	if !cfg.NoscriptFallback {
		t.Error("NoscriptFallback = false, want true")
	}
}

func TestConfig_FromEnv(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("HTTP_REQUEST_TIMEOUT_SECONDS", "5")
	t.Setenv("TEMPLATES_DIR", "/srv/templates")
	t.Setenv("TEMPLATES_RELOAD", "true")
	t.Setenv("CHART_STYLE_FILE", "/etc/chartpage/style.yml")
	t.Setenv("CHART_NOSCRIPT_FALLBACK", "false")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.HTTPPort != 9090 {
		t.Errorf("HTTPPort = %d, want 9090", cfg.HTTPPort)
	}
	if cfg.RequestTimeout != 5*time.Second {
		t.Errorf("RequestTimeout = %v, want 5s", cfg.RequestTimeout)
	}
	if cfg.TemplatesDir != "/srv/templates" || !cfg.TemplatesReload {
		t.Errorf("templates = (%q, %v), want (/srv/templates, true)", cfg.TemplatesDir, cfg.TemplatesReload)
	}
	if cfg.ChartStyleFile != "/etc/chartpage/style.yml" {
		t.Errorf("ChartStyleFile = %q", cfg.ChartStyleFile)
	}
	if cfg.NoscriptFallback {
		t.Error("NoscriptFallback = true, want false")
	}
}

func TestConfig_MalformedValuesUseDefaults(t *testing.T) {
	t.Setenv("HTTP_PORT", "eighty")
	t.Setenv("CHART_NOSCRIPT_FALLBACK", "maybe")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.HTTPPort != 8000 {
		t.Errorf("HTTPPort = %d, want 8000", cfg.HTTPPort)
	}
	if !cfg.NoscriptFallback {
		t.Error("NoscriptFallback = false, want true")
	}
}
