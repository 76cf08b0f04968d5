package main

// Notes:
// - These tests use t.Setenv, which forbids t.Parallel.

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/alnah/go-markerpdf/internal/config"
)

func TestLoadEnvConfig(t *testing.T) {
	t.Setenv("MARKERPDF_CONFIG", "lab")
	t.Setenv("MARKERPDF_PAPER_SIZE", "letter")
	t.Setenv("MARKERPDF_LAYOUT", "single")
	t.Setenv("MARKERPDF_DICTIONARY", "16")
	t.Setenv("MARKERPDF_RENDERER", "chrome")
	t.Setenv("MARKERPDF_MERGER", "pdfcpu")
	t.Setenv("MARKERPDF_TIMEOUT", "90s")
	t.Setenv("MARKERPDF_WORKERS", "4")
	t.Setenv("MARKERPDF_WORK_DIR", "/tmp/markers")

	env := loadEnvConfig()

	if env.ConfigPath != "lab" || env.PaperSize != "letter" || env.Layout != "single" {
		t.Errorf("string values = %+v", env)
	}
	if env.Renderer != "chrome" || env.Merger != "pdfcpu" || env.WorkDir != "/tmp/markers" {
		t.Errorf("backend values = %+v", env)
	}
	if env.Dictionary == nil || *env.Dictionary != 16 {
		t.Errorf("dictionary = %v, want 16", env.Dictionary)
	}
	if env.Timeout != 90*time.Second {
		t.Errorf("timeout = %v, want 90s", env.Timeout)
	}
	if env.Workers != 4 {
		t.Errorf("workers = %d, want 4", env.Workers)
	}
}

func TestLoadEnvConfig_IgnoresMalformed(t *testing.T) {
	t.Setenv("MARKERPDF_TIMEOUT", "forever")
	t.Setenv("MARKERPDF_WORKERS", "-2")
	t.Setenv("MARKERPDF_DICTIONARY", "six")

	env := loadEnvConfig()

	if env.Timeout != 0 {
		t.Errorf("timeout = %v, want 0", env.Timeout)
	}
	if env.Workers != 0 {
		t.Errorf("workers = %d, want 0", env.Workers)
	}
	if env.Dictionary != nil {
		t.Errorf("dictionary = %d, want nil", *env.Dictionary)
	}
}

func TestApplyEnvConfig(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultConfig()
	cfg.Page.Size = "a4"
	cfg.Page.Layout = "double"
	cfg.Workers = 2

	dict := 3
	applyEnvConfig(&envConfig{
		PaperSize:  "letter",
		Dictionary: &dict,
		Timeout:    time.Minute,
	}, cfg)

	if cfg.Page.Size != "letter" {
		t.Errorf("size = %q, env should override config", cfg.Page.Size)
	}
	if cfg.Page.Layout != "double" {
		t.Errorf("layout = %q, unset env should keep config", cfg.Page.Layout)
	}
	if cfg.Workers != 2 {
		t.Errorf("workers = %d, unset env should keep config", cfg.Workers)
	}
	if cfg.Marker.Dictionary == nil || *cfg.Marker.Dictionary != 3 {
		t.Errorf("dictionary = %v, want 3", cfg.Marker.Dictionary)
	}
	if cfg.Render.Timeout != "1m0s" {
		t.Errorf("timeout = %q, want 1m0s", cfg.Render.Timeout)
	}
}

func TestWarnUnknownEnvVars(t *testing.T) {
	t.Setenv("MARKERPDF_LAYOT", "single")
	t.Setenv("MARKERPDF_LAYOUT", "single")

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	warnUnknownEnvVars(logger)

	out := buf.String()
	if !strings.Contains(out, "MARKERPDF_LAYOT") {
		t.Errorf("missing warning for typo: %q", out)
	}
	if strings.Contains(out, "name=MARKERPDF_LAYOUT") {
		t.Errorf("known variable reported: %q", out)
	}
}
