package main

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/alnah/go-markerpdf/internal/config"
)

// envConfig holds configuration from environment variables.
// Provides CI-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string        // MARKERPDF_CONFIG: config name or path
	PaperSize  string        // MARKERPDF_PAPER_SIZE: letter, a4, a3
	Layout     string        // MARKERPDF_LAYOUT: single, double
	Dictionary *int          // MARKERPDF_DICTIONARY: dictionary index
	Renderer   string        // MARKERPDF_RENDERER: cairosvg, rsvg-convert, chrome
	Merger     string        // MARKERPDF_MERGER: pdfunite, pdfcpu
	Template   string        // MARKERPDF_TEMPLATE: builtin, set name, or directory
	AssetPath  string        // MARKERPDF_ASSET_PATH: custom template sets
	WorkDir    string        // MARKERPDF_WORK_DIR: intermediate files
	Timeout    time.Duration // MARKERPDF_TIMEOUT: overall timeout
	Workers    int           // MARKERPDF_WORKERS: bitmap workers
}

// knownEnvVars lists valid MARKERPDF_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"MARKERPDF_CONFIG":     true,
	"MARKERPDF_PAPER_SIZE": true,
	"MARKERPDF_LAYOUT":     true,
	"MARKERPDF_DICTIONARY": true,
	"MARKERPDF_RENDERER":   true,
	"MARKERPDF_MERGER":     true,
	"MARKERPDF_TEMPLATE":   true,
	"MARKERPDF_ASSET_PATH": true,
	"MARKERPDF_WORK_DIR":   true,
	"MARKERPDF_TIMEOUT":    true,
	"MARKERPDF_WORKERS":    true,
	"MARKERPDF_CONTAINER":  true,
}

// loadEnvConfig reads configuration from environment variables.
// Malformed numbers and durations are ignored.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		ConfigPath: os.Getenv("MARKERPDF_CONFIG"),
		PaperSize:  os.Getenv("MARKERPDF_PAPER_SIZE"),
		Layout:     os.Getenv("MARKERPDF_LAYOUT"),
		Renderer:   os.Getenv("MARKERPDF_RENDERER"),
		Merger:     os.Getenv("MARKERPDF_MERGER"),
		Template:   os.Getenv("MARKERPDF_TEMPLATE"),
		AssetPath:  os.Getenv("MARKERPDF_ASSET_PATH"),
		WorkDir:    os.Getenv("MARKERPDF_WORK_DIR"),
	}

	if timeout := os.Getenv("MARKERPDF_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil && d > 0 {
			cfg.Timeout = d
		}
	}
	if workers := os.Getenv("MARKERPDF_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}
	if dict := os.Getenv("MARKERPDF_DICTIONARY"); dict != "" {
		if d, err := strconv.Atoi(dict); err == nil && d >= 0 {
			cfg.Dictionary = &d
		}
	}

	return cfg
}

// warnUnknownEnvVars logs a warning for each unrecognized MARKERPDF_* variable.
func warnUnknownEnvVars(logger *slog.Logger) {
	for _, env := range os.Environ() {
		if !strings.HasPrefix(env, "MARKERPDF_") {
			continue
		}
		name, _, _ := strings.Cut(env, "=")
		if !knownEnvVars[name] {
			logger.Warn("unknown environment variable (typo?)", "name", name)
		}
	}
}

// applyEnvConfig applies environment variable values to config.
// Environment values override the config file; CLI flags are applied later
// by mergeFlags, so the order is: flags > env > config file > defaults.
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	setString(&cfg.Page.Size, env.PaperSize)
	setString(&cfg.Page.Layout, env.Layout)
	setString(&cfg.Render.Renderer, env.Renderer)
	setString(&cfg.Render.Merger, env.Merger)
	setString(&cfg.Render.Template, env.Template)
	setString(&cfg.Render.AssetPath, env.AssetPath)
	setString(&cfg.Output.WorkDir, env.WorkDir)

	if env.Timeout > 0 {
		cfg.Render.Timeout = env.Timeout.String()
	}
	if env.Workers > 0 {
		cfg.Workers = env.Workers
	}
	if env.Dictionary != nil {
		d := *env.Dictionary
		cfg.Marker.Dictionary = &d
	}
}

// setString overwrites dst when v is non-empty.
func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
