package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-markerpdf/internal/fileutil"
	"github.com/alnah/go-markerpdf/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrFieldRange      = errors.New("field out of range")
)

// AppDir is the directory name under the user config directory.
const AppDir = "go-markerpdf"

// Field limits.
const (
	MaxNameLength  = 32   // paper size, layout, renderer, merger
	MaxPathLength  = 4096 // template, assetPath, workDir
	MaxPixels      = 20000
	MaxWorkers     = 64
	MaxTimeoutSpec = 32
)

// Config holds defaults for marker generation. Zero values mean "use the
// built-in default".
type Config struct {
	Marker  MarkerConfig `yaml:"marker"`
	Page    PageConfig   `yaml:"page"`
	Render  RenderConfig `yaml:"render"`
	Output  OutputConfig `yaml:"output"`
	Workers int          `yaml:"workers"` // 0 = auto
}

// MarkerConfig defines the encoded marker and its printed size.
type MarkerConfig struct {
	Dictionary *int    `yaml:"dictionary"` // predefined dictionary index (default 8)
	Pixels     int     `yaml:"pixels"`     // bitmap side in pixels (default 2000)
	Length     float64 `yaml:"length"`     // printed marker side in mm (default 120)
	Border     float64 `yaml:"border"`     // guide square side in mm (default 160)
	Gap        float64 `yaml:"gap"`        // distance between paired squares in mm (default 50)
}

// PageConfig defines paper and layout.
type PageConfig struct {
	Size   string `yaml:"size"`   // "letter", "a4", "a3" (default: "a3")
	Layout string `yaml:"layout"` // "single", "double" (default: "double")
}

// RenderConfig selects the backends.
type RenderConfig struct {
	Renderer  string `yaml:"renderer"`  // "cairosvg", "rsvg-convert", "chrome"
	Merger    string `yaml:"merger"`    // "pdfunite", "pdfcpu"
	Template  string `yaml:"template"`  // "builtin", set name, or directory
	AssetPath string `yaml:"assetPath"` // custom template sets root
	Timeout   string `yaml:"timeout"`   // Go duration, e.g. "2m"
	Verify    *bool  `yaml:"verify"`    // page-count check of the output (default true)
}

// OutputConfig defines intermediate file handling.
type OutputConfig struct {
	WorkDir  string `yaml:"workDir"`  // empty = per-run temporary directory
	KeepTemp bool   `yaml:"keepTemp"` // keep the temporary directory
}

// Validate checks field lengths and numeric ranges.
// Called by LoadConfig, but available to callers that build a Config by hand.
func (c *Config) Validate() error {
	names := []struct{ field, value string }{
		{"page.size", c.Page.Size},
		{"page.layout", c.Page.Layout},
		{"render.renderer", c.Render.Renderer},
		{"render.merger", c.Render.Merger},
	}
	for _, n := range names {
		if err := validateFieldLength(n.field, n.value, MaxNameLength); err != nil {
			return err
		}
	}

	paths := []struct{ field, value string }{
		{"render.template", c.Render.Template},
		{"render.assetPath", c.Render.AssetPath},
		{"output.workDir", c.Output.WorkDir},
	}
	for _, p := range paths {
		if err := validateFieldLength(p.field, p.value, MaxPathLength); err != nil {
			return err
		}
	}
	if err := validateFieldLength("render.timeout", c.Render.Timeout, MaxTimeoutSpec); err != nil {
		return err
	}

	if c.Marker.Dictionary != nil && *c.Marker.Dictionary < 0 {
		return fmt.Errorf("%w: marker.dictionary must be >= 0, got %d", ErrFieldRange, *c.Marker.Dictionary)
	}
	if c.Marker.Pixels < 0 || c.Marker.Pixels > MaxPixels {
		return fmt.Errorf("%w: marker.pixels must be between 0 and %d, got %d", ErrFieldRange, MaxPixels, c.Marker.Pixels)
	}
	if c.Marker.Length < 0 || c.Marker.Border < 0 || c.Marker.Gap < 0 {
		return fmt.Errorf("%w: marker lengths must be >= 0", ErrFieldRange)
	}
	if c.Marker.Length > 0 && c.Marker.Border > 0 && c.Marker.Length > c.Marker.Border {
		return fmt.Errorf("%w: marker.length (%g) exceeds marker.border (%g)", ErrFieldRange, c.Marker.Length, c.Marker.Border)
	}
	if c.Workers < 0 || c.Workers > MaxWorkers {
		return fmt.Errorf("%w: workers must be between 0 and %d, got %d", ErrFieldRange, MaxWorkers, c.Workers)
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns an empty configuration; every field falls back to
// the built-in default.
func DefaultConfig() *Config {
	return &Config{}
}

// LoadConfig loads configuration from a file path or config name.
// A value containing a path separator is read as a file; otherwise it is
// searched as <name>.yaml / <name>.yml in the working directory, then in the
// user config directory. A missing file is an error.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		var err error
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	var cfg Config
	if err := yamlutil.DecodeFile(configPath, &cfg); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrConfigParse, configPath, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// SearchPaths lists the candidate files for a config name, in search order.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, AppDir, name+ext))
		}
	}
	return paths
}

// resolveConfigPath returns the first existing candidate from SearchPaths.
func resolveConfigPath(name string) (string, error) {
	tried := SearchPaths(name)
	for _, p := range tried {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(tried, ", "))
}
