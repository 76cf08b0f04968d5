package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	markerpdf "github.com/alnah/go-markerpdf"
	"github.com/alnah/go-markerpdf/internal/aruco"
	"github.com/alnah/go-markerpdf/internal/config"
)

// settings is the fully resolved run configuration.
type settings struct {
	job       markerpdf.Job
	geometry  markerpdf.Geometry
	pixels    int
	workers   int
	timeout   time.Duration
	verify    bool
	workDir   string
	keepTemp  bool
	renderer  string
	merger    string
	template  string
	assetPath string
}

// runGenerate loads configuration, checks the host, and writes the PDF.
func runGenerate(ctx context.Context, flags *generateFlags, positional []string, logger *slog.Logger, env *Environment) error {
	pos, err := parsePositionals(positional)
	if err != nil {
		return err
	}

	envCfg := loadEnvConfig()
	cfg, err := loadConfig(flags.common.config, envCfg.ConfigPath)
	if err != nil {
		return err
	}
	applyEnvConfig(envCfg, cfg)
	mergeFlags(flags, cfg)

	s, err := resolveSettings(cfg, pos)
	if err != nil {
		return err
	}

	// The templater is resolved first, so a bad --template is a usage error
	// even when host tools are missing.
	templater, err := markerpdf.NewTemplater(s.template, s.assetPath)
	if err != nil {
		return err
	}

	renderer, err := markerpdf.NewRenderer(s.renderer, env.Runner)
	if err != nil {
		return err
	}
	merger, err := markerpdf.NewMerger(s.merger, env.Runner)
	if err != nil {
		return err
	}

	// Host tools are checked before any bitmap exists.
	if err := markerpdf.Preflight(env.LookPath, markerpdf.Requirements(renderer, merger)...); err != nil {
		return err
	}

	gen, err := markerpdf.New(
		markerpdf.WithEncoder(env.Encoder),
		markerpdf.WithTemplater(templater),
		markerpdf.WithRenderer(renderer),
		markerpdf.WithMerger(merger),
		markerpdf.WithGeometry(s.geometry),
		markerpdf.WithMarkerPixels(s.pixels),
		markerpdf.WithWorkers(s.workers),
		markerpdf.WithTimeout(s.timeout),
		markerpdf.WithVerify(s.verify),
		markerpdf.WithWorkDir(s.workDir),
		markerpdf.WithKeepTemp(s.keepTemp),
		markerpdf.WithLogger(logger),
	)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := gen.Close(); cerr != nil {
			logger.Warn("closing renderer", "error", cerr)
		}
	}()

	logger.Debug("generating",
		"range", s.job.Range.String(),
		"dictionary", s.job.Dictionary,
		"paper", s.job.Paper.Name,
		"layout", string(s.job.Layout),
		"renderer", renderer.Name(),
		"merger", merger.Name(),
		"template", templater.Name(),
		"workers", markerpdf.ResolveWorkers(s.workers))

	result, err := gen.Generate(ctx, s.job)
	if err != nil {
		return err
	}

	if !flags.common.quiet {
		fmt.Fprintf(env.Stdout, "Created %s (%d %s)\n", result.Output, result.Pages, plural(result.Pages, "page"))
	}
	logger.Debug("done", "markers", result.Markers, "duration", result.Duration.Round(time.Millisecond))
	return nil
}

// loadConfig loads the config named by the flag, or by MARKERPDF_CONFIG.
func loadConfig(flagValue, envValue string) (*config.Config, error) {
	name := flagValue
	if name == "" {
		name = envValue
	}
	if name == "" {
		return config.DefaultConfig(), nil
	}
	cfg, err := config.LoadConfig(name)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// mergeFlags copies explicitly set CLI flags into cfg (CLI wins).
func mergeFlags(flags *generateFlags, cfg *config.Config) {
	setString(&cfg.Page.Size, flags.page.size)
	setString(&cfg.Page.Layout, flags.page.layout)
	setString(&cfg.Render.Renderer, flags.backend.renderer)
	setString(&cfg.Render.Merger, flags.backend.merger)
	setString(&cfg.Render.Template, flags.backend.template)
	setString(&cfg.Render.AssetPath, flags.backend.assetPath)
	setString(&cfg.Render.Timeout, flags.run.timeout)
	setString(&cfg.Output.WorkDir, flags.run.workDir)

	if flags.marker.pixels > 0 {
		cfg.Marker.Pixels = flags.marker.pixels
	}
	if flags.marker.markerLength > 0 {
		cfg.Marker.Length = flags.marker.markerLength
	}
	if flags.marker.borderLength > 0 {
		cfg.Marker.Border = flags.marker.borderLength
	}
	if flags.marker.gap > 0 {
		cfg.Marker.Gap = flags.marker.gap
	}
	if flags.run.workers != 0 {
		cfg.Workers = flags.run.workers
	}
	if flags.run.keepTemp {
		cfg.Output.KeepTemp = true
	}
	if flags.run.noVerify {
		off := false
		cfg.Render.Verify = &off
	}
}

// resolveSettings applies defaults and validates every value.
func resolveSettings(cfg *config.Config, pos *positionalArgs) (*settings, error) {
	if cfg.Workers < 0 {
		return nil, fmt.Errorf("%w: workers must be >= 0, got %d", ErrUsage, cfg.Workers)
	}

	paperName := cfg.Page.Size
	if paperName == "" {
		paperName = markerpdf.DefaultPaperSize
	}
	paper, err := markerpdf.ParsePaperSize(paperName)
	if err != nil {
		return nil, err
	}

	layout := markerpdf.DefaultLayout
	if cfg.Page.Layout != "" {
		if layout, err = markerpdf.ParseLayout(cfg.Page.Layout); err != nil {
			return nil, err
		}
	}

	dictionary := markerpdf.DefaultDictionary
	switch {
	case pos.dictionary != nil:
		dictionary = *pos.dictionary
	case cfg.Marker.Dictionary != nil:
		dictionary = *cfg.Marker.Dictionary
	}
	if err := aruco.Validate(dictionary, pos.rng.Start, pos.rng.End); err != nil {
		return nil, fmt.Errorf("%w: %w", markerpdf.ErrMarkerEncode, err)
	}

	geometry := markerpdf.DefaultGeometry()
	if cfg.Marker.Length > 0 {
		geometry.MarkerLength = cfg.Marker.Length
	}
	if cfg.Marker.Border > 0 {
		geometry.BorderLength = cfg.Marker.Border
	}
	if cfg.Marker.Gap > 0 {
		geometry.Gap = cfg.Marker.Gap
	}
	if err := geometry.Validate(); err != nil {
		return nil, err
	}

	var timeout time.Duration
	if cfg.Render.Timeout != "" {
		timeout, err = time.ParseDuration(cfg.Render.Timeout)
		if err != nil || timeout <= 0 {
			return nil, fmt.Errorf("%w: invalid timeout %q (e.g., 30s, 2m)", ErrUsage, cfg.Render.Timeout)
		}
	}

	verify := true
	if cfg.Render.Verify != nil {
		verify = *cfg.Render.Verify
	}

	return &settings{
		job: markerpdf.Job{
			Range:      pos.rng,
			Dictionary: dictionary,
			Paper:      paper,
			Layout:     layout,
			Output:     pos.output,
		},
		geometry:  geometry,
		pixels:    cfg.Marker.Pixels,
		workers:   cfg.Workers,
		timeout:   timeout,
		verify:    verify,
		workDir:   cfg.Output.WorkDir,
		keepTemp:  cfg.Output.KeepTemp,
		renderer:  cfg.Render.Renderer,
		merger:    cfg.Render.Merger,
		template:  cfg.Render.Template,
		assetPath: cfg.Render.AssetPath,
	}, nil
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
