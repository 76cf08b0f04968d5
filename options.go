package markerpdf

import (
	"log/slog"
	"time"
)

// Option configures a Generator.
type Option func(*Generator)

// WithEncoder sets the marker encoder. Required.
func WithEncoder(e Encoder) Option {
	return func(g *Generator) {
		g.encoder = e
	}
}

// WithTemplater sets the SVG templater (default: element tree builder).
func WithTemplater(t Templater) Option {
	return func(g *Generator) {
		g.templater = t
	}
}

// WithRenderer sets the SVG to PDF renderer (default: cairosvg).
func WithRenderer(r Renderer) Option {
	return func(g *Generator) {
		g.renderer = r
	}
}

// WithMerger sets the PDF merger (default: pdfunite).
func WithMerger(m Merger) Option {
	return func(g *Generator) {
		g.merger = m
	}
}

// WithWorkers sets the bitmap worker count (0 = auto).
func WithWorkers(n int) Option {
	return func(g *Generator) {
		g.workers = n
	}
}

// WithMarkerPixels sets the bitmap side in pixels.
func WithMarkerPixels(n int) Option {
	return func(g *Generator) {
		if n > 0 {
			g.pixels = n
		}
	}
}

// WithGeometry sets the printed dimensions.
func WithGeometry(geo Geometry) Option {
	return func(g *Generator) {
		g.geometry = geo
	}
}

// WithWorkDir places run files in dir instead of a fresh temporary directory.
// A caller-provided directory is never removed.
func WithWorkDir(dir string) Option {
	return func(g *Generator) {
		g.workDir = dir
	}
}

// WithKeepTemp keeps the temporary directory after the run.
func WithKeepTemp(keep bool) Option {
	return func(g *Generator) {
		g.keepTemp = keep
	}
}

// WithVerify toggles page-count verification of the output (default on).
func WithVerify(verify bool) Option {
	return func(g *Generator) {
		g.verify = verify
	}
}

// WithTimeout bounds a whole Generate call. Zero means no limit.
func WithTimeout(d time.Duration) Option {
	return func(g *Generator) {
		if d >= 0 {
			g.timeout = d
		}
	}
}

// WithLogger sets the logger for progress and fallback notices.
func WithLogger(l *slog.Logger) Option {
	return func(g *Generator) {
		if l != nil {
			g.logger = l
		}
	}
}
