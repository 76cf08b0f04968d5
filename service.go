package markerpdf

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

// ErrNoEncoder is returned by New when no encoder is configured.
var ErrNoEncoder = errors.New("no marker encoder configured")

// Generator runs the marker sheet pipeline:
// bitmaps -> page plan -> SVG -> PDF pages -> merged PDF.
// Create with New, call Generate per job, and Close when done.
type Generator struct {
	encoder   Encoder
	templater Templater
	renderer  Renderer
	merger    Merger
	logger    *slog.Logger

	workers  int
	pixels   int
	geometry Geometry
	workDir  string
	keepTemp bool
	verify   bool
	timeout  time.Duration
}

// New creates a Generator. An encoder is required; every other collaborator
// has a default.
func New(opts ...Option) (*Generator, error) {
	g := &Generator{
		templater: TreeTemplater{},
		logger:    slog.New(slog.DiscardHandler),
		pixels:    DefaultMarkerPixels,
		geometry:  DefaultGeometry(),
		verify:    true,
	}

	for _, opt := range opts {
		opt(g)
	}

	if g.encoder == nil {
		return nil, ErrNoEncoder
	}
	if err := g.geometry.Validate(); err != nil {
		return nil, err
	}
	if g.renderer == nil {
		g.renderer = &CairoSVG{Runner: &ExecRunner{}}
	}
	if g.merger == nil {
		g.merger = &Pdfunite{Runner: &ExecRunner{}}
	}

	return g, nil
}

// Requirements returns the external tools the configured backends need.
func (g *Generator) Requirements() []Requirement {
	return Requirements(g.renderer, g.merger)
}

// Generate produces the PDF described by job.
func (g *Generator) Generate(ctx context.Context, job Job) (*Result, error) {
	start := time.Now()

	if err := job.Validate(); err != nil {
		return nil, err
	}

	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	dir, cleanup, err := g.prepareWorkDir()
	if err != nil {
		return nil, err
	}
	defer cleanup()

	store := MarkerStore{Dir: dir}
	ids := job.Range.IDs()

	gen := &BitmapGenerator{
		Encoder:    g.encoder,
		Store:      store,
		Dictionary: job.Dictionary,
		Pixels:     g.pixels,
	}
	if err := GenerateBatch(ctx, gen, ids, ResolveWorkers(g.workers), g.logger); err != nil {
		return nil, err
	}
	g.logger.Debug("markers generated", "range", job.Range.String(), "dir", dir)

	plan := PlanPages(ids, job.Layout)
	pagePaths := make([]string, 0, len(plan))
	for i, pageIDs := range plan {
		out := job.Output
		if len(plan) > 1 {
			out = filepath.Join(dir, fmt.Sprintf("page-%04d.pdf", i+1))
		}
		if err := g.renderPage(ctx, job, store, pageIDs, out, dir); err != nil {
			return nil, err
		}
		pagePaths = append(pagePaths, out)
	}

	if len(pagePaths) > 1 {
		if err := g.merger.Merge(ctx, pagePaths, job.Output); err != nil {
			return nil, err
		}
		g.logger.Debug("pages merged", "merger", g.merger.Name(), "pages", len(pagePaths))
	}

	if g.verify {
		if err := VerifyPDF(job.Output, len(plan)); err != nil {
			return nil, err
		}
	}

	return &Result{
		Output:   job.Output,
		Pages:    len(plan),
		Markers:  len(ids),
		Duration: time.Since(start),
	}, nil
}

// renderPage builds and renders one page. A lone ID on a double sheet falls
// back to the single layout.
func (g *Generator) renderPage(ctx context.Context, job Job, store MarkerStore, ids []int, out, dir string) error {
	layout := job.Layout
	if len(ids) == 1 {
		layout = LayoutSingle
	}

	hrefs := make([]string, len(ids))
	for i, id := range ids {
		hrefs[i] = store.Path(id)
	}

	page := Page{
		Layout:     layout,
		IDs:        ids,
		Dictionary: job.Dictionary,
		Paper:      job.Paper,
		Geometry:   g.geometry,
		Hrefs:      hrefs,
	}

	svg, err := g.templater.Render(page)
	if err != nil {
		return err
	}

	paper := job.Paper
	if layout == LayoutDouble {
		paper = paper.Landscape()
	}

	g.logger.Debug("rendering page", "ids", ids, "layout", string(layout), "renderer", g.renderer.Name())
	return g.renderer.Render(ctx, svg, RenderRequest{
		OutputPath: out,
		WorkDir:    dir,
		Paper:      paper,
	})
}

// prepareWorkDir returns the run directory and its cleanup.
func (g *Generator) prepareWorkDir() (string, func(), error) {
	if g.workDir != "" {
		// Bitmap hrefs must resolve regardless of the renderer's working directory.
		dir, err := filepath.Abs(g.workDir)
		if err != nil {
			return "", nil, fmt.Errorf("%w: resolving work dir: %v", ErrMarkerWrite, err)
		}
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return "", nil, fmt.Errorf("%w: creating work dir: %v", ErrMarkerWrite, err)
		}
		return dir, func() {}, nil
	}

	dir, err := os.MkdirTemp("", "markerpdf-*")
	if err != nil {
		return "", nil, fmt.Errorf("%w: creating temp dir: %v", ErrMarkerWrite, err)
	}
	if g.keepTemp {
		g.logger.Info("keeping temporary files", "dir", dir)
		return dir, func() {}, nil
	}
	return dir, func() { _ = os.RemoveAll(dir) }, nil
}

// Close releases renderer resources such as a browser instance.
func (g *Generator) Close() error {
	if c, ok := g.renderer.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
