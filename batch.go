package markerpdf

import (
	"context"
	"log/slog"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Worker sizing constants.
const (
	// MinWorkers ensures at least one worker is available.
	MinWorkers = 1

	// MaxWorkers caps automatic sizing; encoding 2000px bitmaps is CPU and memory bound.
	MaxWorkers = 16
)

// ResolveWorkers determines the worker count.
// Priority: explicit workers > GOMAXPROCS (adjusted by automaxprocs for containers).
func ResolveWorkers(workers int) int {
	if workers > 0 {
		return workers
	}

	n := runtime.GOMAXPROCS(0)
	if n < MinWorkers {
		return MinWorkers
	}
	if n > MaxWorkers {
		return MaxWorkers
	}
	return n
}

// GenerateBatch invokes gen once per ID. With more than one worker the IDs
// run unordered on a bounded group; with one worker they run sequentially in
// ascending order. Both modes write the same set of files. The first error
// cancels the remaining work and is returned.
func GenerateBatch(ctx context.Context, gen MarkerGenerator, ids []int, workers int, logger *slog.Logger) error {
	if len(ids) == 0 {
		return nil
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	if workers <= 1 {
		if len(ids) > 1 {
			logger.Info("parallel generation unavailable, generating markers sequentially", "markers", len(ids))
		}
		return generateSequential(ctx, gen, ids)
	}
	workers = min(workers, len(ids))

	logger.Debug("generating markers", "markers", len(ids), "workers", workers)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for _, id := range ids {
		g.Go(func() error {
			return gen.Generate(gctx, id)
		})
	}
	return g.Wait()
}

// generateSequential is the single-worker path.
func generateSequential(ctx context.Context, gen MarkerGenerator, ids []int) error {
	for _, id := range ids {
		if err := gen.Generate(ctx, id); err != nil {
			return err
		}
	}
	return nil
}
