package markerpdf

import (
	"context"
	"errors"
	"image"
	"os"
	"runtime"
	"slices"
	"sync/atomic"
	"testing"
)

// encoderFunc adapts a function to Encoder.
type encoderFunc func(dictionary, id, side int) error

func (f encoderFunc) Encode(dictionary, id, side int) (image.Image, error) {
	if err := f(dictionary, id, side); err != nil {
		return nil, err
	}
	return image.NewGray(image.Rect(0, 0, side, side)), nil
}

func TestResolveWorkers(t *testing.T) {
	t.Parallel()

	gomaxprocs := runtime.GOMAXPROCS(0)

	tests := []struct {
		name    string
		workers int
		want    int
	}{
		{name: "explicit takes priority", workers: 4, want: 4},
		{name: "explicit=1 for sequential", workers: 1, want: 1},
		{name: "explicit above auto cap", workers: 32, want: 32},
		{name: "zero uses GOMAXPROCS", workers: 0, want: min(max(gomaxprocs, MinWorkers), MaxWorkers)},
		{name: "negative uses GOMAXPROCS", workers: -3, want: min(max(gomaxprocs, MinWorkers), MaxWorkers)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := ResolveWorkers(tt.workers); got != tt.want {
				t.Errorf("ResolveWorkers(%d) = %d, want %d", tt.workers, got, tt.want)
			}
		})
	}
}

// ---- TestGenerateBatch - parallel and sequential write the same files ----

func TestGenerateBatch_SameFilesBothModes(t *testing.T) {
	t.Parallel()

	ids := Range{Start: 10, End: 19}.IDs()

	list := func(t *testing.T, workers int) []string {
		t.Helper()
		dir := t.TempDir()
		gen := &BitmapGenerator{Encoder: &mockEncoder{errID: -1}, Store: MarkerStore{Dir: dir}, Pixels: 8}
		if err := GenerateBatch(context.Background(), gen, ids, workers, nil); err != nil {
			t.Fatalf("GenerateBatch(workers=%d) error = %v", workers, err)
		}
		entries, err := os.ReadDir(dir)
		if err != nil {
			t.Fatal(err)
		}
		var names []string
		for _, e := range entries {
			names = append(names, e.Name())
		}
		slices.Sort(names)
		return names
	}

	sequential := list(t, 1)
	parallel := list(t, 4)

	if len(sequential) != len(ids) {
		t.Errorf("sequential wrote %d files, want %d", len(sequential), len(ids))
	}
	if !slices.Equal(sequential, parallel) {
		t.Errorf("file sets differ:\nsequential %v\nparallel   %v", sequential, parallel)
	}
}

func TestGenerateBatch_SequentialOrder(t *testing.T) {
	t.Parallel()

	enc := &mockEncoder{errID: -1}
	gen := &BitmapGenerator{Encoder: enc, Store: MarkerStore{Dir: t.TempDir()}, Pixels: 8}
	ids := []int{3, 4, 5, 6}

	if err := GenerateBatch(context.Background(), gen, ids, 1, nil); err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(enc.ids, ids) {
		t.Errorf("encode order = %v, want ascending %v", enc.ids, ids)
	}
}

func TestGenerateBatch_Empty(t *testing.T) {
	t.Parallel()
	enc := &mockEncoder{errID: -1}
	gen := &BitmapGenerator{Encoder: enc, Store: MarkerStore{Dir: t.TempDir()}}
	if err := GenerateBatch(context.Background(), gen, nil, 4, nil); err != nil {
		t.Errorf("error = %v", err)
	}
	if enc.calls() != 0 {
		t.Error("encoder called for empty range")
	}
}

func TestGenerateBatch_FirstErrorWins(t *testing.T) {
	t.Parallel()

	for _, workers := range []int{1, 4} {
		errBoom := errors.New("boom")
		var after atomic.Int32
		enc := encoderFunc(func(_, id, _ int) error {
			if id == 2 {
				return errBoom
			}
			if id > 2 {
				after.Add(1)
			}
			return nil
		})
		gen := &BitmapGenerator{Encoder: enc, Store: MarkerStore{Dir: t.TempDir()}, Pixels: 8}

		err := GenerateBatch(context.Background(), gen, []int{0, 1, 2, 3, 4, 5}, workers, nil)
		if !errors.Is(err, errBoom) || !errors.Is(err, ErrMarkerEncode) {
			t.Errorf("workers=%d: error = %v, want wrapped boom", workers, err)
		}
		if workers == 1 && after.Load() != 0 {
			t.Errorf("sequential run continued after the failure (%d more ids)", after.Load())
		}
	}
}

func TestGenerateBatch_CanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	enc := &mockEncoder{errID: -1}
	gen := &BitmapGenerator{Encoder: enc, Store: MarkerStore{Dir: t.TempDir()}, Pixels: 8}

	err := GenerateBatch(ctx, gen, []int{1, 2, 3}, 2, nil)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
	if enc.calls() != 0 {
		t.Errorf("encoder called %d times after cancellation", enc.calls())
	}
}
