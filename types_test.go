package markerpdf

import (
	"errors"
	"math"
	"slices"
	"testing"
)

func TestRange(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		rng     Range
		wantLen int
		wantIDs []int
		wantErr error
	}{
		{name: "pair", rng: Range{13, 14}, wantLen: 2, wantIDs: []int{13, 14}},
		{name: "single id", rng: Range{0, 0}, wantLen: 1, wantIDs: []int{0}},
		{name: "odd count", rng: Range{5, 9}, wantLen: 5, wantIDs: []int{5, 6, 7, 8, 9}},
		{name: "reversed", rng: Range{14, 13}, wantLen: 0, wantIDs: []int{}, wantErr: ErrInvalidRange},
		{name: "negative start", rng: Range{-1, 3}, wantLen: 5, wantIDs: []int{-1, 0, 1, 2, 3}, wantErr: ErrInvalidRange},
		{name: "ends at max int", rng: Range{math.MaxInt - 1, math.MaxInt}, wantLen: 2, wantIDs: []int{math.MaxInt - 1, math.MaxInt}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.rng.Len(); got != tt.wantLen {
				t.Errorf("Len() = %d, want %d", got, tt.wantLen)
			}
			if got := tt.rng.IDs(); !slices.Equal(got, tt.wantIDs) {
				t.Errorf("IDs() = %v, want %v", got, tt.wantIDs)
			}
			err := tt.rng.Validate()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestRange_Oversized(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		rng     Range
		wantLen int
		wantErr error
	}{
		{name: "at the cap", rng: Range{0, MaxRangeLen - 1}, wantLen: MaxRangeLen},
		{name: "one past the cap", rng: Range{0, MaxRangeLen}, wantLen: MaxRangeLen + 1, wantErr: ErrInvalidRange},
		{name: "zero to max int", rng: Range{0, math.MaxInt}, wantLen: math.MaxInt, wantErr: ErrInvalidRange},
		{name: "min int to max int", rng: Range{math.MinInt, math.MaxInt}, wantLen: math.MaxInt, wantErr: ErrInvalidRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.rng.Len(); got != tt.wantLen {
				t.Errorf("Len() = %d, want %d", got, tt.wantLen)
			}
			if err := tt.rng.Validate(); !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
			ids := tt.rng.IDs()
			if len(ids) > MaxRangeLen {
				t.Fatalf("len(IDs()) = %d, want at most %d", len(ids), MaxRangeLen)
			}
			if ids[0] != tt.rng.Start || ids[len(ids)-1] != tt.rng.Start+len(ids)-1 {
				t.Errorf("IDs() = [%d .. %d], want consecutive from %d", ids[0], ids[len(ids)-1], tt.rng.Start)
			}
		})
	}
}

func TestRange_String(t *testing.T) {
	t.Parallel()
	if got := (Range{Start: 3, End: 7}).String(); got != "3..7" {
		t.Errorf("String() = %q, want 3..7", got)
	}
}

func TestJob_Validate(t *testing.T) {
	t.Parallel()

	a3, _ := LookupPaperSize("a3")
	valid := Job{Range: Range{1, 2}, Paper: a3, Layout: LayoutDouble, Output: "out.pdf"}

	tests := []struct {
		name    string
		mutate  func(*Job)
		wantErr error
	}{
		{name: "valid", mutate: func(*Job) {}},
		{name: "bad range", mutate: func(j *Job) { j.Range = Range{2, 1} }, wantErr: ErrInvalidRange},
		{name: "zero paper", mutate: func(j *Job) { j.Paper = PaperSize{} }, wantErr: ErrInvalidPaperSize},
		{name: "bad layout", mutate: func(j *Job) { j.Layout = "quad" }, wantErr: ErrInvalidLayout},
		{name: "empty layout", mutate: func(j *Job) { j.Layout = "" }, wantErr: ErrInvalidLayout},
		{name: "no output", mutate: func(j *Job) { j.Output = "" }, wantErr: ErrEmptyOutput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			job := valid
			tt.mutate(&job)
			if err := job.Validate(); !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
