package markerpdf

import (
	"fmt"
	"math"
	"time"
)

// MaxRangeLen caps the number of IDs in one run. The largest predefined
// dictionary holds 2320 markers.
const MaxRangeLen = 1 << 16

// Range is an inclusive range of marker IDs.
type Range struct {
	Start int
	End   int
}

// Validate checks that the range is non-empty and non-negative.
func (r Range) Validate() error {
	if r.Start < 0 {
		return fmt.Errorf("%w: start %d is negative", ErrInvalidRange, r.Start)
	}
	if r.End < r.Start {
		return fmt.Errorf("%w: end %d is before start %d", ErrInvalidRange, r.End, r.Start)
	}
	if r.Len() > MaxRangeLen {
		return fmt.Errorf("%w: %s holds more than %d IDs", ErrInvalidRange, r, MaxRangeLen)
	}
	return nil
}

// Len returns the number of IDs in the range, saturating at math.MaxInt.
func (r Range) Len() int {
	if r.End < r.Start {
		return 0
	}
	d := uint(r.End) - uint(r.Start)
	if d >= math.MaxInt {
		return math.MaxInt
	}
	return int(d) + 1
}

// IDs returns the IDs in ascending order. Ranges longer than MaxRangeLen
// are truncated to their first MaxRangeLen IDs.
func (r Range) IDs() []int {
	n := min(r.Len(), MaxRangeLen)
	ids := make([]int, 0, n)
	for i := range n {
		ids = append(ids, r.Start+i)
	}
	return ids
}

func (r Range) String() string {
	return fmt.Sprintf("%d..%d", r.Start, r.End)
}

// Job describes one generation run.
type Job struct {
	Range      Range
	Dictionary int
	Paper      PaperSize
	Layout     Layout
	Output     string
}

// Validate checks every field of the job.
func (j *Job) Validate() error {
	if err := j.Range.Validate(); err != nil {
		return err
	}
	if err := j.Paper.Validate(); err != nil {
		return err
	}
	if err := j.Layout.Validate(); err != nil {
		return err
	}
	if j.Output == "" {
		return ErrEmptyOutput
	}
	return nil
}

// Result summarizes a finished run.
type Result struct {
	Output   string
	Pages    int
	Markers  int
	Duration time.Duration
}
