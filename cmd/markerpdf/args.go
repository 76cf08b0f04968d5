package main

import (
	"errors"
	"fmt"
	"strconv"

	markerpdf "github.com/alnah/go-markerpdf"
)

// ErrUsage marks command-line mistakes (exit 2).
var ErrUsage = errors.New("usage error")

// usageError wraps a parse error so it maps to ExitUsage.
func usageError(err error) error {
	return fmt.Errorf("%w: %v", ErrUsage, err)
}

// positionalArgs holds `<startId> <endId> <pdfFile> [dictionary]`.
type positionalArgs struct {
	rng        markerpdf.Range
	output     string
	dictionary *int // nil when omitted
}

// parsePositionals validates the positional arguments.
func parsePositionals(args []string) (*positionalArgs, error) {
	if len(args) < 3 || len(args) > 4 {
		return nil, fmt.Errorf("%w: expected <startId> <endId> <pdfFile> [dictionary], got %d arguments", ErrUsage, len(args))
	}

	start, err := parseInt("startId", args[0])
	if err != nil {
		return nil, err
	}
	end, err := parseInt("endId", args[1])
	if err != nil {
		return nil, err
	}

	p := &positionalArgs{
		rng:    markerpdf.Range{Start: start, End: end},
		output: args[2],
	}
	if err := p.rng.Validate(); err != nil {
		return nil, err
	}
	if p.output == "" {
		return nil, markerpdf.ErrEmptyOutput
	}

	if len(args) == 4 {
		dict, err := parseInt("dictionary", args[3])
		if err != nil {
			return nil, err
		}
		p.dictionary = &dict
	}
	return p, nil
}

func parseInt(name, s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer, got %q", ErrUsage, name, s)
	}
	return n, nil
}
