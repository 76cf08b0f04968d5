package assets

import (
	"errors"
	"fmt"
	"io/fs"
)

// readTemplateSet reads both layout files through read.
// Both missing means the set does not exist; one missing means it is incomplete.
func readTemplateSet(name string, read func(file string) ([]byte, error)) (*TemplateSet, error) {
	single, singleErr := read(singleTemplateFile)
	double, doubleErr := read(doubleTemplateFile)

	singleMissing := errors.Is(singleErr, fs.ErrNotExist)
	doubleMissing := errors.Is(doubleErr, fs.ErrNotExist)

	if singleMissing && doubleMissing {
		return nil, fmt.Errorf("%w: %q", ErrTemplateSetNotFound, name)
	}
	if singleErr != nil && !singleMissing {
		return nil, fmt.Errorf("%w: reading %s: %v", ErrAssetRead, singleTemplateFile, singleErr)
	}
	if doubleErr != nil && !doubleMissing {
		return nil, fmt.Errorf("%w: reading %s: %v", ErrAssetRead, doubleTemplateFile, doubleErr)
	}
	if singleMissing {
		return nil, fmt.Errorf("%w: %q missing %s", ErrIncompleteTemplateSet, name, singleTemplateFile)
	}
	if doubleMissing {
		return nil, fmt.Errorf("%w: %q missing %s", ErrIncompleteTemplateSet, name, doubleTemplateFile)
	}

	return &TemplateSet{
		Name:   name,
		Single: string(single),
		Double: string(double),
	}, nil
}
