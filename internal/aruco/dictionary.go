// Package aruco encodes ArUco and AprilTag markers from the predefined
// OpenCV dictionaries.
//
// The encoder links OpenCV through gocv. Building with -tags noopencv drops
// that dependency; the dictionary table still works and Encode fails with
// ErrNoOpenCV. The CLI test suite runs this way on hosts without OpenCV.
package aruco

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownDictionary = errors.New("unknown marker dictionary")
	ErrIDOutOfRange      = errors.New("marker id out of range")
	ErrNoOpenCV          = errors.New("built without OpenCV (noopencv tag)")
)

// Dictionary describes one predefined dictionary.
type Dictionary struct {
	Index int    // OpenCV PredefinedDictionaryType value
	Name  string // OpenCV constant name
	Bits  int    // marker side in bits, without border
	Size  int    // number of markers
}

// dictionaries is indexed by the OpenCV enum value.
var dictionaries = []Dictionary{
	{0, "DICT_4X4_50", 4, 50},
	{1, "DICT_4X4_100", 4, 100},
	{2, "DICT_4X4_250", 4, 250},
	{3, "DICT_4X4_1000", 4, 1000},
	{4, "DICT_5X5_50", 5, 50},
	{5, "DICT_5X5_100", 5, 100},
	{6, "DICT_5X5_250", 5, 250},
	{7, "DICT_5X5_1000", 5, 1000},
	{8, "DICT_6X6_50", 6, 50},
	{9, "DICT_6X6_100", 6, 100},
	{10, "DICT_6X6_250", 6, 250},
	{11, "DICT_6X6_1000", 6, 1000},
	{12, "DICT_7X7_50", 7, 50},
	{13, "DICT_7X7_100", 7, 100},
	{14, "DICT_7X7_250", 7, 250},
	{15, "DICT_7X7_1000", 7, 1000},
	{16, "DICT_ARUCO_ORIGINAL", 5, 1024},
	{17, "DICT_APRILTAG_16h5", 4, 30},
	{18, "DICT_APRILTAG_25h9", 5, 35},
	{19, "DICT_APRILTAG_36h10", 6, 2320},
	{20, "DICT_APRILTAG_36h11", 6, 587},
}

// Lookup returns the dictionary at index.
func Lookup(index int) (Dictionary, error) {
	if index < 0 || index >= len(dictionaries) {
		return Dictionary{}, fmt.Errorf("%w: %d (valid: 0..%d)", ErrUnknownDictionary, index, len(dictionaries)-1)
	}
	return dictionaries[index], nil
}

// Dictionaries returns all predefined dictionaries in index order.
func Dictionaries() []Dictionary {
	out := make([]Dictionary, len(dictionaries))
	copy(out, dictionaries)
	return out
}

// RangeError reports an ID the dictionary does not contain.
type RangeError struct {
	Dictionary Dictionary
	ID         int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%v: %d not in %s (0..%d)", ErrIDOutOfRange, e.ID, e.Dictionary.Name, e.Dictionary.Size-1)
}

// Is lets errors.Is(err, ErrIDOutOfRange) match.
func (e *RangeError) Is(target error) bool {
	return target == ErrIDOutOfRange
}

// CheckID validates id against the dictionary size.
func (d Dictionary) CheckID(id int) error {
	if id < 0 || id >= d.Size {
		return &RangeError{Dictionary: d, ID: id}
	}
	return nil
}

// Validate checks that every ID in [start, end] exists in the dictionary at
// index.
func Validate(index, start, end int) error {
	d, err := Lookup(index)
	if err != nil {
		return err
	}
	if err := d.CheckID(start); err != nil {
		return err
	}
	return d.CheckID(end)
}

// MinSidePixels is the smallest bitmap side that gives every bit (plus the
// one-bit border) at least one pixel.
func (d Dictionary) MinSidePixels() int {
	return d.Bits + 2
}
