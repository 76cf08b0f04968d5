//go:build noopencv

package aruco

import (
	"fmt"
	"image"
)

// Encoder is the OpenCV encoder placeholder for builds without OpenCV.
type Encoder struct{}

// Encode validates its input, then fails with ErrNoOpenCV.
func (Encoder) Encode(dictionary, id, sidePixels int) (image.Image, error) {
	d, err := Lookup(dictionary)
	if err != nil {
		return nil, err
	}
	if err := d.CheckID(id); err != nil {
		return nil, err
	}
	return nil, fmt.Errorf("encoding %s id %d: %w", d.Name, id, ErrNoOpenCV)
}

// OpenCVVersion returns "" when OpenCV is not linked.
func OpenCVVersion() string {
	return ""
}
