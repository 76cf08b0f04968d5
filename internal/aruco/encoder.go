//go:build !noopencv

package aruco

import (
	"fmt"
	"image"

	"gocv.io/x/gocv"
)

// BorderBits is the width of the black frame around the bit grid.
const BorderBits = 1

// Encoder draws markers with OpenCV.
type Encoder struct{}

// Encode returns the marker bitmap for id, sidePixels square, 8-bit grayscale.
// IDs and dictionaries are checked here because OpenCV aborts on bad input.
func (Encoder) Encode(dictionary, id, sidePixels int) (image.Image, error) {
	d, err := Lookup(dictionary)
	if err != nil {
		return nil, err
	}
	if err := d.CheckID(id); err != nil {
		return nil, err
	}
	if sidePixels < d.MinSidePixels() {
		return nil, fmt.Errorf("side %dpx too small for %s (min %d)", sidePixels, d.Name, d.MinSidePixels())
	}

	mat := gocv.NewMat()
	defer mat.Close()

	gocv.ArucoGenerateImageMarker(gocv.ArucoDictionaryCode(d.Index), id, sidePixels, mat, BorderBits)
	if mat.Empty() {
		return nil, fmt.Errorf("opencv produced an empty image for id %d", id)
	}

	img, err := mat.ToImage()
	if err != nil {
		return nil, fmt.Errorf("converting marker %d: %w", id, err)
	}
	return img, nil
}

// OpenCVVersion reports the linked OpenCV library version.
func OpenCVVersion() string {
	return gocv.OpenCVVersion()
}
