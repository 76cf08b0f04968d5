package markerpdf

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"io"
	"path/filepath"

	"github.com/alnah/go-markerpdf/internal/fileutil"
)

// Marker defaults.
const (
	DefaultDictionary   = 8
	DefaultMarkerPixels = 2000
)

// Encoder draws the bit pattern of one marker as a square bitmap.
type Encoder interface {
	Encode(dictionary, id, sidePixels int) (image.Image, error)
}

// MarkerGenerator produces the bitmap file for one ID.
type MarkerGenerator interface {
	Generate(ctx context.Context, id int) error
}

// MarkerStore maps IDs to bitmap paths inside one directory.
type MarkerStore struct {
	Dir string
}

// Path returns the bitmap path for id.
func (s MarkerStore) Path(id int) string {
	return filepath.Join(s.Dir, fmt.Sprintf("marker%d.png", id))
}

// BitmapGenerator encodes markers and writes them as PNG files.
type BitmapGenerator struct {
	Encoder    Encoder
	Store      MarkerStore
	Dictionary int
	Pixels     int
}

// Compile-time interface check.
var _ MarkerGenerator = (*BitmapGenerator)(nil)

// Generate encodes id and writes it to its store path.
func (g *BitmapGenerator) Generate(ctx context.Context, id int) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	pixels := g.Pixels
	if pixels <= 0 {
		pixels = DefaultMarkerPixels
	}

	img, err := g.Encoder.Encode(g.Dictionary, id, pixels)
	if err != nil {
		return fmt.Errorf("%w: id %d dictionary %d: %w", ErrMarkerEncode, id, g.Dictionary, err)
	}

	return writePNG(g.Store.Path(id), img)
}

// writePNG encodes img to path. A failed encode leaves no file behind.
func writePNG(path string, img image.Image) error {
	err := fileutil.WriteAtomic(path, 0o644, func(w io.Writer) error {
		return png.Encode(w, img)
	})
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrMarkerWrite, path, err)
	}
	return nil
}
