package entropy

import (
	"fmt"
	"image"
	"io"

	"github.com/entropy-lab/entropy/imageutil"
	"github.com/zeebo/blake3"
)

// SourceImage is a decoded raster. It is never mutated after construction;
// every pipeline reads it and writes to a separate target.
type SourceImage struct {
	img    *image.NRGBA
	Width  int
	Height int
	// ID is the BLAKE3 digest of the pixel buffer and dimensions.
	ID     [32]byte
	Format string
}

// NewSourceImage copies img into a new SourceImage.
func NewSourceImage(img image.Image) (*SourceImage, error) {
	n := imageutil.ToNRGBA(img)
	w, h := imageutil.Width(n), imageutil.Height(n)
	if w == 0 || h == 0 {
		return nil, fmt.Errorf("%w: %w", ErrDecode, imageutil.ErrEmptyImage)
	}

	hasher := blake3.New()
	fmt.Fprintf(hasher, "%dx%d:", w, h)
	hasher.Write(n.Pix)

	s := &SourceImage{img: n, Width: w, Height: h}
	copy(s.ID[:], hasher.Sum(nil))
	return s, nil
}

// LoadImage decodes a PNG, JPEG, GIF, BMP, TIFF or WebP stream. EXIF
// orientation is applied. Failures wrap ErrDecode.
func LoadImage(r io.Reader) (*SourceImage, error) {
	img, format, err := imageutil.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	s, err := NewSourceImage(img)
	if err != nil {
		return nil, err
	}
	s.Format = format
	return s, nil
}

// LoadImageFile opens and decodes the image at path. Open and decode
// failures both wrap ErrDecode.
func LoadImageFile(path string) (*SourceImage, error) {
	img, format, err := imageutil.LoadImage(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	s, err := NewSourceImage(img)
	if err != nil {
		return nil, err
	}
	s.Format = format
	return s, nil
}

// At returns the color at pixel (x, y), clamped to the image edge.
func (s *SourceImage) At(x, y int) Vec3 {
	x = min(max(x, 0), s.Width-1)
	y = min(max(y, 0), s.Height-1)
	return Vec3FromNRGBA(s.img.NRGBAAt(x, y))
}

// Image returns a copy of the pixels.
func (s *SourceImage) Image() *image.NRGBA {
	return imageutil.ToNRGBA(s.img)
}

// Fingerprint returns the hex form of ID, for logs.
func (s *SourceImage) Fingerprint() string {
	return fmt.Sprintf("%x", s.ID[:8])
}
