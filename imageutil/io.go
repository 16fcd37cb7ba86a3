package imageutil

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // Register GIF decoder
	_ "image/jpeg" // Register JPEG decoder
	"image/png"
	"io"
	"os"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"  // Register BMP decoder
	_ "golang.org/x/image/tiff" // Register TIFF decoder
	_ "golang.org/x/image/webp" // Register WebP decoder
)

// ErrEmptyImage is returned when a decoded image has no pixels.
var ErrEmptyImage = errors.New("image has zero width or height")

// fallbackDecode is consulted when the pure Go decoders reject the data.
// It is installed by the gocv build (decode_gocv.go).
var fallbackDecode func(data []byte) (image.Image, error)

// Decode reads an encoded image from r and returns it as NRGBA together
// with the detected format name. EXIF orientation is applied.
// Supports PNG, JPEG, GIF, BMP, TIFF and WebP.
func Decode(r io.Reader) (*image.NRGBA, string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read image: %w", err)
	}
	return DecodeBytes(data)
}

// DecodeBytes decodes an in-memory image. See Decode.
func DecodeBytes(data []byte) (*image.NRGBA, string, error) {
	_, format, cfgErr := image.DecodeConfig(bytes.NewReader(data))

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		if fallbackDecode == nil {
			return nil, "", fmt.Errorf("failed to decode image: %w", err)
		}
		var fbErr error
		img, fbErr = fallbackDecode(data)
		if fbErr != nil {
			return nil, "", fmt.Errorf("failed to decode image: %w", errors.Join(err, fbErr))
		}
		format = "opencv"
	} else if cfgErr != nil {
		format = "unknown"
	}

	nrgba := ToNRGBA(img)
	if Width(nrgba) == 0 || Height(nrgba) == 0 {
		return nil, "", ErrEmptyImage
	}
	return nrgba, format, nil
}

// LoadImage loads an image from the specified path.
func LoadImage(path string) (*image.NRGBA, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	return Decode(f)
}

// EncodePNG writes img to w as PNG using best-speed compression, which keeps
// large exports responsive.
func EncodePNG(w io.Writer, img image.Image) error {
	enc := png.Encoder{CompressionLevel: png.BestSpeed}
	if err := enc.Encode(w, img); err != nil {
		return fmt.Errorf("failed to encode png: %w", err)
	}
	return nil
}

// SavePNG saves an image as PNG to the specified path.
func SavePNG(img image.Image, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}

	if err := EncodePNG(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
