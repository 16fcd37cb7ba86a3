// Package imageutil provides the raster plumbing shared by the effect
// pipelines: decoding, PNG encoding, resampling and test fixtures.
package imageutil

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// RGB represents a color in the RGB color space with 8-bit channels.
type RGB struct {
	R, G, B uint8
}

// ToColor converts RGB to an opaque color.NRGBA.
func (rgb RGB) ToColor() color.NRGBA {
	return color.NRGBA{R: rgb.R, G: rgb.G, B: rgb.B, A: 255}
}

// RGBFromColor converts a color.Color to RGB, dropping alpha.
func RGBFromColor(c color.Color) RGB {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGB{R: n.R, G: n.G, B: n.B}
}

// NewNRGBA creates a transparent NRGBA image with the specified dimensions.
func NewNRGBA(width, height int) *image.NRGBA {
	return image.NewNRGBA(image.Rect(0, 0, width, height))
}

// ToNRGBA converts any image.Image to a non-premultiplied NRGBA image whose
// bounds start at the origin. The source is never aliased.
func ToNRGBA(img image.Image) *image.NRGBA {
	return imaging.Clone(img)
}

// Fill paints every pixel of img with c.
func Fill(img *image.NRGBA, c color.NRGBA) {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
}

// GetRGB returns the RGB value at (x, y).
func GetRGB(img *image.NRGBA, x, y int) RGB {
	c := img.NRGBAAt(x, y)
	return RGB{R: c.R, G: c.G, B: c.B}
}

// SetRGB sets an opaque RGB value at (x, y).
func SetRGB(img *image.NRGBA, x, y int, c RGB) {
	img.SetNRGBA(x, y, c.ToColor())
}

// Width returns the image width.
func Width(img image.Image) int {
	return img.Bounds().Dx()
}

// Height returns the image height.
func Height(img image.Image) int {
	return img.Bounds().Dy()
}
