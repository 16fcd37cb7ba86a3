package entropy

import (
	"bytes"
	"image"
	"image/png"
	"testing"

	"github.com/entropy-lab/entropy/imageutil"
	"github.com/stretchr/testify/require"
)

func newSource(t *testing.T, img image.Image) *SourceImage {
	t.Helper()
	src, err := NewSourceImage(img)
	require.NoError(t, err)
	return src
}

func grayImage(w, h int, v uint8) *image.NRGBA {
	return imageutil.CreateSolidImage(w, h, imageutil.RGB{R: v, G: v, B: v})
}

// colorSet collects the distinct opaque colors of img.
func colorSet(img *image.NRGBA) map[imageutil.RGB]int {
	set := make(map[imageutil.RGB]int)
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			set[imageutil.GetRGB(img, x, y)]++
		}
	}
	return set
}

func paletteBytes(p Palette) map[imageutil.RGB]bool {
	set := make(map[imageutil.RGB]bool)
	for _, c := range p {
		set[imageutil.RGBFromColor(c.NRGBA())] = true
	}
	return set
}

func decodePNG(t *testing.T, data []byte) *image.NRGBA {
	t.Helper()
	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	return imageutil.ToNRGBA(img)
}

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, imageutil.EncodePNG(&buf, img))
	return buf.Bytes()
}

func rgbOf(c Vec3) imageutil.RGB {
	return imageutil.RGBFromColor(c.NRGBA())
}
