package imageutil

import (
	"fmt"
	"image"
	"strings"

	"golang.org/x/image/draw"
)

// Interpolation specifies the interpolation method for resizing.
type Interpolation int

const (
	// InterpolationNearest uses nearest-neighbor interpolation. It maps
	// destination pixel centres onto source pixels, the same rule the
	// compositor uses, so it is the resampler for comparing renders.
	InterpolationNearest Interpolation = iota

	// InterpolationLinear uses bilinear interpolation.
	InterpolationLinear

	// InterpolationCatmullRom gives the highest quality for thumbnails.
	InterpolationCatmullRom
)

var interpolationNames = []string{"nearest", "linear", "catmull-rom"}

// InterpolationNames lists the names ParseInterpolation accepts.
func InterpolationNames() []string {
	return append([]string(nil), interpolationNames...)
}

// ParseInterpolation maps a name from InterpolationNames to its method.
func ParseInterpolation(name string) (Interpolation, error) {
	for i, n := range interpolationNames {
		if strings.EqualFold(n, strings.TrimSpace(name)) {
			return Interpolation(i), nil
		}
	}
	return InterpolationNearest, fmt.Errorf("unknown interpolation %q (want one of %s)",
		name, strings.Join(interpolationNames, ", "))
}

func (i Interpolation) scaler() draw.Scaler {
	switch i {
	case InterpolationLinear:
		return draw.BiLinear
	case InterpolationCatmullRom:
		return draw.CatmullRom
	default:
		return draw.NearestNeighbor
	}
}

// Resize resizes an image to the specified dimensions using the given
// interpolation method.
func Resize(img image.Image, width, height int, interp Interpolation) *image.NRGBA {
	dst := NewNRGBA(width, height)
	interp.scaler().Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst
}

// ResizeToWidth resizes an image to the specified width while maintaining
// aspect ratio.
func ResizeToWidth(img image.Image, width int, interp Interpolation) *image.NRGBA {
	aspectRatio := float64(Width(img)) / float64(Height(img))
	height := int(float64(width) / aspectRatio)
	if height < 1 {
		height = 1
	}
	return Resize(img, width, height, interp)
}
