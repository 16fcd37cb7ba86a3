package entropy

import (
	"image"
	"math"
	"strings"
	"sync"

	"github.com/entropy-lab/entropy/imageutil"
)

// Floyd-Steinberg weights.
const (
	fsRight     = 7.0 / 16.0
	fsDownLeft  = 3.0 / 16.0
	fsDown      = 5.0 / 16.0
	fsDownRight = 1.0 / 16.0
)

// quantizer maps a working color in [0,255] to its output value.
type quantizer func(r, g, b float64) (float64, float64, float64)

func quantizerFor(mode ColorMode, palette Palette) quantizer {
	switch mode {
	case ColorGrayscale, ColorTint:
		return func(r, g, b float64) (float64, float64, float64) {
			if lumR*r+lumG*g+lumB*b < 128 {
				return 0, 0, 0
			}
			return 255, 255, 255
		}
	case ColorPalette:
		return func(r, g, b float64) (float64, float64, float64) {
			c := palette.Nearest(Vec3{r / 255, g / 255, b / 255})
			return c.R * 255, c.G * 255, c.B * 255
		}
	default:
		level := func(v float64) float64 {
			return math.Round(v/255*2) / 2 * 255
		}
		return func(r, g, b float64) (float64, float64, float64) {
			return level(r), level(g), level(b)
		}
	}
}

// FloydSteinberg error-diffuses src in row-major order under the given
// color mode. Grayscale and tint produce black and white; palette mode
// produces only palette entries; full color produces three levels per
// channel. Tint is applied later by the caller.
func FloydSteinberg(src *SourceImage, mode ColorMode, palette Palette) *image.NRGBA {
	width, height := src.Width, src.Height
	buf := make([][3]float64, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := src.img.NRGBAAt(x, y)
			buf[y*width+x] = [3]float64{float64(c.R), float64(c.G), float64(c.B)}
		}
	}

	diffuseError := func(x, y int, er, eg, eb, factor float64) {
		if y >= 0 && y < height && x >= 0 && x < width {
			p := &buf[y*width+x]
			p[0] = math.Max(0, math.Min(255, p[0]+er*factor))
			p[1] = math.Max(0, math.Min(255, p[1]+eg*factor))
			p[2] = math.Max(0, math.Min(255, p[2]+eb*factor))
		}
	}

	quantize := quantizerFor(mode, palette)
	out := imageutil.NewNRGBA(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			old := buf[y*width+x]
			qr, qg, qb := quantize(old[0], old[1], old[2])
			out.SetNRGBA(x, y, Vec3{qr / 255, qg / 255, qb / 255}.NRGBA())

			er, eg, eb := old[0]-qr, old[1]-qg, old[2]-qb
			diffuseError(x+1, y, er, eg, eb, fsRight)
			diffuseError(x-1, y+1, er, eg, eb, fsDownLeft)
			diffuseError(x, y+1, er, eg, eb, fsDown)
			diffuseError(x+1, y+1, er, eg, eb, fsDownRight)
		}
	}
	return out
}

type diffusionKey struct {
	source  [32]byte
	mode    ColorMode
	palette string
}

// diffusionCache holds the most recent error-diffusion result. It is
// recomputed only when the source, the color mode or the palette changes.
type diffusionCache struct {
	mu     sync.Mutex
	key    diffusionKey
	result *image.NRGBA
	hits   int
	misses int
}

func (c *diffusionCache) get(src *SourceImage, mode ColorMode, palette Palette) (*image.NRGBA, bool) {
	// Grayscale and tint share one quantizer.
	if mode == ColorTint {
		mode = ColorGrayscale
	}
	key := diffusionKey{source: src.ID, mode: mode}
	if mode == ColorPalette {
		key.palette = strings.Join(palette.Hex(), ",")
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.result != nil && c.key == key {
		c.hits++
		return c.result, true
	}
	c.misses++
	c.key = key
	c.result = FloydSteinberg(src, mode, palette)
	return c.result, false
}

func (c *diffusionCache) stats() (hits, misses int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hits, c.misses
}
