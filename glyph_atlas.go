package entropy

import (
	"fmt"
	"image"
	"math"
	"sync"
	"unicode/utf8"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/math/fixed"
)

// DefaultGlyphRamp orders printable ASCII from sparse to dense.
const DefaultGlyphRamp = " .'`^\",:;Il!i><~+_-?][}{1)(|/tfjrxnuvczXYUJCLQ0OZmwqpdbkhao*#MW&8%B@$"

// DefaultGlyphCell is the atlas cell size in pixels.
const DefaultGlyphCell = 64

// glyphScale is the font size as a fraction of the cell.
const glyphScale = 0.65

// GlyphAtlas is a single alpha raster holding every glyph of a ramp side by
// side in square cells. It is immutable once built.
type GlyphAtlas struct {
	ramp  []rune
	cell  int
	alpha *image.Alpha
}

var goMonoBold = sync.OnceValues(func() (*truetype.Font, error) {
	return freetype.ParseFont(gomonobold.TTF)
})

// NewGlyphAtlas rasterizes ramp with Go Mono Bold into cells of cell pixels.
func NewGlyphAtlas(ramp string, cell int) (*GlyphAtlas, error) {
	if utf8.RuneCountInString(ramp) < 2 {
		return nil, fmt.Errorf("glyph ramp needs at least two glyphs, got %q", ramp)
	}
	if cell < 4 {
		return nil, fmt.Errorf("glyph cell of %d pixels is too small", cell)
	}
	ttf, err := goMonoBold()
	if err != nil {
		return nil, fmt.Errorf("failed to parse glyph font: %w", err)
	}

	runes := []rune(ramp)
	size := float64(cell) * glyphScale
	face := truetype.NewFace(ttf, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	defer face.Close()

	img := image.NewAlpha(image.Rect(0, 0, cell*len(runes), cell))

	ctx := freetype.NewContext()
	ctx.SetDPI(72)
	ctx.SetFont(ttf)
	ctx.SetFontSize(size)
	ctx.SetClip(img.Bounds())
	ctx.SetDst(img)
	ctx.SetSrc(image.White)
	ctx.SetHinting(font.HintingFull)

	// Centre the line box vertically.
	metrics := face.Metrics()
	ascent := metrics.Ascent.Round()
	descent := metrics.Descent.Round()
	baselineY := (cell + ascent - descent) / 2

	for i, r := range runes {
		advance := font.MeasureString(face, string(r))
		x := fixed.I(i*cell) + (fixed.I(cell)-advance)/2
		if _, err := ctx.DrawString(string(r), fixed.Point26_6{X: x, Y: fixed.I(baselineY)}); err != nil {
			return nil, fmt.Errorf("failed to draw glyph %q: %w", r, err)
		}
	}

	return &GlyphAtlas{ramp: runes, cell: cell, alpha: img}, nil
}

// Len returns the number of glyphs.
func (a *GlyphAtlas) Len() int { return len(a.ramp) }

// Cell returns the cell size in pixels.
func (a *GlyphAtlas) Cell() int { return a.cell }

// Image returns the atlas raster. Callers must not modify it.
func (a *GlyphAtlas) Image() *image.Alpha { return a.alpha }

// Index maps a luminance in [0,1] to a glyph index. The small epsilon keeps
// luminance 1 on the last glyph.
func (a *GlyphAtlas) Index(lum float64) int {
	n := float64(len(a.ramp))
	i := int(math.Floor(clamp01(lum) * (n - 0.01)))
	return min(max(i, 0), len(a.ramp)-1)
}

// Rune returns the glyph at index i.
func (a *GlyphAtlas) Rune(i int) rune { return a.ramp[i] }

// Coverage samples glyph i at cell-relative position (u, v) in [0,1) using
// nearest filtering and returns the alpha in [0,1].
func (a *GlyphAtlas) Coverage(i int, u, v float64) float64 {
	px := min(max(int(u*float64(a.cell)), 0), a.cell-1)
	py := min(max(int(v*float64(a.cell)), 0), a.cell-1)
	return float64(a.alpha.AlphaAt(i*a.cell+px, py).A) / 255
}

var defaultAtlas = sync.OnceValues(func() (*GlyphAtlas, error) {
	return NewGlyphAtlas(DefaultGlyphRamp, DefaultGlyphCell)
})

// DefaultGlyphAtlas returns the process-wide atlas for DefaultGlyphRamp.
func DefaultGlyphAtlas() (*GlyphAtlas, error) {
	return defaultAtlas()
}
