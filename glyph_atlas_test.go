package entropy

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultGlyphAtlas(t *testing.T) {
	t.Parallel()

	a, err := DefaultGlyphAtlas()
	require.NoError(t, err)
	b, err := DefaultGlyphAtlas()
	require.NoError(t, err)
	assert.Same(t, a, b, "atlas is built once per process")

	n := utf8.RuneCountInString(DefaultGlyphRamp)
	assert.Equal(t, n, a.Len())
	assert.Equal(t, DefaultGlyphCell*n, a.Image().Bounds().Dx())
	assert.Equal(t, DefaultGlyphCell, a.Image().Bounds().Dy())
	assert.Equal(t, ' ', a.Rune(0))
	assert.Equal(t, '$', a.Rune(n-1))
}

func coverageSum(a *GlyphAtlas, i int) float64 {
	var sum float64
	for y := 0; y < a.Cell(); y++ {
		for x := 0; x < a.Cell(); x++ {
			sum += a.Coverage(i, (float64(x)+0.5)/float64(a.Cell()), (float64(y)+0.5)/float64(a.Cell()))
		}
	}
	return sum
}

func TestGlyphAtlasCoverage(t *testing.T) {
	t.Parallel()

	a, err := DefaultGlyphAtlas()
	require.NoError(t, err)

	assert.Zero(t, coverageSum(a, 0), "space has no ink")
	dot := coverageSum(a, 1)
	dollar := coverageSum(a, a.Len()-1)
	assert.Greater(t, dot, 0.0)
	assert.Greater(t, dollar, dot, "the ramp runs sparse to dense")

	// Ink stays inside its own cell.
	img := a.Image()
	for i := 0; i < a.Len(); i++ {
		left := i * a.Cell()
		for y := 0; y < a.Cell(); y++ {
			require.Zero(t, img.AlphaAt(left, y).A, "glyph %q touches its left edge", a.Rune(i))
		}
	}
}

func TestGlyphAtlasIndex(t *testing.T) {
	t.Parallel()

	a, err := NewGlyphAtlas(" .:#", 16)
	require.NoError(t, err)

	assert.Equal(t, 0, a.Index(0))
	assert.Equal(t, 0, a.Index(0.2))
	assert.Equal(t, 1, a.Index(0.3))
	assert.Equal(t, 3, a.Index(1))
	assert.Equal(t, 3, a.Index(4))
	assert.Equal(t, 0, a.Index(-1))
}

func TestNewGlyphAtlasValidates(t *testing.T) {
	t.Parallel()

	_, err := NewGlyphAtlas("#", 16)
	assert.Error(t, err)
	_, err = NewGlyphAtlas(" #", 2)
	assert.Error(t, err)
}
