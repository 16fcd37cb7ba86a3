package entropy

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeClampsAndReplacesNaN(t *testing.T) {
	t.Parallel()

	p := DefaultParams()
	p.Tool = Tool(9)
	p.Color.Mode = ColorMode(-1)
	p.Color.TintHue = -30
	p.Adjust.Brightness = math.NaN()
	p.Adjust.Contrast = 500
	p.Adjust.Gamma = -4
	p.Dither.Algorithm = Algorithm(42)
	p.Dither.Strength = math.Inf(1)
	p.Dither.Scale = 0
	p.Mosh.BlockScale = math.NaN()
	p.Mosh.SizeVariation = 0.9
	p.Terminal.Density = 2
	p.Terminal.Background = Background(7)
	p.Terminal.PixelAspect = math.Inf(-1)

	n := p.Normalize()
	d := DefaultParams()
	assert.Equal(t, d.Tool, n.Tool)
	assert.Equal(t, d.Color.Mode, n.Color.Mode)
	assert.Equal(t, 330.0, n.Color.TintHue)
	assert.Equal(t, float64(AdjustNeutral), n.Adjust.Brightness)
	assert.Equal(t, float64(AdjustMax), n.Adjust.Contrast)
	assert.Equal(t, float64(AdjustMin), n.Adjust.Gamma)
	assert.Equal(t, d.Dither.Algorithm, n.Dither.Algorithm)
	assert.Equal(t, 1.0, n.Dither.Strength)
	assert.Equal(t, 1.0, n.Dither.Scale)
	assert.Equal(t, d.Mosh.BlockScale, n.Mosh.BlockScale)
	assert.Equal(t, 0.5, n.Mosh.SizeVariation)
	assert.Equal(t, 10, n.Terminal.Density)
	assert.Equal(t, d.Terminal.Background, n.Terminal.Background)
	assert.Equal(t, 0.25, n.Terminal.PixelAspect)

	// Normalize is idempotent.
	assert.Equal(t, n, n.Normalize())
}

func TestNormalizeSeed(t *testing.T) {
	t.Parallel()

	p := DefaultParams()
	p.Mosh.Seed = ""
	assert.Equal(t, DefaultSeed, p.Normalize().Mosh.Seed)

	p.Mosh.Seed = "ÆØÅ-0123456789-abcdef"
	assert.Equal(t, "ÆØÅ-0123456789-a", p.Normalize().Mosh.Seed)
}

func TestResolveDefaults(t *testing.T) {
	t.Parallel()

	u, err := DefaultParams().Resolve()
	require.NoError(t, err)

	assert.Equal(t, NeutralTone(), u.Tone)
	assert.Nil(t, u.Palette, "full color mode does not read the palette")
	assert.Equal(t, AlgorithmBayer8, u.Dither.Field.Algorithm)
	assert.InDelta(t, math.Pi/4, u.Dither.Field.Angle, 1e-12)
	assert.Equal(t, 0.0, u.Dither.Aberration)
	assert.Equal(t, SeedHash(DefaultSeed), u.Mosh.Seed)
	assert.Equal(t, 32.0, u.Mosh.BlockCount)
	assert.Equal(t, 83, u.Terminal.Columns)
	assertVec(t, HueToRGB(20), u.Tint)

	p := DefaultParams()
	p.Tool = ToolTerminal
	u, err = p.Resolve()
	require.NoError(t, err)
	assert.Equal(t, Vec3{0, 1, 0}, u.Terminal.Color)

	p = DefaultParams()
	p.Color.Mode = ColorPalette
	u, err = p.Resolve()
	require.NoError(t, err)
	assert.Equal(t, DefaultPalette(), u.Palette)
}

func TestResolveAdjustRanges(t *testing.T) {
	t.Parallel()

	lo := AdjustParams{}.Resolve()
	hi := AdjustParams{
		Brightness: 200, Contrast: 200, Shadows: 200, Highlights: 200,
		Blacks: 200, Whites: 200, Gamma: 200, Saturation: 200, Vibrance: 200,
	}.Resolve()

	assert.InDelta(t, -0.2, lo.Brightness, 1e-12)
	assert.InDelta(t, 0.2, hi.Brightness, 1e-12)
	assert.InDelta(t, 0.5, lo.Contrast, 1e-12)
	assert.InDelta(t, 1.5, hi.Contrast, 1e-12)
	assert.InDelta(t, -0.5, lo.Shadows, 1e-12)
	assert.InDelta(t, 0.5, hi.Highlights, 1e-12)
	assert.InDelta(t, 0.25, lo.BlackPoint, 1e-12)
	assert.InDelta(t, -0.25, hi.BlackPoint, 1e-12)
	assert.InDelta(t, 1.25, lo.WhitePoint, 1e-12)
	assert.InDelta(t, 0.75, hi.WhitePoint, 1e-12)
	assert.Equal(t, minGamma, lo.Gamma)
	assert.Equal(t, 2.0, hi.Gamma)
	assert.Equal(t, 0.0, lo.Saturation)
	assert.Equal(t, 2.0, hi.Saturation)
	assert.Equal(t, -1.0, lo.Vibrance)
	assert.Equal(t, 1.0, hi.Vibrance)
}

func TestResolveColorErrors(t *testing.T) {
	t.Parallel()

	p := DefaultParams()
	p.Color.Mode = ColorPalette
	p.Color.Palette = make([]string, MaxPaletteSize+1)
	for i := range p.Color.Palette {
		p.Color.Palette[i] = "#000000"
	}
	_, err := p.Resolve()
	assert.ErrorIs(t, err, ErrPaletteSize)

	p = DefaultParams()
	p.Tool = ToolTerminal
	p.Terminal.Color = "chartreuse"
	_, err = p.Resolve()
	assert.ErrorIs(t, err, ErrInvalidColor)

	p = DefaultParams()
	p.Color.Mode = ColorPalette
	p.Color.Preset = "CGA"
	u, err := p.Resolve()
	require.NoError(t, err)
	assert.Equal(t, []string{"#000000", "#55ffff", "#ff55ff", "#ffffff"}, u.Palette.Hex())

	p.Color.Palette = []string{"#111", "#eee"}
	u, err = p.Resolve()
	require.NoError(t, err)
	assert.Equal(t, []string{"#111111", "#eeeeee"}, u.Palette.Hex(), "explicit palette wins over preset")
}

func TestEnumText(t *testing.T) {
	t.Parallel()

	for i, name := range AlgorithmNames() {
		var a Algorithm
		require.NoError(t, a.UnmarshalText([]byte(name)))
		assert.Equal(t, Algorithm(i), a)
		text, err := a.MarshalText()
		require.NoError(t, err)
		assert.Equal(t, name, string(text))
	}

	var m ColorMode
	require.NoError(t, m.UnmarshalText([]byte(" PALETTE ")))
	assert.Equal(t, ColorPalette, m)

	tool := ToolTerminal
	assert.Error(t, tool.UnmarshalText([]byte("paint")))
	assert.Equal(t, ToolTerminal, tool, "failed parse leaves the value alone")

	assert.Equal(t, "invalid(9)", Background(9).String())
}
