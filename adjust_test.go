package entropy

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func assertVec(t *testing.T, want, got Vec3, msgAndArgs ...interface{}) {
	t.Helper()
	assert.InDelta(t, want.R, got.R, 1e-9, msgAndArgs...)
	assert.InDelta(t, want.G, got.G, 1e-9, msgAndArgs...)
	assert.InDelta(t, want.B, got.B, 1e-9, msgAndArgs...)
}

func TestLuminance(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 0.299, Luminance(Vec3{1, 0, 0}), 1e-12)
	assert.InDelta(t, 0.587, Luminance(Vec3{0, 1, 0}), 1e-12)
	assert.InDelta(t, 0.114, Luminance(Vec3{0, 0, 1}), 1e-12)
	assert.InDelta(t, 1.0, Luminance(Splat(1)), 1e-12)
}

func TestBrightnessContrast(t *testing.T) {
	t.Parallel()

	assertVec(t, Splat(0.3), BrightnessContrast(Splat(0.3), 0, 1))
	assertVec(t, Splat(0.5), BrightnessContrast(Splat(0.5), 0, 1.5), "mid-gray is the contrast pivot")
	assertVec(t, Splat(0.8), BrightnessContrast(Splat(0.7), 0, 1.5))
	assertVec(t, Splat(0.9), BrightnessContrast(Splat(0.7), 0.2, 1))
	assertVec(t, Vec3{1, 0, 0.5}, BrightnessContrast(Vec3{1, 0, 0.5}, 0, 1.5), "result is clamped")
}

func TestGammaConvention(t *testing.T) {
	t.Parallel()

	// pow(x, 1/g): g=2 takes 0.25 to 0.5.
	assertVec(t, Splat(0.5), Gamma(Splat(0.25), 2))
	assertVec(t, Splat(0.25), Gamma(Splat(0.25), 1))

	got := Gamma(Vec3{-0.1, 0, 1}, 0)
	assert.False(t, math.IsNaN(got.R))
	assert.Equal(t, 0.0, got.R)
	assert.Equal(t, 1.0, got.B)
}

func TestSaturation(t *testing.T) {
	t.Parallel()

	c := Vec3{0.8, 0.2, 0.4}
	assertVec(t, c, Saturation(c, 1))
	assertVec(t, Splat(Luminance(c)), Saturation(c, 0))
}

func TestVibrance(t *testing.T) {
	t.Parallel()

	c := Vec3{0.8, 0.4, 0.4}
	assertVec(t, c, Vibrance(c, 0))

	spread := func(v Vec3) float64 { return v.Max() - math.Min(v.R, math.Min(v.G, v.B)) }
	assert.Greater(t, spread(Vibrance(c, 0.5)), spread(c), "positive vibrance saturates")
	assert.Less(t, spread(Vibrance(c, -0.5)), spread(c), "negative vibrance desaturates")

	gray := Splat(0.4)
	assertVec(t, gray, Vibrance(gray, 1), "gray has no saturation to boost")
}

func TestHueToRGB(t *testing.T) {
	t.Parallel()

	tests := []struct {
		hue  float64
		want Vec3
	}{
		{0, Vec3{1, 0, 0}},
		{60, Vec3{1, 1, 0}},
		{120, Vec3{0, 1, 0}},
		{180, Vec3{0, 1, 1}},
		{240, Vec3{0, 0, 1}},
		{300, Vec3{1, 0, 1}},
		{30, Vec3{1, 0.5, 0}},
		{360, Vec3{1, 0, 0}},
		{480, Vec3{0, 1, 0}},
		{-120, Vec3{0, 0, 1}},
	}
	for _, tt := range tests {
		assertVec(t, tt.want, HueToRGB(tt.hue), "hue %v", tt.hue)
	}
}

func TestLevelsGuardsZeroRange(t *testing.T) {
	t.Parallel()

	assertVec(t, Splat(0.5), Levels(Splat(0.5), 0, 1))
	assertVec(t, Splat(0.5), Levels(Splat(0.6), 0.2, 1))

	got := Levels(Splat(0.5), 0.5, 0.5)
	for _, ch := range []float64{got.R, got.G, got.B} {
		assert.False(t, math.IsNaN(ch) || math.IsInf(ch, 0))
		assert.GreaterOrEqual(t, ch, 0.0)
		assert.LessOrEqual(t, ch, 1.0)
	}
}

func TestShadowsHighlights(t *testing.T) {
	t.Parallel()

	dark, light := Splat(0.1), Splat(0.9)
	assertVec(t, dark, ShadowsHighlights(dark, 0, 0))

	assert.Greater(t, ShadowsHighlights(dark, 0.2, 0).R, dark.R)
	assertVec(t, light, ShadowsHighlights(light, 0.2, 0), "shadows leave highlights alone")
	assert.Less(t, ShadowsHighlights(light, 0, -0.2).R, light.R)
	assertVec(t, dark, ShadowsHighlights(dark, 0, -0.2), "highlights leave shadows alone")
}

func TestNeutralToneIsIdentity(t *testing.T) {
	t.Parallel()

	tone := NeutralTone()
	for _, c := range []Vec3{{0, 0, 0}, {1, 1, 1}, {0.2, 0.5, 0.9}, {0.75, 0.1, 0.33}} {
		assertVec(t, c, tone.Post(tone.Pre(c)))
	}
	assert.Equal(t, tone, DefaultParams().Adjust.Resolve())
}
