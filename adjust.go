package entropy

import "math"

// Luminance weights, ITU-R BT.601.
const (
	lumR = 0.299
	lumG = 0.587
	lumB = 0.114
)

// Luminance returns the perceptual gray value of c.
func Luminance(c Vec3) float64 {
	return lumR*c.R + lumG*c.G + lumB*c.B
}

// BrightnessContrast scales c around mid-gray by contrast, offsets it by
// brightness and clamps the result to [0,1].
func BrightnessContrast(c Vec3, brightness, contrast float64) Vec3 {
	return c.AddScalar(-0.5).Scale(contrast).AddScalar(0.5 + brightness).Clamp()
}

// Gamma applies pow(c, 1/g). g > 1 brightens mid-tones. Negative channels
// are treated as zero so the result is never NaN.
func Gamma(c Vec3, g float64) Vec3 {
	inv := 1 / math.Max(g, minGamma)
	return c.Map(func(x float64) float64 {
		return math.Pow(math.Max(x, 0), inv)
	})
}

// Saturation mixes c with its luminance. s = 0 is gray, s = 1 is identity.
func Saturation(c Vec3, s float64) Vec3 {
	return Mix(Splat(Luminance(c)), c, s)
}

// Vibrance pushes channels away from the brightest one in proportion to how
// saturated the pixel already is. Positive v saturates, negative desaturates.
func Vibrance(c Vec3, v float64) Vec3 {
	avg := (c.R + c.G + c.B) / 3
	mx := c.Max()
	amt := (mx - avg) * -3 * v
	return Mix(c, Splat(mx), amt)
}

// HueToRGB maps a hue angle in degrees onto the fully saturated color wheel
// using 60 degree sectors. The angle wraps modulo 360.
func HueToRGB(hue float64) Vec3 {
	h := math.Mod(hue, 360)
	if h < 0 {
		h += 360
	}
	h /= 60
	x := 1 - math.Abs(math.Mod(h, 2)-1)

	switch {
	case h < 1:
		return Vec3{1, x, 0}
	case h < 2:
		return Vec3{x, 1, 0}
	case h < 3:
		return Vec3{0, 1, x}
	case h < 4:
		return Vec3{0, x, 1}
	case h < 5:
		return Vec3{x, 0, 1}
	default:
		return Vec3{1, 0, x}
	}
}

// minLevelsRange keeps the black/white point remap finite.
const minLevelsRange = 1e-4

// Levels remaps [blackPoint, whitePoint] onto [0,1] and clamps.
func Levels(c Vec3, blackPoint, whitePoint float64) Vec3 {
	span := math.Max(whitePoint-blackPoint, minLevelsRange)
	return c.AddScalar(-blackPoint).Scale(1 / span).Clamp()
}

// ShadowsHighlights adds shadows to the dark end and highlights to the
// bright end of the tonal range, weighted by smoothstep of luminance.
func ShadowsHighlights(c Vec3, shadows, highlights float64) Vec3 {
	lum := Luminance(c)
	sw := 1 - smoothstep(0, 0.5, lum)
	hw := smoothstep(0.5, 1, lum)
	return c.AddScalar(shadows*sw + highlights*hw)
}

// Tone holds resolved adjustment uniforms. The zero value is not neutral;
// use NeutralTone or Adjust.Resolve.
type Tone struct {
	Brightness float64
	Contrast   float64
	Shadows    float64
	Highlights float64
	BlackPoint float64
	WhitePoint float64
	Gamma      float64
	Saturation float64
	Vibrance   float64
}

// NeutralTone returns uniforms that leave every pixel unchanged.
func NeutralTone() Tone {
	return Tone{Contrast: 1, WhitePoint: 1, Gamma: 1, Saturation: 1}
}

// Pre runs the stages that precede quantization:
// levels, shadows/highlights, brightness/contrast.
func (t Tone) Pre(c Vec3) Vec3 {
	c = Levels(c, t.BlackPoint, t.WhitePoint)
	c = ShadowsHighlights(c, t.Shadows, t.Highlights)
	return BrightnessContrast(c, t.Brightness, t.Contrast)
}

// Post runs the stages that follow quantization: gamma, vibrance,
// saturation. The result is clamped.
func (t Tone) Post(c Vec3) Vec3 {
	c = Gamma(c, t.Gamma)
	c = Vibrance(c, t.Vibrance)
	return Saturation(c, t.Saturation).Clamp()
}
