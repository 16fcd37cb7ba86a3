package entropy

import (
	"image/color"
	"math"
)

// Vec3 is a linear RGB triple with channels nominally in [0,1]. All pixel
// math in the pipelines runs on Vec3 and is converted to 8-bit only when a
// pixel is written.
type Vec3 struct {
	R, G, B float64
}

// Splat returns a Vec3 with every channel set to v.
func Splat(v float64) Vec3 {
	return Vec3{v, v, v}
}

// Vec3FromNRGBA converts an 8-bit color to a Vec3, dropping alpha.
func Vec3FromNRGBA(c color.NRGBA) Vec3 {
	return Vec3{float64(c.R) / 255, float64(c.G) / 255, float64(c.B) / 255}
}

// NRGBA converts v to an opaque 8-bit color. Channels are clamped and
// rounded; NaN maps to zero.
func (v Vec3) NRGBA() color.NRGBA {
	return color.NRGBA{R: toByte(v.R), G: toByte(v.G), B: toByte(v.B), A: 255}
}

func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.R + o.R, v.G + o.G, v.B + o.B} }

func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v.R - o.R, v.G - o.G, v.B - o.B} }

func (v Vec3) Mul(o Vec3) Vec3 { return Vec3{v.R * o.R, v.G * o.G, v.B * o.B} }

func (v Vec3) Scale(k float64) Vec3 { return Vec3{v.R * k, v.G * k, v.B * k} }

func (v Vec3) AddScalar(k float64) Vec3 { return Vec3{v.R + k, v.G + k, v.B + k} }

// Max returns the largest channel.
func (v Vec3) Max() float64 { return math.Max(v.R, math.Max(v.G, v.B)) }

// Clamp clamps every channel to [0,1].
func (v Vec3) Clamp() Vec3 {
	return Vec3{clamp01(v.R), clamp01(v.G), clamp01(v.B)}
}

// Map applies f to every channel.
func (v Vec3) Map(f func(float64) float64) Vec3 {
	return Vec3{f(v.R), f(v.G), f(v.B)}
}

// Mix linearly interpolates between a and b by t. t is not clamped.
func Mix(a, b Vec3, t float64) Vec3 {
	return Vec3{mix(a.R, b.R, t), mix(a.G, b.G, t), mix(a.B, b.B, t)}
}

// DistanceSq is the squared Euclidean distance between two colors.
func (v Vec3) DistanceSq(o Vec3) float64 {
	d := v.Sub(o)
	return d.R*d.R + d.G*d.G + d.B*d.B
}

func mix(a, b, t float64) float64 {
	return a*(1-t) + b*t
}

func clamp01(x float64) float64 {
	if x < 0 || math.IsNaN(x) {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

func fract(x float64) float64 {
	return x - math.Floor(x)
}

// step returns 0 when x < edge and 1 otherwise.
func step(edge, x float64) float64 {
	if x < edge {
		return 0
	}
	return 1
}

func smoothstep(e0, e1, x float64) float64 {
	t := clamp01((x - e0) / (e1 - e0))
	return t * t * (3 - 2*t)
}

// floorMod returns x mod n in [0, n) for any sign of x.
func floorMod(x, n int) int {
	m := x % n
	if m < 0 {
		m += n
	}
	return m
}

func toByte(x float64) uint8 {
	return uint8(math.Round(clamp01(x) * 255))
}
