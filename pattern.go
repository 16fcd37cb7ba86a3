package entropy

import "math"

// Canonical ordered-dither matrices, row-major.
var (
	bayer2 = [4]int{
		0, 2,
		3, 1,
	}
	bayer4 = [16]int{
		0, 8, 2, 10,
		12, 4, 14, 6,
		3, 11, 1, 9,
		15, 7, 13, 5,
	}
	bayer8 = [64]int{
		0, 32, 8, 40, 2, 34, 10, 42,
		48, 16, 56, 24, 50, 18, 58, 26,
		12, 44, 4, 36, 14, 46, 6, 38,
		60, 28, 52, 20, 62, 30, 54, 22,
		3, 35, 11, 43, 1, 33, 9, 41,
		51, 19, 59, 27, 49, 17, 57, 25,
		15, 47, 7, 39, 13, 45, 5, 37,
		63, 31, 55, 23, 61, 29, 53, 21,
	}
)

// Halftone cell densities in cycles per dither coordinate.
const (
	halftoneDotScale  = 0.2
	halftoneLineScale = 0.3
	clusteredAngle    = math.Pi / 4
)

// bayer returns the centred threshold (table[i]+0.5)/N² for coordinate
// (x, y). Centring keeps every threshold strictly inside (0,1), so a value
// lying exactly on a level boundary splits evenly across the matrix.
func bayer(table []int, n, x, y int) float64 {
	i := floorMod(y, n)*n + floorMod(x, n)
	return (float64(table[i]) + 0.5) / float64(n*n)
}

// Bayer2 returns the 2x2 ordered-dither threshold at (x, y).
func Bayer2(x, y int) float64 { return bayer(bayer2[:], 2, x, y) }

// Bayer4 returns the 4x4 ordered-dither threshold at (x, y).
func Bayer4(x, y int) float64 { return bayer(bayer4[:], 4, x, y) }

// Bayer8 returns the 8x8 ordered-dither threshold at (x, y).
func Bayer8(x, y int) float64 { return bayer(bayer8[:], 8, x, y) }

// Hash2 is the classic sine hash fract(sin(dot(p, (12.9898, 78.233))) *
// 43758.5453). It is deterministic per coordinate and returns [0,1).
func Hash2(x, y float64) float64 {
	return fract(math.Sin(x*12.9898+y*78.233) * 43758.5453)
}

func rotate(x, y, angle float64) (float64, float64) {
	s, c := math.Sincos(angle)
	return c*x - s*y, s*x + c*y
}

// Clustered evaluates the 4x4 Bayer matrix on the coordinate rotated by
// 45 degrees, which groups thresholds into diagonal clusters.
func Clustered(x, y int) float64 {
	rx, ry := rotate(float64(x), float64(y), clusteredAngle)
	return Bayer4(int(math.Floor(rx)), int(math.Floor(ry)))
}

// HalftoneDot returns 1.5 times the distance from (x, y) to the nearest
// centre of a grid rotated by angle, clamped to [0,1].
func HalftoneDot(x, y, angle, scale float64) float64 {
	px, py := rotate(x*scale, y*scale, angle)
	dx := px - math.Floor(px+0.5)
	dy := py - math.Floor(py+0.5)
	return clamp01(math.Hypot(dx, dy) * 1.5)
}

// HalftoneLine returns a sine band along the rotated y axis in [0,1].
func HalftoneLine(x, y, angle, scale float64) float64 {
	_, py := rotate(x*scale, y*scale, angle)
	return math.Sin(py*math.Pi)*0.5 + 0.5
}

// Crosshatch averages two halftone line patterns at +angle and -angle.
func Crosshatch(x, y, angle, scale float64) float64 {
	return (HalftoneLine(x, y, angle, scale) + HalftoneLine(x, y, -angle, scale)) * 0.5
}

// ThresholdField evaluates one dither algorithm in image space.
type ThresholdField struct {
	Algorithm Algorithm
	// Angle is the halftone rotation in radians.
	Angle float64
	// Scale is the pattern cell size in image pixels.
	Scale float64
}

// At returns the threshold in [0,1] for image pixel (ix, iy). Matrix and
// hash patterns use the dither coordinate floor(i/Scale); halftones scale
// their density by 1/Scale.
func (f ThresholdField) At(ix, iy int) float64 {
	scale := f.Scale
	if scale < 1 {
		scale = 1
	}
	x := int(math.Floor(float64(ix) / scale))
	y := int(math.Floor(float64(iy) / scale))
	fx, fy := float64(ix), float64(iy)

	switch f.Algorithm {
	case AlgorithmBayer2:
		return Bayer2(x, y)
	case AlgorithmBayer4:
		return Bayer4(x, y)
	case AlgorithmBayer8:
		return Bayer8(x, y)
	case AlgorithmRandom:
		return Hash2(float64(x), float64(y))
	case AlgorithmClustered:
		return Clustered(x, y)
	case AlgorithmHalftoneDot:
		return HalftoneDot(fx, fy, f.Angle, halftoneDotScale/scale)
	case AlgorithmHalftoneLine:
		return HalftoneLine(fx, fy, f.Angle, halftoneLineScale/scale)
	case AlgorithmCrosshatch:
		return Crosshatch(fx, fy, f.Angle, halftoneLineScale/scale)
	default:
		return 0.5
	}
}

// Quantize rounds each channel of c to one of levels+1 evenly spaced values,
// choosing the upper one when the fractional position reaches threshold.
func Quantize(c Vec3, levels, threshold float64) Vec3 {
	return c.Map(func(x float64) float64 {
		s := x * levels
		lo := math.Floor(s) / levels
		hi := math.Ceil(s) / levels
		return mix(lo, hi, step(threshold, fract(s)))
	})
}
