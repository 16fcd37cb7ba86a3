package entropy

import (
	"image"
	"image/color"
	"math"
)

// ditherShader is the ordered and error-diffusion dither pipeline.
//
// Ordered: levels, shadows/highlights, brightness/contrast, color mode and
// dither, gamma, vibrance, saturation.
//
// Error diffusion: the cached diffusion of the untouched source is mixed
// with the source by strength, then runs the same tone stages. Tone cannot
// precede diffusion because the cache is keyed only on image, mode and
// palette.
type ditherShader struct {
	src *SourceImage
	u   Uniforms
	// fs is the diffused raster, set only for AlgorithmFloydSteinberg.
	fs *image.NRGBA
	// offset is the aberration shift in image pixels.
	offset float64
}

func newDitherShader(src *SourceImage, u Uniforms, fs *image.NRGBA) *ditherShader {
	return &ditherShader{
		src:    src,
		u:      u,
		fs:     fs,
		offset: u.Dither.Aberration * float64(src.Width),
	}
}

func (d *ditherShader) shade(_, _ float64, ix, iy int) color.NRGBA {
	var c Vec3
	if d.offset > 0 {
		shift := func(dx float64) int {
			return int(math.Floor(float64(ix) + 0.5 + dx))
		}
		c = Vec3{
			R: d.dithered(shift(d.offset), iy, ix, iy).R,
			G: d.dithered(ix, iy, ix, iy).G,
			B: d.dithered(shift(-d.offset), iy, ix, iy).B,
		}
	} else {
		c = d.dithered(ix, iy, ix, iy)
	}
	return d.u.Tone.Post(c).NRGBA()
}

// dithered returns the color of source pixel (sx, sy) after the pre-dither
// tone stages and quantization with the threshold at dither pixel (dx, dy).
func (d *ditherShader) dithered(sx, sy, dx, dy int) Vec3 {
	u := d.u
	if d.fs != nil {
		sx = min(max(sx, 0), d.src.Width-1)
		sy = min(max(sy, 0), d.src.Height-1)
		q := Vec3FromNRGBA(d.fs.NRGBAAt(sx, sy))
		if u.Mode == ColorTint {
			q = q.Mul(u.Tint)
		}
		c := Mix(d.src.At(sx, sy), q, u.Dither.Strength)
		return u.Tone.Pre(c)
	}

	c := u.Tone.Pre(d.src.At(sx, sy))
	strength := u.Dither.Strength

	if u.Mode == ColorPalette {
		gray := Luminance(c)
		if strength <= 0 {
			return u.Palette.Smooth(gray)
		}
		return u.Palette.Dither(gray, u.Dither.Field.At(dx, dy), strength)
	}

	if strength > 0 {
		threshold := mix(0.5, u.Dither.Field.At(dx, dy), strength)
		switch u.Mode {
		case ColorGrayscale, ColorTint:
			c = Quantize(Splat(Luminance(c)), 1, threshold)
		default:
			c = Quantize(c, 2, threshold)
		}
	} else if u.Mode == ColorGrayscale || u.Mode == ColorTint {
		c = Splat(Luminance(c))
	}
	if u.Mode == ColorTint {
		c = c.Mul(u.Tint)
	}
	return c
}
