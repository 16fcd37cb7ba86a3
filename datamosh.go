package entropy

import (
	"image/color"
	"math"
)

const (
	// moshBaseBlocks is the block count across the longer image side at
	// block scale 1.
	moshBaseBlocks = 32
	// seedModulus bounds the seed hash so the sine noise keeps precision.
	seedModulus = 65521
	// moshReach is the largest displacement as a fraction of the image.
	moshReach = 0.1
)

// Noise channels. Each decision draws from its own stream.
const (
	saltRegion = iota + 1
	saltDensity
	saltDisplaceX
	saltDisplaceY
	saltGrain
	saltInvert
)

// SeedHash reduces a seed string to [0, 65521) with a base-31 polynomial
// rolling hash over its runes.
func SeedHash(seed string) int {
	h := 0
	for _, r := range seed {
		h = (h*31 + int(r)) % seedModulus
	}
	return h
}

// moshShader is the block-displacement pipeline. Every decision is a pure
// function of the image pixel, the block it falls in and the seed.
type moshShader struct {
	src        *SourceImage
	u          Uniforms
	seedX      float64
	seedY      float64
	blockPx    float64
	regionSize float64
}

func newMoshShader(src *SourceImage, u Uniforms) *moshShader {
	s := float64(u.Mosh.Seed)
	blockPx := math.Max(1, float64(max(src.Width, src.Height))/u.Mosh.BlockCount)
	return &moshShader{
		src:        src,
		u:          u,
		seedX:      s * 0.0137,
		seedY:      s * 0.0291,
		blockPx:    blockPx,
		regionSize: blockPx * 4,
	}
}

func (m *moshShader) rand(x, y float64, salt int) float64 {
	k := float64(salt)
	return Hash2(x+m.seedX+k*17.13, y+m.seedY+k*7.31)
}

// blockSize returns the block edge for pixel (ix, iy). Under size
// variation, low-frequency regions get coarser or finer blocks.
func (m *moshShader) blockSize(ix, iy int) float64 {
	sv := m.u.Mosh.SizeVariation
	if sv <= 0 {
		return m.blockPx
	}
	rx := math.Floor(float64(ix) / m.regionSize)
	ry := math.Floor(float64(iy) / m.regionSize)
	n := m.rand(rx, ry, saltRegion)
	switch {
	case n < sv:
		return m.blockPx * 2
	case n > 1-sv:
		return math.Max(1, m.blockPx*0.5)
	}
	return m.blockPx
}

func (m *moshShader) shade(_, _ float64, ix, iy int) color.NRGBA {
	mu := m.u.Mosh
	bs := m.blockSize(ix, iy)
	bx := math.Floor(float64(ix) / bs)
	by := math.Floor(float64(iy) / bs)

	var dx, dy float64
	if m.rand(bx, by, saltDensity) >= 1-mu.Density {
		reach := mu.Strength * moshReach
		dx = (m.rand(bx, by, saltDisplaceX) - 0.5) * 2 * reach * float64(m.src.Width)
		dy = (m.rand(bx, by, saltDisplaceY) - 0.5) * 2 * reach * float64(m.src.Height)
	}

	sx := int(math.Floor(float64(ix) + 0.5 + dx))
	sy := int(math.Floor(float64(iy) + 0.5 + dy))
	c := m.src.At(sx, sy)

	grain := (m.rand(float64(ix), float64(iy), saltGrain) - 0.5) * mu.Strength * moshReach
	c = c.AddScalar(grain)

	if m.rand(bx, by, saltInvert) < mu.ColorNoise {
		c = Splat(1).Sub(c)
	}
	return applyColorMode(c.Clamp(), m.u).NRGBA()
}

// applyColorMode maps c through the active color mode without dithering.
func applyColorMode(c Vec3, u Uniforms) Vec3 {
	switch u.Mode {
	case ColorGrayscale:
		return Splat(Luminance(c))
	case ColorTint:
		return u.Tint.Scale(Luminance(c))
	case ColorPalette:
		return u.Palette.Smooth(Luminance(c))
	}
	return c
}
