package entropy

import (
	"image/color"
	"math"
)

// asciiShader renders the image as a grid of glyphs. The column count is
// fixed; the row count follows the fitted region of the current target so
// cells stay square there. Each cell takes the luminance of the single
// source pixel under its centre rather than an average over its area.
type asciiShader struct {
	src   *SourceImage
	u     TerminalUniforms
	atlas *GlyphAtlas
	cols  float64
	rows  float64
}

// GridRows returns the glyph row count for a fitted region of regionW by
// regionH target pixels.
func GridRows(cols int, regionW, regionH, pixelAspect float64) int {
	rows := math.Round(float64(cols) * regionH / (regionW * pixelAspect))
	return max(1, int(rows))
}

func newASCIIShader(src *SourceImage, u TerminalUniforms, atlas *GlyphAtlas, m containMap) *asciiShader {
	rw, rh := m.region()
	return &asciiShader{
		src:   src,
		u:     u,
		atlas: atlas,
		cols:  float64(u.Columns),
		rows:  float64(GridRows(u.Columns, rw, rh, u.PixelAspect)),
	}
}

func (a *asciiShader) shade(u, v float64, _, _ int) color.NRGBA {
	gx, gy := u*a.cols, v*a.rows
	cx := math.Min(math.Floor(gx), a.cols-1)
	cy := math.Min(math.Floor(gy), a.rows-1)

	sx := int(math.Floor((cx + 0.5) / a.cols * float64(a.src.Width)))
	sy := int(math.Floor((cy + 0.5) / a.rows * float64(a.src.Height)))
	glyph := a.atlas.Index(Luminance(a.src.At(sx, sy)))
	mask := a.atlas.Coverage(glyph, gx-cx, gy-cy)

	fg := a.u.Color
	switch a.u.Background {
	case BackgroundBlack:
		return fg.Scale(mask).NRGBA()
	case BackgroundWhite:
		return Mix(Splat(1), fg, mask).NRGBA()
	default:
		n := fg.NRGBA()
		n.A = toByte(mask)
		return n
	}
}
