package entropy

import (
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/samber/lo"
)

// Adjustment sliders share one UI domain with 100 as the neutral position.
const (
	AdjustMin     = 0
	AdjustMax     = 200
	AdjustNeutral = 100
)

const (
	minGamma = 0.05

	// DefaultSeed is the datamosh seed used when none is given.
	DefaultSeed = "ENTROPY"
	// MaxSeedRunes bounds the seed string.
	MaxSeedRunes = 16

	// DefaultTerminalColor is the glyph color used when none is given.
	DefaultTerminalColor = "#00ff00"
)

// Params is the full parameter set for one render. It is a plain value:
// callers own it and pass a snapshot to every render call.
type Params struct {
	Tool     Tool           `toml:"tool"`
	Color    ColorParams    `toml:"color"`
	Adjust   AdjustParams   `toml:"adjust"`
	Dither   DitherParams   `toml:"dither"`
	Mosh     MoshParams     `toml:"mosh"`
	Terminal TerminalParams `toml:"terminal"`
}

// ColorParams controls the output color mapping shared by the dither and
// datamosh pipelines.
type ColorParams struct {
	Mode ColorMode `toml:"mode"`
	// TintHue is in degrees and wraps modulo 360.
	TintHue float64 `toml:"tint_hue"`
	// Palette lists colors darkest first. When empty, Preset is used.
	Palette []string `toml:"palette"`
	Preset  string   `toml:"preset"`
}

// AdjustParams are tone sliders in [AdjustMin, AdjustMax].
type AdjustParams struct {
	Brightness float64 `toml:"brightness"`
	Contrast   float64 `toml:"contrast"`
	Shadows    float64 `toml:"shadows"`
	Highlights float64 `toml:"highlights"`
	Blacks     float64 `toml:"blacks"`
	Whites     float64 `toml:"whites"`
	Gamma      float64 `toml:"gamma"`
	Saturation float64 `toml:"saturation"`
	Vibrance   float64 `toml:"vibrance"`
}

// DitherParams configure the dither tool.
type DitherParams struct {
	Algorithm Algorithm `toml:"algorithm"`
	Strength  float64   `toml:"strength"`
	// Scale is the pattern cell size in image pixels.
	Scale float64 `toml:"scale"`
	// HalftoneAngle is in degrees.
	HalftoneAngle float64 `toml:"halftone_angle"`
	// Aberration offsets the red and blue channels horizontally by
	// Aberration percent of the image width.
	Aberration float64 `toml:"aberration"`
}

// MoshParams configure the datamosh tool. Seed is hashed by SeedHash.
type MoshParams struct {
	Seed          string  `toml:"seed"`
	Strength      float64 `toml:"strength"`
	BlockScale    float64 `toml:"block_scale"`
	SizeVariation float64 `toml:"size_variation"`
	Density       float64 `toml:"density"`
	ColorNoise    float64 `toml:"color_noise"`
}

// TerminalParams configure the ASCII terminal tool.
type TerminalParams struct {
	// Density is the number of glyph columns.
	Density     int        `toml:"density"`
	Color       string     `toml:"color"`
	Background  Background `toml:"background"`
	PixelAspect float64    `toml:"pixel_aspect"`
}

// DefaultParams returns the parameter set a fresh session starts with.
func DefaultParams() Params {
	return Params{
		Tool: ToolDither,
		Color: ColorParams{
			Mode:    ColorFull,
			TintHue: 20,
			Preset:  DefaultPaletteName,
		},
		Adjust: AdjustParams{
			Brightness: AdjustNeutral,
			Contrast:   AdjustNeutral,
			Shadows:    AdjustNeutral,
			Highlights: AdjustNeutral,
			Blacks:     AdjustNeutral,
			Whites:     AdjustNeutral,
			Gamma:      AdjustNeutral,
			Saturation: AdjustNeutral,
			Vibrance:   AdjustNeutral,
		},
		Dither: DitherParams{
			Algorithm:     AlgorithmBayer8,
			Strength:      0.5,
			Scale:         1,
			HalftoneAngle: 45,
		},
		Mosh: MoshParams{
			Seed:       DefaultSeed,
			Strength:   0.5,
			BlockScale: 1,
			Density:    1,
		},
		Terminal: TerminalParams{
			Density:     83,
			Color:       DefaultTerminalColor,
			Background:  BackgroundTransparent,
			PixelAspect: 1,
		},
	}
}

// clampOr clamps v into [lo, hi], substituting def for NaN.
func clampOr(v, min, max, def float64) float64 {
	if math.IsNaN(v) {
		return def
	}
	return lo.Clamp(v, min, max)
}

func clampAdjust(v float64) float64 {
	return clampOr(v, AdjustMin, AdjustMax, AdjustNeutral)
}

// Normalize returns a copy of p with every enum inside its domain, every
// number clamped to its range and NaN replaced by the default. Color
// strings are not validated here; Resolve reports those.
func (p Params) Normalize() Params {
	d := DefaultParams()

	if !p.Tool.valid() {
		p.Tool = d.Tool
	}
	if !p.Color.Mode.valid() {
		p.Color.Mode = d.Color.Mode
	}
	if !p.Dither.Algorithm.valid() {
		p.Dither.Algorithm = d.Dither.Algorithm
	}
	if !p.Terminal.Background.valid() {
		p.Terminal.Background = d.Terminal.Background
	}

	if math.IsNaN(p.Color.TintHue) || math.IsInf(p.Color.TintHue, 0) {
		p.Color.TintHue = d.Color.TintHue
	}
	p.Color.TintHue = math.Mod(p.Color.TintHue, 360)
	if p.Color.TintHue < 0 {
		p.Color.TintHue += 360
	}
	p.Color.Palette = append([]string(nil), p.Color.Palette...)

	a := &p.Adjust
	a.Brightness = clampAdjust(a.Brightness)
	a.Contrast = clampAdjust(a.Contrast)
	a.Shadows = clampAdjust(a.Shadows)
	a.Highlights = clampAdjust(a.Highlights)
	a.Blacks = clampAdjust(a.Blacks)
	a.Whites = clampAdjust(a.Whites)
	a.Gamma = clampAdjust(a.Gamma)
	a.Saturation = clampAdjust(a.Saturation)
	a.Vibrance = clampAdjust(a.Vibrance)

	t := &p.Dither
	t.Strength = clampOr(t.Strength, 0, 1, d.Dither.Strength)
	t.Scale = clampOr(t.Scale, 1, 16, d.Dither.Scale)
	t.HalftoneAngle = clampOr(t.HalftoneAngle, 0, 180, d.Dither.HalftoneAngle)
	t.Aberration = clampOr(t.Aberration, 0, 1, d.Dither.Aberration)

	m := &p.Mosh
	if m.Seed == "" {
		m.Seed = d.Mosh.Seed
	}
	if utf8.RuneCountInString(m.Seed) > MaxSeedRunes {
		m.Seed = string([]rune(m.Seed)[:MaxSeedRunes])
	}
	m.Strength = clampOr(m.Strength, 0, 1, d.Mosh.Strength)
	m.BlockScale = clampOr(m.BlockScale, 0.01, 5, d.Mosh.BlockScale)
	m.SizeVariation = clampOr(m.SizeVariation, 0, 0.5, d.Mosh.SizeVariation)
	m.Density = clampOr(m.Density, 0, 1, d.Mosh.Density)
	m.ColorNoise = clampOr(m.ColorNoise, 0, 1, d.Mosh.ColorNoise)

	tp := &p.Terminal
	tp.Density = lo.Clamp(tp.Density, 10, 500)
	if tp.Color == "" {
		tp.Color = d.Terminal.Color
	}
	tp.PixelAspect = clampOr(tp.PixelAspect, 0.25, 4, d.Terminal.PixelAspect)

	return p
}

// Uniforms are the resolved, render-ready values derived from Params.
type Uniforms struct {
	Tool     Tool
	Mode     ColorMode
	Tint     Vec3
	Palette  Palette
	Tone     Tone
	Dither   DitherUniforms
	Mosh     MoshUniforms
	Terminal TerminalUniforms
}

// DitherUniforms are the resolved dither settings.
type DitherUniforms struct {
	Algorithm Algorithm
	Strength  float64
	Field     ThresholdField
	// Aberration is the channel offset as a fraction of image width.
	Aberration float64
}

// MoshUniforms are the resolved datamosh settings. BlockCount is the number
// of blocks across the longer image side.
type MoshUniforms struct {
	Seed          int
	Strength      float64
	BlockCount    float64
	SizeVariation float64
	Density       float64
	ColorNoise    float64
}

// TerminalUniforms are the resolved terminal settings.
type TerminalUniforms struct {
	Columns     int
	Color       Vec3
	Background  Background
	PixelAspect float64
}

// Resolve normalizes p and maps slider units to render uniforms. Color
// settings are parsed only when the selected tool reads them: the palette
// for palette mode under dither or datamosh, the glyph color under
// terminal. Unused ones are left zero. It fails with ErrInvalidColor or
// ErrPaletteSize for bad color settings that are in use.
func (p Params) Resolve() (Uniforms, error) {
	p = p.Normalize()

	var (
		palette Palette
		fg      Vec3
		err     error
	)
	if p.Tool == ToolTerminal {
		fg, err = ParseColor(p.Terminal.Color)
		if err != nil {
			return Uniforms{}, fmt.Errorf("terminal color: %w", err)
		}
	} else if p.Color.Mode == ColorPalette {
		palette, err = p.Color.palette()
		if err != nil {
			return Uniforms{}, err
		}
	}

	return Uniforms{
		Tool:    p.Tool,
		Mode:    p.Color.Mode,
		Tint:    HueToRGB(p.Color.TintHue),
		Palette: palette,
		Tone:    p.Adjust.Resolve(),
		Dither: DitherUniforms{
			Algorithm: p.Dither.Algorithm,
			Strength:  p.Dither.Strength,
			Field: ThresholdField{
				Algorithm: p.Dither.Algorithm,
				Angle:     p.Dither.HalftoneAngle * math.Pi / 180,
				Scale:     p.Dither.Scale,
			},
			Aberration: p.Dither.Aberration * 0.01,
		},
		Mosh: MoshUniforms{
			Seed:          SeedHash(p.Mosh.Seed),
			Strength:      p.Mosh.Strength,
			BlockCount:    moshBaseBlocks / p.Mosh.BlockScale,
			SizeVariation: p.Mosh.SizeVariation,
			Density:       p.Mosh.Density,
			ColorNoise:    p.Mosh.ColorNoise,
		},
		Terminal: TerminalUniforms{
			Columns:     p.Terminal.Density,
			Color:       fg,
			Background:  p.Terminal.Background,
			PixelAspect: p.Terminal.PixelAspect,
		},
	}, nil
}

func (c ColorParams) palette() (Palette, error) {
	if len(c.Palette) > 0 {
		return ParsePalette(c.Palette)
	}
	name := c.Preset
	if name == "" {
		name = DefaultPaletteName
	}
	return PresetPalette(name)
}

// Resolve maps slider positions to tone uniforms. All sliders at
// AdjustNeutral yield NeutralTone.
func (a AdjustParams) Resolve() Tone {
	off := func(v float64) float64 { return (clampAdjust(v) - AdjustNeutral) / 100 }
	return Tone{
		Brightness: off(a.Brightness) * 0.2,
		Contrast:   off(a.Contrast)*0.5 + 1,
		Shadows:    off(a.Shadows) * 0.5,
		Highlights: off(a.Highlights) * 0.5,
		BlackPoint: -off(a.Blacks) * 0.25,
		WhitePoint: 1 - off(a.Whites)*0.25,
		Gamma:      math.Max(clampAdjust(a.Gamma)/100, minGamma),
		Saturation: clampAdjust(a.Saturation) / 100,
		Vibrance:   off(a.Vibrance),
	}
}
