package entropy

import (
	"embed"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"sync"

	"github.com/samber/lo"
)

//go:embed colordata/palettes.json
var colordata embed.FS

// Palette size limits.
const (
	MinPaletteSize = 1
	MaxPaletteSize = 12
)

// DefaultPaletteName is the preset used when no palette is configured.
const DefaultPaletteName = "COFFEE"

// Palette is an ordered color ramp, index 0 darkest. A Palette built with
// NewPalette or ParsePalette always holds between MinPaletteSize and
// MaxPaletteSize entries. A single entry is a constant ramp.
type Palette []Vec3

// NewPalette validates the size of colors and returns them as a Palette.
func NewPalette(colors []Vec3) (Palette, error) {
	if len(colors) < MinPaletteSize || len(colors) > MaxPaletteSize {
		return nil, fmt.Errorf("%w: %d colors", ErrPaletteSize, len(colors))
	}
	return append(Palette(nil), colors...), nil
}

// ParsePalette parses a list of color strings into a Palette.
func ParsePalette(hex []string) (Palette, error) {
	colors := make([]Vec3, 0, len(hex))
	for _, h := range hex {
		c, err := ParseColor(h)
		if err != nil {
			return nil, err
		}
		colors = append(colors, c)
	}
	return NewPalette(colors)
}

// Hex formats every entry as #rrggbb.
func (p Palette) Hex() []string {
	return lo.Map(p, func(c Vec3, _ int) string { return FormatHex(c) })
}

// Nearest returns the entry closest to c by Euclidean distance. The first
// entry wins ties.
func (p Palette) Nearest(c Vec3) Vec3 {
	best := p[0]
	bestDist := math.Inf(1)
	for _, e := range p {
		if d := c.DistanceSq(e); d < bestDist {
			bestDist = d
			best = e
		}
	}
	return best
}

// segment locates gray on the ramp. It returns the lower entry index, in
// [0, N-2], and the position f within that segment. f is 1 at the top of
// the ramp so the last entry is reachable. A single-entry ramp has no
// segment and yields (0, 0).
func (p Palette) segment(gray float64) (int, float64) {
	if len(p) < 2 {
		return 0, 0
	}
	scaled := clamp01(gray) * float64(len(p)-1)
	idx := lo.Clamp(int(math.Floor(scaled)), 0, len(p)-2)
	return idx, scaled - float64(idx)
}

// Smooth maps gray onto the ramp by linear interpolation between the two
// surrounding entries.
func (p Palette) Smooth(gray float64) Vec3 {
	if len(p) == 1 {
		return p[0]
	}
	i, f := p.segment(gray)
	return Mix(p[i], p[i+1], f)
}

// Dither maps gray onto the ramp and snaps it to one of the two surrounding
// entries by comparing the segment position with threshold. strength blends
// between the smooth and the snapped result.
func (p Palette) Dither(gray, threshold, strength float64) Vec3 {
	if len(p) == 1 {
		return p[0]
	}
	i, f := p.segment(gray)
	smooth := Mix(p[i], p[i+1], f)
	snapped := Mix(p[i], p[i+1], step(threshold, f))
	return Mix(smooth, snapped, strength)
}

// ParseColor parses #rgb, #rrggbb or hsl(h, s%, l%).
func ParseColor(s string) (Vec3, error) {
	s = strings.TrimSpace(s)
	lower := strings.ToLower(s)
	switch {
	case strings.HasPrefix(lower, "#"):
		return parseHex(lower[1:], s)
	case strings.HasPrefix(lower, "hsl(") && strings.HasSuffix(lower, ")"):
		return parseHSL(lower[4:len(lower)-1], s)
	}
	return Vec3{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
}

func parseHex(h, orig string) (Vec3, error) {
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) != 6 {
		return Vec3{}, fmt.Errorf("%w: %q", ErrInvalidColor, orig)
	}
	n, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return Vec3{}, fmt.Errorf("%w: %q", ErrInvalidColor, orig)
	}
	return Vec3{
		R: float64(n>>16&0xff) / 255,
		G: float64(n>>8&0xff) / 255,
		B: float64(n&0xff) / 255,
	}, nil
}

func parseHSL(body, orig string) (Vec3, error) {
	parts := strings.Split(body, ",")
	if len(parts) != 3 {
		return Vec3{}, fmt.Errorf("%w: %q", ErrInvalidColor, orig)
	}
	var v [3]float64
	for i, p := range parts {
		p = strings.TrimSpace(p)
		if i == 0 {
			p = strings.TrimSuffix(p, "deg")
		} else {
			p = strings.TrimSuffix(p, "%")
		}
		f, err := strconv.ParseFloat(p, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return Vec3{}, fmt.Errorf("%w: %q", ErrInvalidColor, orig)
		}
		v[i] = f
	}
	return HSL(v[0], clamp01(v[1]/100), clamp01(v[2]/100)), nil
}

// HSL converts hue in degrees and saturation, lightness in [0,1] to RGB.
func HSL(h, s, l float64) Vec3 {
	chroma := (1 - math.Abs(2*l-1)) * s
	return HueToRGB(h).AddScalar(-0.5).Scale(chroma).AddScalar(l)
}

// FormatHex formats c as #rrggbb.
func FormatHex(c Vec3) string {
	n := c.NRGBA()
	return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
}

// Preset is a named palette shipped with the package.
type Preset struct {
	Name   string   `json:"name"`
	Colors []string `json:"colors"`
}

var (
	presetsOnce sync.Once
	presets     []Preset
	presetsErr  error
)

func loadPresets() ([]Preset, error) {
	presetsOnce.Do(func() {
		data, err := colordata.ReadFile("colordata/palettes.json")
		if err != nil {
			presetsErr = fmt.Errorf("error reading palettes: %w", err)
			return
		}
		if err := json.Unmarshal(data, &presets); err != nil {
			presetsErr = fmt.Errorf("error unmarshalling palettes: %w", err)
		}
	})
	return presets, presetsErr
}

// Presets returns the built-in palettes in display order.
func Presets() []Preset {
	p, err := loadPresets()
	if err != nil {
		panic(err)
	}
	return p
}

// PresetPalette returns the named preset, matched case-insensitively.
func PresetPalette(name string) (Palette, error) {
	p, ok := lo.Find(Presets(), func(p Preset) bool {
		return strings.EqualFold(p.Name, name)
	})
	if !ok {
		return nil, fmt.Errorf("unknown palette preset %q", name)
	}
	return ParsePalette(p.Colors)
}

// DefaultPalette returns the COFFEE preset.
func DefaultPalette() Palette {
	p, err := PresetPalette(DefaultPaletteName)
	if err != nil {
		panic(err)
	}
	return p
}
