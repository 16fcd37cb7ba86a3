package entropy

import (
	"fmt"
	"strings"
)

// Tool selects the rendering pipeline.
type Tool int

const (
	ToolDither Tool = iota
	ToolDatamosh
	ToolTerminal
)

var toolNames = []string{"dither", "datamosh", "terminal"}

// ColorMode selects how the processed color is mapped to output.
type ColorMode int

const (
	ColorFull ColorMode = iota
	ColorGrayscale
	ColorTint
	ColorPalette
)

var colorModeNames = []string{"full", "grayscale", "tint", "palette"}

// Algorithm selects the dither threshold generator.
type Algorithm int

const (
	AlgorithmBayer2 Algorithm = iota
	AlgorithmBayer4
	AlgorithmBayer8
	AlgorithmRandom
	AlgorithmClustered
	AlgorithmHalftoneDot
	AlgorithmHalftoneLine
	AlgorithmCrosshatch
	AlgorithmFloydSteinberg
)

var algorithmNames = []string{
	"bayer2x2", "bayer4x4", "bayer8x8", "random", "clustered",
	"halftone-dot", "halftone-line", "crosshatch", "floyd-steinberg",
}

// Background selects what the terminal pipeline draws behind glyphs.
type Background int

const (
	BackgroundTransparent Background = iota
	BackgroundBlack
	BackgroundWhite
)

var backgroundNames = []string{"transparent", "black", "white"}

func enumString(names []string, v int) string {
	if v < 0 || v >= len(names) {
		return fmt.Sprintf("invalid(%d)", v)
	}
	return names[v]
}

func parseEnum(kind string, names []string, s string) (int, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, n := range names {
		if n == s {
			return i, nil
		}
	}
	return 0, fmt.Errorf("unknown %s %q (want one of %s)", kind, s, strings.Join(names, ", "))
}

func (t Tool) String() string { return enumString(toolNames, int(t)) }
func (t Tool) MarshalText() ([]byte, error) { return []byte(t.String()), nil }
func (t Tool) valid() bool { return t >= 0 && int(t) < len(toolNames) }
func (m ColorMode) String() string { return enumString(colorModeNames, int(m)) }
func (m ColorMode) MarshalText() ([]byte, error) { return []byte(m.String()), nil }
func (m ColorMode) valid() bool { return m >= 0 && int(m) < len(colorModeNames) }
func (a Algorithm) String() string { return enumString(algorithmNames, int(a)) }
func (a Algorithm) MarshalText() ([]byte, error) { return []byte(a.String()), nil }
func (a Algorithm) valid() bool { return a >= 0 && int(a) < len(algorithmNames) }
func (b Background) String() string { return enumString(backgroundNames, int(b)) }
func (b Background) MarshalText() ([]byte, error) { return []byte(b.String()), nil }
func (b Background) valid() bool { return b >= 0 && int(b) < len(backgroundNames) }

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Tool) UnmarshalText(text []byte) error {
	v, err := parseEnum("tool", toolNames, string(text))
	if err != nil {
		return err
	}
	*t = Tool(v)
	return nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *ColorMode) UnmarshalText(text []byte) error {
	v, err := parseEnum("color mode", colorModeNames, string(text))
	if err != nil {
		return err
	}
	*m = ColorMode(v)
	return nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Algorithm) UnmarshalText(text []byte) error {
	v, err := parseEnum("dither algorithm", algorithmNames, string(text))
	if err != nil {
		return err
	}
	*a = Algorithm(v)
	return nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (b *Background) UnmarshalText(text []byte) error {
	v, err := parseEnum("background", backgroundNames, string(text))
	if err != nil {
		return err
	}
	*b = Background(v)
	return nil
}

// ToolNames, ColorModeNames, AlgorithmNames and BackgroundNames list the
// accepted text forms, for help output.
func ToolNames() []string { return append([]string(nil), toolNames...) }
func ColorModeNames() []string { return append([]string(nil), colorModeNames...) }
func AlgorithmNames() []string { return append([]string(nil), algorithmNames...) }
func BackgroundNames() []string { return append([]string(nil), backgroundNames...) }
