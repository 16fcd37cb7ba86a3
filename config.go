package entropy

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog"
)

// Config is the on-disk form of a session: logging plus one table per
// parameter group. Keys left out keep their defaults.
//
//	tool = "dither"
//
//	[log]
//	level = "debug"
//
//	[dither]
//	algorithm = "floyd-steinberg"
//	strength = 1.0
//
//	[camera]
//	zoom = 2.0
//
// The camera applies to previews only.
type Config struct {
	Log    LogConfig `toml:"log"`
	Camera Camera    `toml:"camera"`

	Tool     Tool           `toml:"tool"`
	Color    ColorParams    `toml:"color"`
	Adjust   AdjustParams   `toml:"adjust"`
	Dither   DitherParams   `toml:"dither"`
	Mosh     MoshParams     `toml:"mosh"`
	Terminal TerminalParams `toml:"terminal"`
}

// LogConfig selects log verbosity and encoding.
type LogConfig struct {
	Level string `toml:"level"`
	// Format is "console" or "json".
	Format string `toml:"format"`
}

// DefaultConfig returns DefaultParams with info-level console logging.
func DefaultConfig() Config {
	p := DefaultParams()
	return Config{
		Log:      LogConfig{Level: "info", Format: "console"},
		Camera:   FittedCamera(),
		Tool:     p.Tool,
		Color:    p.Color,
		Adjust:   p.Adjust,
		Dither:   p.Dither,
		Mosh:     p.Mosh,
		Terminal: p.Terminal,
	}
}

// DecodeConfig reads TOML from r over DefaultConfig. Unknown keys are an
// error.
func DecodeConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.NewDecoder(r).Decode(&cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("unknown config keys: %s", strings.Join(keys, ", "))
	}
	return cfg, nil
}

// LoadConfig reads a TOML config file.
func LoadConfig(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to open config: %w", err)
	}
	defer f.Close()
	return DecodeConfig(f)
}

// PreviewCamera returns the configured preview camera with invalid values
// replaced.
func (c Config) PreviewCamera() Camera {
	return c.Camera.normalize()
}

// Params returns the normalized parameter set described by c.
func (c Config) Params() Params {
	return Params{
		Tool:     c.Tool,
		Color:    c.Color,
		Adjust:   c.Adjust,
		Dither:   c.Dither,
		Mosh:     c.Mosh,
		Terminal: c.Terminal,
	}.Normalize()
}

// Logger builds the logger described by c.
func (c LogConfig) Logger(w io.Writer) (zerolog.Logger, error) {
	level := zerolog.InfoLevel
	if c.Level != "" {
		var err error
		level, err = zerolog.ParseLevel(strings.ToLower(c.Level))
		if err != nil {
			return zerolog.Nop(), fmt.Errorf("invalid log level %q: %w", c.Level, err)
		}
	}
	switch strings.ToLower(c.Format) {
	case "", "console":
		if w == nil {
			return NewConsoleLogger(level), nil
		}
		return NewLogger(zerolog.ConsoleWriter{Out: w, NoColor: true}, level), nil
	case "json":
		if w == nil {
			w = os.Stderr
		}
		return NewLogger(w, level), nil
	}
	return zerolog.Nop(), fmt.Errorf("invalid log format %q", c.Format)
}
