package main

import (
	"strings"

	"github.com/entropy-lab/entropy"
	"github.com/spf13/pflag"
)

// paramFlags are the per-render overrides shared by render and batch.
type paramFlags struct {
	tool       string
	algorithm  string
	mode       string
	preset     string
	palette    []string
	strength   float64
	scale      float64
	seed       string
	moshAmount float64
	columns    int
	color      string
	background string
}

func (f *paramFlags) register(fs *pflag.FlagSet) {
	fs.StringVarP(&f.tool, "tool", "t", "", "pipeline: "+strings.Join(entropy.ToolNames(), ", "))
	fs.StringVarP(&f.algorithm, "algorithm", "a", "", "dither algorithm: "+strings.Join(entropy.AlgorithmNames(), ", "))
	fs.StringVarP(&f.mode, "mode", "m", "", "color mode: "+strings.Join(entropy.ColorModeNames(), ", "))
	fs.StringVar(&f.preset, "preset", "", "palette preset name (see 'entropy presets')")
	fs.StringSliceVar(&f.palette, "palette", nil, "palette colors, darkest first")
	fs.Float64Var(&f.strength, "strength", 0, "dither strength [0,1]")
	fs.Float64Var(&f.scale, "scale", 0, "dither cell size in pixels [1,16]")
	fs.StringVar(&f.seed, "seed", "", "datamosh seed")
	fs.Float64Var(&f.moshAmount, "mosh-strength", 0, "datamosh strength [0,1]")
	fs.IntVar(&f.columns, "columns", 0, "terminal glyph columns [10,500]")
	fs.StringVar(&f.color, "color", "", "terminal glyph color (#rrggbb or hsl())")
	fs.StringVar(&f.background, "background", "", "terminal background: "+strings.Join(entropy.BackgroundNames(), ", "))
}

// apply overrides p with every flag set on the command line.
func (f *paramFlags) apply(fs *pflag.FlagSet, p entropy.Params) (entropy.Params, error) {
	set := func(name string) bool { return fs.Changed(name) }

	if set("tool") {
		if err := p.Tool.UnmarshalText([]byte(f.tool)); err != nil {
			return p, err
		}
	}
	if set("algorithm") {
		if err := p.Dither.Algorithm.UnmarshalText([]byte(f.algorithm)); err != nil {
			return p, err
		}
	}
	if set("mode") {
		if err := p.Color.Mode.UnmarshalText([]byte(f.mode)); err != nil {
			return p, err
		}
	}
	if set("background") {
		if err := p.Terminal.Background.UnmarshalText([]byte(f.background)); err != nil {
			return p, err
		}
	}
	if set("preset") {
		p.Color.Preset = f.preset
		p.Color.Palette = nil
	}
	if set("palette") {
		p.Color.Palette = f.palette
	}
	if set("strength") {
		p.Dither.Strength = f.strength
	}
	if set("scale") {
		p.Dither.Scale = f.scale
	}
	if set("seed") {
		p.Mosh.Seed = f.seed
	}
	if set("mosh-strength") {
		p.Mosh.Strength = f.moshAmount
	}
	if set("columns") {
		p.Terminal.Density = f.columns
	}
	if set("color") {
		p.Terminal.Color = f.color
	}
	return p.Normalize(), nil
}
