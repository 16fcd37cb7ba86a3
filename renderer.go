package entropy

import (
	"fmt"
	"image"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Renderer runs the effect pipelines. It owns the state that is expensive
// to build and safe to share: the error-diffusion cache and the glyph
// atlas. A Renderer may be used from several goroutines.
type Renderer struct {
	logger    zerolog.Logger
	now       func() time.Time
	glyphRamp string
	glyphCell int

	diffusion diffusionCache

	atlasOnce sync.Once
	atlas     *GlyphAtlas
	atlasErr  error
}

// RendererOption is a functional option for configuring a Renderer.
type RendererOption func(*Renderer)

// NewRenderer creates a new Renderer with the given options.
// Defaults: no logging, DefaultGlyphRamp, DefaultGlyphCell, wall clock.
func NewRenderer(opts ...RendererOption) *Renderer {
	r := &Renderer{
		logger:    zerolog.Nop(),
		now:       time.Now,
		glyphRamp: DefaultGlyphRamp,
		glyphCell: DefaultGlyphCell,
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// WithLogger sets the logger.
func WithLogger(l zerolog.Logger) RendererOption {
	return func(r *Renderer) {
		r.logger = l
	}
}

// WithGlyphRamp sets the terminal glyph ramp, ordered sparse to dense.
func WithGlyphRamp(ramp string) RendererOption {
	return func(r *Renderer) {
		r.glyphRamp = ramp
	}
}

// WithGlyphCell sets the glyph atlas cell size in pixels.
func WithGlyphCell(px int) RendererOption {
	return func(r *Renderer) {
		r.glyphCell = px
	}
}

// WithClock sets the time source used for export filenames.
func WithClock(now func() time.Time) RendererOption {
	return func(r *Renderer) {
		r.now = now
	}
}

// GlyphAtlas returns the renderer's atlas, building it on first use. The
// default ramp and cell share the process-wide atlas.
func (r *Renderer) GlyphAtlas() (*GlyphAtlas, error) {
	r.atlasOnce.Do(func() {
		start := time.Now()
		if r.glyphRamp == DefaultGlyphRamp && r.glyphCell == DefaultGlyphCell {
			r.atlas, r.atlasErr = DefaultGlyphAtlas()
		} else {
			r.atlas, r.atlasErr = NewGlyphAtlas(r.glyphRamp, r.glyphCell)
		}
		if r.atlasErr == nil {
			r.logger.Debug().
				Str("component", "terminal").
				Int("glyphs", r.atlas.Len()).
				Dur("took", time.Since(start)).
				Msg("glyph atlas ready")
		}
	})
	return r.atlas, r.atlasErr
}

// Render runs the pipeline selected by p.Tool over src into a target of
// the given size. Pixels outside the fitted image are opaque black.
func (r *Renderer) Render(src *SourceImage, p Params, target RenderTarget) (*image.NRGBA, error) {
	if src == nil {
		return nil, ErrNoImage
	}
	if target.Width <= 0 || target.Height <= 0 {
		return nil, fmt.Errorf("invalid render target %dx%d", target.Width, target.Height)
	}
	u, err := p.Resolve()
	if err != nil {
		return nil, err
	}

	start := time.Now()
	m := newContainMap(src.Width, src.Height, target)

	var s shader
	switch u.Tool {
	case ToolDatamosh:
		s = newMoshShader(src, u)
	case ToolTerminal:
		atlas, err := r.GlyphAtlas()
		if err != nil {
			return nil, err
		}
		s = newASCIIShader(src, u.Terminal, atlas, m)
	default:
		var fs *image.NRGBA
		if u.Dither.Algorithm == AlgorithmFloydSteinberg {
			var cached bool
			fs, cached = r.diffusion.get(src, u.Mode, u.Palette)
			r.logger.Debug().
				Str("component", "diffusion").
				Str("source", src.Fingerprint()).
				Stringer("mode", u.Mode).
				Bool("cached", cached).
				Msg("error diffusion")
		}
		s = newDitherShader(src, u, fs)
	}

	out := composite(m, s)
	r.logger.Debug().
		Str("component", "render").
		Stringer("tool", u.Tool).
		Int("width", target.Width).
		Int("height", target.Height).
		Dur("took", time.Since(start)).
		Msg("frame rendered")
	return out, nil
}

// DiffusionStats reports error-diffusion cache hits and misses.
func (r *Renderer) DiffusionStats() (hits, misses int) {
	return r.diffusion.stats()
}
