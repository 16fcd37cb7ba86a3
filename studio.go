package entropy

import (
	"fmt"
	"image"
	"io"
	"sync"

	"github.com/entropy-lab/entropy/imageutil"
	"github.com/rs/zerolog"
)

// ExportResult is delivered once for every RequestExport.
type ExportResult struct {
	Export *Export
	Err    error
}

// Studio is an editing session: at most one source image, the current
// parameters and the preview camera. Setters may be called from any
// goroutine; Frame renders with a snapshot taken under the lock.
type Studio struct {
	renderer *Renderer
	logger   zerolog.Logger

	mu      sync.Mutex
	src     *SourceImage
	params  Params
	camera  Camera
	pending []chan ExportResult
}

// NewStudio creates a session with DefaultParams and the fitted camera.
func NewStudio(r *Renderer, logger zerolog.Logger) *Studio {
	return &Studio{
		renderer: r,
		logger:   logger.With().Str("component", "studio").Logger(),
		params:   DefaultParams(),
		camera:   FittedCamera(),
	}
}

// Load decodes a new source image. On failure the previous image is
// dropped and the session has no image.
func (s *Studio) Load(r io.Reader) error {
	src, err := LoadImage(r)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.src = nil
		s.logger.Warn().Err(err).Msg("load failed")
		return err
	}
	s.src = src
	s.camera = FittedCamera()
	s.logger.Info().
		Str("source", src.Fingerprint()).
		Str("format", src.Format).
		Int("width", src.Width).
		Int("height", src.Height).
		Msg("image loaded")
	return nil
}

// Clear drops the source image.
func (s *Studio) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.src = nil
}

// Source returns the loaded image or nil.
func (s *Studio) Source() *SourceImage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.src
}

// SetParams replaces the parameter set. Values are normalized.
func (s *Studio) SetParams(p Params) {
	p = p.Normalize()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.params = p
}

// Params returns the current parameter set.
func (s *Studio) Params() Params {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.params
}

// SetCamera sets the preview camera. Exports ignore it.
func (s *Studio) SetCamera(c Camera) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.camera = c.normalize()
}

// RequestExport asks for a native-resolution export at the next Frame.
// Requests raised before the same frame share one export. The channel
// receives exactly one result.
func (s *Studio) RequestExport() <-chan ExportResult {
	ch := make(chan ExportResult, 1)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = append(s.pending, ch)
	return ch
}

// Export renders and encodes immediately, outside the frame cycle.
func (s *Studio) Export() (*Export, error) {
	s.mu.Lock()
	src, p := s.src, s.params
	s.mu.Unlock()
	return s.renderer.Export(src, p)
}

// Frame renders a width by height preview. Any pending export requests are
// taken off the session first, serviced with the same snapshot and answered
// whether or not they succeed. Without an image the frame is black. A
// non-positive size is an error and leaves pending requests for the next
// frame.
func (s *Studio) Frame(width, height int) (*image.NRGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid render target %dx%d", width, height)
	}

	s.mu.Lock()
	src, p, cam := s.src, s.params, s.camera
	pending := s.pending
	s.pending = nil
	s.mu.Unlock()

	if len(pending) > 0 {
		exp, err := s.renderer.Export(src, p)
		if err != nil {
			s.logger.Error().Err(err).Int("requests", len(pending)).Msg("export failed")
		}
		for _, ch := range pending {
			ch <- ExportResult{Export: exp, Err: err}
			close(ch)
		}
	}

	if src == nil {
		frame := imageutil.NewNRGBA(width, height)
		imageutil.Fill(frame, letterbox)
		return frame, nil
	}
	return s.renderer.Render(src, p, RenderTarget{Width: width, Height: height, Camera: cam})
}
