package entropy

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/entropy-lab/entropy/imageutil"
)

// Export is an encoded native-resolution render.
type Export struct {
	Filename string
	PNG      []byte
	Width    int
	Height   int
	Tool     Tool
}

// ExportFilename returns entropy_<tool>_<HEX>.png where HEX is the
// upper-case hexadecimal Unix time in milliseconds.
func ExportFilename(tool Tool, at time.Time) string {
	return fmt.Sprintf("entropy_%s_%s.png", tool, strings.ToUpper(fmt.Sprintf("%x", at.UnixMilli())))
}

// Export renders src at its native size with the fitted camera and encodes
// the result as PNG.
func (r *Renderer) Export(src *SourceImage, p Params) (*Export, error) {
	if src == nil {
		return nil, ErrNoImage
	}
	p = p.Normalize()

	img, err := r.Render(src, p, ExportTarget(src))
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := imageutil.EncodePNG(&buf, img); err != nil {
		r.logger.Error().Str("component", "export").Err(err).Msg("encode failed")
		return nil, fmt.Errorf("%w: %w", ErrEncode, err)
	}

	exp := &Export{
		Filename: ExportFilename(p.Tool, r.now()),
		PNG:      buf.Bytes(),
		Width:    src.Width,
		Height:   src.Height,
		Tool:     p.Tool,
	}
	r.logger.Info().
		Str("component", "export").
		Str("file", exp.Filename).
		Int("width", exp.Width).
		Int("height", exp.Height).
		Int("bytes", len(exp.PNG)).
		Msg("exported")
	return exp, nil
}
