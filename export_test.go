package entropy

import (
	"regexp"
	"testing"
	"time"

	"github.com/entropy-lab/entropy/imageutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportFilename(t *testing.T) {
	t.Parallel()

	at := time.UnixMilli(0x18F3A2B4C5D)
	assert.Equal(t, "entropy_dither_18F3A2B4C5D.png", ExportFilename(ToolDither, at))
	assert.Equal(t, "entropy_datamosh_18F3A2B4C5D.png", ExportFilename(ToolDatamosh, at))
	assert.Equal(t, "entropy_terminal_18F3A2B4C5D.png", ExportFilename(ToolTerminal, at))

	pattern := regexp.MustCompile(`^entropy_(dither|datamosh|terminal)_[0-9A-F]+\.png$`)
	assert.Regexp(t, pattern, ExportFilename(ToolTerminal, time.Now()))
}

func TestExportFidelity(t *testing.T) {
	t.Parallel()

	src := newSource(t, imageutil.CreatePlasmaImage(123, 45))
	r := NewRenderer()

	for _, tool := range []Tool{ToolDither, ToolDatamosh, ToolTerminal} {
		p := DefaultParams()
		p.Tool = tool

		exp, err := r.Export(src, p)
		require.NoError(t, err)
		assert.Equal(t, tool, exp.Tool)

		img := decodePNG(t, exp.PNG)
		assert.Equal(t, 123, imageutil.Width(img), tool.String())
		assert.Equal(t, 45, imageutil.Height(img), tool.String())

		direct, err := r.Render(src, p, ExportTarget(src))
		require.NoError(t, err)
		assert.Equal(t, direct.Pix, img.Pix, "PNG is lossless")
	}

	_, err := r.Export(nil, DefaultParams())
	assert.ErrorIs(t, err, ErrNoImage)
}
