package entropy

import (
	"bytes"
	"strings"
	"testing"

	"github.com/entropy-lab/entropy/imageutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteANSISolid(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, WriteANSI(&buf, grayImage(5, 4, 128)))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	for _, line := range lines {
		assert.Equal(t, "\x1b[48;2;128;128;128m     \x1b[0m", line, "one run per line")
	}
}

func TestWriteANSIHalfBlocks(t *testing.T) {
	t.Parallel()

	img := imageutil.NewNRGBA(2, 3)
	imageutil.SetRGB(img, 0, 0, imageutil.RGB{R: 255})
	imageutil.SetRGB(img, 1, 0, imageutil.RGB{R: 255})
	imageutil.SetRGB(img, 0, 1, imageutil.RGB{B: 255})
	imageutil.SetRGB(img, 1, 1, imageutil.RGB{B: 255})
	imageutil.SetRGB(img, 0, 2, imageutil.RGB{G: 255})
	imageutil.SetRGB(img, 1, 2, imageutil.RGB{G: 9})

	var buf bytes.Buffer
	require.NoError(t, WriteANSI(&buf, img))

	want := "\x1b[38;2;255;0;0;48;2;0;0;255m▀▀\x1b[0m\n" +
		"\x1b[38;2;0;255;0;48;2;0;0;0m▀\x1b[38;2;0;9;0;48;2;0;0;0m▀\x1b[0m\n"
	assert.Equal(t, want, buf.String())
}

func TestOpaque(t *testing.T) {
	t.Parallel()

	got := opaque(imageutil.RGB{R: 200, G: 100}.ToColor())
	assert.Equal(t, uint8(200), got.R)

	c := imageutil.RGB{G: 255}.ToColor()
	c.A = 0
	assert.Equal(t, letterbox, opaque(c), "transparent cells show black")
}
