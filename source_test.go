package entropy

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/entropy-lab/entropy/imageutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadImage(t *testing.T) {
	t.Parallel()

	img := imageutil.CreateColorBarsImage(40, 10)
	src, err := LoadImage(bytes.NewReader(encodePNG(t, img)))
	require.NoError(t, err)

	assert.Equal(t, 40, src.Width)
	assert.Equal(t, 10, src.Height)
	assert.Equal(t, "png", src.Format)
	assert.Equal(t, Vec3{1, 1, 0}, src.At(7, 0), "second bar is yellow")
	assert.Equal(t, src.At(0, 0), src.At(-5, -5), "sampling clamps to the edge")
	assert.Equal(t, src.At(39, 9), src.At(100, 100))
}

func TestLoadImageFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "bars.png")
	require.NoError(t, imageutil.SavePNG(imageutil.CreateColorBarsImage(16, 4), path))

	src, err := LoadImageFile(path)
	require.NoError(t, err)
	assert.Equal(t, "png", src.Format)
	assert.Equal(t, 16, src.Width)

	bad := filepath.Join(t.TempDir(), "bad.png")
	require.NoError(t, os.WriteFile(bad, []byte("nope"), 0o644))
	_, err = LoadImageFile(bad)
	assert.ErrorIs(t, err, ErrDecode)
}

func TestLoadImageErrors(t *testing.T) {
	t.Parallel()

	_, err := LoadImage(strings.NewReader("GIF89a broken"))
	assert.ErrorIs(t, err, ErrDecode)

	_, err = LoadImageFile(filepath.Join(t.TempDir(), "missing.png"))
	assert.ErrorIs(t, err, ErrDecode)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSourceFingerprint(t *testing.T) {
	t.Parallel()

	a := newSource(t, imageutil.CreateGradientImage(16, 8))
	b := newSource(t, imageutil.CreateGradientImage(16, 8))
	c := newSource(t, imageutil.CreateGradientImage(8, 16))
	d := newSource(t, imageutil.CreateVerticalGradientImage(16, 8))

	assert.Equal(t, a.ID, b.ID)
	assert.NotEqual(t, a.ID, c.ID)
	assert.NotEqual(t, a.ID, d.ID)
	assert.Len(t, a.Fingerprint(), 16)
}

func TestSourceImageIsACopy(t *testing.T) {
	t.Parallel()

	img := grayImage(4, 4, 50)
	src := newSource(t, img)
	imageutil.SetRGB(img, 0, 0, imageutil.RGB{R: 255})
	assert.Equal(t, Splat(50.0/255), src.At(0, 0))

	cp := src.Image()
	imageutil.SetRGB(cp, 1, 1, imageutil.RGB{G: 255})
	assert.Equal(t, Splat(50.0/255), src.At(1, 1))
}
