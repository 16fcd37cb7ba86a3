package entropy

import (
	"image"
	"image/color"
	"math"

	"github.com/entropy-lab/entropy/imageutil"
)

var letterbox = color.NRGBA{A: 255}

// Camera is a preview-only view transform. Zoom scales about the target
// centre and Pan shifts in target UV units. Export never uses it.
type Camera struct {
	Zoom float64 `toml:"zoom"`
	PanX float64 `toml:"pan_x"`
	PanY float64 `toml:"pan_y"`
}

// FittedCamera shows the whole image, letterboxed.
func FittedCamera() Camera {
	return Camera{Zoom: 1}
}

func (c Camera) normalize() Camera {
	if math.IsNaN(c.Zoom) || c.Zoom <= 0 || math.IsInf(c.Zoom, 0) {
		c.Zoom = 1
	}
	if math.IsNaN(c.PanX) || math.IsInf(c.PanX, 0) {
		c.PanX = 0
	}
	if math.IsNaN(c.PanY) || math.IsInf(c.PanY, 0) {
		c.PanY = 0
	}
	return c
}

// RenderTarget is the size and view of a render.
type RenderTarget struct {
	Width  int
	Height int
	Camera Camera
}

// ExportTarget is the native-resolution target for src with the fitted
// camera.
func ExportTarget(src *SourceImage) RenderTarget {
	return RenderTarget{Width: src.Width, Height: src.Height, Camera: FittedCamera()}
}

// containMap maps target pixels onto image UV space so the whole image is
// visible at its own aspect ratio.
type containMap struct {
	imgW, imgH       int
	targetW, targetH int
	scaleX, scaleY   float64
	cam              Camera
}

func newContainMap(imgW, imgH int, t RenderTarget) containMap {
	rx := float64(imgW) / float64(t.Width)
	ry := float64(imgH) / float64(t.Height)
	maxRatio := math.Max(rx, ry)
	return containMap{
		imgW: imgW, imgH: imgH,
		targetW: t.Width, targetH: t.Height,
		scaleX: rx / maxRatio,
		scaleY: ry / maxRatio,
		cam:    t.Camera.normalize(),
	}
}

// imageUV returns the image UV of target pixel (tx, ty). ok is false in the
// letterbox.
func (m containMap) imageUV(tx, ty int) (u, v float64, ok bool) {
	u = (float64(tx) + 0.5) / float64(m.targetW)
	v = (float64(ty) + 0.5) / float64(m.targetH)

	u = (u-0.5)/m.cam.Zoom + 0.5 + m.cam.PanX
	v = (v-0.5)/m.cam.Zoom + 0.5 + m.cam.PanY

	u = (u-0.5)/m.scaleX + 0.5
	v = (v-0.5)/m.scaleY + 0.5
	if u < 0 || u > 1 || v < 0 || v > 1 {
		return 0, 0, false
	}
	return u, v, true
}

// pixel converts image UV to an image pixel index.
func (m containMap) pixel(u, v float64) (int, int) {
	ix := min(max(int(math.Floor(u*float64(m.imgW))), 0), m.imgW-1)
	iy := min(max(int(math.Floor(v*float64(m.imgH))), 0), m.imgH-1)
	return ix, iy
}

// region returns the fitted image size in target pixels, without camera.
func (m containMap) region() (w, h float64) {
	return float64(m.targetW) * m.scaleX, float64(m.targetH) * m.scaleY
}

// shader computes the output color for one image-space sample.
type shader interface {
	shade(u, v float64, ix, iy int) color.NRGBA
}

// composite runs s over every target pixel inside the fitted image and
// paints the letterbox black.
func composite(m containMap, s shader) *image.NRGBA {
	out := imageutil.NewNRGBA(m.targetW, m.targetH)
	for ty := 0; ty < m.targetH; ty++ {
		for tx := 0; tx < m.targetW; tx++ {
			u, v, ok := m.imageUV(tx, ty)
			if !ok {
				out.SetNRGBA(tx, ty, letterbox)
				continue
			}
			ix, iy := m.pixel(u, v)
			out.SetNRGBA(tx, ty, s.shade(u, v, ix, iy))
		}
	}
	return out
}
