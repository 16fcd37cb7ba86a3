package imageutil

import (
	"image"
	"math"
)

// CreateGradientImage creates a horizontal gray gradient test image.
func CreateGradientImage(width, height int) *image.NRGBA {
	img := NewNRGBA(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			v := uint8(255 * x / max(width-1, 1))
			SetRGB(img, x, y, RGB{R: v, G: v, B: v})
		}
	}
	return img
}

// CreateVerticalGradientImage creates a vertical gray gradient test image.
func CreateVerticalGradientImage(width, height int) *image.NRGBA {
	img := NewNRGBA(width, height)
	for y := 0; y < height; y++ {
		v := uint8(255 * y / max(height-1, 1))
		for x := 0; x < width; x++ {
			SetRGB(img, x, y, RGB{R: v, G: v, B: v})
		}
	}
	return img
}

// CreateCheckerboardImage creates a black and white checkerboard.
func CreateCheckerboardImage(width, height, squareSize int) *image.NRGBA {
	img := NewNRGBA(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if ((x/squareSize)+(y/squareSize))%2 == 0 {
				SetRGB(img, x, y, RGB{R: 255, G: 255, B: 255})
			} else {
				SetRGB(img, x, y, RGB{R: 0, G: 0, B: 0})
			}
		}
	}
	return img
}

// CreateSolidImage creates a solid color image.
func CreateSolidImage(width, height int, c RGB) *image.NRGBA {
	img := NewNRGBA(width, height)
	Fill(img, c.ToColor())
	return img
}

// CreateColorBarsImage creates a color bars test pattern.
func CreateColorBarsImage(width, height int) *image.NRGBA {
	img := NewNRGBA(width, height)
	colors := []RGB{
		{255, 255, 255}, // White
		{255, 255, 0},   // Yellow
		{0, 255, 255},   // Cyan
		{0, 255, 0},     // Green
		{255, 0, 255},   // Magenta
		{255, 0, 0},     // Red
		{0, 0, 255},     // Blue
		{0, 0, 0},       // Black
	}

	barWidth := max(width/len(colors), 1)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			colorIdx := min(x/barWidth, len(colors)-1)
			SetRGB(img, x, y, colors[colorIdx])
		}
	}
	return img
}

// CreatePlasmaImage creates a smooth multi-hue test image with mid-tones in
// every channel, useful where clamping at 0 or 255 would skew sums.
func CreatePlasmaImage(width, height int) *image.NRGBA {
	img := NewNRGBA(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			fx, fy := float64(x)/float64(width), float64(y)/float64(height)
			r := 0.5 + 0.3*math.Sin(fx*2*math.Pi)
			g := 0.5 + 0.3*math.Cos(fy*2*math.Pi)
			b := 0.5 + 0.3*math.Sin((fx+fy)*math.Pi)
			SetRGB(img, x, y, RGB{R: uint8(r * 255), G: uint8(g * 255), B: uint8(b * 255)})
		}
	}
	return img
}

// CalculateMSE calculates the Mean Squared Error between the RGB channels
// of two images.
func CalculateMSE(img1, img2 *image.NRGBA) float64 {
	if Width(img1) != Width(img2) || Height(img1) != Height(img2) {
		return math.MaxFloat64
	}

	width, height := Width(img1), Height(img1)
	var sumSq float64
	count := float64(width * height * 3)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c1 := img1.NRGBAAt(x, y)
			c2 := img2.NRGBAAt(x, y)
			dr := float64(c1.R) - float64(c2.R)
			dg := float64(c1.G) - float64(c2.G)
			db := float64(c1.B) - float64(c2.B)
			sumSq += dr*dr + dg*dg + db*db
		}
	}

	return sumSq / count
}

// CalculateMaxDiff calculates the maximum per-channel difference between
// two images, including alpha.
func CalculateMaxDiff(img1, img2 *image.NRGBA) int {
	if Width(img1) != Width(img2) || Height(img1) != Height(img2) {
		return 256
	}

	width, height := Width(img1), Height(img1)
	maxDiff := 0

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c1 := img1.NRGBAAt(x, y)
			c2 := img2.NRGBAAt(x, y)
			maxDiff = max(maxDiff,
				abs(int(c1.R)-int(c2.R)),
				abs(int(c1.G)-int(c2.G)),
				abs(int(c1.B)-int(c2.B)),
				abs(int(c1.A)-int(c2.A)))
		}
	}

	return maxDiff
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
