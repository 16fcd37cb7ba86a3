//go:build gocv

package imageutil

import (
	"fmt"
	"image"

	"gocv.io/x/gocv"
)

// Builds tagged with gocv hand anything the Go decoders reject to OpenCV,
// which understands a wider set of container variants (e.g. 16-bit TIFF,
// progressive JPEG-2000).
func init() {
	fallbackDecode = decodeOpenCV
}

func decodeOpenCV(data []byte) (image.Image, error) {
	mat, err := gocv.IMDecode(data, gocv.IMReadColor)
	if err != nil {
		return nil, fmt.Errorf("opencv decode: %w", err)
	}
	defer mat.Close()

	if mat.Empty() {
		return nil, fmt.Errorf("opencv decode: empty matrix")
	}
	img, err := mat.ToImage()
	if err != nil {
		return nil, fmt.Errorf("opencv convert: %w", err)
	}
	return img, nil
}
