package main

import (
	"github.com/entropy-lab/entropy"
	"github.com/entropy-lab/entropy/imageutil"
)

// loadSource decodes path and, when maxWidth is positive and smaller than
// the image, downsamples it to that width with interp before any effect
// runs.
func loadSource(path string, maxWidth int, interp imageutil.Interpolation) (*entropy.SourceImage, error) {
	src, err := entropy.LoadImageFile(path)
	if err != nil || maxWidth <= 0 || src.Width <= maxWidth {
		return src, err
	}
	small := imageutil.ResizeToWidth(src.Image(), maxWidth, interp)
	return entropy.NewSourceImage(small)
}

// loadSource applies the --max-width and --resample options.
func (o *globalOptions) loadSource(path string) (*entropy.SourceImage, error) {
	interp, err := imageutil.ParseInterpolation(o.resample)
	if err != nil {
		return nil, err
	}
	return loadSource(path, o.maxWidth, interp)
}
