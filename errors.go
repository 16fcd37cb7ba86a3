package entropy

import "errors"

var (
	// ErrDecode is returned when source bytes cannot be decoded as an image.
	ErrDecode = errors.New("entropy: cannot decode image")

	// ErrNoImage is returned when rendering or exporting without a source.
	ErrNoImage = errors.New("entropy: no image loaded")

	// ErrEncode is returned when the rendered frame cannot be encoded.
	ErrEncode = errors.New("entropy: cannot encode png")

	// ErrInvalidColor is returned for unparseable color strings.
	ErrInvalidColor = errors.New("entropy: invalid color")

	// ErrPaletteSize is returned for palettes outside [MinPaletteSize, MaxPaletteSize].
	ErrPaletteSize = errors.New("entropy: palette size out of range")
)
