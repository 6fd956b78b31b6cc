package raster

import (
	"fmt"
	"image"
	"image/color"
	"math"
)

// Resize returns img resampled to size×size with filter f.
// If img already has exactly that size, it is returned as is.
// A nil filter selects DefaultFilter.
func Resize(img *image.NRGBA, size int, f Filter) (*image.NRGBA, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: cannot resize to %d", ErrInvalidSize, size)
	}
	if hasSize(img, size) {
		return img, nil
	}
	if f == nil {
		f = DefaultFilter()
	}
	return f.Scale(img, size), nil
}

// Maskable content scale limits.
const (
	MinContentScale = 0.1
	MaxContentScale = 1.0
)

// FitWithPadding returns a size×size canvas filled with bg and the content
// of img resized to round(size*contentScale) composited at its center.
// contentScale is clamped to [MinContentScale, MaxContentScale].
// With an opaque bg the result is opaque everywhere.
func FitWithPadding(img *image.NRGBA, size int, contentScale float64, bg color.NRGBA, f Filter) (*image.NRGBA, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: cannot fit into %d", ErrInvalidSize, size)
	}

	inner := ContentSize(size, contentScale)
	content, err := Resize(img, inner, f)
	if err != nil {
		return nil, err
	}

	canvas := newCanvas(size, bg)
	compositeCentered(canvas, content)
	return canvas, nil
}

// ContentSize returns the side of the content area within a size×size
// canvas for the given content scale.
// Halves are rounded to even and the result is kept within [1, size].
func ContentSize(size int, contentScale float64) int {
	if math.IsNaN(contentScale) {
		contentScale = MaxContentScale
	}
	contentScale = math.Max(MinContentScale, math.Min(contentScale, MaxContentScale))
	inner := int(math.RoundToEven(float64(size) * contentScale))
	return max(1, min(inner, size))
}
