package raster

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// Square normalizes img to a square.
//
// Square images are returned as they are. Otherwise, if pad is set, img is
// composited centered onto a canvas of the longer side filled with bg.
// If pad is not set, the centered square of the shorter side is cropped out;
// an odd remainder is trimmed from the right or bottom edge.
//
// The returned image must be treated as read-only.
func Square(img *image.NRGBA, pad bool, bg color.NRGBA) *image.NRGBA {
	if isSquare(img) {
		return img
	}

	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	if !pad {
		side := min(w, h)
		left := (w - side) / 2
		top := (h - side) / 2
		cropped := image.NewNRGBA(image.Rect(0, 0, side, side))
		draw.Draw(cropped, cropped.Bounds(), img, b.Min.Add(image.Pt(left, top)), draw.Src)
		return cropped
	}

	canvas := newCanvas(max(w, h), bg)
	compositeCentered(canvas, img)
	return canvas
}
