package raster

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// ToNRGBA returns a copy of img as non-premultiplied RGBA with its origin
// at (0, 0). Sources without alpha become fully opaque.
func ToNRGBA(img image.Image) *image.NRGBA {
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst
}

// newCanvas returns a size×size image filled with bg.
func newCanvas(size int, bg color.NRGBA) *image.NRGBA {
	canvas := image.NewNRGBA(image.Rect(0, 0, size, size))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	return canvas
}

// compositeCentered alpha-composites src over canvas, centered with
// integer offsets.
func compositeCentered(canvas *image.NRGBA, src *image.NRGBA) {
	cb := canvas.Bounds()
	sb := src.Bounds()
	x := (cb.Dx() - sb.Dx()) / 2
	y := (cb.Dy() - sb.Dy()) / 2
	dr := image.Rect(x, y, x+sb.Dx(), y+sb.Dy()).Add(cb.Min)
	draw.Draw(canvas, dr, src, sb.Min, draw.Over)
}

func isSquare(img image.Image) bool {
	b := img.Bounds()
	return b.Dx() == b.Dy()
}

func hasSize(img image.Image, size int) bool {
	b := img.Bounds()
	return b.Dx() == size && b.Dy() == size
}
