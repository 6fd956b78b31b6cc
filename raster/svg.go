//go:build !nosvg

package raster

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"image"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// DefaultVectorSize is the raster size of SVGs that do not declare one.
const DefaultVectorSize = 1024

func init() {
	defaultVectorRasterizer = SVGRasterizer{}
}

// SVGRasterizer renders SVG images with oksvg.
type SVGRasterizer struct{}

// Rasterize renders the SVG read from r at its declared width and height.
// Without absolute dimensions the view box size is used, and without a view
// box DefaultVectorSize.
func (SVGRasterizer) Rasterize(r io.Reader) (image.Image, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	icon, err := oksvg.ReadIconStream(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse SVG: %w", err)
	}

	width, height := svgSize(data, icon.ViewBox.W, icon.ViewBox.H)
	w := int(math.Ceil(width))
	h := int(math.Ceil(height))

	icon.SetTarget(0, 0, float64(w), float64(h))
	rgba := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, rgba, rgba.Bounds())
	icon.Draw(rasterx.NewDasher(w, h, scanner), 1.0)

	return rgba, nil
}

// svgSize returns the raster size for an SVG document with the given view box
// dimensions. A single declared dimension keeps the view box aspect ratio.
func svgSize(data []byte, viewW, viewH float64) (width, height float64) {
	hasViewBox := viewW > 0 && viewH > 0
	width, okW, height, okH := svgDeclaredSize(data)

	switch {
	case okW && okH:
		return width, height
	case okW && hasViewBox:
		return width, width * viewH / viewW
	case okH && hasViewBox:
		return height * viewW / viewH, height
	case hasViewBox:
		return viewW, viewH
	default:
		return DefaultVectorSize, DefaultVectorSize
	}
}

// svgDeclaredSize reads the width and height attributes of the root element.
func svgDeclaredSize(data []byte) (width float64, okW bool, height float64, okH bool) {
	decoder := xml.NewDecoder(bytes.NewReader(data))
	decoder.Strict = false
	for {
		token, err := decoder.Token()
		if err != nil {
			return 0, false, 0, false
		}
		root, ok := token.(xml.StartElement)
		if !ok {
			continue
		}
		for _, attr := range root.Attr {
			switch attr.Name.Local {
			case "width":
				width, okW = parseSVGLength(attr.Value)
			case "height":
				height, okH = parseSVGLength(attr.Value)
			}
		}
		return width, okW, height, okH
	}
}

// Pixels per unit at 96 DPI.
var svgUnits = map[string]float64{
	"":   1,
	"px": 1,
	"pt": 96.0 / 72,
	"pc": 16,
	"in": 96,
	"cm": 96 / 2.54,
	"mm": 96 / 25.4,
}

// parseSVGLength parses an absolute SVG length into pixels.
// Relative units like % and em are not supported.
func parseSVGLength(value string) (float64, bool) {
	value = strings.ToLower(strings.TrimSpace(value))
	number := strings.TrimRight(value, "abcdefghijklmnopqrstuvwxyz%")
	factor, ok := svgUnits[value[len(number):]]
	if !ok {
		return 0, false
	}

	n, err := strconv.ParseFloat(strings.TrimSpace(number), 64)
	if err != nil || n <= 0 || math.IsInf(n, 0) {
		return 0, false
	}
	return n * factor, true
}
