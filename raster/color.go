package raster

import (
	"encoding/hex"
	"fmt"
	"image/color"
	"strings"
)

// ParseHexColor parses a color in #RRGGBB or #RRGGBBAA notation.
// The leading # is optional and the digits are case-insensitive.
// Six digit colors are fully opaque.
func ParseHexColor(value string) (color.NRGBA, error) {
	v := strings.TrimLeft(strings.TrimSpace(value), "#")
	if len(v) != 6 && len(v) != 8 {
		return color.NRGBA{}, fmt.Errorf("%w %q: use #RRGGBB or #RRGGBBAA", ErrInvalidColor, value)
	}

	channels, err := hex.DecodeString(v)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("%w %q: use #RRGGBB or #RRGGBBAA", ErrInvalidColor, value)
	}

	c := color.NRGBA{
		R: channels[0],
		G: channels[1],
		B: channels[2],
		A: 0xFF,
	}
	if len(channels) == 4 {
		c.A = channels[3]
	}
	return c, nil
}

// FormatHexColor returns c in lowercase #rrggbb notation, or #rrggbbaa if c
// is not fully opaque.
func FormatHexColor(c color.NRGBA) string {
	if c.A == 0xFF {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}
