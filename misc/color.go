package misc

import (
	"image/color"
	"strconv"
	"strings"
)

// HexColor parses a "#RRGGBB" or "#RRGGBBAA" string. Malformed input yields
// opaque black.
func HexColor(hex string) color.NRGBA {
	hex = strings.TrimPrefix(hex, "#")
	c := color.NRGBA{A: 0xff}
	if len(hex) != 6 && len(hex) != 8 {
		return c
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return c
	}

	if len(hex) == 8 {
		c.A = uint8(v)
		v >>= 8
	}
	c.R = uint8(v >> 16)
	c.G = uint8(v >> 8)
	c.B = uint8(v)
	return c
}

// WithAlpha returns c with its alpha replaced.
func WithAlpha(c color.NRGBA, alpha uint8) color.NRGBA {
	c.A = alpha
	return c
}
