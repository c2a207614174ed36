package colorviz

import (
	"fmt"
	"image/color"
)

// RGB represents an sRGB color with channels in [0, 255].
// Channels are float64 so intermediate results keep sub-integer
// precision; callers round only at the display boundary.
type RGB struct {
	R, G, B float64
}

// NewRGB creates a color from channel values, clamping each to [0, 255].
func NewRGB(r, g, b float64) RGB {
	return RGB{R: clamp255(r), G: clamp255(g), B: clamp255(b)}
}

// Color converts RGB to the standard color.Color interface.
func (c RGB) Color() color.Color {
	return color.NRGBA{
		R: uint8(clamp255(c.R) + 0.5),
		G: uint8(clamp255(c.G) + 0.5),
		B: uint8(clamp255(c.B) + 0.5),
		A: 255,
	}
}

// Hex formats the color as a lowercase "#rrggbb" string.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x",
		uint8(clamp255(c.R)+0.5),
		uint8(clamp255(c.G)+0.5),
		uint8(clamp255(c.B)+0.5))
}

// Lerp performs linear interpolation between two colors.
func (c RGB) Lerp(other RGB, t float64) RGB {
	return RGB{
		R: c.R + (other.R-c.R)*t,
		G: c.G + (other.G-c.G)*t,
		B: c.B + (other.B-c.B)*t,
	}
}

// Clamp returns the color with every channel restricted to [0, 255].
func (c RGB) Clamp() RGB {
	return RGB{R: clamp255(c.R), G: clamp255(c.G), B: clamp255(c.B)}
}

// ParseHex parses a hex color string.
// Supports formats: "RGB" and "RRGGBB", with or without a leading '#'.
// Malformed input yields opaque black, matching the permissive policy
// of the conversion core.
func ParseHex(hex string) RGB {
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}

	var r, g, b uint32

	switch len(hex) {
	case 3: // RGB
		parseHexField(hex[0:1], &r)
		parseHexField(hex[1:2], &g)
		parseHexField(hex[2:3], &b)
		r, g, b = r*17, g*17, b*17
	case 6: // RRGGBB
		parseHexField(hex[0:2], &r)
		parseHexField(hex[2:4], &g)
		parseHexField(hex[4:6], &b)
	default:
		return RGB{}
	}

	return RGB{R: float64(r), G: float64(g), B: float64(b)}
}

// parseHexField is a helper for hex parsing
func parseHexField(s string, val *uint32) {
	*val = 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		*val *= 16
		switch {
		case '0' <= c && c <= '9':
			*val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			*val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			*val += uint32(c - 'A' + 10)
		default:
			return
		}
	}
}

// clamp255 restricts a value to [0, 255] range.
func clamp255(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return x
}

// clamp01 clamps a value to [0, 1] range.
func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// clamp restricts a value to [lo, hi].
func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// Common colors
var (
	Black   = RGB{0, 0, 0}
	White   = RGB{255, 255, 255}
	Red     = RGB{255, 0, 0}
	Green   = RGB{0, 255, 0}
	Blue    = RGB{0, 0, 255}
	Yellow  = RGB{255, 255, 0}
	Cyan    = RGB{0, 255, 255}
	Magenta = RGB{255, 0, 255}
)
