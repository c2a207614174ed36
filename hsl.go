package colorviz

import "math"

// RGBToHSL converts sRGB (0-255) to HSL with H in [0,360) degrees and
// S, L as percentages. Achromatic input (max == min) yields H=0, S=0.
func RGBToHSL(r, g, b float64) (h, s, l float64) {
	rf := clamp255(r) / 255
	gf := clamp255(g) / 255
	bf := clamp255(b) / 255

	maxC := max3(rf, gf, bf)
	minC := min3(rf, gf, bf)
	delta := maxC - minC

	l = (maxC + minC) / 2

	if delta == 0 {
		return 0, 0, l * 100
	}

	if l < 0.5 {
		s = delta / (maxC + minC)
	} else {
		s = delta / (2 - maxC - minC)
	}

	switch maxC {
	case rf:
		h = 60 * math.Mod((gf-bf)/delta, 6)
	case gf:
		h = 60 * ((bf-rf)/delta + 2)
	default:
		h = 60 * ((rf-gf)/delta + 4)
	}
	if h < 0 {
		h += 360
	}

	return h, s * 100, l * 100
}

// HSLToRGB converts HSL (H degrees, S and L percentages) to sRGB
// (0-255). H wraps modulo 360; S and L clamp to [0,100].
func HSLToRGB(h, s, l float64) (r, g, b float64) {
	h = wrapDegrees(h)
	sf := clamp(s, 0, 100) / 100
	lf := clamp(l, 0, 100) / 100

	c := (1 - math.Abs(2*lf-1)) * sf
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := lf - c/2

	rp, gp, bp := sextant(h, c, x)
	return (rp + m) * 255, (gp + m) * 255, (bp + m) * 255
}

// sextant maps a hue angle to the chroma/intermediate pair for the
// 60-degree segment it falls in. Shared by the HSL and HSV inverses.
func sextant(h, c, x float64) (r, g, b float64) {
	switch {
	case h < 60:
		return c, x, 0
	case h < 120:
		return x, c, 0
	case h < 180:
		return 0, c, x
	case h < 240:
		return 0, x, c
	case h < 300:
		return x, 0, c
	default:
		return c, 0, x
	}
}

// wrapDegrees wraps an angle into [0, 360).
func wrapDegrees(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}
