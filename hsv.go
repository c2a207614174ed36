package colorviz

import "math"

// RGBToHSV converts sRGB (0-255) to HSV with H in [0,360) degrees and
// S, V as percentages. Achromatic input yields H=0, S=0.
func RGBToHSV(r, g, b float64) (h, s, v float64) {
	rf := clamp255(r) / 255
	gf := clamp255(g) / 255
	bf := clamp255(b) / 255

	maxC := max3(rf, gf, bf)
	minC := min3(rf, gf, bf)
	delta := maxC - minC

	if delta != 0 {
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
	}

	if maxC != 0 {
		s = delta / maxC
	}

	return h, s * 100, maxC * 100
}

// HSVToRGB converts HSV (H degrees, S and V percentages) to sRGB
// (0-255). H wraps modulo 360; S and V clamp to [0,100].
func HSVToRGB(h, s, v float64) (r, g, b float64) {
	h = wrapDegrees(h)
	sf := clamp(s, 0, 100) / 100
	vf := clamp(v, 0, 100) / 100

	c := vf * sf
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := vf - c

	rp, gp, bp := sextant(h, c, x)
	return (rp + m) * 255, (gp + m) * 255, (bp + m) * 255
}
