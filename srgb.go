package colorviz

import "math"

// SRGBToLinear converts one sRGB component in [0,1] to linear light
// (EOTF). Formula: if s <= 0.04045: s/12.92; else: pow((s+0.055)/1.055, 2.4).
// The piecewise form matters: a flat 2.2 gamma diverges visibly near
// black and breaks round-trip tests.
func SRGBToLinear(s float64) float64 {
	if s <= 0.04045 {
		return s / 12.92
	}
	return math.Pow((s+0.055)/1.055, 2.4)
}

// LinearToSRGB converts one linear-light component in [0,1] to sRGB
// (OETF). Formula: if l <= 0.0031308: l*12.92; else: 1.055*pow(l, 1/2.4)-0.055.
func LinearToSRGB(l float64) float64 {
	if l <= 0.0031308 {
		return l * 12.92
	}
	return 1.055*math.Pow(l, 1.0/2.4) - 0.055
}

// RGBToLinear converts an sRGB triple (0-255) to linear light (0-1),
// removing gamma. Input channels are clamped to [0,255] first.
func RGBToLinear(r, g, b float64) (lr, lg, lb float64) {
	lr = SRGBToLinear(clamp255(r) / 255)
	lg = SRGBToLinear(clamp255(g) / 255)
	lb = SRGBToLinear(clamp255(b) / 255)
	return
}

// LinearToRGB converts a linear-light triple (0-1) to sRGB (0-255),
// adding gamma. Out-of-range linear input is clamped to [0,1] before
// encoding.
func LinearToRGB(lr, lg, lb float64) (r, g, b float64) {
	r = LinearToSRGB(clamp01(lr)) * 255
	g = LinearToSRGB(clamp01(lg)) * 255
	b = LinearToSRGB(clamp01(lb)) * 255
	return
}
