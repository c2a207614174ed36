package colorviz

import "math"

// CIE Lab and LCh, D65 illuminant.
//
// The forward piecewise function uses the classic published constants
// (threshold 0.008856, linear slope 7.787) rather than the exact
// rational forms 216/24389 and 24389/27; the difference is below the
// precision the visualizer displays.

const (
	labEpsilon = 0.008856
	labSlope   = 7.787
)

// labCompress applies the cube-root/linear piecewise function to one
// normalized tristimulus component.
func labCompress(t float64) float64 {
	if t > labEpsilon {
		return math.Cbrt(t)
	}
	return labSlope*t + 16.0/116.0
}

// labUncompress inverts labCompress.
func labUncompress(ft float64) float64 {
	ft3 := ft * ft * ft
	if ft3 > labEpsilon {
		return ft3
	}
	return (ft - 16.0/116.0) / labSlope
}

// XYZToLab converts CIE XYZ (0-100) to L*a*b*.
// L is 0-100; a* and b* are unbounded in theory but stay within
// [-128,127] for colors inside the sRGB gamut.
func XYZToLab(x, y, z float64) (l, a, b float64) {
	fx := labCompress(x / refWhiteX)
	fy := labCompress(y / refWhiteY)
	fz := labCompress(z / refWhiteZ)

	l = 116*fy - 16
	a = 500 * (fx - fy)
	b = 200 * (fy - fz)
	return
}

// LabToXYZ converts L*a*b* to CIE XYZ (0-100).
func LabToXYZ(l, a, b float64) (x, y, z float64) {
	fy := (l + 16) / 116
	fx := a/500 + fy
	fz := fy - b/200

	x = labUncompress(fx) * refWhiteX
	y = labUncompress(fy) * refWhiteY
	z = labUncompress(fz) * refWhiteZ
	return
}

// LabToLCh converts L*a*b* to its cylindrical form.
// C = sqrt(a²+b²); h = atan2(b,a) in degrees, wrapped to [0,360).
// Neutral colors (a=b=0) have undefined hue and report h=0.
func LabToLCh(l, a, b float64) (ll, c, h float64) {
	c = math.Sqrt(a*a + b*b)
	if c != 0 {
		h = wrapDegrees(math.Atan2(b, a) * 180 / math.Pi)
	}
	return l, c, h
}

// LChToLab converts LCh back to L*a*b*. Exact inverse of LabToLCh up
// to floating point.
func LChToLab(l, c, h float64) (ll, a, b float64) {
	rad := h * math.Pi / 180
	return l, c * math.Cos(rad), c * math.Sin(rad)
}

// RGBToLab converts sRGB (0-255) to L*a*b* via XYZ.
func RGBToLab(r, g, b float64) (l, a, bb float64) {
	return XYZToLab(RGBToXYZ(r, g, b))
}

// LabToRGB converts L*a*b* to sRGB (0-255) via XYZ, clamping
// out-of-gamut results per channel.
func LabToRGB(l, a, b float64) (r, g, bb float64) {
	return XYZToRGB(LabToXYZ(l, a, b))
}

// RGBToLCh converts sRGB (0-255) to LCh.
func RGBToLCh(r, g, b float64) (l, c, h float64) {
	return LabToLCh(RGBToLab(r, g, b))
}

// LChToRGB converts LCh to sRGB (0-255).
func LChToRGB(l, c, h float64) (r, g, b float64) {
	ll, a, bb := LChToLab(l, c, h)
	return LabToRGB(ll, a, bb)
}
