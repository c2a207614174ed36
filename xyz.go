package colorviz

// CIE XYZ conversions use the sRGB matrices for the D65 illuminant.
// XYZ values are reported on the conventional 0-100 scale, so D65
// white is (95.047, 100, 108.883).

// LinearRGBToXYZ converts linear-light RGB (0-1) to CIE XYZ (0-100).
func LinearRGBToXYZ(lr, lg, lb float64) (x, y, z float64) {
	x = (0.4124*lr + 0.3576*lg + 0.1805*lb) * 100
	y = (0.2126*lr + 0.7152*lg + 0.0722*lb) * 100
	z = (0.0193*lr + 0.1192*lg + 0.9505*lb) * 100
	return
}

// XYZToLinearRGB converts CIE XYZ (0-100) to linear-light RGB.
// The result is not clamped; out-of-gamut XYZ yields components
// outside [0,1] and the caller decides how to resolve them.
func XYZToLinearRGB(x, y, z float64) (lr, lg, lb float64) {
	x, y, z = x/100, y/100, z/100
	lr = 3.2406*x - 1.5372*y - 0.4986*z
	lg = -0.9689*x + 1.8758*y + 0.0415*z
	lb = 0.0557*x - 0.2040*y + 1.0570*z
	return
}

// RGBToXYZ converts sRGB (0-255) to CIE XYZ (0-100).
func RGBToXYZ(r, g, b float64) (x, y, z float64) {
	return LinearRGBToXYZ(RGBToLinear(r, g, b))
}

// XYZToRGB converts CIE XYZ (0-100) to sRGB (0-255). Out-of-gamut
// input clamps per channel; use XYToRGB for the hue-preserving variant
// used on chromaticity diagrams.
func XYZToRGB(x, y, z float64) (r, g, b float64) {
	return LinearToRGB(XYZToLinearRGB(x, y, z))
}

// XYZToXY projects XYZ onto the chromaticity plane:
// x = X/(X+Y+Z), y = Y/(X+Y+Z). The degenerate all-zero input (ideal
// black) maps to (0, 0) rather than dividing by zero.
func XYZToXY(x, y, z float64) (cx, cy float64) {
	sum := x + y + z
	if sum == 0 {
		return 0, 0
	}
	return x / sum, y / sum
}

// XYToRGB converts a chromaticity point plus a luminance Y (0-100)
// back to sRGB (0-255).
//
// Chromaticity diagrams sample many points that are technically
// outside the encodable sRGB gamut, so this conversion trades strict
// colorimetry for smooth coloring:
//
//   - cy == 0 is degenerate (no luminance direction) and yields black;
//   - linear components are tolerated in [-0.5, 1.5] and hard-limited
//     to that band first;
//   - when the largest component exceeds 1, all three are divided by
//     the maximum. Scaling preserves the ratio between channels, so
//     the hue survives; clamping each channel independently would
//     shift it;
//   - remaining negatives clamp to 0, then the sRGB gamma encode and a
//     final [0,255] clamp apply.
//
// No additional saturation boost is applied.
func XYToRGB(cx, cy, luminance float64) (r, g, b float64) {
	if cy == 0 {
		return 0, 0, 0
	}

	yy := clamp(luminance, 0, 100)
	xx := cx * yy / cy
	zz := (1 - cx - cy) * yy / cy

	lr, lg, lb := XYZToLinearRGB(xx, yy, zz)
	lr = clamp(lr, -0.5, 1.5)
	lg = clamp(lg, -0.5, 1.5)
	lb = clamp(lb, -0.5, 1.5)

	if m := max3(lr, lg, lb); m > 1 {
		lr /= m
		lg /= m
		lb /= m
	}

	return LinearToRGB(lr, lg, lb)
}

// D65 reference white, CIE XYZ on the 0-100 scale.
const (
	refWhiteX = 95.047
	refWhiteY = 100.0
	refWhiteZ = 108.883
)

func max3(a, b, c float64) float64 {
	m := a
	if b > m {
		m = b
	}
	if c > m {
		m = c
	}
	return m
}

func min3(a, b, c float64) float64 {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}
