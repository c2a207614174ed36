package colorviz

// Reference geometry for the CIE 1931 xy chromaticity diagram. All of
// it is fixed physical data; nothing here is computed at runtime.

// d65 is the D65 white point chromaticity.
var d65 = Point{0.3127, 0.3290}

// rgbGamut holds the sRGB primary chromaticities (ITU-R BT.709
// primaries): red, green, blue.
var rgbGamut = [3]Point{
	{0.6400, 0.3300},
	{0.3000, 0.6000},
	{0.1500, 0.0600},
}

// cmykGamut approximates the process-ink gamut as the quadrilateral of
// the cyan, yellow, magenta and blue-overprint chromaticities of the
// sRGB secondaries, ordered as a simple polygon.
var cmykGamut = [4]Point{
	{0.2247, 0.3287}, // cyan
	{0.4193, 0.5053}, // yellow
	{0.3209, 0.1542}, // magenta
	{0.1500, 0.0600}, // blue (cyan+magenta overprint)
}

// spectralLocus samples the CIE 1931 2-degree observer boundary at 5nm
// steps from 380nm to 700nm (65 points). The purple line closing the
// horseshoe is the implicit wrap-around edge from the last vertex back
// to the first.
var spectralLocus = [65]Point{
	{0.1741, 0.0050}, // 380nm
	{0.1740, 0.0050},
	{0.1738, 0.0049},
	{0.1736, 0.0049},
	{0.1733, 0.0048}, // 400nm
	{0.1730, 0.0048},
	{0.1726, 0.0048},
	{0.1721, 0.0048},
	{0.1714, 0.0051}, // 420nm
	{0.1703, 0.0058},
	{0.1689, 0.0069},
	{0.1669, 0.0086},
	{0.1644, 0.0109}, // 440nm
	{0.1611, 0.0138},
	{0.1566, 0.0177},
	{0.1510, 0.0227},
	{0.1440, 0.0297}, // 460nm
	{0.1355, 0.0399},
	{0.1241, 0.0578},
	{0.1096, 0.0868},
	{0.0913, 0.1327}, // 480nm
	{0.0687, 0.2007},
	{0.0454, 0.2950},
	{0.0235, 0.4127},
	{0.0082, 0.5384}, // 500nm
	{0.0039, 0.6548},
	{0.0139, 0.7502},
	{0.0389, 0.8120},
	{0.0743, 0.8338}, // 520nm
	{0.1142, 0.8262},
	{0.1547, 0.8059},
	{0.1929, 0.7816},
	{0.2296, 0.7543}, // 540nm
	{0.2658, 0.7243},
	{0.3016, 0.6923},
	{0.3373, 0.6589},
	{0.3731, 0.6245}, // 560nm
	{0.4087, 0.5896},
	{0.4441, 0.5547},
	{0.4788, 0.5202},
	{0.5125, 0.4866}, // 580nm
	{0.5448, 0.4544},
	{0.5752, 0.4242},
	{0.6029, 0.3965},
	{0.6270, 0.3725}, // 600nm
	{0.6482, 0.3514},
	{0.6658, 0.3340},
	{0.6801, 0.3197},
	{0.6915, 0.3083}, // 620nm
	{0.7006, 0.2993},
	{0.7079, 0.2920},
	{0.7140, 0.2859},
	{0.7190, 0.2809}, // 640nm
	{0.7230, 0.2770},
	{0.7260, 0.2740},
	{0.7283, 0.2717},
	{0.7300, 0.2700}, // 660nm
	{0.7311, 0.2689},
	{0.7320, 0.2680},
	{0.7327, 0.2673},
	{0.7334, 0.2666}, // 680nm
	{0.7340, 0.2660},
	{0.7344, 0.2656},
	{0.7346, 0.2654},
	{0.7347, 0.2653}, // 700nm
}

// D65WhitePoint returns the D65 white point chromaticity.
func D65WhitePoint() Point {
	return d65
}

// RGBGamutVertices returns the sRGB gamut triangle in the xy plane.
// The returned slice is a fresh copy; callers may modify it.
func RGBGamutVertices() []Point {
	v := make([]Point, len(rgbGamut))
	copy(v, rgbGamut[:])
	return v
}

// CMYKGamutVertices returns the process-ink gamut quadrilateral in the
// xy plane. The returned slice is a fresh copy.
func CMYKGamutVertices() []Point {
	v := make([]Point, len(cmykGamut))
	copy(v, cmykGamut[:])
	return v
}

// SpectralLocus returns the visible-spectrum boundary polygon. The
// returned slice is a fresh copy; the closing purple-line edge is the
// implicit segment from the last point back to the first.
func SpectralLocus() []Point {
	v := make([]Point, len(spectralLocus))
	copy(v, spectralLocus[:])
	return v
}

// PointInPolygon reports whether p lies inside the closed polygon.
// Ray casting: count crossings of the horizontal ray from p toward +X
// over every edge, including the wrap-around edge; an odd count means
// inside. The strict (vi.Y > p.Y) != (vj.Y > p.Y) edge test keeps
// horizontal edges and shared vertices from double-counting.
//
// Diagram painting calls this once per sampled grid cell (a 200x200
// grid is 40k calls per frame), so it must not allocate.
func PointInPolygon(p Point, poly []Point) bool {
	inside := false
	n := len(poly)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		vi, vj := poly[i], poly[j]
		if (vi.Y > p.Y) != (vj.Y > p.Y) &&
			p.X < (vj.X-vi.X)*(p.Y-vi.Y)/(vj.Y-vi.Y)+vi.X {
			inside = !inside
		}
	}
	return inside
}
