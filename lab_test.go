package colorviz

import (
	"math"
	"testing"
)

func TestXYZToLab_KnownColors(t *testing.T) {
	tests := []struct {
		name    string
		x, y, z float64
		wantL   float64
		wantA   float64
		wantB   float64
	}{
		{"D65 white", 95.047, 100, 108.883, 100, 0, 0},
		{"black", 0, 0, 0, 0, 0, 0},
		{"sRGB red", 41.24, 21.26, 1.93, 53.23, 80.11, 67.22},
	}

	const tol = 0.1
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, a, b := XYZToLab(tt.x, tt.y, tt.z)
			if math.Abs(l-tt.wantL) > tol || math.Abs(a-tt.wantA) > tol || math.Abs(b-tt.wantB) > tol {
				t.Errorf("XYZToLab(%v,%v,%v) = (%.2f,%.2f,%.2f), want (%v,%v,%v)",
					tt.x, tt.y, tt.z, l, a, b, tt.wantL, tt.wantA, tt.wantB)
			}
		})
	}
}

// Lab -> XYZ -> Lab over the declared ranges, epsilon from the lossless
// analytic inverse.
func TestLab_RoundTrip(t *testing.T) {
	for l := 0.0; l <= 100; l += 10 {
		for a := -128.0; a <= 127; a += 17 {
			for b := -128.0; b <= 127; b += 17 {
				x, y, z := LabToXYZ(l, a, b)
				ll, aa, bb := XYZToLab(x, y, z)
				if math.Abs(ll-l) > 0.01 || math.Abs(aa-a) > 0.01 || math.Abs(bb-b) > 0.01 {
					t.Fatalf("round trip (%v,%v,%v) -> (%.4f,%.4f,%.4f)", l, a, b, ll, aa, bb)
				}
			}
		}
	}
}

func TestLabToLCh_KnownValues(t *testing.T) {
	tests := []struct {
		name    string
		l, a, b float64
		wantL   float64
		wantC   float64
		wantH   float64
	}{
		{"neutral gray has zero chroma", 50, 0, 0, 50, 0, 0},
		{"positive a axis", 50, 60, 0, 50, 60, 0},
		{"positive b axis", 50, 0, 60, 50, 60, 90},
		{"negative a axis", 50, -60, 0, 50, 60, 180},
		{"negative b axis", 50, 0, -60, 50, 60, 270},
		{"diagonal", 50, 30, 30, 50, 30 * math.Sqrt2, 45},
	}

	const tol = 1e-9
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, c, h := LabToLCh(tt.l, tt.a, tt.b)
			if math.Abs(l-tt.wantL) > tol || math.Abs(c-tt.wantC) > tol || math.Abs(h-tt.wantH) > tol {
				t.Errorf("LabToLCh(%v,%v,%v) = (%v,%v,%v), want (%v,%v,%v)",
					tt.l, tt.a, tt.b, l, c, h, tt.wantL, tt.wantC, tt.wantH)
			}
		})
	}
}

// The polar transform has no lossy step; the round trip is exact up to
// floating point.
func TestLCh_RoundTrip(t *testing.T) {
	const tol = 1e-9
	for l := 0.0; l <= 100; l += 25 {
		for a := -128.0; a <= 127; a += 13 {
			for b := -128.0; b <= 127; b += 13 {
				ll, c, h := LabToLCh(l, a, b)
				l2, a2, b2 := LChToLab(ll, c, h)
				if math.Abs(l2-l) > tol || math.Abs(a2-a) > tol || math.Abs(b2-b) > tol {
					t.Fatalf("round trip (%v,%v,%v) -> (%v,%v,%v)", l, a, b, l2, a2, b2)
				}
			}
		}
	}
}

func TestLabToLCh_HueWrapsPositive(t *testing.T) {
	for b := -120.0; b < 0; b += 7 {
		_, _, h := LabToLCh(50, 30, b)
		if h < 0 || h >= 360 {
			t.Fatalf("b=%v: hue %v outside [0,360)", b, h)
		}
		if h <= 180 {
			t.Fatalf("b=%v: hue %v, want lower half plane (180,360)", b, h)
		}
	}
}

func TestRGBToLab_Gray(t *testing.T) {
	l, a, b := RGBToLab(128, 128, 128)
	if math.Abs(a) > 0.05 || math.Abs(b) > 0.05 {
		t.Errorf("gray a*,b* = (%.4f,%.4f), want near 0", a, b)
	}
	if l < 53 || l > 54.5 {
		t.Errorf("gray L = %.2f, want ~53.6", l)
	}
}
