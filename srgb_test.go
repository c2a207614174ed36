package colorviz

import (
	"math"
	"testing"
)

// tolerance for scalar transfer-function comparisons
const srgbEpsilon = 1e-6

func TestSRGBToLinear_Piecewise(t *testing.T) {
	tests := []struct {
		name string
		s    float64
		want float64
	}{
		{"black", 0, 0},
		{"white", 1, 1},
		{"below threshold", 0.04, 0.04 / 12.92},
		{"at threshold", 0.04045, 0.04045 / 12.92},
		{"above threshold", 0.5, math.Pow((0.5+0.055)/1.055, 2.4)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SRGBToLinear(tt.s); math.Abs(got-tt.want) > srgbEpsilon {
				t.Errorf("SRGBToLinear(%v) = %v, want %v", tt.s, got, tt.want)
			}
		})
	}
}

func TestLinearToSRGB_Piecewise(t *testing.T) {
	tests := []struct {
		name string
		l    float64
		want float64
	}{
		{"black", 0, 0},
		{"white", 1, 1},
		{"below threshold", 0.003, 0.003 * 12.92},
		{"above threshold", 0.5, 1.055*math.Pow(0.5, 1.0/2.4) - 0.055},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LinearToSRGB(tt.l); math.Abs(got-tt.want) > srgbEpsilon {
				t.Errorf("LinearToSRGB(%v) = %v, want %v", tt.l, got, tt.want)
			}
		})
	}
}

// The transfer function is piecewise, not a flat 2.2 gamma. Mid-gray
// is the point where the two disagree most visibly.
func TestSRGBToLinear_NotFlatGamma(t *testing.T) {
	got := SRGBToLinear(0.5)
	flat := math.Pow(0.5, 2.2)
	if math.Abs(got-flat) < 0.001 {
		t.Errorf("SRGBToLinear(0.5) = %v is indistinguishable from flat 2.2 gamma %v", got, flat)
	}
}

func TestSRGBTransfer_RoundTrip(t *testing.T) {
	for v := 0; v <= 255; v++ {
		s := float64(v) / 255
		got := LinearToSRGB(SRGBToLinear(s))
		if math.Abs(got-s) > 1e-9 {
			t.Fatalf("round trip %d: got %v, want %v", v, got*255, float64(v))
		}
	}
}

func TestRGBToLinear_ClampsInput(t *testing.T) {
	lr, lg, lb := RGBToLinear(-50, 300, 128)
	if lr != 0 {
		t.Errorf("negative channel: got %v, want 0", lr)
	}
	if lg != 1 {
		t.Errorf("channel above 255: got %v, want 1", lg)
	}
	if lb <= 0 || lb >= 1 {
		t.Errorf("in-range channel: got %v, want value in (0,1)", lb)
	}
}
