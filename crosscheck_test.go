package colorviz

import (
	"math"
	"testing"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Cross-validation against go-colorful, which implements the same
// reference formulas on 0-1 scaled values. Tolerances absorb its D65
// constants differing from ours in the last decimal.

func TestRGBToHSV_MatchesColorful(t *testing.T) {
	for r := 0; r <= 255; r += 51 {
		for g := 0; g <= 255; g += 51 {
			for b := 0; b <= 255; b += 51 {
				h, s, v := RGBToHSV(float64(r), float64(g), float64(b))

				ch, cs, cv := colorful.Color{
					R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255,
				}.Hsv()

				if s > 0.01 && math.Abs(h-ch) > 0.1 && math.Abs(math.Abs(h-ch)-360) > 0.1 {
					t.Fatalf("(%d,%d,%d): hue %v vs colorful %v", r, g, b, h, ch)
				}
				if math.Abs(s/100-cs) > 0.001 || math.Abs(v/100-cv) > 0.001 {
					t.Fatalf("(%d,%d,%d): s,v (%v,%v) vs colorful (%v,%v)", r, g, b, s/100, v/100, cs, cv)
				}
			}
		}
	}
}

func TestRGBToLab_MatchesColorful(t *testing.T) {
	for r := 0; r <= 255; r += 51 {
		for g := 0; g <= 255; g += 51 {
			for b := 0; b <= 255; b += 51 {
				l, a, bb := RGBToLab(float64(r), float64(g), float64(b))

				cl, ca, cb := colorful.Color{
					R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255,
				}.Lab()

				if math.Abs(l-cl*100) > 0.1 || math.Abs(a-ca*100) > 0.2 || math.Abs(bb-cb*100) > 0.2 {
					t.Fatalf("(%d,%d,%d): Lab (%.3f,%.3f,%.3f) vs colorful (%.3f,%.3f,%.3f)",
						r, g, b, l, a, bb, cl*100, ca*100, cb*100)
				}
			}
		}
	}
}

func TestHSLToRGB_MatchesColorful(t *testing.T) {
	for h := 0.0; h < 360; h += 30 {
		for _, sl := range [][2]float64{{100, 50}, {50, 50}, {100, 25}, {30, 80}} {
			r, g, b := HSLToRGB(h, sl[0], sl[1])

			c := colorful.Hsl(h, sl[0]/100, sl[1]/100)
			if math.Abs(r-c.R*255) > 0.5 || math.Abs(g-c.G*255) > 0.5 || math.Abs(b-c.B*255) > 0.5 {
				t.Fatalf("HSL(%v,%v,%v): (%.2f,%.2f,%.2f) vs colorful (%.2f,%.2f,%.2f)",
					h, sl[0], sl[1], r, g, b, c.R*255, c.G*255, c.B*255)
			}
		}
	}
}
