package colorviz

import "sort"

// ColorStop represents a color at a specific position in a gradient.
type ColorStop struct {
	Offset float64 // Position in gradient, 0.0 to 1.0
	Color  RGB     // Color at this position
}

// Gradient describes the track of a dependent slider: an ordered list
// of color stops, recomputed from the current channel values on every
// change and never cached.
//
// Conic gradients (the LCh hue ring) reuse the same stop list with
// Offset interpreted as a fraction of a full turn.
type Gradient struct {
	Stops []ColorStop
	Conic bool
}

// sortStops sorts color stops by offset without modifying the input.
func sortStops(stops []ColorStop) []ColorStop {
	if len(stops) == 0 {
		return stops
	}

	sorted := make([]ColorStop, len(stops))
	copy(sorted, stops)

	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Offset < sorted[j].Offset
	})

	return sorted
}

// ColorAt returns the interpolated color at offset t in [0,1].
// Interpolation runs in linear light so gradients do not darken
// through the middle. Out-of-range t pads with the edge stops.
func (g *Gradient) ColorAt(t float64) RGB {
	stops := g.Stops
	if len(stops) == 0 {
		return Black
	}
	if len(stops) == 1 {
		return stops[0].Color
	}

	// Defensive sort; derivation rules emit stops pre-sorted.
	sorted := sortStops(stops)
	t = clamp01(t)

	idx := sort.Search(len(sorted), func(i int) bool {
		return sorted[i].Offset >= t
	})

	if idx == 0 {
		return sorted[0].Color
	}
	if idx >= len(sorted) {
		return sorted[len(sorted)-1].Color
	}

	s1, s2 := sorted[idx-1], sorted[idx]
	if s2.Offset == s1.Offset {
		return s1.Color
	}

	localT := (t - s1.Offset) / (s2.Offset - s1.Offset)
	return lerpLinear(s1.Color, s2.Color, localT)
}

// lerpLinear interpolates two sRGB colors through linear light.
func lerpLinear(c1, c2 RGB, t float64) RGB {
	r1, g1, b1 := RGBToLinear(c1.R, c1.G, c1.B)
	r2, g2, b2 := RGBToLinear(c2.R, c2.G, c2.B)

	r, g, b := LinearToRGB(
		r1+t*(r2-r1),
		g1+t*(g2-g1),
		b1+t*(b2-b1),
	)
	return RGB{R: r, G: g, B: b}
}

// hueRingStep is the angular sampling interval of the LCh hue ring.
// Hue varies perceptually smoothly, so 5 degrees (72 samples) is
// indistinguishable from finer steps on a ring a few hundred pixels
// across.
const hueRingStep = 5.0

// ruleKey identifies one dependent-channel derivation rule.
type ruleKey struct {
	space   SpaceID
	channel string
}

// gradientRules maps (space, channel) to its derivation rule. Pairs
// absent from the table have no special rendering; DeriveGradient
// returns nil and the caller falls back to a static min/max gradient.
var gradientRules = map[ruleKey]func(v values) Gradient{
	{SpaceHSL, "s"}:    hslSaturationRule,
	{SpaceHSL, "l"}:    hslLightnessRule,
	{SpaceHSV, "s"}:    hsvSaturationRule,
	{SpaceHSV, "v"}:    hsvValueRule,
	{SpaceLab, "a"}:    labARule,
	{SpaceLab, "b"}:    labBRule,
	{SpaceLCh, "c"}:    lchChromaRule,
	{SpaceLCh, "h"}:    lchHueRingRule,
	{SpaceYCbCr, "cb"}: ycbcrCbRule,
	{SpaceYCbCr, "cr"}: ycbcrCrRule,
}

// values wraps the caller's current channel values with defaulted
// lookup. Missing keys fall back to the given default so a rule stays
// total even when the caller passes a partial map.
type values map[string]float64

func (v values) get(key string, def float64) float64 {
	if x, ok := v[key]; ok {
		return x
	}
	return def
}

// DeriveGradient computes the track gradient for one dependent channel
// from the current values of the others. It returns nil when no
// derivation rule exists for the (space, channel) pair; the caller
// then falls back to a static gradient between the channel's declared
// min and max colors. A nil result is the "not applicable" signal, not
// an error.
//
// current may be nil or partial; missing channels assume neutral
// defaults (mid lightness, full value, neutral chroma).
func DeriveGradient(space SpaceID, channel string, current map[string]float64) *Gradient {
	rule, ok := gradientRules[ruleKey{space, channel}]
	if !ok {
		return nil
	}
	g := rule(values(current))
	return &g
}

func rgbStop(offset, r, g, b float64) ColorStop {
	return ColorStop{Offset: offset, Color: NewRGB(r, g, b)}
}

// HSL saturation: gray to the fully saturated current hue, both at
// mid lightness.
func hslSaturationRule(v values) Gradient {
	h := v.get("h", 0)
	r0, g0, b0 := HSLToRGB(h, 0, 50)
	r1, g1, b1 := HSLToRGB(h, 100, 50)
	return Gradient{Stops: []ColorStop{
		rgbStop(0, r0, g0, b0),
		rgbStop(1, r1, g1, b1),
	}}
}

// HSL lightness: black through the current hue/saturation at L=50 to
// white.
func hslLightnessRule(v values) Gradient {
	h := v.get("h", 0)
	s := v.get("s", 100)
	r, g, b := HSLToRGB(h, s, 50)
	return Gradient{Stops: []ColorStop{
		rgbStop(0, 0, 0, 0),
		rgbStop(0.5, r, g, b),
		rgbStop(1, 255, 255, 255),
	}}
}

// HSV saturation: desaturated to fully saturated at the current hue
// and value.
func hsvSaturationRule(v values) Gradient {
	h := v.get("h", 0)
	vv := v.get("v", 100)
	r0, g0, b0 := HSVToRGB(h, 0, vv)
	r1, g1, b1 := HSVToRGB(h, 100, vv)
	return Gradient{Stops: []ColorStop{
		rgbStop(0, r0, g0, b0),
		rgbStop(1, r1, g1, b1),
	}}
}

// HSV value: black to the current hue/saturation at full value.
func hsvValueRule(v values) Gradient {
	h := v.get("h", 0)
	s := v.get("s", 100)
	r, g, b := HSVToRGB(h, s, 100)
	return Gradient{Stops: []ColorStop{
		rgbStop(0, 0, 0, 0),
		rgbStop(1, r, g, b),
	}}
}

// Lab a*: sweep a* across min/neutral/max at the current L and b*.
func labARule(v values) Gradient {
	l := v.get("l", 50)
	b := v.get("b", 0)
	r0, g0, b0 := LabToRGB(l, -128, b)
	r1, g1, b1 := LabToRGB(l, 0, b)
	r2, g2, b2 := LabToRGB(l, 127, b)
	return Gradient{Stops: []ColorStop{
		rgbStop(0, r0, g0, b0),
		rgbStop(0.5, r1, g1, b1),
		rgbStop(1, r2, g2, b2),
	}}
}

// Lab b*: sweep b* across min/neutral/max at the current L and a*.
func labBRule(v values) Gradient {
	l := v.get("l", 50)
	a := v.get("a", 0)
	r0, g0, b0 := LabToRGB(l, a, -128)
	r1, g1, b1 := LabToRGB(l, a, 0)
	r2, g2, b2 := LabToRGB(l, a, 127)
	return Gradient{Stops: []ColorStop{
		rgbStop(0, r0, g0, b0),
		rgbStop(0.5, r1, g1, b1),
		rgbStop(1, r2, g2, b2),
	}}
}

// LCh chroma: neutral gray to maximum chroma at the current L and h.
func lchChromaRule(v values) Gradient {
	l := v.get("l", 50)
	h := v.get("h", 0)
	r0, g0, b0 := LChToRGB(l, 0, h)
	r1, g1, b1 := LChToRGB(l, 132, h)
	return Gradient{Stops: []ColorStop{
		rgbStop(0, r0, g0, b0),
		rgbStop(1, r1, g1, b1),
	}}
}

// LCh hue ring: a full conic sweep at the current L and C, sampled
// every hueRingStep degrees with a closing stop equal to the first.
func lchHueRingRule(v values) Gradient {
	l := v.get("l", 50)
	c := v.get("c", 50)

	n := int(360 / hueRingStep)
	stops := make([]ColorStop, 0, n+1)
	for i := 0; i <= n; i++ {
		h := float64(i) * hueRingStep
		r, g, b := LChToRGB(l, c, h)
		stops = append(stops, rgbStop(float64(i)/float64(n), r, g, b))
	}
	return Gradient{Stops: stops, Conic: true}
}

// YCbCr Cb: fixed yellow and blue endpoints with the neutral midpoint
// at the current luma.
func ycbcrCbRule(v values) Gradient {
	y := v.get("y", 128)
	r0, g0, b0 := YCbCrToRGB(y, 0, 128)
	r1, g1, b1 := YCbCrToRGB(y, 128, 128)
	r2, g2, b2 := YCbCrToRGB(y, 255, 128)
	return Gradient{Stops: []ColorStop{
		rgbStop(0, r0, g0, b0),
		rgbStop(0.5, r1, g1, b1),
		rgbStop(1, r2, g2, b2),
	}}
}

// YCbCr Cr: fixed green and red endpoints with the neutral midpoint
// at the current luma.
func ycbcrCrRule(v values) Gradient {
	y := v.get("y", 128)
	r0, g0, b0 := YCbCrToRGB(y, 128, 0)
	r1, g1, b1 := YCbCrToRGB(y, 128, 128)
	r2, g2, b2 := YCbCrToRGB(y, 128, 255)
	return Gradient{Stops: []ColorStop{
		rgbStop(0, r0, g0, b0),
		rgbStop(0.5, r1, g1, b1),
		rgbStop(1, r2, g2, b2),
	}}
}
