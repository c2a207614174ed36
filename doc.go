// Package colorviz implements the color math behind an interactive
// color-space visualizer.
//
// # Overview
//
// The package has three layers, all pure functions:
//
//   - Conversion core: bidirectional transforms among sRGB, linear
//     RGB, CIE XYZ, xy chromaticity, HSL, HSV, CMYK, CIE Lab, LCh and
//     YCbCr (BT.601). Functions take and return plain float64 tuples.
//   - Chromaticity geometry: the sRGB gamut triangle, the process-ink
//     quadrilateral, the CIE 1931 spectral locus, and a ray-casting
//     point-in-polygon test for painting chromaticity diagrams.
//   - Dependent-channel derivation: given the current values of a
//     color's other channels, DeriveGradient computes the gradient a
//     slider track should show for one channel (for example the HSL
//     saturation track at the current hue).
//
// # Conventions
//
// RGB channels are 0-255, HSL/HSV saturation and lightness/value are
// percentages, CMYK components are percentages, XYZ is reported on the
// conventional 0-100 scale (Y=100 for D65 white), Lab L is 0-100 with
// a*/b* in [-128,127], and hue angles are degrees in [0,360).
//
// Every conversion is total: out-of-range input is clamped or resolved
// by a documented degenerate rule, never rejected. Callers feed these
// functions from live drag state at pointer-move frequency, so they
// allocate nothing and keep no state between calls.
//
// # Quick start
//
//	h, s, l := colorviz.RGBToHSL(255, 0, 0) // 0, 100, 50
//	g := colorviz.DeriveGradient(colorviz.SpaceHSL, "s", map[string]float64{"h": h})
//	for _, stop := range g.Stops {
//		fmt.Println(stop.Offset, stop.Color.Hex())
//	}
//
// Rendering of diagrams, slider strips and hue rings lives in
// internal/render and the colorviz command; the library itself never
// touches an image.
package colorviz
