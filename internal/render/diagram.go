// Package render rasterizes the library's geometry and gradients into
// images: the CIE chromaticity diagram, slider track strips, and the
// conic hue ring. It is the CPU stand-in for the interactive canvas
// layer and the only part of the repository that touches pixels.
package render

import (
	"image"
	"image/color"
	"time"

	"golang.org/x/image/draw"

	colorviz "github.com/JalalJaberi/negarity-color-visualizer"
)

// Diagram viewport in chromaticity coordinates. The visible locus fits
// inside x ∈ [0, 0.8], y ∈ [0, 0.9] with a little margin.
const (
	viewMaxX = 0.8
	viewMaxY = 0.9
)

// DiagramOptions configures RenderDiagram.
type DiagramOptions struct {
	Width, Height int

	// Luminance (CIE Y, 0-100) used to color every chromaticity
	// sample. 100 gives the familiar bright horseshoe.
	Luminance float64

	// Gamut, when non-nil, is drawn as a polygon outline on top of
	// the spectrum (e.g. colorviz.RGBGamutVertices()).
	Gamut []colorviz.Point

	// Supersample is the oversampling factor along each axis before
	// the bilinear downscale; 0 means 2.
	Supersample int

	// Background fills everything outside the spectral locus.
	// The zero value paints it black.
	Background color.NRGBA
}

// RenderDiagram paints the CIE 1931 chromaticity diagram: every sample
// inside the spectral locus is colored through XYToRGB at the given
// luminance, everything outside gets the background. The image is
// rendered at Supersample times the requested size and downscaled with
// bilinear filtering so the curved locus edge stays smooth.
func RenderDiagram(opts DiagramOptions) *image.RGBA {
	start := time.Now()

	w, h := opts.Width, opts.Height
	if w <= 0 {
		w = 400
	}
	if h <= 0 {
		h = 400
	}
	ss := opts.Supersample
	if ss <= 0 {
		ss = 2
	}
	lum := opts.Luminance
	if lum <= 0 {
		lum = 100
	}
	bg := opts.Background
	bg.A = 255

	locus := colorviz.SpectralLocus()

	big := image.NewRGBA(image.Rect(0, 0, w*ss, h*ss))
	bw, bh := w*ss, h*ss
	for py := 0; py < bh; py++ {
		// Chromaticity y grows upward, image y grows downward.
		cy := viewMaxY * float64(bh-1-py) / float64(bh-1)
		for px := 0; px < bw; px++ {
			cx := viewMaxX * float64(px) / float64(bw-1)

			i := big.PixOffset(px, py)
			if colorviz.PointInPolygon(colorviz.Pt(cx, cy), locus) {
				r, g, b := colorviz.XYToRGB(cx, cy, lum)
				big.Pix[i+0] = uint8(r + 0.5)
				big.Pix[i+1] = uint8(g + 0.5)
				big.Pix[i+2] = uint8(b + 0.5)
			} else {
				big.Pix[i+0] = bg.R
				big.Pix[i+1] = bg.G
				big.Pix[i+2] = bg.B
			}
			big.Pix[i+3] = 255
		}
	}

	if opts.Gamut != nil {
		outlinePolygon(big, opts.Gamut, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.BiLinear.Scale(dst, dst.Bounds(), big, big.Bounds(), draw.Src, nil)

	colorviz.Logger().Debug("rendered chromaticity diagram",
		"width", w, "height", h, "supersample", ss,
		"elapsed", time.Since(start))

	return dst
}

// outlinePolygon strokes the closed polygon into img, sampling each
// edge densely enough to leave no gaps at the working resolution.
func outlinePolygon(img *image.RGBA, poly []colorviz.Point, c color.NRGBA) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	for i := range poly {
		p0 := poly[i]
		p1 := poly[(i+1)%len(poly)]

		steps := int(p0.Distance(p1)/viewMaxX*float64(w)) * 2
		if steps < 2 {
			steps = 2
		}
		for s := 0; s <= steps; s++ {
			t := float64(s) / float64(steps)
			pt := p0.Add(p1.Sub(p0).Mul(t))
			px := int(pt.X / viewMaxX * float64(w-1))
			py := h - 1 - int(pt.Y/viewMaxY*float64(h-1))
			if px < 0 || px >= w || py < 0 || py >= h {
				continue
			}
			img.SetRGBA(px, py, color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A})
		}
	}
}
