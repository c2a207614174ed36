package render

import (
	"image"
	"math"

	colorviz "github.com/JalalJaberi/negarity-color-visualizer"
)

// RenderStrip paints a gradient into a horizontal slider track of the
// given size. Column x shows the gradient color at offset x/(w-1).
func RenderStrip(g *colorviz.Gradient, w, h int) *image.RGBA {
	if w <= 0 {
		w = 256
	}
	if h <= 0 {
		h = 24
	}

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		t := float64(x) / float64(w-1)
		c := g.ColorAt(t)

		r := uint8(c.R + 0.5)
		gg := uint8(c.G + 0.5)
		b := uint8(c.B + 0.5)
		for y := 0; y < h; y++ {
			i := img.PixOffset(x, y)
			img.Pix[i+0] = r
			img.Pix[i+1] = gg
			img.Pix[i+2] = b
			img.Pix[i+3] = 255
		}
	}
	return img
}

// RenderWheel paints a conic gradient into an annulus of the given
// outer size. The angle of each pixel, measured clockwise from the
// top, selects the gradient offset; pixels outside the ring stay
// transparent. inner is the inner radius as a fraction of the outer
// radius (0 gives a full disc).
func RenderWheel(g *colorviz.Gradient, size int, inner float64) *image.RGBA {
	if size <= 0 {
		size = 256
	}
	inner = math.Min(math.Max(inner, 0), 0.95)

	img := image.NewRGBA(image.Rect(0, 0, size, size))
	center := float64(size-1) / 2
	outerR := center
	innerR := outerR * inner

	for py := 0; py < size; py++ {
		for px := 0; px < size; px++ {
			dx := float64(px) - center
			dy := float64(py) - center
			r := math.Hypot(dx, dy)
			if r < innerR || r > outerR {
				continue
			}

			// atan2 with x up, y right: zero at 12 o'clock, growing
			// clockwise, matching how the UI draws its hue ring.
			angle := math.Atan2(dx, -dy)
			if angle < 0 {
				angle += 2 * math.Pi
			}
			c := g.ColorAt(angle / (2 * math.Pi))

			i := img.PixOffset(px, py)
			img.Pix[i+0] = uint8(c.R + 0.5)
			img.Pix[i+1] = uint8(c.G + 0.5)
			img.Pix[i+2] = uint8(c.B + 0.5)
			img.Pix[i+3] = 255
		}
	}
	return img
}
