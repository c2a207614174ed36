package render

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	colorviz "github.com/JalalJaberi/negarity-color-visualizer"
)

func TestRenderDiagram(t *testing.T) {
	img := RenderDiagram(DiagramOptions{Width: 64, Height: 64, Luminance: 100})
	require.NotNil(t, img)
	require.Equal(t, 64, img.Bounds().Dx())
	require.Equal(t, 64, img.Bounds().Dy())

	// The D65 white point lies inside the locus; its pixel must be
	// bright, not background.
	wp := colorviz.D65WhitePoint()
	px := int(wp.X / viewMaxX * 63)
	py := 63 - int(wp.Y/viewMaxY*63)
	r, g, b, _ := img.At(px, py).RGBA()
	assert.Greater(t, r>>8, uint32(200), "white point red channel")
	assert.Greater(t, g>>8, uint32(200), "white point green channel")
	assert.Greater(t, b>>8, uint32(200), "white point blue channel")

	// The top-right corner is far outside the horseshoe.
	r, g, b, _ = img.At(63, 0).RGBA()
	assert.Zero(t, r>>8, "corner should be background")
	assert.Zero(t, g>>8, "corner should be background")
	assert.Zero(t, b>>8, "corner should be background")
}

func TestRenderDiagram_Defaults(t *testing.T) {
	img := RenderDiagram(DiagramOptions{})
	require.NotNil(t, img)
	assert.Equal(t, 400, img.Bounds().Dx())
	assert.Equal(t, 400, img.Bounds().Dy())
}

func TestRenderDiagram_CustomBackground(t *testing.T) {
	img := RenderDiagram(DiagramOptions{
		Width: 32, Height: 32,
		Background: color.NRGBA{R: 30, G: 30, B: 30},
	})
	r, _, _, a := img.At(31, 0).RGBA()
	assert.InDelta(t, 30, int(r>>8), 2, "background red")
	assert.Equal(t, uint32(0xffff), a, "diagram is fully opaque")
}

func TestRenderDiagram_GamutOutline(t *testing.T) {
	plain := RenderDiagram(DiagramOptions{Width: 64, Height: 64})
	outlined := RenderDiagram(DiagramOptions{Width: 64, Height: 64, Gamut: colorviz.RGBGamutVertices()})

	// The outline must change at least some pixels.
	diff := 0
	for i := range plain.Pix {
		if plain.Pix[i] != outlined.Pix[i] {
			diff++
		}
	}
	assert.Positive(t, diff, "gamut outline changed no pixels")
}

func TestRenderStrip(t *testing.T) {
	g := colorviz.DeriveGradient(colorviz.SpaceHSL, "s", map[string]float64{"h": 0})
	require.NotNil(t, g)

	img := RenderStrip(g, 128, 16)
	require.Equal(t, 128, img.Bounds().Dx())
	require.Equal(t, 16, img.Bounds().Dy())

	// Right edge is the fully saturated hue: pure red.
	r, gg, b, _ := img.At(127, 8).RGBA()
	assert.Equal(t, uint32(255), r>>8)
	assert.Zero(t, gg>>8)
	assert.Zero(t, b>>8)

	// Left edge is mid gray.
	r, gg, b, _ = img.At(0, 8).RGBA()
	assert.InDelta(t, 128, int(r>>8), 2)
	assert.InDelta(t, 128, int(gg>>8), 2)
	assert.InDelta(t, 128, int(b>>8), 2)

	// Columns are constant top to bottom.
	top := img.RGBAAt(64, 0)
	bottom := img.RGBAAt(64, 15)
	assert.Equal(t, top, bottom)
}

func TestRenderStrip_Defaults(t *testing.T) {
	g := &colorviz.Gradient{Stops: []colorviz.ColorStop{
		{Offset: 0, Color: colorviz.Black},
		{Offset: 1, Color: colorviz.White},
	}}
	img := RenderStrip(g, 0, 0)
	assert.Equal(t, 256, img.Bounds().Dx())
	assert.Equal(t, 24, img.Bounds().Dy())
}

func TestRenderWheel(t *testing.T) {
	g := colorviz.DeriveGradient(colorviz.SpaceLCh, "h", map[string]float64{"l": 70, "c": 40})
	require.NotNil(t, g)
	require.True(t, g.Conic)

	img := RenderWheel(g, 128, 0.6)
	require.Equal(t, 128, img.Bounds().Dx())

	// Center is inside the inner radius: transparent.
	_, _, _, a := img.At(64, 64).RGBA()
	assert.Zero(t, a, "center should be transparent")

	// A point on the ring is opaque.
	_, _, _, a = img.At(64, 8).RGBA()
	assert.Equal(t, uint32(0xffff), a, "ring should be opaque")

	// Corners are outside the outer radius: transparent.
	_, _, _, a = img.At(0, 0).RGBA()
	assert.Zero(t, a, "corner should be transparent")
}
