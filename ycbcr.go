package colorviz

// YCbCr conversions follow ITU-R BT.601 with studio-swing offsets:
// Y carries a +16 offset (nominal range 16-235) and Cb/Cr carry +128
// (nominal 16-240). Mid gray therefore encodes to Y≈126, not 128; the
// chroma planes stay exactly neutral at 128.

// RGBToYCbCr converts sRGB (0-255) to YCbCr (0-255).
func RGBToYCbCr(r, g, b float64) (y, cb, cr float64) {
	rf := clamp255(r) / 255
	gf := clamp255(g) / 255
	bf := clamp255(b) / 255

	y = 16 + 65.481*rf + 128.553*gf + 24.966*bf
	cb = 128 - 37.797*rf - 74.203*gf + 112.0*bf
	cr = 128 + 112.0*rf - 93.786*gf - 18.214*bf

	return clamp255(y), clamp255(cb), clamp255(cr)
}

// YCbCrToRGB converts YCbCr (0-255) back to sRGB (0-255). Offsets are
// removed before the inverse matrix; the result clamps to [0,255]
// since many Y/Cb/Cr combinations fall outside the RGB cube.
func YCbCrToRGB(y, cb, cr float64) (r, g, b float64) {
	yf := y - 16
	cbf := cb - 128
	crf := cr - 128

	r = 255 * (0.00456621*yf + 0.00625893*crf)
	g = 255 * (0.00456621*yf - 0.00153632*cbf - 0.00318811*crf)
	b = 255 * (0.00456621*yf + 0.00791071*cbf)

	return clamp255(r), clamp255(g), clamp255(b)
}
