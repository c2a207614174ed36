package colorviz

// RGBToCMYK converts sRGB (0-255) to CMYK percentages.
// Pure black (k == 1) has no defined ink ratios, so it returns
// C=M=Y=0, K=100 instead of dividing by zero.
func RGBToCMYK(r, g, b float64) (c, m, y, k float64) {
	rf := clamp255(r) / 255
	gf := clamp255(g) / 255
	bf := clamp255(b) / 255

	kf := 1 - max3(rf, gf, bf)
	if kf == 1 {
		return 0, 0, 0, 100
	}

	c = (1 - rf - kf) / (1 - kf) * 100
	m = (1 - gf - kf) / (1 - kf) * 100
	y = (1 - bf - kf) / (1 - kf) * 100
	return c, m, y, kf * 100
}

// CMYKToRGB converts CMYK percentages to sRGB (0-255).
// Full key (k=100) yields black regardless of C, M, Y.
func CMYKToRGB(c, m, y, k float64) (r, g, b float64) {
	cf := clamp(c, 0, 100) / 100
	mf := clamp(m, 0, 100) / 100
	yf := clamp(y, 0, 100) / 100
	kf := clamp(k, 0, 100) / 100

	r = 255 * (1 - cf) * (1 - kf)
	g = 255 * (1 - mf) * (1 - kf)
	b = 255 * (1 - yf) * (1 - kf)
	return
}
