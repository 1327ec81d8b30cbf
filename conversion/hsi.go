package conversion

import "math"

// RGBToHSI converts to hue (degrees), saturation and intensity (0..1).
//
// based on:
// https://en.wikipedia.org/wiki/HSL_and_HSV#Hue_and_chroma
func RGBToHSI(r, g, b float64) (float64, float64, float64) {
	r, g, b = normalize(r, g, b)

	var theta float64
	den := math.Sqrt((r-g)*(r-g) + (r-b)*(g-b))
	if den != 0 {
		num := 0.5 * ((r - g) + (r - b))
		theta = math.Acos(clamp(num/den, -1, 1)) * radToDeg
	}

	h := theta
	if b > g {
		h = 360 - theta
	}

	i := (r + g + b) / 3
	var s float64
	if i != 0 {
		s = 1 - math.Min(math.Min(r, g), b)/i
	}

	return h, s, i
}

// HSIToRGB is the inverse of RGBToHSI. Each 120 degree sector rebuilds one
// channel from the cosine ratio and derives the others from intensity.
func HSIToRGB(h, s, i float64) (float64, float64, float64) {
	h = wrapHue(h)

	sector := func(h float64) (float64, float64, float64) {
		h *= degToRad
		lo := i * (1 - s)
		hi := i * (1 + s*math.Cos(h)/math.Cos(math.Pi/3-h))
		return lo, hi, 3*i - (lo + hi)
	}

	var r, g, b float64
	switch {
	case h < 120:
		b, r, g = sector(h)
	case h < 240:
		r, g, b = sector(h - 120)
	default:
		g, b, r = sector(h - 240)
	}

	return toByteScale(r, g, b)
}
