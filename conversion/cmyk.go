package conversion

import "math"

// CMYKToRGB converts cyan, magenta, yellow and black (0..1).
//
// based on:
// https://www.rapidtables.com/convert/color/cmyk-to-rgb.html
func CMYKToRGB(c, m, y, k float64) (float64, float64, float64) {
	return 255 * (1 - c) * (1 - k), 255 * (1 - m) * (1 - k), 255 * (1 - y) * (1 - k)
}

// RGBToCMYK is the inverse of CMYKToRGB. Pure black maps to k=1 with no ink
// in the other channels.
func RGBToCMYK(r, g, b float64) (float64, float64, float64, float64) {
	r, g, b = normalize(r, g, b)

	k := 1 - math.Max(math.Max(r, g), b)
	if k == 1 {
		return 0, 0, 0, 1
	}

	return (1 - r - k) / (1 - k), (1 - g - k) / (1 - k), (1 - b - k) / (1 - k), k
}
