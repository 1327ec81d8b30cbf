package conversion

import "math"

// hueToRGB maps a hue, chroma and intermediate value onto the RGB sector the
// hue falls in.
func hueToRGB(h, c, x float64) (float64, float64, float64) {
	switch {
	case h < 60:
		return c, x, 0
	case h < 120:
		return x, c, 0
	case h < 180:
		return 0, c, x
	case h < 240:
		return 0, x, c
	case h < 300:
		return x, 0, c
	default:
		return c, 0, x
	}
}

// rgbHue returns the hue in degrees of normalized channels along with their
// maximum, minimum and chroma.
func rgbHue(r, g, b float64) (h, max, min, delta float64) {
	max = math.Max(math.Max(r, g), b)
	min = math.Min(math.Min(r, g), b)
	delta = max - min

	if delta == 0 {
		return 0, max, min, delta
	}

	switch max {
	case r:
		h = 60 * math.Mod((g-b)/delta, 6)
	case g:
		h = 60 * ((b-r)/delta + 2)
	default:
		h = 60 * ((r-g)/delta + 4)
	}
	if h < 0 {
		h += 360
	}
	return h, max, min, delta
}

// HSLToRGB converts hue (degrees), saturation and lightness (0..1).
//
// based on:
// https://www.rapidtables.com/convert/color/hsl-to-rgb.html
func HSLToRGB(h, s, l float64) (float64, float64, float64) {
	h = wrapHue(h)
	c := (1 - math.Abs(2*l-1)) * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := l - c/2

	r, g, b := hueToRGB(h, c, x)
	return (r + m) * 255, (g + m) * 255, (b + m) * 255
}

// RGBToHSL is the inverse of HSLToRGB.
func RGBToHSL(r, g, b float64) (float64, float64, float64) {
	h, max, min, delta := rgbHue(normalize(r, g, b))

	l := (max + min) / 2
	var s float64
	if delta != 0 {
		s = delta / (1 - math.Abs(2*l-1))
	}

	return h, s, l
}

// HSVToRGB converts hue (degrees), saturation and value (0..1).
//
// based on:
// https://www.rapidtables.com/convert/color/hsv-to-rgb.html
func HSVToRGB(h, s, v float64) (float64, float64, float64) {
	h = wrapHue(h)
	c := v * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := v - c

	r, g, b := hueToRGB(h, c, x)
	return (r + m) * 255, (g + m) * 255, (b + m) * 255
}

// RGBToHSV is the inverse of HSVToRGB.
func RGBToHSV(r, g, b float64) (float64, float64, float64) {
	h, max, _, delta := rgbHue(normalize(r, g, b))

	var s float64
	if max != 0 {
		s = delta / max
	}

	return h, s, max
}

// HWBToRGB converts hue (degrees), whiteness and blackness (0..1). When
// whiteness and blackness add up to 1 or more the result is a gray.
//
// based on:
// https://www.w3.org/TR/css-color-4/#hwb-to-rgb
func HWBToRGB(h, w, bl float64) (float64, float64, float64) {
	if w+bl >= 1 {
		gray := Round(w/(w+bl)*255, 0)
		return gray, gray, gray
	}

	r, g, b := HSLToRGB(h, 1, 0.5)
	f := 1 - w - bl
	return Round(r*f+w*255, 0), Round(g*f+w*255, 0), Round(b*f+w*255, 0)
}

// RGBToHWB is the inverse of HWBToRGB.
func RGBToHWB(r, g, b float64) (float64, float64, float64) {
	h, max, min, _ := rgbHue(normalize(r, g, b))
	return h, min, 1 - max
}
