package conversion

// Luma weights shared by the analog and digital video encodings (ITU-R BT.601)
const (
	lumaR = 0.299
	lumaG = 0.587
	lumaB = 0.114
)

// RGBToYUV converts to analog YUV with Y in 0..1.
//
// based on:
// https://github.com/opencv/opencv_contrib/blob/master/modules/cudev/include/opencv2/cudev/functional/detail/color_cvt.hpp
func RGBToYUV(r, g, b float64) (float64, float64, float64) {
	r, g, b = normalize(r, g, b)
	y := lumaR*r + lumaG*g + lumaB*b
	return y, 0.492 * (b - y), 0.877 * (r - y)
}

// YUVToRGB is the inverse of RGBToYUV.
func YUVToRGB(y, u, v float64) (float64, float64, float64) {
	r := y + 1.14*v
	g := y - 0.395*u - 0.581*v
	b := y + 2.032*u
	return toByteScale(r, g, b)
}

// RGBToYCbCr converts to full range YCbCr with every component in 0..255.
//
// based on:
// https://docs.opencv.org/4.7.0/de/d25/imgproc_color_conversions.html#color_convert_rgb_ycrcb
func RGBToYCbCr(r, g, b float64) (float64, float64, float64) {
	y := lumaR*r + lumaG*g + lumaB*b
	cb := (b-y)*0.564 + 128
	cr := (r-y)*0.713 + 128
	return y, cb, cr
}

// YCbCrToRGB is the inverse of RGBToYCbCr.
func YCbCrToRGB(y, cb, cr float64) (float64, float64, float64) {
	r := y + 1.403*(cr-128)
	g := y - 0.344*(cb-128) - 0.714*(cr-128)
	b := y + 1.773*(cb-128)
	return Round(r, 0), Round(g, 0), Round(b, 0)
}

// RGBToYIQ converts to NTSC YIQ with Y in 0..1.
//
// based on:
// https://en.wikipedia.org/wiki/YIQ
func RGBToYIQ(r, g, b float64) (float64, float64, float64) {
	r, g, b = normalize(r, g, b)
	y := lumaR*r + lumaG*g + lumaB*b
	i := 0.595716*r - 0.274453*g - 0.321263*b
	q := 0.211456*r - 0.522591*g + 0.311135*b
	return y, i, q
}

// YIQToRGB is the inverse of RGBToYIQ.
func YIQToRGB(y, i, q float64) (float64, float64, float64) {
	r := y + 0.956*i + 0.619*q
	g := y - 0.272*i - 0.647*q
	b := y - 1.106*i + 1.703*q
	return toByteScale(r, g, b)
}
