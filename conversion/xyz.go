// based on:
// https://drafts.csswg.org/css-color-4/#color-conversion-code

package conversion

import "math"

var (
	linearSRGBToXYZ = Matrix{
		{506752.0 / 1228815, 87881.0 / 245763, 12673.0 / 70218},
		{87098.0 / 409605, 175762.0 / 245763, 12673.0 / 175545},
		{7918.0 / 409605, 87881.0 / 737289, 1001167.0 / 1053270},
	}

	xyzToLinearSRGB = Matrix{
		{12831.0 / 3959, -329.0 / 214, -1974.0 / 3959},
		{-851781.0 / 878810, 1648619.0 / 878810, 36519.0 / 878810},
		{705.0 / 12673, -2585.0 / 12673, 705.0 / 667},
	}

	// Bradford chromatic adaptation
	d65ToD50 = Matrix{
		{1.0479297925449969, 0.022946870601609652, -0.05019226628920524},
		{0.02962780877005599, 0.9904344267538799, -0.017073799063418826},
		{-0.009243040646204504, 0.015055191490298152, 0.7518742814281371},
	}

	d50ToD65 = Matrix{
		{0.955473421488075, -0.02309845494876471, 0.06325924320057072},
		{-0.0283697093338637, 1.0099953980813041, 0.021041441191917323},
		{0.012314014864481998, -0.020507649298898964, 1.330365926242124},
	}
)

// ToLinear decodes an sRGB channel (0..1) to linear light.
func ToLinear(c float64) float64 {
	if c <= 0.04045 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

const pow float64 = 1.0 / 2.4

// FromLinear encodes a linear-light channel back to sRGB (0..1).
func FromLinear(c float64) float64 {
	if c <= 0.0031308 {
		return 12.92 * c
	}
	return 1.055*math.Pow(c, pow) - 0.055
}

// RGBToXYZ converts to CIE XYZ relative to D65, Y of white being 1.
func RGBToXYZ(r, g, b float64) (float64, float64, float64) {
	r, g, b = normalize(r, g, b)
	return apply(linearSRGBToXYZ, ToLinear(r), ToLinear(g), ToLinear(b))
}

// XYZToRGB is the inverse of RGBToXYZ. Out of gamut input yields channels
// outside 0..255.
func XYZToRGB(x, y, z float64) (float64, float64, float64) {
	r, g, b := apply(xyzToLinearSRGB, x, y, z)
	return toByteScale(FromLinear(r), FromLinear(g), FromLinear(b))
}
