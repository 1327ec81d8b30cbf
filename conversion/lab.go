package conversion

import "math"

// D50 reference white, Y normalized to 1
const (
	d50X = 0.3457 / 0.3585
	d50Z = (1.0 - 0.3457 - 0.3585) / 0.3585
)

const (
	labEpsilon = 216.0 / 24389
	labKappa   = 24389.0 / 27
)

func labF(t float64) float64 {
	if t > labEpsilon {
		return math.Cbrt(t)
	}
	return (labKappa*t + 16) / 116
}

// XYZToLab converts D65 XYZ to CIE L*a*b* relative to D50, adapting the white
// point first.
func XYZToLab(x, y, z float64) (float64, float64, float64) {
	x, y, z = apply(d65ToD50, x, y, z)

	f0 := labF(x / d50X)
	f1 := labF(y)
	f2 := labF(z / d50Z)

	return 116*f1 - 16, 500 * (f0 - f1), 200 * (f1 - f2)
}

// LabToXYZ is the inverse of XYZToLab and returns D65 XYZ.
func LabToXYZ(l, a, b float64) (float64, float64, float64) {
	f1 := (l + 16) / 116
	f0 := a/500 + f1
	f2 := f1 - b/200

	var x, y, z float64
	if f0*f0*f0 > labEpsilon {
		x = f0 * f0 * f0
	} else {
		x = (116*f0 - 16) / labKappa
	}
	if l > labKappa*labEpsilon {
		y = f1 * f1 * f1
	} else {
		y = l / labKappa
	}
	if f2*f2*f2 > labEpsilon {
		z = f2 * f2 * f2
	} else {
		z = (116*f2 - 16) / labKappa
	}

	return apply(d50ToD65, x*d50X, y, z*d50Z)
}

// RGBToLab converts through XYZ.
func RGBToLab(r, g, b float64) (float64, float64, float64) {
	return XYZToLab(RGBToXYZ(r, g, b))
}

// LabToRGB converts through XYZ and rounds the resulting channels.
func LabToRGB(l, a, b float64) (float64, float64, float64) {
	return XYZToRGB(LabToXYZ(l, a, b))
}
