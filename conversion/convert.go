package conversion

import (
	"fmt"

	"colorart/colorspace"
)

// ToRGB converts values of space into RGB channels (0..255) and alpha (0..1).
// Spaces without an alpha component yield alpha 1. HEX and HEXA take their
// decoded channel values. Ranges are not checked.
func ToRGB(space colorspace.Space, values []float64) (rgb [3]float64, alpha float64, err error) {
	if space == colorspace.Unknown {
		return rgb, 0, colorspace.ErrUnknownSpace
	}
	if len(values) != space.Arity() {
		return rgb, 0, fmt.Errorf("%w: %s color space requires %d values, got %d",
			colorspace.ErrArity, space, space.Arity(), len(values))
	}

	alpha = 1
	var r, g, b float64
	switch space {
	case colorspace.RGB, colorspace.HEX:
		r, g, b = values[0], values[1], values[2]
	case colorspace.RGBA, colorspace.HEXA:
		r, g, b, alpha = values[0], values[1], values[2], values[3]
	case colorspace.HSL:
		r, g, b = HSLToRGB(values[0], values[1], values[2])
	case colorspace.HSLA:
		r, g, b = HSLToRGB(values[0], values[1], values[2])
		alpha = values[3]
	case colorspace.HSV:
		r, g, b = HSVToRGB(values[0], values[1], values[2])
	case colorspace.HSI:
		r, g, b = HSIToRGB(values[0], values[1], values[2])
	case colorspace.HWB:
		r, g, b = HWBToRGB(values[0], values[1], values[2])
	case colorspace.CMYK:
		r, g, b = CMYKToRGB(values[0], values[1], values[2], values[3])
	case colorspace.XYZ:
		r, g, b = XYZToRGB(values[0], values[1], values[2])
	case colorspace.Lab:
		r, g, b = LabToRGB(values[0], values[1], values[2])
	case colorspace.YIQ:
		r, g, b = YIQToRGB(values[0], values[1], values[2])
	case colorspace.YUV:
		r, g, b = YUVToRGB(values[0], values[1], values[2])
	case colorspace.YCbCr:
		r, g, b = YCbCrToRGB(values[0], values[1], values[2])
	default:
		return rgb, 0, fmt.Errorf("%w: %d", colorspace.ErrUnknownSpace, space)
	}

	return [3]float64{r, g, b}, alpha, nil
}

// FromRGB projects RGB channels and alpha onto space, in the space's
// canonical component order.
func FromRGB(space colorspace.Space, rgb [3]float64, alpha float64) ([]float64, error) {
	r, g, b := rgb[0], rgb[1], rgb[2]

	three := func(x, y, z float64) []float64 { return []float64{x, y, z} }

	switch space {
	case colorspace.RGB, colorspace.HEX:
		return three(r, g, b), nil
	case colorspace.RGBA, colorspace.HEXA:
		return []float64{r, g, b, alpha}, nil
	case colorspace.HSL:
		return three(RGBToHSL(r, g, b)), nil
	case colorspace.HSLA:
		return append(three(RGBToHSL(r, g, b)), alpha), nil
	case colorspace.HSV:
		return three(RGBToHSV(r, g, b)), nil
	case colorspace.HSI:
		return three(RGBToHSI(r, g, b)), nil
	case colorspace.HWB:
		return three(RGBToHWB(r, g, b)), nil
	case colorspace.CMYK:
		c, m, y, k := RGBToCMYK(r, g, b)
		return []float64{c, m, y, k}, nil
	case colorspace.XYZ:
		return three(RGBToXYZ(r, g, b)), nil
	case colorspace.Lab:
		return three(RGBToLab(r, g, b)), nil
	case colorspace.YIQ:
		return three(RGBToYIQ(r, g, b)), nil
	case colorspace.YUV:
		return three(RGBToYUV(r, g, b)), nil
	case colorspace.YCbCr:
		return three(RGBToYCbCr(r, g, b)), nil
	case colorspace.Unknown:
		return nil, colorspace.ErrUnknownSpace
	default:
		return nil, fmt.Errorf("%w: %d", colorspace.ErrUnknownSpace, space)
	}
}
