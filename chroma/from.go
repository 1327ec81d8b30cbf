package chroma

import (
	"fmt"

	"golang.org/x/exp/constraints"

	"colorart/colorspace"
	"colorart/conversion"
	"colorart/names"
)

type number interface {
	constraints.Integer | constraints.Float
}

// FromRGB builds an opaque color from channels in 0..255.
func FromRGB[T number](r, g, b T) (Color, error) {
	return FromSpace(colorspace.RGB, float64(r), float64(g), float64(b))
}

// FromRGBA builds a color from channels in 0..255 and alpha in 0..1.
func FromRGBA[T number](r, g, b T, alpha float64) (Color, error) {
	return FromSpace(colorspace.RGBA, float64(r), float64(g), float64(b), alpha)
}

func FromHSL(h, s, l float64) (Color, error) {
	return FromSpace(colorspace.HSL, h, s, l)
}

func FromHSV(h, s, v float64) (Color, error) {
	return FromSpace(colorspace.HSV, h, s, v)
}

func FromCMYK(c, m, y, k float64) (Color, error) {
	return FromSpace(colorspace.CMYK, c, m, y, k)
}

// FromSpace validates values against space and converts them.
func FromSpace(space colorspace.Space, values ...float64) (Color, error) {
	if err := space.Valid(values); err != nil {
		return Color{}, err
	}
	return fromValues(space, values)
}

// FromHex decodes #rgb, #rgba, #rrggbb or #rrggbbaa.
func FromHex(hex string) (Color, error) {
	r, g, b, a, err := conversion.HexToRGBA(hex)
	if err != nil {
		return Color{}, err
	}
	return New(r, g, b, a), nil
}

// FromName looks name up in the default tables.
func FromName(name string) (Color, error) {
	hex, err := names.Hex(name)
	if err != nil {
		return Color{}, err
	}
	return FromHex(hex)
}

// FromNum builds an opaque color from a 0xrrggbb integer.
func FromNum(num uint32) (Color, error) {
	if num > 0xffffff {
		return Color{}, fmt.Errorf("color number %#x out of range 0..0xffffff", num)
	}
	return New(float64(num>>16&0xff), float64(num>>8&0xff), float64(num&0xff), 1), nil
}
