package chroma

import (
	"fmt"
	"strconv"
	"strings"

	"colorart/colorspace"
	"colorart/conversion"
	"colorart/names"
)

// Hex is the shortest hex literal for the color: #rgb when every channel
// repeats its digit, with alpha digits only when alpha is below 1.
func (c Color) Hex() string {
	return conversion.ShortHex(c.HexFull())
}

// HexFull is #rrggbb, or #rrggbbaa when alpha is below 1.
func (c Color) HexFull() string {
	return conversion.RGBAToHex(c.rgb[0], c.rgb[1], c.rgb[2], c.alpha)
}

func (c Color) String() string { return c.Hex() }

// Name returns the color's name in the default tables, or its hex literal
// when it has none or is translucent.
func (c Color) Name() string {
	return c.NameWith(names.Default)
}

func (c Color) NameWith(lookup names.Lookup) string {
	if c.alpha < 1 {
		return c.Hex()
	}
	hex := c.HexFull()
	if name, ok := lookup.NameOf(hex); ok {
		return name
	}
	return hex
}

// Format renders the color in the CSS-like notation of space. Unknown
// renders as Hex.
func (c Color) Format(space colorspace.Space) string {
	switch space {
	case colorspace.HEX:
		return c.Hex()
	case colorspace.HEXA:
		return conversion.RGBAToHex8(c.rgb[0], c.rgb[1], c.rgb[2], c.alpha)
	case colorspace.RGB:
		return fmt.Sprintf("rgb(%d, %d, %d)", c.Red(), c.Green(), c.Blue())
	case colorspace.RGBA:
		return fmt.Sprintf("rgba(%d, %d, %d, %s)", c.Red(), c.Green(), c.Blue(), num(c.Alpha()))
	case colorspace.HSL, colorspace.HSV, colorspace.HWB:
		v := c.VecOf(space)
		return fmt.Sprintf("%s(%s, %s%%, %s%%)", space, rounded(v[0], 0), percent(v[1], 0), percent(v[2], 0))
	case colorspace.HSLA:
		v := c.VecOf(space)
		return fmt.Sprintf("hsla(%s, %s%%, %s%%, %s)", rounded(v[0], 0), percent(v[1], 0), percent(v[2], 0), num(c.Alpha()))
	case colorspace.HSI:
		v := c.VecOf(space)
		return fmt.Sprintf("hsi(%s, %s%%, %s%%)", rounded(v[0], 0), percent(v[1], 2), percent(v[2], 2))
	case colorspace.CMYK:
		v := c.VecOf(space)
		return fmt.Sprintf("cmyk(%s%%, %s%%, %s%%, %s%%)", percent(v[0], 0), percent(v[1], 0), percent(v[2], 0), percent(v[3], 0))
	case colorspace.XYZ:
		return c.tuple(space, 6)
	case colorspace.YIQ:
		return c.tuple(space, 5)
	case colorspace.YUV, colorspace.YCbCr:
		return c.tuple(space, 4)
	case colorspace.Lab:
		return c.tuple(space, 2)
	default:
		return c.Hex()
	}
}

func (c Color) tuple(space colorspace.Space, precision int) string {
	v := c.VecOf(space)
	parts := make([]string, len(v))
	for i, x := range v {
		parts[i] = rounded(x, precision)
	}
	return space.String() + "(" + strings.Join(parts, ", ") + ")"
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func rounded(v float64, precision int) string {
	return num(conversion.Round(v, precision))
}

func percent(v float64, precision int) string {
	return rounded(v*100, precision)
}
