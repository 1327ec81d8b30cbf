package chroma

import (
	"math"

	"colorart/colorspace"
	"colorart/conversion"
)

func channel(v float64) uint8 {
	return uint8(clamp(conversion.Round(v, 0), 0, 255))
}

func (c Color) Red() uint8   { return channel(c.rgb[0]) }
func (c Color) Green() uint8 { return channel(c.rgb[1]) }
func (c Color) Blue() uint8  { return channel(c.rgb[2]) }

// Opacity is the unrounded alpha.
func (c Color) Opacity() float64 { return c.alpha }

// Alpha is rounded to two decimals.
func (c Color) Alpha() float64 {
	return conversion.Round(c.alpha, 2)
}

func (c Color) Hue() float64        { return c.VecOf(colorspace.HSL)[0] }
func (c Color) Saturation() float64 { return c.VecOf(colorspace.HSL)[1] }
func (c Color) Lightness() float64  { return c.VecOf(colorspace.HSL)[2] }

func (c Color) Whiteness() float64 { return c.VecOf(colorspace.HWB)[1] }
func (c Color) Blackness() float64 { return c.VecOf(colorspace.HWB)[2] }

func (c Color) HSVHue() float64        { return c.VecOf(colorspace.HSV)[0] }
func (c Color) HSVSaturation() float64 { return c.VecOf(colorspace.HSV)[1] }
func (c Color) HSVValue() float64      { return c.VecOf(colorspace.HSV)[2] }

// Luminance is the WCAG 2 relative luminance.
//
// based on:
// https://www.w3.org/TR/WCAG20/#relativeluminancedef
func (c Color) Luminance() float64 {
	lin := func(v float64) float64 {
		v /= 255
		if v <= 0.03928 {
			return v / 12.92
		}
		return math.Pow((v+0.055)/1.055, 2.4)
	}
	return 0.2126*lin(c.rgb[0]) + 0.7152*lin(c.rgb[1]) + 0.0722*lin(c.rgb[2])
}

// Gray is the BT.601 luma on the 0..255 scale.
func (c Color) Gray() float64 {
	return 0.299*c.rgb[0] + 0.587*c.rgb[1] + 0.114*c.rgb[2]
}
