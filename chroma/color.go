// Package chroma holds the canonical Color value: sRGB channels in 0..255 and
// an alpha in 0..1. Every color space converts through it.
package chroma

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"

	"colorart/colorspace"
	"colorart/conversion"
)

// Color is an immutable sRGB color. The zero value is transparent black.
type Color struct {
	rgb   [3]float64
	alpha float64
}

// New builds a color without range checks.
func New(r, g, b, alpha float64) Color {
	return Color{rgb: [3]float64{r, g, b}, alpha: alpha}
}

var (
	Black = New(0, 0, 0, 1)
	White = New(255, 255, 255, 1)
)

// RGB returns the raw channels.
func (c Color) RGB() (r, g, b float64) {
	return c.rgb[0], c.rgb[1], c.rgb[2]
}

// VecOf projects the color onto space. Unknown yields nil.
func (c Color) VecOf(space colorspace.Space) []float64 {
	v, _ := c.Space(space)
	return v
}

// Space projects the color onto space, in the space's component order.
func (c Color) Space(space colorspace.Space) ([]float64, error) {
	return conversion.FromRGB(space, c.rgb, c.alpha)
}

// RGBA implements color.Color with alpha-premultiplied 16-bit channels.
func (c Color) RGBA() (uint32, uint32, uint32, uint32) {
	a := clamp(c.alpha, 0, 1)
	return premul(c.rgb[0], a), premul(c.rgb[1], a), premul(c.rgb[2], a), uint32(a*0xffff + 0.5)
}

func premul(v, a float64) uint32 {
	return uint32(clamp(v, 0, 255)/255*a*0xffff + 0.5)
}

// Model converts any color.Color into a Color.
var Model = color.ModelFunc(modelConvert)

func modelConvert(c color.Color) color.Color {
	if _, ok := c.(Color); ok {
		return c
	}

	nc := color.NRGBA64Model.Convert(c).(color.NRGBA64)
	return New(
		float64(nc.R)/0xffff*255,
		float64(nc.G)/0xffff*255,
		float64(nc.B)/0xffff*255,
		float64(nc.A)/0xffff,
	)
}

// Colorful converts to a go-colorful color, dropping alpha.
func (c Color) Colorful() colorful.Color {
	return colorful.Color{R: c.rgb[0] / 255, G: c.rgb[1] / 255, B: c.rgb[2] / 255}
}

// FromColorful converts a go-colorful color, clamping it into gamut first.
func FromColorful(cc colorful.Color) Color {
	cc = cc.Clamped()
	return New(cc.R*255, cc.G*255, cc.B*255, 1)
}

func clamp(x, min, max float64) float64 {
	if x < min {
		return min
	} else if x > max {
		return max
	} else {
		return x
	}
}
