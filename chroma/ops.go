package chroma

import (
	"fmt"
	"math"
	"math/rand/v2"

	"colorart/colorspace"
	"colorart/conversion"
)

func checkAmount(amount float64) error {
	if math.Abs(amount) > 1 || math.IsNaN(amount) {
		return fmt.Errorf("amount must be between -1 and 1, got %g", amount)
	}
	return nil
}

// Mix blends other into c. weight is the share of other, clamped to 0..1.
func (c Color) Mix(other Color, weight float64) Color {
	w := clamp(weight, 0, 1)
	o := 1 - w
	return New(
		c.rgb[0]*o+other.rgb[0]*w,
		c.rgb[1]*o+other.rgb[1]*w,
		c.rgb[2]*o+other.rgb[2]*w,
		c.alpha*o+other.alpha*w,
	)
}

// Tint mixes c with white; amount is the share of c that is kept.
func (c Color) Tint(amount float64) Color {
	return c.Mix(White, 1-amount)
}

// Shade mixes c with black; amount is the share of c that is kept.
func (c Color) Shade(amount float64) Color {
	return c.Mix(Black, 1-amount)
}

func (c Color) withHSL(h, s, l float64) Color {
	r, g, b := conversion.HSLToRGB(h, s, l)
	return New(r, g, b, c.alpha)
}

// Darken lowers the HSL lightness by amount.
func (c Color) Darken(amount float64) Color {
	hsl := c.VecOf(colorspace.HSL)
	return c.withHSL(hsl[0], hsl[1], clamp(hsl[2]-amount, 0, 1))
}

func (c Color) Lighten(amount float64) Color {
	return c.Darken(-amount)
}

// Saturate raises the HSL saturation by amount, which must lie in -1..1.
func (c Color) Saturate(amount float64) (Color, error) {
	if err := checkAmount(amount); err != nil {
		return c, err
	}
	hsl := c.VecOf(colorspace.HSL)
	return c.withHSL(hsl[0], clamp(hsl[1]+amount, 0, 1), hsl[2]), nil
}

func (c Color) Desaturate(amount float64) (Color, error) {
	return c.Saturate(-amount)
}

// Greyscale drops all saturation.
func (c Color) Greyscale() Color {
	hsl := c.VecOf(colorspace.HSL)
	return c.withHSL(hsl[0], 0, hsl[2])
}

// Spin rotates the hue by angle degrees.
func (c Color) Spin(angle float64) Color {
	hsl := c.VecOf(colorspace.HSL)
	h := math.Mod(hsl[0]+angle, 360)
	if h < 0 {
		h += 360
	}
	return c.withHSL(h, hsl[1], hsl[2])
}

func (c Color) Negate() Color {
	return New(255-c.rgb[0], 255-c.rgb[1], 255-c.rgb[2], c.alpha)
}

// Fade sets alpha, which must lie in 0..1.
func (c Color) Fade(alpha float64) (Color, error) {
	if !(alpha >= 0 && alpha <= 1) {
		return c, fmt.Errorf("alpha must be between 0 and 1, got %g", alpha)
	}
	c.alpha = alpha
	return c, nil
}

// FadeIn raises alpha by amount, clamping the result to 0..1.
func (c Color) FadeIn(amount float64) (Color, error) {
	if err := checkAmount(amount); err != nil {
		return c, err
	}
	return c.Fade(clamp(c.alpha+amount, 0, 1))
}

func (c Color) FadeOut(amount float64) (Color, error) {
	return c.FadeIn(-amount)
}

// Average is the channel-wise mean of colors, alpha included. No colors
// yield the zero Color.
func Average(colors ...Color) Color {
	if len(colors) == 0 {
		return Color{}
	}
	var sum [4]float64
	for _, c := range colors {
		sum[0] += c.rgb[0]
		sum[1] += c.rgb[1]
		sum[2] += c.rgb[2]
		sum[3] += c.alpha
	}
	n := float64(len(colors))
	return New(sum[0]/n, sum[1]/n, sum[2]/n, sum[3]/n)
}

// Random returns an opaque color with uniformly drawn byte channels.
func Random() Color {
	n := rand.Uint32N(1 << 24)
	c, _ := FromNum(n)
	return c
}
