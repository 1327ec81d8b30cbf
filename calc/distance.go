package calc

import (
	"math"

	"colorart/chroma"
	"colorart/colorspace"
)

// Distance is the Euclidean distance between the two colors' component
// vectors in space.
func Distance(c1, c2 chroma.Color, space colorspace.Space) (float64, error) {
	v1, err := c1.Space(space)
	if err != nil {
		return 0, err
	}
	v2, err := c2.Space(space)
	if err != nil {
		return 0, err
	}

	var sum float64
	for i := range v1 {
		d := v1[i] - v2[i]
		sum += d * d
	}
	return math.Sqrt(sum), nil
}

// ContrastRatio is the WCAG 2 contrast ratio, from 1 to 21.
//
// based on:
// https://www.w3.org/TR/WCAG20/#contrast-ratiodef
func ContrastRatio(c1, c2 chroma.Color) float64 {
	l1, l2 := c1.Luminance(), c2.Luminance()
	return (math.Max(l1, l2) + 0.05) / (math.Min(l1, l2) + 0.05)
}
