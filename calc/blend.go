package calc

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"colorart/chroma"
)

type BlendMode uint8

const (
	Normal BlendMode = iota
	Multiply
	Darken
	Lighten
	Screen
	Overlay
	ColorBurn
	ColorDodge
	HardLight
	SoftLight
	Difference
	Exclusion
)

var blendModeNames = [...]string{
	Normal:     "normal",
	Multiply:   "multiply",
	Darken:     "darken",
	Lighten:    "lighten",
	Screen:     "screen",
	Overlay:    "overlay",
	ColorBurn:  "color-burn",
	ColorDodge: "color-dodge",
	HardLight:  "hard-light",
	SoftLight:  "soft-light",
	Difference: "difference",
	Exclusion:  "exclusion",
}

// BlendModes lists the mode names accepted by ParseBlendMode.
func BlendModes() []string {
	return slices.Clone(blendModeNames[:])
}

func (m BlendMode) String() string {
	if int(m) < len(blendModeNames) {
		return blendModeNames[m]
	}
	return fmt.Sprintf("BlendMode(%d)", m)
}

func ParseBlendMode(s string) (BlendMode, error) {
	for i, name := range blendModeNames {
		if strings.EqualFold(s, name) {
			return BlendMode(i), nil
		}
	}
	return Normal, fmt.Errorf("unknown blend mode %q", s)
}

func (m *BlendMode) UnmarshalText(text []byte) error {
	mode, err := ParseBlendMode(string(text))
	if err != nil {
		return err
	}
	*m = mode
	return nil
}

func (m BlendMode) fn() func(a, b float64) float64 {
	switch m {
	case Multiply:
		return multiply
	case Darken:
		return math.Min
	case Lighten:
		return math.Max
	case Screen:
		return screen
	case Overlay:
		return overlay
	case ColorBurn:
		return burn
	case ColorDodge:
		return dodge
	case HardLight:
		return hardLight
	case SoftLight:
		return softLight
	case Difference:
		return difference
	case Exclusion:
		return exclusion
	default:
		return normal
	}
}

// Blend composites source over backdrop channel by channel on normalized
// values. The result is opaque; Normal returns source unchanged.
//
// based on:
// https://www.w3.org/TR/compositing-1/#blending
func Blend(backdrop, source chroma.Color, mode BlendMode) chroma.Color {
	if mode == Normal {
		return source
	}
	f := mode.fn()
	br, bg, bb := backdrop.RGB()
	sr, sg, sb := source.RGB()
	return chroma.New(
		f(br/255, sr/255)*255,
		f(bg/255, sg/255)*255,
		f(bb/255, sb/255)*255,
		1,
	)
}

func normal(_, b float64) float64 { return b }

func multiply(a, b float64) float64 { return a * b }

func screen(a, b float64) float64 { return a + b - a*b }

func overlay(a, b float64) float64 {
	if a <= 0.5 {
		return multiply(a, 2*b)
	}
	return screen(a, 2*b-1)
}

func burn(a, b float64) float64 {
	if a == 1 {
		return 1
	} else if b == 0 {
		return 0
	}
	return 1 - math.Min(1, (1-a)/b)
}

func dodge(a, b float64) float64 {
	if a == 0 {
		return 0
	} else if b == 1 {
		return 1
	}
	return math.Min(1, a/(1-b))
}

func hardLight(a, b float64) float64 { return overlay(b, a) }

func softLight(a, b float64) float64 {
	if b <= 0.5 {
		return a - (1-2*b)*a*(1-a)
	}
	d := math.Sqrt(a)
	if a <= 0.25 {
		d = ((16*a-12)*a + 4) * a
	}
	return a + (2*b-1)*(d-a)
}

func difference(a, b float64) float64 { return math.Abs(a - b) }

func exclusion(a, b float64) float64 { return a + b - 2*a*b }
