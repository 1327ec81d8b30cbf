package colorspace

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownSpace = errors.New("unknown color space")
	ErrArity        = errors.New("invalid number of values")
	ErrInvalidHex   = errors.New("invalid hex string")
)

// RangeError reports a single component outside of its space's bounds.
type RangeError struct {
	Space     Space
	Component string
	Value     float64
	Min, Max  float64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s must be between %g and %g, got %g", e.Component, e.Min, e.Max, e.Value)
}

type bound struct {
	name     string
	min, max float64
}

var (
	red   = bound{"Red", 0, 255}
	green = bound{"Green", 0, 255}
	blue  = bound{"Blue", 0, 255}
	alpha = bound{"Alpha", 0, 1}
	hue   = bound{"Hue", 0, 360}
	unit  = func(name string) bound { return bound{name, 0, 1} }

	rgbRules   = []bound{red, green, blue}
	rgbaRules  = []bound{red, green, blue, alpha}
	hslRules   = []bound{hue, unit("Saturation"), unit("Lightness")}
	hslaRules  = []bound{hue, unit("Saturation"), unit("Lightness"), alpha}
	hsvRules   = []bound{hue, unit("Saturation"), unit("Value")}
	hsiRules   = []bound{hue, unit("Saturation"), unit("Intensity")}
	hwbRules   = []bound{hue, unit("Whiteness"), unit("Blackness")}
	cmykRules  = []bound{unit("Cyan"), unit("Magenta"), unit("Yellow"), unit("Black")}
	xyzRules   = []bound{{"X", 0, 0.950456}, {"Y", 0, 1}, {"Z", 0, 1.088754}}
	yiqRules   = []bound{{"Y", 0, 1}, {"I", -0.5957, 0.5957}, {"Q", -0.5226, 0.5226}}
	yuvRules   = []bound{{"Y", 0, 1}, {"U", -0.436, 0.436}, {"V", -0.615, 0.615}}
	ycbcrRules = []bound{{"Y", 0, 255}, {"Cb", 0, 255}, {"Cr", 0, 255}}
	labRules   = []bound{{"L", 0, 100}, {"a", -128, 127}, {"b", -128, 127}}
)

func (s Space) rules() []bound {
	switch s {
	case RGB, HEX:
		return rgbRules
	case RGBA, HEXA:
		return rgbaRules
	case HSL:
		return hslRules
	case HSLA:
		return hslaRules
	case HSV:
		return hsvRules
	case HSI:
		return hsiRules
	case HWB:
		return hwbRules
	case CMYK:
		return cmykRules
	case XYZ:
		return xyzRules
	case YIQ:
		return yiqRules
	case YUV:
		return yuvRules
	case YCbCr:
		return ycbcrRules
	case Lab:
		return labRules
	default:
		return nil
	}
}

// Components returns the component names of the space in canonical order.
func (s Space) Components() []string {
	rules := s.rules()
	names := make([]string, len(rules))
	for i, r := range rules {
		names[i] = r.name
	}
	return names
}

// Valid checks values against the space's arity and component ranges. The
// first offending component is reported as a *RangeError.
func (s Space) Valid(values []float64) error {
	if s == Unknown {
		return ErrUnknownSpace
	}

	rules := s.rules()
	if len(values) != len(rules) {
		return fmt.Errorf("%w: %s color space requires %d values, got %d", ErrArity, s, len(rules), len(values))
	}

	for i, r := range rules {
		v := values[i]
		// NaN fails both comparisons, so check for it explicitly.
		if !(v >= r.min && v <= r.max) {
			return &RangeError{
				Space:     s,
				Component: r.name,
				Value:     v,
				Min:       r.min,
				Max:       r.max,
			}
		}
	}

	return nil
}

// ValidHex checks a #rgb, #rgba, #rrggbb or #rrggbbaa literal.
func ValidHex(hex string) error {
	if len(hex) == 0 || hex[0] != '#' {
		return fmt.Errorf("%w: %s", ErrInvalidHex, hex)
	}

	switch len(hex) {
	case 4, 5, 7, 9:
	default:
		return fmt.Errorf("%w: %s", ErrInvalidHex, hex)
	}

	for _, c := range hex[1:] {
		if !isHexDigit(c) {
			return fmt.Errorf("%w: %s", ErrInvalidHex, hex)
		}
	}

	return nil
}

func isHexDigit(c rune) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}
