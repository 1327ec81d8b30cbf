package chroma

import (
	"errors"
	"fmt"
	"strings"

	"colorart/colorspace"
	"colorart/conversion"
	"colorart/names"
	"colorart/parser"
)

// Parse reads a color literal, falling back to the default name tables.
func Parse(s string) (Color, error) {
	return ParseWith(s, names.Default)
}

// ParseWith reads a color literal: a hex literal, a functional notation such
// as "hsl(210, 68%, 80%)" or a name known to lookup. Channels produced by a
// conversion are clamped to 0..255.
func ParseWith(s string, lookup names.Lookup) (Color, error) {
	in := parser.Normalize(s)

	if strings.HasPrefix(in, "#") {
		return FromHex(in)
	}

	space, values, err := parser.Parse(in)
	if err == nil {
		return fromValues(space, values)
	}
	if !errors.Is(err, parser.ErrInvalidInput) && !errors.Is(err, parser.ErrNoColorSpace) {
		return Color{}, err
	}

	if lookup != nil {
		if hex, ok := lookup.HexOf(in); ok {
			return FromHex(hex)
		}
	}
	return Color{}, fmt.Errorf("%s is not a valid color: %w", s, errors.Join(err, names.ErrUnknownName))
}

// MustParse is like Parse but panics on error. It is meant for literals
// known to be valid.
func MustParse(s string) Color {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// fromValues converts already validated values.
func fromValues(space colorspace.Space, values []float64) (Color, error) {
	rgb, alpha, err := conversion.ToRGB(space, values)
	if err != nil {
		return Color{}, err
	}
	for i := range rgb {
		rgb[i] = clamp(rgb[i], 0, 255)
	}
	return Color{rgb: rgb, alpha: clamp(alpha, 0, 1)}, nil
}
