// Package palette holds ordered color sets, finds the closest entry to a
// color and stores palettes as RIFF PAL files.
package palette

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"math"
	"os"
	"strings"

	"colorart/calc"
	"colorart/chroma"
	"colorart/colorspace"
)

// ErrEmpty is returned when a lookup runs against a palette without colors.
var ErrEmpty = errors.New("empty palette")

type (
	// Metric measures how far apart two colors are. Smaller is closer.
	Metric func(a, b chroma.Color) float64

	RIFFReaderWriter interface {
		ReadRIFF(r io.Reader) (int64, error)
		WriteRIFF(w io.Writer) (int64, error)
	}
)

// Palette is an ordered list of colors.
type Palette []chroma.Color

var _ RIFFReaderWriter = &Palette{}

// DeltaE compares colors with CIEDE2000.
func DeltaE(a, b chroma.Color) float64 { return calc.DeltaE(a, b) }

// ParseMetric returns DeltaE for "deltae" or the Euclidean distance in the
// named color space.
func ParseMetric(name string) (Metric, error) {
	if strings.EqualFold(name, "deltae") {
		return DeltaE, nil
	}

	space := colorspace.Lookup(name)
	if space == colorspace.Unknown {
		return nil, fmt.Errorf("%w: %q", colorspace.ErrUnknownSpace, name)
	}

	return func(a, b chroma.Color) float64 {
		d, err := calc.Distance(a, b, space)
		if err != nil {
			return math.Inf(1)
		}
		return d
	}, nil
}

// Index returns the position of the entry closest to c under m, or -1 for an
// empty palette. Ties go to the earliest entry.
func (p Palette) Index(c chroma.Color, m Metric) int {
	ret, best := -1, math.Inf(1)
	for i, v := range p {
		d := m(c, v)
		if d < best || ret < 0 {
			if d == 0 {
				return i
			}
			ret, best = i, d
		}
	}
	return ret
}

// Nearest returns the entry closest to c under m.
func (p Palette) Nearest(c chroma.Color, m Metric) (chroma.Color, error) {
	i := p.Index(c, m)
	if i < 0 {
		return chroma.Color{}, ErrEmpty
	}
	return p[i], nil
}

// FromImage converts any image/color palette.
func FromImage(pal color.Palette) Palette {
	res := make(Palette, 0, len(pal))
	for _, col := range pal {
		res = append(res, chroma.Model.Convert(col).(chroma.Color))
	}
	return res
}

// Image returns the palette as an image/color palette.
func (p Palette) Image() color.Palette {
	res := make(color.Palette, len(p))
	for i, c := range p {
		res[i] = c
	}
	return res
}

// ReadRIFF appends every color found in a RIFF PAL stream.
func (p *Palette) ReadRIFF(r io.Reader) (int64, error) {
	pals, err := ReadFrom(r)
	if err != nil {
		return 0, fmt.Errorf("could not load palettes: %w", err)
	}

	var n int64
	for _, pal := range pals {
		*p = append(*p, pal...)
		n += int64(len(pal))
	}

	return n, nil
}

// WriteRIFF stores the palette as a single chunk RIFF PAL stream.
func (p *Palette) WriteRIFF(w io.Writer) (int64, error) {
	n, err := WriteTo(w, *p)
	if err != nil {
		return n, fmt.Errorf("could not save palette: %w", err)
	}
	return n, nil
}

// Load returns a built-in palette by name, or reads a RIFF PAL file.
func Load(name string) (Palette, error) {
	if pal, ok := builtin[strings.ToLower(name)]; ok {
		return pal, nil
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("unknown palette %q: %w", name, err)
	}
	defer f.Close()

	var pal Palette
	if _, err := pal.ReadRIFF(f); err != nil {
		return nil, fmt.Errorf("could not read palette %q: %w", name, err)
	}
	if len(pal) == 0 {
		return nil, fmt.Errorf("palette %q: %w", name, ErrEmpty)
	}

	return pal, nil
}
