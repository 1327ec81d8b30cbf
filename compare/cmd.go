// Package compare implements the color difference and blending commands.
package compare

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/alecthomas/kong"

	"colorart/calc"
	"colorart/chroma"
	"colorart/colorspace"
)

// WCAG 2 minimum contrast ratios for normal text
const (
	contrastAA  = 4.5
	contrastAAA = 7
)

type CLICmd struct {
	First  string           `arg:"" help:"First color"`
	Second string           `arg:"" help:"Second color"`
	Space  colorspace.Space `help:"Color space used for the Euclidean distance" default:"lab"`

	a, b chroma.Color `kong:"-"`
}

func (c *CLICmd) Validate(kctx *kong.Context) error {
	var err error
	if c.a, err = chroma.Parse(c.First); err != nil {
		return fmt.Errorf("invalid first color: %w", err)
	}
	if c.b, err = chroma.Parse(c.Second); err != nil {
		return fmt.Errorf("invalid second color: %w", err)
	}

	return nil
}

// Report holds every difference measure between two colors.
type Report struct {
	DeltaE   float64
	Distance float64
	Contrast float64
	AA, AAA  bool
}

func (c *CLICmd) Report() (Report, error) {
	dist, err := calc.Distance(c.a, c.b, c.Space)
	if err != nil {
		return Report{}, fmt.Errorf("could not compute %s distance: %w", c.Space, err)
	}

	contrast := calc.ContrastRatio(c.a, c.b)
	return Report{
		DeltaE:   calc.DeltaE(c.a, c.b),
		Distance: dist,
		Contrast: contrast,
		AA:       contrast >= contrastAA,
		AAA:      contrast >= contrastAAA,
	}, nil
}

func (c *CLICmd) Run(out io.Writer) error {
	slog.Debug("comparing", "first", c.a, "second", c.b, "space", c.Space)

	r, err := c.Report()
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(out, "delta-e: %.4f\ndistance (%s): %.4f\ncontrast: %.2f:1 (AA %s, AAA %s)\n",
		r.DeltaE, c.Space, r.Distance, r.Contrast, pass(r.AA), pass(r.AAA))
	if err != nil {
		return fmt.Errorf("could not write output: %w", err)
	}
	return nil
}

func pass(ok bool) string {
	if ok {
		return "pass"
	}
	return "fail"
}
