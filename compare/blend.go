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

type BlendCmd struct {
	Backdrop string           `arg:"" help:"Backdrop color"`
	Source   string           `arg:"" help:"Source color"`
	Mode     calc.BlendMode   `help:"Blend mode: normal, multiply, darken, lighten, screen, overlay, color-burn, color-dodge, hard-light, soft-light, difference or exclusion" default:"normal"`
	Format   colorspace.Space `help:"Color space of the printed result" default:"hex"`

	backdrop, source chroma.Color `kong:"-"`
}

func (c *BlendCmd) Validate(kctx *kong.Context) error {
	var err error
	if c.backdrop, err = chroma.Parse(c.Backdrop); err != nil {
		return fmt.Errorf("invalid backdrop color: %w", err)
	}
	if c.source, err = chroma.Parse(c.Source); err != nil {
		return fmt.Errorf("invalid source color: %w", err)
	}

	return nil
}

func (c *BlendCmd) Run(out io.Writer) error {
	res := calc.Blend(c.backdrop, c.source, c.Mode)
	slog.Debug("blended", "backdrop", c.backdrop, "source", c.source, "mode", c.Mode, "result", res)

	if _, err := fmt.Fprintln(out, res.Format(c.Format)); err != nil {
		return fmt.Errorf("could not write output: %w", err)
	}
	return nil
}
