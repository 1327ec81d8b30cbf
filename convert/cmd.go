// Package convert implements the batch conversion command.
package convert

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"text/tabwriter"

	"github.com/alecthomas/kong"

	"colorart/chroma"
	"colorart/colorspace"
	"colorart/parallel"
)

type CLICmd struct {
	Colors  []string           `arg:"" help:"Colors to convert: hex literals, functional notation such as 'hsl(210,68%,80%)' or names"`
	To      []colorspace.Space `help:"Color spaces to print, comma separated" default:"hex,rgb,hsl" sep:","`
	Name    bool               `help:"Append the color name when one is known" default:"false"`
	Workers int                `help:"Number of conversion workers, 0 uses every CPU" default:"0" env:"COLORART_WORKERS"`
}

func (c *CLICmd) Validate(kctx *kong.Context) error {
	if c.Workers < 0 {
		return fmt.Errorf("invalid number of workers: %d", c.Workers)
	}
	if len(c.To) == 0 {
		return fmt.Errorf("no target color spaces given")
	}

	return nil
}

// Line formats one color in every requested space, tab separated.
func (c *CLICmd) Line(in string) (string, error) {
	col, err := chroma.Parse(in)
	if err != nil {
		return "", err
	}

	fields := make([]string, 0, len(c.To)+2)
	fields = append(fields, in)
	for _, space := range c.To {
		fields = append(fields, col.Format(space))
	}
	if c.Name {
		fields = append(fields, col.Name())
	}

	return strings.Join(fields, "\t"), nil
}

func (c *CLICmd) Run(ctx context.Context, out io.Writer) error {
	lines, errs := parallel.Map(ctx, c.Workers, c.Colors, c.Line)

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	var converted, errCount int
	for i, line := range lines {
		if errs[i] != nil {
			errCount++
			slog.Error("could not convert color", "color", c.Colors[i], "error", errs[i])
			continue
		}

		converted++
		if _, err := fmt.Fprintln(tw, line); err != nil {
			return fmt.Errorf("could not write output: %w", err)
		}
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("could not flush output: %w", err)
	}

	slog.Debug("stats", "converted", converted, "errors", errCount, "total", converted+errCount)

	if errCount > 0 {
		return fmt.Errorf("error converting %d colors", errCount)
	}
	return nil
}
