// Package swatch implements the palette commands: building RIFF PAL files,
// matching colors against a palette and rendering palettes as images.
package swatch

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/alecthomas/kong"

	"colorart/chroma"
	"colorart/palette"
)

type CLICmd struct {
	Build  BuildCmd  `cmd:"" help:"Write colors to a RIFF PAL file"`
	Match  MatchCmd  `cmd:"" help:"Find the closest palette entry for each color"`
	Show   ShowCmd   `cmd:"" help:"Print the colors of a palette"`
	Render RenderCmd `cmd:"" help:"Draw a palette as an image"`
}

type BuildCmd struct {
	File   string   `arg:"" help:"Destination PAL file"`
	Colors []string `arg:"" help:"Colors to store, in order"`
	Force  bool     `help:"Overwrite an existing file" default:"false"`

	pal palette.Palette `kong:"-"`
}

func (c *BuildCmd) Validate(kctx *kong.Context) error {
	file, err := filepath.Abs(c.File)
	if err != nil {
		return fmt.Errorf("invalid destination path %q: %w", c.File, err)
	}
	c.File = file

	c.pal = make(palette.Palette, 0, len(c.Colors))
	for _, s := range c.Colors {
		col, err := chroma.Parse(s)
		if err != nil {
			return err
		}
		c.pal = append(c.pal, col)
	}

	return nil
}

func (c *BuildCmd) Run() error {
	logger := slog.Default().With("file", c.File)
	logger.Info("writing palette", "colors", len(c.pal))

	return writeFile(c.File, c.Force, func(w io.Writer) error {
		_, err := c.pal.WriteRIFF(w)
		return err
	})
}

type MatchCmd struct {
	Palette string   `arg:"" help:"Palette name (bw, gray16, spectra6, vga16, web216) or PAL file in RIFF format"`
	Colors  []string `arg:"" help:"Colors to match"`
	Metric  string   `help:"deltae, or a color space name for Euclidean distance in that space" default:"deltae"`

	pal    palette.Palette `kong:"-"`
	metric palette.Metric  `kong:"-"`
}

func (c *MatchCmd) Validate(kctx *kong.Context) error {
	var err error
	if c.pal, err = palette.Load(c.Palette); err != nil {
		return err
	}
	if c.metric, err = palette.ParseMetric(c.Metric); err != nil {
		return fmt.Errorf("invalid metric: %w", err)
	}

	return nil
}

func (c *MatchCmd) Run(out io.Writer) error {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	var errCount int
	for _, s := range c.Colors {
		col, err := chroma.Parse(s)
		if err != nil {
			errCount++
			slog.Error("could not parse color", "color", s, "error", err)
			continue
		}

		i := c.pal.Index(col, c.metric)
		match := c.pal[i]
		if _, err := fmt.Fprintf(tw, "%s\t%d\t%s\t%.4f\n", s, i, match.Name(), c.metric(col, match)); err != nil {
			return fmt.Errorf("could not write output: %w", err)
		}
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("could not flush output: %w", err)
	}

	if errCount > 0 {
		return fmt.Errorf("error matching %d colors", errCount)
	}
	return nil
}

type ShowCmd struct {
	Palette string `arg:"" help:"Palette name or PAL file in RIFF format"`
}

func (c *ShowCmd) Run(out io.Writer) error {
	pal, err := palette.Load(c.Palette)
	if err != nil {
		return err
	}

	for i, col := range pal {
		if _, err := fmt.Fprintf(out, "%d\t%s\t%s\n", i, col.HexFull(), col.Name()); err != nil {
			return fmt.Errorf("could not write output: %w", err)
		}
	}
	return nil
}

// writeFile fills dest through a temporary file in the same folder, renaming
// it only once fill succeeded.
func writeFile(dest string, force bool, fill func(io.Writer) error) (err error) {
	if !force {
		if err := checkFile(dest); err != nil {
			return err
		}
	}

	dir := filepath.Dir(dest)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("unable to create destination folder %q: %w", dir, err)
	}

	outFile, err := os.CreateTemp(dir, filepath.Base(dest)+".*")
	if err != nil {
		return fmt.Errorf("could not create temporary destination for %q: %w", dest, err)
	}
	canRename := false
	defer func() {
		if defErr := outFile.Sync(); defErr != nil && err == nil {
			err = fmt.Errorf("could not flush temporary destination %q: %w", outFile.Name(), defErr)
		}
		if defErr := outFile.Close(); defErr != nil && err == nil {
			err = fmt.Errorf("could not close temporary destination %q: %w", outFile.Name(), defErr)
		}

		if canRename && err == nil {
			if defErr := os.Rename(outFile.Name(), dest); defErr != nil {
				err = fmt.Errorf("could not rename destination file %q: %w", dest, defErr)
			}
		}
		if err != nil {
			if rmErr := os.Remove(outFile.Name()); rmErr != nil {
				slog.Error("could not remove temporary file", "name", outFile.Name(), "error", rmErr)
			}
		}
	}()

	if err = fill(outFile); err != nil {
		return fmt.Errorf("could not write %q: %w", dest, err)
	}

	canRename = true
	return nil
}

func checkFile(dest string) error {
	destFileInfo, err := os.Stat(dest)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("cannot stat destination file %q: %w", dest, err)
		}
		return nil
	}

	return fmt.Errorf("destination file already exists: %q", destFileInfo.Name())
}
