package swatch

import (
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"

	"github.com/alecthomas/kong"
	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	"golang.org/x/image/tiff"

	"colorart/palette"
)

type RenderCmd struct {
	Palette string `arg:"" help:"Palette name or PAL file in RIFF format"`
	Dest    string `arg:"" help:"Destination image; the extension picks the format unless --format is given"`
	Columns int    `help:"Swatches per row" default:"8"`
	Cell    int    `help:"Swatch size in pixels" default:"32"`
	Format  string `help:"Output format" enum:"auto,gif,jpeg,png,bmp,tiff" default:"auto"`
	Force   bool   `help:"Overwrite an existing file" default:"false"`

	pal palette.Palette `kong:"-"`
}

func (c *RenderCmd) Validate(kctx *kong.Context) error {
	switch {
	case c.Columns < 1:
		return fmt.Errorf("invalid number of columns: %d", c.Columns)
	case c.Cell < 1:
		return fmt.Errorf("invalid swatch size: %d", c.Cell)
	}

	dest, err := filepath.Abs(c.Dest)
	if err != nil {
		return fmt.Errorf("invalid destination path %q: %w", c.Dest, err)
	}
	c.Dest = dest

	if c.Format == "auto" {
		c.Format = formatOf(c.Dest)
		if c.Format == "" {
			return fmt.Errorf("cannot guess image format of %q", c.Dest)
		}
	}

	c.pal, err = palette.Load(c.Palette)
	return err
}

func (c *RenderCmd) Run() error {
	logger := slog.Default().With("file", c.Dest, "palette", c.Palette)

	img := render(c.pal, c.Columns, c.Cell)
	logger.Info("rendering", "colors", len(c.pal), "width", img.Bounds().Dx(), "height", img.Bounds().Dy())

	return writeFile(c.Dest, c.Force, func(w io.Writer) error {
		return encode(w, img, c.Format)
	})
}

// render lays the palette out one pixel per swatch, left to right and top to
// bottom, then scales it up to cell pixels per swatch. Cells past the last
// color stay transparent.
func render(pal palette.Palette, columns, cell int) image.Image {
	columns = min(columns, max(len(pal), 1))
	rows := (len(pal) + columns - 1) / columns

	small := image.NewNRGBA(image.Rect(0, 0, columns, max(rows, 1)))
	for i, c := range pal {
		small.Set(i%columns, i/columns, c)
	}

	dr := image.Rect(0, 0, small.Rect.Dx()*cell, small.Rect.Dy()*cell)
	dest := image.NewNRGBA(dr)
	draw.NearestNeighbor.Scale(dest, dr, small, small.Rect, draw.Src, nil)

	return dest
}

func formatOf(name string) string {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".gif":
		return "gif"
	case ".jpg", ".jpeg":
		return "jpeg"
	case ".png":
		return "png"
	case ".bmp":
		return "bmp"
	case ".tif", ".tiff":
		return "tiff"
	default:
		return ""
	}
}

func encode(w io.Writer, img image.Image, format string) error {
	switch format {
	case "gif":
		if err := gif.Encode(w, img, nil); err != nil {
			return fmt.Errorf("could not encode GIF: %w", err)
		}
	case "jpeg":
		if err := jpeg.Encode(w, img, &jpeg.Options{Quality: 100}); err != nil {
			return fmt.Errorf("could not encode JPEG: %w", err)
		}
	case "png":
		enc := png.Encoder{
			CompressionLevel: png.BestCompression,
			BufferPool:       pngPool,
		}
		if err := enc.Encode(w, img); err != nil {
			return fmt.Errorf("could not encode PNG: %w", err)
		}
	case "bmp":
		if err := bmp.Encode(w, img); err != nil {
			return fmt.Errorf("could not encode BMP: %w", err)
		}
	case "tiff":
		if err := tiff.Encode(w, img, nil); err != nil {
			return fmt.Errorf("could not encode TIFF: %w", err)
		}
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}

	return nil
}

type pngEncoderBufferPool struct {
	pool sync.Pool
}

func (p *pngEncoderBufferPool) Get() *png.EncoderBuffer {
	return p.pool.Get().(*png.EncoderBuffer)
}

func (p *pngEncoderBufferPool) Put(buf *png.EncoderBuffer) {
	p.pool.Put(buf)
}

var pngPool = &pngEncoderBufferPool{
	pool: sync.Pool{
		New: func() any {
			return &png.EncoderBuffer{}
		},
	},
}
