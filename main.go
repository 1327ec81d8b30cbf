package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"

	"colorart/compare"
	"colorart/convert"
	"colorart/swatch"
)

type cli struct {
	LogLevel  string `help:"Minimum log level" enum:"debug,info,warn,error" default:"info" env:"COLORART_LOG_LEVEL"`
	LogFormat string `help:"Log output format" enum:"text,json" default:"text" env:"COLORART_LOG_FORMAT"`

	Convert convert.CLICmd   `cmd:"" help:"Convert colors between color spaces"`
	Compare compare.CLICmd   `cmd:"" help:"Measure the difference and contrast between two colors"`
	Blend   compare.BlendCmd `cmd:"" help:"Blend a source color over a backdrop"`
	Swatch  swatch.CLICmd    `cmd:"" help:"Build, inspect and render palettes"`
}

func (c *cli) AfterApply() error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	switch c.LogFormat {
	case "json":
		handler = slog.NewJSONHandler(os.Stderr, opts)
	default:
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler))

	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var c cli
	kctx := kong.Parse(&c,
		kong.Name("colorart"),
		kong.Description("Parse, convert and compare colors."),
		kong.UsageOnError(),
		kong.BindTo(ctx, (*context.Context)(nil)),
		kong.BindTo(os.Stdout, (*io.Writer)(nil)),
	)

	if err := kctx.Run(); err != nil {
		slog.Error("command failed", "command", kctx.Command(), "error", err)
		stop()
		os.Exit(1)
	}
}
