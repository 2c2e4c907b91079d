// Command eikonal computes the distance field of a boundary curve and
// writes it as a PNG.
//
//	eikonal -width 1024 -height 1024 -curve flower -out plot_plain.png
package main

import (
	"context"
	"flag"
	"image"
	"log/slog"
	"os"
	"os/signal"

	"github.com/katalvlaran/eikonal"
	"github.com/katalvlaran/eikonal/render"
)

func main() {
	flag.Parse()

	level := slog.LevelInfo
	if *verboseFlag {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	eikonal.SetLogger(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, log); err != nil {
		log.Error("eikonal failed", "err", err)
		stop()
		os.Exit(1)
	}
}

// run solves, renders and saves according to the flags.
func run(ctx context.Context, log *slog.Logger) error {
	cfg, err := configFromFlags()
	if err != nil {
		return err
	}
	palette, err := paletteFromFlags()
	if err != nil {
		return err
	}

	f, stats, err := eikonal.Solve(ctx, cfg)
	if err != nil {
		return err
	}

	var img image.Image = render.Image(f, palette)
	if *scaleFlag > 0 {
		if img, err = render.Scale(img, *scaleFlag, *scaleFlag); err != nil {
			return err
		}
	}
	if err := render.SavePNG(*outFlag, img); err != nil {
		return err
	}

	log.Info("wrote image",
		"path", *outFlag,
		"pixels", img.Bounds().Size().String(),
		"pops", stats.Pops,
		"decreases", stats.Decreases)

	return nil
}
