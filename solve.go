package eikonal

import (
	"context"
	"log/slog"
	"time"

	"github.com/katalvlaran/eikonal/field"
	"github.com/katalvlaran/eikonal/fmm"
	"github.com/katalvlaran/eikonal/grid"
	"github.com/katalvlaran/eikonal/internal/logging"
)

// SetLogger configures the logger for eikonal and all its sub-packages.
// By default nothing is logged. Pass nil to restore the silent default.
//
// Levels used:
//   - slog.LevelDebug: stage timings and queue statistics
//   - slog.LevelInfo:  solve summary
//   - slog.LevelWarn:  cells left without a finite distance
func SetLogger(l *slog.Logger) {
	logging.Set(l)
}

// Logger returns the logger currently used by eikonal.
func Logger() *slog.Logger {
	return logging.Logger()
}

// Solve runs the pipeline grid → seed → propagate for cfg and returns the
// settled field with the propagation statistics.
//
// ctx only bounds the seeding stage; propagation is a single uninterruptible
// pass. Returns ErrBadConfig (wrapped) for an invalid cfg, or the context
// error if seeding was cancelled.
func Solve(ctx context.Context, cfg Config) (*field.Field, fmm.Stats, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmm.Stats{}, err
	}
	g, err := grid.New(cfg.Width, cfg.Height, cfg.Window)
	if err != nil {
		return nil, fmm.Stats{}, err
	}

	opts := []field.Option{field.WithContext(ctx), field.WithEpsilon(cfg.Epsilon)}
	if cfg.Workers > 0 {
		opts = append(opts, field.WithWorkers(cfg.Workers))
	}

	start := time.Now()
	f, err := field.Seed(g, cfg.Implicit, opts...)
	if err != nil {
		return nil, fmm.Stats{}, err
	}
	seeded := time.Since(start)

	log := Logger()
	verbose := log.Enabled(ctx, slog.LevelInfo)
	var seeds, pieces int
	if verbose {
		seeds = field.Summarize(f).Seeds
		pieces = len(field.SeedComponents(f))
	}

	stats, err := fmm.Propagate(f)
	if err != nil {
		return nil, fmm.Stats{}, err
	}

	if verbose {
		sum := field.Summarize(f)
		log.Info("eikonal: solved",
			"width", g.Width, "height", g.Height,
			"seeds", seeds,
			"boundaryPieces", pieces,
			"maxDistance", sum.MaxFinite,
			"unreached", sum.Unreached,
			"seed", seeded,
			"total", time.Since(start))
	}

	return f, stats, nil
}
