package batch

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"tiny-renderer/internal/export"
	"tiny-renderer/internal/model"
	"tiny-renderer/internal/raster"
	"tiny-renderer/internal/scene"
)

// Config holds all shared resources for a batch run.
type Config struct {
	OutputDir    string
	Width        int
	Height       int
	Gamma        float64
	Formats      []string
	PreviewScale int
	Workers      int
	Options      scene.Options
	Model        *model.Model // shared read-only between workers
	Logger       *log.Logger
}

// Result holds the outcome of rendering one scene.
type Result struct {
	Scene    string
	Files    []string
	Dropped  int // out-of-bounds writes during drawing
	Duration time.Duration
	Success  bool
	Error    string
}

// Run renders every scene into its own buffer. Scenes run concurrently,
// up to cfg.Workers at a time; each buffer is drawn by a single goroutine.
// A failing scene is reported in its Result and does not stop the others.
// The returned error is only set when ctx is cancelled.
func Run(ctx context.Context, cfg Config, scenes []scene.Scene) ([]Result, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("batch: create %s: %w", cfg.OutputDir, err)
	}

	results := make([]Result, len(scenes))
	var processed atomic.Int64

	g, ctx := errgroup.WithContext(ctx)
	if cfg.Workers > 0 {
		g.SetLimit(cfg.Workers)
	}
	for i, s := range scenes {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i] = Result{Scene: s.Name, Error: err.Error()}
				return err
			}
			results[i] = renderScene(cfg, s, logger)
			logger.Printf("batch: [%d/%d] %s done in %v", processed.Add(1), len(scenes), s.Name, results[i].Duration)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, fmt.Errorf("batch: %w", err)
	}
	return results, nil
}

func renderScene(cfg Config, s scene.Scene, logger *log.Logger) Result {
	start := time.Now()
	res := Result{Scene: s.Name}
	fail := func(err error) Result {
		res.Error = err.Error()
		res.Duration = time.Since(start)
		return res
	}

	buf := raster.NewBuffer(cfg.Width, cfg.Height)
	buf.SetLogger(logger)
	if err := scene.Render(s, buf, cfg.Model, cfg.Options); err != nil {
		return fail(err)
	}
	res.Dropped = buf.Dropped()

	if cfg.Gamma != 0 && cfg.Gamma != 1 {
		if err := buf.ApplyGamma(cfg.Gamma); err != nil {
			return fail(err)
		}
	}

	for _, format := range cfg.Formats {
		outPath := filepath.Join(cfg.OutputDir, s.Name+"."+format)
		if err := export.Write(outPath, format, buf, cfg.PreviewScale); err != nil {
			return fail(err)
		}
		res.Files = append(res.Files, outPath)
	}

	res.Success = true
	res.Duration = time.Since(start)
	return res
}
