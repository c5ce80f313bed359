package main

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/urfave/cli/v2"

	"tiny-renderer/internal/batch"
	"tiny-renderer/internal/config"
	"tiny-renderer/internal/model"
	"tiny-renderer/internal/scene"
)

func renderCommand() *cli.Command {
	return &cli.Command{
		Name:  "render",
		Usage: "render demo scenes to image files",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "model", Aliases: []string{"m"}, Usage: "OBJ model for the model scenes"},
			&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Usage: "output directory (default: out)"},
			&cli.IntFlag{Name: "width", Usage: "image width (default: 800)"},
			&cli.IntFlag{Name: "height", Usage: "image height (default: 800)"},
			&cli.Float64Flag{Name: "gamma", Usage: "gamma exponent applied after drawing (default: 1, off)"},
			&cli.StringSliceFlag{Name: "format", Aliases: []string{"f"}, Usage: "tga, png, webp or bmp; repeatable"},
			&cli.IntFlag{Name: "scale", Usage: "integer upscale for non-TGA previews"},
			&cli.IntFlag{Name: "workers", Usage: "scenes rendered at once (default: NumCPU)"},
			&cli.StringSliceFlag{Name: "scene", Aliases: []string{"s"}, Usage: "scene to render; repeatable (default: all)"},
			&cli.StringFlag{Name: "fg", Usage: "foreground color, #rrggbb"},
			&cli.StringFlag{Name: "bg", Usage: "background color, #rrggbb"},
			&cli.Float64Flag{Name: "yaw", Usage: "model rotation around the vertical axis, degrees"},
			&cli.Float64Flag{Name: "pitch", Usage: "model rotation around the horizontal axis, degrees"},
			&cli.BoolFlag{Name: "fit", Usage: "rescale the model to fill the image"},
		},
		Action: runRender,
	}
}

func runRender(c *cli.Context) error {
	var cfg config.Config
	if path := c.String("config"); path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return cli.Exit(err, 1)
		}
	}

	// CLI flags override config file
	cfg.Resolve(config.Flags{
		Model:        c.String("model"),
		OutputDir:    c.String("out"),
		Width:        c.Int("width"),
		Height:       c.Int("height"),
		Gamma:        c.Float64("gamma"),
		Formats:      c.StringSlice("format"),
		PreviewScale: c.Int("scale"),
		Workers:      c.Int("workers"),
		Scenes:       c.StringSlice("scene"),
		Foreground:   c.String("fg"),
		Background:   c.String("bg"),
		Yaw:          c.Float64("yaw"),
		Pitch:        c.Float64("pitch"),
		Fit:          c.Bool("fit"),
	})
	if err := cfg.Validate(); err != nil {
		return cli.Exit(err, 1)
	}
	opts, err := cfg.SceneOptions()
	if err != nil {
		return cli.Exit(err, 1)
	}

	logger := newLogger(c)

	var m *model.Model
	if cfg.Model != "" {
		if m, err = model.Load(cfg.Model, logger); err != nil {
			return cli.Exit(err, 1)
		}
		fmt.Printf("Model: %s (%d vertices, %d faces)\n", cfg.Model, m.VertexCount(), m.FaceCount())
	}

	scenes := make([]scene.Scene, 0, len(cfg.Scenes))
	for _, name := range cfg.Scenes {
		s, err := scene.Lookup(name)
		if err != nil {
			return cli.Exit(err, 1)
		}
		scenes = append(scenes, s)
	}

	fmt.Printf("Scenes: %d, Size: %dx%d, Gamma: %g, Workers: %d\n", len(scenes), cfg.Width, cfg.Height, cfg.Gamma, cfg.Workers)
	fmt.Printf("Output: %s\n", cfg.OutputDir)
	fmt.Println("------------------------------------------------------------")

	start := time.Now()
	results, err := batch.Run(c.Context, batch.Config{
		OutputDir:    cfg.OutputDir,
		Width:        cfg.Width,
		Height:       cfg.Height,
		Gamma:        cfg.Gamma,
		Formats:      cfg.Formats,
		PreviewScale: cfg.PreviewScale,
		Workers:      cfg.Workers,
		Options:      opts,
		Model:        m,
		Logger:       logger,
	}, scenes)
	if err != nil {
		return cli.Exit(err, 1)
	}

	failed := 0
	for _, r := range results {
		if !r.Success {
			failed++
			fmt.Printf("  %-10s FAILED: %s\n", r.Scene, r.Error)
			continue
		}
		fmt.Printf("  %-10s %v (%d dropped)\n", r.Scene, r.Files, r.Dropped)
	}
	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Rendered %d/%d in %.2fs\n", len(results)-failed, len(results), time.Since(start).Seconds())

	manifestPath := filepath.Join(cfg.OutputDir, "manifest.json")
	if err := batch.WriteManifest(manifestPath, results); err != nil {
		fmt.Printf("Warning: manifest write failed: %v\n", err)
	} else {
		fmt.Printf("Manifest: %s\n", manifestPath)
	}

	if failed > 0 {
		return cli.Exit(fmt.Sprintf("%d scene(s) failed", failed), 1)
	}
	return nil
}
