package main

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/urfave/cli/v2"

	"tiny-renderer/internal/config"
	"tiny-renderer/internal/export"
	"tiny-renderer/internal/raster"
)

func shapeFlags(defaultOut string) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Value: defaultOut, Usage: "output file; the extension picks the format"},
		&cli.IntFlag{Name: "width", Value: 640, Usage: "image width"},
		&cli.IntFlag{Name: "height", Value: 480, Usage: "image height"},
		&cli.StringFlag{Name: "color", Value: "#ffffff", Usage: "draw color, #rrggbb"},
		&cli.StringFlag{Name: "bg", Value: "#000000", Usage: "background color, #rrggbb"},
		&cli.Float64Flag{Name: "gamma", Value: 1, Usage: "gamma exponent applied after drawing"},
		&cli.IntFlag{Name: "scale", Value: 1, Usage: "integer upscale for non-TGA output"},
	}
}

func lineCommand() *cli.Command {
	return &cli.Command{
		Name:      "line",
		Usage:     "draw one line segment",
		ArgsUsage: "X0 Y0 X1 Y1",
		Flags:     shapeFlags("line.tga"),
		Action: func(c *cli.Context) error {
			pts, err := points(c, 2)
			if err != nil {
				return err
			}
			return renderShape(c, func(b *raster.Buffer, col raster.Color) {
				b.Line(pts[0], pts[1], col)
			})
		},
	}
}

func triangleCommand() *cli.Command {
	flags := append(shapeFlags("triangle.tga"),
		&cli.BoolFlag{Name: "outline", Usage: "draw only the edges"},
	)
	return &cli.Command{
		Name:      "triangle",
		Usage:     "fill one triangle",
		ArgsUsage: "X0 Y0 X1 Y1 X2 Y2",
		Flags:     flags,
		Action: func(c *cli.Context) error {
			pts, err := points(c, 3)
			if err != nil {
				return err
			}
			return renderShape(c, func(b *raster.Buffer, col raster.Color) {
				if c.Bool("outline") {
					b.TriangleOutline(pts[0], pts[1], pts[2], col)
					return
				}
				b.Triangle(pts[0], pts[1], pts[2], col)
			})
		},
	}
}

// points parses 2*n integer arguments into n points.
func points(c *cli.Context, n int) ([]raster.Point, error) {
	if c.NArg() != 2*n {
		cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
	}
	pts := make([]raster.Point, n)
	for i := 0; i < n; i++ {
		x, err := strconv.Atoi(c.Args().Get(2 * i))
		if err != nil {
			return nil, cli.Exit(fmt.Sprintf("bad coordinate %q", c.Args().Get(2*i)), 1)
		}
		y, err := strconv.Atoi(c.Args().Get(2*i + 1))
		if err != nil {
			return nil, cli.Exit(fmt.Sprintf("bad coordinate %q", c.Args().Get(2*i+1)), 1)
		}
		pts[i] = raster.Pt(x, y)
	}
	return pts, nil
}

func renderShape(c *cli.Context, draw func(*raster.Buffer, raster.Color)) error {
	w, h := c.Int("width"), c.Int("height")
	if w <= 0 || h <= 0 || w > config.MaxDimension || h > config.MaxDimension {
		return cli.Exit(fmt.Sprintf("bad size %dx%d", w, h), 1)
	}
	col, err := raster.ColorFromHex(c.String("color"))
	if err != nil {
		return cli.Exit(err, 1)
	}
	bg, err := raster.ColorFromHex(c.String("bg"))
	if err != nil {
		return cli.Exit(err, 1)
	}

	out := c.String("out")
	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(out)), ".")
	if format == "" {
		format = "tga"
	}
	if !export.Supported(format) {
		return cli.Exit(fmt.Sprintf("unsupported output format %q", format), 1)
	}

	b := raster.NewBuffer(w, h)
	b.SetLogger(newLogger(c))
	b.Clear(bg)
	draw(b, col)

	if g := c.Float64("gamma"); g != 1 {
		if err := b.ApplyGamma(g); err != nil {
			return cli.Exit(err, 1)
		}
	}
	if err := export.Write(out, format, b, c.Int("scale")); err != nil {
		return cli.Exit(err, 1)
	}

	fmt.Printf("Wrote %s (%dx%d", out, w, h)
	if n := b.Dropped(); n > 0 {
		fmt.Printf(", %d pixels outside the image", n)
	}
	fmt.Println(")")
	return nil
}
