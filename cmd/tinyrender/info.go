package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"tiny-renderer/internal/raster"
	"tiny-renderer/internal/scene"
	"tiny-renderer/internal/tga"
)

func scenesCommand() *cli.Command {
	return &cli.Command{
		Name:  "scenes",
		Usage: "list the available scenes",
		Action: func(c *cli.Context) error {
			for _, s := range scene.All() {
				model := ""
				if s.NeedsModel {
					model = " (needs --model)"
				}
				fmt.Printf("%-10s %s%s\n", s.Name, s.Description, model)
			}
			return nil
		},
	}
}

func inspectCommand() *cli.Command {
	return &cli.Command{
		Name:      "inspect",
		Usage:     "summarize a TGA file",
		ArgsUsage: "FILE",
		Action: func(c *cli.Context) error {
			if c.NArg() < 1 {
				cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
			}
			path := c.Args().First()
			b, err := tga.ReadFile(path)
			if err != nil {
				return cli.Exit(err, 1)
			}

			st := summarize(b)
			fmt.Printf("%s: %dx%d, %d pixels\n", path, b.Width, b.Height, b.Len())
			if len(st.colors) == 0 {
				return nil
			}
			bg := st.background()
			fmt.Printf("Background: %v\n", bg)
			fmt.Printf("Colors: %d distinct\n", len(st.colors))
			if st.drawn > 0 {
				fmt.Printf("Drawn: %d pixels in (%d,%d)-(%d,%d), bottom-left origin\n",
					st.drawn, st.min.X, st.min.Y, st.max.X, st.max.Y)
			}
			return nil
		},
	}
}

type stats struct {
	colors   map[raster.Color]int
	drawn    int
	min, max raster.Point
}

func (s stats) background() raster.Color {
	var bg raster.Color
	best := -1
	for c, n := range s.colors {
		if n > best || (n == best && c.String() < bg.String()) {
			bg, best = c, n
		}
	}
	return bg
}

// summarize counts colors and locates the pixels that differ from the
// most common (background) color.
func summarize(b *raster.Buffer) stats {
	st := stats{colors: make(map[raster.Color]int)}
	pix := b.Pixels()
	for _, c := range pix {
		st.colors[c]++
	}
	bg := st.background()
	st.min = raster.Pt(b.Width, b.Height)
	st.max = raster.Pt(-1, -1)
	for i, c := range pix {
		if c == bg {
			continue
		}
		x, y := i%b.Width, i/b.Width
		st.drawn++
		st.min = raster.Pt(min(st.min.X, x), min(st.min.Y, y))
		st.max = raster.Pt(max(st.max.X, x), max(st.max.Y, y))
	}
	return st
}
