package main

import (
	"io"
	"log"
	"os"

	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:    "tinyrender",
		Usage:   "software rasterizer for lines, triangles and OBJ models",
		Version: "0.1.0",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				EnvVars: []string{"TINYRENDER_CONFIG"},
				Usage:   "path to config.json",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "log dropped pixels and progress to stderr",
			},
		},
		Commands: []*cli.Command{
			renderCommand(),
			lineCommand(),
			triangleCommand(),
			scenesCommand(),
			inspectCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newLogger(c *cli.Context) *log.Logger {
	logger := log.New(io.Discard, "", 0)
	if c.Bool("verbose") {
		logger.SetOutput(os.Stderr)
	}
	return logger
}
