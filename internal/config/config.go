package config

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"

	"tiny-renderer/internal/export"
	"tiny-renderer/internal/mathutil"
	"tiny-renderer/internal/raster"
	"tiny-renderer/internal/scene"
)

// MaxDimension is the largest width or height a TGA header can carry.
const MaxDimension = 0xffff

// Config holds paths and render settings.
type Config struct {
	// Paths
	Model     string `json:"model"`
	OutputDir string `json:"output_dir"`

	// Render settings
	Width        int       `json:"width"`
	Height       int       `json:"height"`
	Gamma        float64   `json:"gamma"`
	Formats      []string  `json:"formats"`
	PreviewScale int       `json:"preview_scale"`
	Workers      int       `json:"workers"`
	Scenes       []string  `json:"scenes"`
	Foreground   string    `json:"foreground"`
	Background   string    `json:"background"`
	LightDir     []float64 `json:"light_dir"`
	Ambient      float64   `json:"ambient"`
	Yaw          float64   `json:"yaw"`
	Pitch        float64   `json:"pitch"`
	Fit          bool      `json:"fit"`
	Seed         uint64    `json:"seed"`
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
// Zero values mean "not given".
type Flags struct {
	Model        string
	OutputDir    string
	Width        int
	Height       int
	Gamma        float64
	Formats      []string
	PreviewScale int
	Workers      int
	Scenes       []string
	Foreground   string
	Background   string
	Yaw          float64
	Pitch        float64
	Fit          bool
}

// Resolve applies flag overrides, then fills empty fields with defaults.
func (c *Config) Resolve(flags Flags) {
	// CLI flags override config file
	if flags.Model != "" {
		c.Model = flags.Model
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Width > 0 {
		c.Width = flags.Width
	}
	if flags.Height > 0 {
		c.Height = flags.Height
	}
	if flags.Gamma != 0 {
		c.Gamma = flags.Gamma
	}
	if len(flags.Formats) > 0 {
		c.Formats = flags.Formats
	}
	if flags.PreviewScale > 0 {
		c.PreviewScale = flags.PreviewScale
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	if len(flags.Scenes) > 0 {
		c.Scenes = flags.Scenes
	}
	if flags.Foreground != "" {
		c.Foreground = flags.Foreground
	}
	if flags.Background != "" {
		c.Background = flags.Background
	}
	if flags.Yaw != 0 {
		c.Yaw = flags.Yaw
	}
	if flags.Pitch != 0 {
		c.Pitch = flags.Pitch
	}
	if flags.Fit {
		c.Fit = true
	}

	// Defaults
	if c.OutputDir == "" {
		c.OutputDir = "out"
	}
	if c.Width <= 0 {
		c.Width = 800
	}
	if c.Height <= 0 {
		c.Height = 800
	}
	if c.Gamma == 0 {
		c.Gamma = 1
	}
	if len(c.Formats) == 0 {
		c.Formats = []string{"tga"}
	}
	if c.PreviewScale <= 0 {
		c.PreviewScale = 1
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	if len(c.Scenes) == 0 {
		for _, s := range scene.All() {
			if s.NeedsModel && c.Model == "" {
				continue
			}
			c.Scenes = append(c.Scenes, s.Name)
		}
	}
	if c.Foreground == "" {
		c.Foreground = "#ffffff"
	}
	if c.Background == "" {
		c.Background = "#000000"
	}
	if c.Seed == 0 {
		c.Seed = 1
	}
}

// Validate checks a resolved config.
func (c *Config) Validate() error {
	if c.Width > MaxDimension || c.Height > MaxDimension {
		return fmt.Errorf("config: size %dx%d exceeds %d", c.Width, c.Height, MaxDimension)
	}
	if _, err := raster.NewGammaCurve(c.Gamma); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	for _, f := range c.Formats {
		if !export.Supported(f) {
			return fmt.Errorf("config: unsupported format %q", f)
		}
	}
	for _, name := range c.Scenes {
		s, err := scene.Lookup(name)
		if err != nil {
			return fmt.Errorf("config: %w", err)
		}
		if s.NeedsModel && c.Model == "" {
			return fmt.Errorf("config: scene %q needs a model", name)
		}
	}
	if len(c.LightDir) != 0 && len(c.LightDir) != 3 {
		return fmt.Errorf("config: light_dir needs 3 components, got %d", len(c.LightDir))
	}
	if _, err := c.SceneOptions(); err != nil {
		return err
	}
	return nil
}

// SceneOptions converts the color and lighting settings for scene.Render.
func (c *Config) SceneOptions() (scene.Options, error) {
	opts := scene.DefaultOptions()
	var err error
	if opts.Foreground, err = raster.ColorFromHex(c.Foreground); err != nil {
		return opts, fmt.Errorf("config: foreground: %w", err)
	}
	if opts.Background, err = raster.ColorFromHex(c.Background); err != nil {
		return opts, fmt.Errorf("config: background: %w", err)
	}
	dir := opts.Light.Dir
	if len(c.LightDir) == 3 {
		dir = mathutil.Vec3{c.LightDir[0], c.LightDir[1], c.LightDir[2]}
	}
	opts.Light = raster.NewLight(dir, c.Ambient)
	opts.Seed = c.Seed
	opts.Yaw = c.Yaw
	opts.Pitch = c.Pitch
	opts.Fit = c.Fit
	return opts, nil
}
