// Package cmd wires the command line interface to the renderer.
package cmd

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
	"go.uber.org/zap"

	"github.com/blox3d/luxtrace/internal/config"
	"github.com/blox3d/luxtrace/internal/logger"
	"github.com/blox3d/luxtrace/pkg/core"
	"github.com/blox3d/luxtrace/pkg/loaders"
	"github.com/blox3d/luxtrace/pkg/renderer"
	"github.com/blox3d/luxtrace/pkg/scene"
)

// RenderCommand returns the render subcommand.
func RenderCommand() cli.Command {
	return cli.Command{
		Name:  "render",
		Usage: "render the voxel scene to a PNG image",
		Flags: []cli.Flag{
			cli.StringFlag{
				Name:  "config, c",
				Usage: "path to a YAML config file",
			},
			cli.IntFlag{
				Name:  "width, W",
				Usage: "image width in pixels (overrides config)",
			},
			cli.IntFlag{
				Name:  "height, H",
				Usage: "image height in pixels (overrides config)",
			},
			cli.IntFlag{
				Name:  "depth, d",
				Usage: "maximum trace recursion depth (overrides config)",
			},
			cli.IntFlag{
				Name:  "workers, w",
				Usage: "number of render workers, 0 for one per CPU (overrides config)",
			},
			cli.StringFlag{
				Name:  "out, o",
				Usage: "output PNG path (overrides config)",
			},
			cli.StringFlag{
				Name:  "assets, a",
				Usage: "directory of block texture PNGs (overrides config)",
			},
		},
		Action: RenderFrame,
	}
}

// RenderFrame loads configuration, renders the scene and writes the image.
func RenderFrame(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	applyOverrides(c, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := setupLogging(c, cfg); err != nil {
		return err
	}
	defer logger.Sync()

	logger.Log.Info("starting render",
		zap.Int("width", cfg.Render.Width),
		zap.Int("height", cfg.Render.Height),
		zap.Int("max_depth", cfg.Render.MaxDepth),
	)

	atlas, err := loadAtlas(cfg)
	if err != nil {
		return err
	}
	atlas.StoneReflectivity = cfg.Scene.StoneReflectivity
	atlas.WaterIndex = cfg.Scene.WaterIndex
	atlas.WaterTransparency = cfg.Scene.WaterTransparency

	world := scene.DefaultWorld()
	sc := scene.New(world, atlas, scene.DefaultLights())

	camera := renderer.Camera{
		Translation: cfg.Camera.Translation.Vec(),
		Direction:   cfg.Camera.Direction.Vec(),
		Up:          cfg.Camera.Up.Vec(),
		FOV:         cfg.Camera.FOVDegrees * math.Pi / 180,
		Background:  cfg.Camera.Background.Color(),
	}
	r := renderer.New(camera, cfg.Render.Width, cfg.Render.Height, renderer.Config{
		MaxDepth: cfg.Render.MaxDepth,
		Workers:  cfg.Render.Workers,
	})

	pixels := make([]core.Color, cfg.Render.Width*cfg.Render.Height)
	stats := r.RenderInto(sc, pixels)

	logger.Log.Info("render complete",
		zap.Duration("elapsed", stats.Elapsed),
		zap.Float64("pixels_per_second", stats.PixelsPerSecond()),
	)
	printStats(stats)

	if err := writePNG(cfg.Output.Path, pixels, cfg.Render.Width, cfg.Render.Height); err != nil {
		return err
	}
	logger.Log.Info("image written", zap.String("path", cfg.Output.Path))
	return nil
}

func loadConfig(c *cli.Context) (*config.Config, error) {
	if path := c.String("config"); path != "" {
		return config.Load(path)
	}
	return config.Default(), nil
}

// applyOverrides copies any CLI flags the user set over the config values.
func applyOverrides(c *cli.Context, cfg *config.Config) {
	if c.IsSet("width") {
		cfg.Render.Width = c.Int("width")
	}
	if c.IsSet("height") {
		cfg.Render.Height = c.Int("height")
	}
	if c.IsSet("depth") {
		cfg.Render.MaxDepth = c.Int("depth")
	}
	if c.IsSet("workers") {
		cfg.Render.Workers = c.Int("workers")
	}
	if c.IsSet("out") {
		cfg.Output.Path = c.String("out")
	}
	if c.IsSet("assets") {
		cfg.Scene.AssetsDir = c.String("assets")
	}
}

func loadAtlas(cfg *config.Config) (*scene.BlockAtlas, error) {
	if cfg.Scene.AssetsDir == "" {
		logger.Log.Debug("no assets directory, using solid color atlas")
		return scene.NewSolidAtlas(), nil
	}
	atlas, err := loaders.LoadBlockAtlas(cfg.Scene.AssetsDir)
	if err != nil {
		return nil, fmt.Errorf("load block textures: %w", err)
	}
	return atlas, nil
}

// printStats writes a per-worker summary table to stdout.
func printStats(stats renderer.RenderStats) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Worker", "Start Pixel", "Pixels", "Elapsed"})
	for _, chunk := range stats.Chunks {
		table.Append([]string{
			fmt.Sprintf("%d", chunk.Worker),
			fmt.Sprintf("%d", chunk.Start),
			fmt.Sprintf("%d", chunk.Pixels),
			chunk.Elapsed.Round(time.Millisecond).String(),
		})
	}
	table.SetFooter([]string{"total", "", fmt.Sprintf("%d", stats.TotalPixels()), stats.Elapsed.Round(time.Millisecond).String()})
	table.Render()
}

// writePNG converts linear pixel colors to 8-bit sRGB and writes the image.
func writePNG(path string, pixels []core.Color, width, height int) error {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for i, c := range pixels {
		img.SetRGBA(i%width, i/width, color.RGBA{
			R: encodeChannel(c.R),
			G: encodeChannel(c.G),
			B: encodeChannel(c.B),
			A: 255,
		})
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// encodeChannel clamps a linear channel to [0,1] and applies sRGB gamma.
func encodeChannel(v float64) uint8 {
	v = math.Max(0, math.Min(1, v))
	if v <= 0.0031308 {
		v *= 12.92
	} else {
		v = 1.055*math.Pow(v, 1/2.4) - 0.055
	}
	return uint8(math.Round(v * 255))
}
