// Package config loads renderer configuration from YAML files.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/blox3d/luxtrace/pkg/core"
)

// Config is the root configuration for a render.
type Config struct {
	Render  RenderConfig  `yaml:"render"`
	Camera  CameraConfig  `yaml:"camera"`
	Scene   SceneConfig   `yaml:"scene"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// RenderConfig controls image dimensions and tracing limits.
type RenderConfig struct {
	Width    int `yaml:"width"`
	Height   int `yaml:"height"`
	MaxDepth int `yaml:"max_depth"`
	Workers  int `yaml:"workers"` // 0 means one worker per CPU
}

// CameraConfig positions and orients the camera.
type CameraConfig struct {
	Translation Vec3Config `yaml:"translation"`
	Direction   Vec3Config `yaml:"direction"`
	Up          Vec3Config `yaml:"up"`
	FOVDegrees  float64    `yaml:"fov_degrees"`
	Background  RGBConfig  `yaml:"background"`
}

// SceneConfig controls scene content and material tuning.
type SceneConfig struct {
	AssetsDir         string  `yaml:"assets_dir"`
	StoneReflectivity float64 `yaml:"stone_reflectivity"`
	WaterIndex        float64 `yaml:"water_index"`
	WaterTransparency float64 `yaml:"water_transparency"`
}

// OutputConfig controls where the rendered image is written.
type OutputConfig struct {
	Path string `yaml:"path"`
}

// LoggingConfig controls log level and optional file output.
type LoggingConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Vec3Config is a three-component vector in YAML form.
type Vec3Config struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

// Vec returns the vector as a core.Vec3.
func (v Vec3Config) Vec() core.Vec3 {
	return core.NewVec3(v.X, v.Y, v.Z)
}

// RGBConfig is a color in YAML form, components in linear [0,1].
type RGBConfig struct {
	R float64 `yaml:"r"`
	G float64 `yaml:"g"`
	B float64 `yaml:"b"`
}

// Color returns the color as a core.Color.
func (c RGBConfig) Color() core.Color {
	return core.NewColor(c.R, c.G, c.B)
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Render: RenderConfig{
			Width:    960,
			Height:   540,
			MaxDepth: 10,
			Workers:  0,
		},
		Camera: CameraConfig{
			Translation: Vec3Config{X: -4, Y: 12, Z: 21},
			Direction:   Vec3Config{X: 0.6, Y: -0.5, Z: -0.8},
			Up:          Vec3Config{Y: 1},
			FOVDegrees:  45,
			Background:  RGBConfig{R: 0.25, G: 0.55, B: 0.92},
		},
		Scene: SceneConfig{
			AssetsDir:         "",
			StoneReflectivity: 0.15,
			WaterIndex:        1.33,
			WaterTransparency: 0.85,
		},
		Output: OutputConfig{
			Path: "render.png",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads a YAML config file and merges it over the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks that the configuration can produce a render.
func (c *Config) Validate() error {
	if c.Render.Width <= 0 || c.Render.Height <= 0 {
		return fmt.Errorf("render dimensions must be positive, got %dx%d", c.Render.Width, c.Render.Height)
	}
	if c.Render.MaxDepth < 1 {
		return fmt.Errorf("max_depth must be at least 1, got %d", c.Render.MaxDepth)
	}
	if c.Camera.FOVDegrees <= 0 || c.Camera.FOVDegrees >= 180 {
		return fmt.Errorf("fov_degrees must be in (0, 180), got %g", c.Camera.FOVDegrees)
	}
	d := c.Camera.Direction.Vec()
	if d.Length() == 0 {
		return fmt.Errorf("camera direction must be non-zero")
	}
	if c.Scene.WaterIndex < 1 {
		return fmt.Errorf("water_index must be at least 1, got %g", c.Scene.WaterIndex)
	}
	if c.Output.Path == "" {
		return fmt.Errorf("output path must not be empty")
	}
	return nil
}
