// Package config loads the YAML tuning file shared by the demo and the
// headless simulator.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"thirdperson/internal/locomotion"
	"thirdperson/internal/logger"
)

type Config struct {
	Logging    logger.Config     `yaml:"logging"`
	Window     WindowConfig      `yaml:"window"`
	Camera     CameraConfig      `yaml:"camera"`
	Locomotion locomotion.Config `yaml:"locomotion"`
}

type WindowConfig struct {
	Width     int     `yaml:"width"`
	Height    int     `yaml:"height"`
	Title     string  `yaml:"title"`
	TargetFPS int     `yaml:"target_fps"`
	TickRate  int     `yaml:"tick_rate"` // fixed simulation ticks per second
	TimeScale float32 `yaml:"time_scale"`
}

type CameraConfig struct {
	Distance     float32 `yaml:"distance"`
	Height       float32 `yaml:"height"`
	Sensitivity  float32 `yaml:"sensitivity"`
	MinPitch     float32 `yaml:"min_pitch"`
	MaxPitch     float32 `yaml:"max_pitch"`
	VerticalAxis bool    `yaml:"vertical_axis"`
}

// Default returns the built-in configuration. Load starts from it, so a file
// only needs the keys it overrides.
func Default() Config {
	return Config{
		Logging: logger.Config{Level: "info", Format: "console"},
		Window: WindowConfig{
			Width:     1280,
			Height:    720,
			Title:     "Third Person Locomotion",
			TargetFPS: 120,
			TickRate:  60,
			TimeScale: 1,
		},
		Camera: CameraConfig{
			Distance:     5,
			Height:       1.6,
			Sensitivity:  0.15,
			MinPitch:     -30,
			MaxPitch:     60,
			VerticalAxis: true,
		},
		Locomotion: locomotion.DefaultConfig(),
	}
}

// FixedStep is the simulation tick length in seconds.
func (w WindowConfig) FixedStep() float32 {
	return 1 / float32(w.TickRate)
}

func (c Config) Validate() error {
	if c.Window.TickRate <= 0 {
		return fmt.Errorf("config: window.tick_rate must be > 0, got %d", c.Window.TickRate)
	}
	if c.Window.TimeScale < 0 {
		return fmt.Errorf("config: window.time_scale must be >= 0, got %v", c.Window.TimeScale)
	}
	if c.Camera.MinPitch > c.Camera.MaxPitch {
		return fmt.Errorf("config: camera.min_pitch %v exceeds max_pitch %v", c.Camera.MinPitch, c.Camera.MaxPitch)
	}
	if err := c.Locomotion.Validate(); err != nil {
		return fmt.Errorf("config: locomotion: %w", err)
	}
	return nil
}

// Load reads and validates the file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: load %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes YAML on top of Default and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
