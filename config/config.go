package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the simulation settings shared by the demos. Fields left out
// of the yaml file keep their defaults.
type Config struct {
	ScreenWidth  int     `yaml:"screen_width"`
	ScreenHeight int     `yaml:"screen_height"`
	PPM          float64 `yaml:"ppm"`
	Gravity      Vec     `yaml:"gravity"`
	TargetFPS    int     `yaml:"target_fps"`
	Iterations   int     `yaml:"iterations"`
}

// Vec is a pixel-space vector; gravity y points down the screen.
type Vec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

func Default() Config {
	return Config{
		ScreenWidth:  640,
		ScreenHeight: 480,
		PPM:          20,
		Gravity:      Vec{X: 0, Y: 0},
		TargetFPS:    60,
		Iterations:   10,
	}
}

// Load reads a yaml config file on top of the defaults. A missing file is
// not an error; it just yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
