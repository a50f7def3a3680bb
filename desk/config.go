package desk

import (
	"fmt"
	"os"

	"github.com/matt-g-everett/flipbook/scene"
	"github.com/matt-g-everett/flipbook/stream"
	"gopkg.in/yaml.v2"
)

// HeadlessConfig controls the no-window runner.
type HeadlessConfig struct {
	Hz       int    `yaml:"hz"`
	Frames   uint64 `yaml:"frames"`   // stop after N frames, 0 runs until cancelled
	Presses  int    `yaml:"presses"`  // button presses queued at start
	Snapshot string `yaml:"snapshot"` // PNG of the last frame, written on exit
	Listen   string `yaml:"listen"`   // address of the HTTP button, empty disables it
}

// Config is the whole runtime configuration of the notebook.
type Config struct {
	Page scene.PageConfig `yaml:"page"`

	// TopLeft anchors the left page. When unset both pages are centred on the origin.
	TopLeft *scene.Vec3 `yaml:"topLeft,omitempty"`

	Flip struct {
		DurationMs int    `yaml:"durationMs"`
		Easing     string `yaml:"easing"`
	} `yaml:"flip"`

	Window struct {
		Title  string `yaml:"title"`
		Width  int    `yaml:"width"`
		Height int    `yaml:"height"`
		TPS    int    `yaml:"tps"`
	} `yaml:"window"`

	Headless HeadlessConfig `yaml:"headless"`
	Mqtt     stream.Config  `yaml:"mqtt"`
}

// DefaultConfig returns a notebook of two 10 x 14 pages that flip in one second.
func DefaultConfig() Config {
	var c Config
	c.Page = scene.PageConfig{
		XResolution: 10,
		YResolution: 14,
		Width:       2.0,
		Thickness:   0.02,
		Spacing:     0.1,
	}

	c.Flip.DurationMs = 1000
	c.Flip.Easing = "linear"

	c.Window.Title = "flipbook"
	c.Window.Width = 800
	c.Window.Height = 600
	c.Window.TPS = 60

	c.Headless.Hz = 60
	return c
}

// Anchor returns the top-left corner of the left page.
func (c Config) Anchor() scene.Vec3 {
	if c.TopLeft != nil {
		return *c.TopLeft
	}
	return scene.V3(-(c.Page.Width + c.Page.Spacing/2), c.Page.Height()/2, 0)
}

// LoadConfig reads a YAML file over the defaults.
func LoadConfig(configPath string) (Config, error) {
	c := DefaultConfig()

	f, err := os.Open(configPath)
	if err != nil {
		return c, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	decoder := yaml.NewDecoder(f)
	if err := decoder.Decode(&c); err != nil {
		return c, fmt.Errorf("decode config %s: %w", configPath, err)
	}
	return c, nil
}
