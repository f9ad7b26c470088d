package core

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/hubastard/wand/engine/colors"
	"github.com/hubastard/wand/engine/ui"
)

// Config for the application and its host.
type Config struct {
	Title      string       `yaml:"title"`
	Width      int          `yaml:"width"`
	Height     int          `yaml:"height"`
	VSync      bool         `yaml:"vsync"`
	ClearColor colors.Color `yaml:"clear_color"` // RGBA behind the canvas

	CanvasID    string     `yaml:"canvas_id"`
	FPSWindow   uint32     `yaml:"fps_window"`
	SceneMargin ui.Spacing `yaml:"scene_margin"`

	FontPath string `yaml:"font_path"` // empty uses the embedded Go font
	Backend  string `yaml:"backend"`   // glfw, raylib or headless
	Debug    bool   `yaml:"debug"`
}

func DefaultConfig() Config {
	return Config{
		Title:       "wand",
		Width:       800,
		Height:      600,
		VSync:       true,
		ClearColor:  colors.Black,
		CanvasID:    "canvas",
		FPSWindow:   DefaultFPSWindow,
		SceneMargin: ui.DefaultMargin,
		Backend:     "glfw",
	}
}

// LoadConfig reads YAML at path over DefaultConfig. Unknown keys are errors.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// ParseConfig decodes YAML over DefaultConfig.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, err
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return Config{}, fmt.Errorf("window size %dx%d: %w", cfg.Width, cfg.Height, ErrBadConfig)
	}
	return cfg, nil
}
