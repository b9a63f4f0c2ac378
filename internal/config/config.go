// Package config loads render and viewer settings from JSON or YAML and merges CLI overrides.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds all configurable settings.
type Config struct {
	// Board
	BoardSize int   `json:"board_size" yaml:"board_size"`
	Placement []int `json:"placement" yaml:"placement"`

	// Output surface
	Width       int     `json:"width" yaml:"width"`
	Height      int     `json:"height" yaml:"height"`
	Supersample int     `json:"supersample" yaml:"supersample"`
	FOV         float64 `json:"fov" yaml:"fov"`
	ShadowMap   int     `json:"shadow_map_size" yaml:"shadow_map_size"`

	// Controls
	DampingFactor  float64 `json:"damping_factor" yaml:"damping_factor"`
	DisableDamping bool    `json:"disable_damping" yaml:"disable_damping"`

	// Headless sequence
	OutputDir string  `json:"output_dir" yaml:"output_dir"`
	Format    string  `json:"format" yaml:"format"`
	Frames    int     `json:"frames" yaml:"frames"`
	OrbitStep float64 `json:"orbit_step_px" yaml:"orbit_step_px"`
	ZoomEvery int     `json:"zoom_every" yaml:"zoom_every"`
	Workers   int     `json:"workers" yaml:"workers"`

	// Logging
	LogLevel  string `json:"log_level" yaml:"log_level"`
	LogFormat string `json:"log_format" yaml:"log_format"`
}

// Load reads a config file and returns Config. YAML is used for .yaml/.yml files, JSON otherwise.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	default:
		err = json.Unmarshal(data, &cfg)
	}
	if err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	BoardSize int
	Placement []int
	Width     int
	Height    int
	OutputDir string
	Format    string
	Frames    int
	Workers   int
	LogLevel  string
}

// Resolve applies CLI overrides, then fills empty fields with defaults.
// CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	if flags.BoardSize > 0 {
		c.BoardSize = flags.BoardSize
	}
	if flags.Placement != nil {
		c.Placement = flags.Placement
	}
	if flags.Width > 0 {
		c.Width = flags.Width
	}
	if flags.Height > 0 {
		c.Height = flags.Height
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Format != "" {
		c.Format = flags.Format
	}
	if flags.Frames > 0 {
		c.Frames = flags.Frames
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	if flags.LogLevel != "" {
		c.LogLevel = flags.LogLevel
	}

	// A placement without a board size draws on a board that fits it
	if c.BoardSize <= 0 {
		if len(c.Placement) > 0 {
			c.BoardSize = len(c.Placement)
		} else {
			c.BoardSize = 8
		}
	}
	if c.Placement == nil && c.BoardSize == 8 {
		c.Placement = []int{0, 4, 7, 5, 2, 6, 1, 3}
	}

	if c.Width <= 0 {
		c.Width = 960
	}
	if c.Height <= 0 {
		c.Height = 720
	}
	if c.Supersample <= 0 {
		c.Supersample = 1
	}
	if c.FOV <= 0 {
		c.FOV = 75
	}
	if c.ShadowMap <= 0 {
		c.ShadowMap = 1024
	}
	if c.DampingFactor <= 0 || c.DampingFactor > 1 {
		c.DampingFactor = 0.05
	}
	if c.OutputDir == "" {
		c.OutputDir = "renders"
	}
	if c.Format == "" {
		c.Format = "webp"
	}
	if c.Frames <= 0 {
		c.Frames = 120
	}
	if c.OrbitStep == 0 {
		c.OrbitStep = 4
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.LogFormat == "" {
		c.LogFormat = "console"
	}
}

// ParsePlacement parses a placement vector such as "0,4,7,5,2,6,1,3" or "0 4 7 5".
// Column values are not range-checked. An empty string yields an empty, non-nil vector.
func ParsePlacement(s string) ([]int, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '[' || r == ']'
	})
	out := make([]int, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("config: placement %q: %w", s, err)
		}
		out = append(out, v)
	}
	return out, nil
}
