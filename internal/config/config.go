package config

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"
)

// Config holds all configurable paths and render settings.
type Config struct {
	// Paths
	InputPath string `json:"input_path"` // a .vmod file or a directory of them
	OutputDir string `json:"output_dir"`

	// Render settings
	RenderSize  int `json:"render_size"`
	Supersample int `json:"supersample"`
	Workers     int `json:"workers"`

	// Camera
	OrbitDeg float64 `json:"orbit_deg"`
	PitchDeg float64 `json:"pitch_deg"`
	Distance float64 `json:"distance"`
	FOVDeg   float64 `json:"fov_deg"`
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
type Flags struct {
	Input       string
	OutputDir   string
	Size        int
	Supersample int
	Workers     int
	OrbitDeg    float64
}

// Resolve applies CLI overrides and fills any remaining empty fields with
// defaults.
func (c *Config) Resolve(flags Flags) {
	// CLI flags override config file.
	if flags.Input != "" {
		c.InputPath = flags.Input
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Size > 0 {
		c.RenderSize = flags.Size
	}
	if flags.Supersample > 0 {
		c.Supersample = flags.Supersample
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	if flags.OrbitDeg != 0 {
		c.OrbitDeg = flags.OrbitDeg
	}

	// Defaults.
	if c.OutputDir == "" {
		c.OutputDir = "renders"
	}
	if c.RenderSize <= 0 {
		c.RenderSize = 256
	}
	if c.Supersample <= 0 {
		c.Supersample = 2
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.OrbitDeg == 0 {
		c.OrbitDeg = 30
	}
	if c.PitchDeg == 0 {
		c.PitchDeg = 20
	}
	if c.Distance <= 0 {
		c.Distance = 2.5
	}
	if c.FOVDeg <= 0 {
		c.FOVDeg = 60
	}
}
