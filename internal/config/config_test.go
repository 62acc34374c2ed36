package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestResolveDefaults(t *testing.T) {
	var cfg Config
	cfg.Resolve(Flags{})

	if cfg.OutputDir != "renders" {
		t.Errorf("OutputDir = %q, want renders", cfg.OutputDir)
	}
	if cfg.RenderSize != 256 {
		t.Errorf("RenderSize = %d, want 256", cfg.RenderSize)
	}
	if cfg.Supersample != 2 {
		t.Errorf("Supersample = %d, want 2", cfg.Supersample)
	}
	if cfg.Workers <= 0 {
		t.Errorf("Workers = %d, want > 0", cfg.Workers)
	}
	if cfg.OrbitDeg != 30 || cfg.PitchDeg != 20 || cfg.Distance != 2.5 || cfg.FOVDeg != 60 {
		t.Errorf("camera defaults = %+v", cfg)
	}
}

func TestResolveFlagsOverride(t *testing.T) {
	cfg := Config{
		InputPath:  "from_file.vmod",
		OutputDir:  "file_out",
		RenderSize: 128,
		Workers:    2,
	}
	cfg.Resolve(Flags{
		Input:       "from_flag.vmod",
		OutputDir:   "flag_out",
		Size:        512,
		Supersample: 1,
		Workers:     8,
		OrbitDeg:    45,
	})

	if cfg.InputPath != "from_flag.vmod" {
		t.Errorf("InputPath = %q", cfg.InputPath)
	}
	if cfg.OutputDir != "flag_out" {
		t.Errorf("OutputDir = %q", cfg.OutputDir)
	}
	if cfg.RenderSize != 512 {
		t.Errorf("RenderSize = %d", cfg.RenderSize)
	}
	if cfg.Supersample != 1 {
		t.Errorf("Supersample = %d", cfg.Supersample)
	}
	if cfg.Workers != 8 {
		t.Errorf("Workers = %d", cfg.Workers)
	}
	if cfg.OrbitDeg != 45 {
		t.Errorf("OrbitDeg = %v", cfg.OrbitDeg)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	data := `{
		"input_path": "models",
		"output_dir": "out",
		"render_size": 64,
		"supersample": 4,
		"orbit_deg": -15
	}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.InputPath != "models" || cfg.OutputDir != "out" {
		t.Errorf("paths = %q %q", cfg.InputPath, cfg.OutputDir)
	}
	if cfg.RenderSize != 64 || cfg.Supersample != 4 {
		t.Errorf("render = %d %d", cfg.RenderSize, cfg.Supersample)
	}
	if cfg.OrbitDeg != -15 {
		t.Errorf("OrbitDeg = %v", cfg.OrbitDeg)
	}

	cfg.Resolve(Flags{})
	if cfg.RenderSize != 64 {
		t.Errorf("Resolve clobbered RenderSize: %d", cfg.RenderSize)
	}
	if cfg.PitchDeg != 20 {
		t.Errorf("PitchDeg default = %v", cfg.PitchDeg)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("loading missing file succeeded, want error")
	}

	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("loading malformed file succeeded, want error")
	}
}
