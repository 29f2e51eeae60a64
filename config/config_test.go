package config

import (
	"errors"
	"flag"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultMatchesStockTuning(t *testing.T) {
	cfg := Default()
	if cfg.Rows != 7 || cfg.Columns != 9 {
		t.Errorf("Expected 7x9, got %dx%d", cfg.Rows, cfg.Columns)
	}
	if cfg.MoveSpeed != 10 || cfg.TeleportSpeed != 50 || cfg.FadeRate != 0.075 {
		t.Errorf("Unexpected speeds: %+v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Expected default config valid, got %v", err)
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if cfg.Rows != Default().Rows {
		t.Errorf("Expected default rows, got %d", cfg.Rows)
	}

	cfg, err = Load("")
	if err != nil || cfg == nil {
		t.Errorf("Expected defaults for empty path, got %v, %v", cfg, err)
	}
}

func TestLoadOverlaysFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tilefade.json")
	if err := os.WriteFile(path, []byte(`{"rows": 3, "fade_rate": 0.5, "keys": {"u": "up"}}`), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Rows != 3 || cfg.FadeRate != 0.5 {
		t.Errorf("Expected file values, got rows=%d fade=%v", cfg.Rows, cfg.FadeRate)
	}
	if cfg.Columns != 9 {
		t.Errorf("Expected unset fields to keep defaults, got columns=%d", cfg.Columns)
	}
	if cfg.Keys["u"] != "up" {
		t.Errorf("Expected key override, got %v", cfg.Keys)
	}
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte(`{"rows": `), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Expected parse error")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	cfg := Default()
	cfg.Columns = 4

	if err := Save(cfg, path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got.Columns != 4 {
		t.Errorf("Expected columns 4, got %d", got.Columns)
	}
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		EnvRows:    "5",
		EnvColumns: "not-a-number",
		EnvAudio:   "false",
		EnvVolume:  "150",
		EnvFPS:     "30",
	}
	cfg := Default()
	cfg.ApplyEnv(func(k string) string { return env[k] })

	if cfg.Rows != 5 {
		t.Errorf("Expected rows 5, got %d", cfg.Rows)
	}
	if cfg.Columns != 9 {
		t.Errorf("Expected bad value ignored, got columns %d", cfg.Columns)
	}
	if cfg.Audio {
		t.Error("Expected audio disabled")
	}
	if cfg.MasterVolume != 1 {
		t.Errorf("Expected volume clamped to 1, got %v", cfg.MasterVolume)
	}
	if cfg.FPS != 30 {
		t.Errorf("Expected fps 30, got %d", cfg.FPS)
	}
}

func TestBindFlagsOverridesLowerLayers(t *testing.T) {
	cfg := Default()
	cfg.Rows = 4 // from file or env

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.BindFlags(fs)
	if err := fs.Parse([]string{"-columns", "12", "-debug"}); err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if cfg.Rows != 4 {
		t.Errorf("Expected untouched flag to keep lower layer, got rows %d", cfg.Rows)
	}
	if cfg.Columns != 12 || !cfg.Debug {
		t.Errorf("Expected flag values, got columns=%d debug=%v", cfg.Columns, cfg.Debug)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero rows", func(c *Config) { c.Rows = 0 }},
		{"negative columns", func(c *Config) { c.Columns = -2 }},
		{"zero tile size", func(c *Config) { c.TileSize = 0 }},
		{"zero fps", func(c *Config) { c.FPS = 0 }},
		{"zero move speed", func(c *Config) { c.MoveSpeed = 0 }},
		{"negative fade", func(c *Config) { c.FadeRate = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}
