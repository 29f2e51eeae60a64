package config

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
)

// ErrInvalidConfig wraps every Validate failure
var ErrInvalidConfig = errors.New("invalid config")

// Config is the full runtime configuration
// Layers, lowest first: Default, JSON file, environment, flags
type Config struct {
	Rows     int     `json:"rows"`
	Columns  int     `json:"columns"`
	TileSize float64 `json:"tile_size"`

	MoveSpeed      float64 `json:"move_speed"`
	TeleportSpeed  float64 `json:"teleport_speed"`
	FadeRate       float64 `json:"fade_rate"`
	InitialOpacity float64 `json:"initial_opacity"`

	FPS int `json:"fps"`

	Audio        bool    `json:"audio"`
	MasterVolume float64 `json:"master_volume"`

	Keys map[string]string `json:"keys,omitempty"` // rune -> action overrides

	Debug bool `json:"debug"`
}

// Default returns the stock configuration: 7x9 grid, 60 FPS
func Default() *Config {
	return &Config{
		Rows:           7,
		Columns:        9,
		TileSize:       50,
		MoveSpeed:      10,
		TeleportSpeed:  50,
		FadeRate:       0.075,
		InitialOpacity: 1,
		FPS:            60,
		Audio:          true,
		MasterVolume:   0.5,
	}
}

// Load reads a JSON file over the defaults
// A missing file yields the defaults without error
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg as indented JSON
func Save(cfg *Config, path string) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Environment variable names
const (
	EnvRows     = "TILEFADE_ROWS"
	EnvColumns  = "TILEFADE_COLUMNS"
	EnvTileSize = "TILEFADE_TILE_SIZE"
	EnvFPS      = "TILEFADE_FPS"
	EnvAudio    = "TILEFADE_AUDIO"
	EnvVolume   = "TILEFADE_VOLUME" // 0-100
	EnvDebug    = "TILEFADE_DEBUG"
)

// ApplyEnv overrides fields from the environment
// Unparseable values are ignored
func (c *Config) ApplyEnv(getenv func(string) string) {
	if getenv == nil {
		getenv = os.Getenv
	}

	if v := getenv(EnvRows); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Rows = n
		}
	}
	if v := getenv(EnvColumns); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Columns = n
		}
	}
	if v := getenv(EnvTileSize); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			c.TileSize = f
		}
	}
	if v := getenv(EnvFPS); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.FPS = n
		}
	}
	if v := getenv(EnvAudio); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Audio = b
		}
	}
	if v := getenv(EnvVolume); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.MasterVolume = min(max(float64(n)/100.0, 0), 1)
		}
	}
	if v := getenv(EnvDebug); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Debug = b
		}
	}
}

// BindFlags registers flags on fs using the current values as defaults
// Parsing fs writes straight into c
func (c *Config) BindFlags(fs *flag.FlagSet) {
	fs.IntVar(&c.Rows, "rows", c.Rows, "grid rows")
	fs.IntVar(&c.Columns, "columns", c.Columns, "grid columns")
	fs.Float64Var(&c.TileSize, "tile-size", c.TileSize, "tile edge length in grid units")
	fs.Float64Var(&c.MoveSpeed, "move-speed", c.MoveSpeed, "selector speed for neighbour steps")
	fs.Float64Var(&c.TeleportSpeed, "teleport-speed", c.TeleportSpeed, "selector speed for edge wraparound")
	fs.Float64Var(&c.FadeRate, "fade-rate", c.FadeRate, "opacity lost per frame while fading")
	fs.IntVar(&c.FPS, "fps", c.FPS, "target frames per second")
	fs.BoolVar(&c.Audio, "audio", c.Audio, "enable sound cues")
	fs.BoolVar(&c.Debug, "debug", c.Debug, "write logs to logs/")
}

// Validate checks the values the grid and frame clock depend on
func (c *Config) Validate() error {
	switch {
	case c.Rows <= 0:
		return fmt.Errorf("%w: rows must be positive, got %d", ErrInvalidConfig, c.Rows)
	case c.Columns <= 0:
		return fmt.Errorf("%w: columns must be positive, got %d", ErrInvalidConfig, c.Columns)
	case !(c.TileSize > 0):
		return fmt.Errorf("%w: tile_size must be positive, got %v", ErrInvalidConfig, c.TileSize)
	case c.FPS <= 0:
		return fmt.Errorf("%w: fps must be positive, got %d", ErrInvalidConfig, c.FPS)
	case c.MoveSpeed <= 0 || c.TeleportSpeed <= 0:
		return fmt.Errorf("%w: speeds must be positive", ErrInvalidConfig)
	case c.FadeRate <= 0:
		return fmt.Errorf("%w: fade_rate must be positive, got %v", ErrInvalidConfig, c.FadeRate)
	}
	return nil
}
