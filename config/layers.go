package config

import (
	"flag"
	"io"

	"github.com/lixenwraith/tilefade/audio"
	"github.com/lixenwraith/tilefade/input"
)

// DefaultPath is the config file read when -config is not given
const DefaultPath = "tilefade.json"

// Options holds the flags that steer loading rather than the game
type Options struct {
	Path     string // config file to read
	SavePath string // when set, write the merged config here and exit
}

// Parse resolves all layers for a binary: defaults, file, environment, flags
// Flags are parsed twice: once to find -config, then over the loaded config so
// explicit flags win over file and environment values
func Parse(name string, args []string, getenv func(string) string) (*Config, Options, error) {
	var opts Options

	probe := flag.NewFlagSet(name, flag.ContinueOnError)
	probe.SetOutput(io.Discard)
	bindOptions(probe, &opts)
	Default().BindFlags(probe)
	if err := probe.Parse(args); err != nil {
		return nil, opts, err
	}

	cfg, err := Load(opts.Path)
	if err != nil {
		return nil, opts, err
	}
	cfg.ApplyEnv(getenv)

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	bindOptions(fs, &opts)
	cfg.BindFlags(fs)
	if err := fs.Parse(args); err != nil {
		return nil, opts, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, opts, err
	}
	return cfg, opts, nil
}

func bindOptions(fs *flag.FlagSet, opts *Options) {
	fs.StringVar(&opts.Path, "config", DefaultPath, "JSON config file")
	fs.StringVar(&opts.SavePath, "save-config", "", "write the merged config to this path and exit")
}

// Speeds returns the navigator tuning
func (c *Config) Speeds() input.Speeds {
	return input.Speeds{
		Move:           c.MoveSpeed,
		Teleport:       c.TeleportSpeed,
		Fade:           c.FadeRate,
		InitialOpacity: c.InitialOpacity,
	}
}

// AudioConfig returns the sound manager settings
func (c *Config) AudioConfig() *audio.AudioConfig {
	ac := audio.DefaultAudioConfig()
	ac.Enabled = c.Audio
	ac.MasterVolume = c.MasterVolume
	return ac
}
