// Package config loads game settings from a YAML file, an optional .env file
// and OUTIE_* environment variables, in that order.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	DefaultPath   = "outie.yaml"
	DefaultZoom   = 4
	MinZoom       = 1
	MaxZoom       = 8
	DefaultVolume = 0.58
	DefaultLogDir = "logs"
)

type Config struct {
	Zoom   int         `yaml:"zoom"`
	Seed   uint64      `yaml:"seed"` // 0 = seed from the clock
	Audio  AudioConfig `yaml:"audio"`
	Debug  bool        `yaml:"debug"`
	LogDir string      `yaml:"log_dir"`
}

type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"`
}

func Default() Config {
	return Config{
		Zoom:   DefaultZoom,
		Audio:  AudioConfig{Enabled: true, Volume: DefaultVolume},
		LogDir: DefaultLogDir,
	}
}

// Load reads path (missing files are fine), then .env, then the environment.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		raw, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return cfg, fmt.Errorf("read %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(raw, &cfg); err != nil {
				return cfg, fmt.Errorf("parse %s: %w", path, err)
			}
		}
	}

	// godotenv never overrides variables already set in the process.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return cfg, fmt.Errorf("load .env: %w", err)
	}
	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup("OUTIE_ZOOM"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("OUTIE_ZOOM: %w", err)
		}
		c.Zoom = n
	}
	if v, ok := lookup("OUTIE_SEED"); ok {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("OUTIE_SEED: %w", err)
		}
		c.Seed = n
	}
	if v, ok := lookup("OUTIE_VOLUME"); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("OUTIE_VOLUME: %w", err)
		}
		c.Audio.Volume = f
	}
	if v, ok := lookup("OUTIE_MUTE"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("OUTIE_MUTE: %w", err)
		}
		c.Audio.Enabled = !b
	}
	if v, ok := lookup("OUTIE_DEBUG"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("OUTIE_DEBUG: %w", err)
		}
		c.Debug = b
	}
	return nil
}

func (c Config) Validate() error {
	if c.Zoom < MinZoom || c.Zoom > MaxZoom {
		return fmt.Errorf("zoom %d out of range [%d, %d]", c.Zoom, MinZoom, MaxZoom)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("audio volume %.2f out of range [0, 1]", c.Audio.Volume)
	}
	if c.Debug && c.LogDir == "" {
		return errors.New("debug logging needs a log_dir")
	}
	return nil
}
