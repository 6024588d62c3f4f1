// Package config layers geometry-fighter settings: built-in defaults, an optional
// .env file, GEOMETRY_FIGHTER_* environment variables, then command-line flags.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/lixenwraith/geometry-fighter/audio"
	"github.com/lixenwraith/geometry-fighter/constants"
	"github.com/lixenwraith/geometry-fighter/engine"
)

// Environment keys; audio keys live in the audio package
const (
	EnvDebug        = "GEOMETRY_FIGHTER_DEBUG"
	EnvSaveFile     = "GEOMETRY_FIGHTER_SAVE_FILE"
	EnvInitialLives = "GEOMETRY_FIGHTER_INITIAL_LIVES"
	EnvColorBias    = "GEOMETRY_FIGHTER_COLOR_BIAS"
	EnvTickRate     = "GEOMETRY_FIGHTER_TICK_RATE"
	EnvSeed         = "GEOMETRY_FIGHTER_SEED"
)

// DefaultEnvFile is read from the working directory when present
const DefaultEnvFile = ".env"

// Config is the full runtime configuration
type Config struct {
	Debug        bool
	SaveFile     string
	InitialLives int
	ColorBias    engine.ColorBias
	TickRate     time.Duration
	Seed         int64 // 0 seeds from the clock
	Audio        *audio.AudioConfig
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		SaveFile:     "geometry-fighter.save",
		InitialLives: constants.InitialLives,
		ColorBias:    engine.BiasReduceBlack,
		TickRate:     constants.FrameUpdateInterval,
		Audio:        audio.DefaultAudioConfig(),
	}
}

// LoadEnvFile loads path into the process environment without overriding variables already set
// A missing file is not an error
func LoadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// FromEnv builds a configuration from defaults overlaid with environment variables
// Malformed numeric values are reported; all problems are returned together
func FromEnv() (*Config, error) {
	cfg := Default()
	cfg.Audio = audio.LoadAudioConfig()

	var errs []error

	if v := os.Getenv(EnvDebug); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", EnvDebug, err))
		} else {
			cfg.Debug = b
		}
	}

	if v := os.Getenv(EnvSaveFile); v != "" {
		cfg.SaveFile = v
	}

	if v := os.Getenv(EnvInitialLives); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", EnvInitialLives, err))
		} else {
			cfg.InitialLives = n
		}
	}

	if v := os.Getenv(EnvColorBias); v != "" {
		b, err := engine.ParseColorBias(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", EnvColorBias, err))
		} else {
			cfg.ColorBias = b
		}
	}

	if v := os.Getenv(EnvTickRate); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", EnvTickRate, err))
		} else {
			cfg.TickRate = d
		}
	}

	if v := os.Getenv(EnvSeed); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", EnvSeed, err))
		} else {
			cfg.Seed = n
		}
	}

	return cfg, errors.Join(errs...)
}

// RegisterFlags binds command-line flags to cfg; parsed flags override earlier layers
func (c *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.BoolVar(&c.Debug, "debug", c.Debug, "write debug log to "+constants.LogDir+"/"+constants.LogFileName)
	fs.StringVar(&c.SaveFile, "save", c.SaveFile, "best score file")
	fs.IntVar(&c.InitialLives, "lives", c.InitialLives, "lives per game")
	fs.DurationVar(&c.TickRate, "tick", c.TickRate, "frame interval")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "random seed, 0 for time based")
	fs.BoolVar(&c.Audio.Enabled, "audio", c.Audio.Enabled, "enable sound cues")
	fs.StringVar(&c.Audio.SoundsDir, "sounds", c.Audio.SoundsDir, "directory with <Cue>.wav overrides")
	fs.Func("bias", "colour bias: reduce (black is redrawn) or favor (non-black is redrawn)", func(s string) error {
		b, err := engine.ParseColorBias(s)
		if err != nil {
			return err
		}
		c.ColorBias = b
		return nil
	})
}

// Validate rejects values the game cannot run with
func (c *Config) Validate() error {
	if c.InitialLives <= 0 {
		return fmt.Errorf("initial lives must be positive, got %d", c.InitialLives)
	}
	if c.TickRate < time.Millisecond {
		return fmt.Errorf("tick rate must be at least 1ms, got %v", c.TickRate)
	}
	if c.SaveFile == "" {
		return errors.New("save file path is empty")
	}
	return nil
}

// GameConfig derives the engine configuration
func (c *Config) GameConfig() engine.GameConfig {
	gc := engine.DefaultGameConfig()
	gc.InitialLives = c.InitialLives
	gc.ColorBias = c.ColorBias
	gc.Seed = c.Seed
	return gc
}

// Load applies every layer in order: envFile, environment, then args
func Load(envFile string, args []string) (*Config, error) {
	if err := LoadEnvFile(envFile); err != nil {
		return nil, err
	}

	cfg, err := FromEnv()
	if err != nil {
		return nil, err
	}

	fs := flag.NewFlagSet("geometry-fighter", flag.ContinueOnError)
	cfg.RegisterFlags(fs)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
