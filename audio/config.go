package audio

import (
	"encoding/json"
	"log"
	"os"
	"strconv"

	"github.com/lixenwraith/geometry-fighter/constants"
	"github.com/lixenwraith/geometry-fighter/core"
)

// Environment keys read by LoadAudioConfig
const (
	EnvAudioEnabled = "GEOMETRY_FIGHTER_AUDIO_ENABLED"
	EnvMasterVolume = "GEOMETRY_FIGHTER_MASTER_VOLUME"
	EnvSFXVolumes   = "GEOMETRY_FIGHTER_SFX_VOLUMES"
	EnvSampleRate   = "GEOMETRY_FIGHTER_SAMPLE_RATE"
	EnvSoundsDir    = "GEOMETRY_FIGHTER_SOUNDS_DIR"
)

// AudioConfig holds audio settings
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64              // 0.0 - 1.0
	EffectVolumes map[core.Cue]float64 // Per-cue gain, 0.0 - 1.0
	SampleRate    int
	SoundsDir     string // Directory searched for <Cue>.wav overrides; empty disables
}

// DefaultAudioConfig returns the built-in audio settings
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: 0.5,
		EffectVolumes: map[core.Cue]float64{
			core.CueSpawnGood:   0.4,
			core.CueSpawnBad:    0.5,
			core.CueExplodeGood: 0.8,
			core.CueExplodeBad:  1.0,
			core.CueGameOver:    0.9,
		},
		SampleRate: constants.DefaultSampleRate,
		SoundsDir:  "sounds",
	}
}

// LoadAudioConfig loads audio configuration from environment variables
// Invalid values are ignored and the default is kept
func LoadAudioConfig() *AudioConfig {
	cfg := DefaultAudioConfig()

	if enabled := os.Getenv(EnvAudioEnabled); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	// Master volume is 0-100 in the environment
	if volume := os.Getenv(EnvMasterVolume); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.MasterVolume = clampUnit(float64(val) / 100.0)
		}
	}

	// Per-cue volumes keyed by cue name, e.g. {"SpawnGood":0.2,"GameOver":1}
	if effectVols := os.Getenv(EnvSFXVolumes); effectVols != "" {
		var volumes map[string]float64
		if err := json.Unmarshal([]byte(effectVols), &volumes); err != nil {
			log.Printf("audio: ignoring %s: %v", EnvSFXVolumes, err)
		} else {
			for name, v := range volumes {
				if cue, ok := core.ParseCue(name); ok {
					cfg.EffectVolumes[cue] = clampUnit(v)
				}
			}
		}
	}

	if sampleRate := os.Getenv(EnvSampleRate); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			cfg.SampleRate = val
		}
	}

	if dir, ok := os.LookupEnv(EnvSoundsDir); ok {
		cfg.SoundsDir = dir
	}

	return cfg
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
