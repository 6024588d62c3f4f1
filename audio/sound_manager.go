package audio

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/lixenwraith/geometry-fighter/constants"
	"github.com/lixenwraith/geometry-fighter/core"
)

// ErrUnknownCue is returned for cues outside the known set
var ErrUnknownCue = errors.New("unknown cue")

// SoundManager plays game cues through a single beep mixer
// Every method is safe to call before Initialize or after Cleanup; playback is then a no-op
type SoundManager struct {
	mu          sync.Mutex
	cfg         *AudioConfig
	mixer       *beep.Mixer
	overrides   [core.CueCount]*beep.Buffer
	played      [core.CueCount]int
	initialized bool
}

// NewSoundManager creates a sound manager; nil cfg uses DefaultAudioConfig
func NewSoundManager(cfg *AudioConfig) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	return &SoundManager{
		cfg:   cfg,
		mixer: &beep.Mixer{},
	}
}

// Config returns the active audio configuration
func (sm *SoundManager) Config() *AudioConfig {
	return sm.cfg
}

// Initialize opens the speaker; a disabled config leaves the manager silent
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.cfg.Enabled {
		return nil
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(constants.SpeakerBufferDuration)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// IsInitialized reports whether cues reach the speaker
func (sm *SoundManager) IsInitialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// LoadOverrides replaces procedural cues with <Cue>.wav files from the sounds directory
// Missing files are skipped silently; unreadable ones are logged. Returns the number loaded
func (sm *SoundManager) LoadOverrides() int {
	if sm.cfg.SoundsDir == "" {
		return 0
	}
	rate := beep.SampleRate(sm.cfg.SampleRate)

	loaded := 0
	for cue := core.Cue(0); cue < core.CueCount; cue++ {
		buf, err := loadOverride(sm.cfg.SoundsDir, cue, rate)
		if err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				log.Printf("audio: %s override: %v", cue, err)
			}
			continue
		}
		sm.mu.Lock()
		sm.overrides[cue] = buf
		sm.mu.Unlock()
		loaded++
	}
	if loaded > 0 {
		log.Printf("audio: loaded %d wav overrides from %s", loaded, sm.cfg.SoundsDir)
	}
	return loaded
}

// HasOverride reports whether cue plays from a wav file
func (sm *SoundManager) HasOverride(cue core.Cue) bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return cue >= 0 && cue < core.CueCount && sm.overrides[cue] != nil
}

// Streamer builds a fresh streamer for cue: the wav override if loaded, the procedural sound otherwise
func (sm *SoundManager) Streamer(cue core.Cue) (beep.Streamer, error) {
	if cue < 0 || cue >= core.CueCount {
		return nil, fmt.Errorf("%w: %d", ErrUnknownCue, int(cue))
	}

	sm.mu.Lock()
	buf := sm.overrides[cue]
	sm.mu.Unlock()

	if buf != nil {
		return newVolume(buf.Streamer(0, buf.Len()), cueGain(sm.cfg, cue)), nil
	}
	return GetSoundEffect(cue, sm.cfg), nil
}

// PlayCue mixes cue into the output; implements the game's cue player
func (sm *SoundManager) PlayCue(cue core.Cue) {
	sm.mu.Lock()
	if !sm.initialized {
		sm.mu.Unlock()
		return
	}
	sm.mu.Unlock()

	s, err := sm.Streamer(cue)
	if err != nil {
		log.Printf("audio: %v", err)
		return
	}

	sm.mu.Lock()
	sm.played[cue]++
	sm.mu.Unlock()

	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// Played returns how many times cue reached the mixer
func (sm *SoundManager) Played(cue core.Cue) int {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if cue < 0 || cue >= core.CueCount {
		return 0
	}
	return sm.played[cue]
}

// Cleanup stops all sounds
// beep has no speaker Close, clearing the mixer ensures no audio artifacts
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	sm.initialized = false
}
