package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/lixenwraith/geometry-fighter/constants"
	"github.com/lixenwraith/geometry-fighter/core"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a fixed-length wave, optionally gliding linearly to endFreq
type oscillator struct {
	freq     float64
	endFreq  float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	rng      *rand.Rand
}

// NewOscillator creates a constant-pitch oscillator
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewGlide(freq, freq, duration, wave, rate)
}

// NewGlide creates an oscillator sweeping from freq to endFreq over duration
func NewGlide(freq, endFreq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		endFreq:  endFreq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = o.rng.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		progress := float64(o.position) / float64(o.duration)
		freq := o.freq + (o.endFreq-o.freq)*progress
		o.phase += freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies linear attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope wraps s with an attack/sustain/release envelope ending after duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := total - att - rel
	if sus < 0 {
		sus = 0
	}

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	if e.position >= e.totalSamples {
		return 0, false
	}
	if remaining := e.totalSamples - e.position; len(samples) > remaining {
		samples = samples[:remaining]
	}

	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1.0
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = float64(e.totalSamples-e.position) / float64(e.releaseSamples)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume applies linear gain; zero or negative gain is silent since log2(0) is -Inf
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// tone returns a generator sine limited to duration, or a silent fallback if the frequency is invalid
func tone(rate beep.SampleRate, freq float64, duration time.Duration) beep.Streamer {
	sine, err := generators.SineTone(rate, freq)
	if err != nil {
		return beep.Silence(rate.N(duration))
	}
	return beep.Take(rate.N(duration), sine)
}

func cueGain(cfg *AudioConfig, cue core.Cue) float64 {
	return cfg.EffectVolumes[cue] * cfg.MasterVolume
}

// Cue generators

// CreateSpawnGoodSound generates a short rising blip
func CreateSpawnGoodSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	glide := NewGlide(520, 880, constants.SpawnGoodDuration, WaveSine, rate)
	shaped := NewEnvelope(glide, constants.SpawnGoodDuration, constants.SpawnGoodAttack, constants.SpawnGoodRelease, rate)

	return newVolume(shaped, cueGain(cfg, core.CueSpawnGood))
}

// CreateSpawnBadSound generates a low falling square buzz
func CreateSpawnBadSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	glide := NewGlide(220, 140, constants.SpawnBadDuration, WaveSquare, rate)
	shaped := NewEnvelope(glide, constants.SpawnBadDuration, constants.SpawnBadAttack, constants.SpawnBadRelease, rate)

	return newVolume(shaped, cueGain(cfg, core.CueSpawnBad)*0.6)
}

// CreateExplodeGoodSound generates a bright pop: noise burst over a high sine
func CreateExplodeGoodSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	d := constants.ExplodeGoodDuration

	noise := NewEnvelope(NewOscillator(0, d, WaveNoise, rate), d, constants.ExplodeGoodAttack, constants.ExplodeGoodRelease, rate)
	ring := NewEnvelope(tone(rate, 1320, d), d, constants.ExplodeGoodAttack, constants.ExplodeGoodRelease, rate)

	mixed := beep.Mix(
		newVolume(noise, 0.5),
		newVolume(ring, 0.5),
	)
	return newVolume(mixed, cueGain(cfg, core.CueExplodeGood))
}

// CreateExplodeBadSound generates a heavy rumble: noise over a falling saw
func CreateExplodeBadSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	d := constants.ExplodeBadDuration

	noise := NewEnvelope(NewOscillator(0, d, WaveNoise, rate), d, constants.ExplodeBadAttack, constants.ExplodeBadRelease, rate)
	rumble := NewEnvelope(NewGlide(110, 40, d, WaveSaw, rate), d, constants.ExplodeBadAttack, constants.ExplodeBadRelease, rate)

	mixed := beep.Mix(
		newVolume(noise, 0.6),
		newVolume(rumble, 0.4),
	)
	return newVolume(mixed, cueGain(cfg, core.CueExplodeBad))
}

// gameOverNotes is a descending C major triad (C5, G4, C4)
var gameOverNotes = [...]float64{523.25, 392.00, 261.63}

// CreateGameOverSound generates three descending notes
func CreateGameOverSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	d := constants.GameOverNoteDuration

	notes := make([]beep.Streamer, 0, len(gameOverNotes))
	for _, freq := range gameOverNotes {
		notes = append(notes, NewEnvelope(tone(rate, freq, d), d, constants.GameOverNoteAttack, constants.GameOverNoteRelease, rate))
	}

	return newVolume(beep.Seq(notes...), cueGain(cfg, core.CueGameOver))
}

// GetSoundEffect returns the procedural streamer for cue, or nil for an unknown cue
func GetSoundEffect(cue core.Cue, cfg *AudioConfig) beep.Streamer {
	switch cue {
	case core.CueSpawnGood:
		return CreateSpawnGoodSound(cfg)
	case core.CueSpawnBad:
		return CreateSpawnBadSound(cfg)
	case core.CueExplodeGood:
		return CreateExplodeGoodSound(cfg)
	case core.CueExplodeBad:
		return CreateExplodeBadSound(cfg)
	case core.CueGameOver:
		return CreateGameOverSound(cfg)
	default:
		return nil
	}
}
