package constants

import "time"

// Audio output
const (
	DefaultSampleRate     = 44100
	SpeakerBufferDuration = 100 * time.Millisecond
)

// Spawn cues
const (
	SpawnGoodDuration = 120 * time.Millisecond
	SpawnGoodAttack   = 5 * time.Millisecond
	SpawnGoodRelease  = 80 * time.Millisecond

	SpawnBadDuration = 180 * time.Millisecond
	SpawnBadAttack   = 10 * time.Millisecond
	SpawnBadRelease  = 100 * time.Millisecond
)

// Explosion cues
const (
	ExplodeGoodDuration = 250 * time.Millisecond
	ExplodeGoodAttack   = 2 * time.Millisecond
	ExplodeGoodRelease  = 200 * time.Millisecond

	ExplodeBadDuration = 400 * time.Millisecond
	ExplodeBadAttack   = 2 * time.Millisecond
	ExplodeBadRelease  = 320 * time.Millisecond
)

// GameOver cue: three descending notes
const (
	GameOverNoteDuration = 220 * time.Millisecond
	GameOverNoteAttack   = 10 * time.Millisecond
	GameOverNoteRelease  = 120 * time.Millisecond
)
