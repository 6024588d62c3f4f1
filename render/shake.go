package render

import (
	"math"
	"math/rand"
	"time"
)

// CameraShake produces a decaying random screen offset
type CameraShake struct {
	timer     time.Duration
	duration  time.Duration
	magnitude float64
	offX      int
	offY      int
	rng       *rand.Rand
}

// NewCameraShake creates an idle shake
func NewCameraShake(rng *rand.Rand) *CameraShake {
	return &CameraShake{rng: rng}
}

// Start restarts the shake at full magnitude
func (s *CameraShake) Start(duration time.Duration, magnitude float64) {
	s.duration = duration
	s.timer = duration
	s.magnitude = magnitude
}

// Update advances the shake by dt and picks a new offset
func (s *CameraShake) Update(dt time.Duration) {
	if s.timer <= 0 || s.duration <= 0 {
		s.offX, s.offY = 0, 0
		return
	}
	s.timer -= dt
	if s.timer < 0 {
		s.timer = 0
	}
	intensity := s.magnitude * float64(s.timer) / float64(s.duration)
	s.offX = int(math.Round((s.rng.Float64()*2 - 1) * intensity))
	s.offY = int(math.Round((s.rng.Float64()*2 - 1) * intensity))
}

// Offset returns the current screen offset in cells
func (s *CameraShake) Offset() (dx, dy int) {
	return s.offX, s.offY
}

// Active reports whether the shake still has time left
func (s *CameraShake) Active() bool {
	return s.timer > 0
}
