package engine

import (
	"math/rand"

	"github.com/lixenwraith/geometry-fighter/constants"
)

// SpawnRequest describes one shape to launch
type SpawnRequest struct {
	Shape    ShapeKind
	Color    Color
	Category Category
	ImpulseX float64
	ImpulseY float64
}

// NewSpawnRequest draws shape, colour and launch impulse for a new object
// Shape and colour are drawn independently; black colour yields CategoryBad
func NewSpawnRequest(rng *rand.Rand, palette Palette, bias ColorBias) SpawnRequest {
	shape := RandomShape(rng)
	color := palette.DrawBiased(rng, bias)

	category := CategoryGood
	if color.IsBlack() {
		category = CategoryBad
	}

	return SpawnRequest{
		Shape:    shape,
		Color:    color,
		Category: category,
		ImpulseX: uniform(rng, constants.LaunchImpulseXMin, constants.LaunchImpulseXMax),
		ImpulseY: uniform(rng, constants.LaunchImpulseYMin, constants.LaunchImpulseYMax),
	}
}

// SpawnScheduler decides when the next shape is due
// nextSpawnAt only moves forward and changes exactly once per spawn
type SpawnScheduler struct {
	nextSpawnAt float64
	minInterval float64
	maxInterval float64
	rng         *rand.Rand
}

// NewSpawnScheduler creates a scheduler whose first spawn is due immediately
func NewSpawnScheduler(rng *rand.Rand) *SpawnScheduler {
	return &SpawnScheduler{
		minInterval: constants.SpawnIntervalMin,
		maxInterval: constants.SpawnIntervalMax,
		rng:         rng,
	}
}

// NextSpawnAt returns the game time after which the next spawn fires
func (s *SpawnScheduler) NextSpawnAt() float64 {
	return s.nextSpawnAt
}

// OnTick reports whether a spawn is due at now and, if so, reschedules
// Outside PhasePlaying nothing happens
func (s *SpawnScheduler) OnTick(phase GamePhase, now float64) bool {
	if phase != PhasePlaying {
		return false
	}
	if now <= s.nextSpawnAt {
		return false
	}
	s.nextSpawnAt = now + uniform(s.rng, s.minInterval, s.maxInterval)
	return true
}

func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}
