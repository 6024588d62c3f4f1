package render

import (
	"math"
	"math/rand"
	"time"

	"github.com/lixenwraith/geometry-fighter/constants"
	"github.com/lixenwraith/geometry-fighter/engine"
)

var particleGlyphs = []rune{'*', '+', '·', '•', '×'}

type particle struct {
	x, y   float64
	vx, vy float64
	age    time.Duration
	life   time.Duration
	color  engine.Color
	glyph  rune
}

type trailPoint struct {
	x, y  float64
	age   time.Duration
	color engine.Color
}

// Effects owns explosion particles and shape trails in world coordinates
type Effects struct {
	particles []particle
	trails    []trailPoint
	rng       *rand.Rand
}

// NewEffects creates an empty effect set
func NewEffects(rng *rand.Rand) *Effects {
	return &Effects{rng: rng}
}

// Explode emits a ring of particles at obj's position in its colour
func (e *Effects) Explode(obj engine.Object) {
	n := constants.ExplosionParticles
	for i := 0; i < n; i++ {
		angle := 2*math.Pi*float64(i)/float64(n) + (e.rng.Float64()-0.5)*0.4
		speed := constants.ExplosionSpeed * (0.5 + 0.5*e.rng.Float64())
		e.particles = append(e.particles, particle{
			x:     obj.X,
			y:     obj.Y,
			vx:    math.Cos(angle) * speed,
			vy:    math.Sin(angle) * speed,
			life:  time.Duration(float64(constants.ExplosionLifetime) * (0.6 + 0.4*e.rng.Float64())),
			color: obj.Color,
			glyph: particleGlyphs[e.rng.Intn(len(particleGlyphs))],
		})
	}
}

// AddTrail records obj's current position; the oldest points are dropped past the cap
func (e *Effects) AddTrail(obj engine.Object) {
	e.trails = append(e.trails, trailPoint{x: obj.X, y: obj.Y, color: obj.Color})
	if over := len(e.trails) - constants.TrailMaxPoints; over > 0 {
		e.trails = append(e.trails[:0], e.trails[over:]...)
	}
}

// Update ages effects by dt and removes expired ones
func (e *Effects) Update(dt time.Duration) {
	sec := dt.Seconds()

	live := e.particles[:0]
	for _, p := range e.particles {
		p.age += dt
		if p.age >= p.life {
			continue
		}
		p.vy -= constants.Gravity * 0.5 * sec
		p.x += p.vx * sec
		p.y += p.vy * sec
		live = append(live, p)
	}
	e.particles = live

	trails := e.trails[:0]
	for _, t := range e.trails {
		t.age += dt
		if t.age < constants.TrailLifetime {
			trails = append(trails, t)
		}
	}
	e.trails = trails
}

// Clear drops every effect
func (e *Effects) Clear() {
	e.particles = e.particles[:0]
	e.trails = e.trails[:0]
}

// ParticleCount returns the number of live particles
func (e *Effects) ParticleCount() int { return len(e.particles) }

// TrailCount returns the number of live trail points
func (e *Effects) TrailCount() int { return len(e.trails) }

// fade is the remaining intensity of an effect, 1 when new and 0 when expired
func fade(age, life time.Duration) float64 {
	if life <= 0 {
		return 0
	}
	return 1 - float64(age)/float64(life)
}
