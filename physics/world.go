package physics

import (
	"sort"
	"time"

	"github.com/lixenwraith/geometry-fighter/constants"
	"github.com/lixenwraith/geometry-fighter/engine"
)

type body struct {
	obj engine.Object
	kin Body
}

// World is the launch-and-fall simulation backing the game scene
// Every shape starts at the origin with its launch impulse and falls under gravity
// Not safe for concurrent use; owned by the loop goroutine
type World struct {
	bodies  map[engine.ObjectID]*body
	nextID  engine.ObjectID
	gravity float64
	maxStep float64
}

var _ engine.Scene = (*World)(nil)

// NewWorld creates an empty world; gravity <= 0 uses the default
func NewWorld(gravity float64) *World {
	if gravity <= 0 {
		gravity = constants.Gravity
	}
	return &World{
		bodies:  make(map[engine.ObjectID]*body),
		gravity: gravity,
		maxStep: constants.MaxFrameDelta.Seconds(),
	}
}

// Gravity returns the downward acceleration
func (w *World) Gravity() float64 { return w.gravity }

// Spawn launches a new shape from the origin
func (w *World) Spawn(req engine.SpawnRequest) engine.ObjectID {
	w.nextID++
	b := &body{
		obj: engine.Object{
			ID:       w.nextID,
			Category: req.Category,
			Shape:    req.Shape,
			Color:    req.Color,
		},
	}
	b.kin.AccelY = -w.gravity
	ApplyImpulse(&b.kin, req.ImpulseX, req.ImpulseY)
	w.bodies[w.nextID] = b
	return w.nextID
}

func (w *World) Destroy(id engine.ObjectID) bool {
	if _, ok := w.bodies[id]; !ok {
		return false
	}
	delete(w.bodies, id)
	return true
}

func (w *World) Get(id engine.ObjectID) (engine.Object, bool) {
	b, ok := w.bodies[id]
	if !ok {
		return engine.Object{}, false
	}
	return b.snapshot(), true
}

// Objects returns snapshots ordered by spawn order; later spawns draw on top
func (w *World) Objects() []engine.Object {
	list := w.sorted()
	out := make([]engine.Object, len(list))
	for i, b := range list {
		out[i] = b.snapshot()
	}
	return out
}

func (w *World) Len() int { return len(w.bodies) }

func (w *World) Clear() {
	clear(w.bodies)
}

// Step advances every body by dt, capped to avoid tunnelling after a stall
func (w *World) Step(dt time.Duration) {
	sec := dt.Seconds()
	if sec <= 0 {
		return
	}
	if sec > w.maxStep {
		sec = w.maxStep
	}
	for _, b := range w.bodies {
		Integrate(&b.kin, sec)
	}
}

// HitTest returns the topmost object whose footprint contains world point (x, y)
func (w *World) HitTest(x, y float64) (engine.ObjectID, engine.Category) {
	list := w.sorted()
	for i := len(list) - 1; i >= 0; i-- {
		b := list[i]
		info := b.obj.Shape.Info()
		if Contains(&b.kin, info.Width, info.Height, constants.HitSlop, x, y) {
			return b.obj.ID, b.obj.Category
		}
	}
	return 0, engine.CategoryNone
}

// Place moves an object and sets its velocity; used by tests and demos
func (w *World) Place(id engine.ObjectID, x, y, vx, vy float64) {
	if b, ok := w.bodies[id]; ok {
		b.kin.PosX, b.kin.PosY = x, y
		SetImpulse(&b.kin, vx, vy)
	}
}

func (w *World) sorted() []*body {
	list := make([]*body, 0, len(w.bodies))
	for _, b := range w.bodies {
		list = append(list, b)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].obj.ID < list[j].obj.ID })
	return list
}

func (b *body) snapshot() engine.Object {
	obj := b.obj
	obj.X, obj.Y = b.kin.PosX, b.kin.PosY
	obj.VX, obj.VY = b.kin.VelX, b.kin.VelY
	return obj
}
