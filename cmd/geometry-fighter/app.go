package main

import (
	"log"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/geometry-fighter/config"
	"github.com/lixenwraith/geometry-fighter/constants"
	"github.com/lixenwraith/geometry-fighter/engine"
	"github.com/lixenwraith/geometry-fighter/physics"
	"github.com/lixenwraith/geometry-fighter/render"
)

// app wires the terminal host around the game core
// Every method runs on the main loop goroutine
type app struct {
	screen   tcell.Screen
	world    *physics.World
	renderer *render.Renderer
	picker   *render.Picker
	game     *engine.Game
	clock    *engine.PausableClock
	feed     *engine.TickFeed
	provider engine.TimeProvider

	lastFrame  time.Time
	buttonDown bool // Button1 state from the previous mouse event
}

func newApp(cfg *config.Config, screen tcell.Screen, cues engine.CuePlayer, store engine.ScoreStore, tp engine.TimeProvider) *app {
	seed := cfg.Seed
	if seed == 0 {
		seed = tp.Now().UnixNano()
	}

	world := physics.NewWorld(constants.Gravity)
	renderer := render.NewRenderer(screen, seed)

	gc := cfg.GameConfig()
	gc.Seed = seed
	game := engine.NewGame(gc, world, cues, renderer, store)

	a := &app{
		screen:    screen,
		world:     world,
		renderer:  renderer,
		picker:    render.NewPicker(renderer, world, world),
		game:      game,
		clock:     engine.NewPausableClock(tp),
		feed:      engine.NewTickFeed(),
		provider:  tp,
		lastFrame: tp.Now(),
	}

	game.SetPicker(a.picker)
	game.OnPauseChange(a.onPause)
	game.Attach(a.feed)
	return a
}

func (a *app) onPause(paused bool) {
	if paused {
		a.clock.Pause()
	} else {
		a.clock.Resume()
		// Skip the real time spent paused
		a.lastFrame = a.provider.Now()
	}
	log.Printf("paused=%v at game time %.2fs", paused, a.clock.Seconds())
}

// handleEvent translates one terminal event and reports whether the app should quit
func (a *app) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
			return true
		case ev.Key() == tcell.KeyRune && (ev.Rune() == 'q' || ev.Rune() == 'Q'):
			return true
		case ev.Key() == tcell.KeyRune && (ev.Rune() == 'p' || ev.Rune() == 'P'):
			if a.game.Paused() {
				a.game.Submit(engine.GameEvent{Type: engine.EventResume})
			} else {
				a.game.Submit(engine.GameEvent{Type: engine.EventPause})
			}
		}

	case *tcell.EventMouse:
		// Motion while held repeats the button state; only the press edge is a tap
		down := ev.Buttons()&tcell.Button1 != 0
		if down && !a.buttonDown {
			x, y := ev.Position()
			a.game.Submit(engine.GameEvent{Type: engine.EventTap, X: x, Y: y})
		}
		a.buttonDown = down

	case *tcell.EventResize:
		a.screen.Sync()
		a.renderer.Resize()
	}
	return false
}

// frame advances physics, effects and the game by one tick and draws
func (a *app) frame() {
	now := a.provider.Now()
	dt := now.Sub(a.lastFrame)
	a.lastFrame = now
	if dt > constants.MaxFrameDelta {
		dt = constants.MaxFrameDelta
	}

	if a.game.Paused() || a.clock.IsPaused() {
		// Input still drains so resume is seen
		a.game.DispatchEvents()
		a.renderer.Draw(a.world.Objects())
		return
	}

	a.world.Step(dt)
	a.feed.Publish(a.clock.Seconds())
	objects := a.world.Objects()
	a.renderer.Update(dt, objects)
	a.renderer.Draw(objects)
}

// shutdown persists best state and completes a pending GameOver transition
func (a *app) shutdown() {
	a.game.Submit(engine.GameEvent{Type: engine.EventSuspend})
	a.game.DispatchEvents()
	log.Printf("shutdown: score=%d best=%d ticks=%d", a.game.State().Score(), a.game.State().Best(), a.feed.Count())
}
