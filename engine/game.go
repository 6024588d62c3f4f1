package engine

import (
	"errors"
	"log"
	"math/rand"
	"time"

	"github.com/lixenwraith/geometry-fighter/constants"
	"github.com/lixenwraith/geometry-fighter/core"
)

// ErrNoRecord is returned by a ScoreStore that has nothing saved yet
var ErrNoRecord = errors.New("no saved score")

// GameConfig holds the tunables of a game instance
type GameConfig struct {
	InitialLives int
	Palette      Palette
	ColorBias    ColorBias
	Seed         int64 // 0 seeds from the wall clock
}

// DefaultGameConfig returns the standard tuning
func DefaultGameConfig() GameConfig {
	return GameConfig{
		InitialLives: constants.InitialLives,
		Palette:      DefaultPalette,
		ColorBias:    BiasReduceBlack,
	}
}

// Game orchestrates state, spawning, collisions and eviction per tick
// All methods must be called from the single loop goroutine that owns the scene
type Game struct {
	state      *GameState
	spawner    *SpawnScheduler
	collisions *CollisionHandler
	janitor    *SceneJanitor

	scene   Scene
	cues    CuePlayer
	display Display
	store   ScoreStore

	rng     *rand.Rand
	palette Palette
	bias    ColorBias

	events  *EventQueue
	picker  Picker
	onPause func(paused bool)
	now     float64 // Last tick timestamp
	paused  bool
}

// NewGame builds a game in PhaseTapToPlay and shows the TapToPlay overlay
// Nil collaborators are replaced with no-op implementations
func NewGame(cfg GameConfig, scene Scene, cues CuePlayer, display Display, store ScoreStore) *Game {
	if cues == nil {
		cues = NopCuePlayer{}
	}
	if display == nil {
		display = NopDisplay{}
	}
	if len(cfg.Palette) == 0 {
		cfg.Palette = DefaultPalette
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	state := NewGameState(cfg.InitialLives)

	g := &Game{
		state:      state,
		spawner:    NewSpawnScheduler(rng),
		collisions: NewCollisionHandler(state, scene, cues, display, store),
		janitor:    NewSceneJanitor(),
		scene:      scene,
		cues:       cues,
		display:    display,
		store:      store,
		rng:        rng,
		palette:    cfg.Palette,
		bias:       cfg.ColorBias,
		events:     NewEventQueue(),
	}

	g.loadBest()
	display.ShowSplash(SplashTapToPlay)
	return g
}

func (g *Game) loadBest() {
	if g.store == nil {
		return
	}
	rec, err := g.store.Load()
	if err != nil {
		if !errors.Is(err, ErrNoRecord) {
			log.Printf("load score: %v", err)
		}
		return
	}
	g.state.SetBest(rec.BestScore)
}

// State returns the game state
func (g *Game) State() *GameState { return g.state }

// Spawner returns the spawn scheduler
func (g *Game) Spawner() *SpawnScheduler { return g.spawner }

// Now returns the timestamp of the last tick
func (g *Game) Now() float64 { return g.now }

// Attach subscribes the game to a tick source
func (g *Game) Attach(src TickSource) {
	src.Subscribe(g.OnTick)
}

// SetPicker sets the picker used for queued taps
func (g *Game) SetPicker(p Picker) { g.picker = p }

// OnPauseChange registers fn to run when a queued pause or resume is applied
func (g *Game) OnPauseChange(fn func(paused bool)) { g.onPause = fn }

// Paused reports whether the game is paused
func (g *Game) Paused() bool { return g.paused }

// Submit queues an input event; safe to call from any goroutine
func (g *Game) Submit(ev GameEvent) {
	if ev.Timestamp.IsZero() {
		ev.Timestamp = time.Now()
	}
	g.events.Push(ev)
}

// DispatchEvents applies queued events in FIFO order
// Called by OnTick before any other work, and by the loop directly while paused
func (g *Game) DispatchEvents() {
	for _, ev := range g.events.Consume() {
		switch ev.Type {
		case EventTap:
			// Taps while paused are dropped
			if g.paused || g.picker == nil {
				continue
			}
			g.TapAt(g.picker, ev.X, ev.Y)
		case EventPause, EventResume:
			paused := ev.Type == EventPause
			if paused == g.paused {
				continue
			}
			g.SetPaused(paused)
			if g.onPause != nil {
				g.onPause(paused)
			}
		case EventSuspend:
			g.Suspend()
		}
	}
}

// SetPaused records the pause flag shown on the HUD
func (g *Game) SetPaused(paused bool) {
	g.paused = paused
	g.display.RefreshHUD(g.HUD())
}

// HUD returns the current heads-up display snapshot
func (g *Game) HUD() HUDSnapshot {
	return HUDSnapshot{
		Phase:  g.state.Phase(),
		Score:  g.state.Score(),
		Lives:  g.state.Lives(),
		Best:   g.state.Best(),
		Paused: g.paused,
	}
}

// OnTick processes one render-loop tick at game time now
func (g *Game) OnTick(now float64) {
	g.now = now
	g.DispatchEvents()

	// Delayed GameOver -> TapToPlay
	g.state.advance(now)

	if g.state.Phase() == PhasePlaying {
		if g.spawner.OnTick(PhasePlaying, now) {
			g.spawn()
		}
		g.janitor.Sweep(g.scene)
	}

	g.display.RefreshHUD(g.HUD())
}

func (g *Game) spawn() {
	req := NewSpawnRequest(g.rng, g.palette, g.bias)
	g.scene.Spawn(req)

	if req.Category == CategoryBad {
		g.cues.PlayCue(core.CueSpawnBad)
	} else {
		g.cues.PlayCue(core.CueSpawnGood)
	}
}

// HandleTap interprets a tap that resolved to object id of the given category
// GameOver ignores taps; TapToPlay starts a new game wherever the tap lands
func (g *Game) HandleTap(id ObjectID, category Category) {
	switch g.state.Phase() {
	case PhaseGameOver:
		return
	case PhaseTapToPlay:
		g.Reset()
		g.state.setPhase(PhasePlaying)
		g.display.ShowSplash(SplashNone)
		return
	}

	if !category.Collidable() {
		return
	}
	// Object may have been evicted since it was picked
	if _, ok := g.scene.Get(id); !ok {
		return
	}
	g.collisions.OnCollision(id, category, g.now)
}

// TapAt resolves a screen point with picker and handles the tap
// Outside PhasePlaying the point is irrelevant and no pick is made
func (g *Game) TapAt(picker Picker, x, y int) {
	if g.state.Phase() != PhasePlaying {
		g.HandleTap(0, CategoryNone)
		return
	}
	id, category := picker.Pick(x, y)
	g.HandleTap(id, category)
}

// Reset clears the scene and restores score and lives, cancelling a pending GameOver transition
func (g *Game) Reset() {
	if g.state.Reset() {
		g.display.ShowSplash(SplashTapToPlay)
	}
	g.scene.Clear()
}

// Suspend persists the best state; during GameOver it completes the transition to TapToPlay immediately
func (g *Game) Suspend() {
	SaveScore(g.store, g.state)
	g.state.expireGameOver()
}
