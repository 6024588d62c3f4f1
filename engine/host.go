package engine

import "github.com/lixenwraith/geometry-fighter/core"

// Splash overlay names
const (
	SplashNone      = ""
	SplashTapToPlay = "TapToPlay"
	SplashGameOver  = "GameOver"
)

// HUDSnapshot is the data shown by the heads-up display
type HUDSnapshot struct {
	Phase  GamePhase
	Score  int
	Lives  int
	Best   int
	Paused bool
}

// CuePlayer plays named audio cues
type CuePlayer interface {
	PlayCue(cue core.Cue)
}

// Display is the visual side of the host
type Display interface {
	ShowSplash(name string)
	ShakeCamera()
	Explode(obj Object)
	RefreshHUD(hud HUDSnapshot)
}

// ScoreRecord is the persisted best state
type ScoreRecord struct {
	BestScore int
	LastScore int
}

// ScoreStore persists the best state across runs
type ScoreStore interface {
	Save(rec ScoreRecord) error
	Load() (ScoreRecord, error)
}

// Picker resolves the object under a screen point
type Picker interface {
	Pick(x, y int) (ObjectID, Category)
}

// TickSource delivers per-frame game-clock timestamps in seconds
type TickSource interface {
	Subscribe(fn func(now float64))
}

// NopCuePlayer discards cues
type NopCuePlayer struct{}

func (NopCuePlayer) PlayCue(core.Cue) {}

// NopDisplay discards visual side effects
type NopDisplay struct{}

func (NopDisplay) ShowSplash(string)      {}
func (NopDisplay) ShakeCamera()           {}
func (NopDisplay) Explode(Object)         {}
func (NopDisplay) RefreshHUD(HUDSnapshot) {}
