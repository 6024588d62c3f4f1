package engine

import (
	"log"

	"github.com/lixenwraith/geometry-fighter/core"
)

// CollisionHandler applies the outcome of a tapped Good or Bad object
type CollisionHandler struct {
	state   *GameState
	scene   Scene
	cues    CuePlayer
	display Display
	store   ScoreStore
}

// NewCollisionHandler wires the handler to the game's collaborators
func NewCollisionHandler(state *GameState, scene Scene, cues CuePlayer, display Display, store ScoreStore) *CollisionHandler {
	return &CollisionHandler{
		state:   state,
		scene:   scene,
		cues:    cues,
		display: display,
		store:   store,
	}
}

// OnCollision handles a tap on object id of the given category at game time now
// Callers filter categories; only Good and Bad reach this point
func (h *CollisionHandler) OnCollision(id ObjectID, category Category, now float64) {
	switch category {
	case CategoryGood:
		h.state.addScore(1)
		h.cues.PlayCue(core.CueExplodeGood)
		h.remove(id)

	case CategoryBad:
		exhausted := h.state.loseLife()
		h.cues.PlayCue(core.CueExplodeBad)
		h.display.ShakeCamera()
		h.remove(id)

		if exhausted {
			h.gameOver(now)
		}
	}
}

// remove shows the explosion at the object's last position and destroys it
func (h *CollisionHandler) remove(id ObjectID) {
	if obj, ok := h.scene.Get(id); ok {
		h.display.Explode(obj)
	}
	h.scene.Destroy(id)
}

func (h *CollisionHandler) gameOver(now float64) {
	SaveScore(h.store, h.state)
	h.display.ShowSplash(SplashGameOver)
	h.cues.PlayCue(core.CueGameOver)

	h.state.enterGameOver(now, func() {
		h.display.ShowSplash(SplashTapToPlay)
	})
}

// SaveScore persists best and last score; failures are logged, never fatal
func SaveScore(store ScoreStore, state *GameState) {
	if store == nil {
		return
	}
	rec := ScoreRecord{BestScore: state.Best(), LastScore: state.Score()}
	if err := store.Save(rec); err != nil {
		log.Printf("save score: %v", err)
	}
}
