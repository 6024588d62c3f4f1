package engine

import (
	"log"

	"github.com/lixenwraith/geometry-fighter/constants"
)

// GameState holds phase, score and lives for one game process
// Invariant: lives == 0 implies PhaseGameOver
// Owned by the loop goroutine; not safe for concurrent use
type GameState struct {
	phase        GamePhase
	score        int
	lives        int
	best         int
	initialLives int

	// GameOver -> TapToPlay transition for the current GameOver episode
	gameOverTimer DeferredAction
}

// NewGameState creates state in PhaseTapToPlay with a full set of lives
func NewGameState(initialLives int) *GameState {
	if initialLives <= 0 {
		initialLives = constants.InitialLives
	}
	return &GameState{
		phase:        PhaseTapToPlay,
		lives:        initialLives,
		initialLives: initialLives,
	}
}

// ===== ACCESSORS =====

// Phase returns the current game phase
func (gs *GameState) Phase() GamePhase { return gs.phase }

// Score returns the current score
func (gs *GameState) Score() int { return gs.score }

// Lives returns remaining lives
func (gs *GameState) Lives() int { return gs.lives }

// Best returns the best score seen, including loaded saves
func (gs *GameState) Best() int { return gs.best }

// InitialLives returns the life count restored by Reset
func (gs *GameState) InitialLives() int { return gs.initialLives }

// SetBest seeds the best score from persisted state
func (gs *GameState) SetBest(best int) {
	if best > gs.best {
		gs.best = best
	}
}

// GameOverPending reports whether the delayed return to TapToPlay is armed
func (gs *GameState) GameOverPending() bool {
	return gs.gameOverTimer.Pending()
}

// ===== TRANSITIONS =====

// Reset restores score and lives and invalidates any pending GameOver transition
// A reset inside GameOver lands on TapToPlay; Playing is reached only from a TapToPlay tap
// Reports whether the phase left GameOver
func (gs *GameState) Reset() bool {
	gs.score = 0
	gs.lives = gs.initialLives
	gs.gameOverTimer.Cancel()
	if gs.phase != PhaseGameOver {
		return false
	}
	gs.setPhase(PhaseTapToPlay)
	return true
}

func (gs *GameState) setPhase(p GamePhase) {
	if gs.phase == p {
		return
	}
	log.Printf("phase: %s -> %s (score=%d lives=%d)", gs.phase, p, gs.score, gs.lives)
	gs.phase = p
}

// addScore applies a good collision
func (gs *GameState) addScore(n int) {
	gs.score += n
	if gs.score > gs.best {
		gs.best = gs.score
	}
}

// loseLife applies a bad collision and reports whether lives are exhausted
func (gs *GameState) loseLife() bool {
	if gs.lives > 0 {
		gs.lives--
	}
	return gs.lives <= 0
}

// enterGameOver switches to PhaseGameOver and arms the delayed return
// onExpire runs on the tick that fires the transition, after the phase change
func (gs *GameState) enterGameOver(now float64, onExpire func()) {
	gs.setPhase(PhaseGameOver)
	var gen uint64
	gen = gs.gameOverTimer.Schedule(now, constants.GameOverDelay, func() {
		// Stale episode
		if gs.gameOverTimer.Generation() != gen || gs.phase != PhaseGameOver {
			return
		}
		gs.setPhase(PhaseTapToPlay)
		if onExpire != nil {
			onExpire()
		}
	})
}

// advance fires the GameOver transition when due
func (gs *GameState) advance(now float64) bool {
	return gs.gameOverTimer.Advance(now)
}

// expireGameOver fires the pending GameOver transition immediately
func (gs *GameState) expireGameOver() bool {
	return gs.gameOverTimer.Fire()
}
