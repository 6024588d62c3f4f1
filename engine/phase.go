package engine

// GamePhase is the top-level game state
type GamePhase int

const (
	PhaseTapToPlay GamePhase = iota // Waiting for the first tap, initial
	PhasePlaying                    // Shapes spawning, taps scored
	PhaseGameOver                   // Lives exhausted, taps ignored until the delay fires
)

// String returns the phase name, also used as the splash overlay key
func (p GamePhase) String() string {
	switch p {
	case PhaseTapToPlay:
		return "TapToPlay"
	case PhasePlaying:
		return "Playing"
	case PhaseGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}
