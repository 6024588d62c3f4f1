package core

// Cue identifies a named sound cue played by the game
type Cue int

const (
	CueSpawnGood   Cue = iota // Good shape launched
	CueSpawnBad               // Black shape launched
	CueExplodeGood            // Good shape tapped
	CueExplodeBad             // Black shape tapped
	CueGameOver               // Last life lost
	CueCount
)

var cueNames = [CueCount]string{
	CueSpawnGood:   "SpawnGood",
	CueSpawnBad:    "SpawnBad",
	CueExplodeGood: "ExplodeGood",
	CueExplodeBad:  "ExplodeBad",
	CueGameOver:    "GameOver",
}

// String returns the cue name, also used as the wav file stem
func (c Cue) String() string {
	if c < 0 || c >= CueCount {
		return "Unknown"
	}
	return cueNames[c]
}

// ParseCue maps a cue name back to its Cue
func ParseCue(name string) (Cue, bool) {
	for i, n := range cueNames {
		if n == name {
			return Cue(i), true
		}
	}
	return 0, false
}
