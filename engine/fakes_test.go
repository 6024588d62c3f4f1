package engine

import "github.com/lixenwraith/geometry-fighter/core"

// recordingCues captures played cues in order
type recordingCues struct {
	played []core.Cue
}

func (r *recordingCues) PlayCue(c core.Cue) {
	r.played = append(r.played, c)
}

func (r *recordingCues) count(c core.Cue) int {
	n := 0
	for _, p := range r.played {
		if p == c {
			n++
		}
	}
	return n
}

// recordingDisplay captures visual side effects
type recordingDisplay struct {
	splash     *SplashSet
	splashLog  []string
	shakes     int
	explosions []Object
	huds       []HUDSnapshot
}

func newRecordingDisplay() *recordingDisplay {
	return &recordingDisplay{splash: NewSplashSet(SplashTapToPlay, SplashGameOver)}
}

func (d *recordingDisplay) ShowSplash(name string) {
	d.splash.Show(name)
	d.splashLog = append(d.splashLog, name)
}

func (d *recordingDisplay) ShakeCamera() { d.shakes++ }

func (d *recordingDisplay) Explode(obj Object) {
	d.explosions = append(d.explosions, obj)
}

func (d *recordingDisplay) RefreshHUD(h HUDSnapshot) {
	d.huds = append(d.huds, h)
}

// testRig bundles a game with recording collaborators
type testRig struct {
	game    *Game
	scene   *MemoryScene
	cues    *recordingCues
	display *recordingDisplay
	store   *MemoryScoreStore
}

func newTestRig() *testRig {
	scene := NewMemoryScene()
	cues := &recordingCues{}
	display := newRecordingDisplay()
	store := &MemoryScoreStore{}

	cfg := DefaultGameConfig()
	cfg.Seed = 42

	return &testRig{
		game:    NewGame(cfg, scene, cues, display, store),
		scene:   scene,
		cues:    cues,
		display: display,
		store:   store,
	}
}

// startPlaying taps once from TapToPlay
func (r *testRig) startPlaying() {
	r.game.HandleTap(0, CategoryNone)
}
