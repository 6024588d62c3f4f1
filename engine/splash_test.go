package engine

import "testing"

// TestSplashSetMutualExclusion verifies at most one overlay is visible
func TestSplashSetMutualExclusion(t *testing.T) {
	s := NewSplashSet(SplashTapToPlay, SplashGameOver)

	if s.Visible() != SplashNone {
		t.Errorf("Expected all hidden initially, got %q", s.Visible())
	}

	s.Show(SplashTapToPlay)
	if !s.IsVisible(SplashTapToPlay) || s.IsVisible(SplashGameOver) {
		t.Error("Expected only TapToPlay visible")
	}

	s.Show(SplashGameOver)
	if s.IsVisible(SplashTapToPlay) || !s.IsVisible(SplashGameOver) {
		t.Error("Expected only GameOver visible")
	}

	s.Show(SplashNone)
	for _, name := range s.Names() {
		if s.IsVisible(name) {
			t.Errorf("Expected %q hidden during play", name)
		}
	}
}

func TestSplashSetUnknownHidesAll(t *testing.T) {
	s := NewSplashSet(SplashTapToPlay, SplashGameOver)
	s.Show(SplashTapToPlay)
	s.Show("Trail")

	if s.Visible() != SplashNone {
		t.Errorf("Expected unknown name to hide all, got %q", s.Visible())
	}
}
