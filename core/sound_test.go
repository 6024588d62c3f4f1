package core

import "testing"

func TestCueNamesRoundTrip(t *testing.T) {
	for c := Cue(0); c < CueCount; c++ {
		name := c.String()
		if name == "Unknown" || name == "" {
			t.Fatalf("Expected a name for cue %d", c)
		}
		got, ok := ParseCue(name)
		if !ok || got != c {
			t.Errorf("Expected ParseCue(%q) = %d, got %d (ok=%v)", name, c, got, ok)
		}
	}
}

func TestCueUnknown(t *testing.T) {
	if CueCount.String() != "Unknown" {
		t.Errorf("Expected Unknown for out-of-range cue, got %q", CueCount.String())
	}
	if _, ok := ParseCue("Trail"); ok {
		t.Error("Expected Trail not to parse as a cue")
	}
}
