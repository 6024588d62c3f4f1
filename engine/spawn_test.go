package engine

import (
	"math"
	"math/rand"
	"testing"

	"github.com/lixenwraith/geometry-fighter/constants"
)

// TestSpawnSchedulerIgnoresNonPlaying verifies no spawn outside PhasePlaying
func TestSpawnSchedulerIgnoresNonPlaying(t *testing.T) {
	s := NewSpawnScheduler(rand.New(rand.NewSource(1)))

	for _, phase := range []GamePhase{PhaseTapToPlay, PhaseGameOver} {
		if s.OnTick(phase, 100) {
			t.Errorf("Expected no spawn in %s", phase)
		}
	}
	if s.NextSpawnAt() != 0 {
		t.Errorf("Expected nextSpawnAt untouched, got %f", s.NextSpawnAt())
	}
}

// TestSpawnSchedulerWaitsUntilDue verifies now <= nextSpawnAt never spawns
func TestSpawnSchedulerWaitsUntilDue(t *testing.T) {
	s := NewSpawnScheduler(rand.New(rand.NewSource(1)))

	if !s.OnTick(PhasePlaying, 1.0) {
		t.Fatal("Expected first spawn once time passes zero")
	}
	next := s.NextSpawnAt()

	for _, now := range []float64{1.0, next - 0.1, next} {
		if s.OnTick(PhasePlaying, now) {
			t.Errorf("Expected no spawn at %f (next %f)", now, next)
		}
	}
	if s.NextSpawnAt() != next {
		t.Errorf("Expected nextSpawnAt unchanged without a spawn, got %f", s.NextSpawnAt())
	}
}

// TestSpawnSchedulerInterval verifies rescheduling stays inside [now+min, now+max] and moves forward
func TestSpawnSchedulerInterval(t *testing.T) {
	s := NewSpawnScheduler(rand.New(rand.NewSource(7)))

	now := 0.0
	for i := 0; i < 1000; i++ {
		now = s.NextSpawnAt() + 0.001
		prev := s.NextSpawnAt()

		if !s.OnTick(PhasePlaying, now) {
			t.Fatalf("Expected spawn at %f", now)
		}

		next := s.NextSpawnAt()
		if next <= prev {
			t.Fatalf("Expected nextSpawnAt to increase, %f -> %f", prev, next)
		}
		if next < now+constants.SpawnIntervalMin || next > now+constants.SpawnIntervalMax {
			t.Fatalf("Expected next in [%f, %f], got %f", now+constants.SpawnIntervalMin, now+constants.SpawnIntervalMax, next)
		}
	}
}

// TestSpawnRequestCategoryFollowsColor verifies black is Bad and everything else Good
func TestSpawnRequestCategoryFollowsColor(t *testing.T) {
	rng := rand.New(rand.NewSource(3))

	sawGood, sawBad := false, false
	for i := 0; i < 20000; i++ {
		req := NewSpawnRequest(rng, DefaultPalette, BiasReduceBlack)
		if req.Color.IsBlack() != (req.Category == CategoryBad) {
			t.Fatalf("Category %s does not match color %s", req.Category, req.Color.Name)
		}
		if req.Category == CategoryGood {
			sawGood = true
		} else {
			sawBad = true
		}
		if req.ImpulseX < constants.LaunchImpulseXMin || req.ImpulseX > constants.LaunchImpulseXMax {
			t.Fatalf("ImpulseX out of range: %f", req.ImpulseX)
		}
		if req.ImpulseY < constants.LaunchImpulseYMin || req.ImpulseY > constants.LaunchImpulseYMax {
			t.Fatalf("ImpulseY out of range: %f", req.ImpulseY)
		}
	}
	if !sawGood || !sawBad {
		t.Errorf("Expected both categories, good=%v bad=%v", sawGood, sawBad)
	}
}

// TestRandomShapeUniform verifies all eight shapes are drawn with similar frequency
func TestRandomShapeUniform(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	const n = 80000

	var counts [ShapeKindCount]int
	for i := 0; i < n; i++ {
		counts[RandomShape(rng)]++
	}

	expected := float64(n) / float64(ShapeKindCount)
	for kind, c := range counts {
		if math.Abs(float64(c)-expected) > expected*0.05 {
			t.Errorf("Shape %s drawn %d times, expected about %.0f", ShapeKind(kind), c, expected)
		}
	}
}

// TestBadRateIsSquaredBlackProbability checks the intentional two-draw colour bias:
// the Bad rate converges to (1/k)^2, not 1/k
func TestBadRateIsSquaredBlackProbability(t *testing.T) {
	rng := rand.New(rand.NewSource(2024))
	const n = 100000
	k := float64(len(DefaultPalette))

	bad := 0
	for i := 0; i < n; i++ {
		if NewSpawnRequest(rng, DefaultPalette, BiasReduceBlack).Category == CategoryBad {
			bad++
		}
	}

	rate := float64(bad) / n
	expected := (1 / k) * (1 / k)
	if math.Abs(rate-expected) > 0.003 {
		t.Errorf("Expected bad rate near %f, got %f", expected, rate)
	}
	if math.Abs(rate-1/k) < 0.05 {
		t.Errorf("Bad rate %f is close to the single-draw rate %f", rate, 1/k)
	}
	if DefaultPalette.BadProbability(BiasReduceBlack) != expected {
		t.Errorf("Expected BadProbability %f, got %f", expected, DefaultPalette.BadProbability(BiasReduceBlack))
	}
}

// TestBadRateFavorBias checks the alternative rule that redraws non-black colours
func TestBadRateFavorBias(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	const n = 100000

	bad := 0
	for i := 0; i < n; i++ {
		if DefaultPalette.DrawBiased(rng, BiasFavorBlack).IsBlack() {
			bad++
		}
	}

	rate := float64(bad) / n
	expected := DefaultPalette.BadProbability(BiasFavorBlack)
	if math.Abs(rate-expected) > 0.01 {
		t.Errorf("Expected favor rate near %f, got %f", expected, rate)
	}
}

func TestParseColorBias(t *testing.T) {
	tests := []struct {
		in      string
		want    ColorBias
		wantErr bool
	}{
		{"", BiasReduceBlack, false},
		{"reduce", BiasReduceBlack, false},
		{"FAVOR", BiasFavorBlack, false},
		{" favour ", BiasFavorBlack, false},
		{"always", BiasReduceBlack, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColorBias(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Expected error=%v, got %v", tt.wantErr, err)
			}
			if got != tt.want {
				t.Errorf("Expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestPaletteBlackProbability(t *testing.T) {
	if p := DefaultPalette.BlackProbability(); p != 1.0/8 {
		t.Errorf("Expected 1/8, got %f", p)
	}
	if p := (Palette{}).BlackProbability(); p != 0 {
		t.Errorf("Expected 0 for empty palette, got %f", p)
	}
}
