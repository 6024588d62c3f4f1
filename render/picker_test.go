package render

import (
	"testing"

	"github.com/lixenwraith/geometry-fighter/constants"
	"github.com/lixenwraith/geometry-fighter/engine"
)

// stubWorld records hit tests and returns a fixed answer
type stubWorld struct {
	id    engine.ObjectID
	cat   engine.Category
	calls int
}

func (w *stubWorld) HitTest(x, y float64) (engine.ObjectID, engine.Category) {
	w.calls++
	return w.id, w.cat
}

func TestPickerHUDAndSplash(t *testing.T) {
	screen := newTestScreen(t)
	r := NewRenderer(screen, 1)
	scene := engine.NewMemoryScene()
	p := NewPicker(r, scene, nil)

	if _, cat := p.Pick(10, constants.HUDRow); cat != engine.CategoryHUD {
		t.Errorf("Expected HUD, got %s", cat)
	}

	r.ShowSplash(engine.SplashTapToPlay)
	rect := r.SplashRect()
	if _, cat := p.Pick(rect.X0+2, rect.Y0+2); cat != engine.CategorySplash {
		t.Errorf("Expected Splash, got %s", cat)
	}

	r.ShowSplash(engine.SplashNone)
	if _, cat := p.Pick(rect.X0+2, rect.Y0+2); cat != engine.CategoryNone {
		t.Errorf("Expected None with splash hidden, got %s", cat)
	}
}

// TestPickerShapes verifies drawn footprints resolve to the topmost object
func TestPickerShapes(t *testing.T) {
	screen := newTestScreen(t)
	r := NewRenderer(screen, 1)
	scene := engine.NewMemoryScene()
	p := NewPicker(r, scene, nil)

	under := scene.Add(engine.CategoryGood, 8)
	over := scene.Add(engine.CategoryBad, 8)
	col, row := r.Viewport().WorldToScreen(0, 8)

	if id, cat := p.Pick(col, row); id != over || cat != engine.CategoryBad {
		t.Errorf("Expected topmost %d Bad, got %d %s", over, id, cat)
	}

	scene.Destroy(over)
	if id, cat := p.Pick(col, row); id != under || cat != engine.CategoryGood {
		t.Errorf("Expected %d Good, got %d %s", under, id, cat)
	}

	if id, cat := p.Pick(0, 23); id != 0 || cat != engine.CategoryNone {
		t.Errorf("Expected empty cell, got %d %s", id, cat)
	}
	if _, cat := p.Pick(200, 10); cat != engine.CategoryNone {
		t.Errorf("Expected off-screen None, got %s", cat)
	}
}

func TestPickerNearMiss(t *testing.T) {
	screen := newTestScreen(t)
	r := NewRenderer(screen, 1)
	world := &stubWorld{id: 7, cat: engine.CategoryGood}
	p := NewPicker(r, engine.NewMemoryScene(), world)

	if id, cat := p.Pick(40, 12); id != 7 || cat != engine.CategoryGood {
		t.Errorf("Expected near-miss hit from world, got %d %s", id, cat)
	}
	if world.calls != 1 {
		t.Errorf("Expected 1 world hit test, got %d", world.calls)
	}

	p.Pick(10, constants.HUDRow)
	if world.calls != 1 {
		t.Error("Expected HUD taps to skip the world")
	}
}
