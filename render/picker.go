package render

import (
	"github.com/lixenwraith/geometry-fighter/constants"
	"github.com/lixenwraith/geometry-fighter/engine"
)

// HitTester resolves a world point to the topmost object under it
type HitTester interface {
	HitTest(x, y float64) (engine.ObjectID, engine.Category)
}

// Picker resolves screen cells to the category under them
// Order: HUD row, visible splash panel, drawn shape footprints (topmost first), then a world-space near miss
type Picker struct {
	renderer *Renderer
	scene    engine.Scene
	world    HitTester
}

var _ engine.Picker = (*Picker)(nil)

// NewPicker creates a picker; world may be nil to disable near-miss hits
func NewPicker(r *Renderer, scene engine.Scene, world HitTester) *Picker {
	return &Picker{renderer: r, scene: scene, world: world}
}

func (p *Picker) Pick(x, y int) (engine.ObjectID, engine.Category) {
	if y == constants.HUDRow {
		return 0, engine.CategoryHUD
	}
	if p.renderer.splash.Visible() != engine.SplashNone && p.renderer.SplashRect().Contains(x, y) {
		return 0, engine.CategorySplash
	}

	// Undo the shake applied when drawing
	dx, dy := p.renderer.shake.Offset()
	x, y = x-dx, y-dy

	view := p.renderer.view
	if !view.Contains(x, y) {
		return 0, engine.CategoryNone
	}

	objects := p.scene.Objects()
	for i := len(objects) - 1; i >= 0; i-- {
		if view.Footprint(objects[i]).Contains(x, y) {
			return objects[i].ID, objects[i].Category
		}
	}

	if p.world != nil {
		wx, wy := view.ScreenToWorld(x, y)
		return p.world.HitTest(wx, wy)
	}
	return 0, engine.CategoryNone
}
