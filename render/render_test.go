package render

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/geometry-fighter/engine"
)

// newTestScreen returns an initialized 80x24 simulation screen
func newTestScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(80, 24)
	return screen
}

// rowText reads one screen row as a string
func rowText(screen tcell.Screen, y int) string {
	w, _ := screen.Size()
	var sb strings.Builder
	for x := 0; x < w; x++ {
		ch, _, _, _ := screen.GetContent(x, y)
		if ch == 0 {
			ch = ' '
		}
		sb.WriteRune(ch)
	}
	return sb.String()
}

// placed returns an object snapshot at world (x, y)
func placed(id engine.ObjectID, cat engine.Category, shape engine.ShapeKind, color engine.Color, x, y float64) engine.Object {
	return engine.Object{ID: id, Category: cat, Shape: shape, Color: color, X: x, Y: y}
}
