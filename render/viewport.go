package render

import (
	"math"

	"github.com/lixenwraith/geometry-fighter/constants"
	"github.com/lixenwraith/geometry-fighter/engine"
)

// Viewport maps the fixed world window onto the terminal play area below the HUD
// World Y points up, screen rows point down
type Viewport struct {
	Width  int
	Height int
	Top    int // First play row
}

// NewViewport creates a viewport for a w×h terminal
func NewViewport(w, h int) Viewport {
	return Viewport{Width: w, Height: h, Top: constants.HUDRow + 1}
}

func (v Viewport) playWidth() int {
	return max(v.Width, 1)
}

func (v Viewport) playHeight() int {
	return max(v.Height-v.Top, 1)
}

// WorldToScreen returns the cell containing world point (x, y)
func (v Viewport) WorldToScreen(x, y float64) (col, row int) {
	fx := (x - constants.WorldMinX) / (constants.WorldMaxX - constants.WorldMinX)
	fy := (constants.WorldMaxY - y) / (constants.WorldMaxY - constants.WorldMinY)
	col = int(math.Floor(fx * float64(v.playWidth())))
	row = v.Top + int(math.Floor(fy*float64(v.playHeight())))
	return col, row
}

// ScreenToWorld returns the world point at the center of cell (col, row)
func (v Viewport) ScreenToWorld(col, row int) (x, y float64) {
	x = constants.WorldMinX + (float64(col)+0.5)/float64(v.playWidth())*(constants.WorldMaxX-constants.WorldMinX)
	y = constants.WorldMaxY - (float64(row-v.Top)+0.5)/float64(v.playHeight())*(constants.WorldMaxY-constants.WorldMinY)
	return x, y
}

// Contains reports whether the cell is inside the play area
func (v Viewport) Contains(col, row int) bool {
	return col >= 0 && col < v.Width && row >= v.Top && row < v.Height
}

// Rect is an inclusive cell rectangle
type Rect struct {
	X0, Y0, X1, Y1 int
}

// Contains reports whether the cell lies inside r
func (r Rect) Contains(col, row int) bool {
	return col >= r.X0 && col <= r.X1 && row >= r.Y0 && row <= r.Y1
}

// Footprint returns the cells covered by obj's shape, at least one cell
func (v Viewport) Footprint(obj engine.Object) Rect {
	info := obj.Shape.Info()
	x0, y0 := v.WorldToScreen(obj.X-info.Width/2, obj.Y+info.Height/2)
	x1, y1 := v.WorldToScreen(obj.X+info.Width/2, obj.Y-info.Height/2)
	return Rect{X0: x0, Y0: y0, X1: max(x1, x0), Y1: max(y1, y0)}
}
