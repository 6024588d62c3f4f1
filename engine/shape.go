package engine

import "math/rand"

// ShapeKind is one of the eight launchable geometries
type ShapeKind int

const (
	ShapeBox ShapeKind = iota
	ShapeSphere
	ShapePyramid
	ShapeTorus
	ShapeCapsule
	ShapeCylinder
	ShapeCone
	ShapeTube
	ShapeKindCount
)

// ShapeInfo describes a shape's name and world-space extent
type ShapeInfo struct {
	Name   string
	Width  float64
	Height float64
	Glyph  rune
}

var shapeInfo = [ShapeKindCount]ShapeInfo{
	ShapeBox:      {Name: "Box", Width: 1.0, Height: 1.0, Glyph: '■'},
	ShapeSphere:   {Name: "Sphere", Width: 1.0, Height: 1.0, Glyph: '●'},
	ShapePyramid:  {Name: "Pyramid", Width: 1.0, Height: 1.0, Glyph: '▲'},
	ShapeTorus:    {Name: "Torus", Width: 1.5, Height: 0.5, Glyph: '◎'},
	ShapeCapsule:  {Name: "Capsule", Width: 0.6, Height: 2.5, Glyph: '▮'},
	ShapeCylinder: {Name: "Cylinder", Width: 0.6, Height: 2.5, Glyph: '▯'},
	ShapeCone:     {Name: "Cone", Width: 1.0, Height: 1.0, Glyph: '◭'},
	ShapeTube:     {Name: "Tube", Width: 1.0, Height: 1.0, Glyph: '◯'},
}

// Info returns the static description of a shape kind
func (s ShapeKind) Info() ShapeInfo {
	if s < 0 || s >= ShapeKindCount {
		return ShapeInfo{Name: "Unknown", Width: 1, Height: 1, Glyph: '?'}
	}
	return shapeInfo[s]
}

func (s ShapeKind) String() string {
	return s.Info().Name
}

// RandomShape draws a shape kind uniformly
func RandomShape(rng *rand.Rand) ShapeKind {
	return ShapeKind(rng.Intn(int(ShapeKindCount)))
}
