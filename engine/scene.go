package engine

// ObjectID identifies a live scene object
type ObjectID uint64

// Object is a snapshot of a scene object as the core sees it
type Object struct {
	ID       ObjectID
	Category Category
	Shape    ShapeKind
	Color    Color
	X, Y     float64 // World position, Y up
	VX, VY   float64 // World velocity
}

// Scene is the object store owned by the host
// Destroy of an absent object is a no-op
type Scene interface {
	Spawn(req SpawnRequest) ObjectID
	Destroy(id ObjectID) bool
	Get(id ObjectID) (Object, bool)
	Objects() []Object
	Len() int
	Clear()
}
