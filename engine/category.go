package engine

// Category classifies a scene object and drives the tap outcome
type Category int

const (
	CategoryNone   Category = iota // Nothing under the touch point
	CategoryGood                   // Coloured shape, scores a point
	CategoryBad                    // Black shape, costs a life
	CategoryHUD                    // Heads-up display row
	CategorySplash                 // TapToPlay / GameOver overlay
)

var categoryNames = map[Category]string{
	CategoryNone:   "None",
	CategoryGood:   "Good",
	CategoryBad:    "Bad",
	CategoryHUD:    "HUD",
	CategorySplash: "Splash",
}

func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return "Unknown"
}

// Collidable reports whether a tap on this category reaches the collision handler
func (c Category) Collidable() bool {
	return c == CategoryGood || c == CategoryBad
}
