package engine

import "github.com/lixenwraith/geometry-fighter/constants"

// SceneJanitor evicts objects that have fallen out of play
type SceneJanitor struct {
	threshold float64
}

// NewSceneJanitor creates a janitor using the standard eviction height
func NewSceneJanitor() *SceneJanitor {
	return &SceneJanitor{threshold: constants.EvictionY}
}

// Threshold returns the eviction height
func (j *SceneJanitor) Threshold() float64 {
	return j.threshold
}

// Sweep destroys every object strictly below the threshold and returns how many were removed
func (j *SceneJanitor) Sweep(scene Scene) int {
	removed := 0
	for _, obj := range scene.Objects() {
		if obj.Y >= j.threshold {
			continue
		}
		if scene.Destroy(obj.ID) {
			removed++
		}
	}
	return removed
}
