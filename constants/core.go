package constants

import "time"

// Game Loop Timing
const (
	// FrameUpdateInterval is the render/tick interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// EventChannelSize is the capacity of the terminal event channel
	EventChannelSize = 256

	// EventQueueCapacity is the size of the game input ring buffer
	EventQueueCapacity = 64

	// MaxFrameDelta caps the physics step after a stall or resume
	MaxFrameDelta = 100 * time.Millisecond
)

// Logging
const (
	LogDir      = "logs"
	LogFileName = "geometry-fighter.log"
	MaxLogSize  = 10 * 1024 * 1024 // Rotate above 10MB
)
