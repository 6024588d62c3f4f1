package constants

// Lifecycle
const (
	// InitialLives is the life count restored by every reset
	InitialLives = 3

	// GameOverDelay is the game-clock delay (seconds) before GameOver returns to TapToPlay
	GameOverDelay = 5.0
)

// Spawn timing, seconds on the game clock
const (
	SpawnIntervalMin = 0.2
	SpawnIntervalMax = 1.5
)

// Scene geometry, world units
const (
	// EvictionY is the height below which objects are swept from the scene
	EvictionY = -2.0

	// Launch impulse applied to every spawned shape
	LaunchImpulseXMin = -2.0
	LaunchImpulseXMax = 2.0
	LaunchImpulseYMin = 10.0
	LaunchImpulseYMax = 18.0

	// Gravity pulls shapes back down after launch
	Gravity = 9.8
)

// Visible world window mapped onto the terminal
const (
	WorldMinX = -8.0
	WorldMaxX = 8.0
	WorldMinY = -2.0
	WorldMaxY = 17.0
)

// Picking
const (
	// HitSlop widens every shape footprint on each side for pointer hit tests, world units
	HitSlop = 0.25
)
