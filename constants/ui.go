package constants

import "time"

// Camera shake
const (
	ShakeDuration  = 400 * time.Millisecond
	ShakeMagnitude = 2.0 // Terminal cells at full intensity
)

// Effects
const (
	ExplosionParticles = 14
	ExplosionLifetime  = 600 * time.Millisecond
	ExplosionSpeed     = 6.0 // World units per second
	TrailLifetime      = 250 * time.Millisecond
	TrailMaxPoints     = 256
)

// HUD and splash layout
const (
	HUDRow         = 0
	SplashWidth    = 34
	SplashHeight   = 7
	SplashTapText  = "TAP TO PLAY"
	SplashOverText = "GAME OVER"
	SplashTapHint  = "click anywhere to start"
	SplashOverHint = "best score saved"
)
