package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/geometry-fighter/engine"
)

// RGB color definitions
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38) // Tokyo Night background

	RgbHUDText   = tcell.NewRGBColor(0, 0, 0)       // Dark text on the HUD bar
	RgbHUDBg     = tcell.NewRGBColor(135, 206, 250) // Light sky blue
	RgbHUDPaused = tcell.NewRGBColor(255, 165, 0)   // Orange while paused

	RgbSplashBg     = tcell.NewRGBColor(40, 42, 60)
	RgbSplashBorder = tcell.NewRGBColor(180, 180, 180) // Brighter gray
	RgbSplashTitle  = tcell.NewRGBColor(255, 255, 0)   // Bright yellow
	RgbSplashOver   = tcell.NewRGBColor(255, 80, 80)   // Normal red
	RgbSplashHint   = tcell.NewRGBColor(200, 200, 200) // Light gray

	// Black shapes would vanish on the background; they get a gray cell behind the glyph
	RgbBadShapeBg    = tcell.NewRGBColor(90, 90, 100)
	RgbBlackParticle = tcell.NewRGBColor(110, 110, 120)
)

// ShapeColor converts a palette colour to a terminal colour
func ShapeColor(c engine.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Fade blends c toward the background; f = 1 is full colour, f = 0 is background
func Fade(c engine.Color, f float64) tcell.Color {
	if f < 0 {
		f = 0
	}
	if f > 1 {
		f = 1
	}
	br, bg, bb := RgbBackground.RGB()
	mix := func(v uint8, base int32) int32 {
		return base + int32(float64(int32(v)-base)*f)
	}
	if c.IsBlack() {
		c = engine.Color{R: 110, G: 110, B: 120}
	}
	return tcell.NewRGBColor(mix(c.R, br), mix(c.G, bg), mix(c.B, bb))
}
