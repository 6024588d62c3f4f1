package render

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/geometry-fighter/constants"
	"github.com/lixenwraith/geometry-fighter/engine"
)

// Renderer draws the scene, effects, HUD and splash overlays to a tcell screen
// It implements engine.Display; all methods run on the loop goroutine
type Renderer struct {
	screen  tcell.Screen
	view    Viewport
	splash  *engine.SplashSet
	hud     engine.HUDSnapshot
	shake   *CameraShake
	effects *Effects
	frames  uint64
}

var _ engine.Display = (*Renderer)(nil)

// NewRenderer creates a renderer sized to the screen
func NewRenderer(screen tcell.Screen, seed int64) *Renderer {
	rng := rand.New(rand.NewSource(seed))
	r := &Renderer{
		screen:  screen,
		splash:  engine.NewSplashSet(engine.SplashTapToPlay, engine.SplashGameOver),
		shake:   NewCameraShake(rng),
		effects: NewEffects(rng),
	}
	r.Resize()
	return r
}

// ===== engine.Display =====

// ShowSplash switches overlays; hiding them starts a fresh round, so leftover effects are dropped
func (r *Renderer) ShowSplash(name string) {
	r.splash.Show(name)
	if name == engine.SplashNone {
		r.effects.Clear()
	}
}

func (r *Renderer) ShakeCamera() {
	r.shake.Start(constants.ShakeDuration, constants.ShakeMagnitude)
}

func (r *Renderer) Explode(obj engine.Object) { r.effects.Explode(obj) }

func (r *Renderer) RefreshHUD(hud engine.HUDSnapshot) { r.hud = hud }

// ===== ACCESSORS =====

// Viewport returns the current world-to-screen mapping
func (r *Renderer) Viewport() Viewport { return r.view }

// Splash returns the overlay state
func (r *Renderer) Splash() *engine.SplashSet { return r.splash }

// HUD returns the last HUD snapshot
func (r *Renderer) HUD() engine.HUDSnapshot { return r.hud }

// Shake returns the camera shake
func (r *Renderer) Shake() *CameraShake { return r.shake }

// Effects returns the particle and trail state
func (r *Renderer) Effects() *Effects { return r.effects }

// Frames returns the number of frames drawn
func (r *Renderer) Frames() uint64 { return r.frames }

// Resize re-reads the screen size
func (r *Renderer) Resize() {
	w, h := r.screen.Size()
	r.view = NewViewport(w, h)
}

// Update advances visual effects by real frame time and extends trails behind objects
func (r *Renderer) Update(dt time.Duration, objects []engine.Object) {
	r.shake.Update(dt)
	r.effects.Update(dt)
	for _, obj := range objects {
		r.effects.AddTrail(obj)
	}
}

// SplashRect returns the overlay panel centered on screen
func (r *Renderer) SplashRect() Rect {
	w := min(constants.SplashWidth, r.view.Width)
	h := min(constants.SplashHeight, r.view.Height)
	x := (r.view.Width - w) / 2
	y := (r.view.Height - h) / 2
	return Rect{X0: x, Y0: y, X1: x + w - 1, Y1: y + h - 1}
}

// Draw renders one frame
func (r *Renderer) Draw(objects []engine.Object) {
	r.screen.Clear()
	bg := tcell.StyleDefault.Background(RgbBackground)
	r.fill(Rect{X0: 0, Y0: 0, X1: r.view.Width - 1, Y1: r.view.Height - 1}, ' ', bg)

	r.drawTrails(bg)
	for _, obj := range objects {
		r.drawObject(obj, bg)
	}
	r.drawParticles(bg)
	r.drawHUD()
	r.drawSplash()

	r.screen.Show()
	r.frames++
}

// setWorld draws a glyph at a world cell shifted by the camera shake
func (r *Renderer) setWorld(col, row int, ch rune, style tcell.Style) {
	dx, dy := r.shake.Offset()
	col, row = col+dx, row+dy
	if !r.view.Contains(col, row) {
		return
	}
	r.screen.SetContent(col, row, ch, nil, style)
}

func (r *Renderer) fill(rect Rect, ch rune, style tcell.Style) {
	for y := rect.Y0; y <= rect.Y1; y++ {
		for x := rect.X0; x <= rect.X1; x++ {
			r.screen.SetContent(x, y, ch, nil, style)
		}
	}
}

func (r *Renderer) text(x, y int, s string, style tcell.Style) {
	for _, ch := range s {
		if x >= r.view.Width {
			return
		}
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
}

func (r *Renderer) drawObject(obj engine.Object, bg tcell.Style) {
	style := bg.Foreground(ShapeColor(obj.Color))
	if obj.Color.IsBlack() {
		style = style.Background(RgbBadShapeBg)
	}
	glyph := obj.Shape.Info().Glyph

	fp := r.view.Footprint(obj)
	for y := fp.Y0; y <= fp.Y1; y++ {
		for x := fp.X0; x <= fp.X1; x++ {
			r.setWorld(x, y, glyph, style)
		}
	}
}

func (r *Renderer) drawTrails(bg tcell.Style) {
	for _, t := range r.effects.trails {
		col, row := r.view.WorldToScreen(t.x, t.y)
		f := fade(t.age, constants.TrailLifetime)
		r.setWorld(col, row, '░', bg.Foreground(Fade(t.color, f*0.6)))
	}
}

func (r *Renderer) drawParticles(bg tcell.Style) {
	for _, p := range r.effects.particles {
		col, row := r.view.WorldToScreen(p.x, p.y)
		fg := Fade(p.color, fade(p.age, p.life))
		if p.color.IsBlack() {
			fg = RgbBlackParticle
		}
		r.setWorld(col, row, p.glyph, bg.Foreground(fg))
	}
}

// HUDText formats the heads-up display line
func HUDText(h engine.HUDSnapshot) string {
	s := fmt.Sprintf(" score %d | lives %d | best %d ", h.Score, h.Lives, h.Best)
	if h.Paused {
		s += "| PAUSED "
	}
	return s
}

func (r *Renderer) drawHUD() {
	if r.view.Height <= constants.HUDRow {
		return
	}
	bgColor := RgbHUDBg
	if r.hud.Paused {
		bgColor = RgbHUDPaused
	}
	style := tcell.StyleDefault.Background(bgColor).Foreground(RgbHUDText)
	r.fill(Rect{X0: 0, Y0: constants.HUDRow, X1: r.view.Width - 1, Y1: constants.HUDRow}, ' ', style)
	r.text(0, constants.HUDRow, HUDText(r.hud), style.Bold(true))
}

func (r *Renderer) drawSplash() {
	var title, hint string
	titleColor := RgbSplashTitle
	switch r.splash.Visible() {
	case engine.SplashTapToPlay:
		title, hint = constants.SplashTapText, constants.SplashTapHint
	case engine.SplashGameOver:
		title, hint = constants.SplashOverText, constants.SplashOverHint
		titleColor = RgbSplashOver
	default:
		return
	}

	rect := r.SplashRect()
	base := tcell.StyleDefault.Background(RgbSplashBg)
	r.fill(rect, ' ', base)

	border := base.Foreground(RgbSplashBorder)
	for x := rect.X0 + 1; x < rect.X1; x++ {
		r.screen.SetContent(x, rect.Y0, '─', nil, border)
		r.screen.SetContent(x, rect.Y1, '─', nil, border)
	}
	for y := rect.Y0 + 1; y < rect.Y1; y++ {
		r.screen.SetContent(rect.X0, y, '│', nil, border)
		r.screen.SetContent(rect.X1, y, '│', nil, border)
	}
	r.screen.SetContent(rect.X0, rect.Y0, '┌', nil, border)
	r.screen.SetContent(rect.X1, rect.Y0, '┐', nil, border)
	r.screen.SetContent(rect.X0, rect.Y1, '└', nil, border)
	r.screen.SetContent(rect.X1, rect.Y1, '┘', nil, border)

	r.centered(rect, rect.Y0+2, title, base.Foreground(titleColor).Bold(true))
	if r.splash.Visible() == engine.SplashGameOver {
		r.centered(rect, rect.Y0+3, fmt.Sprintf("score %d  best %d", r.hud.Score, r.hud.Best), base.Foreground(RgbSplashHint))
	}
	r.centered(rect, rect.Y0+4, hint, base.Foreground(RgbSplashHint))
}

func (r *Renderer) centered(rect Rect, y int, s string, style tcell.Style) {
	if y > rect.Y1 {
		return
	}
	w := rect.X1 - rect.X0 + 1
	x := rect.X0 + (w-len([]rune(s)))/2
	r.text(max(x, rect.X0), y, s, style)
}
