package engine

import (
	"fmt"
	"math/rand"
	"strings"
)

// Color is a named palette entry
type Color struct {
	Name    string
	R, G, B uint8
}

// IsBlack reports whether the colour marks a bad shape
func (c Color) IsBlack() bool {
	return c.R == 0 && c.G == 0 && c.B == 0
}

var (
	ColorBlack   = Color{Name: "black", R: 0, G: 0, B: 0}
	ColorWhite   = Color{Name: "white", R: 255, G: 255, B: 255}
	ColorRed     = Color{Name: "red", R: 255, G: 60, B: 60}
	ColorGreen   = Color{Name: "green", R: 60, G: 220, B: 60}
	ColorBlue    = Color{Name: "blue", R: 80, G: 130, B: 255}
	ColorYellow  = Color{Name: "yellow", R: 255, G: 230, B: 40}
	ColorCyan    = Color{Name: "cyan", R: 40, G: 220, B: 230}
	ColorMagenta = Color{Name: "magenta", R: 230, G: 60, B: 230}
)

// Palette is the set of colours a spawned shape can take
type Palette []Color

// DefaultPalette holds eight colours, one of them black
var DefaultPalette = Palette{
	ColorBlack, ColorWhite, ColorRed, ColorGreen,
	ColorBlue, ColorYellow, ColorCyan, ColorMagenta,
}

// Draw picks a colour uniformly
func (p Palette) Draw(rng *rand.Rand) Color {
	return p[rng.Intn(len(p))]
}

// BlackProbability is the single-draw probability of black
func (p Palette) BlackProbability() float64 {
	if len(p) == 0 {
		return 0
	}
	n := 0
	for _, c := range p {
		if c.IsBlack() {
			n++
		}
	}
	return float64(n) / float64(len(p))
}

// ColorBias selects the two-draw rule applied to spawn colours
type ColorBias int

const (
	// BiasReduceBlack redraws once when the first draw is black; P(black) = p*p
	BiasReduceBlack ColorBias = iota
	// BiasFavorBlack redraws once when the first draw is not black; P(black) = 2p - p*p
	BiasFavorBlack
)

func (b ColorBias) String() string {
	if b == BiasFavorBlack {
		return "favor"
	}
	return "reduce"
}

// ParseColorBias accepts "reduce" or "favor"
func ParseColorBias(s string) (ColorBias, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "reduce":
		return BiasReduceBlack, nil
	case "favor", "favour":
		return BiasFavorBlack, nil
	default:
		return BiasReduceBlack, fmt.Errorf("unknown color bias %q", s)
	}
}

// DrawBiased applies the two-draw rule; the second draw is final and may itself be black
func (p Palette) DrawBiased(rng *rand.Rand, bias ColorBias) Color {
	c := p.Draw(rng)
	redraw := c.IsBlack()
	if bias == BiasFavorBlack {
		redraw = !redraw
	}
	if redraw {
		c = p.Draw(rng)
	}
	return c
}

// BadProbability is the expected rate of black shapes under the bias
func (p Palette) BadProbability(bias ColorBias) float64 {
	pb := p.BlackProbability()
	if bias == BiasFavorBlack {
		return 2*pb - pb*pb
	}
	return pb * pb
}
