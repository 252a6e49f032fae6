package sim

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/iburimskiy/falling-circles/internal/spectrum"
)

const (
	particleGlow = 16.0

	dotSpacing   = 70.0
	dotRadius    = 28.0
	dotGrowth    = 38.0
	dotAlpha     = 0.85
	dotGlowScale = 24.0
)

// Band indicator colours, left to right: bass, low mid, high mid, treble.
var dotColors = [4]colorful.Color{
	hexColor("#ff5252"),
	hexColor("#ffd600"),
	hexColor("#40c4ff"),
	hexColor("#7c4dff"),
}

func hexColor(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Circle is one filled circle draw command. Glow is the blur radius around it.
type Circle struct {
	X, Y   float64
	Radius float64
	Color  colorful.Color
	Alpha  float64
	Glow   float64
}

// Canvas receives draw commands.
type Canvas interface {
	Clear()
	FillCircle(c Circle)
}

// Project appends one circle per live particle, in store order.
func Project(dst []Circle, store *Store) []Circle {
	for i := range store.particles {
		p := &store.particles[i]
		dst = append(dst, Circle{
			X:      p.X,
			Y:      p.Y,
			Radius: p.Radius,
			Color:  p.Color(),
			Alpha:  p.Alpha,
			Glow:   particleGlow * p.Pulse,
		})
	}
	return dst
}

// Dots appends the four band indicators centred on a width x height canvas.
func Dots(dst []Circle, stats spectrum.Stats, width, height float64) []Circle {
	cx, cy := width/2, height/2
	for i, v := range stats.Bands() {
		dst = append(dst, Circle{
			X:      cx + (float64(i)-1.5)*dotSpacing,
			Y:      cy,
			Radius: dotRadius + dotGrowth*v,
			Color:  dotColors[i],
			Alpha:  dotAlpha,
			Glow:   dotGlowScale * v,
		})
	}
	return dst
}
