package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/falling-circles/internal/sim"
)

const (
	glowSteps   = 4
	glowOpacity = 0.35
)

var background = color.RGBA{R: 8, G: 10, B: 18, A: 255}

// canvas draws sim circles onto an ebiten image. Glow is approximated by
// fading concentric halos spread over half the blur radius.
type canvas struct {
	dst *ebiten.Image
}

func (c *canvas) Clear() {
	c.dst.Fill(background)
}

func (c *canvas) FillCircle(circle sim.Circle) {
	if circle.Radius <= 0 || circle.Alpha <= 0 {
		return
	}
	x, y := float32(circle.X), float32(circle.Y)

	if circle.Glow > 0 {
		spread := circle.Glow / 2
		halo := nrgba(circle.Color, circle.Alpha*glowOpacity/glowSteps)
		for k := glowSteps; k >= 1; k-- {
			r := circle.Radius + spread*float64(k)/glowSteps
			vector.DrawFilledCircle(c.dst, x, y, float32(r), halo, true)
		}
	}

	vector.DrawFilledCircle(c.dst, x, y, float32(circle.Radius), nrgba(circle.Color, circle.Alpha), true)
}
