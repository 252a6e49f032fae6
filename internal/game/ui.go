package game

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/falling-circles/internal/config"
)

const charWidth = 6 // debug font glyph width

func (g *Game) inButton(x, y int) bool {
	return x >= config.ButtonX && x <= config.ButtonX+config.ButtonWidth &&
		y >= config.ButtonY && y <= config.ButtonY+config.ButtonHeight
}

// progressRect is the seek bar along the bottom of the window.
func (g *Game) progressRect() (x, y, w, h int) {
	x = config.ProgressMargin
	w = max(1, g.width-2*config.ProgressMargin)
	h = config.ProgressHeight
	y = g.height - config.ProgressBottom - h
	return x, y, w, h
}

func (g *Game) inProgress(mx, my int) bool {
	x, y, w, h := g.progressRect()
	return mx >= x && mx <= x+w && my >= y && my <= y+h
}

func (g *Game) drawButton(screen *ebiten.Image) {
	var bgColor color.Color
	if g.buttonPressed {
		bgColor = color.RGBA{R: 60, G: 80, B: 120, A: 255} // Pressed
	} else if g.buttonHovered {
		bgColor = color.RGBA{R: 80, G: 100, B: 140, A: 255} // Hovered
	} else {
		bgColor = color.RGBA{R: 100, G: 120, B: 160, A: 255} // Normal
	}

	vector.DrawFilledRect(screen, config.ButtonX, config.ButtonY, config.ButtonWidth, config.ButtonHeight, bgColor, false)
	vector.StrokeRect(screen, config.ButtonX, config.ButtonY, config.ButtonWidth, config.ButtonHeight, 2, color.RGBA{R: 150, G: 170, B: 200, A: 255}, false)

	text := "Open File"
	textX := config.ButtonX + (config.ButtonWidth-len(text)*charWidth)/2
	textY := config.ButtonY + (config.ButtonHeight-16)/2
	ebitenutil.DebugPrintAt(screen, text, textX, textY)
}

func (g *Game) drawProgressBar(screen *ebiten.Image) {
	duration := g.player.Duration()
	if duration == 0 {
		return
	}
	barX, barY, barWidth, barHeight := g.progressRect()
	position := g.player.Position()
	progress := clamp01(float64(position) / float64(duration))

	vector.DrawFilledRect(screen, float32(barX), float32(barY), float32(barWidth), float32(barHeight), color.RGBA{R: 25, G: 30, B: 40, A: 200}, false)
	if progress > 0 {
		vector.DrawFilledRect(screen, float32(barX), float32(barY), float32(progress*float64(barWidth)), float32(barHeight), color.RGBA{R: 124, G: 77, B: 255, A: 220}, false)
	}
	vector.StrokeRect(screen, float32(barX), float32(barY), float32(barWidth), float32(barHeight), 1, color.RGBA{R: 70, G: 80, B: 100, A: 255}, false)

	indicatorX := float32(float64(barX) + progress*float64(barWidth))
	vector.DrawFilledCircle(screen, indicatorX, float32(barY+barHeight/2), 7, color.White, true)

	current := formatDuration(position)
	total := formatDuration(duration)
	ebitenutil.DebugPrintAt(screen, current, barX, barY+barHeight+4)
	ebitenutil.DebugPrintAt(screen, total, barX+barWidth-len(total)*charWidth, barY+barHeight+4)

	if g.progressHovered {
		mouseX, _ := ebiten.CursorPosition()
		hover := clamp01(float64(mouseX-barX) / float64(barWidth))
		tip := formatDuration(time.Duration(hover * float64(duration)))
		tipWidth := len(tip)*charWidth + 10
		tipX := max(0, min(g.width-tipWidth, mouseX-tipWidth/2))
		tipY := barY - 24
		vector.DrawFilledRect(screen, float32(tipX), float32(tipY), float32(tipWidth), 20, color.RGBA{A: 200}, false)
		ebitenutil.DebugPrintAt(screen, tip, tipX+5, tipY+2)
	}
}

func (g *Game) drawStatus(screen *ebiten.Image) {
	var status string
	switch {
	case !g.player.Loaded():
		status = "Click the button below to open an audio file, click anywhere to spawn circles"
	case g.player.Playing():
		status = fmt.Sprintf("Playing %s - Space to pause", g.player.Name())
	default:
		status = fmt.Sprintf("Paused %s - Space to play", g.player.Name())
	}
	status += fmt.Sprintf(" | circles: %d", g.driver.Frame().Particles)
	if g.lastErr != nil {
		status += " | Error: " + g.lastErr.Error()
	}
	ebitenutil.DebugPrintAt(screen, status, 12, 8)
}
