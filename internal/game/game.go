// Package game drives the simulation from ebiten's loop: it polls input,
// hands clicks and ticks to the simulation driver and draws its frame.
package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/falling-circles/internal/config"
	"github.com/iburimskiy/falling-circles/internal/player"
	"github.com/iburimskiy/falling-circles/internal/sim"
)

// Game implements ebiten.Game.
type Game struct {
	driver *sim.Driver
	player *player.Player
	canvas canvas

	width, height int

	// input edge detection
	prevKey map[ebiten.Key]bool

	buttonHovered bool
	buttonPressed bool

	progressHovered  bool
	progressDragging bool

	lastErr error
}

// New creates a game of the configured size around p, drawing randomness
// from rng. A nil p is replaced by an idle player.
func New(cfg config.Config, p *player.Player, rng sim.Source) *Game {
	if p == nil {
		p = player.New(nil)
	}
	return &Game{
		driver:  sim.NewDriver(sim.New(rng), p),
		player:  p,
		width:   cfg.Width,
		height:  cfg.Height,
		prevKey: map[ebiten.Key]bool{},
	}
}

func (g *Game) Update() error {
	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !g.prevKey[k]
		g.prevKey[k] = pressed
		return jp
	}

	if justPressed(ebiten.KeySpace) {
		g.player.TogglePause()
	}
	if justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	// One stats snapshot serves both clicks and the tick of this frame.
	g.driver.Poll()
	g.handleMouse()
	g.report(g.driver.Tick(float64(g.width), float64(g.height)))
	return nil
}

func (g *Game) handleMouse() {
	mouseX, mouseY := ebiten.CursorPosition()
	pressed := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	released := inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)

	g.buttonHovered = g.inButton(mouseX, mouseY)
	g.progressHovered = g.player.Loaded() && g.inProgress(mouseX, mouseY)

	switch {
	case pressed && g.buttonHovered:
		g.buttonPressed = true
	case pressed && g.progressHovered:
		g.progressDragging = true
		g.seek(mouseX)
	case pressed:
		g.report(g.driver.Click(float64(mouseX), float64(mouseY)))
	}

	if g.progressDragging && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		g.seek(mouseX)
	}

	if released {
		if g.buttonPressed && g.buttonHovered {
			if _, err := g.player.OpenDialog(); err != nil {
				log.Printf("game: open: %v", err)
				g.lastErr = err
			} else {
				g.lastErr = nil
			}
		}
		g.buttonPressed = false
		g.progressDragging = false
	}
}

func (g *Game) seek(mouseX int) {
	x, _, w, _ := g.progressRect()
	if err := g.player.Seek(float64(mouseX-x) / float64(w)); err != nil {
		log.Printf("game: seek: %v", err)
		g.lastErr = err
	}
}

// report keeps a failed frame's error for the status line; the driver has
// already logged it.
func (g *Game) report(err error) {
	if err != nil {
		g.lastErr = err
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.canvas.dst = screen
	g.report(g.driver.Draw(&g.canvas))
	g.drawButton(screen)
	g.drawProgressBar(screen)
	g.drawStatus(screen)
}

// Layout follows the window so the canvas can be resized between frames.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.width, g.height = max(1, outsideWidth), max(1, outsideHeight)
	return g.width, g.height
}
