package main

import (
	"errors"
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/falling-circles/internal/config"
	"github.com/iburimskiy/falling-circles/internal/game"
	"github.com/iburimskiy/falling-circles/internal/output"
	"github.com/iburimskiy/falling-circles/internal/player"
)

func main() {
	log.SetFlags(log.Ltime)
	cfg := config.Load()

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	p := player.New(output.Speaker{})
	defer p.Close()
	if cfg.File != "" {
		if err := p.Load(cfg.File); err != nil {
			log.Printf("load %s: %v", cfg.File, err)
		}
	}

	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowTitle("Falling Circles - click to spawn, Space: Play/Pause, Esc/Q: Quit")
	ebiten.SetTPS(config.TicksPerSecond)

	g := game.New(cfg, p, rand.New(rand.NewSource(seed)))
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
