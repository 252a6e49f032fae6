package sim

import (
	"fmt"
	"log"

	"github.com/iburimskiy/falling-circles/internal/spectrum"
)

// StatsProvider reports what is audible right now.
type StatsProvider interface {
	Stats() spectrum.Stats
	Playing() bool
}

// Driver runs the simulation one frame at a time. Stats are sampled once per
// frame by Poll and shared by clicks and the tick of that frame. A provider
// that is missing or panics reads as neutral and not playing; a frame that
// panics is logged, dropped and never retried.
type Driver struct {
	sim      *Simulation
	provider StatsProvider

	stats   spectrum.Stats
	playing bool
	frame   Frame
}

// NewDriver drives s from provider, which may be nil.
func NewDriver(s *Simulation, provider StatsProvider) *Driver {
	return &Driver{sim: s, provider: provider, stats: spectrum.Neutral()}
}

// Simulation exposes the driven simulation.
func (d *Driver) Simulation() *Simulation { return d.sim }

// Poll samples the provider for the coming frame.
func (d *Driver) Poll() (spectrum.Stats, bool) {
	d.stats = d.pollStats()
	d.playing = d.pollPlaying()
	return d.stats, d.playing
}

func (d *Driver) pollStats() (s spectrum.Stats) {
	if d.provider == nil {
		return spectrum.Neutral()
	}
	defer func() {
		if r := recover(); r != nil {
			log.Printf("sim: stats: %v", r)
			s = spectrum.Neutral()
		}
	}()
	return d.provider.Stats()
}

func (d *Driver) pollPlaying() (ok bool) {
	if d.provider == nil {
		return false
	}
	defer func() {
		if r := recover(); r != nil {
			log.Printf("sim: playing: %v", r)
			ok = false
		}
	}()
	return d.provider.Playing()
}

// Click spawns a burst at (x, y) from the polled stats.
func (d *Driver) Click(x, y float64) (err error) {
	defer recoverFrame("click", &err)
	d.sim.Click(d.stats, x, y)
	return nil
}

// Tick advances one frame on a width x height canvas. On failure the
// previous frame stays current.
func (d *Driver) Tick(width, height float64) (err error) {
	defer recoverFrame("tick", &err)
	d.frame = d.sim.Tick(d.stats, d.playing, width, height)
	return nil
}

// Frame is the most recent successful frame.
func (d *Driver) Frame() Frame { return d.frame }

// Draw replays the current frame onto c.
func (d *Driver) Draw(c Canvas) (err error) {
	defer recoverFrame("draw", &err)
	d.frame.Draw(c)
	return nil
}

func recoverFrame(stage string, err *error) {
	if r := recover(); r != nil {
		log.Printf("sim: %s: %v", stage, r)
		*err = fmt.Errorf("%s: %v", stage, r)
	}
}
