package sim

import (
	"github.com/iburimskiy/falling-circles/internal/spectrum"
)

// Frame is everything one tick wants drawn, back to front.
type Frame struct {
	Circles []Circle
	// Particles is how many of Circles are particles; the rest are band dots.
	Particles int
}

// Draw clears c and fills every circle in order.
func (f Frame) Draw(c Canvas) {
	c.Clear()
	for _, circle := range f.Circles {
		c.FillCircle(circle)
	}
}

// Simulation owns the particle store and the randomness that drives it.
type Simulation struct {
	store   *Store
	spawner *Spawner
	rng     Source
}

// New creates an empty simulation drawing from rng.
func New(rng Source) *Simulation {
	return &Simulation{
		store:   NewStore(),
		spawner: NewSpawner(rng),
		rng:     rng,
	}
}

// Store exposes the particle store.
func (s *Simulation) Store() *Store { return s.store }

// Tick runs one frame on a width x height canvas: ambient spawn, physics,
// prune, then projection of particles and band dots.
func (s *Simulation) Tick(stats spectrum.Stats, playing bool, width, height float64) Frame {
	s.spawner.Ambient(s.store, stats, playing, width)
	Step(s.store, stats, height, s.rng)
	Prune(s.store)

	circles := make([]Circle, 0, s.store.Len()+4)
	circles = Project(circles, s.store)
	n := len(circles)
	circles = Dots(circles, stats, width, height)
	return Frame{Circles: circles, Particles: n}
}

// Click spawns a burst at (x, y) and returns how many particles it added.
func (s *Simulation) Click(stats spectrum.Stats, x, y float64) int {
	return s.spawner.At(s.store, stats, x, y)
}
