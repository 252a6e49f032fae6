// Package sim is the falling circles simulation: a store of particles fed by
// spectrum stats, advanced and pruned once per frame and projected into a
// list of circles to draw.
package sim

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Saturation shared by every particle colour.
const saturation = 0.8

// Particle is a single falling circle.
type Particle struct {
	X, Y   float64
	Radius float64
	VY     float64
	DriftX float64

	Hue       float64 // degrees, [0,360)
	Lightness float64 // percent, [0,100]

	Pulse   float64
	Alpha   float64
	Bounces int
}

// Color is the particle's fill colour.
func (p *Particle) Color() colorful.Color {
	l := math.Max(0, math.Min(100, p.Lightness))
	return colorful.Hsl(p.Hue, saturation, l/100)
}

// Store owns every live particle. Iteration order is insertion order.
type Store struct {
	particles []Particle
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{}
}

// Add appends p.
func (s *Store) Add(p Particle) {
	s.particles = append(s.particles, p)
}

// Len is the number of live particles.
func (s *Store) Len() int { return len(s.particles) }

// All exposes the live particles. The slice is only valid until the next
// mutating call.
func (s *Store) All() []Particle { return s.particles }

// Update calls fn on every particle in place.
func (s *Store) Update(fn func(p *Particle)) {
	for i := range s.particles {
		fn(&s.particles[i])
	}
}

// RemoveIf drops every particle for which dead returns true, keeping the
// order of the rest, and reports how many were removed.
func (s *Store) RemoveIf(dead func(p *Particle) bool) int {
	kept := s.particles[:0]
	for i := range s.particles {
		if !dead(&s.particles[i]) {
			kept = append(kept, s.particles[i])
		}
	}
	removed := len(s.particles) - len(kept)
	clear(s.particles[len(kept):])
	s.particles = kept
	return removed
}
