package sim

import (
	"math"

	"github.com/iburimskiy/falling-circles/internal/spectrum"
)

const (
	gravity       = 0.2
	pulseGravity  = 0.1
	shrink        = 0.98
	loudPeak      = 0.7
	loudGrowth    = 8.0
	restitution   = -0.6
	bassDampBase  = 0.8
	bassDampScale = 0.4
	restVelocity  = 1.0
	fadeAfter     = 1
	fade          = 0.97

	settledAfter    = 2
	settledVelocity = 0.5
	faded           = 0.1
)

// Step advances every particle by one frame against a floor at height.
func Step(store *Store, stats spectrum.Stats, height float64, rng Source) {
	store.Update(func(p *Particle) {
		p.VY += gravity + p.Pulse*pulseGravity
		p.Y += p.VY
		p.X += p.DriftX

		p.Radius *= shrink
		if stats.Max > loudPeak {
			p.Radius += loudGrowth * rng.Float64()
		}

		if p.Y+p.Radius > height {
			p.Y = height - p.Radius
			p.VY *= restitution * (bassDampBase + bassDampScale*stats.Bass)
			p.Bounces++
			if math.Abs(p.VY) < restVelocity {
				p.VY = 0
			}
		}

		if p.Bounces > fadeAfter {
			p.Alpha *= fade
		}
	})
}

// Dead reports whether p has settled or faded after enough bounces.
func Dead(p *Particle) bool {
	return p.Bounces > settledAfter && (math.Abs(p.VY) < settledVelocity || p.Alpha < faded)
}

// Prune removes dead particles and returns how many went.
func Prune(store *Store) int {
	return store.RemoveIf(Dead)
}
