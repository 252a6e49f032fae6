package sim

import (
	"math"

	"github.com/iburimskiy/falling-circles/internal/spectrum"
)

// Source supplies randomness to the spawner and physics. *rand.Rand satisfies it.
type Source interface {
	Float64() float64
	Intn(n int) int
}

const (
	baseRadius    = 8.0
	bassRadius    = 60.0
	baseSpeed     = 2.0
	avgSpeed      = 8.0
	baseLightness = 40.0
	avgLightness  = 60.0
	pulsePerMax   = 2.5
	initialAlpha  = 0.8

	ambientBase  = 0.18
	ambientByMax = 0.7

	burstMin    = 3
	burstPerMax = 5
	burstMax    = burstMin + burstPerMax
)

// Spawner creates particles from the current stats.
type Spawner struct {
	rng Source
}

// NewSpawner creates a spawner drawing from rng.
func NewSpawner(rng Source) *Spawner {
	return &Spawner{rng: rng}
}

// AmbientProbability is the chance of one ambient spawn in a frame.
func AmbientProbability(stats spectrum.Stats) float64 {
	return ambientBase + ambientByMax*stats.Max
}

// BurstCount is the number of particles a click spawns.
func BurstCount(stats spectrum.Stats) int {
	n := burstMin + int(math.Floor(burstPerMax*stats.Max))
	return max(burstMin, min(burstMax, n))
}

// Ambient rolls for a spawn just above the top edge at a random x within
// width. Nothing spawns while audio is paused, or when the particle would not
// fit across the canvas.
func (s *Spawner) Ambient(store *Store, stats spectrum.Stats, playing bool, width float64) bool {
	if !playing {
		return false
	}
	if s.rng.Float64() >= AmbientProbability(stats) {
		return false
	}

	radius := s.radius(stats)
	span := width - 2*radius
	if span <= 0 {
		return false
	}
	x := s.rng.Float64()*span + radius
	store.Add(s.particle(stats, x, -radius, radius))
	return true
}

// At spawns a burst at exactly (x, y) and returns how many particles it added.
func (s *Spawner) At(store *Store, stats spectrum.Stats, x, y float64) int {
	n := BurstCount(stats)
	for i := 0; i < n; i++ {
		store.Add(s.particle(stats, x, y, s.radius(stats)))
	}
	return n
}

func (s *Spawner) radius(stats spectrum.Stats) float64 {
	return baseRadius + bassRadius*stats.Bass*s.rng.Float64()
}

func (s *Spawner) particle(stats spectrum.Stats, x, y, radius float64) Particle {
	speed := baseSpeed + avgSpeed*stats.Avg*s.rng.Float64()
	hue := float64(s.rng.Intn(360))
	drift := (s.rng.Float64() - 0.5) * 2 * (0.5 + stats.Treble)
	return Particle{
		X:         x,
		Y:         y,
		Radius:    radius,
		VY:        speed,
		DriftX:    drift,
		Hue:       hue,
		Lightness: math.Min(100, baseLightness+avgLightness*stats.Avg),
		Pulse:     1 + stats.Max*pulsePerMax,
		Alpha:     initialAlpha,
	}
}
