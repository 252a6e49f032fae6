package sim

import (
	"math/rand"
	"reflect"
	"testing"

	"github.com/iburimskiy/falling-circles/internal/spectrum"
)

// recorder is a Canvas that keeps every command it receives.
type recorder struct {
	clears  int
	circles []Circle
}

func (r *recorder) Clear() {
	r.clears++
	r.circles = r.circles[:0]
}

func (r *recorder) FillCircle(c Circle) {
	r.circles = append(r.circles, c)
}

func TestDotsLayout(t *testing.T) {
	stats := spectrum.Stats{Bass: 0, LowMid: 0.5, HighMid: 1, Treble: 0.25}
	dots := Dots(nil, stats, 800, 600)
	if len(dots) != 4 {
		t.Fatalf("expected 4 dots, got %d", len(dots))
	}

	wantX := []float64{295, 365, 435, 505}
	wantR := []float64{28, 47, 66, 37.5}
	for i, d := range dots {
		if d.X != wantX[i] || d.Y != 300 {
			t.Errorf("dot %d: expected (%f,300), got (%f,%f)", i, wantX[i], d.X, d.Y)
		}
		if d.Radius != wantR[i] {
			t.Errorf("dot %d: expected radius %f, got %f", i, wantR[i], d.Radius)
		}
		if d.Alpha != 0.85 {
			t.Errorf("dot %d: expected alpha 0.85, got %f", i, d.Alpha)
		}
		if d.Color != dotColors[i] {
			t.Errorf("dot %d: unexpected colour %v", i, d.Color)
		}
	}
	if dots[0].Glow != 0 || dots[2].Glow != 24 {
		t.Errorf("expected glow to follow band level, got %f and %f", dots[0].Glow, dots[2].Glow)
	}
	if r, g, b := dots[0].Color.RGB255(); r != 0xff || g != 0x52 || b != 0x52 {
		t.Errorf("expected bass dot #ff5252, got %02x%02x%02x", r, g, b)
	}
}

func TestProjectMirrorsParticles(t *testing.T) {
	store := NewStore()
	store.Add(Particle{X: 1, Y: 2, Radius: 3, Hue: 200, Lightness: 50, Pulse: 2, Alpha: 0.5})
	store.Add(Particle{X: 4, Y: 5, Radius: 6, Hue: 10, Lightness: 90, Pulse: 1, Alpha: 0.8})

	circles := Project(nil, store)
	if len(circles) != 2 {
		t.Fatalf("expected 2 circles, got %d", len(circles))
	}
	c := circles[0]
	if c.X != 1 || c.Y != 2 || c.Radius != 3 || c.Alpha != 0.5 || c.Glow != 32 {
		t.Errorf("unexpected first circle %+v", c)
	}
	if c.Color != store.All()[0].Color() {
		t.Errorf("expected particle colour, got %v", c.Color)
	}
	if circles[1].X != 4 || circles[1].Glow != 16 {
		t.Errorf("unexpected second circle %+v", circles[1])
	}
}

func TestRenderingIsPure(t *testing.T) {
	s := New(rand.New(rand.NewSource(3)))
	stats := spectrum.Stats{Avg: 0.4, Max: 0.6, Bass: 0.7, LowMid: 0.2, HighMid: 0.3, Treble: 0.9}
	s.Click(stats, 200, 100)
	s.Click(stats, 400, 50)

	first := Dots(Project(nil, s.Store()), stats, 800, 600)
	second := Dots(Project(nil, s.Store()), stats, 800, 600)
	if !reflect.DeepEqual(first, second) {
		t.Fatal("expected identical draw lists for an unchanged store")
	}

	var a, b recorder
	f := Frame{Circles: first}
	f.Draw(&a)
	f.Draw(&b)
	if !reflect.DeepEqual(a.circles, b.circles) || a.clears != 1 {
		t.Fatal("expected replaying a frame to issue the same commands")
	}
}

func TestTickOrder(t *testing.T) {
	s := New(rand.New(rand.NewSource(11)))
	stats := spectrum.Stats{Max: 0.3, Bass: 0.5, Treble: 0.1}
	s.Click(stats, 300, 20)

	f := s.Tick(stats, false, 800, 600)
	if f.Particles != s.Store().Len() || f.Particles != 4 {
		t.Fatalf("expected 4 particles in the frame, got %d (store %d)", f.Particles, s.Store().Len())
	}
	if len(f.Circles) != f.Particles+4 {
		t.Fatalf("expected particles plus 4 dots, got %d circles", len(f.Circles))
	}
	for i, c := range f.Circles[:f.Particles] {
		p := s.Store().All()[i]
		if c.X != p.X || c.Y != p.Y {
			t.Fatalf("circle %d does not match particle", i)
		}
		if p.Y <= 20 {
			t.Errorf("expected particle %d to have fallen, y=%f", i, p.Y)
		}
	}

	var rec recorder
	f.Draw(&rec)
	if rec.clears != 1 || len(rec.circles) != len(f.Circles) {
		t.Fatalf("expected one clear and %d fills, got %d and %d", len(f.Circles), rec.clears, len(rec.circles))
	}
}

func TestTickSpawnsOnlyWhilePlaying(t *testing.T) {
	s := New(rand.New(rand.NewSource(5)))
	for i := 0; i < 200; i++ {
		s.Tick(spectrum.Neutral(), false, 800, 600)
	}
	if s.Store().Len() != 0 {
		t.Fatalf("expected no ambient spawns while paused, got %d", s.Store().Len())
	}

	stats := spectrum.Stats{Avg: 0.5, Max: 1, Bass: 0.5, Treble: 0.5}
	for i := 0; i < 50; i++ {
		s.Tick(stats, true, 800, 600)
	}
	if s.Store().Len() == 0 {
		t.Fatal("expected ambient spawns while playing")
	}
}

func TestTickSurvivesResize(t *testing.T) {
	s := New(rand.New(rand.NewSource(9)))
	s.Click(spectrum.Stats{}, 700, 10)
	before := append([]Particle(nil), s.Store().All()...)

	f := s.Tick(spectrum.Stats{}, false, 100, 100)
	for i, p := range s.Store().All() {
		if p.X != before[i].X+before[i].DriftX {
			t.Fatalf("particle %d: x was renormalised on resize", i)
		}
	}
	if f.Circles[f.Particles].X != 50-1.5*70 {
		t.Fatalf("expected dots to follow the new size, got x=%f", f.Circles[f.Particles].X)
	}
}
