package spectrum

import (
	"math"
	"testing"
)

// quiet keeps a pure tone below the analyser's 255 ceiling so neighbouring bins
// stay distinguishable.
const quiet = 0.001

func TestAnalyserSilenceIsZero(t *testing.T) {
	a := NewAnalyser()
	bins := a.Frequency(make([]float64, FFTSize))
	if len(bins) != FFTSize/2 {
		t.Fatalf("expected %d bins, got %d", FFTSize/2, len(bins))
	}
	for i, b := range bins {
		if b != 0 {
			t.Fatalf("expected silent bin %d to be 0, got %d", i, b)
		}
	}
	s := a.Stats(nil)
	if s.Max != 0 || s.Avg != 0 {
		t.Fatalf("expected zero stats for silence, got %+v", s)
	}
}

func TestAnalyserSinePeaksInItsBin(t *testing.T) {
	a := NewAnalyser()
	const bin = 8
	samples := make([]float64, FFTSize)
	for i := range samples {
		samples[i] = quiet * math.Sin(2*math.Pi*bin*float64(i)/FFTSize)
	}

	var bins []uint8
	for i := 0; i < 20; i++ {
		bins = a.Frequency(samples)
	}

	peak := 0
	for i, b := range bins {
		if b > bins[peak] {
			peak = i
		}
	}
	if peak != bin {
		t.Fatalf("expected peak at bin %d, got %d (%v)", bin, peak, bins)
	}

	s := FromBins(bins)
	if s.Bass <= s.Treble {
		t.Errorf("expected low sine to favour bass: bass=%f treble=%f", s.Bass, s.Treble)
	}
}

func TestAnalyserSmoothsDecay(t *testing.T) {
	a := NewAnalyser()
	loud := make([]float64, FFTSize)
	for i := range loud {
		loud[i] = quiet * math.Sin(2*math.Pi*4*float64(i)/FFTSize)
	}
	for i := 0; i < 20; i++ {
		a.Frequency(loud)
	}
	before := a.Frequency(loud)[4]
	after := a.Frequency(make([]float64, FFTSize))[4]
	if after == 0 || after >= before {
		t.Fatalf("expected smoothed decay after silence: before=%d after=%d", before, after)
	}

	a.Reset()
	if got := a.Frequency(make([]float64, FFTSize))[4]; got != 0 {
		t.Fatalf("expected reset analyser to read 0, got %d", got)
	}
}
