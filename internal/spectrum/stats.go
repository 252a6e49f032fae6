// Package spectrum reduces audio to the per-frame loudness figures that drive
// the visualizer: a byte-bin analyser and the band statistics taken from it.
package spectrum

// Stats is one frame's worth of loudness figures, every field normalised to [0,1].
type Stats struct {
	Avg     float64
	Max     float64
	Bass    float64
	LowMid  float64
	HighMid float64
	Treble  float64
}

// Neutral is what the visualizer sees while nothing is playing.
func Neutral() Stats {
	return Stats{Avg: 0.5, Max: 0.5, Bass: 0.5, LowMid: 0.5, HighMid: 0.5, Treble: 0.5}
}

// FromBins reduces byte frequency bins (0-255) to Stats.
//
// Bands split the bins into the bottom eighth (bass), the next eighth (low mid),
// the next quarter (high mid) and everything above three quarters (treble).
// Bins between the half and three-quarter marks belong to no band.
func FromBins(bins []uint8) Stats {
	n := len(bins)
	if n == 0 {
		return Neutral()
	}

	var avg, peak, bass, lowMid, highMid, treble float64
	fn := float64(n)
	for i, b := range bins {
		v := float64(b)
		avg += v
		if v > peak {
			peak = v
		}
		fi := float64(i)
		switch {
		case fi < fn/8:
			bass += v
		case fi < fn/4:
			lowMid += v
		case fi < fn/2:
			highMid += v
		case fi > 3*fn/4:
			treble += v
		}
	}

	return Stats{
		Avg:     avg / fn / 255,
		Max:     peak / 255,
		Bass:    bass / (fn / 8) / 255,
		LowMid:  lowMid / (fn / 8) / 255,
		HighMid: highMid / (fn / 4) / 255,
		Treble:  treble / (fn / 4) / 255,
	}
}

// Bands returns the four band levels in display order.
func (s Stats) Bands() [4]float64 {
	return [4]float64{s.Bass, s.LowMid, s.HighMid, s.Treble}
}
