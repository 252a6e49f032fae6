package spectrum

import (
	"math"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
	"github.com/mjibson/go-dsp/window"
)

const (
	// FFTSize is the number of samples analysed per frame.
	FFTSize = 256

	smoothing = 0.8
	minDB     = -100.0
	maxDB     = -30.0
)

// Analyser turns the most recent mono samples into byte frequency bins,
// smoothing magnitudes over time the same way a browser analyser node does.
type Analyser struct {
	prev []float64
	buf  []float64
	bins []uint8
}

// NewAnalyser creates an analyser producing FFTSize/2 bins.
func NewAnalyser() *Analyser {
	return &Analyser{
		prev: make([]float64, FFTSize/2),
		buf:  make([]float64, FFTSize),
		bins: make([]uint8, FFTSize/2),
	}
}

// Frequency analyses the last FFTSize samples (zero padded at the front when
// fewer are given) and returns the bins. The returned slice is reused by the
// next call.
func (a *Analyser) Frequency(samples []float64) []uint8 {
	clear(a.buf)
	if len(samples) > FFTSize {
		samples = samples[len(samples)-FFTSize:]
	}
	copy(a.buf[FFTSize-len(samples):], samples)

	window.Apply(a.buf, window.Hann)
	out := fft.FFTReal(a.buf)

	for k := range a.prev {
		mag := cmplx.Abs(out[k]) / FFTSize
		a.prev[k] = smoothing*a.prev[k] + (1-smoothing)*mag
		a.bins[k] = toByte(a.prev[k])
	}
	return a.bins
}

// Stats analyses samples and reduces the bins to Stats.
func (a *Analyser) Stats(samples []float64) Stats {
	return FromBins(a.Frequency(samples))
}

// Reset forgets the smoothing history.
func (a *Analyser) Reset() {
	clear(a.prev)
}

func toByte(mag float64) uint8 {
	if mag <= 0 {
		return 0
	}
	db := 20 * math.Log10(mag)
	v := 255 * (db - minDB) / (maxDB - minDB)
	switch {
	case v < 0:
		return 0
	case v > 255:
		return 255
	}
	return uint8(v)
}
