package fourier

import (
	"fmt"
	"math/cmplx"

	"github.com/cwbudde/algo-sigproc/dsp/core"
	"github.com/cwbudde/algo-vecmath"
)

func split(in []complex128) (re, im []float64) {
	re = make([]float64, len(in))
	im = make([]float64, len(in))
	for i, c := range in {
		re[i] = real(c)
		im[i] = imag(c)
	}
	return re, im
}

// Magnitude returns |X[k]| for each bin.
func Magnitude(spectrum []complex128) []float64 {
	out := make([]float64, len(spectrum))
	if len(spectrum) == 0 {
		return out
	}
	re, im := split(spectrum)
	vecmath.Magnitude(out, re, im)
	return out
}

// Power returns |X[k]|² for each bin.
func Power(spectrum []complex128) []float64 {
	out := make([]float64, len(spectrum))
	if len(spectrum) == 0 {
		return out
	}
	re, im := split(spectrum)
	vecmath.Power(out, re, im)
	return out
}

// Phase returns arg(X[k]) in radians for each bin.
func Phase(spectrum []complex128) []float64 {
	out := make([]float64, len(spectrum))
	for i, c := range spectrum {
		out[i] = cmplx.Phase(c)
	}
	return out
}

// MagnitudeSpectrum returns Magnitude(DFT(x)).
func MagnitudeSpectrum(x []float64) []float64 {
	return Magnitude(DFT(x))
}

// BinFrequencies returns the frequency in Hz of each of n bins,
// k*sampleRate/n. Bins above n/2 are the negative-frequency aliases and are
// reported unfolded.
func BinFrequencies(n int, sampleRate float64) ([]float64, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: bin count must be > 0: %d", core.ErrInvalidArgument, n)
	}
	if !(sampleRate > 0) || !core.IsFinite(sampleRate) {
		return nil, fmt.Errorf("%w: sample rate must be > 0: %f", core.ErrInvalidArgument, sampleRate)
	}
	out := make([]float64, n)
	step := sampleRate / float64(n)
	for k := range out {
		out[k] = float64(k) * step
	}
	return out, nil
}
