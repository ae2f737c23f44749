package fourier

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-sigproc/dsp/core"
)

// ErrEmptySpectrum is returned by IDFT for a zero-length spectrum.
var ErrEmptySpectrum = fmt.Errorf("%w: fourier: empty spectrum", core.ErrInvalidArgument)

// DFT returns the discrete Fourier transform of x. The result has len(x)
// bins; an empty input yields an empty, non-nil spectrum.
func DFT(x []float64) []complex128 {
	n := len(x)
	out := make([]complex128, n)
	for k := range n {
		var re, im float64
		for i, v := range x {
			angle := -2 * math.Pi * float64(k) * float64(i) / float64(n)
			sin, cos := math.Sincos(angle)
			re += v * cos
			im += v * sin
		}
		out[k] = complex(re, im)
	}
	return out
}

// IDFT returns the real part of the inverse discrete Fourier transform of
// spectrum, scaled by 1/N.
func IDFT(spectrum []complex128) ([]float64, error) {
	n := len(spectrum)
	if n == 0 {
		return nil, ErrEmptySpectrum
	}

	out := make([]float64, n)
	scale := float64(n)
	for i := range out {
		var re float64
		for k, c := range spectrum {
			angle := 2 * math.Pi * float64(k) * float64(i) / float64(n)
			sin, cos := math.Sincos(angle)
			re += real(c)*cos - imag(c)*sin
		}
		out[i] = re / scale
	}
	return out, nil
}
