package conv

import (
	"fmt"

	"github.com/cwbudde/algo-sigproc/dsp/core"
)

// Errors returned by convolution functions.
var (
	ErrEmptyKernel    = fmt.Errorf("%w: conv: empty kernel", core.ErrInvalidArgument)
	ErrEmptyImage     = fmt.Errorf("%w: conv: empty image", core.ErrInvalidArgument)
	ErrRaggedMatrix   = fmt.Errorf("%w: conv: rows differ in length", core.ErrInvalidArgument)
	ErrLengthMismatch = fmt.Errorf("%w: conv: buffer length mismatch", core.ErrInvalidArgument)
)

// Convolve1D convolves signal with a kernel centered at len(kernel)/2 and
// returns a new slice of len(signal) samples. Samples outside the signal
// count as zero.
func Convolve1D(signal, kernel []float64) ([]float64, error) {
	if len(kernel) == 0 {
		return nil, ErrEmptyKernel
	}
	out := make([]float64, len(signal))
	convolve1D(out, signal, kernel)
	return out, nil
}

// Convolve1DTo is Convolve1D writing into dst, which must have
// len(signal) elements. dst may be signal itself for in-place filtering
// but must not partially overlap it.
func Convolve1DTo(dst, signal, kernel []float64) error {
	if len(kernel) == 0 {
		return ErrEmptyKernel
	}
	if len(dst) != len(signal) {
		return fmt.Errorf("%w: expected %d, got %d", ErrLengthMismatch, len(signal), len(dst))
	}
	if len(dst) > 0 && &dst[0] == &signal[0] {
		signal = append([]float64(nil), signal...)
	}
	convolve1D(dst, signal, kernel)
	return nil
}

func convolve1D(dst, signal, kernel []float64) {
	n := len(signal)
	half := len(kernel) / 2
	for i := range dst {
		sum := 0.0
		for j, k := range kernel {
			idx := i + j - half
			if idx >= 0 && idx < n {
				sum += signal[idx] * k
			}
		}
		dst[i] = sum
	}
}
