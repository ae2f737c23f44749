// Package fourier implements the direct discrete Fourier transform pair.
//
// [DFT] and [IDFT] evaluate the defining sums term by term in O(N²) time.
// There is no fast-transform path: results are reproducible to the rounding
// of the direct summation for every length, including non powers of two.
//
//	X[k] = Σ x[n]·exp(−2πi·k·n/N)
//	x[n] = (1/N)·Re Σ X[k]·exp(+2πi·k·n/N)
//
// [IDFT] assumes the spectrum came from a real signal and returns only the
// real part. An asymmetric spectrum silently loses its imaginary residue.
//
// The spectrum helpers ([Magnitude], [Power], [Phase], [BinFrequencies])
// turn bins into plain real slices for display or analysis.
package fourier
