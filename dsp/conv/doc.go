// Package conv provides same-length linear convolution for 1D signals and
// 2D images.
//
// Every output sample is a centered weighted sum over the kernel taps. Taps
// that fall outside the input contribute nothing, which is the same as
// zero-padding the input. Edge outputs are therefore attenuated rather than
// renormalized, and the output always has the shape of the input.
//
// # 1D
//
// With half = len(kernel)/2:
//
//	y[i] = Σ_j x[i+j−half]·k[j]
//
// For example, with the first-difference kernel [1, 0, −1]:
//
//	y, err := conv.Convolve1D([]float64{1, 2, 3, 4, 5}, []float64{1, 0, -1})
//	// y == [-2 -2 -2 -2 4]
//
// # 2D
//
// [Convolve2D] applies the same rule per axis, centering the kernel at
// (rows/2, cols/2). Images and kernels must be non-empty and rectangular.
// [Convolve2DDense] accepts gonum matrices.
//
// # Errors
//
// All rejected inputs return errors that wrap core.ErrInvalidArgument.
package conv
