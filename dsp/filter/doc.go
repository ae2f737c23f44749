// Package filter provides ready-made smoothing and edge kernels and the
// low-pass presets built on them.
//
// All filters run through conv.Convolve1D or conv.Convolve2D and share
// their zero-padded boundary policy: a 3-point moving average over a constant
// signal c returns c in the interior and 2c/3 at both ends.
package filter
