package testutil

import "math/rand"

// DeterministicNoise generates white noise with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// Impulse generates a unit impulse at the given position.
func Impulse(length, pos int) []float64 {
	out := make([]float64, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}
	return out
}

// DC generates a constant-valued signal.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}

// Ones returns a slice of length n filled with 1.0.
func Ones(n int) []float64 {
	return DC(1.0, n)
}

// ConstMatrix returns a rows x cols matrix filled with value.
func ConstMatrix(value float64, rows, cols int) [][]float64 {
	out := make([][]float64, rows)
	for r := range out {
		out[r] = DC(value, cols)
	}
	return out
}

// Gradient returns a rows x cols image whose rows ramp linearly from 0 at
// the top to 1 at the bottom. Each row is constant.
func Gradient(rows, cols int) [][]float64 {
	out := make([][]float64, rows)
	for r := range out {
		v := 0.0
		if rows > 1 {
			v = float64(r) / float64(rows-1)
		}
		out[r] = DC(v, cols)
	}
	return out
}
