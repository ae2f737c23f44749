package filter

import (
	"fmt"

	"github.com/cwbudde/algo-sigproc/dsp/core"
)

// MovingAverage returns an n-tap kernel with every coefficient 1/n.
func MovingAverage(n int) ([]float64, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: moving average length must be > 0: %d", core.ErrInvalidArgument, n)
	}
	k := make([]float64, n)
	c := 1 / float64(n)
	for i := range k {
		k[i] = c
	}
	return k, nil
}

// Box returns a rows x cols kernel with every coefficient 1/(rows*cols).
func Box(rows, cols int) ([][]float64, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: box kernel size must be > 0: %dx%d", core.ErrInvalidArgument, rows, cols)
	}
	c := 1 / float64(rows*cols)
	k := make([][]float64, rows)
	for r := range k {
		k[r] = make([]float64, cols)
		for i := range k[r] {
			k[r][i] = c
		}
	}
	return k, nil
}

// SobelX returns the 3x3 Sobel kernel that responds to horizontal change.
func SobelX() [][]float64 {
	return [][]float64{
		{-1, 0, 1},
		{-2, 0, 2},
		{-1, 0, 1},
	}
}

// SobelY returns the 3x3 Sobel kernel that responds to vertical change.
func SobelY() [][]float64 {
	return [][]float64{
		{-1, -2, -1},
		{0, 0, 0},
		{1, 2, 1},
	}
}
