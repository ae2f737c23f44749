package filter

import "github.com/cwbudde/algo-sigproc/dsp/conv"

var (
	lowPassKernel   = mustMovingAverage(3)
	lowPass2DKernel = mustBox(3, 3)
)

// LowPass smooths x with a centered 3-point moving average.
func LowPass(x []float64) []float64 {
	out, err := conv.Convolve1D(x, lowPassKernel)
	if err != nil {
		// The kernel is a non-empty constant.
		panic(err)
	}
	return out
}

// LowPass2D smooths image with a 3x3 box kernel of 1/9.
func LowPass2D(image [][]float64) ([][]float64, error) {
	return conv.Convolve2D(image, lowPass2DKernel)
}

// EdgesX convolves image with SobelX.
func EdgesX(image [][]float64) ([][]float64, error) {
	return conv.Convolve2D(image, SobelX())
}

// EdgesY convolves image with SobelY.
func EdgesY(image [][]float64) ([][]float64, error) {
	return conv.Convolve2D(image, SobelY())
}

func mustMovingAverage(n int) []float64 {
	k, err := MovingAverage(n)
	if err != nil {
		panic(err)
	}
	return k
}

func mustBox(rows, cols int) [][]float64 {
	k, err := Box(rows, cols)
	if err != nil {
		panic(err)
	}
	return k
}
