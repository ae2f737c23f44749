package fourier_test

import (
	"fmt"

	"github.com/cwbudde/algo-sigproc/dsp/fourier"
)

func ExampleDFT() {
	spectrum := fourier.DFT([]float64{1, 1, 1, 1})
	m := fourier.Magnitude(spectrum)
	fmt.Printf("%.2f %.2f %.2f %.2f\n", m[0], m[1], m[2], m[3])

	// Output:
	// 4.00 0.00 0.00 0.00
}

func ExampleIDFT() {
	x := []float64{0.5, -1, 2, 0.25}
	y, err := fourier.IDFT(fourier.DFT(x))
	if err != nil {
		panic(err)
	}
	fmt.Printf("%.3f %.3f %.3f %.3f\n", y[0], y[1], y[2], y[3])

	// Output:
	// 0.500 -1.000 2.000 0.250
}
