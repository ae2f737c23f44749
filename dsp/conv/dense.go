package conv

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Convolve2DDense is Convolve2D over gonum matrices. The result is a new
// dense matrix with the image's dimensions.
func Convolve2DDense(image, kernel mat.Matrix) (*mat.Dense, error) {
	h, w, err := dims(image, ErrEmptyImage)
	if err != nil {
		return nil, err
	}
	kh, kw, err := dims(kernel, ErrEmptyKernel)
	if err != nil {
		return nil, err
	}

	out := mat.NewDense(h, w, nil)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			out.Set(y, x, sum2D(image.At, kernel.At, h, w, kh, kw, y, x))
		}
	}
	return out, nil
}

// ToDense copies a rectangular [][]float64 into a new dense matrix.
func ToDense(m [][]float64) (*mat.Dense, error) {
	rows, cols, err := ValidateMatrix(m)
	if err != nil {
		return nil, err
	}
	out := mat.NewDense(rows, cols, nil)
	for r, row := range m {
		out.SetRow(r, row)
	}
	return out, nil
}

// FromDense copies a gonum matrix into a new [][]float64.
func FromDense(m mat.Matrix) ([][]float64, error) {
	rows, cols, err := dims(m, ErrEmptyImage)
	if err != nil {
		return nil, err
	}
	out := make([][]float64, rows)
	for r := range out {
		out[r] = make([]float64, cols)
		for c := range out[r] {
			out[r][c] = m.At(r, c)
		}
	}
	return out, nil
}

func dims(m mat.Matrix, errEmpty error) (rows, cols int, err error) {
	if m == nil {
		return 0, 0, errEmpty
	}
	rows, cols = m.Dims()
	if rows == 0 || cols == 0 {
		return 0, 0, fmt.Errorf("%w: %dx%d", errEmpty, rows, cols)
	}
	return rows, cols, nil
}
