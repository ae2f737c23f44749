package conv

import "fmt"

// Convolve2D convolves image with a kernel centered at
// (kernelRows/2, kernelCols/2) and returns a new matrix with the image's
// shape. Cells outside the image count as zero.
//
// Both image and kernel must be non-empty and rectangular.
func Convolve2D(image, kernel [][]float64) ([][]float64, error) {
	h, w, err := shape(image, ErrEmptyImage, "image")
	if err != nil {
		return nil, err
	}
	kh, kw, err := shape(kernel, ErrEmptyKernel, "kernel")
	if err != nil {
		return nil, err
	}

	at := func(r, c int) float64 { return image[r][c] }
	tap := func(j, i int) float64 { return kernel[j][i] }

	out := make([][]float64, h)
	for y := range out {
		out[y] = make([]float64, w)
		for x := range out[y] {
			out[y][x] = sum2D(at, tap, h, w, kh, kw, y, x)
		}
	}
	return out, nil
}

// ValidateMatrix reports whether m is a non-empty rectangular matrix and
// returns its dimensions.
func ValidateMatrix(m [][]float64) (rows, cols int, err error) {
	return shape(m, ErrEmptyImage, "matrix")
}

func shape(m [][]float64, errEmpty error, name string) (rows, cols int, err error) {
	if len(m) == 0 || len(m[0]) == 0 {
		return 0, 0, errEmpty
	}
	cols = len(m[0])
	for r, row := range m {
		if len(row) != cols {
			return 0, 0, fmt.Errorf("%w: %s row %d has %d columns, want %d", ErrRaggedMatrix, name, r, len(row), cols)
		}
	}
	return len(m), cols, nil
}

// sum2D evaluates one output cell. It is shared by the slice and gonum
// front ends so both sum the taps in the same order.
func sum2D(at, tap func(r, c int) float64, h, w, kh, kw, y, x int) float64 {
	kh2 := kh / 2
	kw2 := kw / 2
	sum := 0.0
	for j := 0; j < kh; j++ {
		yy := y + j - kh2
		if yy < 0 || yy >= h {
			continue
		}
		for i := 0; i < kw; i++ {
			xx := x + i - kw2
			if xx >= 0 && xx < w {
				sum += at(yy, xx) * tap(j, i)
			}
		}
	}
	return sum
}
