package filter

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-sigproc/dsp/conv"
	"github.com/cwbudde/algo-sigproc/dsp/core"
	"github.com/cwbudde/algo-sigproc/internal/testutil"
)

func TestLowPassConstant(t *testing.T) {
	for _, c := range []float64{1, -2.5, 3} {
		out := LowPass(testutil.DC(c, 10))
		if len(out) != 10 {
			t.Fatalf("len = %d, want 10", len(out))
		}
		for i := 1; i < len(out)-1; i++ {
			if !core.NearlyEqual(out[i], c, 1e-12) {
				t.Fatalf("c=%v: out[%d] = %v, want %v", c, i, out[i], c)
			}
		}
		for _, i := range []int{0, len(out) - 1} {
			if !core.NearlyEqual(out[i], 2*c/3, 1e-12) {
				t.Fatalf("c=%v: edge out[%d] = %v, want %v", c, i, out[i], 2*c/3)
			}
		}
	}
}

func TestLowPassUsesExactThirds(t *testing.T) {
	want, err := conv.Convolve1D([]float64{1, 5, -2, 8}, []float64{1.0 / 3, 1.0 / 3, 1.0 / 3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, LowPass([]float64{1, 5, -2, 8}), want, 0)
}

func TestLowPassShortSignals(t *testing.T) {
	if out := LowPass(nil); len(out) != 0 {
		t.Fatalf("LowPass(nil) = %v, want empty", out)
	}
	testutil.RequireSliceNearlyEqual(t, LowPass([]float64{3}), []float64{1}, 1e-12)
}

func TestLowPassReducesNoise(t *testing.T) {
	noise := testutil.DeterministicNoise(9, 1, 2000)
	out := LowPass(noise)
	testutil.RequireFinite(t, out)

	energy := func(x []float64) float64 {
		s := 0.0
		for _, v := range x {
			s += v * v
		}
		return s
	}
	if energy(out) >= energy(noise)/2 {
		t.Fatalf("smoothing kept too much noise energy: %v of %v", energy(out), energy(noise))
	}
}

func TestLowPass2DOnes(t *testing.T) {
	const h, w = 4, 5
	out, err := LowPass2D(testutil.ConstMatrix(1, h, w))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for y := range out {
		for x := range out[y] {
			taps := 3
			if y == 0 || y == h-1 {
				taps = 2
			}
			cols := 3
			if x == 0 || x == w-1 {
				cols = 2
			}
			want := float64(taps*cols) / 9
			if !core.NearlyEqual(out[y][x], want, 1e-12) {
				t.Fatalf("out[%d][%d] = %v, want %v", y, x, out[y][x], want)
			}
		}
	}
}

func TestLowPass2DGradientInterior(t *testing.T) {
	// A vertical linear ramp is preserved away from the borders.
	img := testutil.Gradient(6, 6)
	out, err := LowPass2D(img)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for y := 1; y < 5; y++ {
		for x := 1; x < 5; x++ {
			if !core.NearlyEqual(out[y][x], img[y][x], 1e-12) {
				t.Fatalf("out[%d][%d] = %v, want %v", y, x, out[y][x], img[y][x])
			}
		}
	}
}

func TestLowPass2DErrors(t *testing.T) {
	if _, err := LowPass2D(nil); !errors.Is(err, conv.ErrEmptyImage) {
		t.Fatalf("expected ErrEmptyImage, got %v", err)
	}
	if _, err := LowPass2D([][]float64{{1, 2}, {3}}); !errors.Is(err, core.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestEdges(t *testing.T) {
	// Vertical ramp: no horizontal change in the interior, constant vertical change.
	img := testutil.Gradient(5, 5)

	gx, err := EdgesX(img)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	gy, err := EdgesY(img)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for y := 1; y < 4; y++ {
		for x := 1; x < 4; x++ {
			if !core.NearlyEqual(gx[y][x], 0, 1e-12) {
				t.Fatalf("gx[%d][%d] = %v, want 0", y, x, gx[y][x])
			}
			// Rows differ by 0.25; the kernel weights sum to 4 per row,
			// two rows apart.
			if !core.NearlyEqual(gy[y][x], 2, 1e-12) {
				t.Fatalf("gy[%d][%d] = %v, want 2", y, x, gy[y][x])
			}
		}
	}
}
