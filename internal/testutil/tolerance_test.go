package testutil

import (
	"math"
	"testing"
)

func TestMaxAbsDiff(t *testing.T) {
	a := []float64{1.0, 2.0, 3.0}
	b := []float64{1.0, 2.1, 3.0}

	d, err := MaxAbsDiff(a, b)
	if err != nil {
		t.Fatalf("MaxAbsDiff error: %v", err)
	}

	if math.Abs(d-0.1) > 1e-15 {
		t.Fatalf("MaxAbsDiff = %v, want 0.1", d)
	}
}

func TestMaxAbsDiffLengthMismatch(t *testing.T) {
	_, err := MaxAbsDiff([]float64{1}, []float64{1, 2})
	if err == nil {
		t.Fatal("expected error for length mismatch")
	}
}

func TestRequireSliceNearlyEqualPasses(t *testing.T) {
	RequireSliceNearlyEqual(t, []float64{1, 2}, []float64{1 + 1e-12, 2}, 1e-9)
}

func TestRequireMatrixNearlyEqualPasses(t *testing.T) {
	RequireMatrixNearlyEqual(t,
		[][]float64{{1, 2}, {3, 4}},
		[][]float64{{1, 2 + 1e-12}, {3, 4}},
		1e-9,
	)
}

func TestRequireFinitePasses(t *testing.T) {
	RequireFinite(t, []float64{0, -1, 1e300})
}

func TestRequireSliceNearlyEqualRelative(t *testing.T) {
	// 1e-4 apart is far outside eps absolutely but within it relative to 1e6.
	RequireSliceNearlyEqual(t, []float64{1e6, 0}, []float64{1e6 + 1e-4, 0}, 1e-9)
}

func TestRequireSliceNearlyEqualExact(t *testing.T) {
	RequireSliceNearlyEqual(t, []float64{-2, 4}, []float64{-2, 4}, 0)
}

func TestMaxAbsDiffEmpty(t *testing.T) {
	d, err := MaxAbsDiff(nil, []float64{})
	if err != nil || d != 0 {
		t.Fatalf("MaxAbsDiff(empty) = %v, %v; want 0, nil", d, err)
	}
}
