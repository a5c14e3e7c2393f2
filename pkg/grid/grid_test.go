package grid

import (
	"errors"
	"math"
	"testing"
)

// TestLinspace verifies sample count, endpoints and uniform spacing for a
// range of interval counts
func TestLinspace(t *testing.T) {
	cases := []struct {
		start, end float64
		intervals  int
	}{
		{0, 1.0, 100},
		{0, 0.5, 50},
		{-2.0, 2.0, 8},
		{0, 1.0, 1},
	}

	for _, c := range cases {
		v, err := Linspace(c.start, c.end, c.intervals)
		if err != nil {
			t.Fatalf("Linspace(%g, %g, %d) returned error: %v", c.start, c.end, c.intervals, err)
		}

		if len(v) != c.intervals+1 {
			t.Errorf("Expected %d samples, got %d", c.intervals+1, len(v))
		}

		if v[0] != c.start {
			t.Errorf("Expected first sample %g, got %g", c.start, v[0])
		}

		if math.Abs(v[len(v)-1]-c.end) > 1e-9 {
			t.Errorf("Expected last sample %g, got %g", c.end, v[len(v)-1])
		}

		// All consecutive differences must equal the uniform step
		step := (c.end - c.start) / float64(c.intervals)
		for i := 1; i < len(v); i++ {
			if math.Abs(v[i]-v[i-1]-step) > 1e-9 {
				t.Errorf("Non-uniform spacing at index %d: got %g, want %g", i, v[i]-v[i-1], step)
			}
		}
	}
}

// TestLinspaceBadInterval verifies that interval counts below one are rejected
func TestLinspaceBadInterval(t *testing.T) {
	for _, intervals := range []int{0, -1, -100} {
		if _, err := Linspace(0, 1, intervals); !errors.Is(err, ErrBadInterval) {
			t.Errorf("Linspace with %d intervals: expected ErrBadInterval, got %v", intervals, err)
		}
	}
}

// TestMeshgrid verifies the broadcast shapes and contents of the coordinate
// matrix pair
func TestMeshgrid(t *testing.T) {
	x := []float64{0, 0.25, 0.5}
	y := []float64{0, 1, 2, 3}

	X, Y, err := Meshgrid(x, y)
	if err != nil {
		t.Fatalf("Meshgrid returned error: %v", err)
	}

	rows, cols := X.Dims()
	if rows != len(y) || cols != len(x) {
		t.Fatalf("Expected X shape (%d,%d), got (%d,%d)", len(y), len(x), rows, cols)
	}
	if r, c := Y.Dims(); r != rows || c != cols {
		t.Fatalf("Expected Y shape (%d,%d), got (%d,%d)", rows, cols, r, c)
	}

	// Every row of X repeats the x vector
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if X.At(i, j) != x[j] {
				t.Errorf("X[%d][%d] = %g, want %g", i, j, X.At(i, j), x[j])
			}
		}
	}

	// Every column of Y repeats the y vector
	for j := 0; j < cols; j++ {
		for i := 0; i < rows; i++ {
			if Y.At(i, j) != y[i] {
				t.Errorf("Y[%d][%d] = %g, want %g", i, j, Y.At(i, j), y[i])
			}
		}
	}
}

// TestMeshgridEmpty verifies that empty coordinate vectors are rejected
func TestMeshgridEmpty(t *testing.T) {
	if _, _, err := Meshgrid(nil, []float64{1, 2}); !errors.Is(err, ErrEmptyVector) {
		t.Errorf("Empty x vector: expected ErrEmptyVector, got %v", err)
	}

	if _, _, err := Meshgrid([]float64{1, 2}, nil); !errors.Is(err, ErrEmptyVector) {
		t.Errorf("Empty y vector: expected ErrEmptyVector, got %v", err)
	}
}
