// Package grid builds uniform coordinate vectors and 2D coordinate grids
// for vectorized evaluation of scalar fields.
package grid

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

var (
	// ErrEmptyVector is returned when a coordinate vector has no samples.
	ErrEmptyVector = errors.New("grid: empty coordinate vector")

	// ErrBadInterval is returned when the requested interval count is below one.
	ErrBadInterval = errors.New("grid: interval count must be at least 1")
)

// Linspace returns intervals+1 evenly spaced samples from start to end
// inclusive. The spacing is (end-start)/intervals.
func Linspace(start, end float64, intervals int) ([]float64, error) {
	if intervals < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadInterval, intervals)
	}
	v := make([]float64, intervals+1)
	floats.Span(v, start, end)
	return v, nil
}

// Meshgrid broadcasts two coordinate vectors into a pair of coordinate
// matrices of shape (len(y), len(x)). X repeats the x vector across every
// row; Y repeats the y vector down every column. Together they give the
// (x, y) position of each grid point for elementwise field evaluation.
func Meshgrid(x, y []float64) (X, Y *mat.Dense, err error) {
	if len(x) == 0 {
		return nil, nil, fmt.Errorf("%w: x", ErrEmptyVector)
	}
	if len(y) == 0 {
		return nil, nil, fmt.Errorf("%w: y", ErrEmptyVector)
	}

	rows, cols := len(y), len(x)
	X = mat.NewDense(rows, cols, nil)
	Y = mat.NewDense(rows, cols, nil)
	for i := 0; i < rows; i++ {
		X.SetRow(i, x)
	}
	for j := 0; j < cols; j++ {
		Y.SetCol(j, y)
	}
	return X, Y, nil
}
