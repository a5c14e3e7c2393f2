// Package gaussian evaluates 1D and isotropic 2D Gaussian functions over
// coordinate vectors and coordinate matrices.
//
// The 2D Gaussian can be evaluated two ways: directly from the 2D formula,
// or as the product of two 1D factors (the function is separable). The two
// strategies use different amplitude normalizations inherited from the
// reference behavior: the direct formula scales by u0/(2π·σ²) while each 1D
// factor scales by u0/√(2π·σ), so direct and separable results agree only up
// to the constant factor 1/(u0·σ). Amplitude is a visual scaling knob here,
// not a probability normalization.
package gaussian

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// DefaultAmplitude is used when a Params amplitude is left at zero.
const DefaultAmplitude = 0.05

var (
	// ErrSigma is returned for a non-positive spread. Sigma = 0 would make
	// every evaluation NaN, so it is rejected up front instead.
	ErrSigma = errors.New("gaussian: sigma must be positive")

	// ErrShape is returned when the X and Y coordinate matrices passed to a
	// 2D evaluator have different dimensions.
	ErrShape = errors.New("gaussian: coordinate matrices must have matching shapes")

	// ErrEmpty is returned when there are no coordinates to evaluate.
	ErrEmpty = errors.New("gaussian: no coordinates to evaluate")
)

// Params configures a 1D evaluation.
//
// A zero Amplitude means DefaultAmplitude. A nil Center means the arithmetic
// mean of the coordinate data actually passed to that call, resolved once per
// call. Sigma has no default and must be positive.
type Params struct {
	Amplitude float64
	Center    *float64
	Sigma     float64
}

// Params2D configures a 2D evaluation. The Amplitude and Sigma conventions
// match Params; XCenter and YCenter default independently to the mean of the
// X and Y coordinate data of the call.
type Params2D struct {
	Amplitude float64
	XCenter   *float64
	YCenter   *float64
	Sigma     float64
}

// resolve fills in the amplitude and center defaults against the coordinate
// data of one call.
func resolve(p Params, data []float64) (u0, x0 float64, err error) {
	if p.Sigma <= 0 {
		return 0, 0, fmt.Errorf("%w: got %v", ErrSigma, p.Sigma)
	}
	if len(data) == 0 {
		return 0, 0, ErrEmpty
	}
	u0 = p.Amplitude
	if u0 == 0 {
		u0 = DefaultAmplitude
	}
	if p.Center != nil {
		x0 = *p.Center
	} else {
		x0 = stat.Mean(data, nil)
	}
	return u0, x0, nil
}

// Eval1D evaluates the 1D Gaussian
//
//	g(x) = u0/√(2π·σ) · exp(-(x-x0)² / (2σ²))
//
// elementwise over x. The result has the same length as x.
func Eval1D(x []float64, p Params) ([]float64, error) {
	u0, x0, err := resolve(p, x)
	if err != nil {
		return nil, err
	}
	norm := u0 / math.Sqrt(2*math.Pi*p.Sigma)
	twoSigma2 := 2 * p.Sigma * p.Sigma

	out := make([]float64, len(x))
	for i, v := range x {
		d := v - x0
		out[i] = norm * math.Exp(-d*d/twoSigma2)
	}
	return out, nil
}

// Field1D evaluates the 1D Gaussian elementwise over a coordinate matrix.
// The center default is the mean over all matrix entries.
func Field1D(X *mat.Dense, p Params) (*mat.Dense, error) {
	u0, x0, err := resolve(p, X.RawMatrix().Data)
	if err != nil {
		return nil, err
	}
	norm := u0 / math.Sqrt(2*math.Pi*p.Sigma)
	twoSigma2 := 2 * p.Sigma * p.Sigma

	rows, cols := X.Dims()
	out := mat.NewDense(rows, cols, nil)
	out.Apply(func(_, _ int, v float64) float64 {
		d := v - x0
		return norm * math.Exp(-d*d/twoSigma2)
	}, X)
	return out, nil
}

// Direct evaluates the isotropic 2D Gaussian
//
//	g(x,y) = u0/(2π·σ²) · exp(-((x-x0)² + (y-y0)²) / (2σ²))
//
// elementwise over matched-shape coordinate matrices X and Y.
func Direct(X, Y *mat.Dense, p Params2D) (*mat.Dense, error) {
	rows, cols, err := matchShapes(X, Y)
	if err != nil {
		return nil, err
	}
	u0, x0, err := resolve(Params{Amplitude: p.Amplitude, Center: p.XCenter, Sigma: p.Sigma}, X.RawMatrix().Data)
	if err != nil {
		return nil, err
	}
	var y0 float64
	if p.YCenter != nil {
		y0 = *p.YCenter
	} else {
		y0 = stat.Mean(Y.RawMatrix().Data, nil)
	}

	norm := u0 / (2 * math.Pi * p.Sigma * p.Sigma)
	twoSigma2 := 2 * p.Sigma * p.Sigma

	out := mat.NewDense(rows, cols, nil)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			dx := X.At(i, j) - x0
			dy := Y.At(i, j) - y0
			out.Set(i, j, norm*math.Exp(-(dx*dx+dy*dy)/twoSigma2))
		}
	}
	return out, nil
}

// Separable evaluates the 2D Gaussian as the product of two 1D factors,
// g(x,y) = g1(x)·g1(y), applying Field1D independently to X and Y with the
// same amplitude and sigma and the per-axis center conventions.
func Separable(X, Y *mat.Dense, p Params2D) (*mat.Dense, error) {
	rows, cols, err := matchShapes(X, Y)
	if err != nil {
		return nil, err
	}
	gx, err := Field1D(X, Params{Amplitude: p.Amplitude, Center: p.XCenter, Sigma: p.Sigma})
	if err != nil {
		return nil, err
	}
	gy, err := Field1D(Y, Params{Amplitude: p.Amplitude, Center: p.YCenter, Sigma: p.Sigma})
	if err != nil {
		return nil, err
	}

	out := mat.NewDense(rows, cols, nil)
	out.MulElem(gx, gy)
	return out, nil
}

func matchShapes(X, Y *mat.Dense) (rows, cols int, err error) {
	rx, cx := X.Dims()
	ry, cy := Y.Dims()
	if rx != ry || cx != cy {
		return 0, 0, fmt.Errorf("%w: (%d,%d) vs (%d,%d)", ErrShape, rx, cx, ry, cy)
	}
	return rx, cx, nil
}
