// Package visualization renders a scalar field over a 2D grid as a filled
// contour plot: a heat map fill with contour lines drawn on top, saved as an
// image file. All plot state stays inside this package; the evaluators only
// hand over coordinate vectors and a field matrix.
package visualization

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// DefaultLevels is the contour level count used when none is given.
const DefaultLevels = 20

var (
	// ErrEmptyGrid is returned when a coordinate vector has no samples.
	ErrEmptyGrid = errors.New("visualization: empty coordinate vector")

	// ErrShapeMismatch is returned when the field matrix dimensions do not
	// match the coordinate vector lengths.
	ErrShapeMismatch = errors.New("visualization: field shape does not match coordinate vectors")

	// ErrUnknownPalette is returned for an unrecognized palette name.
	ErrUnknownPalette = errors.New("visualization: unknown palette")
)

// ContourPlot holds one (x, y, field) triple ready for rendering. It
// implements plotter.GridXYZ so gonum/plot can consume it directly.
type ContourPlot struct {
	x, y  []float64
	field *mat.Dense
}

// NewContourPlot validates and wraps the grid and field for rendering. The
// field must have shape (len(y), len(x)).
func NewContourPlot(x, y []float64, field *mat.Dense) (*ContourPlot, error) {
	if len(x) == 0 {
		return nil, fmt.Errorf("%w: x", ErrEmptyGrid)
	}
	if len(y) == 0 {
		return nil, fmt.Errorf("%w: y", ErrEmptyGrid)
	}
	rows, cols := field.Dims()
	if rows != len(y) || cols != len(x) {
		return nil, fmt.Errorf("%w: field is (%d,%d), want (%d,%d)",
			ErrShapeMismatch, rows, cols, len(y), len(x))
	}
	return &ContourPlot{x: x, y: y, field: field}, nil
}

// Dims implements plotter.GridXYZ.
func (cp *ContourPlot) Dims() (c, r int) { return len(cp.x), len(cp.y) }

// Z implements plotter.GridXYZ.
func (cp *ContourPlot) Z(c, r int) float64 { return cp.field.At(r, c) }

// X implements plotter.GridXYZ.
func (cp *ContourPlot) X(c int) float64 { return cp.x[c] }

// Y implements plotter.GridXYZ.
func (cp *ContourPlot) Y(r int) float64 { return cp.y[r] }

// SavePNG renders the filled contour plot to path with the given contour
// level count, palette name and title. The image format follows the file
// extension, so .png gives PNG output. The canvas is sized from the data
// ranges so the x and y axes share one scale.
func (cp *ContourPlot) SavePNG(path string, levels int, paletteName, title string) error {
	if levels < 1 {
		levels = DefaultLevels
	}
	pal, err := paletteByName(paletteName, levels)
	if err != nil {
		return err
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"

	p.Add(plotter.NewHeatMap(cp, pal))
	p.Add(plotter.NewContour(cp, cp.levelValues(levels), pal))

	w, h := cp.canvasSize()
	return p.Save(w, h, path)
}

func paletteByName(name string, colors int) (palette.Palette, error) {
	switch name {
	case "", "heat":
		return palette.Heat(colors, 1), nil
	case "rainbow":
		return palette.Rainbow(colors, palette.Blue, palette.Red, 1, 1, 1), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPalette, name)
	}
}

// levelValues returns n level values evenly spaced strictly inside the
// field's value range.
func (cp *ContourPlot) levelValues(n int) []float64 {
	lo, hi := mat.Min(cp.field), mat.Max(cp.field)
	if hi <= lo {
		// Flat field: nothing meaningful to contour.
		return []float64{lo}
	}
	step := (hi - lo) / float64(n+1)
	vals := make([]float64, n)
	for i := range vals {
		vals[i] = lo + float64(i+1)*step
	}
	return vals
}

// canvasSize picks a canvas whose drawing area is proportional to the data
// ranges, giving the two axes an equal scale. The margin leaves room for the
// title, labels and tick marks.
func (cp *ContourPlot) canvasSize() (w, h vg.Length) {
	xr := cp.x[len(cp.x)-1] - cp.x[0]
	yr := cp.y[len(cp.y)-1] - cp.y[0]
	if xr <= 0 {
		xr = 1
	}
	if yr <= 0 {
		yr = 1
	}

	const base = 5 * vg.Inch
	const margin = vg.Inch
	if xr >= yr {
		return base + margin, vg.Length(float64(base)*yr/xr) + margin
	}
	return vg.Length(float64(base)*xr/yr) + margin, base + margin
}
