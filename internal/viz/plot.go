package viz

import (
	"errors"
	"fmt"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/siunits/internal/quantity"
	"github.com/san-kum/siunits/internal/storage"
	"github.com/san-kum/siunits/internal/unit"
)

var (
	// ErrInvalidRange indicates an empty sweep range or too few points.
	ErrInvalidRange = errors.New("viz: invalid plot range")
)

type PlotOptions struct {
	Width  int
	Height int
	Points int
}

func DefaultPlotOptions() PlotOptions {
	return PlotOptions{Width: 60, Height: 15, Points: 50}
}

// Sweep converts Points evenly spaced values in [lo, hi] from one unit to
// another.
func Sweep(from, to *unit.Unit, lo, hi float64, points int) ([]float64, error) {
	if points < 2 || !(hi > lo) {
		return nil, fmt.Errorf("%w: [%g, %g] with %d points", ErrInvalidRange, lo, hi, points)
	}
	ys := make([]float64, points)
	for i := range ys {
		x := lo + (hi-lo)*float64(i)/float64(points-1)
		y, err := from.ConvertTo(x, to)
		if err != nil {
			return nil, err
		}
		ys[i] = y
	}
	return ys, nil
}

// PlotConversion plots the conversion curve from one unit to another over
// [lo, hi].
func PlotConversion(from, to *unit.Unit, lo, hi float64, opts PlotOptions) (string, error) {
	ys, err := Sweep(from, to, lo, hi, opts.Points)
	if err != nil {
		return "", err
	}
	caption := fmt.Sprintf("%s in %s for %g..%g %s", from, to, lo, hi, from)
	return asciigraph.Plot(ys,
		asciigraph.Height(opts.Height),
		asciigraph.Width(opts.Width),
		asciigraph.Caption(caption),
	), nil
}

// PlotVector plots the elements of v in its display unit.
func PlotVector[T storage.Float](v *quantity.Vector[T], opts PlotOptions) (string, error) {
	if v.Len() == 0 {
		return "", fmt.Errorf("%w: empty vector", ErrInvalidRange)
	}
	values := v.Values()
	data := make([]float64, len(values))
	for i, x := range values {
		data[i] = float64(x)
	}
	return asciigraph.Plot(data,
		asciigraph.Height(opts.Height),
		asciigraph.Width(opts.Width),
		asciigraph.Caption(fmt.Sprintf("%d values in %s", len(data), v.Unit())),
	), nil
}
