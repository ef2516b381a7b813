// Package chart turns a loaded table into labelled line charts and hands them
// to a display backend.
package chart

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/DeltaTestSoftware/fitplot/table"
)

// SeriesPerChart is the number of strategies compared on every chart.
const SeriesPerChart = 4

// ErrSeriesCount is returned when a chart is requested with a number of
// columns or labels other than SeriesPerChart.
var ErrSeriesCount = errors.New("chart: expected 4 series with one label each")

// IndexOutOfRangeError reports a column index outside the table.
type IndexOutOfRangeError struct {
	Column int
	Width  int
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("chart: column %d out of range for table with %d columns", e.Column, e.Width)
}

// Series is one labelled line. Color is a "#rrggbb" value, empty to let the
// backend pick.
type Series struct {
	Label string
	Color string
	X     []float64
	Y     []float64
}

// Chart is a rendered comparison, ready to be presented.
type Chart struct {
	Name   string
	Title  string
	XLabel string
	YLabel string
	Series []Series
}

// Legend returns the series labels in drawing order.
func (c *Chart) Legend() []string {
	labels := make([]string, len(c.Series))
	for i, s := range c.Series {
		labels[i] = s.Label
	}
	return labels
}

// Render plots column xCol of t against each of yCols, labelling the series
// positionally with labels.
func Render(t *table.Table, xCol int, yCols []int, labels []string, xLabel, yLabel string) (*Chart, error) {
	if len(yCols) != SeriesPerChart || len(labels) != SeriesPerChart {
		return nil, errors.Wrapf(ErrSeriesCount, "got %d columns and %d labels", len(yCols), len(labels))
	}
	if _, ok := t.Column(xCol); !ok {
		return nil, &IndexOutOfRangeError{Column: xCol, Width: t.Columns()}
	}
	c := &Chart{XLabel: xLabel, YLabel: yLabel}
	for i, col := range yCols {
		y, ok := t.Column(col)
		if !ok {
			return nil, &IndexOutOfRangeError{Column: col, Width: t.Columns()}
		}
		// Every series owns its x values.
		x, _ := t.Column(xCol)
		c.Series = append(c.Series, Series{Label: labels[i], X: x, Y: y})
	}
	return c, nil
}

// RenderSpec renders the chart described by s.
func RenderSpec(t *table.Table, s Spec) (*Chart, error) {
	cols := make([]int, len(s.Series))
	labels := make([]string, len(s.Series))
	for i, c := range s.Series {
		cols[i] = c.Column
		labels[i] = c.Label
	}
	c, err := Render(t, s.X.Column, cols, labels, s.X.Label, s.YLabel)
	if err != nil {
		return nil, errors.Wrapf(err, "chart %q", s.Name)
	}
	c.Name = s.Name
	c.Title = s.Title
	for i := range c.Series {
		c.Series[i].Color = s.Series[i].Color
	}
	return c, nil
}

// Build renders every chart of the layout in order.
func Build(t *table.Table, l Layout) ([]*Chart, error) {
	charts := make([]*Chart, 0, len(l.Charts))
	for _, s := range l.Charts {
		c, err := RenderSpec(t, s)
		if err != nil {
			return nil, err
		}
		charts = append(charts, c)
	}
	return charts, nil
}

// bounds returns the data range of all series widened by a tenth on each side,
// or by one when the range is empty, so that single points stay visible.
func bounds(c *Chart) (minX, maxX, minY, maxY float64) {
	first := true
	for _, s := range c.Series {
		for i := range s.X {
			if first {
				minX, maxX, minY, maxY = s.X[i], s.X[i], s.Y[i], s.Y[i]
				first = false
				continue
			}
			minX, maxX = min(minX, s.X[i]), max(maxX, s.X[i])
			minY, maxY = min(minY, s.Y[i]), max(maxY, s.Y[i])
		}
	}
	minX, maxX = widen(minX, maxX)
	minY, maxY = widen(minY, maxY)
	return
}

func widen(lo, hi float64) (float64, float64) {
	var margin float64 = 1
	if lo < hi {
		margin = (hi - lo) / 10
	}
	return lo - margin, hi + margin
}
