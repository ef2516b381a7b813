package chart

import (
	"image/color"
	"io"

	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// SVGEncoder renders charts as SVG documents with gonum/plot. Width and Height
// are in pixels at 96 dpi.
type SVGEncoder struct {
	Width  int
	Height int
}

func (e *SVGEncoder) Encode(c *Chart, w io.Writer) error {
	p := plot.New()
	p.Title.Text = c.Title
	p.X.Label.Text = c.XLabel
	p.Y.Label.Text = c.YLabel
	p.Add(plotter.NewGrid())
	p.Legend.Top = true

	minX, maxX, minY, maxY := bounds(c)
	p.X.Min, p.X.Max = minX, maxX
	p.Y.Min, p.Y.Max = minY, maxY

	for i, s := range c.Series {
		pts := make(plotter.XYs, len(s.X))
		for j := range pts {
			pts[j].X = s.X[j]
			pts[j].Y = s.Y[j]
		}
		line, points, err := plotter.NewLinePoints(pts)
		if err != nil {
			return errors.Wrapf(err, "series %q", s.Label)
		}
		col := plotutil.Color(i)
		if sc, ok := seriesColor(s); ok {
			col = color.RGBA{R: sc.R, G: sc.G, B: sc.B, A: 255}
		}
		line.Color = col
		points.Color = col
		points.Shape = plotutil.Shape(i)
		p.Add(line, points)
		p.Legend.Add(s.Label, line, points)
	}

	wt, err := p.WriterTo(vg.Length(e.Width)*vg.Inch/96, vg.Length(e.Height)*vg.Inch/96, "svg")
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}
