package chart

import (
	"io"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

var pngPalette = []drawing.Color{
	gochart.ColorBlue,
	gochart.ColorGreen,
	gochart.ColorRed,
	gochart.ColorOrange,
}

// PNGEncoder renders charts as PNG images with go-chart.
type PNGEncoder struct {
	Width  int
	Height int
}

func (e *PNGEncoder) Encode(c *Chart, w io.Writer) error {
	minX, maxX, minY, maxY := bounds(c)
	ch := gochart.Chart{
		Title:      c.Title,
		Width:      e.Width,
		Height:     e.Height,
		Background: gochart.Style{Padding: gochart.Box{Top: 40, Left: 16, Right: 12, Bottom: 16}},
		XAxis: gochart.XAxis{
			Name:  c.XLabel,
			Range: &gochart.ContinuousRange{Min: minX, Max: maxX},
		},
		YAxis: gochart.YAxis{
			Name:  c.YLabel,
			Range: &gochart.ContinuousRange{Min: minY, Max: maxY},
		},
	}
	for i, s := range c.Series {
		col := pngPalette[i%len(pngPalette)]
		if sc, ok := seriesColor(s); ok {
			col = sc
		}
		ch.Series = append(ch.Series, gochart.ContinuousSeries{
			Name:    s.Label,
			XValues: s.X,
			YValues: s.Y,
			Style: gochart.Style{
				StrokeColor: col,
				StrokeWidth: 2,
				DotColor:    col,
				DotWidth:    3,
			},
		})
	}
	ch.Elements = []gochart.Renderable{gochart.Legend(&ch)}
	return ch.Render(gochart.PNG, w)
}
