package chart

import (
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	plot "github.com/DeltaTestSoftware/fitplot"
)

// Presenter shows a chart. Present blocks until the chart has been shown, so
// that charts appear one after the other.
type Presenter interface {
	Present(c *Chart) error
}

// NewPresenter returns the backend named in l. File backends write into dir.
func NewPresenter(l Layout, dir string) (Presenter, error) {
	switch l.Backend {
	case BackendWindow:
		return &WindowPresenter{Width: l.Width, Height: l.Height}, nil
	case BackendPNG:
		return &FilePresenter{Dir: dir, Ext: ".png", Encode: (&PNGEncoder{Width: l.Width, Height: l.Height}).Encode}, nil
	case BackendSVG:
		return &FilePresenter{Dir: dir, Ext: ".svg", Encode: (&SVGEncoder{Width: l.Width, Height: l.Height}).Encode}, nil
	}
	return nil, errors.Errorf("unknown backend %q", l.Backend)
}

// WindowPresenter opens an interactive plot window per chart and returns when
// the window is closed.
type WindowPresenter struct {
	Width  int
	Height int
}

func (w *WindowPresenter) Present(c *Chart) error {
	log.WithField("chart", c.Name).Debug("opening plot window")
	title := c.Title
	if title == "" {
		title = c.YLabel
	}
	err := plot.PlotSize(title, w.Width, w.Height, func(p *plot.Plotter) {
		p.XLabel(c.XLabel)
		p.YLabel(c.YLabel)
		for _, s := range c.Series {
			g := p.New().X(s.X).Y(s.Y).Label(s.Label)
			if col, ok := seriesColor(s); ok {
				g.RGB(col.R, col.G, col.B)
			}
		}
	})
	return errors.Wrapf(err, "cannot show chart %q", c.Name)
}

// FilePresenter writes each chart to <Dir>/<name><Ext> using Encode.
type FilePresenter struct {
	Dir    string
	Ext    string
	Encode func(c *Chart, w io.Writer) error
}

func (f *FilePresenter) Present(c *Chart) (err error) {
	path := filepath.Join(f.Dir, c.Name+f.Ext)
	out, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "cannot create chart file")
	}
	defer func() {
		if cerr := out.Close(); err == nil && cerr != nil {
			err = errors.Wrapf(cerr, "cannot close %s", path)
		}
		if err != nil {
			// Do not leave a half written chart behind.
			os.Remove(path)
		}
	}()
	if err := f.Encode(c, out); err != nil {
		return errors.Wrapf(err, "cannot render chart %q", c.Name)
	}
	log.WithFields(log.Fields{"chart": c.Name, "path": path}).Info("chart written")
	return nil
}
