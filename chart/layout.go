package chart

import (
	"bytes"
	_ "embed"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

//go:embed layout.yaml
var defaultLayout []byte

// Backend names accepted in a layout.
const (
	BackendWindow = "window"
	BackendPNG    = "png"
	BackendSVG    = "svg"
)

// Column pairs a table column with the label it is displayed under. Color is
// optional and only used for series.
type Column struct {
	Column int    `yaml:"column"`
	Label  string `yaml:"label"`
	Color  string `yaml:"color,omitempty"`
}

// Spec describes one chart: the shared x column and the labelled y columns.
type Spec struct {
	Name   string   `yaml:"name"`
	Title  string   `yaml:"title"`
	X      Column   `yaml:"x"`
	YLabel string   `yaml:"y_label"`
	Series []Column `yaml:"series"`
}

// Layout is the complete, fixed rendering configuration of the program.
type Layout struct {
	Input   string `yaml:"input"`
	Backend string `yaml:"backend"`
	Width   int    `yaml:"width"`
	Height  int    `yaml:"height"`
	Charts  []Spec `yaml:"charts"`
}

// DefaultLayout returns the layout compiled into the binary.
func DefaultLayout() (Layout, error) {
	return ParseLayout(defaultLayout)
}

// ParseLayout decodes and validates a YAML layout. Unknown keys are rejected.
func ParseLayout(data []byte) (Layout, error) {
	var l Layout
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&l); err != nil {
		return Layout{}, errors.Wrap(err, "cannot decode layout")
	}
	if err := l.Validate(); err != nil {
		return Layout{}, err
	}
	return l, nil
}

func (l Layout) Validate() error {
	if l.Input == "" {
		return errors.New("layout: input is empty")
	}
	switch l.Backend {
	case BackendWindow, BackendPNG, BackendSVG:
	default:
		return errors.Errorf("layout: unknown backend %q", l.Backend)
	}
	if l.Width <= 0 || l.Height <= 0 {
		return errors.Errorf("layout: invalid size %dx%d", l.Width, l.Height)
	}
	if len(l.Charts) == 0 {
		return errors.New("layout: no charts")
	}
	seen := make(map[string]bool)
	for i, c := range l.Charts {
		if c.Name == "" {
			return errors.Errorf("layout: chart %d has no name", i)
		}
		if seen[c.Name] {
			return errors.Errorf("layout: duplicate chart name %q", c.Name)
		}
		seen[c.Name] = true
		if len(c.Series) != SeriesPerChart {
			return errors.Wrapf(ErrSeriesCount, "layout: chart %q has %d series", c.Name, len(c.Series))
		}
		for _, s := range c.Series {
			if s.Color != "" && !hexColor.MatchString(s.Color) {
				return errors.Errorf("layout: chart %q: series %q has invalid color %q", c.Name, s.Label, s.Color)
			}
		}
	}
	return nil
}
