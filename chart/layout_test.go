package chart

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultLayout(t *testing.T) {
	l, err := DefaultLayout()
	require.NoError(t, err)

	assert.Equal(t, "simulation_data.txt", l.Input)
	assert.Equal(t, BackendWindow, l.Backend)
	require.Len(t, l.Charts, 2)

	want := []Column{
		{Column: 1, Label: "First-Fit", Color: "#4e79a7"},
		{Column: 2, Label: "Next-Fit", Color: "#59a14f"},
		{Column: 3, Label: "Best-Fit", Color: "#e15759"},
		{Column: 4, Label: "Worst-Fit", Color: "#edc948"},
	}
	assert.Equal(t, Column{Column: 0, Label: "Run Time"}, l.Charts[0].X)
	assert.Equal(t, want, l.Charts[0].Series)

	for i := range want {
		want[i].Column += 4
	}
	assert.Equal(t, Column{Column: 0, Label: "Run Time"}, l.Charts[1].X)
	assert.Equal(t, want, l.Charts[1].Series)
}

const validLayout = `
input: data.txt
backend: png
width: 640
height: 480
charts:
  - name: a
    x: {column: 0, label: X}
    y_label: Y
    series:
      - {column: 1, label: A}
      - {column: 2, label: B}
      - {column: 3, label: C}
      - {column: 4, label: D}
`

func TestParseLayout(t *testing.T) {
	l, err := ParseLayout([]byte(validLayout))
	require.NoError(t, err)
	assert.Equal(t, BackendPNG, l.Backend)
	assert.Equal(t, 640, l.Width)
	assert.Equal(t, "a", l.Charts[0].Name)
}

func TestParseLayoutInvalid(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"unknown key", validLayout + "colour: red\n"},
		{"unknown backend", `
input: data.txt
backend: gif
width: 1
height: 1
charts: [{name: a, series: [{column: 1}, {column: 2}, {column: 3}, {column: 4}]}]
`},
		{"bad color", `
input: data.txt
backend: png
width: 1
height: 1
charts: [{name: a, series: [{column: 1, color: red}, {column: 2}, {column: 3}, {column: 4}]}]
`},
		{"no charts", "input: data.txt\nbackend: png\nwidth: 1\nheight: 1\n"},
		{"no input", "backend: png\nwidth: 1\nheight: 1\n"},
		{"bad size", `
input: data.txt
backend: png
width: 0
height: 1
charts: [{name: a, series: [{column: 1}, {column: 2}, {column: 3}, {column: 4}]}]
`},
		{"duplicate name", `
input: data.txt
backend: png
width: 1
height: 1
charts:
  - {name: a, series: [{column: 1}, {column: 2}, {column: 3}, {column: 4}]}
  - {name: a, series: [{column: 1}, {column: 2}, {column: 3}, {column: 4}]}
`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseLayout([]byte(tt.in))
			assert.Error(t, err)
		})
	}
}

func TestParseLayoutSeriesCount(t *testing.T) {
	_, err := ParseLayout([]byte(`
input: data.txt
backend: svg
width: 1
height: 1
charts: [{name: a, series: [{column: 1}, {column: 2}]}]
`))
	assert.Equal(t, ErrSeriesCount, errors.Cause(err))
}
