package chart

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DeltaTestSoftware/fitplot/table"
)

var strategies = []string{"First-Fit", "Next-Fit", "Best-Fit", "Worst-Fit"}

func mustTable(t *testing.T, rows [][]float64) *table.Table {
	t.Helper()
	tbl, err := table.New(rows)
	require.NoError(t, err)
	return tbl
}

func TestRender(t *testing.T) {
	tbl := mustTable(t, [][]float64{
		{0, 1, 2, 3, 4, 5, 6, 7, 8},
		{1, 2, 3, 4, 5, 6, 7, 8, 9},
		{2, 3, 4, 5, 6, 7, 8, 9, 10},
	})
	c, err := Render(tbl, 0, []int{1, 2, 3, 4}, strategies, "Run Time", "Average Holes Examined")
	require.NoError(t, err)

	assert.Equal(t, "Run Time", c.XLabel)
	assert.Equal(t, "Average Holes Examined", c.YLabel)
	assert.Equal(t, strategies, c.Legend())
	require.Len(t, c.Series, 4)
	for i, s := range c.Series {
		assert.Equal(t, []float64{0, 1, 2}, s.X)
		assert.Equal(t, []float64{float64(i + 1), float64(i + 2), float64(i + 3)}, s.Y)
	}
}

func TestRenderSeriesOwnX(t *testing.T) {
	tbl := mustTable(t, [][]float64{
		{0, 1, 2, 3, 4, 5, 6, 7, 8},
		{1, 2, 3, 4, 5, 6, 7, 8, 9},
	})
	c, err := Render(tbl, 0, []int{1, 2, 3, 4}, strategies, "x", "y")
	require.NoError(t, err)

	c.Series[0].X[0] = 42
	for _, s := range c.Series[1:] {
		assert.Equal(t, []float64{0, 1}, s.X)
	}
	assert.Equal(t, 0.0, tbl.At(0, 0))
}

func TestRenderIndexOutOfRange(t *testing.T) {
	tbl := mustTable(t, [][]float64{{0, 1, 2, 3, 4, 5, 6, 7, 8}})

	for _, cols := range [][]int{{1, 2, 3, 9}, {-1, 2, 3, 4}} {
		_, err := Render(tbl, 0, cols, strategies, "x", "y")
		var ioe *IndexOutOfRangeError
		require.True(t, errors.As(err, &ioe), "got %v", err)
		assert.Equal(t, 9, ioe.Width)
	}

	_, err := Render(tbl, 12, []int{1, 2, 3, 4}, strategies, "x", "y")
	var ioe *IndexOutOfRangeError
	require.True(t, errors.As(err, &ioe))
	assert.Equal(t, 12, ioe.Column)
}

func TestRenderSeriesCount(t *testing.T) {
	tbl := mustTable(t, [][]float64{{0, 1, 2, 3, 4, 5, 6, 7, 8}})

	_, err := Render(tbl, 0, []int{1, 2, 3}, strategies[:3], "x", "y")
	assert.Equal(t, ErrSeriesCount, errors.Cause(err))

	_, err = Render(tbl, 0, []int{1, 2, 3, 4}, strategies[:3], "x", "y")
	assert.Equal(t, ErrSeriesCount, errors.Cause(err))
}

func TestBuildDefaultLayout(t *testing.T) {
	l, err := DefaultLayout()
	require.NoError(t, err)

	tbl := mustTable(t, [][]float64{
		{0, 1, 2, 3, 4, 5, 6, 7, 8},
		{1, 2, 3, 4, 5, 6, 7, 8, 9},
	})
	charts, err := Build(tbl, l)
	require.NoError(t, err)
	require.Len(t, charts, 2)

	holes, util := charts[0], charts[1]
	assert.Equal(t, "Average Holes Examined", holes.YLabel)
	assert.Equal(t, "Memory Utilization", util.YLabel)
	for _, c := range charts {
		assert.Equal(t, "Run Time", c.XLabel)
		assert.Equal(t, strategies, c.Legend())
		for _, s := range c.Series {
			assert.Equal(t, []float64{0, 1}, s.X)
		}
	}
	assert.Equal(t, "#4e79a7", holes.Series[0].Color)
	assert.Equal(t, "#edc948", util.Series[3].Color)
	assert.Equal(t, []float64{1, 2}, holes.Series[0].Y)
	assert.Equal(t, []float64{8, 9}, util.Series[3].Y)
	for i := 0; i < 4; i++ {
		assert.Equal(t, []float64{float64(1 + i), float64(2 + i)}, holes.Series[i].Y)
		assert.Equal(t, []float64{float64(5 + i), float64(6 + i)}, util.Series[i].Y)
	}
}

func TestBuildSingleRow(t *testing.T) {
	l, err := DefaultLayout()
	require.NoError(t, err)

	charts, err := Build(mustTable(t, [][]float64{{0, 1, 2, 3, 4, 5, 6, 7, 8}}), l)
	require.NoError(t, err)
	for _, c := range charts {
		for _, s := range c.Series {
			assert.Len(t, s.X, 1)
			assert.Len(t, s.Y, 1)
		}
	}
}

func TestBuildReportsChartName(t *testing.T) {
	l, err := DefaultLayout()
	require.NoError(t, err)
	l.Charts[1].Series[2].Column = 20

	_, err = Build(mustTable(t, [][]float64{{0, 1, 2, 3, 4, 5, 6, 7, 8}}), l)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `chart "memory_utilization"`)
	var ioe *IndexOutOfRangeError
	assert.True(t, errors.As(err, &ioe))
}

func TestBounds(t *testing.T) {
	c := &Chart{Series: []Series{
		{X: []float64{0, 10}, Y: []float64{0, 50}},
		{X: []float64{0, 10}, Y: []float64{-50, 0}},
	}}
	minX, maxX, minY, maxY := bounds(c)
	assert.Equal(t, []float64{-1, 11, -60, 60}, []float64{minX, maxX, minY, maxY})

	c = &Chart{Series: []Series{{X: []float64{2}, Y: []float64{0.5}}}}
	minX, maxX, minY, maxY = bounds(c)
	assert.Equal(t, []float64{1, 3, -0.5, 1.5}, []float64{minX, maxX, minY, maxY})
}

func TestSeriesColor(t *testing.T) {
	col, ok := seriesColor(Series{Color: "#4e79a7"})
	require.True(t, ok)
	assert.Equal(t, []uint8{0x4e, 0x79, 0xa7}, []uint8{col.R, col.G, col.B})

	for _, bad := range []string{"", "4e79a7", "#4e79a", "#4e79zz"} {
		_, ok := seriesColor(Series{Color: bad})
		assert.False(t, ok, bad)
	}
}
