// Package plot shows line graphs in an interactive window. Drag with the left
// mouse button to pan, use the wheel to zoom, R resets the view, F11 toggles
// fullscreen and Escape closes the window.
package plot

import (
	"fmt"
	"math"

	"github.com/gonutz/prototype/draw"
)

// PlotSize opens a window and calls plot every frame to describe the graphs.
// It returns when the window is closed.
func PlotSize(title string, width, height int, plot func(p *Plotter)) error {
	p := &Plotter{}
	p.ResetRanges()
	return draw.RunWindow(title, width, height, func(window draw.Window) {
		if window.WasKeyPressed(draw.KeyEscape) {
			window.Close()
			return
		}

		if window.WasKeyPressed(draw.KeyF11) {
			p.fullscreen = !p.fullscreen
		}
		window.SetFullscreen(p.fullscreen)

		if window.WasKeyPressed(draw.KeyR) {
			p.ResetRanges()
		}

		p.Window = window
		p.reset()
		plot(p)
		p.drawGraphs()
		p.drawLabels()
	})
}

type Plotter struct {
	draw.Window
	fullscreen bool
	dragging   bool
	dragX      int
	dragY      int
	minX       float64
	maxX       float64
	minY       float64
	maxY       float64
	xLabel     string
	yLabel     string
	graphs     []*Graph
}

func (p *Plotter) ResetRanges() {
	p.minX = math.Inf(1)
	p.maxX = math.Inf(-1)
	p.minY = math.Inf(1)
	p.maxY = math.Inf(-1)
	p.dragging = false
}

func (p *Plotter) reset() {
	p.graphs = p.graphs[:0]
	p.xLabel = ""
	p.yLabel = ""
}

// XLabel sets the title written below the x axis.
func (p *Plotter) XLabel(s string) { p.xLabel = s }

// YLabel sets the title written next to the y axis.
func (p *Plotter) YLabel(s string) { p.yLabel = s }

type Graph struct {
	x     []float64
	y     []float64
	label string
	color draw.Color
}

// New adds a graph. Graphs get their colors from Palette in the order they are
// added.
func (p *Plotter) New() *Graph {
	g := &Graph{
		color: Palette[len(p.graphs)%len(Palette)],
	}
	p.graphs = append(p.graphs, g)
	return g
}

func (g *Graph) X(x []float64) *Graph {
	g.x = x
	return g
}

func (g *Graph) Y(y []float64) *Graph {
	g.y = y
	return g
}

// Label names the graph in the legend. Unlabeled graphs are not listed.
func (g *Graph) Label(s string) *Graph {
	g.label = s
	return g
}

func (g *Graph) RGB(red, green, blue uint8) *Graph {
	g.color = RGB(red, green, blue)
	return g
}

func (p *Plotter) drawGraphs() {
	mouseX, mouseY := p.MousePosition()

	if p.IsMouseDown(draw.LeftButton) {
		if !p.dragging {
			p.dragX, p.dragY = mouseX, mouseY
			p.dragging = true
		}
	} else {
		p.dragging = false
	}

	// The user does not need to specify values for x. If unspecified, we just
	// make x count up like: 0, 1, 2, 3, 4, ...
	for _, g := range p.graphs {
		if len(g.x) == 0 {
			g.x = make([]float64, len(g.y))
			for i := range g.x {
				g.x[i] = float64(i)
			}
		}
	}

	// If the ranges are at their default value, we calculate the outer bounds
	// of all visible graphs and use that instead.
	if isInf(p.minX) {
		p.minX, p.maxX, p.minY, p.maxY = dataBounds(p.graphs)
	}

	width, height := p.Size()

	t := p.newTransformer()

	validXRange := !isInf(p.minX)
	validYRange := !isInf(p.minY)

	// Drag the view with the mouse.
	if p.dragging && validXRange {
		screenDx := p.dragX - mouseX
		screenDy := mouseY - p.dragY
		if screenDx != 0 || screenDy != 0 {
			dx := float64(screenDx) * t.xFromScreen
			dy := float64(screenDy) * t.yFromScreen
			p.minX += dx
			p.maxX += dx
			p.minY += dy
			p.maxY += dy
			p.dragX, p.dragY = mouseX, mouseY
			t = p.newTransformer()
		}
	}

	// Zoom with the mouse wheel.
	wheelY := p.MouseWheelY()
	if wheelY != 0 && validXRange {
		mx, my := t.fromScreen(mouseX, mouseY)

		scale := math.Pow(1.1, -wheelY)
		p.maxX = p.minX + t.xRange*scale
		p.maxY = p.minY + t.yRange*scale

		t = p.newTransformer()
		mx2, my2 := t.fromScreen(mouseX, mouseY)
		dx := mx - mx2
		dy := my - my2

		p.minX += dx
		p.maxX += dx
		p.minY += dy
		p.maxY += dy
		t = p.newTransformer()
	}

	// Draw the axes.
	x0, y0 := t.toScreen(0, 0)
	p.DrawLine(0, y0, width, y0, draw.White)
	p.DrawLine(x0, 0, x0, height, draw.White)

	// Draw tick marks.
	var xPrecision, yPrecision int

	if validXRange {
		var xScale float64
		xScale, xPrecision = calcStepsAndPrecision(t.xRange)
		for _, x := range ticks(p.minX, p.maxX, xScale) {
			tickX, tickY := t.toScreen(x, 0)
			p.DrawLine(tickX, tickY-3, tickX, tickY+4, draw.White)
			text := fmt.Sprintf("%.*f", xPrecision, x)
			textW, _ := p.GetTextSize(text)
			p.DrawText(text, tickX-textW/2, tickY+5, draw.White)
		}
	}

	if validYRange {
		var yScale float64
		yScale, yPrecision = calcStepsAndPrecision(t.yRange)
		for _, y := range ticks(p.minY, p.maxY, yScale) {
			tickX, tickY := t.toScreen(0, y)
			p.DrawLine(tickX-3, tickY, tickX+4, tickY, draw.White)
			text := fmt.Sprintf("%.*f", yPrecision, y)
			textW, textH := p.GetTextSize(text)
			p.DrawText(text, tickX-5-textW, tickY-textH/2, draw.White)
		}
	}

	// Draw the graphs.
	for _, g := range p.graphs {
		n := min(len(g.x), len(g.y))
		if n == 0 {
			continue
		}

		x, y := t.toScreen(g.x[0], g.y[0])
		if n == 1 {
			// A lone sample would be a single pixel, mark it with a cross.
			p.DrawLine(x-3, y, x+4, y, g.color)
			p.DrawLine(x, y-3, x, y+4, g.color)
			continue
		}
		for i := 1; i < n; i++ {
			x2, y2 := t.toScreen(g.x[i], g.y[i])
			p.DrawLine(x, y, x2, y2, g.color)
			x, y = x2, y2
		}
		// DrawLine does not draw the last point in a line, so we have to draw
		// the very last line in the graph ourselves.
		p.DrawPoint(x, y, g.color)
	}

	// Write the current mouse position in the lower right hand corner.
	mx, my := t.fromScreen(mouseX, mouseY)
	mouseText := fmt.Sprintf("%.*f %.*f", xPrecision+1, mx, yPrecision+1, my)
	textW, textH := p.GetTextSize(mouseText)
	p.DrawText(mouseText, width-textW, height-textH, draw.White)
}

// drawLabels writes the axis titles and the legend on top of the graphs.
func (p *Plotter) drawLabels() {
	width, height := p.Size()

	if p.xLabel != "" {
		w, h := p.GetTextSize(p.xLabel)
		p.DrawText(p.xLabel, (width-w)/2, height-h-2, draw.LightGray)
	}
	if p.yLabel != "" {
		p.DrawText(p.yLabel, 4, 4, draw.LightGray)
	}

	var entries []legendEntry
	for _, g := range p.graphs {
		if g.label == "" {
			continue
		}
		w, h := p.GetTextSize(g.label)
		entries = append(entries, legendEntry{label: g.label, color: g.color, textW: w, textH: h})
	}
	if len(entries) == 0 {
		return
	}
	box := layoutLegend(entries, width)
	p.FillRect(box.x, box.y, box.w, box.h, draw.RGBA(0, 0, 0, 0.75))
	p.DrawRect(box.x, box.y, box.w, box.h, draw.Gray)
	for _, e := range entries {
		lineY := e.y + e.textH/2
		p.DrawLine(e.x, lineY, e.x+legendLineLength, lineY, e.color)
		p.DrawText(e.label, e.x+legendLineLength+legendPadding, e.y, draw.White)
	}
}

const (
	legendPadding    = 6
	legendLineLength = 20
)

type legendEntry struct {
	label        string
	color        draw.Color
	textW, textH int
	x, y         int
}

type rect struct{ x, y, w, h int }

// layoutLegend stacks the entries in a box in the upper right corner of a
// window that is screenWidth pixels wide and sets each entry's position.
func layoutLegend(entries []legendEntry, screenWidth int) rect {
	var textW, h int
	for _, e := range entries {
		textW = max(textW, e.textW)
		h += e.textH
	}
	w := legendPadding + legendLineLength + legendPadding + textW + legendPadding
	h += legendPadding * (len(entries) + 1)
	box := rect{x: screenWidth - w - legendPadding, y: legendPadding, w: w, h: h}

	y := box.y + legendPadding
	for i := range entries {
		entries[i].x = box.x + legendPadding
		entries[i].y = y
		y += entries[i].textH + legendPadding
	}
	return box
}

// dataBounds returns the outer bounds of all graphs with a margin of a tenth of
// the range on each side, or 1 if the range is empty. All bounds are infinite
// if there are no points.
func dataBounds(graphs []*Graph) (minX, maxX, minY, maxY float64) {
	minX, maxX = math.Inf(1), math.Inf(-1)
	minY, maxY = math.Inf(1), math.Inf(-1)

	for _, g := range graphs {
		for _, x := range g.x {
			minX = math.Min(minX, x)
			maxX = math.Max(maxX, x)
		}
		for _, y := range g.y {
			minY = math.Min(minY, y)
			maxY = math.Max(maxY, y)
		}
	}
	if isInf(minX) || isInf(minY) {
		return
	}

	var xMargin float64 = 1
	if minX < maxX {
		xMargin = (maxX - minX) / 10
	}
	minX -= xMargin
	maxX += xMargin

	var yMargin float64 = 1
	if minY < maxY {
		yMargin = (maxY - minY) / 10
	}
	minY -= yMargin
	maxY += yMargin
	return
}

// ticks lists the multiples of scale that lie in [lo, hi], leaving out the one
// at the origin.
func ticks(lo, hi, scale float64) []float64 {
	var values []float64
	v := float64(round(lo/scale))*scale - scale
	for v <= hi {
		if v >= lo && abs(v) > scale/10 {
			values = append(values, v)
		}
		v += scale
	}
	return values
}

func (p *Plotter) newTransformer() transformer {
	width, height := p.Size()
	return newTransformer(p.minX, p.maxX, p.minY, p.maxY, width, height)
}

func newTransformer(minX, maxX, minY, maxY float64, width, height int) transformer {
	xRange := maxX - minX
	yRange := maxY - minY
	w, h := float64(width-1), float64(height-1)
	xToScreen := w / xRange
	yToScreen := h / yRange
	return transformer{
		minX:        minX,
		minY:        minY,
		xRange:      xRange,
		yRange:      yRange,
		xToScreen:   xToScreen,
		yToScreen:   yToScreen,
		xFromScreen: 1.0 / xToScreen,
		yFromScreen: 1.0 / yToScreen,
		height:      height,
	}
}

type transformer struct {
	minX        float64
	minY        float64
	xRange      float64
	yRange      float64
	xToScreen   float64
	yToScreen   float64
	xFromScreen float64
	yFromScreen float64
	height      int
}

func (t transformer) toScreen(x, y float64) (screenX, screenY int) {
	screenX = round((x - t.minX) * t.xToScreen)
	screenY = t.height - 1 - round((y-t.minY)*t.yToScreen)
	return
}

func (t transformer) fromScreen(screenX, screenY int) (x, y float64) {
	x = t.minX + float64(screenX)*t.xFromScreen
	y = t.minY + float64(t.height-1-screenY)*t.yFromScreen
	return
}

func calcStepsAndPrecision(theRange float64) (float64, int) {
	steps := theRange / 10
	scale := float64(1)
	prec := 0
	if steps < 1 {
		for steps < 1 {
			steps *= 10
			scale /= 10
			prec++
		}
	} else {
		for steps > 1 {
			steps /= 10
			scale *= 10
		}
	}

	if theRange/scale < 5 {
		scale *= 0.5
	}
	if theRange/scale > 15 {
		scale *= 2
	}

	return scale, prec
}

type Color = draw.Color

func RGB(r, g, b uint8) Color {
	return draw.RGB(float32(r)/255, float32(g)/255, float32(b)/255)
}

// Palette holds the default graph colors, chosen to stay apart on the black
// background.
var Palette = []Color{
	draw.LightBlue,
	draw.LightGreen,
	draw.LightRed,
	draw.Yellow,
	draw.LightPurple,
	draw.Cyan,
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

func isInf(x float64) bool {
	return math.IsInf(x, 1) || math.IsInf(x, -1)
}

func round(f float64) int {
	if f < 0 {
		return int(f - 0.5)
	}
	return int(f + 0.5)
}
