package chart

import (
	"regexp"
	"strings"

	"github.com/wcharczuk/go-chart/v2/drawing"
)

var hexColor = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// seriesColor returns the configured color of s, or false if none is set.
func seriesColor(s Series) (drawing.Color, bool) {
	if !hexColor.MatchString(s.Color) {
		return drawing.Color{}, false
	}
	return drawing.ColorFromHex(strings.TrimPrefix(s.Color, "#")), true
}
