package chart

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// Bar is one row of a horizontal bar chart.
type Bar struct {
	Label string
	Value float64
	Text  string
}

var partialBlocks = []rune{' ', '▏', '▎', '▍', '▌', '▋', '▊', '▉'}

// Bars renders one line per bar, scaled so the largest value spans barWidth
// cells. Each line is "label │bar text" with labels padded to equal width.
func Bars(bars []Bar, barWidth int) []string {
	if len(bars) == 0 {
		return nil
	}
	if barWidth < 1 {
		barWidth = 1
	}
	labelWidth := 0
	maxVal := 0.0
	for _, b := range bars {
		labelWidth = max(labelWidth, runewidth.StringWidth(b.Label))
		if b.Value > maxVal {
			maxVal = b.Value
		}
	}
	lines := make([]string, 0, len(bars))
	for _, b := range bars {
		var line strings.Builder
		line.WriteString(b.Label)
		line.WriteString(strings.Repeat(" ", labelWidth-runewidth.StringWidth(b.Label)))
		line.WriteString(" │")
		bar := BarString(b.Value, maxVal, barWidth)
		line.WriteString(bar)
		if b.Text != "" {
			// Block glyphs are ambiguous-width; pad by glyph count, not measured width.
			line.WriteString(strings.Repeat(" ", max(0, barWidth-utf8.RuneCountInString(bar))+1))
			line.WriteString(b.Text)
		}
		lines = append(lines, line.String())
	}
	return lines
}

// BarString renders value/maxVal of width cells using eighth-block glyphs.
func BarString(value, maxVal float64, width int) string {
	if width <= 0 || !(maxVal > 0) || !(value > 0) {
		return ""
	}
	eighths := int(math.Round(math.Min(value/maxVal, 1) * float64(width*8)))
	full := eighths / 8
	rest := eighths % 8
	s := strings.Repeat("█", full)
	if rest > 0 {
		s += string(partialBlocks[rest])
	}
	return s
}
