package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/olitef/internal/markup"
)

type styledRune struct {
	s       string
	width   int
	isSpace bool
	newline bool
}

// buildStyledRunes styles text rune by rune, using bold for "**...**" runs.
func buildStyledRunes(text string, style lipgloss.Style) []styledRune {
	bold := style.Bold(true)
	out := make([]styledRune, 0, len(text))
	for _, seg := range markup.Parse(text) {
		segStyle := style
		if seg.Bold {
			segStyle = bold
		}
		for _, r := range seg.Text {
			switch r {
			case '\n':
				out = append(out, styledRune{newline: true})
				continue
			case '\t':
				r = ' '
			}
			out = append(out, styledRune{
				s:       segStyle.Render(string(r)),
				width:   runewidth.RuneWidth(r),
				isSpace: r == ' ',
			})
		}
	}
	return out
}

// renderMarkup wraps marked-up text to width using style for plain runs.
func renderMarkup(text string, width int, style lipgloss.Style) string {
	return wrapStyledRunes(buildStyledRunes(text, style), width)
}

func renderStyledRunes(runes []styledRune) string {
	var b strings.Builder
	for _, item := range runes {
		b.WriteString(item.s)
	}
	return b.String()
}

// wrapStyledRunes breaks lines at the last space that fits, or mid-word when a
// word is wider than the line. Explicit newlines always break.
func wrapStyledRunes(runes []styledRune, width int) string {
	if width <= 0 {
		width = 1 << 30
	}
	var out strings.Builder
	line := make([]styledRune, 0, len(runes))
	lineWidth := 0
	lastSpaceIdx := -1

	for i := 0; i < len(runes); {
		item := runes[i]
		if item.newline {
			out.WriteString(renderStyledRunes(line))
			out.WriteRune('\n')
			line = line[:0]
			lineWidth = 0
			lastSpaceIdx = -1
			i++
			continue
		}
		if lineWidth+item.width > width && len(line) > 0 {
			if lastSpaceIdx >= 0 && !item.isSpace {
				out.WriteString(renderStyledRunes(line[:lastSpaceIdx]))
				out.WriteRune('\n')
				line = append([]styledRune{}, line[lastSpaceIdx+1:]...)
				lineWidth = lineWidthOf(line)
				lastSpaceIdx = lastSpaceIndex(line)
				continue
			}
			out.WriteString(renderStyledRunes(line))
			out.WriteRune('\n')
			line = line[:0]
			lineWidth = 0
			lastSpaceIdx = -1
			if item.isSpace {
				i++
			}
			continue
		}
		line = append(line, item)
		lineWidth += item.width
		if item.isSpace {
			lastSpaceIdx = len(line) - 1
		}
		i++
	}
	out.WriteString(renderStyledRunes(line))
	return out.String()
}

func lineWidthOf(line []styledRune) int {
	total := 0
	for _, item := range line {
		total += item.width
	}
	return total
}

func lastSpaceIndex(line []styledRune) int {
	for i := len(line) - 1; i >= 0; i-- {
		if line[i].isSpace {
			return i
		}
	}
	return -1
}
