// Package markup parses the bold-only text markup used by study content.
//
// Only "**text**" spans are recognised, matching non-greedily within a single
// line. Everything else is literal text. Control characters (terminal escape
// sequences included) are dropped so content can never drive the terminal.
package markup

import (
	"strings"
	"unicode"
)

const boldDelim = "**"

// Segment is a run of text with a single emphasis.
type Segment struct {
	Text string
	Bold bool
}

// Parse splits s into plain and bold segments.
func Parse(s string) []Segment {
	s = Sanitize(s)
	var out []Segment
	for s != "" {
		start := strings.Index(s, boldDelim)
		if start < 0 {
			out = appendSegment(out, s, false)
			break
		}
		rest := s[start+len(boldDelim):]
		end := strings.Index(rest, boldDelim)
		if end < 0 || strings.ContainsRune(rest[:end], '\n') {
			// Unmatched delimiter on this line: keep it literally.
			out = appendSegment(out, s[:start+len(boldDelim)], false)
			s = rest
			continue
		}
		out = appendSegment(out, s[:start], false)
		out = appendSegment(out, rest[:end], true)
		s = rest[end+len(boldDelim):]
	}
	return out
}

// Plain returns s with bold markers removed.
func Plain(s string) string {
	var b strings.Builder
	for _, seg := range Parse(s) {
		b.WriteString(seg.Text)
	}
	return b.String()
}

// Sanitize removes control characters other than newline and tab.
func Sanitize(s string) string {
	if strings.IndexFunc(s, isUnsafe) < 0 {
		return s
	}
	return strings.Map(func(r rune) rune {
		if isUnsafe(r) {
			return -1
		}
		return r
	}, s)
}

func isUnsafe(r rune) bool {
	if r == '\n' || r == '\t' {
		return false
	}
	return unicode.IsControl(r)
}

func appendSegment(out []Segment, text string, bold bool) []Segment {
	if text == "" {
		return out
	}
	if n := len(out); n > 0 && out[n-1].Bold == bold {
		out[n-1].Text += text
		return out
	}
	return append(out, Segment{Text: text, Bold: bold})
}
