package tui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func TestBuildStyledRunesBold(t *testing.T) {
	style := lipgloss.NewStyle()
	runes := buildStyledRunes("a **b**", style)
	if len(runes) != 3 {
		t.Fatalf("expected markers to be dropped, got %d runes", len(runes))
	}
	if runes[0].s != style.Render("a") {
		t.Fatalf("expected plain style for first rune")
	}
	if !runes[1].isSpace {
		t.Fatalf("expected second rune to be a space")
	}
	if runes[2].s != style.Bold(true).Render("b") {
		t.Fatalf("expected bold style inside markers")
	}
}

func TestBuildStyledRunesKeepsUnmatchedMarker(t *testing.T) {
	runes := buildStyledRunes("a **b", lipgloss.NewStyle())
	if got := len(runes); got != 5 {
		t.Fatalf("expected literal markers, got %d runes", got)
	}
}

func TestRenderMarkupWraps(t *testing.T) {
	cases := []struct {
		name  string
		text  string
		width int
		want  string
	}{
		{name: "fits", text: "um dois", width: 7, want: "um dois"},
		{name: "break at space", text: "um dois tres", width: 7, want: "um dois\ntres"},
		{name: "long word", text: "abcdefgh", width: 3, want: "abc\ndef\ngh"},
		{name: "space after full line", text: "abc def", width: 3, want: "abc\ndef"},
		{name: "explicit newline", text: "ab\ncd", width: 10, want: "ab\ncd"},
		{name: "bold keeps text", text: "**Simples:** J = C", width: 40, want: "Simples: J = C"},
		{name: "no width", text: "um dois tres", width: 0, want: "um dois tres"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ansi.Strip(renderMarkup(tc.text, tc.width, lipgloss.NewStyle()))
			if got != tc.want {
				t.Fatalf("renderMarkup(%q, %d) = %q, want %q", tc.text, tc.width, got, tc.want)
			}
		})
	}
}

func TestRenderMarkupDropsControlRunes(t *testing.T) {
	got := ansi.Strip(renderMarkup("a\x07b\tc", 20, lipgloss.NewStyle()))
	if got != "ab c" {
		t.Fatalf("unexpected sanitized output %q", got)
	}
}
