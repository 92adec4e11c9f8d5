package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	frontCardStyle = cardStyle.BorderForeground(lipgloss.Color("#4F9DFF")).Padding(1, 2)
	backCardStyle  = cardStyle.BorderForeground(lipgloss.Color("#73D13D")).Padding(1, 2)
)

func (m *Model) updateFlashcards(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "right", "l", "n":
		m.cards.Next()
	case "left", "h", "p":
		m.cards.Previous()
	case " ", "enter", "f":
		m.cards.ToggleAux()
	case "down", "j", "]":
		// Out of range indices are rejected and leave the deck as it was.
		_ = m.cards.SelectCategory(m.cards.CategoryIndex() + 1)
	case "up", "k", "[":
		_ = m.cards.SelectCategory(m.cards.CategoryIndex() - 1)
	}
	return m, nil
}

func (m *Model) renderFlashcards() string {
	width := m.contentWidth()
	pos, total := m.cards.Position()
	card := m.cards.Current()

	side, text, style := "PERGUNTA", card.Front, frontCardStyle
	if m.cards.Aux() {
		side, text, style = "RESPOSTA", card.Back, backCardStyle
	}
	innerWidth := width - style.GetHorizontalFrameSize()
	face := mutedStyle.Render(side) + "\n\n" + renderMarkup(text, innerWidth, textStyle) +
		"\n\n" + mutedStyle.Render("space: virar o cartão")

	lines := []string{
		renderPills(m.cards.Deck().Labels(), m.cards.CategoryIndex()),
		"",
		titleStyle.Render(m.cards.Category().Label) + "  " + mutedStyle.Render(positionText(pos, total)),
		m.progress.ViewAs(m.cards.Progress()),
		"",
		style.Width(width-2).Render(face),
		"",
		renderPager(m.cards.AtStart(), m.cards.AtEnd()),
	}
	return strings.Join(lines, "\n")
}
