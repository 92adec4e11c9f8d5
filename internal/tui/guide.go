package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/olitef/internal/content"
)

const (
	selicNone = iota
	selicRaise
	selicLower
)

var (
	topicTitleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#4F9DFF")).Bold(true)
	detailTitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	raiseStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	lowerStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#73D13D"))
)

func (m *Model) updateGuide(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "e":
		m.guideExpanded = !m.guideExpanded
		m.renderGuideContent()
		return m, nil
	case "g", "home":
		m.guide.GotoTop()
		return m, nil
	case "G", "end":
		m.guide.GotoBottom()
		return m, nil
	}
	var cmd tea.Cmd
	m.guide, cmd = m.guide.Update(msg)
	return m, cmd
}

func (m *Model) renderGuideContent() {
	m.guide.SetContent(renderGuide(m.pack.Topics, m.contentWidth(), m.guideExpanded))
}

// renderGuide lays out every topic. Details are listed by title only unless
// expanded is set.
func renderGuide(topics []content.Topic, width int, expanded bool) string {
	var b strings.Builder
	for i, topic := range topics {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(topicTitleStyle.Render(topic.Title))
		b.WriteString("\n")
		b.WriteString(renderMarkup(topic.Body, width, textStyle))
		for _, detail := range topic.Details {
			b.WriteString("\n\n")
			if !expanded {
				b.WriteString(detailTitleStyle.Render("▸ " + detail.Title))
				continue
			}
			b.WriteString(detailTitleStyle.Render("▾ " + detail.Title))
			b.WriteString("\n")
			b.WriteString(renderMarkup(detail.Body, width-2, mutedStyle))
		}
	}
	if !expanded {
		b.WriteString("\n\n")
		b.WriteString(headerStyle.Render("Pressione e para expandir os detalhes."))
	}
	return b.String()
}

func (m *Model) updateSelic(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "a", "+", "left":
		m.selicChoice = selicRaise
	case "d", "-", "right":
		m.selicChoice = selicLower
	case "esc":
		m.selicChoice = selicNone
	}
	return m, nil
}

func (m *Model) renderSelic() string {
	width := m.contentWidth()
	raise := inactiveNavStyle.Render("[a] Aumentar a Selic")
	lower := inactiveNavStyle.Render("[d] Diminuir a Selic")
	var explanation string
	switch m.selicChoice {
	case selicRaise:
		raise = activeNavStyle.Render("[a] Aumentar a Selic")
		explanation = renderMarkup(m.pack.Selic.Raise, width-4, raiseStyle)
	case selicLower:
		lower = activeNavStyle.Render("[d] Diminuir a Selic")
		explanation = renderMarkup(m.pack.Selic.Lower, width-4, lowerStyle)
	default:
		explanation = mutedStyle.Render("Escolha uma opção para ver a explicação.")
	}
	lines := []string{
		titleStyle.Render("Selic e Inflação"),
		"",
		renderMarkup(m.pack.Selic.Intro, width, textStyle),
		"",
		lipgloss.JoinHorizontal(lipgloss.Top, raise, " ", lower),
		"",
		cardStyle.Width(width - 2).Render(explanation),
	}
	return strings.Join(lines, "\n")
}
