// Package tui provides the Bubble Tea study guide interface.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/olitef/internal/content"
	"github.com/verte-zerg/olitef/internal/deck"
	"github.com/verte-zerg/olitef/internal/interest"
	"github.com/verte-zerg/olitef/internal/model"
)

const (
	tabGuide = iota
	tabCalculator
	tabFlashcards
	tabQuiz
	tabSelic
)

var tabNames = []string{"Guia", "Calculadora", "Flash Cards", "Questionário", "Selic"}

// tabAliases lists the accepted CLI names per tab; the first is canonical.
var tabAliases = [][]string{
	{"guia", "guide"},
	{"calculadora", "calc"},
	{"flashcards", "cards"},
	{"questionario", "quiz"},
	{"selic"},
}

var (
	activeNavStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F0F0F0")).
			Bold(true).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#C89A3A"))
	inactiveNavStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#B0B0B0")).
				Padding(0, 1).
				Border(lipgloss.RoundedBorder(), true).
				BorderForeground(lipgloss.Color("#4A4A4A"))
	titleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	headerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	textStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	answerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#73D13D"))
	selectedPill = lipgloss.NewStyle().Foreground(lipgloss.Color("#1A1A1A")).
			Background(lipgloss.Color("#C89A3A")).Bold(true).Padding(0, 1)
	pillStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#B0B0B0")).Padding(0, 1)
	cardStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#4A4A4A"))
	cardTitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	cardValueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
)

// TabNames returns the canonical CLI tab names in display order.
func TabNames() []string {
	out := make([]string, 0, len(tabAliases))
	for _, aliases := range tabAliases {
		out = append(out, aliases[0])
	}
	return out
}

// ParseTab resolves a CLI tab name to its index. Empty selects the guide.
func ParseTab(name string) (int, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return tabGuide, nil
	}
	for i, aliases := range tabAliases {
		for _, alias := range aliases {
			if alias == name {
				return i, nil
			}
		}
	}
	return 0, fmt.Errorf("unknown tab %q (expected one of %s)", name, strings.Join(TabNames(), ", "))
}

// Model implements the Bubble Tea study guide.
type Model struct {
	cfg  model.Config
	pack content.Pack

	activeTab int
	width     int
	height    int

	guide         viewport.Model
	guideExpanded bool

	calcInputs     []textinput.Model
	calcIndex      int
	calcEditing    bool
	calcResult     interest.Result
	calcProjection interest.Projection
	calcHasResult  bool
	calcError      string

	cards *deck.Navigator[content.Flashcard]

	quiz        *deck.Navigator[content.Question]
	quizInput   textarea.Model
	quizEditing bool

	selicChoice int

	progress progress.Model
}

// NewModel constructs the study guide model. The decks are usually built
// from pack, optionally shuffled by the caller.
func NewModel(cfg model.Config, pack content.Pack, cards *deck.Deck[content.Flashcard], quiz *deck.Deck[content.Question]) *Model {
	m := &Model{
		cfg:      cfg,
		pack:     pack,
		guide:    viewport.New(0, 0),
		cards:    deck.NewNavigator(cards, deck.Flashcards),
		quiz:     deck.NewNavigator(quiz, deck.Quiz),
		progress: progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage()),
	}
	if tab, err := ParseTab(cfg.Tab); err == nil {
		m.activeTab = tab
	}
	m.initCalculator()
	m.initQuizInput()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.calcEditing {
			return m.updateCalculatorInput(msg)
		}
		if m.quizEditing {
			return m.updateQuizInput(msg)
		}
		switch msg.String() {
		case "q":
			return m, tea.Quit
		case "tab":
			m.moveTab(1)
			return m, nil
		case "shift+tab":
			m.moveTab(-1)
			return m, nil
		case "1", "2", "3", "4", "5":
			m.activeTab = int(msg.Runes[0] - '1')
			return m, nil
		}
		switch m.activeTab {
		case tabGuide:
			return m.updateGuide(msg)
		case tabCalculator:
			return m.updateCalculator(msg)
		case tabFlashcards:
			return m.updateFlashcards(msg)
		case tabQuiz:
			return m.updateQuiz(msg)
		case tabSelic:
			return m.updateSelic(msg)
		}
		return m, nil
	}

	// Cursor blink and similar messages go to whichever input has focus.
	var cmd tea.Cmd
	switch {
	case m.calcEditing:
		m.calcInputs[m.calcIndex], cmd = m.calcInputs[m.calcIndex].Update(msg)
	case m.quizEditing:
		m.quizInput, cmd = m.quizInput.Update(msg)
	}
	return m, cmd
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	headerHeight, bodyHeight, footerHeight := m.layoutHeights()
	header := fitLines(m.renderHeader(), m.width, headerHeight)
	body := fitLines(m.renderBody(), m.width, bodyHeight)
	footer := fitLines(m.renderFooter(), m.width, footerHeight)
	return strings.Join([]string{header, body, footer}, "\n")
}

func (m *Model) layoutHeights() (headerHeight, bodyHeight, footerHeight int) {
	tabsHeight := lipgloss.Height(activeNavStyle.Render("X"))
	if tabsHeight < 1 {
		tabsHeight = 1
	}
	headerHeight = tabsHeight + 1
	footerHeight = 1
	bodyHeight = m.height - headerHeight - footerHeight
	if bodyHeight < 1 {
		bodyHeight = 1
	}
	return headerHeight, bodyHeight, footerHeight
}

func (m *Model) updateLayout() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	_, bodyHeight, _ := m.layoutHeights()
	m.guide.Width = m.width
	m.guide.Height = bodyHeight
	m.renderGuideContent()
	for i := range m.calcInputs {
		promptWidth := lipgloss.Width(m.calcInputs[i].Prompt)
		m.calcInputs[i].Width = max(10, min(30, m.width-promptWidth-2))
	}
	m.quizInput.SetWidth(m.contentWidth())
	m.progress.Width = m.contentWidth()
}

// contentWidth is the width used for prose and cards.
func (m *Model) contentWidth() int {
	return max(20, min(m.width-2, 80))
}

func (m *Model) moveTab(delta int) {
	count := len(tabNames)
	next := m.activeTab + delta
	if next < 0 {
		next = count - 1
	}
	if next >= count {
		next = 0
	}
	m.activeTab = next
}

func (m *Model) renderTabs() string {
	parts := make([]string, 0, len(tabNames))
	for i, tab := range tabNames {
		if i == m.activeTab {
			parts = append(parts, activeNavStyle.Render(tab))
		} else {
			parts = append(parts, inactiveNavStyle.Render(tab))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m *Model) renderHeader() string {
	title := titleStyle.Render(truncateLine(m.pack.Title, m.width))
	return title + "\n" + padLines(m.renderTabs(), m.width)
}

func (m *Model) renderBody() string {
	switch m.activeTab {
	case tabGuide:
		return m.guide.View()
	case tabCalculator:
		return m.renderCalculator()
	case tabFlashcards:
		return m.renderFlashcards()
	case tabQuiz:
		return m.renderQuiz()
	case tabSelic:
		return m.renderSelic()
	}
	return ""
}

func (m *Model) renderFooter() string {
	var help string
	switch {
	case m.calcEditing:
		help = "tab/shift+tab: próximo campo  enter: calcular  esc: sair da edição"
	case m.quizEditing:
		help = "esc: sair da resposta  ctrl+c: sair"
	default:
		switch m.activeTab {
		case tabGuide:
			help = "Rolar: up/down/pgup/pgdn  Detalhes: e"
		case tabCalculator:
			help = "Editar: enter/e  Calcular: c"
		case tabFlashcards:
			help = "Cartão: left/right  Virar: space  Categoria: up/down"
		case tabQuiz:
			help = "Pergunta: left/right  Responder: enter/i  Ver resposta: v  Nível: up/down"
		case tabSelic:
			help = "Aumentar: a  Diminuir: d"
		}
		help += "  Abas: tab/1-5  Sair: q"
	}
	return headerStyle.Render(truncateLine(help, m.width))
}

// renderPills draws a one-line selector with the selected label highlighted.
func renderPills(labels []string, selected int) string {
	parts := make([]string, 0, len(labels))
	for i, label := range labels {
		if i == selected {
			parts = append(parts, selectedPill.Render(label))
		} else {
			parts = append(parts, pillStyle.Render(label))
		}
	}
	return strings.Join(parts, " ")
}

// renderPager draws the previous/next hints, dimming the side that cannot move.
func renderPager(atStart, atEnd bool) string {
	prev := textStyle.Render("← Anterior")
	if atStart {
		prev = mutedStyle.Render("← Anterior")
	}
	next := textStyle.Render("Próximo →")
	if atEnd {
		next = mutedStyle.Render("Próximo →")
	}
	return prev + "   " + next
}

func positionText(pos, total int) string {
	return fmt.Sprintf("%d de %d", pos, total)
}

func padLines(s string, width int) string {
	if width <= 0 || s == "" {
		return s
	}
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = padLine(line, width)
	}
	return strings.Join(lines, "\n")
}

func padLine(line string, width int) string {
	lineWidth := lipgloss.Width(line)
	if lineWidth < width {
		return line + strings.Repeat(" ", width-lineWidth)
	}
	return line
}

func fitLines(s string, width, height int) string {
	if width <= 0 || height <= 0 {
		return s
	}
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = padLine(line, width)
	}
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, strings.Repeat(" ", width))
	}
	return strings.Join(lines, "\n")
}

func truncateLine(s string, width int) string {
	if width <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width <= 3 {
		return string(runes[:width])
	}
	return string(runes[:width-3]) + "..."
}
