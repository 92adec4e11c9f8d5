package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
)

const quizInputHeight = 4

func (m *Model) initQuizInput() {
	input := textarea.New()
	input.Placeholder = "Digite sua resposta aqui..."
	input.ShowLineNumbers = false
	input.CharLimit = 0
	input.SetHeight(quizInputHeight)
	m.quizInput = input
}

func (m *Model) updateQuiz(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "right", "l", "n":
		if m.quiz.Next() {
			m.syncQuizInput()
		}
	case "left", "h", "p":
		if m.quiz.Previous() {
			m.syncQuizInput()
		}
	case "down", "j", "]":
		if m.quiz.SelectCategory(m.quiz.CategoryIndex()+1) == nil {
			m.syncQuizInput()
		}
	case "up", "k", "[":
		if m.quiz.SelectCategory(m.quiz.CategoryIndex()-1) == nil {
			m.syncQuizInput()
		}
	case "v", " ":
		m.quiz.ToggleAux()
	case "enter", "i":
		m.quizEditing = true
		return m, m.quizInput.Focus()
	}
	return m, nil
}

func (m *Model) updateQuizInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyEsc {
		m.quizEditing = false
		m.quizInput.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.quizInput, cmd = m.quizInput.Update(msg)
	// The quiz navigator always accepts answers.
	_ = m.quiz.SetAnswer(m.quizInput.Value())
	return m, cmd
}

// syncQuizInput loads the stored answer of the current question into the editor.
func (m *Model) syncQuizInput() {
	m.quizInput.SetValue(m.quiz.Answer())
}

func (m *Model) renderQuiz() string {
	width := m.contentWidth()
	pos, total := m.quiz.Position()
	question := m.quiz.Current()

	lines := []string{
		renderPills(m.quiz.Deck().Labels(), m.quiz.CategoryIndex()),
		"",
		titleStyle.Render("Nível: "+m.quiz.Category().Label) + "  " + mutedStyle.Render(positionText(pos, total)),
		m.progress.ViewAs(m.quiz.Progress()),
		"",
		mutedStyle.Render(fmt.Sprintf("Pergunta %d", pos)),
		renderMarkup(question.Question, width, textStyle),
		"",
		m.quizInput.View(),
		"",
	}
	if m.quiz.Aux() {
		lines = append(lines,
			mutedStyle.Render("[v] Ocultar Resposta"),
			answerStyle.Bold(true).Render("Resposta Esperada:"),
			renderMarkup(question.Answer, width, answerStyle),
		)
	} else {
		lines = append(lines, mutedStyle.Render("[v] Ver Resposta"))
	}
	lines = append(lines,
		"",
		mutedStyle.Render(fmt.Sprintf("Respondidas: %d de %d", m.quiz.Answered(), total)),
		renderPager(m.quiz.AtStart(), m.quiz.AtEnd()),
	)
	return strings.Join(lines, "\n")
}
