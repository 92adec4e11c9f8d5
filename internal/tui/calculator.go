package tui

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/olitef/internal/chart"
	"github.com/verte-zerg/olitef/internal/interest"
)

const (
	calcPlotHeight     = 8
	maxProjectionSteps = 120
	calcAllowedRunes   = "0123456789.,%R$ "
)

var calcBarStyles = []lipgloss.Style{
	lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("#4F9DFF")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("#2F5FD0")),
}

func (m *Model) initCalculator() {
	defaults := m.cfg.Calculator
	m.calcInputs = []textinput.Model{
		newCalcInput("Capital Inicial (R$): ", defaults.Capital),
		newCalcInput("Taxa de Juros (% ao mês): ", defaults.Rate),
		newCalcInput("Tempo (meses): ", defaults.Periods),
	}
}

func newCalcInput(prompt string, value float64) textinput.Model {
	input := textinput.New()
	input.Prompt = prompt
	input.Placeholder = "0"
	input.CharLimit = 24
	input.Cursor.SetMode(cursor.CursorBlink)
	if value > 0 {
		input.SetValue(formatInputValue(value))
	}
	return input
}

// formatInputValue renders v with a decimal comma and no trailing zeros.
func formatInputValue(v float64) string {
	return strings.Replace(strconv.FormatFloat(v, 'f', -1, 64), ".", ",", 1)
}

func (m *Model) updateCalculator(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "e", "i":
		return m.startCalculatorInput()
	case "c":
		m.runCalculation()
	}
	return m, nil
}

func (m *Model) startCalculatorInput() (tea.Model, tea.Cmd) {
	m.calcEditing = true
	return m, m.setCalcIndex(m.calcIndex)
}

func (m *Model) stopCalculatorInput() {
	m.calcEditing = false
	for i := range m.calcInputs {
		m.calcInputs[i].Blur()
	}
}

func (m *Model) updateCalculatorInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.stopCalculatorInput()
		return m, nil
	case tea.KeyEnter:
		if m.runCalculation() {
			m.stopCalculatorInput()
		}
		return m, nil
	case tea.KeyTab, tea.KeyDown:
		return m, m.setCalcIndex(m.calcIndex + 1)
	case tea.KeyShiftTab, tea.KeyUp:
		return m, m.setCalcIndex(m.calcIndex - 1)
	case tea.KeyRunes:
		for _, r := range msg.Runes {
			if !strings.ContainsRune(calcAllowedRunes, r) {
				return m, nil
			}
		}
	}
	var cmd tea.Cmd
	m.calcInputs[m.calcIndex], cmd = m.calcInputs[m.calcIndex].Update(msg)
	return m, cmd
}

func (m *Model) setCalcIndex(idx int) tea.Cmd {
	count := len(m.calcInputs)
	if count == 0 {
		return nil
	}
	if idx < 0 {
		idx = count - 1
	}
	if idx >= count {
		idx = 0
	}
	m.calcIndex = idx
	var cmd tea.Cmd
	for i := range m.calcInputs {
		if i == m.calcIndex {
			cmd = m.calcInputs[i].Focus()
		} else {
			m.calcInputs[i].Blur()
		}
	}
	return cmd
}

// runCalculation validates the inputs and stores the new result. On failure
// the previous result is kept and an error message is shown.
func (m *Model) runCalculation() bool {
	in, err := m.calculatorInput()
	if err == nil {
		var res interest.Result
		res, err = interest.Calculate(in)
		if err == nil {
			var proj interest.Projection
			proj, err = interest.Project(in, projectionSteps(in.Periods))
			if err == nil {
				m.calcResult = res
				m.calcProjection = proj
				m.calcHasResult = true
				m.calcError = ""
				return true
			}
		}
	}
	m.calcError = calculatorErrorText(err)
	return false
}

func (m *Model) calculatorInput() (interest.Input, error) {
	values := make([]float64, len(m.calcInputs))
	for i, input := range m.calcInputs {
		v, err := interest.ParseAmount(input.Value())
		if err != nil {
			return interest.Input{}, err
		}
		values[i] = v
	}
	return interest.Input{Principal: values[0], RatePercent: values[1], Periods: values[2]}, nil
}

func projectionSteps(periods float64) int {
	steps := int(math.Ceil(periods))
	return max(1, min(steps, maxProjectionSteps))
}

func calculatorErrorText(err error) string {
	switch {
	case errors.Is(err, interest.ErrNonPositiveInput), errors.Is(err, interest.ErrInvalidNumber):
		return "Por favor, insira valores válidos e maiores que zero."
	case errors.Is(err, interest.ErrOverflow):
		return "O resultado é grande demais para ser calculado."
	case err != nil:
		return err.Error()
	}
	return ""
}

func (m *Model) renderCalculator() string {
	width := m.contentWidth()
	lines := []string{titleStyle.Render("Calculadora de Juros"), ""}
	for _, input := range m.calcInputs {
		lines = append(lines, input.View())
	}
	if m.calcError != "" {
		lines = append(lines, "", errorStyle.Render(m.calcError))
	}
	lines = append(lines, "", m.renderCalculatorResults(width))
	if m.calcHasResult {
		lines = append(lines, "", m.renderCalculatorBars(width), "", m.renderCalculatorPlot(width))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderCalculatorResults(width int) string {
	simple, compound := 0.0, 0.0
	if m.calcHasResult {
		simple = m.calcResult.SimpleAmount
		compound = m.calcResult.CompoundAmount
	}
	cards := []string{
		metricCard("Montante (Juros Simples)", interest.FormatBRL(simple)),
		metricCard("Montante (Juros Compostos)", interest.FormatBRL(compound)),
	}
	if width < 64 {
		return strings.Join(cards, "\n")
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

func metricCard(label, value string) string {
	body := fmt.Sprintf("%s\n%s", cardTitleStyle.Render(label), cardValueStyle.Render(value))
	return cardStyle.Render(body)
}

func (m *Model) renderCalculatorBars(width int) string {
	labels := []string{"Capital Inicial", "Montante Simples", "Montante Composto"}
	series := m.calcResult.Series()
	bars := make([]chart.Bar, len(labels))
	for i, label := range labels {
		bars[i] = chart.Bar{Label: label, Value: series[i], Text: interest.FormatBRL(series[i])}
	}
	barWidth := max(10, width-40)
	lines := chart.Bars(bars, barWidth)
	for i := range lines {
		lines[i] = calcBarStyles[i%len(calcBarStyles)].Render(lines[i])
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderCalculatorPlot(width int) string {
	var buf bytes.Buffer
	err := chart.PlotSeries(&buf, []chart.Series{
		{Name: "Juros Simples", Values: m.calcProjection.Simple()},
		{Name: "Juros Compostos", Values: m.calcProjection.Compound()},
	}, chart.PlotOptions{
		Title:      "Evolução do montante",
		Width:      chart.PlotWidthFor(width, lipgloss.Width(interest.FormatAmount(m.calcResult.CompoundAmount))),
		Height:     calcPlotHeight,
		Label:      interest.FormatAmount,
		ForceColor: true,
	})
	if err != nil {
		return errorStyle.Render(fmt.Sprintf("Falha ao desenhar o gráfico: %v", err))
	}
	return strings.TrimRight(buf.String(), "\n")
}
