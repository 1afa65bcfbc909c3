// Package tui is a terminal rendition of the quadratic-equation screen:
// three coefficient inputs, Calcular and Limpar actions, two root slots and
// a blocking alert.
package tui

import (
	"strings"

	"bhaskara/internal/form"
	"bhaskara/internal/observability"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

var fields = [3]form.Field{form.FieldA, form.FieldB, form.FieldC}

// Model implements tea.Model on top of a form.Form.
type Model struct {
	form   *form.Form
	inputs [3]textinput.Model
	focus  int
	alert  *form.Alert
}

// New returns a model with an empty form and the a input focused.
func New() *Model {
	m := &Model{}
	m.form = form.New(form.NotifierFunc(func(a form.Alert) {
		m.alert = &a
	}))

	for i := range m.inputs {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Placeholder = "0"
		ti.CharLimit = 16
		ti.Width = 8
		m.inputs[i] = ti
	}
	m.inputs[0].Focus()

	return m
}

func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, m.updateFocused(msg)
	}

	if m.alert != nil {
		switch key.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc", "enter":
			m.alert = nil
		}
		return m, nil
	}

	switch key.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "tab", "down":
		return m, m.setFocus(m.focus + 1)
	case "shift+tab", "up":
		return m, m.setFocus(m.focus - 1)
	case "enter":
		m.calculate()
		return m, nil
	case "ctrl+l":
		m.clear()
		return m, m.setFocus(0)
	}

	return m, m.updateFocused(msg)
}

// updateFocused forwards msg to the focused input and mirrors its text into
// the form.
func (m *Model) updateFocused(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	m.form.SetInput(fields[m.focus], m.inputs[m.focus].Value())
	return cmd
}

func (m *Model) setFocus(i int) tea.Cmd {
	n := len(m.inputs)
	m.focus = ((i % n) + n) % n

	var cmd tea.Cmd
	for j := range m.inputs {
		if j == m.focus {
			cmd = m.inputs[j].Focus()
			continue
		}
		m.inputs[j].Blur()
	}
	return cmd
}

func (m *Model) calculate() {
	out, err := m.form.Calculate()
	if err != nil {
		observability.Logger.Info("calculation rejected", zap.Error(err))
		return
	}

	r1, r2 := m.form.Roots()
	observability.Logger.Info("calculation completed",
		zap.String("outcome", out.Kind.String()),
		zap.Float64("discriminant", out.Discriminant),
		zap.String("root1", r1),
		zap.String("root2", r2),
	)
}

func (m *Model) clear() {
	m.form.Clear()
	for i := range m.inputs {
		m.inputs[i].Reset()
	}
	observability.Logger.Info("form cleared")
}

func (m *Model) View() string {
	var b strings.Builder

	b.WriteString("App Equação de 2º Grau\n\n")
	b.WriteString("Entre com os valores nos campos abaixo:\n\n")

	b.WriteString(m.inputs[0].View())
	b.WriteString(" X² + ")
	b.WriteString(m.inputs[1].View())
	b.WriteString(" X + ")
	b.WriteString(m.inputs[2].View())
	b.WriteString(" = 0\n\n")

	r1, r2 := m.form.Roots()
	b.WriteString("Raiz 1: " + r1 + "    Raiz 2: " + r2 + "\n\n")

	b.WriteString("Fórmula de Bhaskara\n")
	b.WriteString("x = (-b ± √(b² - 4ac)) / (2a)\n\n")

	if m.alert != nil {
		b.WriteString("┌ " + m.alert.Title + "\n")
		b.WriteString("│ " + m.alert.Message + "\n")
		b.WriteString("└ esc para fechar\n\n")
	}

	b.WriteString("enter Calcular · ctrl+l Limpar · tab próximo campo · ctrl+c sair\n")

	return b.String()
}
