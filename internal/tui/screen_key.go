package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

func newKeyInput() textinput.Model {
	input := textinput.New()
	input.Placeholder = "ключ"
	input.CharLimit = 256
	input.Width = 40
	input.EchoMode = textinput.EchoPassword
	input.EchoCharacter = '*'
	input.Focus()
	return input
}

func (m vaultModel) updateKey(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && key.Matches(keyMsg, keys.enter) {
		value := m.keyInput.Value()
		if value == "" {
			m.keyErr = "Нужно указать ключ"
			return m, nil
		}

		m.key = value
		m.keyErr = ""
		m.keyInput.Reset()
		m.stage = stageList
		m.loading = true
		return m, m.cmdLoad()
	}

	var cmd tea.Cmd
	m.keyInput, cmd = m.keyInput.Update(msg)
	return m, cmd
}

func (m vaultModel) viewKey() string {
	var b strings.Builder
	b.WriteString("Введите ключ, которым зашифрованы пароли.\n")
	b.WriteString("Неверный ключ не вызывает ошибку: пароли просто\n")
	b.WriteString("расшифруются в другой текст.\n\n")
	b.WriteString("Ключ │ [")
	b.WriteString(m.keyInput.View())
	b.WriteString("]\n")

	if m.keyErr != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Ошибка: " + m.keyErr))
		b.WriteString("\n")
	}

	return renderPage("KEYVAULT", strings.TrimRight(b.String(), "\n"), "enter: открыть │ ctrl+v: о программе")
}
