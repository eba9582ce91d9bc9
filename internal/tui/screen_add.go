package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *vaultModel) startAdd() {
	account := textinput.New()
	account.Placeholder = "аккаунт"
	account.CharLimit = 256
	account.Width = 40
	account.Focus()

	password := textinput.New()
	password.Placeholder = "пароль"
	password.CharLimit = 1024
	password.Width = 40
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '*'

	m.addInputs = []textinput.Model{account, password}
	m.addFocus = 0
	m.addErr = ""
	m.addSaving = false
	m.status = ""
	m.stage = stageAdd
}

func (m *vaultModel) resetAdd() {
	m.addInputs = nil
	m.addFocus = 0
	m.addErr = ""
	m.addSaving = false
}

func (m vaultModel) updateAdd(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.resetAdd()
			m.stage = stageList
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.focusAdd(1)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.focusAdd(-1)
			return m, nil
		case key.Matches(keyMsg, keys.gen):
			return m, m.cmdGenerate()
		case key.Matches(keyMsg, keys.enter):
			if m.addSaving {
				return m, nil
			}

			account := strings.TrimSpace(m.addInputs[0].Value())
			password := m.addInputs[1].Value()
			if account == "" || password == "" {
				m.addErr = "Аккаунт и пароль обязательны"
				return m, nil
			}

			m.addErr = ""
			m.addSaving = true
			return m, m.cmdSave(account, password)
		}
	}

	var cmd tea.Cmd
	m.addInputs[m.addFocus], cmd = m.addInputs[m.addFocus].Update(msg)
	return m, cmd
}

func (m *vaultModel) focusAdd(step int) {
	m.addInputs[m.addFocus].Blur()
	m.addFocus = (m.addFocus + step + len(m.addInputs)) % len(m.addInputs)
	m.addInputs[m.addFocus].Focus()
}

func (m vaultModel) viewAdd() string {
	var b strings.Builder
	b.WriteString("Поле     │ Значение\n")
	b.WriteString("─────────┼────────────────────────────────────────────\n")
	b.WriteString("Аккаунт  │ [")
	b.WriteString(m.addInputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Пароль   │ [")
	b.WriteString(m.addInputs[1].View())
	b.WriteString("]\n")

	if m.addSaving {
		b.WriteString("\n[Сохранение...]\n")
	} else {
		b.WriteString("\n[Сохранить]\n")
	}
	if m.status != "" {
		b.WriteString("\nСтатус: ")
		b.WriteString(m.status)
		b.WriteString("\n")
	}
	if m.addErr != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Ошибка: " + m.addErr))
		b.WriteString("\n")
	}

	return renderPage("НОВАЯ ЗАПИСЬ", strings.TrimRight(b.String(), "\n"), "esc: назад │ tab: след. поле │ ctrl+g: сгенерировать │ enter: сохранить")
}
