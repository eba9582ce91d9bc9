package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const listHotKeys = "a: добавить │ пробел: показать │ c: копировать │ d: удалить │ l: сменить ключ │ q: выход"

func (m vaultModel) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || m.loading {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	case key.Matches(keyMsg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.idx < len(m.entries)-1 {
			m.idx++
		}
	case key.Matches(keyMsg, keys.reveal, keys.enter):
		if _, ok := m.current(); ok {
			m.revealed[m.idx] = !m.revealed[m.idx]
		}
	case key.Matches(keyMsg, keys.newItem):
		m.startAdd()
		return m, textinput.Blink
	case key.Matches(keyMsg, keys.delete):
		if _, ok := m.current(); !ok {
			m.status = "Нет записей"
			return m, nil
		}
		m.stage = stageConfirmDelete
	case key.Matches(keyMsg, keys.copy):
		entry, ok := m.current()
		if !ok {
			m.status = "Нечего копировать"
			return m, nil
		}
		if entry.Undecryptable {
			m.status = "Запись не расшифрована этим ключом"
			return m, nil
		}
		return m, cmdCopy(entry.Password)
	case key.Matches(keyMsg, keys.lock):
		m.lock()
	}

	return m, nil
}

func (m vaultModel) updateConfirmDelete(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || m.deleting {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.yes):
		entry, ok := m.current()
		if !ok {
			m.stage = stageList
			return m, nil
		}
		m.deleting = true
		return m, m.cmdDelete(entry.Index, entry.Account)
	case key.Matches(keyMsg, keys.no):
		m.stage = stageList
	}
	return m, nil
}

func (m vaultModel) viewList() string {
	var b strings.Builder

	if m.loading {
		b.WriteString("Загрузка списка...")
		return renderPage("ХРАНИЛИЩЕ", b.String(), listHotKeys)
	}

	if m.status != "" {
		b.WriteString(statusStyle.Render("Статус: " + m.status))
		b.WriteString("\n\n")
	}

	if len(m.entries) == 0 {
		b.WriteString("Записей нет")
		return renderPage("ХРАНИЛИЩЕ", b.String(), listHotKeys)
	}

	b.WriteString("  #   │ Аккаунт                  │ Пароль\n")
	b.WriteString("──────┼──────────────────────────┼────────────────────\n")
	for i, entry := range m.entries {
		cursor := " "
		if i == m.idx {
			cursor = ">"
		}

		password := maskedStyle.Render(passwordMask)
		switch {
		case entry.Undecryptable:
			password = undecryptedStyle.Render(entry.Password)
		case m.revealed[i]:
			password = entry.Password
		}

		row := fmt.Sprintf("%s %-3d │ %s │ %s", cursor, entry.Index+1, padRight(fitText(entry.Account, 24), 24), password)
		if i == m.idx {
			row = selectedStyle.Render(row)
		}
		b.WriteString(row)
		b.WriteString("\n")
	}

	return renderPage("ХРАНИЛИЩЕ", strings.TrimRight(b.String(), "\n"), listHotKeys)
}
