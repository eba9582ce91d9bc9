package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

const overlayWidth = 48

// renderDeleteConfirm asks before the record shown as number position is
// removed.
func renderDeleteConfirm(position int, account string) string {
	body := lipgloss.JoinVertical(lipgloss.Left,
		fmt.Sprintf("Удалить запись #%d %q?", position, fitText(account, overlayWidth-20)),
		helpStyle.Render("Записи ниже сдвинутся на одну позицию вверх."),
		"",
		keyHint(keys.yes)+"    "+keyHint(keys.no),
	)
	return overlayBoxStyle.Render(body)
}

func renderErrorOverlay(message string) string {
	body := lipgloss.JoinVertical(lipgloss.Left,
		errorStyle.Render("Ошибка"),
		"",
		lipgloss.NewStyle().Width(overlayWidth).Render(message),
		"",
		keyHint(keys.esc),
	)
	return overlayBoxStyle.Render(body)
}

func keyHint(b key.Binding) string {
	h := b.Help()
	return titleStyle.Render(h.Key) + " " + h.Desc
}
