// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/go-key-vault/models"
)

const appName = "KeyVault"

// renderBuildInfoWindow shows the values injected at build time. Missing
// values are shown as N/A.
func renderBuildInfoWindow(info models.AppBuildInfo) string {
	rows := [][2]string{
		{"Приложение", appName},
		{"Версия", info.BuildVersion()},
		{"Дата сборки", info.BuildDate()},
		{"Коммит", info.BuildCommit()},
	}

	labels := make([]string, 0, len(rows))
	values := make([]string, 0, len(rows))
	for _, r := range rows {
		labels = append(labels, helpStyle.Render(r[0]+":"))
		values = append(values, valueOrNA(r[1]))
	}

	table := lipgloss.JoinHorizontal(lipgloss.Top,
		strings.Join(labels, "\n"),
		"  ",
		strings.Join(values, "\n"),
	)
	return renderPage("О ПРОГРАММЕ", table, "esc: назад")
}

func valueOrNA(v string) string {
	if v = strings.TrimSpace(v); v == "" {
		return "N/A"
	}
	return v
}
