package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-key-vault/internal/logger"
	"github.com/MKhiriev/go-key-vault/internal/service"
	"github.com/MKhiriev/go-key-vault/models"
)

var ErrUserQuit = errors.New("вышел из программы")

type TUI struct {
	vault     service.VaultService
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(vault service.VaultService, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	if vault == nil {
		return nil, errors.New("vault service is nil")
	}
	return &TUI{vault: vault, buildInfo: buildInfo, logger: logger}, nil
}

// Run blocks until the user leaves the program.
func (t *TUI) Run(ctx context.Context) error {
	model := newVaultModel(ctx, t.vault, t.buildInfo)
	finalModel, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		t.logger.Err(err).Str("func", "TUI.Run").Msg("tui program failed")
		return err
	}

	result, ok := finalModel.(vaultModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}
	return nil
}
