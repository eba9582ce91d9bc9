package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-key-vault/internal/config"
	"github.com/MKhiriev/go-key-vault/internal/logger"
	"github.com/MKhiriev/go-key-vault/internal/service"
	"github.com/MKhiriev/go-key-vault/internal/store"
	"github.com/MKhiriev/go-key-vault/internal/tui"
	"github.com/MKhiriev/go-key-vault/models"
)

type App struct {
	cfg      *config.StructuredConfig
	storage  store.StorageCloser
	services *service.Services
	ui       *tui.TUI
	logger   *logger.Logger
}

var _ Client = (*App)(nil)

// NewApp opens the configured storage backend and builds the services on top
// of it. The caller owns the App and must Close it.
func NewApp(ctx context.Context, cfg *config.StructuredConfig, buildInfo models.AppBuildInfo, log *logger.Logger) (*App, error) {
	storage, err := store.NewStorage(ctx, cfg.Storage, log)
	if err != nil {
		log.Err(err).Str("func", "client.NewApp").Msg("create storage")
		return nil, fmt.Errorf("create storage: %w", err)
	}

	app, err := newApp(cfg, storage, buildInfo, log)
	if err != nil {
		storage.Close()
		return nil, err
	}
	return app, nil
}

func newApp(cfg *config.StructuredConfig, storage store.StorageCloser, buildInfo models.AppBuildInfo, log *logger.Logger) (*App, error) {
	services, err := service.NewServices(storage, *cfg, log)
	if err != nil {
		log.Err(err).Str("func", "client.NewApp").Msg("create services")
		return nil, fmt.Errorf("create services: %w", err)
	}

	ui, err := tui.New(services.VaultService, buildInfo, log)
	if err != nil {
		return nil, fmt.Errorf("create ui: %w", err)
	}

	return &App{
		cfg:      cfg,
		storage:  storage,
		services: services,
		ui:       ui,
		logger:   log,
	}, nil
}

// Run starts the terminal UI. Leaving it with ctrl+c is not an error.
func (a *App) Run(ctx context.Context) error {
	ctx = a.logger.WithContext(ctx)

	err := a.ui.Run(ctx)
	if errors.Is(err, tui.ErrUserQuit) {
		return nil
	}
	return err
}

func (a *App) Vault() service.VaultService {
	return a.services.VaultService
}

func (a *App) Storage() store.Storage {
	return a.storage
}

func (a *App) Config() *config.StructuredConfig {
	return a.cfg
}

func (a *App) Close() error {
	return a.storage.Close()
}
