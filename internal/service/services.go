package service

import (
	"github.com/MKhiriev/go-key-vault/internal/config"
	"github.com/MKhiriev/go-key-vault/internal/logger"
	"github.com/MKhiriev/go-key-vault/internal/store"
)

type Services struct {
	VaultService VaultService
}

func NewServices(storage store.Storage, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	opts, err := VaultOptionsFromConfig(cfg)
	if err != nil {
		return nil, err
	}

	vaultService, err := NewVaultService(storage, opts, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		VaultService: vaultService,
	}, nil
}
