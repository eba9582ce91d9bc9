// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"slices"

	"github.com/MKhiriev/go-key-vault/internal/logger"
	"github.com/MKhiriev/go-key-vault/models"
)

// VaultStore is the ordered in-memory collection of vault records.
// Insertion order is the visible order and the index space for DeleteAt.
//
// VaultStore is not safe for concurrent use; its owner serialises access.
type VaultStore struct {
	format  VaultFormat
	records []models.VaultRecord
}

// NewVaultStore returns an empty store that serialises with format.
func NewVaultStore(format VaultFormat) *VaultStore {
	return &VaultStore{format: format}
}

// Format returns the serialisation format of the store.
func (v *VaultStore) Format() VaultFormat {
	return v.format
}

// Append adds record at the end. Account labels need not be unique.
func (v *VaultStore) Append(record models.VaultRecord) {
	v.records = append(v.records, record.Clone())
}

// List returns a deep copy of the records in insertion order.
func (v *VaultStore) List() []models.VaultRecord {
	out := make([]models.VaultRecord, len(v.records))
	for i, r := range v.records {
		out[i] = r.Clone()
	}
	return out
}

// Len returns the number of records.
func (v *VaultStore) Len() int {
	return len(v.records)
}

// DeleteAt removes the record at index; later records shift down by one.
func (v *VaultStore) DeleteAt(index int) error {
	if index < 0 || index >= len(v.records) {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrOutOfRange, index, len(v.records))
	}
	v.records = slices.Delete(v.records, index, index+1)
	return nil
}

// Clone returns an independent copy of the store.
func (v *VaultStore) Clone() *VaultStore {
	return &VaultStore{format: v.format, records: v.List()}
}

// Clear drops every record.
func (v *VaultStore) Clear() {
	v.records = nil
}

// LoadFrom replaces the records with the content of s. An absent slot
// loads as an empty vault. On error the store is left unchanged.
func (v *VaultStore) LoadFrom(ctx context.Context, s Storage) error {
	log := logger.FromContext(ctx)

	content, ok, err := s.Read(ctx)
	if err != nil {
		log.Err(err).Str("func", "VaultStore.LoadFrom").Msg("failed to read vault from storage")
		return fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}
	if !ok {
		log.Debug().Str("func", "VaultStore.LoadFrom").Msg("no stored vault, starting empty")
		v.records = nil
		return nil
	}

	records, err := DecodeVault(content, v.format)
	if err != nil {
		log.Err(err).Str("func", "VaultStore.LoadFrom").Msg("failed to decode stored vault")
		return err
	}

	v.records = records
	log.Debug().Str("func", "VaultStore.LoadFrom").Int("records", len(records)).Msg("vault loaded")
	return nil
}

// SaveTo writes the whole vault to s. An empty vault clears the slot.
func (v *VaultStore) SaveTo(ctx context.Context, s Storage) error {
	log := logger.FromContext(ctx)

	if len(v.records) == 0 {
		if err := s.Clear(ctx); err != nil {
			log.Err(err).Str("func", "VaultStore.SaveTo").Msg("failed to clear storage")
			return fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
		}
		return nil
	}

	content, err := EncodeVault(v.format, v.records)
	if err != nil {
		return err
	}

	if err := s.Write(ctx, content); err != nil {
		log.Err(err).Str("func", "VaultStore.SaveTo").Msg("failed to write vault to storage")
		return fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}
	log.Debug().Str("func", "VaultStore.SaveTo").Int("records", len(v.records)).Msg("vault saved")
	return nil
}
