// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-key-vault/internal/cipher"
	"github.com/MKhiriev/go-key-vault/models"
)

// envelopeVersion is the current serialised vault format.
const envelopeVersion = 1

// envelope is the serialised form of a vault:
//
//	{"version":1,"alphabet":"lowercase","fallback":"drop","mode":"modular",
//	 "records":[{"account":"mail","payload":[7,16,27],"mode":"modular"}]}
type envelope struct {
	Version  int                  `json:"version"`
	Alphabet string               `json:"alphabet"`
	Fallback string               `json:"fallback,omitempty"`
	Mode     string               `json:"mode"`
	Records  []models.VaultRecord `json:"records"`
}

// EncodeVault serialises records under format.
func EncodeVault(format VaultFormat, records []models.VaultRecord) (string, error) {
	if records == nil {
		records = []models.VaultRecord{}
	}

	data, err := json.Marshal(envelope{
		Version:  envelopeVersion,
		Alphabet: format.Alphabet,
		Fallback: string(format.Fallback),
		Mode:     format.Mode.String(),
		Records:  records,
	})
	if err != nil {
		return "", fmt.Errorf("error encoding vault: %w", err)
	}
	return string(data), nil
}

// DecodeVault parses content written by [EncodeVault]. A bare JSON array of
// records is accepted as well. Records without a mode tag are tagged with
// the envelope's mode, or format.Mode when the envelope has none.
func DecodeVault(content string, format VaultFormat) ([]models.VaultRecord, error) {
	data := bytes.TrimSpace([]byte(content))
	if len(data) == 0 {
		return nil, nil
	}

	if data[0] == '[' {
		var records []models.VaultRecord
		if err := json.Unmarshal(data, &records); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrCorruptVault, err)
		}
		return tagRecords(records, format.Mode), nil
	}

	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptVault, err)
	}

	if env.Version < 1 || env.Records == nil {
		return nil, ErrNotVault
	}
	if env.Version > envelopeVersion {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, env.Version)
	}
	if env.Alphabet != "" && env.Alphabet != format.Alphabet {
		return nil, fmt.Errorf("%w: vault uses %q, configured %q", ErrAlphabetMismatch, env.Alphabet, format.Alphabet)
	}
	if env.Fallback != "" && env.Fallback != string(format.Fallback) {
		return nil, fmt.Errorf("%w: vault uses %q, configured %q", ErrFallbackMismatch, env.Fallback, format.Fallback)
	}

	mode := format.Mode
	if env.Mode != "" {
		m, err := cipher.ParseMode(env.Mode)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrCorruptVault, err)
		}
		mode = m
	}

	return tagRecords(env.Records, mode), nil
}

func tagRecords(records []models.VaultRecord, mode cipher.Mode) []models.VaultRecord {
	for i := range records {
		if records[i].Mode == "" {
			records[i].Mode = mode.String()
		}
	}
	return records
}
