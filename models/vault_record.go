// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "slices"

// VaultRecord is one stored account entry: a free-form label and the cipher
// ordinals of its password. Mode names the arithmetic that produced Payload;
// an empty Mode means the vault's default mode.
type VaultRecord struct {
	Account string `json:"account"`
	Payload []int  `json:"payload"`
	Mode    string `json:"mode,omitempty"`
}

// Clone returns a deep copy of the record.
func (r VaultRecord) Clone() VaultRecord {
	r.Payload = slices.Clone(r.Payload)
	return r
}
