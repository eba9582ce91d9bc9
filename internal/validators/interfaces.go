// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks user input before it reaches the vault.
//
// A Validator inspects a request value and may be scoped to a subset of its
// fields. Services call it before touching the vault so that rejected input
// never causes a mutation or a write to storage.
package validators

import "context"

// Validator validates the provided input, optionally restricted to the named
// fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
