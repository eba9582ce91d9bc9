// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used by the
// keyvault command line.
//
// All Msg* constants are human-readable strings printed to the user or
// written into log entries to describe the outcome of an operation.
package app

const (
	// MsgInvalidInput is printed when save or list input is rejected before
	// the vault is touched.
	MsgInvalidInput = "invalid input"

	// MsgStorageUnavailable is printed when the storage backend cannot be
	// read or written. The vault is left unchanged.
	MsgStorageUnavailable = "storage unavailable"

	// MsgCorruptVault is printed when the stored vault cannot be decoded.
	MsgCorruptVault = "stored vault is corrupt or written by a newer version"

	// MsgAlphabetMismatch is printed when the stored vault was written with
	// another alphabet than the configured one.
	MsgAlphabetMismatch = "stored vault uses another alphabet"

	// MsgFallbackMismatch is printed when the stored vault was written with
	// another fallback policy than the configured one.
	MsgFallbackMismatch = "stored vault uses another fallback policy"

	// MsgNotVault is printed when the storage slot holds JSON that is not a
	// vault envelope, such as a legacy vault. The slot is left untouched.
	MsgNotVault = "stored content is not a vault, use import-legacy"

	// MsgOutOfRange is printed when a delete index does not exist.
	MsgOutOfRange = "no record at this index"

	// MsgSaved is printed after a record was saved.
	MsgSaved = "saved"

	// MsgDeleted is printed after a record was deleted.
	MsgDeleted = "deleted"

	// MsgWiped is printed after the whole vault was removed.
	MsgWiped = "vault wiped"

	// MsgWipeAborted is printed when the wipe confirmation was declined.
	MsgWipeAborted = "aborted"

	// MsgImported is printed after a legacy vault import.
	MsgImported = "imported"

	// MsgMigrated is printed after the vault was copied to another backend.
	MsgMigrated = "vault migrated"

	// MsgEmptyVault is printed by list commands on an empty vault.
	MsgEmptyVault = "vault is empty"
)
