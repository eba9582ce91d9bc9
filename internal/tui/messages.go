package tui

import (
	"github.com/MKhiriev/go-key-vault/models"
)

type listLoadedMsg struct {
	entries []models.VaultEntry
	err     error
}

type savedMsg struct {
	account string
	err     error
}

type deletedMsg struct {
	account string
	err     error
}

type generatedMsg struct {
	password string
	err      error
}

type copiedMsg struct {
	err error
}
