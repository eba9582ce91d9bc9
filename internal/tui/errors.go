// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"

	"github.com/MKhiriev/go-key-vault/internal/service"
	"github.com/MKhiriev/go-key-vault/internal/store"
	"github.com/MKhiriev/go-key-vault/internal/validators"
)

func humanizeError(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, validators.ErrEmptyAccount):
		return "Нужно указать аккаунт"
	case errors.Is(err, validators.ErrEmptyPassword):
		return "Нужно указать пароль"
	case errors.Is(err, validators.ErrEmptyKey):
		return "Нужно указать ключ"
	case errors.Is(err, validators.ErrNothingToEncrypt):
		return "В значении нет ни одного символа алфавита"
	case errors.Is(err, service.ErrOutOfRange):
		return "Запись не найдена"
	case errors.Is(err, store.ErrAlphabetMismatch):
		return "Хранилище создано с другим алфавитом"
	case errors.Is(err, store.ErrFallbackMismatch):
		return "Хранилище создано с другой политикой для неизвестных символов"
	case errors.Is(err, store.ErrNotVault):
		return "Это не хранилище, старый формат добавляется командой import-legacy"
	case errors.Is(err, store.ErrCorruptVault), errors.Is(err, store.ErrUnsupportedVersion):
		return "Хранилище повреждено или создано более новой версией"
	case errors.Is(err, service.ErrStorageUnavailable):
		return "Хранилище недоступно"
	}

	return err.Error()
}
