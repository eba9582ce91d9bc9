package store

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/MKhiriev/go-key-vault/internal/cipher"
	"github.com/MKhiriev/go-key-vault/models"
)

// DecodeLegacy imports a vault exported from the original browser page:
// a JSON object mapping account to ciphertext text, e.g.
//
//	{"mail":"gpa","bank":"xkq"}
//
// Object order is preserved. Ciphertext text is mapped to ordinals with
// codec and every record is tagged modular, the only mode that page had.
func DecodeLegacy(r io.Reader, codec *cipher.Codec) ([]models.VaultRecord, error) {
	dec := json.NewDecoder(r)

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptVault, err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("%w: legacy vault must be a JSON object", ErrCorruptVault)
	}

	var records []models.VaultRecord
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrCorruptVault, err)
		}
		account, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("%w: unexpected key %v", ErrCorruptVault, tok)
		}

		var text string
		if err := dec.Decode(&text); err != nil {
			return nil, fmt.Errorf("%w: value of %q: %w", ErrCorruptVault, account, err)
		}

		records = append(records, models.VaultRecord{
			Account: account,
			Payload: codec.OrdinalsOf(text),
			Mode:    cipher.ModeModular.String(),
		})
	}

	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptVault, err)
	}
	return records, nil
}
